package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/shiftline/shiftline-backend-go/internal/domain/callout"
	"github.com/shiftline/shiftline-backend-go/internal/handler/http/response"
)

type CalloutHandler struct {
	calloutService callout.Service
}

func NewCalloutHandler(calloutService callout.Service) *CalloutHandler {
	return &CalloutHandler{calloutService: calloutService}
}

func (h *CalloutHandler) Create(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFrom(w, r)
	if !ok {
		return
	}

	var req callout.CreateCalloutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.calloutService.Create(r.Context(), actor, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Callout recorded", created)
}

func (h *CalloutHandler) ListOpen(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFrom(w, r)
	if !ok {
		return
	}

	callouts, err := h.calloutService.ListOpen(r.Context(), actor)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, callouts)
}

func (h *CalloutHandler) ListByUser(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFrom(w, r)
	if !ok {
		return
	}

	callouts, err := h.calloutService.ListByUser(r.Context(), actor, chi.URLParam(r, "userID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, callouts)
}
