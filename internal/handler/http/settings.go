package http

import (
	"encoding/json"
	"net/http"

	"github.com/shiftline/shiftline-backend-go/internal/domain/settings"
	"github.com/shiftline/shiftline-backend-go/internal/handler/http/response"
)

type SettingsHandler struct {
	settingsService settings.Service
}

func NewSettingsHandler(settingsService settings.Service) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

func (h *SettingsHandler) GetBusiness(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFrom(w, r)
	if !ok {
		return
	}

	current, err := h.settingsService.Get(r.Context(), actor)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, current)
}

func (h *SettingsHandler) UpdateBusiness(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFrom(w, r)
	if !ok {
		return
	}

	var req settings.UpdateSettingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	updated, err := h.settingsService.Update(r.Context(), actor, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Business settings saved", updated)
}
