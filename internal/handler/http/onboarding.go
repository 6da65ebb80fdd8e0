package http

import (
	"encoding/json"
	"net/http"

	"github.com/shiftline/shiftline-backend-go/internal/domain/onboarding"
	"github.com/shiftline/shiftline-backend-go/internal/handler/http/response"
)

type OnboardingHandler struct {
	onboardingService onboarding.Service
}

func NewOnboardingHandler(onboardingService onboarding.Service) *OnboardingHandler {
	return &OnboardingHandler{onboardingService: onboardingService}
}

func (h *OnboardingHandler) Get(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFrom(w, r)
	if !ok {
		return
	}

	progress, err := h.onboardingService.Get(r.Context(), actor)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, progress)
}

func (h *OnboardingHandler) RecordStep(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFrom(w, r)
	if !ok {
		return
	}

	var req onboarding.RecordStepRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	progress, err := h.onboardingService.RecordStep(r.Context(), actor, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Step recorded", progress)
}

func (h *OnboardingHandler) Complete(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFrom(w, r)
	if !ok {
		return
	}

	progress, err := h.onboardingService.Complete(r.Context(), actor)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Onboarding completed", progress)
}

func (h *OnboardingHandler) Skip(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFrom(w, r)
	if !ok {
		return
	}

	progress, err := h.onboardingService.Skip(r.Context(), actor)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Onboarding skipped", progress)
}

func (h *OnboardingHandler) Reset(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFrom(w, r)
	if !ok {
		return
	}

	progress, err := h.onboardingService.Reset(r.Context(), actor)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Onboarding reset", progress)
}
