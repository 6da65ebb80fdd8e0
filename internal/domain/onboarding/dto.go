package onboarding

import "time"

type RecordStepRequest struct {
	Step string `json:"step" validate:"required,max=50"`
}

type ProgressResponse struct {
	UserID         string     `json:"user_id"`
	CompletedSteps []string   `json:"completed_steps"`
	CurrentStep    *string    `json:"current_step,omitempty"`
	IsCompleted    bool       `json:"is_completed"`
	SkippedTour    bool       `json:"skipped_tour"`
	CompletedAt    *time.Time `json:"completed_at,omitempty"`
}

func ToResponse(p *Progress) ProgressResponse {
	steps := p.CompletedSteps
	if steps == nil {
		steps = []string{}
	}
	return ProgressResponse{
		UserID:         p.UserID,
		CompletedSteps: steps,
		CurrentStep:    p.CurrentStep,
		IsCompleted:    p.IsCompleted,
		SkippedTour:    p.SkippedTour,
		CompletedAt:    p.CompletedAt,
	}
}
