package onboarding

import "time"

// Progress tracks how far a user has gotten through first-run setup.
type Progress struct {
	UserID         string
	CompletedSteps []string
	CurrentStep    *string
	IsCompleted    bool
	SkippedTour    bool
	CompletedAt    *time.Time
	UpdatedAt      time.Time
}

func (p *Progress) HasCompletedStep(step string) bool {
	for _, s := range p.CompletedSteps {
		if s == step {
			return true
		}
	}
	return false
}
