package onboarding

import (
	"context"
	"errors"
	"time"

	"github.com/shiftline/shiftline-backend-go/internal/domain/onboarding"
	"github.com/shiftline/shiftline-backend-go/internal/domain/user"
	"github.com/shiftline/shiftline-backend-go/internal/pkg/validator"
)

type service struct {
	repo onboarding.Repository
	now  func() time.Time
}

func NewOnboardingService(repo onboarding.Repository) onboarding.Service {
	return &service{
		repo: repo,
		now:  time.Now,
	}
}

// getOrCreate returns the actor's progress, starting a fresh record when
// none exists yet.
func (s *service) getOrCreate(ctx context.Context, actor user.Actor) (*onboarding.Progress, error) {
	p, err := s.repo.GetByUserID(ctx, actor.UserID)
	if err == nil {
		return p, nil
	}
	if !errors.Is(err, onboarding.ErrProgressNotFound) {
		return nil, err
	}
	return &onboarding.Progress{
		UserID:         actor.UserID,
		CompletedSteps: []string{},
		UpdatedAt:      s.now(),
	}, nil
}

func (s *service) Get(ctx context.Context, actor user.Actor) (*onboarding.ProgressResponse, error) {
	p, err := s.getOrCreate(ctx, actor)
	if err != nil {
		return nil, err
	}
	resp := onboarding.ToResponse(p)
	return &resp, nil
}

func (s *service) RecordStep(ctx context.Context, actor user.Actor, req onboarding.RecordStepRequest) (*onboarding.ProgressResponse, error) {
	if err := validator.Struct(req); err != nil {
		return nil, err
	}

	p, err := s.getOrCreate(ctx, actor)
	if err != nil {
		return nil, err
	}

	if !p.HasCompletedStep(req.Step) {
		p.CompletedSteps = append(p.CompletedSteps, req.Step)
	}
	p.CurrentStep = &req.Step
	p.UpdatedAt = s.now()

	if err := s.repo.Upsert(ctx, p); err != nil {
		return nil, err
	}

	resp := onboarding.ToResponse(p)
	return &resp, nil
}

func (s *service) Complete(ctx context.Context, actor user.Actor) (*onboarding.ProgressResponse, error) {
	p, err := s.getOrCreate(ctx, actor)
	if err != nil {
		return nil, err
	}

	now := s.now()
	p.IsCompleted = true
	p.CompletedAt = &now
	p.CurrentStep = nil
	p.UpdatedAt = now

	if err := s.repo.Upsert(ctx, p); err != nil {
		return nil, err
	}

	resp := onboarding.ToResponse(p)
	return &resp, nil
}

func (s *service) Skip(ctx context.Context, actor user.Actor) (*onboarding.ProgressResponse, error) {
	p, err := s.getOrCreate(ctx, actor)
	if err != nil {
		return nil, err
	}

	now := s.now()
	p.SkippedTour = true
	p.IsCompleted = true
	p.CompletedAt = &now
	p.CurrentStep = nil
	p.UpdatedAt = now

	if err := s.repo.Upsert(ctx, p); err != nil {
		return nil, err
	}

	resp := onboarding.ToResponse(p)
	return &resp, nil
}

func (s *service) Reset(ctx context.Context, actor user.Actor) (*onboarding.ProgressResponse, error) {
	if err := s.repo.Delete(ctx, actor.UserID); err != nil {
		return nil, err
	}

	p := &onboarding.Progress{
		UserID:         actor.UserID,
		CompletedSteps: []string{},
		UpdatedAt:      s.now(),
	}
	resp := onboarding.ToResponse(p)
	return &resp, nil
}
