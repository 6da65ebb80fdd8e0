package timeoff

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/shiftline/shiftline-backend-go/internal/domain/notification"
	"github.com/shiftline/shiftline-backend-go/internal/domain/timeoff"
	"github.com/shiftline/shiftline-backend-go/internal/domain/user"
	"github.com/shiftline/shiftline-backend-go/internal/pkg/sms"
	"github.com/shiftline/shiftline-backend-go/internal/pkg/validator"
)

type service struct {
	repo     timeoff.Repository
	notifier notification.Service
	now      func() time.Time
}

func NewTimeOffService(repo timeoff.Repository, notifier notification.Service) timeoff.Service {
	return &service{
		repo:     repo,
		notifier: notifier,
		now:      time.Now,
	}
}

func (s *service) Create(ctx context.Context, actor user.Actor, req timeoff.CreateTimeOffRequest) (*timeoff.TimeOffResponse, error) {
	if err := validator.Struct(req); err != nil {
		return nil, err
	}

	start, end, err := req.Dates()
	if err != nil {
		return nil, err
	}
	if end.Before(start) {
		return nil, timeoff.ErrInvalidDateRange
	}

	r := &timeoff.Request{
		ID:        uuid.New().String(),
		UserID:    actor.UserID,
		StartDate: start,
		EndDate:   end,
		Reason:    req.Reason,
		Status:    timeoff.StatusPending,
		CreatedAt: s.now(),
	}

	if err := s.repo.Create(ctx, r); err != nil {
		return nil, err
	}

	resp := timeoff.ToResponse(r)
	return &resp, nil
}

func (s *service) Approve(ctx context.Context, actor user.Actor, id string) (*timeoff.TimeOffResponse, error) {
	if err := user.Require(actor, user.PermissionReviewRequests); err != nil {
		return nil, err
	}

	r, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	ok, err := s.repo.Review(ctx, id, timeoff.StatusApproved, actor.UserID, nil, s.now())
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, timeoff.ErrTimeOffAlreadyReviewed
	}

	s.notifier.EscalateSMS([]string{r.UserID}, sms.TimeOffApproved(
		r.StartDate.Format("Jan 2"), r.EndDate.Format("Jan 2")))

	return s.freshResponse(ctx, id)
}

func (s *service) Deny(ctx context.Context, actor user.Actor, id string, req timeoff.DenyTimeOffRequest) (*timeoff.TimeOffResponse, error) {
	if err := user.Require(actor, user.PermissionReviewRequests); err != nil {
		return nil, err
	}
	if err := validator.Struct(req); err != nil {
		return nil, err
	}

	r, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	ok, err := s.repo.Review(ctx, id, timeoff.StatusDenied, actor.UserID, &req.Reason, s.now())
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, timeoff.ErrTimeOffAlreadyReviewed
	}

	s.notifier.EscalateSMS([]string{r.UserID}, sms.TimeOffDenied(
		r.StartDate.Format("Jan 2"), req.Reason))

	return s.freshResponse(ctx, id)
}

func (s *service) Cancel(ctx context.Context, actor user.Actor, id string) error {
	r, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !actor.IsOperator() && r.UserID != actor.UserID {
		return user.ErrNotResourceOwner
	}

	ok, err := s.repo.Cancel(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return timeoff.ErrTimeOffAlreadyReviewed
	}
	return nil
}

func (s *service) List(ctx context.Context, actor user.Actor) ([]timeoff.TimeOffResponse, error) {
	var details []*timeoff.Detail
	var err error
	if actor.IsOperator() {
		details, err = s.repo.ListAll(ctx)
	} else {
		details, err = s.repo.ListByUser(ctx, actor.UserID)
	}
	if err != nil {
		return nil, err
	}

	responses := make([]timeoff.TimeOffResponse, len(details))
	for i, d := range details {
		responses[i] = timeoff.DetailToResponse(d)
	}
	return responses, nil
}

func (s *service) freshResponse(ctx context.Context, id string) (*timeoff.TimeOffResponse, error) {
	r, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := timeoff.ToResponse(r)
	return &resp, nil
}
