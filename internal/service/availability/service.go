package availability

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/shiftline/shiftline-backend-go/internal/domain/availability"
	"github.com/shiftline/shiftline-backend-go/internal/domain/user"
	"github.com/shiftline/shiftline-backend-go/internal/pkg/database"
	"github.com/shiftline/shiftline-backend-go/internal/pkg/validator"
)

type service struct {
	repo  availability.Repository
	users user.Repository
	tx    database.TxManager
	now   func() time.Time
}

func NewAvailabilityService(repo availability.Repository, users user.Repository, tx database.TxManager) availability.Service {
	return &service{
		repo:  repo,
		users: users,
		tx:    tx,
		now:   time.Now,
	}
}

// Submit applies the availability directly when the user has never set one.
// Every later change goes through operator review.
func (s *service) Submit(ctx context.Context, actor user.Actor, req availability.SubmitRequest) (*availability.SubmitResult, error) {
	if err := validator.Struct(req); err != nil {
		return nil, err
	}

	u, err := s.users.GetByID(ctx, actor.UserID)
	if err != nil {
		return nil, err
	}

	if u.Availability == nil {
		if err := s.users.UpdateAvailability(ctx, actor.UserID, req.Availability); err != nil {
			return nil, err
		}
		return &availability.SubmitResult{Applied: true}, nil
	}

	cr := &availability.ChangeRequest{
		ID:               uuid.New().String(),
		UserID:           actor.UserID,
		RequestedChanges: req.Availability,
		Reason:           req.Reason,
		Status:           availability.StatusPending,
		CreatedAt:        s.now(),
	}

	if err := s.repo.Create(ctx, cr); err != nil {
		return nil, err
	}

	resp := availability.ToResponse(cr)
	return &availability.SubmitResult{Applied: false, Request: &resp}, nil
}

// Approve overwrites the user's availability and resolves the request in one
// transaction so neither can land without the other.
func (s *service) Approve(ctx context.Context, actor user.Actor, id string) (*availability.ChangeRequestResponse, error) {
	if err := user.Require(actor, user.PermissionReviewRequests); err != nil {
		return nil, err
	}

	cr, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	err = s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		ok, err := s.repo.Review(ctx, id, availability.StatusApproved, actor.UserID, nil, s.now())
		if err != nil {
			return err
		}
		if !ok {
			return availability.ErrChangeRequestAlreadyReviewed
		}
		return s.users.UpdateAvailability(ctx, cr.UserID, cr.RequestedChanges)
	})
	if err != nil {
		return nil, err
	}

	return s.freshResponse(ctx, id)
}

func (s *service) Deny(ctx context.Context, actor user.Actor, id string, req availability.DenyRequest) (*availability.ChangeRequestResponse, error) {
	if err := user.Require(actor, user.PermissionReviewRequests); err != nil {
		return nil, err
	}
	if err := validator.Struct(req); err != nil {
		return nil, err
	}

	ok, err := s.repo.Review(ctx, id, availability.StatusDenied, actor.UserID, &req.Reason, s.now())
	if err != nil {
		return nil, err
	}
	if !ok {
		if _, err := s.repo.GetByID(ctx, id); err != nil {
			return nil, err
		}
		return nil, availability.ErrChangeRequestAlreadyReviewed
	}

	return s.freshResponse(ctx, id)
}

func (s *service) Cancel(ctx context.Context, actor user.Actor, id string) error {
	cr, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !actor.IsOperator() && cr.UserID != actor.UserID {
		return user.ErrNotResourceOwner
	}

	ok, err := s.repo.Cancel(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return availability.ErrChangeRequestAlreadyReviewed
	}
	return nil
}

func (s *service) List(ctx context.Context, actor user.Actor) ([]availability.ChangeRequestResponse, error) {
	var details []*availability.Detail
	var err error
	if actor.IsOperator() {
		details, err = s.repo.ListAll(ctx)
	} else {
		details, err = s.repo.ListByUser(ctx, actor.UserID)
	}
	if err != nil {
		return nil, err
	}

	responses := make([]availability.ChangeRequestResponse, len(details))
	for i, d := range details {
		responses[i] = availability.DetailToResponse(d)
	}
	return responses, nil
}

func (s *service) freshResponse(ctx context.Context, id string) (*availability.ChangeRequestResponse, error) {
	cr, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := availability.ToResponse(cr)
	return &resp, nil
}
