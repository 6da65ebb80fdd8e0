package swap

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/shiftline/shiftline-backend-go/internal/domain/notification"
	"github.com/shiftline/shiftline-backend-go/internal/domain/shift"
	"github.com/shiftline/shiftline-backend-go/internal/domain/swap"
	"github.com/shiftline/shiftline-backend-go/internal/domain/user"
	"github.com/shiftline/shiftline-backend-go/internal/pkg/database"
	"github.com/shiftline/shiftline-backend-go/internal/pkg/sms"
	"github.com/shiftline/shiftline-backend-go/internal/pkg/validator"
)

type service struct {
	repo     swap.Repository
	shifts   shift.Repository
	notifier notification.Service
	tx       database.TxManager
	now      func() time.Time
}

func NewSwapService(repo swap.Repository, shifts shift.Repository, notifier notification.Service, tx database.TxManager) swap.Service {
	return &service{
		repo:     repo,
		shifts:   shifts,
		notifier: notifier,
		tx:       tx,
		now:      time.Now,
	}
}

func (s *service) Request(ctx context.Context, actor user.Actor, req swap.CreateSwapRequest) (*swap.SwapResponse, error) {
	if err := validator.Struct(req); err != nil {
		return nil, err
	}

	sh, err := s.shifts.GetByID(ctx, req.ShiftID)
	if err != nil {
		return nil, err
	}
	if sh.UserID != actor.UserID {
		return nil, user.ErrNotResourceOwner
	}

	now := s.now()
	sw := &swap.ShiftSwap{
		ID:          uuid.New().String(),
		ShiftID:     req.ShiftID,
		RequesterID: actor.UserID,
		Status:      swap.StatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ctx, sw); err != nil {
		return nil, err
	}

	resp := swap.ToResponse(sw)
	return &resp, nil
}

// Claim races other claimants on the PENDING status; exactly one wins.
func (s *service) Claim(ctx context.Context, actor user.Actor, id string) (*swap.SwapResponse, error) {
	sw, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sw.RequesterID == actor.UserID {
		return nil, swap.ErrCannotClaimOwn
	}

	ok, err := s.repo.Claim(ctx, id, actor.UserID, s.now())
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, swap.ErrSwapStateChanged
	}

	claimed, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := swap.ToResponse(claimed)
	return &resp, nil
}

// Approve reassigns the shift to the claimant and resolves the swap in one
// transaction.
func (s *service) Approve(ctx context.Context, actor user.Actor, id string) (*swap.SwapResponse, error) {
	if err := user.Require(actor, user.PermissionReviewRequests); err != nil {
		return nil, err
	}

	sw, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sw.TargetUserID == nil {
		return nil, swap.ErrSwapNotClaimed
	}

	now := s.now()
	targetID := *sw.TargetUserID

	err = s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		ok, err := s.repo.Resolve(ctx, id, swap.StatusClaimed, swap.StatusApproved, &actor.UserID, nil, now)
		if err != nil {
			return err
		}
		if !ok {
			return swap.ErrSwapStateChanged
		}
		return s.shifts.ReassignOwner(ctx, sw.ShiftID, targetID, now)
	})
	if err != nil {
		return nil, err
	}

	if sh, err := s.shifts.GetByID(ctx, sw.ShiftID); err == nil {
		s.notifier.EscalateSMS([]string{targetID}, sms.SwapApproved(
			sh.StartTime.Format("Mon Jan 2"), sh.StartTime.Format("3:04 PM")))
	}

	approved, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := swap.ToResponse(approved)
	return &resp, nil
}

func (s *service) Deny(ctx context.Context, actor user.Actor, id string, req swap.DenySwapRequest) (*swap.SwapResponse, error) {
	if err := user.Require(actor, user.PermissionReviewRequests); err != nil {
		return nil, err
	}
	if err := validator.Struct(req); err != nil {
		return nil, err
	}

	sw, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sw.Status != swap.StatusPending && sw.Status != swap.StatusClaimed {
		return nil, swap.ErrSwapStateChanged
	}

	ok, err := s.repo.Resolve(ctx, id, sw.Status, swap.StatusDenied, &actor.UserID, &req.Reason, s.now())
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, swap.ErrSwapStateChanged
	}

	denied, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := swap.ToResponse(denied)
	return &resp, nil
}

func (s *service) Cancel(ctx context.Context, actor user.Actor, id string) error {
	sw, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !actor.IsOperator() && sw.RequesterID != actor.UserID {
		return user.ErrNotResourceOwner
	}
	if sw.Status != swap.StatusPending && sw.Status != swap.StatusClaimed {
		return swap.ErrSwapNotCancelable
	}

	ok, err := s.repo.Resolve(ctx, id, sw.Status, swap.StatusCancelled, nil, nil, s.now())
	if err != nil {
		return err
	}
	if !ok {
		return swap.ErrSwapStateChanged
	}
	return nil
}

func (s *service) List(ctx context.Context, actor user.Actor) ([]swap.SwapResponse, error) {
	var details []*swap.Detail
	var err error
	if actor.IsOperator() {
		details, err = s.repo.ListAll(ctx)
	} else {
		details, err = s.repo.ListVisibleTo(ctx, actor.UserID)
	}
	if err != nil {
		return nil, err
	}

	responses := make([]swap.SwapResponse, len(details))
	for i, d := range details {
		responses[i] = swap.DetailToResponse(d)
	}
	return responses, nil
}
