package callout

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/shiftline/shiftline-backend-go/internal/domain/callout"
	"github.com/shiftline/shiftline-backend-go/internal/domain/notification"
	"github.com/shiftline/shiftline-backend-go/internal/domain/shift"
	"github.com/shiftline/shiftline-backend-go/internal/domain/user"
	"github.com/shiftline/shiftline-backend-go/internal/domain/workrole"
	"github.com/shiftline/shiftline-backend-go/internal/pkg/database"
	"github.com/shiftline/shiftline-backend-go/internal/pkg/sms"
	"github.com/shiftline/shiftline-backend-go/internal/pkg/validator"
)

type service struct {
	repo     callout.Repository
	shifts   shift.Repository
	roles    workrole.Repository
	users    user.Repository
	notifier notification.Service
	tx       database.TxManager
	now      func() time.Time
}

func NewCalloutService(repo callout.Repository, shifts shift.Repository, roles workrole.Repository, users user.Repository, notifier notification.Service, tx database.TxManager) callout.Service {
	return &service{
		repo:     repo,
		shifts:   shifts,
		roles:    roles,
		users:    users,
		notifier: notifier,
		tx:       tx,
		now:      time.Now,
	}
}

// Create records the callout, cancels the shift, and alerts every operator
// in a single transaction. SMS coverage requests go out after commit.
func (s *service) Create(ctx context.Context, actor user.Actor, req callout.CreateCalloutRequest) (*callout.CalloutResponse, error) {
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

	operators, err := s.users.ListOperators(ctx)
	if err != nil {
		return nil, err
	}
	operatorIDs := make([]string, len(operators))
	for i, op := range operators {
		operatorIDs[i] = op.ID
	}

	now := s.now()
	c := &callout.Callout{
		ID:        uuid.New().String(),
		UserID:    actor.UserID,
		ShiftID:   req.ShiftID,
		Reason:    req.Reason,
		CreatedAt: now,
	}

	err = s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := s.repo.Create(ctx, c); err != nil {
			return err
		}

		ok, err := s.shifts.CompareAndSetStatus(ctx, req.ShiftID, shift.StatusPublished, shift.StatusCancelled, now)
		if err != nil {
			return err
		}
		if !ok {
			return shift.ErrShiftStateChanged
		}

		return s.notifier.Notify(ctx, operatorIDs, notification.TypeCallout,
			notification.DefaultMessage(notification.TypeCallout))
	})
	if err != nil {
		return nil, err
	}

	roleName := ""
	if role, err := s.roles.GetByID(ctx, sh.RoleID); err == nil {
		roleName = role.Name
	}
	s.notifier.EscalateSMS(operatorIDs, sms.CalloutCoverage(
		roleName, sh.StartTime.Format("Mon Jan 2"), sh.StartTime.Format("3:04 PM")))

	resp := callout.ToResponse(c)
	return &resp, nil
}

func (s *service) ListOpen(ctx context.Context, actor user.Actor) ([]callout.CalloutResponse, error) {
	if err := user.Require(actor, user.PermissionReviewRequests); err != nil {
		return nil, err
	}

	details, err := s.repo.ListOpen(ctx, s.now())
	if err != nil {
		return nil, err
	}
	return toResponses(details), nil
}

func (s *service) ListByUser(ctx context.Context, actor user.Actor, userID string) ([]callout.CalloutResponse, error) {
	if !actor.IsOperator() && actor.UserID != userID {
		return nil, user.ErrNotResourceOwner
	}

	details, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toResponses(details), nil
}

func toResponses(details []*callout.Detail) []callout.CalloutResponse {
	responses := make([]callout.CalloutResponse, len(details))
	for i, d := range details {
		responses[i] = callout.DetailToResponse(d)
	}
	return responses
}
