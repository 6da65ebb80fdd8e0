package shift

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/shiftline/shiftline-backend-go/internal/domain/notification"
	"github.com/shiftline/shiftline-backend-go/internal/domain/shift"
	"github.com/shiftline/shiftline-backend-go/internal/domain/user"
	"github.com/shiftline/shiftline-backend-go/internal/pkg/database"
	"github.com/shiftline/shiftline-backend-go/internal/pkg/sms"
	"github.com/shiftline/shiftline-backend-go/internal/pkg/validator"
)

const shiftTimeFormat = "Mon Jan 2 3:04 PM"

type service struct {
	repo     shift.Repository
	notifier notification.Service
	tx       database.TxManager
	now      func() time.Time
}

func NewShiftService(repo shift.Repository, notifier notification.Service, tx database.TxManager) shift.Service {
	return &service{
		repo:     repo,
		notifier: notifier,
		tx:       tx,
		now:      time.Now,
	}
}

func (s *service) Create(ctx context.Context, actor user.Actor, req shift.CreateShiftRequest) (*shift.ShiftResponse, error) {
	if err := user.Require(actor, user.PermissionManageShifts); err != nil {
		return nil, err
	}
	if err := validator.Struct(req); err != nil {
		return nil, err
	}
	if !req.EndTime.After(req.StartTime) {
		return nil, shift.ErrInvalidTimeRange
	}

	now := s.now()
	sh := &shift.Shift{
		ID:        uuid.New().String(),
		UserID:    req.UserID,
		RoleID:    req.RoleID,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Status:    shift.StatusDraft,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, sh); err != nil {
		return nil, err
	}

	resp := shift.ToResponse(sh)
	return &resp, nil
}

func (s *service) Update(ctx context.Context, actor user.Actor, id string, req shift.UpdateShiftRequest) (*shift.ShiftResponse, error) {
	if err := user.Require(actor, user.PermissionManageShifts); err != nil {
		return nil, err
	}
	if err := validator.Struct(req); err != nil {
		return nil, err
	}
	if !req.EndTime.After(req.StartTime) {
		return nil, shift.ErrInvalidTimeRange
	}

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	now := s.now()
	updated := *existing
	updated.UserID = req.UserID
	updated.RoleID = req.RoleID
	updated.StartTime = req.StartTime
	updated.EndTime = req.EndTime
	if req.Status != nil {
		updated.Status = *req.Status
	}
	updated.UpdatedAt = now

	// Edits to an unpublished draft are silent. Published shifts get a
	// history row and an owner notification in the same transaction.
	if !existing.IsPublished() {
		if err := s.repo.Update(ctx, &updated); err != nil {
			return nil, err
		}
		resp := shift.ToResponse(&updated)
		return &resp, nil
	}

	notifType, message := changeNotification(existing, &updated)

	err = s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := s.repo.Update(ctx, &updated); err != nil {
			return err
		}
		history := &shift.HistoryEntry{
			ID:        uuid.New().String(),
			ShiftID:   existing.ID,
			ChangedBy: actor.UserID,
			OldData:   existing.Snapshot(),
			NewData:   updated.Snapshot(),
			CreatedAt: now,
		}
		if err := s.repo.AddHistory(ctx, history); err != nil {
			return err
		}
		return s.notifier.Notify(ctx, []string{existing.UserID}, notifType, message)
	})
	if err != nil {
		return nil, err
	}

	if notifType == notification.TypeUpdate {
		s.notifier.EscalateSMS([]string{existing.UserID},
			sms.ScheduleChange(updated.StartTime.Format(shiftTimeFormat)))
	}

	resp := shift.ToResponse(&updated)
	return &resp, nil
}

// changeNotification picks the notification for a published-shift edit. A
// cancellation outranks a reschedule.
func changeNotification(old, updated *shift.Shift) (notification.Type, string) {
	if updated.Status == shift.StatusCancelled && old.Status != shift.StatusCancelled {
		return notification.TypeCancel, notification.DefaultMessage(notification.TypeCancel)
	}
	if !old.StartTime.Equal(updated.StartTime) || !old.EndTime.Equal(updated.EndTime) {
		message := fmt.Sprintf("Your shift has been updated: %s to %s.",
			updated.StartTime.Format(shiftTimeFormat), updated.EndTime.Format("3:04 PM"))
		return notification.TypeUpdate, message
	}
	return notification.TypeUpdate, notification.DefaultMessage(notification.TypeUpdate)
}

func (s *service) Delete(ctx context.Context, actor user.Actor, id string) error {
	if err := user.Require(actor, user.PermissionManageShifts); err != nil {
		return err
	}

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	// The owner hears about the cancellation before the row disappears,
	// draft or published alike.
	return s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		err := s.notifier.Notify(ctx, []string{existing.UserID},
			notification.TypeCancel, notification.DefaultMessage(notification.TypeCancel))
		if err != nil {
			return err
		}
		return s.repo.Delete(ctx, id)
	})
}

func (s *service) Publish(ctx context.Context, actor user.Actor, req shift.PublishShiftsRequest) (*shift.PublishResult, error) {
	if err := user.Require(actor, user.PermissionPublishShifts); err != nil {
		return nil, err
	}
	if err := validator.Struct(req); err != nil {
		return nil, err
	}

	var owners []string
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		var err error
		owners, err = s.repo.Publish(ctx, req.ShiftIDs, s.now())
		if err != nil {
			return err
		}

		// One PUBLISH notification per distinct owner, no matter how many
		// of their shifts just went out.
		return s.notifier.Notify(ctx, distinct(owners), notification.TypePublish,
			notification.DefaultMessage(notification.TypePublish))
	})
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int)
	for _, owner := range owners {
		counts[owner]++
	}
	for owner, count := range counts {
		s.notifier.EscalateSMS([]string{owner}, sms.ShiftPublished(count))
	}

	return &shift.PublishResult{
		Published: len(owners),
		Notified:  len(counts),
	}, nil
}

func distinct(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func (s *service) WeekBoard(ctx context.Context, actor user.Actor, weekStart time.Time) ([]shift.ShiftResponse, error) {
	details, err := s.repo.ListByRange(ctx, weekStart, weekStart.AddDate(0, 0, 7))
	if err != nil {
		return nil, err
	}

	responses := make([]shift.ShiftResponse, 0, len(details))
	for _, d := range details {
		// Employees only see the published schedule; drafts stay internal.
		if !actor.IsOperator() && d.Status != shift.StatusPublished && d.Status != shift.StatusCompleted {
			continue
		}
		responses = append(responses, shift.DetailToResponse(d))
	}
	return responses, nil
}

func (s *service) MyShifts(ctx context.Context, actor user.Actor) ([]shift.ShiftResponse, error) {
	details, err := s.repo.ListByUser(ctx, actor.UserID,
		[]shift.Status{shift.StatusPublished, shift.StatusCompleted})
	if err != nil {
		return nil, err
	}

	responses := make([]shift.ShiftResponse, len(details))
	for i, d := range details {
		responses[i] = shift.DetailToResponse(d)
	}
	return responses, nil
}

func (s *service) NextShift(ctx context.Context, actor user.Actor) (*shift.ShiftResponse, error) {
	d, err := s.repo.NextForUser(ctx, actor.UserID, s.now())
	if errors.Is(err, shift.ErrShiftNotFound) {
		// No upcoming shift is a normal answer, not an error.
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	resp := shift.DetailToResponse(d)
	return &resp, nil
}
