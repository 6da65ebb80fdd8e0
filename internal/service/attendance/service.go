package attendance

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/shiftline/shiftline-backend-go/internal/domain/attendance"
	"github.com/shiftline/shiftline-backend-go/internal/domain/shift"
	"github.com/shiftline/shiftline-backend-go/internal/domain/user"
	"github.com/shiftline/shiftline-backend-go/internal/pkg/database"
	"github.com/shiftline/shiftline-backend-go/internal/pkg/validator"
)

type service struct {
	repo   attendance.Repository
	shifts attendance.ShiftReader
	tx     database.TxManager
	now    func() time.Time
}

func NewAttendanceService(repo attendance.Repository, shifts attendance.ShiftReader, tx database.TxManager) attendance.Service {
	return &service{
		repo:   repo,
		shifts: shifts,
		tx:     tx,
		now:    time.Now,
	}
}

func (s *service) ClockIn(ctx context.Context, actor user.Actor, req attendance.ClockInRequest) (*attendance.AttendanceResponse, error) {
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
	record := &attendance.Attendance{
		ID:        uuid.New().String(),
		ShiftID:   req.ShiftID,
		ClockIn:   &now,
		Status:    attendance.StatusOnShift,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
	}

	// Repeated clock-ins overwrite the earlier record: last write wins.
	if err := s.repo.UpsertClockIn(ctx, record); err != nil {
		return nil, err
	}

	resp := attendance.ToResponse(record)
	return &resp, nil
}

func (s *service) ClockOut(ctx context.Context, actor user.Actor, req attendance.ClockOutRequest) (*attendance.AttendanceResponse, error) {
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

	// Attendance and shift complete together or not at all.
	err = s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		record, err := s.repo.GetByShiftID(ctx, req.ShiftID)
		if errors.Is(err, attendance.ErrAttendanceNotFound) {
			return attendance.ErrNotClockedIn
		}
		if err != nil {
			return err
		}
		if record.ClockIn == nil {
			return attendance.ErrNotClockedIn
		}

		if err := s.repo.Complete(ctx, req.ShiftID, now); err != nil {
			return err
		}

		// The shift may already be past PUBLISHED if an operator intervened;
		// the clock-out still stands.
		_, err = s.shifts.CompareAndSetStatus(ctx, req.ShiftID, shift.StatusPublished, shift.StatusCompleted, now)
		return err
	})
	if err != nil {
		return nil, err
	}

	record, err := s.repo.GetByShiftID(ctx, req.ShiftID)
	if err != nil {
		return nil, err
	}

	resp := attendance.ToResponse(record)
	return &resp, nil
}

func (s *service) TodayBoard(ctx context.Context, actor user.Actor) ([]attendance.BoardEntry, error) {
	if err := user.Require(actor, user.PermissionViewTodayBoard); err != nil {
		return nil, err
	}

	now := s.now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	details, err := s.shifts.ListByRange(ctx, dayStart, dayStart.AddDate(0, 0, 1))
	if err != nil {
		return nil, err
	}

	var active []*shift.Detail
	shiftIDs := make([]string, 0, len(details))
	for _, d := range details {
		if d.Status != shift.StatusPublished && d.Status != shift.StatusCompleted {
			continue
		}
		active = append(active, d)
		shiftIDs = append(shiftIDs, d.ID)
	}

	records, err := s.repo.ListForShifts(ctx, shiftIDs)
	if err != nil {
		return nil, err
	}

	entries := make([]attendance.BoardEntry, len(active))
	for i, d := range active {
		entry := attendance.BoardEntry{Shift: shift.DetailToResponse(d)}
		if record, ok := records[d.ID]; ok {
			resp := attendance.ToResponse(record)
			entry.Attendance = &resp
		}
		entries[i] = entry
	}
	return entries, nil
}

func (s *service) GetForShift(ctx context.Context, actor user.Actor, shiftID string) (*attendance.AttendanceResponse, error) {
	sh, err := s.shifts.GetByID(ctx, shiftID)
	if err != nil {
		return nil, err
	}
	if !actor.IsOperator() && sh.UserID != actor.UserID {
		return nil, user.ErrNotResourceOwner
	}

	record, err := s.repo.GetByShiftID(ctx, shiftID)
	if err != nil {
		return nil, err
	}

	resp := attendance.ToResponse(record)
	return &resp, nil
}
