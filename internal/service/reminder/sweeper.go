package reminder

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"

	"github.com/shiftline/shiftline-backend-go/internal/domain/attendance"
	"github.com/shiftline/shiftline-backend-go/internal/domain/notification"
	"github.com/shiftline/shiftline-backend-go/internal/domain/shift"
	"github.com/shiftline/shiftline-backend-go/internal/domain/user"
	"github.com/shiftline/shiftline-backend-go/internal/pkg/sms"
)

const (
	// reminderLead is how far before its start a shift triggers a reminder.
	reminderLead = 30 * time.Minute
	// missedGrace is how long after its start a shift waits for a clock-in
	// before being flagged.
	missedGrace = 10 * time.Minute

	sweepTimeout = 60 * time.Second
)

// Sweeper runs the time-driven notifications: shift reminders and missed
// clock-in flags. Both sweeps are guarded by conditional stamps on the shift
// row, so overlapping runs never double-send.
type Sweeper struct {
	shifts     shift.Repository
	attendance attendance.Repository
	users      user.Repository
	notifier   notification.Service
	logger     *slog.Logger
	now        func() time.Time
	cron       *cron.Cron
}

func NewSweeper(shifts shift.Repository, att attendance.Repository, users user.Repository, notifier notification.Service, logger *slog.Logger) *Sweeper {
	return &Sweeper{
		shifts:     shifts,
		attendance: att,
		users:      users,
		notifier:   notifier,
		logger:     logger,
		now:        time.Now,
	}
}

// Start schedules both sweeps every minute.
func (s *Sweeper) Start() error {
	s.cron = cron.New()

	_, err := s.cron.AddFunc("* * * * *", func() {
		ctx, cancel := context.WithTimeout(context.Background(), sweepTimeout)
		defer cancel()

		if err := s.SweepReminders(ctx); err != nil {
			s.logger.Error("reminder sweep failed", "error", err)
		}
		if err := s.SweepMissedClockIns(ctx); err != nil {
			s.logger.Error("missed clock-in sweep failed", "error", err)
		}
	})
	if err != nil {
		return err
	}

	s.cron.Start()
	return nil
}

func (s *Sweeper) Stop() {
	if s.cron != nil {
		<-s.cron.Stop().Done()
	}
}

// SweepReminders notifies owners of shifts starting within the lead window.
func (s *Sweeper) SweepReminders(ctx context.Context) error {
	now := s.now()

	due, err := s.shifts.ListReminderDue(ctx, now, now.Add(reminderLead))
	if err != nil {
		return err
	}

	for _, d := range due {
		won, err := s.shifts.MarkReminderSent(ctx, d.ID, now)
		if err != nil {
			s.logger.Warn("reminder stamp failed", "shift_id", d.ID, "error", err)
			continue
		}
		if !won {
			continue
		}

		err = s.notifier.Notify(ctx, []string{d.UserID}, notification.TypeReminder,
			notification.DefaultMessage(notification.TypeReminder))
		if err != nil {
			s.logger.Warn("reminder notify failed", "shift_id", d.ID, "error", err)
			continue
		}
		s.notifier.EscalateSMS([]string{d.UserID}, sms.ShiftReminder(d.RoleName))
	}
	return nil
}

// SweepMissedClockIns flags published shifts whose owner never clocked in
// within the grace period and alerts every operator.
func (s *Sweeper) SweepMissedClockIns(ctx context.Context) error {
	now := s.now()

	missed, err := s.shifts.ListMissedClockIn(ctx, now.Add(-missedGrace))
	if err != nil {
		return err
	}
	if len(missed) == 0 {
		return nil
	}

	operators, err := s.users.ListOperators(ctx)
	if err != nil {
		return err
	}
	operatorIDs := make([]string, len(operators))
	for i, op := range operators {
		operatorIDs[i] = op.ID
	}

	for _, d := range missed {
		won, err := s.shifts.MarkMissedFlagged(ctx, d.ID, now)
		if err != nil {
			s.logger.Warn("missed flag stamp failed", "shift_id", d.ID, "error", err)
			continue
		}
		if !won {
			continue
		}

		if err := s.attendance.MarkMissed(ctx, uuid.New().String(), d.ID); err != nil {
			s.logger.Warn("missed attendance upsert failed", "shift_id", d.ID, "error", err)
		}

		err = s.notifier.Notify(ctx, operatorIDs, notification.TypeMissedClockIn,
			notification.DefaultMessage(notification.TypeMissedClockIn))
		if err != nil {
			s.logger.Warn("missed clock-in notify failed", "shift_id", d.ID, "error", err)
		}
	}
	return nil
}
