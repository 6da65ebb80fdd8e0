package shift

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, s *Shift) error
	GetByID(ctx context.Context, id string) (*Shift, error)
	Update(ctx context.Context, s *Shift) error
	Delete(ctx context.Context, id string) error

	// Publish marks the given drafts published and returns the owner id of
	// every row actually transitioned. Already-published shifts are skipped.
	Publish(ctx context.Context, ids []string, now time.Time) ([]string, error)

	// CompareAndSetStatus transitions id from "from" to "to" and reports
	// whether the row was in the expected state.
	CompareAndSetStatus(ctx context.Context, id string, from, to Status, now time.Time) (bool, error)

	// ReassignOwner moves the shift to a new owner, used on swap approval.
	ReassignOwner(ctx context.Context, id, newUserID string, now time.Time) error

	// ListByRange returns all shifts with start_time in [from, to).
	ListByRange(ctx context.Context, from, to time.Time) ([]*Detail, error)
	ListByUser(ctx context.Context, userID string, statuses []Status) ([]*Detail, error)
	NextForUser(ctx context.Context, userID string, after time.Time) (*Detail, error)

	AddHistory(ctx context.Context, h *HistoryEntry) error
	ListHistory(ctx context.Context, shiftID string) ([]*HistoryEntry, error)

	// ListReminderDue returns published shifts starting inside (now, until]
	// that have not had a reminder sent.
	ListReminderDue(ctx context.Context, now, until time.Time) ([]*Detail, error)
	// MarkReminderSent stamps reminder_sent_at and reports whether this call
	// won the race.
	MarkReminderSent(ctx context.Context, id string, now time.Time) (bool, error)

	// ListMissedClockIn returns published shifts that started before cutoff
	// with no clock-in recorded and no missed flag set.
	ListMissedClockIn(ctx context.Context, cutoff time.Time) ([]*Detail, error)
	MarkMissedFlagged(ctx context.Context, id string, now time.Time) (bool, error)
}
