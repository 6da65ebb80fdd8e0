package attendance

import (
	"context"
	"time"

	"github.com/shiftline/shiftline-backend-go/internal/domain/shift"
)

type Repository interface {
	// UpsertClockIn writes the clock-in row for a shift. Last write wins on
	// repeated clock-ins.
	UpsertClockIn(ctx context.Context, a *Attendance) error
	GetByShiftID(ctx context.Context, shiftID string) (*Attendance, error)
	// Complete stamps clock_out and moves the record to COMPLETED.
	Complete(ctx context.Context, shiftID string, at time.Time) error
	// MarkMissed upserts a MISSED record with no clock times.
	MarkMissed(ctx context.Context, id, shiftID string) error
	// ListForShifts returns attendance keyed by shift id.
	ListForShifts(ctx context.Context, shiftIDs []string) (map[string]*Attendance, error)
}

// ShiftReader is the slice of the shift store the attendance service needs.
type ShiftReader interface {
	GetByID(ctx context.Context, id string) (*shift.Shift, error)
	ListByRange(ctx context.Context, from, to time.Time) ([]*shift.Detail, error)
	CompareAndSetStatus(ctx context.Context, id string, from, to shift.Status, now time.Time) (bool, error)
}
