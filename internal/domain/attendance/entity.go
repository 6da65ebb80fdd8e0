package attendance

import "time"

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusOnShift   Status = "ON_SHIFT"
	StatusCompleted Status = "COMPLETED"
	StatusMissed    Status = "MISSED"
)

// Attendance is the single clock record for a shift. shift_id is unique, so
// repeated clock-ins overwrite the same row.
type Attendance struct {
	ID        string
	ShiftID   string
	ClockIn   *time.Time
	ClockOut  *time.Time
	Status    Status
	Latitude  *float64
	Longitude *float64
}
