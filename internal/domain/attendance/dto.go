package attendance

import (
	"time"

	"github.com/shiftline/shiftline-backend-go/internal/domain/shift"
)

type ClockInRequest struct {
	ShiftID   string   `json:"shift_id" validate:"required,uuid"`
	Latitude  *float64 `json:"latitude" validate:"omitempty,latitude"`
	Longitude *float64 `json:"longitude" validate:"omitempty,longitude"`
}

type ClockOutRequest struct {
	ShiftID string `json:"shift_id" validate:"required,uuid"`
}

type AttendanceResponse struct {
	ID       string     `json:"id"`
	ShiftID  string     `json:"shift_id"`
	ClockIn  *time.Time `json:"clock_in,omitempty"`
	ClockOut *time.Time `json:"clock_out,omitempty"`
	Status   Status     `json:"status"`
}

func ToResponse(a *Attendance) AttendanceResponse {
	return AttendanceResponse{
		ID:       a.ID,
		ShiftID:  a.ShiftID,
		ClockIn:  a.ClockIn,
		ClockOut: a.ClockOut,
		Status:   a.Status,
	}
}

// BoardEntry pairs a shift with its attendance record for the operator's
// today view. Attendance is nil when nobody has clocked in yet.
type BoardEntry struct {
	Shift      shift.ShiftResponse `json:"shift"`
	Attendance *AttendanceResponse `json:"attendance,omitempty"`
}
