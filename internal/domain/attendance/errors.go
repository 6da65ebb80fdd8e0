package attendance

import "errors"

var (
	ErrAttendanceNotFound = errors.New("attendance record not found")
	ErrNotClockedIn       = errors.New("cannot clock out without clocking in first")
)
