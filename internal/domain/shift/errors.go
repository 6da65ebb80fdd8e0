package shift

import "errors"

var (
	ErrShiftNotFound    = errors.New("shift not found")
	ErrInvalidTimeRange = errors.New("shift end time must be after start time")
	// ErrShiftStateChanged is returned when a conditional update finds the
	// shift no longer in the expected state.
	ErrShiftStateChanged = errors.New("shift state changed concurrently")
)
