package timeoff

import "errors"

var (
	ErrTimeOffNotFound        = errors.New("time off request not found")
	ErrTimeOffAlreadyReviewed = errors.New("time off request was already reviewed")
	ErrInvalidDateRange       = errors.New("end date must be on or after start date")
)
