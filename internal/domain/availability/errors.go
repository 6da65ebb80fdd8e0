package availability

import "errors"

var (
	ErrChangeRequestNotFound        = errors.New("availability change request not found")
	ErrChangeRequestAlreadyReviewed = errors.New("availability change request was already reviewed")
)
