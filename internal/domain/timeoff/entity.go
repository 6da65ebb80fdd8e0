package timeoff

import "time"

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusApproved  Status = "APPROVED"
	StatusDenied    Status = "DENIED"
	StatusCancelled Status = "CANCELLED"
)

type Request struct {
	ID           string
	UserID       string
	StartDate    time.Time
	EndDate      time.Time
	Reason       string
	Status       Status
	ReviewedBy   *string
	ReviewedAt   *time.Time
	DenialReason *string
	CreatedAt    time.Time
}

type Detail struct {
	Request
	UserName string
}
