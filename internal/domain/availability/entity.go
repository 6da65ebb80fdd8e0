package availability

import (
	"time"

	"github.com/shiftline/shiftline-backend-go/internal/domain/user"
)

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusApproved  Status = "APPROVED"
	StatusDenied    Status = "DENIED"
	StatusCancelled Status = "CANCELLED"
)

// ChangeRequest holds a proposed replacement for a user's weekly
// availability. Approval overwrites the user row in the same transaction.
type ChangeRequest struct {
	ID               string
	UserID           string
	RequestedChanges user.Availability
	Reason           string
	Status           Status
	ReviewedBy       *string
	ReviewedAt       *time.Time
	DenialReason     *string
	CreatedAt        time.Time
}

type Detail struct {
	ChangeRequest
	UserName string
}
