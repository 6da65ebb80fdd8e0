package swap

import "time"

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusClaimed   Status = "CLAIMED"
	StatusApproved  Status = "APPROVED"
	StatusDenied    Status = "DENIED"
	StatusCancelled Status = "CANCELLED"
)

// ShiftSwap tracks a shift being offered up and claimed by a coworker.
// Approval reassigns the shift to the claimant.
type ShiftSwap struct {
	ID           string
	ShiftID      string
	RequesterID  string
	TargetUserID *string
	Status       Status
	ApprovedBy   *string
	ApprovedAt   *time.Time
	DenialReason *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Detail joins the swap with shift timing and participant names.
type Detail struct {
	ShiftSwap
	RequesterName  string
	TargetUserName *string
	RoleName       string
	ShiftStartTime time.Time
	ShiftEndTime   time.Time
}
