package availability

import (
	"time"

	"github.com/shiftline/shiftline-backend-go/internal/domain/user"
)

type SubmitRequest struct {
	Availability user.Availability `json:"availability" validate:"required,min=1"`
	Reason       string            `json:"reason" validate:"max=500"`
}

type DenyRequest struct {
	Reason string `json:"reason" validate:"required,max=500"`
}

// SubmitResult distinguishes a first-time direct write from a queued change
// request.
type SubmitResult struct {
	Applied bool                   `json:"applied"`
	Request *ChangeRequestResponse `json:"request,omitempty"`
}

type ChangeRequestResponse struct {
	ID               string            `json:"id"`
	UserID           string            `json:"user_id"`
	UserName         string            `json:"user_name,omitempty"`
	RequestedChanges user.Availability `json:"requested_changes"`
	Reason           string            `json:"reason,omitempty"`
	Status           Status            `json:"status"`
	ReviewedBy       *string           `json:"reviewed_by,omitempty"`
	ReviewedAt       *time.Time        `json:"reviewed_at,omitempty"`
	DenialReason     *string           `json:"denial_reason,omitempty"`
	CreatedAt        time.Time         `json:"created_at"`
}

func ToResponse(r *ChangeRequest) ChangeRequestResponse {
	return ChangeRequestResponse{
		ID:               r.ID,
		UserID:           r.UserID,
		RequestedChanges: r.RequestedChanges,
		Reason:           r.Reason,
		Status:           r.Status,
		ReviewedBy:       r.ReviewedBy,
		ReviewedAt:       r.ReviewedAt,
		DenialReason:     r.DenialReason,
		CreatedAt:        r.CreatedAt,
	}
}

func DetailToResponse(d *Detail) ChangeRequestResponse {
	resp := ToResponse(&d.ChangeRequest)
	resp.UserName = d.UserName
	return resp
}
