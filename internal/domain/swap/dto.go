package swap

import "time"

type CreateSwapRequest struct {
	ShiftID string `json:"shift_id" validate:"required,uuid"`
}

type DenySwapRequest struct {
	Reason string `json:"reason" validate:"required,max=500"`
}

type SwapResponse struct {
	ID             string     `json:"id"`
	ShiftID        string     `json:"shift_id"`
	RequesterID    string     `json:"requester_id"`
	RequesterName  string     `json:"requester_name,omitempty"`
	TargetUserID   *string    `json:"target_user_id,omitempty"`
	TargetUserName *string    `json:"target_user_name,omitempty"`
	RoleName       string     `json:"role_name,omitempty"`
	ShiftStartTime time.Time  `json:"shift_start_time,omitempty"`
	ShiftEndTime   time.Time  `json:"shift_end_time,omitempty"`
	Status         Status     `json:"status"`
	ApprovedBy     *string    `json:"approved_by,omitempty"`
	ApprovedAt     *time.Time `json:"approved_at,omitempty"`
	DenialReason   *string    `json:"denial_reason,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

func ToResponse(s *ShiftSwap) SwapResponse {
	return SwapResponse{
		ID:           s.ID,
		ShiftID:      s.ShiftID,
		RequesterID:  s.RequesterID,
		TargetUserID: s.TargetUserID,
		Status:       s.Status,
		ApprovedBy:   s.ApprovedBy,
		ApprovedAt:   s.ApprovedAt,
		DenialReason: s.DenialReason,
		CreatedAt:    s.CreatedAt,
	}
}

func DetailToResponse(d *Detail) SwapResponse {
	resp := ToResponse(&d.ShiftSwap)
	resp.RequesterName = d.RequesterName
	resp.TargetUserName = d.TargetUserName
	resp.RoleName = d.RoleName
	resp.ShiftStartTime = d.ShiftStartTime
	resp.ShiftEndTime = d.ShiftEndTime
	return resp
}
