package callout

import "time"

type CreateCalloutRequest struct {
	ShiftID string `json:"shift_id" validate:"required,uuid"`
	Reason  string `json:"reason" validate:"required,max=500"`
}

type CalloutResponse struct {
	ID             string    `json:"id"`
	UserID         string    `json:"user_id"`
	UserName       string    `json:"user_name,omitempty"`
	ShiftID        string    `json:"shift_id"`
	RoleName       string    `json:"role_name,omitempty"`
	ShiftStartTime time.Time `json:"shift_start_time,omitempty"`
	ShiftEndTime   time.Time `json:"shift_end_time,omitempty"`
	Reason         string    `json:"reason"`
	CreatedAt      time.Time `json:"created_at"`
}

func ToResponse(c *Callout) CalloutResponse {
	return CalloutResponse{
		ID:        c.ID,
		UserID:    c.UserID,
		ShiftID:   c.ShiftID,
		Reason:    c.Reason,
		CreatedAt: c.CreatedAt,
	}
}

func DetailToResponse(d *Detail) CalloutResponse {
	resp := ToResponse(&d.Callout)
	resp.UserName = d.UserName
	resp.RoleName = d.RoleName
	resp.ShiftStartTime = d.ShiftStartTime
	resp.ShiftEndTime = d.ShiftEndTime
	return resp
}
