package shift

import "time"

type CreateShiftRequest struct {
	UserID    string    `json:"user_id" validate:"required,uuid"`
	RoleID    string    `json:"role_id" validate:"required,uuid"`
	StartTime time.Time `json:"start_time" validate:"required"`
	EndTime   time.Time `json:"end_time" validate:"required"`
}

type UpdateShiftRequest struct {
	UserID    string    `json:"user_id" validate:"required,uuid"`
	RoleID    string    `json:"role_id" validate:"required,uuid"`
	StartTime time.Time `json:"start_time" validate:"required"`
	EndTime   time.Time `json:"end_time" validate:"required"`
	Status    *Status   `json:"status" validate:"omitempty,oneof=DRAFT PUBLISHED COMPLETED CANCELLED"`
}

type PublishShiftsRequest struct {
	ShiftIDs []string `json:"shift_ids" validate:"required,min=1,dive,uuid"`
}

type PublishResult struct {
	Published int `json:"published"`
	Notified  int `json:"notified"`
}

type ShiftResponse struct {
	ID          string     `json:"id"`
	UserID      string     `json:"user_id"`
	UserName    string     `json:"user_name,omitempty"`
	RoleID      string     `json:"role_id"`
	RoleName    string     `json:"role_name,omitempty"`
	StartTime   time.Time  `json:"start_time"`
	EndTime     time.Time  `json:"end_time"`
	Status      Status     `json:"status"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
}

func ToResponse(s *Shift) ShiftResponse {
	return ShiftResponse{
		ID:          s.ID,
		UserID:      s.UserID,
		RoleID:      s.RoleID,
		StartTime:   s.StartTime,
		EndTime:     s.EndTime,
		Status:      s.Status,
		PublishedAt: s.PublishedAt,
	}
}

func DetailToResponse(d *Detail) ShiftResponse {
	resp := ToResponse(&d.Shift)
	resp.UserName = d.UserName
	resp.RoleName = d.RoleName
	return resp
}
