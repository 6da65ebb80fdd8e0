package timeoff

import "time"

const dateLayout = "2006-01-02"

type CreateTimeOffRequest struct {
	StartDate string `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate   string `json:"end_date" validate:"required,datetime=2006-01-02"`
	Reason    string `json:"reason" validate:"required,max=500"`
}

// Dates parses the request's date strings. Validation has already checked
// the layout.
func (r CreateTimeOffRequest) Dates() (time.Time, time.Time, error) {
	start, err := time.Parse(dateLayout, r.StartDate)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := time.Parse(dateLayout, r.EndDate)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, end, nil
}

type DenyTimeOffRequest struct {
	Reason string `json:"reason" validate:"required,max=500"`
}

type TimeOffResponse struct {
	ID           string     `json:"id"`
	UserID       string     `json:"user_id"`
	UserName     string     `json:"user_name,omitempty"`
	StartDate    string     `json:"start_date"`
	EndDate      string     `json:"end_date"`
	Reason       string     `json:"reason"`
	Status       Status     `json:"status"`
	ReviewedBy   *string    `json:"reviewed_by,omitempty"`
	ReviewedAt   *time.Time `json:"reviewed_at,omitempty"`
	DenialReason *string    `json:"denial_reason,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

func ToResponse(r *Request) TimeOffResponse {
	return TimeOffResponse{
		ID:           r.ID,
		UserID:       r.UserID,
		StartDate:    r.StartDate.Format(dateLayout),
		EndDate:      r.EndDate.Format(dateLayout),
		Reason:       r.Reason,
		Status:       r.Status,
		ReviewedBy:   r.ReviewedBy,
		ReviewedAt:   r.ReviewedAt,
		DenialReason: r.DenialReason,
		CreatedAt:    r.CreatedAt,
	}
}

func DetailToResponse(d *Detail) TimeOffResponse {
	resp := ToResponse(&d.Request)
	resp.UserName = d.UserName
	return resp
}
