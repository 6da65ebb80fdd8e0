package settings

import "time"

type UpdateSettingsRequest struct {
	MaxStaffCapacity  int     `json:"max_staff_capacity" validate:"required,min=1"`
	OptimalStaffMin   int     `json:"optimal_staff_min" validate:"required,min=1"`
	OptimalStaffMax   int     `json:"optimal_staff_max" validate:"required,gtefield=OptimalStaffMin"`
	MaxFrontOfHouse   int     `json:"max_front_of_house" validate:"required,min=1"`
	MaxBackOfHouse    int     `json:"max_back_of_house" validate:"required,min=1"`
	StandardOpenTime  string  `json:"standard_open_time" validate:"required,datetime=15:04"`
	StandardCloseTime string  `json:"standard_close_time" validate:"required,datetime=15:04"`
	AverageHourlyWage float64 `json:"average_hourly_wage" validate:"required,gt=0"`
	OvertimeThreshold int     `json:"overtime_threshold" validate:"required,min=1"`
}

type SettingsResponse struct {
	MaxStaffCapacity  int        `json:"max_staff_capacity"`
	OptimalStaffMin   int        `json:"optimal_staff_min"`
	OptimalStaffMax   int        `json:"optimal_staff_max"`
	MaxFrontOfHouse   int        `json:"max_front_of_house"`
	MaxBackOfHouse    int        `json:"max_back_of_house"`
	StandardOpenTime  string     `json:"standard_open_time"`
	StandardCloseTime string     `json:"standard_close_time"`
	AverageHourlyWage float64    `json:"average_hourly_wage"`
	OvertimeThreshold int        `json:"overtime_threshold"`
	UpdatedAt         *time.Time `json:"updated_at,omitempty"`
}

func ToResponse(s *BusinessSettings) SettingsResponse {
	resp := SettingsResponse{
		MaxStaffCapacity:  s.MaxStaffCapacity,
		OptimalStaffMin:   s.OptimalStaffMin,
		OptimalStaffMax:   s.OptimalStaffMax,
		MaxFrontOfHouse:   s.MaxFrontOfHouse,
		MaxBackOfHouse:    s.MaxBackOfHouse,
		StandardOpenTime:  s.StandardOpenTime,
		StandardCloseTime: s.StandardCloseTime,
		AverageHourlyWage: s.AverageHourlyWage,
		OvertimeThreshold: s.OvertimeThreshold,
	}
	if !s.UpdatedAt.IsZero() {
		resp.UpdatedAt = &s.UpdatedAt
	}
	return resp
}
