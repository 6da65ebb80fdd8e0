package settings

import "time"

// BusinessSettings is a single-row aggregate holding the staffing capacity
// targets and operating defaults behind the capacity view.
type BusinessSettings struct {
	MaxStaffCapacity  int
	OptimalStaffMin   int
	OptimalStaffMax   int
	MaxFrontOfHouse   int
	MaxBackOfHouse    int
	StandardOpenTime  string
	StandardCloseTime string
	AverageHourlyWage float64
	OvertimeThreshold int
	UpdatedAt         time.Time
}

// Defaults are served until an operator saves settings for the first time.
func Defaults() *BusinessSettings {
	return &BusinessSettings{
		MaxStaffCapacity:  7,
		OptimalStaffMin:   5,
		OptimalStaffMax:   7,
		MaxFrontOfHouse:   3,
		MaxBackOfHouse:    4,
		StandardOpenTime:  "07:00",
		StandardCloseTime: "15:00",
		AverageHourlyWage: 15,
		OvertimeThreshold: 40,
	}
}
