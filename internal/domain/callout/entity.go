package callout

import "time"

// Callout records an employee calling out of an upcoming shift. The shift
// itself is cancelled as part of the same transaction.
type Callout struct {
	ID        string
	UserID    string
	ShiftID   string
	Reason    string
	CreatedAt time.Time
}

// Detail joins the callout with the affected shift for coverage views.
type Detail struct {
	Callout
	UserName       string
	RoleName       string
	ShiftStartTime time.Time
	ShiftEndTime   time.Time
}
