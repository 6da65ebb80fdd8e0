package user

import "time"

type Role string

const (
	RoleOperator Role = "OPERATOR"
	RoleEmployee Role = "EMPLOYEE"
)

// AvailabilitySlot describes a single weekday in a user's recurring weekly
// availability. Times are wall-clock "HH:MM" strings.
type AvailabilitySlot struct {
	Day       string `json:"day"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Available bool   `json:"available"`
}

// Availability maps a lowercase weekday name ("monday"..."sunday") to its
// slot. A nil map means the user has never set availability.
type Availability map[string]AvailabilitySlot

type User struct {
	ID           string
	ExternalID   string
	Name         string
	Email        string
	Role         Role
	WorkRoleID   *string
	Availability Availability
	PhoneNumber  *string
	SMSOptIn     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Actor identifies the authenticated caller on every service operation.
// It carries the internal user id, never the identity provider's subject.
type Actor struct {
	UserID string
	Role   Role
}

func (a Actor) IsOperator() bool {
	return a.Role == RoleOperator
}
