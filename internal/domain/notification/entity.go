package notification

import "time"

type Type string

const (
	TypePublish       Type = "PUBLISH"
	TypeUpdate        Type = "UPDATE"
	TypeCancel        Type = "CANCEL"
	TypeReminder      Type = "REMINDER"
	TypeCallout       Type = "CALLOUT"
	TypeMissedClockIn Type = "MISSED_CLOCKIN"
)

// DefaultMessage returns the standard message body for a notification type.
func DefaultMessage(t Type) string {
	switch t {
	case TypePublish:
		return "Your schedule for next week is live."
	case TypeUpdate:
		return "Your shift has been updated."
	case TypeCancel:
		return "Your shift has been cancelled."
	case TypeReminder:
		return "Your shift starts soon."
	case TypeCallout:
		return "Employee called out for shift."
	case TypeMissedClockIn:
		return "No clock-in detected."
	default:
		return ""
	}
}

type Notification struct {
	ID      string
	UserID  string
	Type    Type
	Message string
	Read    bool
	SentAt  time.Time
}

type SMSStatus string

const (
	SMSStatusSent       SMSStatus = "SENT"
	SMSStatusFailed     SMSStatus = "FAILED"
	SMSStatusSuppressed SMSStatus = "SUPPRESSED"
)

// SMSLog records the outcome of one outbound text attempt.
type SMSLog struct {
	ID           string
	UserID       string
	PhoneNumber  string
	Message      string
	Status       SMSStatus
	ErrorMessage *string
	CreatedAt    time.Time
}
