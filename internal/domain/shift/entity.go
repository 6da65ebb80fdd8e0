package shift

import "time"

type Status string

const (
	StatusDraft     Status = "DRAFT"
	StatusPublished Status = "PUBLISHED"
	StatusCompleted Status = "COMPLETED"
	StatusCancelled Status = "CANCELLED"
)

type Shift struct {
	ID              string
	UserID          string
	RoleID          string
	StartTime       time.Time
	EndTime         time.Time
	Status          Status
	PublishedAt     *time.Time
	ReminderSentAt  *time.Time
	MissedFlaggedAt *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// IsPublished reports whether the shift has ever been published. Published
// shifts keep their published_at through later transitions.
func (s *Shift) IsPublished() bool {
	return s.PublishedAt != nil
}

// Detail is a shift joined with its owner and work role names for list views.
type Detail struct {
	Shift
	UserName string
	RoleName string
}

// Snapshot is the jsonb payload stored in shift history rows.
type Snapshot struct {
	UserID    string    `json:"user_id"`
	RoleID    string    `json:"role_id"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	Status    Status    `json:"status"`
}

func (s *Shift) Snapshot() Snapshot {
	return Snapshot{
		UserID:    s.UserID,
		RoleID:    s.RoleID,
		StartTime: s.StartTime,
		EndTime:   s.EndTime,
		Status:    s.Status,
	}
}

// HistoryEntry records one mutation of an already-published shift.
type HistoryEntry struct {
	ID        string
	ShiftID   string
	ChangedBy string
	OldData   Snapshot
	NewData   Snapshot
	CreatedAt time.Time
}
