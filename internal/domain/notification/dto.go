package notification

import "time"

type NotificationResponse struct {
	ID      string    `json:"id"`
	Type    Type      `json:"type"`
	Message string    `json:"message"`
	Read    bool      `json:"read"`
	SentAt  time.Time `json:"sent_at"`
}

func ToResponse(n *Notification) NotificationResponse {
	return NotificationResponse{
		ID:      n.ID,
		Type:    n.Type,
		Message: n.Message,
		Read:    n.Read,
		SentAt:  n.SentAt,
	}
}

type UnreadCountResponse struct {
	Count int `json:"count"`
}
