package notification

import "context"

type Repository interface {
	CreateBatch(ctx context.Context, notifications []*Notification) error
	ListByUser(ctx context.Context, userID string, unreadOnly bool, limit int) ([]*Notification, error)
	UnreadCount(ctx context.Context, userID string) (int, error)
	// MarkRead flips a single notification owned by userID and reports
	// whether a row matched.
	MarkRead(ctx context.Context, id, userID string) (bool, error)
	MarkAllRead(ctx context.Context, userID string) error
	Delete(ctx context.Context, id, userID string) (bool, error)

	CreateSMSLog(ctx context.Context, l *SMSLog) error
}
