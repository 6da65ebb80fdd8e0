package notification

import (
	"context"

	"github.com/shiftline/shiftline-backend-go/internal/domain/user"
)

// Service is the single notification creation path. Every event that reaches
// a user goes through Notify; EscalateSMS adds a best-effort text on top.
type Service interface {
	// Notify writes one notification row per recipient.
	Notify(ctx context.Context, userIDs []string, typ Type, message string) error
	// EscalateSMS queues a text to each recipient with a phone number and
	// SMS opt-in. Delivery failures never reach the caller.
	EscalateSMS(userIDs []string, body string)

	List(ctx context.Context, actor user.Actor, unreadOnly bool) ([]NotificationResponse, error)
	UnreadCount(ctx context.Context, actor user.Actor) (int, error)
	MarkRead(ctx context.Context, actor user.Actor, id string) error
	MarkAllRead(ctx context.Context, actor user.Actor) error
	Delete(ctx context.Context, actor user.Actor, id string) error

	// Stop drains the SMS queue and stops the workers.
	Stop()
}
