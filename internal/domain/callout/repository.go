package callout

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, c *Callout) error
	// ListOpen returns callouts whose shift has not started yet, newest first.
	ListOpen(ctx context.Context, now time.Time) ([]*Detail, error)
	ListByUser(ctx context.Context, userID string) ([]*Detail, error)
}
