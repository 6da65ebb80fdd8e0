package timeoff

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, r *Request) error
	GetByID(ctx context.Context, id string) (*Request, error)
	// Review transitions a PENDING request to the given status with reviewer
	// and timestamp, reporting whether the row was still pending.
	Review(ctx context.Context, id string, to Status, reviewedBy string, reason *string, now time.Time) (bool, error)
	// Cancel moves a PENDING request to CANCELLED.
	Cancel(ctx context.Context, id string) (bool, error)
	ListAll(ctx context.Context) ([]*Detail, error)
	ListByUser(ctx context.Context, userID string) ([]*Detail, error)
}
