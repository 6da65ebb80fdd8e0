package availability

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, r *ChangeRequest) error
	GetByID(ctx context.Context, id string) (*ChangeRequest, error)
	// Review transitions a PENDING request, reporting whether the row was
	// still pending.
	Review(ctx context.Context, id string, to Status, reviewedBy string, reason *string, now time.Time) (bool, error)
	Cancel(ctx context.Context, id string) (bool, error)
	ListAll(ctx context.Context) ([]*Detail, error)
	ListByUser(ctx context.Context, userID string) ([]*Detail, error)
}
