package swap

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, s *ShiftSwap) error
	GetByID(ctx context.Context, id string) (*ShiftSwap, error)

	// Claim sets the target user on a PENDING swap and reports whether the
	// claim won.
	Claim(ctx context.Context, id, userID string, now time.Time) (bool, error)
	// Resolve transitions the swap from "from" to "to" recording the
	// reviewer and optional denial reason, and reports whether the row was
	// still in the expected state.
	Resolve(ctx context.Context, id string, from, to Status, reviewedBy *string, reason *string, now time.Time) (bool, error)

	ListAll(ctx context.Context) ([]*Detail, error)
	// ListVisibleTo returns swaps the employee participates in plus every
	// open PENDING swap.
	ListVisibleTo(ctx context.Context, userID string) ([]*Detail, error)
}
