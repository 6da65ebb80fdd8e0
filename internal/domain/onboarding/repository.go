package onboarding

import "context"

type Repository interface {
	GetByUserID(ctx context.Context, userID string) (*Progress, error)
	Upsert(ctx context.Context, p *Progress) error
	Delete(ctx context.Context, userID string) error
}
