package onboarding

import (
	"context"

	"github.com/shiftline/shiftline-backend-go/internal/domain/user"
)

type Service interface {
	Get(ctx context.Context, actor user.Actor) (*ProgressResponse, error)
	RecordStep(ctx context.Context, actor user.Actor, req RecordStepRequest) (*ProgressResponse, error)
	Complete(ctx context.Context, actor user.Actor) (*ProgressResponse, error)
	Skip(ctx context.Context, actor user.Actor) (*ProgressResponse, error)
	Reset(ctx context.Context, actor user.Actor) (*ProgressResponse, error)
}
