package callout

import (
	"context"

	"github.com/shiftline/shiftline-backend-go/internal/domain/user"
)

type Service interface {
	Create(ctx context.Context, actor user.Actor, req CreateCalloutRequest) (*CalloutResponse, error)
	ListOpen(ctx context.Context, actor user.Actor) ([]CalloutResponse, error)
	ListByUser(ctx context.Context, actor user.Actor, userID string) ([]CalloutResponse, error)
}
