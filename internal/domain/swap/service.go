package swap

import (
	"context"

	"github.com/shiftline/shiftline-backend-go/internal/domain/user"
)

type Service interface {
	Request(ctx context.Context, actor user.Actor, req CreateSwapRequest) (*SwapResponse, error)
	Claim(ctx context.Context, actor user.Actor, id string) (*SwapResponse, error)
	Approve(ctx context.Context, actor user.Actor, id string) (*SwapResponse, error)
	Deny(ctx context.Context, actor user.Actor, id string, req DenySwapRequest) (*SwapResponse, error)
	Cancel(ctx context.Context, actor user.Actor, id string) error
	List(ctx context.Context, actor user.Actor) ([]SwapResponse, error)
}
