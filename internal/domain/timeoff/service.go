package timeoff

import (
	"context"

	"github.com/shiftline/shiftline-backend-go/internal/domain/user"
)

type Service interface {
	Create(ctx context.Context, actor user.Actor, req CreateTimeOffRequest) (*TimeOffResponse, error)
	Approve(ctx context.Context, actor user.Actor, id string) (*TimeOffResponse, error)
	Deny(ctx context.Context, actor user.Actor, id string, req DenyTimeOffRequest) (*TimeOffResponse, error)
	Cancel(ctx context.Context, actor user.Actor, id string) error
	List(ctx context.Context, actor user.Actor) ([]TimeOffResponse, error)
}
