package availability

import (
	"context"

	"github.com/shiftline/shiftline-backend-go/internal/domain/user"
)

type Service interface {
	// Submit applies availability directly for first-time setup, otherwise
	// queues a change request for operator review.
	Submit(ctx context.Context, actor user.Actor, req SubmitRequest) (*SubmitResult, error)
	Approve(ctx context.Context, actor user.Actor, id string) (*ChangeRequestResponse, error)
	Deny(ctx context.Context, actor user.Actor, id string, req DenyRequest) (*ChangeRequestResponse, error)
	Cancel(ctx context.Context, actor user.Actor, id string) error
	List(ctx context.Context, actor user.Actor) ([]ChangeRequestResponse, error)
}
