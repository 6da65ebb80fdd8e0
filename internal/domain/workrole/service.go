package workrole

import (
	"context"

	"github.com/shiftline/shiftline-backend-go/internal/domain/user"
)

type Service interface {
	Create(ctx context.Context, actor user.Actor, req CreateWorkRoleRequest) (*WorkRoleResponse, error)
	List(ctx context.Context, actor user.Actor) ([]WorkRoleResponse, error)
	Update(ctx context.Context, actor user.Actor, id string, req UpdateWorkRoleRequest) (*WorkRoleResponse, error)
	Delete(ctx context.Context, actor user.Actor, id string) error
}
