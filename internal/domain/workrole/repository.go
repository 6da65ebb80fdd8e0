package workrole

import "context"

type Repository interface {
	Create(ctx context.Context, r *WorkRole) error
	GetByID(ctx context.Context, id string) (*WorkRole, error)
	GetByName(ctx context.Context, name string) (*WorkRole, error)
	List(ctx context.Context) ([]*WorkRole, error)
	Update(ctx context.Context, r *WorkRole) error
	Delete(ctx context.Context, id string) error
}
