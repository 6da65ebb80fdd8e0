package user

import "context"

type Service interface {
	// ResolveIdentity finds the internal user for a verified token identity,
	// creating the row on first contact.
	ResolveIdentity(ctx context.Context, identity Identity) (*User, error)
	Get(ctx context.Context, actor Actor, id string) (*UserResponse, error)
	List(ctx context.Context, actor Actor, role *Role) ([]UserResponse, error)
	Update(ctx context.Context, actor Actor, id string, req UpdateUserRequest) (*UserResponse, error)
	Delete(ctx context.Context, actor Actor, id string) error
	SyncUsers(ctx context.Context, actor Actor, req SyncUsersRequest) (int, error)
}
