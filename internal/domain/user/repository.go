package user

import "context"

type Repository interface {
	Create(ctx context.Context, u *User) error
	GetByID(ctx context.Context, id string) (*User, error)
	GetByExternalID(ctx context.Context, externalID string) (*User, error)
	List(ctx context.Context, role *Role) ([]*User, error)
	ListOperators(ctx context.Context) ([]*User, error)
	Update(ctx context.Context, u *User) error
	UpdateAvailability(ctx context.Context, userID string, availability Availability) error
	Upsert(ctx context.Context, u *User) error
	Delete(ctx context.Context, id string) error
}
