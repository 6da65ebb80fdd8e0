package user

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/shiftline/shiftline-backend-go/internal/domain/user"
	"github.com/shiftline/shiftline-backend-go/internal/pkg/validator"
)

type service struct {
	repo          user.Repository
	syncTokenHash string
	now           func() time.Time
}

// NewUserService wires the identity resolution and user administration
// operations. syncTokenHash is the bcrypt hash guarding the bulk sync
// endpoint; empty disables sync entirely.
func NewUserService(repo user.Repository, syncTokenHash string) user.Service {
	return &service{
		repo:          repo,
		syncTokenHash: syncTokenHash,
		now:           time.Now,
	}
}

// ResolveIdentity maps a verified token identity to the internal user row,
// creating it on first contact so provisioning is lazy.
func (s *service) ResolveIdentity(ctx context.Context, identity user.Identity) (*user.User, error) {
	if identity.ExternalID == "" {
		return nil, user.ErrMissingSubject
	}

	u, err := s.repo.GetByExternalID(ctx, identity.ExternalID)
	if err == nil {
		return u, nil
	}
	if !errors.Is(err, user.ErrUserNotFound) {
		return nil, err
	}

	role := identity.Role
	if role != user.RoleOperator && role != user.RoleEmployee {
		role = user.RoleEmployee
	}

	now := s.now()
	u = &user.User{
		ID:         uuid.New().String(),
		ExternalID: identity.ExternalID,
		Name:       identity.Name,
		Email:      identity.Email,
		Role:       role,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.repo.Create(ctx, u); err != nil {
		// A concurrent first request may have created the row already.
		if existing, lookupErr := s.repo.GetByExternalID(ctx, identity.ExternalID); lookupErr == nil {
			return existing, nil
		}
		return nil, err
	}
	return u, nil
}

func (s *service) Get(ctx context.Context, actor user.Actor, id string) (*user.UserResponse, error) {
	if !actor.IsOperator() && actor.UserID != id {
		return nil, user.ErrNotResourceOwner
	}

	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := user.ToResponse(u)
	return &resp, nil
}

func (s *service) List(ctx context.Context, actor user.Actor, role *user.Role) ([]user.UserResponse, error) {
	if err := user.Require(actor, user.PermissionManageUsers); err != nil {
		return nil, err
	}

	users, err := s.repo.List(ctx, role)
	if err != nil {
		return nil, err
	}

	responses := make([]user.UserResponse, len(users))
	for i, u := range users {
		responses[i] = user.ToResponse(u)
	}
	return responses, nil
}

func (s *service) Update(ctx context.Context, actor user.Actor, id string, req user.UpdateUserRequest) (*user.UserResponse, error) {
	if err := validator.Struct(req); err != nil {
		return nil, err
	}
	if !actor.IsOperator() && actor.UserID != id {
		return nil, user.ErrNotResourceOwner
	}
	// Name and work role assignments are operator-only; users manage their
	// own contact preferences.
	if !actor.IsOperator() && (req.Name != nil || req.WorkRoleID != nil) {
		return nil, user.ErrForbidden
	}

	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		u.Name = *req.Name
	}
	if req.WorkRoleID != nil {
		u.WorkRoleID = req.WorkRoleID
	}
	if req.PhoneNumber != nil {
		u.PhoneNumber = req.PhoneNumber
	}
	if req.SMSOptIn != nil {
		u.SMSOptIn = *req.SMSOptIn
	}
	u.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, u); err != nil {
		return nil, err
	}

	resp := user.ToResponse(u)
	return &resp, nil
}

func (s *service) Delete(ctx context.Context, actor user.Actor, id string) error {
	if err := user.Require(actor, user.PermissionManageUsers); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

// SyncUsers bulk-upserts users pushed from the identity provider. The caller
// must present the configured sync token in addition to operator rights.
func (s *service) SyncUsers(ctx context.Context, actor user.Actor, req user.SyncUsersRequest) (int, error) {
	if err := user.Require(actor, user.PermissionManageUsers); err != nil {
		return 0, err
	}
	if err := validator.Struct(req); err != nil {
		return 0, err
	}
	if s.syncTokenHash == "" {
		return 0, user.ErrInvalidSyncToken
	}
	if err := bcrypt.CompareHashAndPassword([]byte(s.syncTokenHash), []byte(req.Token)); err != nil {
		return 0, user.ErrInvalidSyncToken
	}

	now := s.now()
	count := 0
	for _, entry := range req.Users {
		u := &user.User{
			ID:         uuid.New().String(),
			ExternalID: entry.ExternalID,
			Name:       entry.Name,
			Email:      entry.Email,
			Role:       entry.Role,
			CreatedAt:  now,
			UpdatedAt:  now,
		}
		if err := s.repo.Upsert(ctx, u); err != nil {
			return count, err
		}
		count++
	}
	return count, nil
}
