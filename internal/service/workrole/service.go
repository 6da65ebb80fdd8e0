package workrole

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/shiftline/shiftline-backend-go/internal/domain/user"
	"github.com/shiftline/shiftline-backend-go/internal/domain/workrole"
	"github.com/shiftline/shiftline-backend-go/internal/pkg/validator"
)

type service struct {
	repo workrole.Repository
	now  func() time.Time
}

func NewWorkRoleService(repo workrole.Repository) workrole.Service {
	return &service{
		repo: repo,
		now:  time.Now,
	}
}

func (s *service) Create(ctx context.Context, actor user.Actor, req workrole.CreateWorkRoleRequest) (*workrole.WorkRoleResponse, error) {
	if err := user.Require(actor, user.PermissionManageWorkRoles); err != nil {
		return nil, err
	}
	if err := validator.Struct(req); err != nil {
		return nil, err
	}

	if _, err := s.repo.GetByName(ctx, req.Name); err == nil {
		return nil, workrole.ErrWorkRoleNameExists
	} else if !errors.Is(err, workrole.ErrWorkRoleNotFound) {
		return nil, err
	}

	now := s.now()
	wr := &workrole.WorkRole{
		ID:        uuid.New().String(),
		Name:      req.Name,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, wr); err != nil {
		return nil, err
	}

	resp := workrole.ToResponse(wr)
	return &resp, nil
}

func (s *service) List(ctx context.Context, actor user.Actor) ([]workrole.WorkRoleResponse, error) {
	roles, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]workrole.WorkRoleResponse, len(roles))
	for i, r := range roles {
		responses[i] = workrole.ToResponse(r)
	}
	return responses, nil
}

func (s *service) Update(ctx context.Context, actor user.Actor, id string, req workrole.UpdateWorkRoleRequest) (*workrole.WorkRoleResponse, error) {
	if err := user.Require(actor, user.PermissionManageWorkRoles); err != nil {
		return nil, err
	}
	if err := validator.Struct(req); err != nil {
		return nil, err
	}

	wr, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if existing, err := s.repo.GetByName(ctx, req.Name); err == nil && existing.ID != id {
		return nil, workrole.ErrWorkRoleNameExists
	} else if err != nil && !errors.Is(err, workrole.ErrWorkRoleNotFound) {
		return nil, err
	}

	wr.Name = req.Name
	wr.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, wr); err != nil {
		return nil, err
	}

	resp := workrole.ToResponse(wr)
	return &resp, nil
}

func (s *service) Delete(ctx context.Context, actor user.Actor, id string) error {
	if err := user.Require(actor, user.PermissionManageWorkRoles); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
