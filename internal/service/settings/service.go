package settings

import (
	"context"
	"errors"
	"time"

	"github.com/shiftline/shiftline-backend-go/internal/domain/settings"
	"github.com/shiftline/shiftline-backend-go/internal/domain/user"
	"github.com/shiftline/shiftline-backend-go/internal/pkg/validator"
)

type service struct {
	repo settings.Repository
	now  func() time.Time
}

func NewSettingsService(repo settings.Repository) settings.Service {
	return &service{
		repo: repo,
		now:  time.Now,
	}
}

func (s *service) Get(ctx context.Context, actor user.Actor) (*settings.SettingsResponse, error) {
	stored, err := s.repo.Get(ctx)
	if errors.Is(err, settings.ErrSettingsNotFound) {
		stored = settings.Defaults()
	} else if err != nil {
		return nil, err
	}

	resp := settings.ToResponse(stored)
	return &resp, nil
}

func (s *service) Update(ctx context.Context, actor user.Actor, req settings.UpdateSettingsRequest) (*settings.SettingsResponse, error) {
	if err := user.Require(actor, user.PermissionManageSettings); err != nil {
		return nil, err
	}
	if err := validator.Struct(req); err != nil {
		return nil, err
	}

	updated := &settings.BusinessSettings{
		MaxStaffCapacity:  req.MaxStaffCapacity,
		OptimalStaffMin:   req.OptimalStaffMin,
		OptimalStaffMax:   req.OptimalStaffMax,
		MaxFrontOfHouse:   req.MaxFrontOfHouse,
		MaxBackOfHouse:    req.MaxBackOfHouse,
		StandardOpenTime:  req.StandardOpenTime,
		StandardCloseTime: req.StandardCloseTime,
		AverageHourlyWage: req.AverageHourlyWage,
		OvertimeThreshold: req.OvertimeThreshold,
		UpdatedAt:         s.now(),
	}

	if err := s.repo.Upsert(ctx, updated); err != nil {
		return nil, err
	}

	resp := settings.ToResponse(updated)
	return &resp, nil
}
