package settings

import (
	"context"

	"github.com/shiftline/shiftline-backend-go/internal/domain/user"
)

type Service interface {
	// Get returns the saved settings, falling back to Defaults before the
	// first save.
	Get(ctx context.Context, actor user.Actor) (*SettingsResponse, error)
	Update(ctx context.Context, actor user.Actor, req UpdateSettingsRequest) (*SettingsResponse, error)
}
