package settings

import "context"

type Repository interface {
	// Get returns the stored settings row, or ErrSettingsNotFound before the
	// first save.
	Get(ctx context.Context) (*BusinessSettings, error)
	Upsert(ctx context.Context, s *BusinessSettings) error
}
