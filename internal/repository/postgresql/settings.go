package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/shiftline/shiftline-backend-go/internal/domain/settings"
	"github.com/shiftline/shiftline-backend-go/internal/pkg/database"
)

// business_settings holds exactly one row, keyed by a fixed id.
const settingsRowID = "default"

type SettingsRepository struct {
	db *database.DB
}

func NewSettingsRepository(db *database.DB) *SettingsRepository {
	return &SettingsRepository{db: db}
}

func (r *SettingsRepository) Get(ctx context.Context) (*settings.BusinessSettings, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT max_staff_capacity, optimal_staff_min, optimal_staff_max,
		       max_front_of_house, max_back_of_house,
		       standard_open_time, standard_close_time,
		       average_hourly_wage, overtime_threshold, updated_at
		FROM business_settings
		WHERE id = $1`

	var s settings.BusinessSettings
	err := q.QueryRow(ctx, query, settingsRowID).Scan(
		&s.MaxStaffCapacity, &s.OptimalStaffMin, &s.OptimalStaffMax,
		&s.MaxFrontOfHouse, &s.MaxBackOfHouse,
		&s.StandardOpenTime, &s.StandardCloseTime,
		&s.AverageHourlyWage, &s.OvertimeThreshold, &s.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, settings.ErrSettingsNotFound
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SettingsRepository) Upsert(ctx context.Context, s *settings.BusinessSettings) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO business_settings (
			id, max_staff_capacity, optimal_staff_min, optimal_staff_max,
			max_front_of_house, max_back_of_house,
			standard_open_time, standard_close_time,
			average_hourly_wage, overtime_threshold, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (id) DO UPDATE
		SET max_staff_capacity = EXCLUDED.max_staff_capacity,
		    optimal_staff_min = EXCLUDED.optimal_staff_min,
		    optimal_staff_max = EXCLUDED.optimal_staff_max,
		    max_front_of_house = EXCLUDED.max_front_of_house,
		    max_back_of_house = EXCLUDED.max_back_of_house,
		    standard_open_time = EXCLUDED.standard_open_time,
		    standard_close_time = EXCLUDED.standard_close_time,
		    average_hourly_wage = EXCLUDED.average_hourly_wage,
		    overtime_threshold = EXCLUDED.overtime_threshold,
		    updated_at = EXCLUDED.updated_at`

	_, err := q.Exec(ctx, query,
		settingsRowID, s.MaxStaffCapacity, s.OptimalStaffMin, s.OptimalStaffMax,
		s.MaxFrontOfHouse, s.MaxBackOfHouse,
		s.StandardOpenTime, s.StandardCloseTime,
		s.AverageHourlyWage, s.OvertimeThreshold, s.UpdatedAt,
	)
	return err
}
