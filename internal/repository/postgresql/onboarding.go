package postgresql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/shiftline/shiftline-backend-go/internal/domain/onboarding"
	"github.com/shiftline/shiftline-backend-go/internal/pkg/database"
)

type OnboardingRepository struct {
	db *database.DB
}

func NewOnboardingRepository(db *database.DB) *OnboardingRepository {
	return &OnboardingRepository{db: db}
}

func (r *OnboardingRepository) GetByUserID(ctx context.Context, userID string) (*onboarding.Progress, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT user_id, completed_steps, current_step, is_completed, skipped_tour, completed_at, updated_at
		FROM onboarding_progress
		WHERE user_id = $1`

	var p onboarding.Progress
	var steps []byte
	err := q.QueryRow(ctx, query, userID).Scan(
		&p.UserID, &steps, &p.CurrentStep, &p.IsCompleted, &p.SkippedTour, &p.CompletedAt, &p.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, onboarding.ErrProgressNotFound
	}
	if err != nil {
		return nil, err
	}
	if len(steps) > 0 {
		if err := json.Unmarshal(steps, &p.CompletedSteps); err != nil {
			return nil, fmt.Errorf("decode completed steps: %w", err)
		}
	}
	return &p, nil
}

func (r *OnboardingRepository) Upsert(ctx context.Context, p *onboarding.Progress) error {
	q := GetQuerier(ctx, r.db)

	steps, err := json.Marshal(p.CompletedSteps)
	if err != nil {
		return fmt.Errorf("encode completed steps: %w", err)
	}

	query := `
		INSERT INTO onboarding_progress (user_id, completed_steps, current_step, is_completed, skipped_tour, completed_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (user_id) DO UPDATE
		SET completed_steps = EXCLUDED.completed_steps, current_step = EXCLUDED.current_step,
		    is_completed = EXCLUDED.is_completed, skipped_tour = EXCLUDED.skipped_tour,
		    completed_at = EXCLUDED.completed_at, updated_at = EXCLUDED.updated_at`

	_, err = q.Exec(ctx, query,
		p.UserID, steps, p.CurrentStep, p.IsCompleted, p.SkippedTour, p.CompletedAt, p.UpdatedAt,
	)
	return err
}

func (r *OnboardingRepository) Delete(ctx context.Context, userID string) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `DELETE FROM onboarding_progress WHERE user_id = $1`, userID)
	return err
}
