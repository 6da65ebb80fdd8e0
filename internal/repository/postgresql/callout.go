package postgresql

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/shiftline/shiftline-backend-go/internal/domain/callout"
	"github.com/shiftline/shiftline-backend-go/internal/pkg/database"
)

type CalloutRepository struct {
	db *database.DB
}

func NewCalloutRepository(db *database.DB) *CalloutRepository {
	return &CalloutRepository{db: db}
}

const calloutDetailQuery = `
	SELECT c.id, c.user_id, c.shift_id, c.reason, c.created_at,
	       u.name, wr.name, s.start_time, s.end_time
	FROM callouts c
	JOIN users u ON u.id = c.user_id
	JOIN shifts s ON s.id = c.shift_id
	JOIN work_roles wr ON wr.id = s.role_id`

func (r *CalloutRepository) collectDetails(rows pgx.Rows) ([]*callout.Detail, error) {
	defer rows.Close()

	var details []*callout.Detail
	for rows.Next() {
		var d callout.Detail
		err := rows.Scan(
			&d.ID, &d.UserID, &d.ShiftID, &d.Reason, &d.CreatedAt,
			&d.UserName, &d.RoleName, &d.ShiftStartTime, &d.ShiftEndTime,
		)
		if err != nil {
			return nil, err
		}
		details = append(details, &d)
	}
	return details, rows.Err()
}

func (r *CalloutRepository) Create(ctx context.Context, c *callout.Callout) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO callouts (id, user_id, shift_id, reason, created_at)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := q.Exec(ctx, query, c.ID, c.UserID, c.ShiftID, c.Reason, c.CreatedAt)
	return err
}

func (r *CalloutRepository) ListOpen(ctx context.Context, now time.Time) ([]*callout.Detail, error) {
	q := GetQuerier(ctx, r.db)

	query := calloutDetailQuery + `
		WHERE s.start_time > $1
		ORDER BY c.created_at DESC`

	rows, err := q.Query(ctx, query, now)
	if err != nil {
		return nil, err
	}
	return r.collectDetails(rows)
}

func (r *CalloutRepository) ListByUser(ctx context.Context, userID string) ([]*callout.Detail, error) {
	q := GetQuerier(ctx, r.db)

	query := calloutDetailQuery + `
		WHERE c.user_id = $1
		ORDER BY c.created_at DESC`

	rows, err := q.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	return r.collectDetails(rows)
}
