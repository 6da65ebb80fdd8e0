package postgresql

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/shiftline/shiftline-backend-go/internal/domain/timeoff"
	"github.com/shiftline/shiftline-backend-go/internal/pkg/database"
)

type TimeOffRepository struct {
	db *database.DB
}

func NewTimeOffRepository(db *database.DB) *TimeOffRepository {
	return &TimeOffRepository{db: db}
}

const timeOffDetailQuery = `
	SELECT t.id, t.user_id, t.start_date, t.end_date, t.reason, t.status,
	       t.reviewed_by, t.reviewed_at, t.denial_reason, t.created_at, u.name
	FROM time_off_requests t
	JOIN users u ON u.id = t.user_id`

func (r *TimeOffRepository) collectDetails(rows pgx.Rows) ([]*timeoff.Detail, error) {
	defer rows.Close()

	var details []*timeoff.Detail
	for rows.Next() {
		var d timeoff.Detail
		err := rows.Scan(
			&d.ID, &d.UserID, &d.StartDate, &d.EndDate, &d.Reason, &d.Status,
			&d.ReviewedBy, &d.ReviewedAt, &d.DenialReason, &d.CreatedAt, &d.UserName,
		)
		if err != nil {
			return nil, err
		}
		details = append(details, &d)
	}
	return details, rows.Err()
}

func (r *TimeOffRepository) Create(ctx context.Context, req *timeoff.Request) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO time_off_requests (id, user_id, start_date, end_date, reason, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := q.Exec(ctx, query,
		req.ID, req.UserID, req.StartDate, req.EndDate, req.Reason, req.Status, req.CreatedAt,
	)
	return err
}

func (r *TimeOffRepository) GetByID(ctx context.Context, id string) (*timeoff.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, start_date, end_date, reason, status,
		       reviewed_by, reviewed_at, denial_reason, created_at
		FROM time_off_requests
		WHERE id = $1`

	var req timeoff.Request
	err := q.QueryRow(ctx, query, id).Scan(
		&req.ID, &req.UserID, &req.StartDate, &req.EndDate, &req.Reason, &req.Status,
		&req.ReviewedBy, &req.ReviewedAt, &req.DenialReason, &req.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, timeoff.ErrTimeOffNotFound
	}
	if err != nil {
		return nil, err
	}
	return &req, nil
}

// Review only moves PENDING rows, so two concurrent reviews cannot both win.
func (r *TimeOffRepository) Review(ctx context.Context, id string, to timeoff.Status, reviewedBy string, reason *string, now time.Time) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE time_off_requests
		SET status = $2, reviewed_by = $3, reviewed_at = $4, denial_reason = $5
		WHERE id = $1 AND status = $6`

	tag, err := q.Exec(ctx, query, id, to, reviewedBy, now, reason, timeoff.StatusPending)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *TimeOffRepository) Cancel(ctx context.Context, id string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE time_off_requests SET status = $2 WHERE id = $1 AND status = $3`

	tag, err := q.Exec(ctx, query, id, timeoff.StatusCancelled, timeoff.StatusPending)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *TimeOffRepository) ListAll(ctx context.Context) ([]*timeoff.Detail, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, timeOffDetailQuery+` ORDER BY t.created_at DESC`)
	if err != nil {
		return nil, err
	}
	return r.collectDetails(rows)
}

func (r *TimeOffRepository) ListByUser(ctx context.Context, userID string) ([]*timeoff.Detail, error) {
	q := GetQuerier(ctx, r.db)

	query := timeOffDetailQuery + `
		WHERE t.user_id = $1
		ORDER BY t.created_at DESC`

	rows, err := q.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	return r.collectDetails(rows)
}
