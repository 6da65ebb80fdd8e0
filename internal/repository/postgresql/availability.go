package postgresql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/shiftline/shiftline-backend-go/internal/domain/availability"
	"github.com/shiftline/shiftline-backend-go/internal/pkg/database"
)

type AvailabilityRepository struct {
	db *database.DB
}

func NewAvailabilityRepository(db *database.DB) *AvailabilityRepository {
	return &AvailabilityRepository{db: db}
}

const availabilityDetailQuery = `
	SELECT a.id, a.user_id, a.requested_changes, a.reason, a.status,
	       a.reviewed_by, a.reviewed_at, a.denial_reason, a.created_at, u.name
	FROM availability_change_requests a
	JOIN users u ON u.id = a.user_id`

func (r *AvailabilityRepository) collectDetails(rows pgx.Rows) ([]*availability.Detail, error) {
	defer rows.Close()

	var details []*availability.Detail
	for rows.Next() {
		var d availability.Detail
		var changes []byte
		err := rows.Scan(
			&d.ID, &d.UserID, &changes, &d.Reason, &d.Status,
			&d.ReviewedBy, &d.ReviewedAt, &d.DenialReason, &d.CreatedAt, &d.UserName,
		)
		if err != nil {
			return nil, err
		}
		if err := json.Unmarshal(changes, &d.RequestedChanges); err != nil {
			return nil, fmt.Errorf("decode requested changes: %w", err)
		}
		details = append(details, &d)
	}
	return details, rows.Err()
}

func (r *AvailabilityRepository) Create(ctx context.Context, req *availability.ChangeRequest) error {
	q := GetQuerier(ctx, r.db)

	changes, err := json.Marshal(req.RequestedChanges)
	if err != nil {
		return fmt.Errorf("encode requested changes: %w", err)
	}

	query := `
		INSERT INTO availability_change_requests (id, user_id, requested_changes, reason, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err = q.Exec(ctx, query, req.ID, req.UserID, changes, req.Reason, req.Status, req.CreatedAt)
	return err
}

func (r *AvailabilityRepository) GetByID(ctx context.Context, id string) (*availability.ChangeRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, requested_changes, reason, status,
		       reviewed_by, reviewed_at, denial_reason, created_at
		FROM availability_change_requests
		WHERE id = $1`

	var req availability.ChangeRequest
	var changes []byte
	err := q.QueryRow(ctx, query, id).Scan(
		&req.ID, &req.UserID, &changes, &req.Reason, &req.Status,
		&req.ReviewedBy, &req.ReviewedAt, &req.DenialReason, &req.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, availability.ErrChangeRequestNotFound
	}
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(changes, &req.RequestedChanges); err != nil {
		return nil, fmt.Errorf("decode requested changes: %w", err)
	}
	return &req, nil
}

func (r *AvailabilityRepository) Review(ctx context.Context, id string, to availability.Status, reviewedBy string, reason *string, now time.Time) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE availability_change_requests
		SET status = $2, reviewed_by = $3, reviewed_at = $4, denial_reason = $5
		WHERE id = $1 AND status = $6`

	tag, err := q.Exec(ctx, query, id, to, reviewedBy, now, reason, availability.StatusPending)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *AvailabilityRepository) Cancel(ctx context.Context, id string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE availability_change_requests SET status = $2 WHERE id = $1 AND status = $3`

	tag, err := q.Exec(ctx, query, id, availability.StatusCancelled, availability.StatusPending)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *AvailabilityRepository) ListAll(ctx context.Context) ([]*availability.Detail, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, availabilityDetailQuery+` ORDER BY a.created_at DESC`)
	if err != nil {
		return nil, err
	}
	return r.collectDetails(rows)
}

func (r *AvailabilityRepository) ListByUser(ctx context.Context, userID string) ([]*availability.Detail, error) {
	q := GetQuerier(ctx, r.db)

	query := availabilityDetailQuery + `
		WHERE a.user_id = $1
		ORDER BY a.created_at DESC`

	rows, err := q.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	return r.collectDetails(rows)
}
