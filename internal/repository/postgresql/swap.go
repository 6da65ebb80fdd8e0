package postgresql

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/shiftline/shiftline-backend-go/internal/domain/swap"
	"github.com/shiftline/shiftline-backend-go/internal/pkg/database"
)

type SwapRepository struct {
	db *database.DB
}

func NewSwapRepository(db *database.DB) *SwapRepository {
	return &SwapRepository{db: db}
}

const swapDetailQuery = `
	SELECT sw.id, sw.shift_id, sw.requester_id, sw.target_user_id, sw.status,
	       sw.approved_by, sw.approved_at, sw.denial_reason, sw.created_at, sw.updated_at,
	       req.name, tgt.name, wr.name, s.start_time, s.end_time
	FROM shift_swaps sw
	JOIN users req ON req.id = sw.requester_id
	LEFT JOIN users tgt ON tgt.id = sw.target_user_id
	JOIN shifts s ON s.id = sw.shift_id
	JOIN work_roles wr ON wr.id = s.role_id`

func (r *SwapRepository) collectDetails(rows pgx.Rows) ([]*swap.Detail, error) {
	defer rows.Close()

	var details []*swap.Detail
	for rows.Next() {
		var d swap.Detail
		err := rows.Scan(
			&d.ID, &d.ShiftID, &d.RequesterID, &d.TargetUserID, &d.Status,
			&d.ApprovedBy, &d.ApprovedAt, &d.DenialReason, &d.CreatedAt, &d.UpdatedAt,
			&d.RequesterName, &d.TargetUserName, &d.RoleName, &d.ShiftStartTime, &d.ShiftEndTime,
		)
		if err != nil {
			return nil, err
		}
		details = append(details, &d)
	}
	return details, rows.Err()
}

func (r *SwapRepository) Create(ctx context.Context, s *swap.ShiftSwap) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO shift_swaps (id, shift_id, requester_id, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := q.Exec(ctx, query, s.ID, s.ShiftID, s.RequesterID, s.Status, s.CreatedAt, s.UpdatedAt)
	return err
}

func (r *SwapRepository) GetByID(ctx context.Context, id string) (*swap.ShiftSwap, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, shift_id, requester_id, target_user_id, status,
		       approved_by, approved_at, denial_reason, created_at, updated_at
		FROM shift_swaps
		WHERE id = $1`

	var s swap.ShiftSwap
	err := q.QueryRow(ctx, query, id).Scan(
		&s.ID, &s.ShiftID, &s.RequesterID, &s.TargetUserID, &s.Status,
		&s.ApprovedBy, &s.ApprovedAt, &s.DenialReason, &s.CreatedAt, &s.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, swap.ErrSwapNotFound
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Claim races on WHERE status = PENDING so exactly one claimant wins.
func (r *SwapRepository) Claim(ctx context.Context, id, userID string, now time.Time) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE shift_swaps
		SET target_user_id = $2, status = $3, updated_at = $4
		WHERE id = $1 AND status = $5`

	tag, err := q.Exec(ctx, query, id, userID, swap.StatusClaimed, now, swap.StatusPending)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *SwapRepository) Resolve(ctx context.Context, id string, from, to swap.Status, reviewedBy *string, reason *string, now time.Time) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE shift_swaps
		SET status = $3, approved_by = $4, approved_at = $5, denial_reason = $6, updated_at = $5
		WHERE id = $1 AND status = $2`

	tag, err := q.Exec(ctx, query, id, from, to, reviewedBy, now, reason)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *SwapRepository) ListAll(ctx context.Context) ([]*swap.Detail, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, swapDetailQuery+` ORDER BY sw.created_at DESC`)
	if err != nil {
		return nil, err
	}
	return r.collectDetails(rows)
}

// ListVisibleTo applies the employee visibility rule: swaps the user is a
// party to, plus every open PENDING swap.
func (r *SwapRepository) ListVisibleTo(ctx context.Context, userID string) ([]*swap.Detail, error) {
	q := GetQuerier(ctx, r.db)

	query := swapDetailQuery + `
		WHERE sw.requester_id = $1 OR sw.target_user_id = $1 OR sw.status = $2
		ORDER BY sw.created_at DESC`

	rows, err := q.Query(ctx, query, userID, swap.StatusPending)
	if err != nil {
		return nil, err
	}
	return r.collectDetails(rows)
}
