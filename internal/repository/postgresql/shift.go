package postgresql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/shiftline/shiftline-backend-go/internal/domain/shift"
	"github.com/shiftline/shiftline-backend-go/internal/pkg/database"
)

type ShiftRepository struct {
	db *database.DB
}

func NewShiftRepository(db *database.DB) *ShiftRepository {
	return &ShiftRepository{db: db}
}

const shiftColumns = `s.id, s.user_id, s.role_id, s.start_time, s.end_time, s.status,
	s.published_at, s.reminder_sent_at, s.missed_flagged_at, s.created_at, s.updated_at`

const shiftDetailQuery = `
	SELECT ` + shiftColumns + `, u.name, wr.name
	FROM shifts s
	JOIN users u ON u.id = s.user_id
	JOIN work_roles wr ON wr.id = s.role_id`

func scanShift(row pgx.Row, s *shift.Shift) error {
	return row.Scan(
		&s.ID, &s.UserID, &s.RoleID, &s.StartTime, &s.EndTime, &s.Status,
		&s.PublishedAt, &s.ReminderSentAt, &s.MissedFlaggedAt, &s.CreatedAt, &s.UpdatedAt,
	)
}

func scanShiftDetail(row pgx.Row) (*shift.Detail, error) {
	var d shift.Detail
	err := row.Scan(
		&d.ID, &d.UserID, &d.RoleID, &d.StartTime, &d.EndTime, &d.Status,
		&d.PublishedAt, &d.ReminderSentAt, &d.MissedFlaggedAt, &d.CreatedAt, &d.UpdatedAt,
		&d.UserName, &d.RoleName,
	)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *ShiftRepository) collectDetails(rows pgx.Rows) ([]*shift.Detail, error) {
	defer rows.Close()

	var details []*shift.Detail
	for rows.Next() {
		d, err := scanShiftDetail(rows)
		if err != nil {
			return nil, err
		}
		details = append(details, d)
	}
	return details, rows.Err()
}

func (r *ShiftRepository) Create(ctx context.Context, s *shift.Shift) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO shifts (id, user_id, role_id, start_time, end_time, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := q.Exec(ctx, query,
		s.ID, s.UserID, s.RoleID, s.StartTime, s.EndTime, s.Status, s.CreatedAt, s.UpdatedAt,
	)
	return err
}

func (r *ShiftRepository) GetByID(ctx context.Context, id string) (*shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + shiftColumns + ` FROM shifts s WHERE s.id = $1`

	var s shift.Shift
	err := scanShift(q.QueryRow(ctx, query, id), &s)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, shift.ErrShiftNotFound
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *ShiftRepository) Update(ctx context.Context, s *shift.Shift) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE shifts
		SET user_id = $2, role_id = $3, start_time = $4, end_time = $5, status = $6, updated_at = $7
		WHERE id = $1`

	tag, err := q.Exec(ctx, query,
		s.ID, s.UserID, s.RoleID, s.StartTime, s.EndTime, s.Status, s.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return shift.ErrShiftNotFound
	}
	return nil
}

func (r *ShiftRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM shifts WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return shift.ErrShiftNotFound
	}
	return nil
}

// Publish transitions the given drafts in one statement. published_at IS NULL
// guards against double publication under concurrent requests.
func (r *ShiftRepository) Publish(ctx context.Context, ids []string, now time.Time) ([]string, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE shifts
		SET status = $2, published_at = $3, updated_at = $3
		WHERE id = ANY($1) AND published_at IS NULL
		RETURNING user_id`

	rows, err := q.Query(ctx, query, ids, shift.StatusPublished, now)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var owners []string
	for rows.Next() {
		var userID string
		if err := rows.Scan(&userID); err != nil {
			return nil, err
		}
		owners = append(owners, userID)
	}
	return owners, rows.Err()
}

func (r *ShiftRepository) CompareAndSetStatus(ctx context.Context, id string, from, to shift.Status, now time.Time) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE shifts SET status = $3, updated_at = $4 WHERE id = $1 AND status = $2`

	tag, err := q.Exec(ctx, query, id, from, to, now)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *ShiftRepository) ReassignOwner(ctx context.Context, id, newUserID string, now time.Time) error {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE shifts SET user_id = $2, updated_at = $3 WHERE id = $1`

	tag, err := q.Exec(ctx, query, id, newUserID, now)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return shift.ErrShiftNotFound
	}
	return nil
}

// ListByRange selects shifts with from <= start_time < to. Callers that want
// an inclusive calendar window pass the start of the following period as to.
func (r *ShiftRepository) ListByRange(ctx context.Context, from, to time.Time) ([]*shift.Detail, error) {
	q := GetQuerier(ctx, r.db)

	query := shiftDetailQuery + `
		WHERE s.start_time >= $1 AND s.start_time < $2
		ORDER BY s.start_time`

	rows, err := q.Query(ctx, query, from, to)
	if err != nil {
		return nil, err
	}
	return r.collectDetails(rows)
}

func (r *ShiftRepository) ListByUser(ctx context.Context, userID string, statuses []shift.Status) ([]*shift.Detail, error) {
	q := GetQuerier(ctx, r.db)

	query := shiftDetailQuery + `
		WHERE s.user_id = $1 AND s.status = ANY($2)
		ORDER BY s.start_time`

	rows, err := q.Query(ctx, query, userID, statuses)
	if err != nil {
		return nil, err
	}
	return r.collectDetails(rows)
}

func (r *ShiftRepository) NextForUser(ctx context.Context, userID string, after time.Time) (*shift.Detail, error) {
	q := GetQuerier(ctx, r.db)

	query := shiftDetailQuery + `
		WHERE s.user_id = $1 AND s.status = $2 AND s.start_time > $3
		ORDER BY s.start_time
		LIMIT 1`

	d, err := scanShiftDetail(q.QueryRow(ctx, query, userID, shift.StatusPublished, after))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, shift.ErrShiftNotFound
	}
	return d, err
}

func (r *ShiftRepository) AddHistory(ctx context.Context, h *shift.HistoryEntry) error {
	q := GetQuerier(ctx, r.db)

	oldData, err := json.Marshal(h.OldData)
	if err != nil {
		return fmt.Errorf("encode history old data: %w", err)
	}
	newData, err := json.Marshal(h.NewData)
	if err != nil {
		return fmt.Errorf("encode history new data: %w", err)
	}

	query := `
		INSERT INTO shift_history (id, shift_id, changed_by, old_data, new_data, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err = q.Exec(ctx, query, h.ID, h.ShiftID, h.ChangedBy, oldData, newData, h.CreatedAt)
	return err
}

func (r *ShiftRepository) ListHistory(ctx context.Context, shiftID string) ([]*shift.HistoryEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, shift_id, changed_by, old_data, new_data, created_at
		FROM shift_history
		WHERE shift_id = $1
		ORDER BY created_at DESC`

	rows, err := q.Query(ctx, query, shiftID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*shift.HistoryEntry
	for rows.Next() {
		var h shift.HistoryEntry
		var oldData, newData []byte
		if err := rows.Scan(&h.ID, &h.ShiftID, &h.ChangedBy, &oldData, &newData, &h.CreatedAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(oldData, &h.OldData); err != nil {
			return nil, fmt.Errorf("decode history old data: %w", err)
		}
		if err := json.Unmarshal(newData, &h.NewData); err != nil {
			return nil, fmt.Errorf("decode history new data: %w", err)
		}
		entries = append(entries, &h)
	}
	return entries, rows.Err()
}

func (r *ShiftRepository) ListReminderDue(ctx context.Context, now, until time.Time) ([]*shift.Detail, error) {
	q := GetQuerier(ctx, r.db)

	query := shiftDetailQuery + `
		WHERE s.status = $1 AND s.start_time > $2 AND s.start_time <= $3 AND s.reminder_sent_at IS NULL
		ORDER BY s.start_time`

	rows, err := q.Query(ctx, query, shift.StatusPublished, now, until)
	if err != nil {
		return nil, err
	}
	return r.collectDetails(rows)
}

func (r *ShiftRepository) MarkReminderSent(ctx context.Context, id string, now time.Time) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE shifts SET reminder_sent_at = $2 WHERE id = $1 AND reminder_sent_at IS NULL`

	tag, err := q.Exec(ctx, query, id, now)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *ShiftRepository) ListMissedClockIn(ctx context.Context, cutoff time.Time) ([]*shift.Detail, error) {
	q := GetQuerier(ctx, r.db)

	query := shiftDetailQuery + `
		LEFT JOIN attendance a ON a.shift_id = s.id
		WHERE s.status = $1 AND s.start_time <= $2 AND s.missed_flagged_at IS NULL
		  AND (a.id IS NULL OR a.clock_in IS NULL)
		ORDER BY s.start_time`

	rows, err := q.Query(ctx, query, shift.StatusPublished, cutoff)
	if err != nil {
		return nil, err
	}
	return r.collectDetails(rows)
}

func (r *ShiftRepository) MarkMissedFlagged(ctx context.Context, id string, now time.Time) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE shifts SET missed_flagged_at = $2 WHERE id = $1 AND missed_flagged_at IS NULL`

	tag, err := q.Exec(ctx, query, id, now)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}
