package postgresql

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/shiftline/shiftline-backend-go/internal/domain/attendance"
	"github.com/shiftline/shiftline-backend-go/internal/pkg/database"
)

type AttendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) *AttendanceRepository {
	return &AttendanceRepository{db: db}
}

// UpsertClockIn writes the clock record for a shift. shift_id is unique, so
// a repeated clock-in overwrites the earlier one (last write wins). On
// conflict the existing row keeps its id, so the surviving id is read back
// into a.
func (r *AttendanceRepository) UpsertClockIn(ctx context.Context, a *attendance.Attendance) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance (id, shift_id, clock_in, status, latitude, longitude)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (shift_id) DO UPDATE
		SET clock_in = EXCLUDED.clock_in, status = EXCLUDED.status,
		    latitude = EXCLUDED.latitude, longitude = EXCLUDED.longitude,
		    clock_out = NULL
		RETURNING id`

	return q.QueryRow(ctx, query, a.ID, a.ShiftID, a.ClockIn, a.Status, a.Latitude, a.Longitude).
		Scan(&a.ID)
}

func (r *AttendanceRepository) GetByShiftID(ctx context.Context, shiftID string) (*attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, shift_id, clock_in, clock_out, status, latitude, longitude
		FROM attendance
		WHERE shift_id = $1`

	var a attendance.Attendance
	err := q.QueryRow(ctx, query, shiftID).Scan(
		&a.ID, &a.ShiftID, &a.ClockIn, &a.ClockOut, &a.Status, &a.Latitude, &a.Longitude,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, attendance.ErrAttendanceNotFound
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AttendanceRepository) Complete(ctx context.Context, shiftID string, at time.Time) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendance
		SET clock_out = $2, status = $3
		WHERE shift_id = $1 AND clock_in IS NOT NULL`

	tag, err := q.Exec(ctx, query, shiftID, at, attendance.StatusCompleted)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrNotClockedIn
	}
	return nil
}

func (r *AttendanceRepository) MarkMissed(ctx context.Context, id, shiftID string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance (id, shift_id, status)
		VALUES ($1, $2, $3)
		ON CONFLICT (shift_id) DO UPDATE
		SET status = EXCLUDED.status
		WHERE attendance.clock_in IS NULL`

	_, err := q.Exec(ctx, query, id, shiftID, attendance.StatusMissed)
	return err
}

func (r *AttendanceRepository) ListForShifts(ctx context.Context, shiftIDs []string) (map[string]*attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	if len(shiftIDs) == 0 {
		return map[string]*attendance.Attendance{}, nil
	}

	query := `
		SELECT id, shift_id, clock_in, clock_out, status, latitude, longitude
		FROM attendance
		WHERE shift_id = ANY($1)`

	rows, err := q.Query(ctx, query, shiftIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make(map[string]*attendance.Attendance, len(shiftIDs))
	for rows.Next() {
		var a attendance.Attendance
		if err := rows.Scan(&a.ID, &a.ShiftID, &a.ClockIn, &a.ClockOut, &a.Status, &a.Latitude, &a.Longitude); err != nil {
			return nil, err
		}
		result[a.ShiftID] = &a
	}
	return result, rows.Err()
}
