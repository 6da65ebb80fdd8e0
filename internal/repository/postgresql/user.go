package postgresql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/shiftline/shiftline-backend-go/internal/domain/user"
	"github.com/shiftline/shiftline-backend-go/internal/pkg/database"
)

type UserRepository struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) *UserRepository {
	return &UserRepository{db: db}
}

const userColumns = `id, external_id, name, email, role, work_role_id, availability, phone_number, sms_opt_in, created_at, updated_at`

func (r *UserRepository) scanUser(row pgx.Row) (*user.User, error) {
	var u user.User
	var availability []byte
	err := row.Scan(
		&u.ID, &u.ExternalID, &u.Name, &u.Email, &u.Role, &u.WorkRoleID,
		&availability, &u.PhoneNumber, &u.SMSOptIn, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if len(availability) > 0 {
		if err := json.Unmarshal(availability, &u.Availability); err != nil {
			return nil, fmt.Errorf("decode availability: %w", err)
		}
	}
	return &u, nil
}

func availabilityJSON(a user.Availability) (any, error) {
	if a == nil {
		return nil, nil
	}
	return json.Marshal(a)
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	q := GetQuerier(ctx, r.db)

	availability, err := availabilityJSON(u.Availability)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO users (id, external_id, name, email, role, work_role_id, availability, phone_number, sms_opt_in, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err = q.Exec(ctx, query,
		u.ID, u.ExternalID, u.Name, u.Email, u.Role, u.WorkRoleID,
		availability, u.PhoneNumber, u.SMSOptIn, u.CreatedAt, u.UpdatedAt,
	)
	return err
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	u, err := r.scanUser(q.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, user.ErrUserNotFound
	}
	return u, err
}

func (r *UserRepository) GetByExternalID(ctx context.Context, externalID string) (*user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + userColumns + ` FROM users WHERE external_id = $1`

	u, err := r.scanUser(q.QueryRow(ctx, query, externalID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, user.ErrUserNotFound
	}
	return u, err
}

func (r *UserRepository) List(ctx context.Context, role *user.Role) ([]*user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + userColumns + ` FROM users`
	args := []any{}
	if role != nil {
		query += ` WHERE role = $1`
		args = append(args, *role)
	}
	query += ` ORDER BY name`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []*user.User
	for rows.Next() {
		u, err := r.scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *UserRepository) ListOperators(ctx context.Context) ([]*user.User, error) {
	role := user.RoleOperator
	return r.List(ctx, &role)
}

func (r *UserRepository) Update(ctx context.Context, u *user.User) error {
	q := GetQuerier(ctx, r.db)

	availability, err := availabilityJSON(u.Availability)
	if err != nil {
		return err
	}

	query := `
		UPDATE users
		SET name = $2, email = $3, role = $4, work_role_id = $5, availability = $6,
		    phone_number = $7, sms_opt_in = $8, updated_at = $9
		WHERE id = $1`

	tag, err := q.Exec(ctx, query,
		u.ID, u.Name, u.Email, u.Role, u.WorkRoleID, availability,
		u.PhoneNumber, u.SMSOptIn, u.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return user.ErrUserNotFound
	}
	return nil
}

func (r *UserRepository) UpdateAvailability(ctx context.Context, userID string, availability user.Availability) error {
	q := GetQuerier(ctx, r.db)

	payload, err := availabilityJSON(availability)
	if err != nil {
		return err
	}

	query := `UPDATE users SET availability = $2, updated_at = $3 WHERE id = $1`

	tag, err := q.Exec(ctx, query, userID, payload, time.Now())
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return user.ErrUserNotFound
	}
	return nil
}

// Upsert inserts or refreshes a user keyed by the identity provider subject.
func (r *UserRepository) Upsert(ctx context.Context, u *user.User) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO users (id, external_id, name, email, role, sms_opt_in, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (external_id) DO UPDATE
		SET name = EXCLUDED.name, email = EXCLUDED.email, role = EXCLUDED.role, updated_at = EXCLUDED.updated_at`

	_, err := q.Exec(ctx, query,
		u.ID, u.ExternalID, u.Name, u.Email, u.Role, u.SMSOptIn, u.CreatedAt, u.UpdatedAt,
	)
	return err
}

func (r *UserRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return user.ErrUserNotFound
	}
	return nil
}
