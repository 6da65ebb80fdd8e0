package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/shiftline/shiftline-backend-go/internal/domain/workrole"
	"github.com/shiftline/shiftline-backend-go/internal/pkg/database"
)

type WorkRoleRepository struct {
	db *database.DB
}

func NewWorkRoleRepository(db *database.DB) *WorkRoleRepository {
	return &WorkRoleRepository{db: db}
}

func (r *WorkRoleRepository) Create(ctx context.Context, wr *workrole.WorkRole) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO work_roles (id, name, created_at, updated_at)
		VALUES ($1, $2, $3, $4)`

	_, err := q.Exec(ctx, query, wr.ID, wr.Name, wr.CreatedAt, wr.UpdatedAt)
	return err
}

func (r *WorkRoleRepository) GetByID(ctx context.Context, id string) (*workrole.WorkRole, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT id, name, created_at, updated_at FROM work_roles WHERE id = $1`

	var wr workrole.WorkRole
	err := q.QueryRow(ctx, query, id).Scan(&wr.ID, &wr.Name, &wr.CreatedAt, &wr.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, workrole.ErrWorkRoleNotFound
	}
	if err != nil {
		return nil, err
	}
	return &wr, nil
}

func (r *WorkRoleRepository) GetByName(ctx context.Context, name string) (*workrole.WorkRole, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT id, name, created_at, updated_at FROM work_roles WHERE lower(name) = lower($1)`

	var wr workrole.WorkRole
	err := q.QueryRow(ctx, query, name).Scan(&wr.ID, &wr.Name, &wr.CreatedAt, &wr.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, workrole.ErrWorkRoleNotFound
	}
	if err != nil {
		return nil, err
	}
	return &wr, nil
}

func (r *WorkRoleRepository) List(ctx context.Context) ([]*workrole.WorkRole, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT id, name, created_at, updated_at FROM work_roles ORDER BY name`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var roles []*workrole.WorkRole
	for rows.Next() {
		var wr workrole.WorkRole
		if err := rows.Scan(&wr.ID, &wr.Name, &wr.CreatedAt, &wr.UpdatedAt); err != nil {
			return nil, err
		}
		roles = append(roles, &wr)
	}
	return roles, rows.Err()
}

func (r *WorkRoleRepository) Update(ctx context.Context, wr *workrole.WorkRole) error {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE work_roles SET name = $2, updated_at = $3 WHERE id = $1`

	tag, err := q.Exec(ctx, query, wr.ID, wr.Name, wr.UpdatedAt)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return workrole.ErrWorkRoleNotFound
	}
	return nil
}

func (r *WorkRoleRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM work_roles WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return workrole.ErrWorkRoleNotFound
	}
	return nil
}
