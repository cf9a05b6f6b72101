package postgres

import (
	"context"
	"database/sql"
	"strings"

	"vet-clinic/internal/domain/owners"
)

type OwnersRepo struct {
	db *sql.DB
}

func NewOwnersRepo(db *sql.DB) *OwnersRepo {
	return &OwnersRepo{db: db}
}

func (r *OwnersRepo) Create(ctx context.Context, o owners.Owner) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO owners (id, name, phone, email, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6)
	`,
		o.ID,
		o.Name,
		o.Phone,
		sql.NullString{String: o.Email, Valid: o.Email != ""},
		o.CreatedAt,
		o.UpdatedAt,
	)
	if isUniqueViolation(err, ownerEmailConstraint) {
		return owners.ErrDuplicateEmail
	}
	return err
}

func (r *OwnersRepo) GetByID(ctx context.Context, id string) (owners.Owner, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, name, phone, COALESCE(email, ''), created_at, updated_at
		FROM owners
		WHERE id = $1
	`, id)

	var o owners.Owner
	if err := row.Scan(&o.ID, &o.Name, &o.Phone, &o.Email, &o.CreatedAt, &o.UpdatedAt); err != nil {
		if isMissingRow(err) {
			return owners.Owner{}, owners.ErrNotFound
		}
		return owners.Owner{}, err
	}
	return o, nil
}

func (r *OwnersRepo) List(ctx context.Context, q string) ([]owners.Owner, error) {
	query := `
		SELECT id, name, phone, COALESCE(email, ''), created_at, updated_at
		FROM owners
	`
	args := []any{}
	if q = strings.TrimSpace(q); q != "" {
		query += ` WHERE name ILIKE $1 OR phone ILIKE $1 OR email ILIKE $1`
		args = append(args, "%"+q+"%")
	}
	query += ` ORDER BY name ASC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]owners.Owner, 0)
	for rows.Next() {
		var o owners.Owner
		if err := rows.Scan(&o.ID, &o.Name, &o.Phone, &o.Email, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}
