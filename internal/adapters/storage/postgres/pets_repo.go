package postgres

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"vet-clinic/internal/domain/pets"
)

type PetsRepo struct {
	db *sql.DB
}

func NewPetsRepo(db *sql.DB) *PetsRepo {
	return &PetsRepo{db: db}
}

const petColumns = `
	id, owner_id,
	name, type, breed,
	birth_date, notes,
	created_at, updated_at
`

func (r *PetsRepo) Create(ctx context.Context, p pets.Pet) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO pets (`+petColumns+`) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
	`,
		p.ID,
		p.OwnerID,
		p.Name,
		string(p.Type),
		p.Breed,
		toNullDate(p.BirthDate),
		p.Notes,
		p.CreatedAt,
		p.UpdatedAt,
	)
	return err
}

func (r *PetsRepo) Update(ctx context.Context, p pets.Pet) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE pets
		SET
			name = $2,
			type = $3,
			breed = $4,
			birth_date = $5,
			notes = $6,
			updated_at = $7
		WHERE id = $1
	`,
		p.ID,
		p.Name,
		string(p.Type),
		p.Breed,
		toNullDate(p.BirthDate),
		p.Notes,
		p.UpdatedAt,
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return pets.ErrNotFound
	}
	return nil
}

func (r *PetsRepo) GetByID(ctx context.Context, id string) (pets.Pet, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return pets.Pet{}, pets.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `SELECT `+petColumns+` FROM pets WHERE id = $1`, id)

	p, err := scanPet(row)
	if err != nil {
		if isMissingRow(err) {
			return pets.Pet{}, pets.ErrNotFound
		}
		return pets.Pet{}, err
	}
	return p, nil
}

func (r *PetsRepo) ListByOwner(ctx context.Context, ownerID string) ([]pets.Pet, error) {
	ownerID = strings.TrimSpace(ownerID)
	if ownerID == "" {
		return []pets.Pet{}, nil
	}
	return r.query(ctx, `SELECT `+petColumns+` FROM pets WHERE owner_id = $1 ORDER BY name ASC, created_at ASC`, ownerID)
}

func (r *PetsRepo) List(ctx context.Context) ([]pets.Pet, error) {
	return r.query(ctx, `SELECT `+petColumns+` FROM pets ORDER BY name ASC, created_at ASC`)
}

func (r *PetsRepo) query(ctx context.Context, q string, args ...any) ([]pets.Pet, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]pets.Pet, 0)
	for rows.Next() {
		p, err := scanPet(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanPet(s scanner) (pets.Pet, error) {
	var p pets.Pet
	var typ string
	var bd sql.NullTime
	if err := s.Scan(
		&p.ID,
		&p.OwnerID,
		&p.Name,
		&typ,
		&p.Breed,
		&bd,
		&p.Notes,
		&p.CreatedAt,
		&p.UpdatedAt,
	); err != nil {
		return pets.Pet{}, err
	}

	p.Type = pets.Species(typ)
	if bd.Valid {
		// birth_date es DATE: pgx lo devuelve a medianoche UTC
		t := bd.Time
		p.BirthDate = &t
	}
	return p, nil
}

func toNullDate(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}
