package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"vet-clinic/internal/domain/appointments"

	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
)

const (
	uniqueViolation   = "23505"
	invalidTextSyntax = "22P02"

	activeSlotConstraint = "appointments_active_slot_uq"
	ownerEmailConstraint = "owners_email_uq"
)

// Open abre una conexión pool a Postgres usando pgx (database/sql).
func Open(dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxIdleTime(5 * time.Minute)
	db.SetConnMaxLifetime(30 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

// isUniqueViolation devuelve true si err es un 23505 sobre constraint (o sobre cualquiera si constraint == "").
func isUniqueViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != uniqueViolation {
		return false
	}
	return constraint == "" || pgErr.ConstraintName == constraint
}

// isMalformedID: un id que no es UUID no puede existir; se trata como not found.
func isMalformedID(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == invalidTextSyntax
}

// isMissingRow unifica "no existe" para los GetByID: sin filas o id mal formado.
func isMissingRow(err error) bool {
	return errors.Is(err, sql.ErrNoRows) || isMalformedID(err)
}

// mapAppointmentWriteErr traduce la violación del índice parcial al mismo
// ErrConflict que devuelve el guard.
func mapAppointmentWriteErr(err error) error {
	if isUniqueViolation(err, activeSlotConstraint) {
		return appointments.ErrConflict
	}
	return err
}
