package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"vet-clinic/internal/domain/appointments"
)

type AppointmentsRepo struct {
	db *sql.DB
}

func NewAppointmentsRepo(db *sql.DB) *AppointmentsRepo {
	return &AppointmentsRepo{db: db}
}

const appointmentColumns = `
	id, pet_id, owner_id,
	date, time, reason, status,
	created_at, updated_at
`

func (r *AppointmentsRepo) ExistsActiveSlot(ctx context.Context, q appointments.SlotQuery) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM appointments
			WHERE pet_id = $1 AND date = $2 AND time = $3
			  AND status = 'scheduled'
			  AND ($4 = '' OR id::text <> $4)
		)
	`, q.PetID, q.Date, q.Time, q.ExcludeID).Scan(&exists)
	if err != nil {
		if isMalformedID(err) {
			// pet_id que no es UUID: no puede haber ninguna cita con ese pet.
			return false, nil
		}
		return false, err
	}
	return exists, nil
}

func (r *AppointmentsRepo) Create(ctx context.Context, a appointments.Appointment) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO appointments (`+appointmentColumns+`) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
	`,
		a.ID,
		a.PetID,
		a.OwnerID,
		a.Date,
		a.Time,
		a.Reason,
		string(a.Status),
		a.CreatedAt,
		a.UpdatedAt,
	)
	return mapAppointmentWriteErr(err)
}

// UpdateFields escribe solo las columnas presentes en el patch y devuelve la fila resultante.
func (r *AppointmentsRepo) UpdateFields(ctx context.Context, id string, p appointments.Patch, updatedAt time.Time) (appointments.Appointment, error) {
	sets := []string{}
	args := []any{id}
	argN := 2

	add := func(col string, v any) {
		sets = append(sets, fmt.Sprintf("%s = $%d", col, argN))
		args = append(args, v)
		argN++
	}

	if p.PetID != nil {
		add("pet_id", *p.PetID)
	}
	if p.OwnerID != nil {
		add("owner_id", *p.OwnerID)
	}
	if p.Date != nil {
		add("date", *p.Date)
	}
	if p.Time != nil {
		add("time", *p.Time)
	}
	if p.Reason != nil {
		add("reason", *p.Reason)
	}
	if p.Status != nil {
		add("status", string(*p.Status))
	}
	add("updated_at", updatedAt)

	row := r.db.QueryRowContext(ctx, `
		UPDATE appointments
		SET `+strings.Join(sets, ", ")+`
		WHERE id = $1
		RETURNING `+appointmentColumns, args...)

	a, err := scanAppointment(row)
	if err != nil {
		if isMissingRow(err) {
			return appointments.Appointment{}, appointments.ErrNotFound
		}
		return appointments.Appointment{}, mapAppointmentWriteErr(err)
	}
	return a, nil
}

func (r *AppointmentsRepo) GetByID(ctx context.Context, id string) (appointments.Appointment, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+appointmentColumns+` FROM appointments WHERE id = $1`, id)

	a, err := scanAppointment(row)
	if err != nil {
		if isMissingRow(err) {
			return appointments.Appointment{}, appointments.ErrNotFound
		}
		return appointments.Appointment{}, err
	}
	return a, nil
}

func (r *AppointmentsRepo) List(ctx context.Context, filter appointments.ListFilter) ([]appointments.Appointment, error) {
	sb := strings.Builder{}
	sb.WriteString(`SELECT ` + appointmentColumns + ` FROM appointments WHERE 1=1`)

	args := []any{}
	argN := 1
	where := func(cond string, v any) {
		sb.WriteString(" AND " + fmt.Sprintf(cond, argN))
		args = append(args, v)
		argN++
	}

	if filter.OwnerID != "" {
		where("owner_id::text = $%d", filter.OwnerID)
	}
	if filter.PetID != "" {
		where("pet_id::text = $%d", filter.PetID)
	}
	if filter.Status != "" {
		where("status = $%d", string(filter.Status))
	}
	if filter.Date != "" {
		where("date = $%d", filter.Date)
	}
	// date es TEXT YYYY-MM-DD: el orden lexicográfico coincide con el cronológico
	if filter.From != "" {
		where("date >= $%d", filter.From)
	}
	if filter.To != "" {
		where("date <= $%d", filter.To)
	}

	if filter.Newest {
		sb.WriteString(" ORDER BY date DESC, time DESC, created_at ASC")
	} else {
		sb.WriteString(" ORDER BY date ASC, time ASC, created_at ASC")
	}

	rows, err := r.db.QueryContext(ctx, sb.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]appointments.Appointment, 0)
	for rows.Next() {
		a, err := scanAppointment(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *AppointmentsRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM appointments WHERE id = $1`, id)
	if err != nil {
		if isMalformedID(err) {
			return appointments.ErrNotFound
		}
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return appointments.ErrNotFound
	}
	return nil
}

func scanAppointment(s scanner) (appointments.Appointment, error) {
	var a appointments.Appointment
	var status string
	if err := s.Scan(
		&a.ID,
		&a.PetID,
		&a.OwnerID,
		&a.Date,
		&a.Time,
		&a.Reason,
		&status,
		&a.CreatedAt,
		&a.UpdatedAt,
	); err != nil {
		return appointments.Appointment{}, err
	}
	a.Status = appointments.Status(status)
	return a, nil
}
