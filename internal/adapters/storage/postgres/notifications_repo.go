package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"vet-clinic/internal/domain/appointments"
	"vet-clinic/internal/domain/notifications"
)

type NotificationsRepo struct {
	db *sql.DB
}

func NewNotificationsRepo(db *sql.DB) *NotificationsRepo {
	return &NotificationsRepo{db: db}
}

const notificationColumns = `
	id, type, appointment_id, owner_id, pet_id,
	changes, message, read, created_at
`

func (r *NotificationsRepo) Create(ctx context.Context, n notifications.Notification) error {
	changes := n.Changes
	if changes == nil {
		changes = []appointments.FieldChange{}
	}
	raw, err := json.Marshal(changes)
	if err != nil {
		return fmt.Errorf("marshal changes: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO notifications (`+notificationColumns+`) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
	`,
		n.ID,
		n.Type,
		n.AppointmentID,
		n.OwnerID,
		n.PetID,
		string(raw),
		n.Message,
		n.Read,
		n.CreatedAt,
	)
	return err
}

func (r *NotificationsRepo) GetByID(ctx context.Context, id string) (notifications.Notification, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+notificationColumns+` FROM notifications WHERE id = $1`, id)
	n, err := scanNotification(row)
	if err != nil {
		if isMissingRow(err) {
			return notifications.Notification{}, notifications.ErrNotFound
		}
		return notifications.Notification{}, err
	}
	return n, nil
}

func (r *NotificationsRepo) List(ctx context.Context, filter notifications.ListFilter) ([]notifications.Notification, error) {
	query := `SELECT ` + notificationColumns + ` FROM notifications WHERE 1=1`
	args := []any{}
	argN := 1

	if filter.OwnerID != "" {
		query += fmt.Sprintf(" AND owner_id::text = $%d", argN)
		args = append(args, filter.OwnerID)
		argN++
	}
	if filter.UnreadOnly {
		query += " AND read = FALSE"
	}
	query += " ORDER BY created_at DESC"
	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d", argN)
		args = append(args, filter.Limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]notifications.Notification, 0)
	for rows.Next() {
		n, err := scanNotification(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, rows.Err()
}

func (r *NotificationsRepo) MarkRead(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `UPDATE notifications SET read = TRUE WHERE id = $1`, id)
	if err != nil {
		if isMalformedID(err) {
			return notifications.ErrNotFound
		}
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return notifications.ErrNotFound
	}
	return nil
}

func scanNotification(s scanner) (notifications.Notification, error) {
	var n notifications.Notification
	var raw []byte
	if err := s.Scan(
		&n.ID,
		&n.Type,
		&n.AppointmentID,
		&n.OwnerID,
		&n.PetID,
		&raw,
		&n.Message,
		&n.Read,
		&n.CreatedAt,
	); err != nil {
		return notifications.Notification{}, err
	}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &n.Changes); err != nil {
			return notifications.Notification{}, fmt.Errorf("unmarshal changes: %w", err)
		}
	}
	return n, nil
}
