package notifications

import (
	"time"

	"vet-clinic/internal/domain/appointments"
)

const TypeAppointmentUpdated = "appointment.updated"

// EventName es el nombre del evento en el canal real-time.
const EventName = "notification"

// Notification es append-only: después de creada solo cambia Read.
type Notification struct {
	ID            string
	Type          string
	AppointmentID string
	OwnerID       string
	PetID         string

	Changes []appointments.FieldChange
	Message string
	Read    bool

	CreatedAt time.Time
}

// Push es lo que viaja por el canal real-time.
type Push struct {
	ID        string    `json:"id"`
	OwnerID   string    `json:"owner_id"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

func (n Notification) Push() Push {
	return Push{
		ID:        n.ID,
		OwnerID:   n.OwnerID,
		Message:   n.Message,
		CreatedAt: n.CreatedAt,
	}
}
