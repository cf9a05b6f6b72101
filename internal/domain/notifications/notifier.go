package notifications

import (
	"context"
	"fmt"
	"time"

	"vet-clinic/internal/domain/appointments"
	"vet-clinic/internal/platform/logger"
	"vet-clinic/internal/platform/metrics"

	"github.com/google/uuid"
)

// Broadcaster es el transporte real-time (hub local o relay Redis).
type Broadcaster interface {
	Broadcast(ctx context.Context, event string, payload any) error
}

// Notifier convierte ChangeEvents en Notification + push.
// Nunca propaga errores al write path: todo se loguea y se descarta.
type Notifier struct {
	repo        Repository
	dir         appointments.Directory
	broadcaster Broadcaster
	log         logger.Logger
	now         func() time.Time
}

func NewNotifier(repo Repository, dir appointments.Directory, b Broadcaster, log logger.Logger) *Notifier {
	if log == nil {
		log = logger.Nop()
	}
	return &Notifier{
		repo:        repo,
		dir:         dir,
		broadcaster: b,
		log:         log.With(map[string]any{"component": "notifier"}),
		now:         time.Now,
	}
}

// HandleChange cumple appointments.ChangeHandler; se registra con Bus.OnAppointmentChanged.
func (n *Notifier) HandleChange(ctx context.Context, ev appointments.ChangeEvent) {
	if _, err := n.Notify(ctx, ev); err != nil {
		n.log.Error("notification failed", map[string]any{
			"appointment_id": ev.Appointment.ID,
			"source":         string(ev.Source),
			"error":          err,
		})
	}
}

// Notify persiste la notificación y después intenta el push.
// El error solo refleja resolve/persist; si falla el push la notificación igual queda.
func (n *Notifier) Notify(ctx context.Context, ev appointments.ChangeEvent) (Notification, error) {
	appt, err := appointments.Resolve(ctx, n.dir, ev.Appointment)
	if err != nil {
		metrics.NotifierFailures.WithLabelValues("resolve").Inc()
		return Notification{}, fmt.Errorf("resolve refs: %w", err)
	}

	var petName, ownerName string
	if appt.Pet != nil {
		petName = appt.Pet.Name
	}
	if appt.Owner != nil {
		ownerName = appt.Owner.Name
	}

	changes := make([]appointments.FieldChange, len(ev.Changes))
	copy(changes, ev.Changes)

	notif := Notification{
		ID:            uuid.NewString(),
		Type:          TypeAppointmentUpdated,
		AppointmentID: appt.ID,
		OwnerID:       appt.OwnerID,
		PetID:         appt.PetID,
		Changes:       changes,
		Message:       BuildMessage(petName, ownerName, changes),
		Read:          false,
		CreatedAt:     n.now(),
	}

	if err := n.repo.Create(ctx, notif); err != nil {
		metrics.NotifierFailures.WithLabelValues("persist").Inc()
		return Notification{}, fmt.Errorf("persist notification: %w", err)
	}
	metrics.NotificationsCreated.Inc()

	n.push(ctx, notif)
	return notif, nil
}

func (n *Notifier) push(ctx context.Context, notif Notification) {
	if n.broadcaster == nil {
		return
	}
	if err := n.broadcaster.Broadcast(ctx, EventName, notif.Push()); err != nil {
		metrics.NotifierFailures.WithLabelValues("push").Inc()
		n.log.Warn("notification push failed", map[string]any{
			"notification_id": notif.ID,
			"error":           err,
		})
	}
}
