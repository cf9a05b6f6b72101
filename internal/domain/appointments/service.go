package appointments

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"vet-clinic/internal/platform/logger"
	"vet-clinic/internal/platform/metrics"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("vet-clinic/appointments")

type Service struct {
	repo      Repository
	guard     *Guard
	publisher Publisher
	dir       Directory
	log       logger.Logger
	now       func() time.Time
}

type Option func(*Service)

// WithPublisher inyecta el canal de cambios (normalmente un *Bus).
func WithPublisher(p Publisher) Option {
	return func(s *Service) { s.publisher = p }
}

func WithDirectory(d Directory) Option {
	return func(s *Service) { s.dir = d }
}

func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.log = l
		}
	}
}

func NewService(repo Repository, opts ...Option) *Service {
	s := &Service{
		repo:  repo,
		guard: NewGuard(repo),
		log:   logger.Nop(),
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

type CreateInput struct {
	PetID   string
	OwnerID string
	Date    string
	Time    string
	Reason  string
}

// CheckConflict expone el guard al write path / HTTP.
func (s *Service) CheckConflict(ctx context.Context, q SlotQuery) (bool, error) {
	return s.guard.CheckConflict(ctx, q)
}

// Create siempre arranca en scheduled. Pre-check con el guard y, si igual pierde
// la carrera contra otro writer, la constraint del store devuelve ErrConflict.
func (s *Service) Create(ctx context.Context, in CreateInput) (a Appointment, err error) {
	ctx, span := tracer.Start(ctx, "appointments.Create")
	defer func() { endSpan(span, err) }()

	petID := strings.TrimSpace(in.PetID)
	ownerID := strings.TrimSpace(in.OwnerID)
	if petID == "" || ownerID == "" {
		return Appointment{}, fmt.Errorf("%w: pet_id and owner_id are required", ErrInvalidInput)
	}
	date, err := NormalizeDate(in.Date)
	if err != nil {
		return Appointment{}, err
	}
	tm, err := NormalizeTime(in.Time)
	if err != nil {
		return Appointment{}, err
	}

	if err := s.ensureSlotFree(ctx, SlotQuery{PetID: petID, Date: date, Time: tm}); err != nil {
		return Appointment{}, err
	}

	now := s.now()
	a = Appointment{
		ID:        uuid.NewString(),
		PetID:     petID,
		OwnerID:   ownerID,
		Date:      date,
		Time:      tm,
		Reason:    strings.TrimSpace(in.Reason),
		Status:    StatusScheduled,
		CreatedAt: now,
		UpdatedAt: now,
	}
	span.SetAttributes(attribute.String("appointment.id", a.ID))

	if err := s.repo.Create(ctx, a); err != nil {
		return Appointment{}, s.translateWriteErr(err)
	}

	// Creación no dispara ChangeEvent.
	return s.resolve(ctx, a), nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Appointment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Appointment{}, ErrNotFound
	}
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Appointment{}, err
	}
	return s.resolve(ctx, a), nil
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]Appointment, error) {
	items, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	for i := range items {
		items[i] = s.resolve(ctx, items[i])
	}
	return items, nil
}

// ApplyFieldUpdate aplica un update parcial. Calcula el diff contra lo persistido
// y solo escribe/publica si algo cambió.
func (s *Service) ApplyFieldUpdate(ctx context.Context, id string, p Patch) (a Appointment, err error) {
	ctx, span := tracer.Start(ctx, "appointments.ApplyFieldUpdate",
		trace.WithAttributes(attribute.String("appointment.id", id)))
	defer func() { endSpan(span, err) }()

	p, err = normalizePatch(p)
	if err != nil {
		return Appointment{}, err
	}

	current, err := s.repo.GetByID(ctx, strings.TrimSpace(id))
	if err != nil {
		return Appointment{}, err
	}

	next := p.ApplyTo(current)
	if err := CheckTransition(current.Status, next.Status); err != nil {
		return Appointment{}, err
	}

	if next.Status == StatusScheduled {
		q := next.Slot()
		q.ExcludeID = current.ID
		if err := s.ensureSlotFree(ctx, q); err != nil {
			return Appointment{}, err
		}
	}

	changes := Diff(current, next)
	if len(changes) == 0 {
		return s.resolve(ctx, current), nil
	}

	updated, err := s.repo.UpdateFields(ctx, current.ID, patchFor(next, changes), s.now())
	if err != nil {
		return Appointment{}, s.translateWriteErr(err)
	}

	updated = s.resolve(ctx, updated)
	s.publish(ChangeEvent{Appointment: updated, Changes: changes, Source: SourceFieldUpdate})
	return updated, nil
}

// TransitionStatus mueve la cita a target. Pasar a scheduled corre el guard.
func (s *Service) TransitionStatus(ctx context.Context, id string, target Status) (Appointment, error) {
	return s.transition(ctx, id, target, SourceTransition)
}

func (s *Service) Cancel(ctx context.Context, id string) (Appointment, error) {
	return s.transition(ctx, id, StatusCancelled, SourceCancel)
}

func (s *Service) Complete(ctx context.Context, id string) (Appointment, error) {
	return s.transition(ctx, id, StatusCompleted, SourceComplete)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrNotFound
	}
	return s.repo.Delete(ctx, id)
}

func (s *Service) transition(ctx context.Context, id string, target Status, src Source) (a Appointment, err error) {
	ctx, span := tracer.Start(ctx, "appointments.TransitionStatus", trace.WithAttributes(
		attribute.String("appointment.id", id),
		attribute.String("appointment.target_status", string(target)),
	))
	defer func() { endSpan(span, err) }()

	current, err := s.repo.GetByID(ctx, strings.TrimSpace(id))
	if err != nil {
		return Appointment{}, err
	}

	if err := CheckTransition(current.Status, target); err != nil {
		return Appointment{}, err
	}
	if current.Status == target {
		return s.resolve(ctx, current), nil
	}

	if target == StatusScheduled {
		q := current.Slot()
		q.ExcludeID = current.ID
		if err := s.ensureSlotFree(ctx, q); err != nil {
			return Appointment{}, err
		}
	}

	updated, err := s.repo.UpdateFields(ctx, current.ID, Patch{Status: &target}, s.now())
	if err != nil {
		return Appointment{}, s.translateWriteErr(err)
	}

	updated = s.resolve(ctx, updated)
	s.publish(ChangeEvent{
		Appointment: updated,
		Changes:     []FieldChange{{Field: FieldStatus, From: string(current.Status), To: string(target)}},
		Source:      src,
	})
	return updated, nil
}

func (s *Service) ensureSlotFree(ctx context.Context, q SlotQuery) error {
	taken, err := s.guard.CheckConflict(ctx, q)
	if err != nil {
		return err
	}
	if taken {
		metrics.AppointmentConflicts.WithLabelValues(metrics.DetectedByGuard).Inc()
		return ErrConflict
	}
	return nil
}

func (s *Service) translateWriteErr(err error) error {
	if errors.Is(err, ErrConflict) {
		metrics.AppointmentConflicts.WithLabelValues(metrics.DetectedByConstraint).Inc()
		return ErrConflict
	}
	return err
}

func (s *Service) publish(ev ChangeEvent) {
	if s.publisher == nil {
		return
	}
	s.publisher.Publish(ev)
}

// resolve es best-effort: si el directory falla, la respuesta sale sin pet/owner.
func (s *Service) resolve(ctx context.Context, a Appointment) Appointment {
	out, err := Resolve(ctx, s.dir, a)
	if err != nil {
		s.log.Warn("resolve appointment refs failed", map[string]any{
			"appointment_id": a.ID,
			"error":          err,
		})
		return a
	}
	return out
}

// NormalizeDate valida YYYY-MM-DD.
func NormalizeDate(v string) (string, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(v))
	if err != nil {
		return "", fmt.Errorf("%w: date must be YYYY-MM-DD", ErrInvalidInput)
	}
	return t.Format(DateLayout), nil
}

// NormalizeTime valida HH:MM (24h) y lo deja con dos dígitos.
func NormalizeTime(v string) (string, error) {
	t, err := time.Parse(TimeLayout, strings.TrimSpace(v))
	if err != nil {
		return "", fmt.Errorf("%w: time must be HH:MM", ErrInvalidInput)
	}
	return t.Format(TimeLayout), nil
}

func normalizePatch(p Patch) (Patch, error) {
	trim := func(v *string) *string {
		if v == nil {
			return nil
		}
		t := strings.TrimSpace(*v)
		return &t
	}

	p.PetID = trim(p.PetID)
	p.OwnerID = trim(p.OwnerID)
	p.Reason = trim(p.Reason)

	if p.PetID != nil && *p.PetID == "" {
		return Patch{}, fmt.Errorf("%w: pet_id cannot be empty", ErrInvalidInput)
	}
	if p.OwnerID != nil && *p.OwnerID == "" {
		return Patch{}, fmt.Errorf("%w: owner_id cannot be empty", ErrInvalidInput)
	}
	if p.Date != nil {
		d, err := NormalizeDate(*p.Date)
		if err != nil {
			return Patch{}, err
		}
		p.Date = &d
	}
	if p.Time != nil {
		t, err := NormalizeTime(*p.Time)
		if err != nil {
			return Patch{}, err
		}
		p.Time = &t
	}
	if p.Status != nil && !p.Status.Valid() {
		return Patch{}, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, *p.Status)
	}
	return p, nil
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}
