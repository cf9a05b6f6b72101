package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"vet-clinic/internal/domain/appointments"
)

// appointmentRepo replica la constraint de Postgres: a lo sumo una cita scheduled
// por (pet_id, date, time). Se chequea bajo el mismo lock que la escritura.
type appointmentRepo struct {
	mu   sync.RWMutex
	byID map[string]appointments.Appointment
}

func NewAppointmentRepo() appointments.Repository {
	return &appointmentRepo{
		byID: make(map[string]appointments.Appointment),
	}
}

func (r *appointmentRepo) ExistsActiveSlot(ctx context.Context, q appointments.SlotQuery) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.slotTakenLocked(q.PetID, q.Date, q.Time, q.ExcludeID), nil
}

func (r *appointmentRepo) Create(ctx context.Context, a appointments.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(a.ID) == "" {
		return errors.New("appointment id required")
	}
	if _, exists := r.byID[a.ID]; exists {
		return errors.New("appointment already exists")
	}
	if a.Status == appointments.StatusScheduled && r.slotTakenLocked(a.PetID, a.Date, a.Time, "") {
		return appointments.ErrConflict
	}

	r.byID[a.ID] = stripRefs(a)
	return nil
}

func (r *appointmentRepo) UpdateFields(ctx context.Context, id string, p appointments.Patch, updatedAt time.Time) (appointments.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.byID[id]
	if !ok {
		return appointments.Appointment{}, appointments.ErrNotFound
	}

	next := p.ApplyTo(current)
	next.UpdatedAt = updatedAt

	if next.Status == appointments.StatusScheduled && r.slotTakenLocked(next.PetID, next.Date, next.Time, id) {
		return appointments.Appointment{}, appointments.ErrConflict
	}

	r.byID[id] = next
	return next, nil
}

func (r *appointmentRepo) GetByID(ctx context.Context, id string) (appointments.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.byID[id]
	if !ok {
		return appointments.Appointment{}, appointments.ErrNotFound
	}
	return a, nil
}

func (r *appointmentRepo) List(ctx context.Context, filter appointments.ListFilter) ([]appointments.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]appointments.Appointment, 0)
	for _, a := range r.byID {
		if filter.OwnerID != "" && a.OwnerID != filter.OwnerID {
			continue
		}
		if filter.PetID != "" && a.PetID != filter.PetID {
			continue
		}
		if filter.Status != "" && a.Status != filter.Status {
			continue
		}
		if filter.Date != "" && a.Date != filter.Date {
			continue
		}
		// YYYY-MM-DD compara bien como string
		if filter.From != "" && a.Date < filter.From {
			continue
		}
		if filter.To != "" && a.Date > filter.To {
			continue
		}
		out = append(out, a)
	}

	sort.Slice(out, func(i, j int) bool {
		ki := out[i].Date + " " + out[i].Time
		kj := out[j].Date + " " + out[j].Time
		if ki == kj {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		if filter.Newest {
			return ki > kj
		}
		return ki < kj
	})

	return out, nil
}

func (r *appointmentRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return appointments.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *appointmentRepo) slotTakenLocked(petID, date, tm, excludeID string) bool {
	for id, a := range r.byID {
		if id == excludeID {
			continue
		}
		if a.Status == appointments.StatusScheduled && a.PetID == petID && a.Date == date && a.Time == tm {
			return true
		}
	}
	return false
}

// Las refs resueltas no se persisten.
func stripRefs(a appointments.Appointment) appointments.Appointment {
	a.Pet = nil
	a.Owner = nil
	return a
}
