package appointments

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"
)

// fakeRepo respeta la unicidad de turnos scheduled igual que el store real.
// blindGuard simula la carrera: ExistsActiveSlot siempre responde libre.
type fakeRepo struct {
	mu         sync.Mutex
	items      map[string]Appointment
	updates    int
	blindGuard bool
	existsErr  error
}

func newFakeRepo() *fakeRepo { return &fakeRepo{items: map[string]Appointment{}} }

func (f *fakeRepo) ExistsActiveSlot(ctx context.Context, q SlotQuery) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.existsErr != nil {
		return false, f.existsErr
	}
	if f.blindGuard {
		return false, nil
	}
	return f.takenLocked(q), nil
}

func (f *fakeRepo) Create(ctx context.Context, a Appointment) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if a.Status == StatusScheduled && f.takenLocked(a.Slot()) {
		return ErrConflict
	}
	f.items[a.ID] = a
	return nil
}

func (f *fakeRepo) UpdateFields(ctx context.Context, id string, p Patch, updatedAt time.Time) (Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	cur, ok := f.items[id]
	if !ok {
		return Appointment{}, ErrNotFound
	}
	next := p.ApplyTo(cur)
	next.UpdatedAt = updatedAt
	if next.Status == StatusScheduled {
		q := next.Slot()
		q.ExcludeID = id
		if f.takenLocked(q) {
			return Appointment{}, ErrConflict
		}
	}
	f.items[id] = next
	f.updates++
	return next, nil
}

func (f *fakeRepo) GetByID(ctx context.Context, id string) (Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	a, ok := f.items[id]
	if !ok {
		return Appointment{}, ErrNotFound
	}
	return a, nil
}

func (f *fakeRepo) List(ctx context.Context, filter ListFilter) ([]Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := []Appointment{}
	for _, a := range f.items {
		if filter.Status != "" && a.Status != filter.Status {
			continue
		}
		if filter.From != "" && a.Date < filter.From {
			continue
		}
		if filter.To != "" && a.Date > filter.To {
			continue
		}
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool {
		ki, kj := out[i].Date+" "+out[i].Time, out[j].Date+" "+out[j].Time
		if filter.Newest {
			return ki > kj
		}
		return ki < kj
	})
	return out, nil
}

func (f *fakeRepo) Delete(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.items[id]; !ok {
		return ErrNotFound
	}
	delete(f.items, id)
	return nil
}

func (f *fakeRepo) takenLocked(q SlotQuery) bool {
	for id, a := range f.items {
		if id == q.ExcludeID {
			continue
		}
		if a.Status == StatusScheduled && a.PetID == q.PetID && a.Date == q.Date && a.Time == q.Time {
			return true
		}
	}
	return false
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []ChangeEvent
}

func (p *recordingPublisher) Publish(ev ChangeEvent) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, ev)
}

func (p *recordingPublisher) Events() []ChangeEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]ChangeEvent, len(p.events))
	copy(out, p.events)
	return out
}

type fakeDirectory struct {
	pets   map[string]PetSummary
	owners map[string]OwnerSummary
	err    error
}

func (d *fakeDirectory) PetSummary(ctx context.Context, id string) (PetSummary, bool, error) {
	if d.err != nil {
		return PetSummary{}, false, d.err
	}
	p, ok := d.pets[id]
	return p, ok, nil
}

func (d *fakeDirectory) OwnerSummary(ctx context.Context, id string) (OwnerSummary, bool, error) {
	if d.err != nil {
		return OwnerSummary{}, false, d.err
	}
	o, ok := d.owners[id]
	return o, ok, nil
}

var errBoom = errors.New("boom")

func clinicDirectory() *fakeDirectory {
	return &fakeDirectory{
		pets: map[string]PetSummary{
			"pet-milo": {ID: "pet-milo", Name: "Milo", Type: "dog"},
			"pet-rex":  {ID: "pet-rex", Name: "Rex", Type: "dog"},
		},
		owners: map[string]OwnerSummary{
			"owner-jane": {ID: "owner-jane", Name: "Jane", Phone: "555-0101"},
		},
	}
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}
