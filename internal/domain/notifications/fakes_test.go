package notifications

import (
	"context"
	"errors"
	"sort"
	"sync"

	"vet-clinic/internal/domain/appointments"
)

type fakeRepo struct {
	mu        sync.Mutex
	items     map[string]Notification
	createErr error
}

func newFakeRepo() *fakeRepo { return &fakeRepo{items: map[string]Notification{}} }

func (f *fakeRepo) Create(ctx context.Context, n Notification) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return f.createErr
	}
	f.items[n.ID] = n
	return nil
}

func (f *fakeRepo) GetByID(ctx context.Context, id string) (Notification, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	n, ok := f.items[id]
	if !ok {
		return Notification{}, ErrNotFound
	}
	return n, nil
}

func (f *fakeRepo) List(ctx context.Context, filter ListFilter) ([]Notification, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []Notification{}
	for _, n := range f.items {
		if filter.OwnerID != "" && n.OwnerID != filter.OwnerID {
			continue
		}
		if filter.UnreadOnly && n.Read {
			continue
		}
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if filter.Limit > 0 && len(out) > filter.Limit {
		out = out[:filter.Limit]
	}
	return out, nil
}

func (f *fakeRepo) MarkRead(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	n, ok := f.items[id]
	if !ok {
		return ErrNotFound
	}
	n.Read = true
	f.items[id] = n
	return nil
}

type pushed struct {
	event   string
	payload any
}

type fakeBroadcaster struct {
	mu   sync.Mutex
	sent []pushed
	err  error
}

func (b *fakeBroadcaster) Broadcast(ctx context.Context, event string, payload any) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.err != nil {
		return b.err
	}
	b.sent = append(b.sent, pushed{event: event, payload: payload})
	return nil
}

type fakeDirectory struct {
	pets   map[string]appointments.PetSummary
	owners map[string]appointments.OwnerSummary
	err    error
}

func (d *fakeDirectory) PetSummary(ctx context.Context, id string) (appointments.PetSummary, bool, error) {
	if d.err != nil {
		return appointments.PetSummary{}, false, d.err
	}
	p, ok := d.pets[id]
	return p, ok, nil
}

func (d *fakeDirectory) OwnerSummary(ctx context.Context, id string) (appointments.OwnerSummary, bool, error) {
	if d.err != nil {
		return appointments.OwnerSummary{}, false, d.err
	}
	o, ok := d.owners[id]
	return o, ok, nil
}

var errBoom = errors.New("boom")

func rexDirectory() *fakeDirectory {
	return &fakeDirectory{
		pets:   map[string]appointments.PetSummary{"pet-rex": {ID: "pet-rex", Name: "Rex"}},
		owners: map[string]appointments.OwnerSummary{"owner-jane": {ID: "owner-jane", Name: "Jane"}},
	}
}
