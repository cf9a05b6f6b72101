package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"vet-clinic/internal/domain/owners"
)

type ownerRepo struct {
	mu   sync.RWMutex
	byID map[string]owners.Owner
}

func NewOwnerRepo() owners.Repository {
	return &ownerRepo{
		byID: make(map[string]owners.Owner),
	}
}

func (r *ownerRepo) Create(ctx context.Context, o owners.Owner) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(o.ID) == "" {
		return errors.New("owner id required")
	}
	if _, exists := r.byID[o.ID]; exists {
		return errors.New("owner already exists")
	}
	if o.Email != "" {
		for _, existing := range r.byID {
			if existing.Email == o.Email {
				return owners.ErrDuplicateEmail
			}
		}
	}
	r.byID[o.ID] = o
	return nil
}

func (r *ownerRepo) GetByID(ctx context.Context, id string) (owners.Owner, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	o, ok := r.byID[id]
	if !ok {
		return owners.Owner{}, owners.ErrNotFound
	}
	return o, nil
}

func (r *ownerRepo) List(ctx context.Context, q string) ([]owners.Owner, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	needle := strings.ToLower(q)
	out := make([]owners.Owner, 0)
	for _, o := range r.byID {
		if needle != "" &&
			!strings.Contains(strings.ToLower(o.Name), needle) &&
			!strings.Contains(strings.ToLower(o.Phone), needle) &&
			!strings.Contains(o.Email, needle) {
			continue
		}
		out = append(out, o)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}
