package memory

import (
	"context"
	"errors"
	"sort"
	"sync"

	"vet-clinic/internal/domain/notifications"
)

type notificationRepo struct {
	mu   sync.RWMutex
	byID map[string]notifications.Notification
}

func NewNotificationRepo() notifications.Repository {
	return &notificationRepo{
		byID: make(map[string]notifications.Notification),
	}
}

func (r *notificationRepo) Create(ctx context.Context, n notifications.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if n.ID == "" {
		return errors.New("notification id required")
	}
	if _, exists := r.byID[n.ID]; exists {
		return errors.New("notification already exists")
	}
	r.byID[n.ID] = n
	return nil
}

func (r *notificationRepo) GetByID(ctx context.Context, id string) (notifications.Notification, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n, ok := r.byID[id]
	if !ok {
		return notifications.Notification{}, notifications.ErrNotFound
	}
	return n, nil
}

func (r *notificationRepo) List(ctx context.Context, filter notifications.ListFilter) ([]notifications.Notification, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]notifications.Notification, 0)
	for _, n := range r.byID {
		if filter.OwnerID != "" && n.OwnerID != filter.OwnerID {
			continue
		}
		if filter.UnreadOnly && n.Read {
			continue
		}
		out = append(out, n)
	}

	// Más reciente primero
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})

	if filter.Limit > 0 && len(out) > filter.Limit {
		out = out[:filter.Limit]
	}
	return out, nil
}

func (r *notificationRepo) MarkRead(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	n, ok := r.byID[id]
	if !ok {
		return notifications.ErrNotFound
	}
	n.Read = true
	r.byID[id] = n
	return nil
}
