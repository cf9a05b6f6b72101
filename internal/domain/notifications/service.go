package notifications

import (
	"context"
	"errors"
	"strings"
)

var (
	ErrNotFound = errors.New("notification not found")
)

const (
	DefaultListLimit = 50
	MaxListLimit     = 200
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]Notification, error) {
	if filter.Limit <= 0 {
		filter.Limit = DefaultListLimit
	}
	if filter.Limit > MaxListLimit {
		filter.Limit = MaxListLimit
	}
	filter.OwnerID = strings.TrimSpace(filter.OwnerID)
	return s.repo.List(ctx, filter)
}

// MarkRead es idempotente.
func (s *Service) MarkRead(ctx context.Context, id string) (Notification, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Notification{}, ErrNotFound
	}
	if err := s.repo.MarkRead(ctx, id); err != nil {
		return Notification{}, err
	}
	return s.repo.GetByID(ctx, id)
}
