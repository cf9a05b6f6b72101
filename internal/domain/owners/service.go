package owners

import (
	"context"
	"errors"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput   = errors.New("invalid input")
	ErrNotFound       = errors.New("owner not found")
	ErrDuplicateEmail = errors.New("email already registered")
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

type CreateInput struct {
	Name  string
	Phone string
	Email string
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Owner, error) {
	name := strings.TrimSpace(in.Name)
	phone := strings.TrimSpace(in.Phone)
	email := strings.ToLower(strings.TrimSpace(in.Email))

	if name == "" || phone == "" {
		return Owner{}, ErrInvalidInput
	}
	if email != "" {
		if _, err := mail.ParseAddress(email); err != nil {
			return Owner{}, ErrInvalidInput
		}
	}

	now := s.now()
	o := Owner{
		ID:        uuid.NewString(),
		Name:      name,
		Phone:     phone,
		Email:     email,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, o); err != nil {
		return Owner{}, err
	}
	return o, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Owner, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Owner{}, ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, q string) ([]Owner, error) {
	return s.repo.List(ctx, strings.TrimSpace(q))
}
