package pets

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("pet not found")
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
	OwnerID   string
	Name      string
	Type      string
	Breed     string
	BirthDate *time.Time
	Notes     string
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Pet, error) {
	if strings.TrimSpace(in.OwnerID) == "" {
		return Pet{}, ErrInvalidInput
	}
	if strings.TrimSpace(in.Name) == "" {
		return Pet{}, ErrInvalidInput
	}
	if strings.TrimSpace(in.Type) == "" {
		return Pet{}, ErrInvalidInput
	}

	now := s.now()
	p := Pet{
		ID:        uuid.NewString(),
		OwnerID:   strings.TrimSpace(in.OwnerID),
		Name:      strings.TrimSpace(in.Name),
		Type:      Species(strings.ToLower(strings.TrimSpace(in.Type))),
		Breed:     strings.TrimSpace(in.Breed),
		BirthDate: in.BirthDate,
		Notes:     strings.TrimSpace(in.Notes),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return Pet{}, err
	}
	return p, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Pet, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Pet{}, ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListByOwner(ctx context.Context, ownerID string) ([]Pet, error) {
	return s.repo.ListByOwner(ctx, strings.TrimSpace(ownerID))
}

func (s *Service) List(ctx context.Context) ([]Pet, error) {
	return s.repo.List(ctx)
}

// PatchBirthDate distingue "no enviado" de "null" (limpiar).
type PatchBirthDate struct {
	Present bool
	Value   *time.Time
}

// UpdateProfileInput: punteros nil = no tocar.
type UpdateProfileInput struct {
	Name      *string
	Type      *string
	Breed     *string
	BirthDate PatchBirthDate
	Notes     *string
}

func (s *Service) UpdateProfile(ctx context.Context, petID string, in UpdateProfileInput) (Pet, error) {
	p, err := s.GetByID(ctx, petID)
	if err != nil {
		return Pet{}, err
	}

	if in.Name != nil {
		v := strings.TrimSpace(*in.Name)
		if v == "" {
			return Pet{}, ErrInvalidInput
		}
		p.Name = v
	}
	if in.Type != nil {
		v := strings.ToLower(strings.TrimSpace(*in.Type))
		if v == "" {
			return Pet{}, ErrInvalidInput
		}
		p.Type = Species(v)
	}
	if in.Breed != nil {
		p.Breed = strings.TrimSpace(*in.Breed)
	}
	if in.BirthDate.Present {
		p.BirthDate = in.BirthDate.Value
	}
	if in.Notes != nil {
		p.Notes = strings.TrimSpace(*in.Notes)
	}

	p.UpdatedAt = s.now()
	if err := s.repo.Update(ctx, p); err != nil {
		return Pet{}, err
	}
	return p, nil
}
