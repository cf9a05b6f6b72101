package owners

import (
	"context"
	"strings"
	"testing"
	"time"
)

type fakeRepo struct {
	items map[string]Owner
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{items: map[string]Owner{}}
}

func (f *fakeRepo) Create(ctx context.Context, o Owner) error {
	for _, existing := range f.items {
		if o.Email != "" && existing.Email == o.Email {
			return ErrDuplicateEmail
		}
	}
	f.items[o.ID] = o
	return nil
}

func (f *fakeRepo) GetByID(ctx context.Context, id string) (Owner, error) {
	o, ok := f.items[id]
	if !ok {
		return Owner{}, ErrNotFound
	}
	return o, nil
}

func (f *fakeRepo) List(ctx context.Context, q string) ([]Owner, error) {
	out := []Owner{}
	for _, o := range f.items {
		if q == "" || strings.Contains(strings.ToLower(o.Name), strings.ToLower(q)) {
			out = append(out, o)
		}
	}
	return out, nil
}

func TestCreate_TrimsAndNormalizes(t *testing.T) {
	svc := NewService(newFakeRepo())
	fixed := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	o, err := svc.Create(context.Background(), CreateInput{
		Name:  "  Jane Doe ",
		Phone: " 555-0101",
		Email: " Jane@Example.COM ",
	})
	if err != nil {
		t.Fatalf("expected nil err, got %v", err)
	}
	if o.Name != "Jane Doe" || o.Phone != "555-0101" {
		t.Fatalf("unexpected owner: %+v", o)
	}
	if o.Email != "jane@example.com" {
		t.Fatalf("expected lowercased email, got %q", o.Email)
	}
	if !o.CreatedAt.Equal(fixed) {
		t.Fatalf("expected created_at %v, got %v", fixed, o.CreatedAt)
	}
}

func TestCreate_RequiresNameAndPhone(t *testing.T) {
	svc := NewService(newFakeRepo())

	if _, err := svc.Create(context.Background(), CreateInput{Name: "Jane"}); err != ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if _, err := svc.Create(context.Background(), CreateInput{Phone: "555"}); err != ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if _, err := svc.Create(context.Background(), CreateInput{Name: "Jane", Phone: "555", Email: "nope"}); err != ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput for bad email, got %v", err)
	}
}

func TestGetByID_EmptyIsNotFound(t *testing.T) {
	svc := NewService(newFakeRepo())
	if _, err := svc.GetByID(context.Background(), "  "); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
