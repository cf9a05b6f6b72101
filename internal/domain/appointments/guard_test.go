package appointments

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func seed(repo *fakeRepo, items ...Appointment) {
	for _, a := range items {
		repo.items[a.ID] = a
	}
}

func TestGuard_CheckConflict(t *testing.T) {
	repo := newFakeRepo()
	seed(repo,
		Appointment{ID: "a1", PetID: "p1", Date: "2025-06-01", Time: "10:00", Status: StatusScheduled},
		Appointment{ID: "a2", PetID: "p1", Date: "2025-06-01", Time: "11:00", Status: StatusCancelled},
		Appointment{ID: "a3", PetID: "p1", Date: "2025-06-01", Time: "12:00", Status: StatusCompleted},
	)
	g := NewGuard(repo)

	cases := []struct {
		name string
		q    SlotQuery
		want bool
	}{
		{"scheduled slot taken", SlotQuery{PetID: "p1", Date: "2025-06-01", Time: "10:00"}, true},
		{"own appointment excluded", SlotQuery{PetID: "p1", Date: "2025-06-01", Time: "10:00", ExcludeID: "a1"}, false},
		{"cancelled does not block", SlotQuery{PetID: "p1", Date: "2025-06-01", Time: "11:00"}, false},
		{"completed does not block", SlotQuery{PetID: "p1", Date: "2025-06-01", Time: "12:00"}, false},
		{"other pet free", SlotQuery{PetID: "p2", Date: "2025-06-01", Time: "10:00"}, false},
		{"trims input", SlotQuery{PetID: " p1 ", Date: "2025-06-01 ", Time: " 10:00"}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := g.CheckConflict(context.Background(), tc.q)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestGuard_RequiresFullSlot(t *testing.T) {
	g := NewGuard(newFakeRepo())

	for _, q := range []SlotQuery{
		{Date: "2025-06-01", Time: "10:00"},
		{PetID: "p1", Time: "10:00"},
		{PetID: "p1", Date: "2025-06-01"},
	} {
		_, err := g.CheckConflict(context.Background(), q)
		assert.ErrorIs(t, err, ErrInvalidInput)
	}
}

func TestGuard_StoreErrorWrapped(t *testing.T) {
	repo := newFakeRepo()
	repo.existsErr = errBoom

	_, err := NewGuard(repo).CheckConflict(context.Background(), SlotQuery{PetID: "p1", Date: "2025-06-01", Time: "10:00"})
	assert.ErrorIs(t, err, ErrStore)
	assert.ErrorIs(t, err, errBoom)
}

// A lo sumo una cita scheduled por turno, sin importar el orden de las escrituras.
func TestService_NeverDoubleBooks(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		svc, repo, _ := newTestService()
		ctx := context.Background()

		pets := []string{"pet-milo", "pet-rex"}
		dates := []string{"2025-06-01", "2025-06-02"}
		times := []string{"10:00", "10:30"}
		var ids []string

		steps := rapid.IntRange(1, 40).Draw(t, "steps")
		for i := 0; i < steps; i++ {
			switch op := rapid.IntRange(0, 3).Draw(t, "op"); {
			case op == 0 || len(ids) == 0:
				a, err := svc.Create(ctx, CreateInput{
					PetID:   rapid.SampledFrom(pets).Draw(t, "pet"),
					OwnerID: "owner-jane",
					Date:    rapid.SampledFrom(dates).Draw(t, "date"),
					Time:    rapid.SampledFrom(times).Draw(t, "time"),
				})
				if err == nil {
					ids = append(ids, a.ID)
				}
			case op == 1:
				id := rapid.SampledFrom(ids).Draw(t, "id")
				_, _ = svc.ApplyFieldUpdate(ctx, id, Patch{
					Date: strp(rapid.SampledFrom(dates).Draw(t, "date")),
					Time: strp(rapid.SampledFrom(times).Draw(t, "time")),
				})
			case op == 2:
				_, _ = svc.Cancel(ctx, rapid.SampledFrom(ids).Draw(t, "id"))
			default:
				_, _ = svc.TransitionStatus(ctx, rapid.SampledFrom(ids).Draw(t, "id"), StatusScheduled)
			}
		}

		seen := map[string]string{}
		for id, a := range repo.items {
			if a.Status != StatusScheduled {
				continue
			}
			key := fmt.Sprintf("%s|%s|%s", a.PetID, a.Date, a.Time)
			if other, dup := seen[key]; dup {
				t.Fatalf("slot %s booked twice: %s and %s", key, other, id)
			}
			seen[key] = id
		}
	})
}
