package memory_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"vet-clinic/internal/adapters/storage/memory"
	"vet-clinic/internal/domain/appointments"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scheduled(id, pet, date, tm string) appointments.Appointment {
	return appointments.Appointment{
		ID: id, PetID: pet, OwnerID: "o1", Date: date, Time: tm,
		Status: appointments.StatusScheduled,
	}
}

func TestAppointmentRepo_ConcurrentCreateOnlyOneWins(t *testing.T) {
	repo := memory.NewAppointmentRepo()

	const writers = 32
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		wins      int
		conflicts int
	)
	start := make(chan struct{})
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-start
			err := repo.Create(context.Background(), scheduled(fmt.Sprintf("a%d", i), "p1", "2025-06-01", "10:00"))
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				wins++
			case errors.Is(err, appointments.ErrConflict):
				conflicts++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}(i)
	}
	close(start)
	wg.Wait()

	assert.Equal(t, 1, wins)
	assert.Equal(t, writers-1, conflicts)
}

func TestAppointmentRepo_UpdateFieldsEnforcesSlot(t *testing.T) {
	repo := memory.NewAppointmentRepo()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, scheduled("a1", "p1", "2025-06-01", "10:00")))
	require.NoError(t, repo.Create(ctx, scheduled("a2", "p1", "2025-06-01", "11:00")))

	tm := "10:00"
	_, err := repo.UpdateFields(ctx, "a2", appointments.Patch{Time: &tm}, time.Now())
	assert.ErrorIs(t, err, appointments.ErrConflict)

	// Misma cita en su propio turno no choca.
	reason := "Checkup"
	now := time.Date(2025, 5, 1, 8, 0, 0, 0, time.UTC)
	got, err := repo.UpdateFields(ctx, "a1", appointments.Patch{Reason: &reason}, now)
	require.NoError(t, err)
	assert.Equal(t, "Checkup", got.Reason)
	assert.Equal(t, now, got.UpdatedAt)

	// Cancelada libera el turno.
	cancelled := appointments.StatusCancelled
	_, err = repo.UpdateFields(ctx, "a1", appointments.Patch{Status: &cancelled}, now)
	require.NoError(t, err)
	taken, err := repo.ExistsActiveSlot(ctx, appointments.SlotQuery{PetID: "p1", Date: "2025-06-01", Time: "10:00"})
	require.NoError(t, err)
	assert.False(t, taken)

	_, err = repo.UpdateFields(ctx, "a2", appointments.Patch{Time: &tm}, now)
	assert.NoError(t, err)

	_, err = repo.UpdateFields(ctx, "missing", appointments.Patch{Time: &tm}, now)
	assert.ErrorIs(t, err, appointments.ErrNotFound)
}

func TestAppointmentRepo_ListFiltersAndOrder(t *testing.T) {
	repo := memory.NewAppointmentRepo()
	ctx := context.Background()

	for _, a := range []appointments.Appointment{
		scheduled("a1", "p1", "2025-06-02", "09:00"),
		scheduled("a2", "p2", "2025-06-01", "15:00"),
		scheduled("a3", "p1", "2025-06-01", "08:30"),
		scheduled("a4", "p1", "2025-06-05", "08:30"),
	} {
		require.NoError(t, repo.Create(ctx, a))
	}

	ids := func(items []appointments.Appointment) []string {
		out := make([]string, 0, len(items))
		for _, a := range items {
			out = append(out, a.ID)
		}
		return out
	}

	all, err := repo.List(ctx, appointments.ListFilter{})
	require.NoError(t, err)
	assert.Equal(t, []string{"a3", "a2", "a1", "a4"}, ids(all))

	newest, err := repo.List(ctx, appointments.ListFilter{Newest: true})
	require.NoError(t, err)
	assert.Equal(t, []string{"a4", "a1", "a2", "a3"}, ids(newest))

	byPet, err := repo.List(ctx, appointments.ListFilter{PetID: "p1", From: "2025-06-01", To: "2025-06-02"})
	require.NoError(t, err)
	assert.Equal(t, []string{"a3", "a1"}, ids(byPet))

	byDate, err := repo.List(ctx, appointments.ListFilter{Date: "2025-06-01"})
	require.NoError(t, err)
	assert.Equal(t, []string{"a3", "a2"}, ids(byDate))
}

func TestAppointmentRepo_DoesNotPersistResolvedRefs(t *testing.T) {
	repo := memory.NewAppointmentRepo()
	ctx := context.Background()

	a := scheduled("a1", "p1", "2025-06-01", "10:00")
	a.Pet = &appointments.PetSummary{ID: "p1", Name: "Milo"}
	require.NoError(t, repo.Create(ctx, a))

	got, err := repo.GetByID(ctx, "a1")
	require.NoError(t, err)
	assert.Nil(t, got.Pet)

	require.NoError(t, repo.Delete(ctx, "a1"))
	assert.ErrorIs(t, repo.Delete(ctx, "a1"), appointments.ErrNotFound)
}
