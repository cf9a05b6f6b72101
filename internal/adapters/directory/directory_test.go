package directory

import (
	"context"
	"testing"

	"vet-clinic/internal/adapters/storage/memory"
	"vet-clinic/internal/domain/appointments"
	"vet-clinic/internal/domain/owners"
	"vet-clinic/internal/domain/pets"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirectory_ResolvesAndMisses(t *testing.T) {
	ctx := context.Background()
	ownersSvc := owners.NewService(memory.NewOwnerRepo())
	petsSvc := pets.NewService(memory.NewPetRepo())

	o, err := ownersSvc.Create(ctx, owners.CreateInput{Name: "Jane", Phone: "555-0101"})
	require.NoError(t, err)
	p, err := petsSvc.Create(ctx, pets.CreateInput{OwnerID: o.ID, Name: "Rex", Type: "dog"})
	require.NoError(t, err)

	dir := New(petsSvc, ownersSvc)

	ps, ok, err := dir.PetSummary(ctx, p.ID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, appointments.PetSummary{ID: p.ID, Name: "Rex", Type: "dog"}, ps)

	os, ok, err := dir.OwnerSummary(ctx, o.ID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "555-0101", os.Phone)

	_, ok, err = dir.PetSummary(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)

	a, err := appointments.Resolve(ctx, dir, appointments.Appointment{ID: "a1", PetID: p.ID, OwnerID: "missing"})
	require.NoError(t, err)
	require.NotNil(t, a.Pet)
	assert.Nil(t, a.Owner)
}
