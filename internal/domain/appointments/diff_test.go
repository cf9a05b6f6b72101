package appointments

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDiff_FixedOrderAndOnlyChangedFields(t *testing.T) {
	before := Appointment{
		ID: "a1", PetID: "p1", OwnerID: "o1",
		Date: "2025-06-01", Time: "10:00", Reason: "Vaccination", Status: StatusScheduled,
	}

	after := before
	after.Status = StatusCancelled
	after.Time = "11:00"
	after.Date = "2025-06-02"

	assert.Equal(t, []FieldChange{
		{Field: FieldDate, From: "2025-06-01", To: "2025-06-02"},
		{Field: FieldTime, From: "10:00", To: "11:00"},
		{Field: FieldStatus, From: "scheduled", To: "cancelled"},
	}, Diff(before, after))

	assert.Empty(t, Diff(before, before))
}

func TestDiff_ReasonClearedKeepsEmptyTo(t *testing.T) {
	before := Appointment{Reason: "Vaccination"}
	after := Appointment{}

	assert.Equal(t, []FieldChange{{Field: FieldReason, From: "Vaccination", To: ""}}, Diff(before, after))
}

func TestPatch_ApplyToAndIsEmpty(t *testing.T) {
	a := Appointment{PetID: "p1", Date: "2025-06-01", Time: "10:00", Status: StatusScheduled}

	assert.True(t, Patch{}.IsEmpty())
	assert.Equal(t, a, Patch{}.ApplyTo(a))

	st := StatusCompleted
	p := Patch{Time: strp("12:00"), Status: &st}
	assert.False(t, p.IsEmpty())

	got := p.ApplyTo(a)
	assert.Equal(t, "12:00", got.Time)
	assert.Equal(t, StatusCompleted, got.Status)
	assert.Equal(t, "10:00", a.Time)
}

func TestPatchFor_OnlyChangedFields(t *testing.T) {
	after := Appointment{PetID: "p2", Date: "2025-06-01", Time: "10:00", Reason: "x"}

	p := patchFor(after, []FieldChange{{Field: FieldPetID}, {Field: FieldReason}})

	if assert.NotNil(t, p.PetID) && assert.NotNil(t, p.Reason) {
		assert.Equal(t, "p2", *p.PetID)
		assert.Equal(t, "x", *p.Reason)
	}
	assert.Nil(t, p.Date)
	assert.Nil(t, p.Time)
	assert.Nil(t, p.Status)
}
