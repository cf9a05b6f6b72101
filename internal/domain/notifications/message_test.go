package notifications

import (
	"testing"

	"vet-clinic/internal/domain/appointments"

	"github.com/stretchr/testify/assert"
)

func TestBuildMessage(t *testing.T) {
	cases := []struct {
		name    string
		pet     string
		owner   string
		changes []appointments.FieldChange
		want    string
	}{
		{
			name:    "reschedule",
			pet:     "Rex",
			owner:   "Jane",
			changes: []appointments.FieldChange{{Field: appointments.FieldDate}, {Field: appointments.FieldTime}},
			want:    "Appointment date, time updated for Rex (Jane).",
		},
		{
			name:    "status only",
			pet:     "Milo",
			owner:   "Jane",
			changes: []appointments.FieldChange{{Field: appointments.FieldStatus}},
			want:    "Appointment status updated for Milo (Jane).",
		},
		{
			name:    "ids are not mentioned",
			pet:     "Milo",
			owner:   "Jane",
			changes: []appointments.FieldChange{{Field: appointments.FieldPetID}, {Field: appointments.FieldReason}},
			want:    "Appointment reason updated for Milo (Jane).",
		},
		{
			name:    "only non-displayable fields",
			pet:     "Milo",
			owner:   "Jane",
			changes: []appointments.FieldChange{{Field: appointments.FieldOwnerID}},
			want:    "Appointment updated for Milo.",
		},
		{
			name:    "unresolved refs",
			changes: []appointments.FieldChange{{Field: appointments.FieldTime}},
			want:    "Appointment time updated for Pet (Owner).",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, BuildMessage(tc.pet, tc.owner, tc.changes))
		})
	}
}
