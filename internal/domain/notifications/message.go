package notifications

import (
	"fmt"
	"strings"

	"vet-clinic/internal/domain/appointments"
)

// fieldLabels es la allow-list de campos que aparecen en el texto.
// El resto se guarda en Changes pero no se menciona.
var fieldLabels = map[string]string{
	appointments.FieldDate:   "date",
	appointments.FieldTime:   "time",
	appointments.FieldStatus: "status",
	appointments.FieldReason: "reason",
}

const (
	fallbackPetName   = "Pet"
	fallbackOwnerName = "Owner"
)

// BuildMessage arma el resumen legible de un cambio.
func BuildMessage(petName, ownerName string, changes []appointments.FieldChange) string {
	if strings.TrimSpace(petName) == "" {
		petName = fallbackPetName
	}
	if strings.TrimSpace(ownerName) == "" {
		ownerName = fallbackOwnerName
	}

	labels := make([]string, 0, len(changes))
	for _, c := range changes {
		if l, ok := fieldLabels[c.Field]; ok {
			labels = append(labels, l)
		}
	}

	if len(labels) == 0 {
		return fmt.Sprintf("Appointment updated for %s.", petName)
	}
	return fmt.Sprintf("Appointment %s updated for %s (%s).", strings.Join(labels, ", "), petName, ownerName)
}
