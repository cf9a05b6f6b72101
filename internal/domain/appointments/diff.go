package appointments

// Nombres de campo tal como viajan en los ChangeEvent y en las notificaciones.
const (
	FieldPetID   = "pet_id"
	FieldOwnerID = "owner_id"
	FieldDate    = "date"
	FieldTime    = "time"
	FieldReason  = "reason"
	FieldStatus  = "status"
)

// ApplyTo devuelve una copia de a con los campos presentes en el patch.
func (p Patch) ApplyTo(a Appointment) Appointment {
	if p.PetID != nil {
		a.PetID = *p.PetID
	}
	if p.OwnerID != nil {
		a.OwnerID = *p.OwnerID
	}
	if p.Date != nil {
		a.Date = *p.Date
	}
	if p.Time != nil {
		a.Time = *p.Time
	}
	if p.Reason != nil {
		a.Reason = *p.Reason
	}
	if p.Status != nil {
		a.Status = *p.Status
	}
	return a
}

// Diff compara los campos editables y devuelve los que cambiaron, en orden fijo.
func Diff(before, after Appointment) []FieldChange {
	out := make([]FieldChange, 0)

	add := func(field, from, to string) {
		if from == to {
			return
		}
		out = append(out, FieldChange{Field: field, From: from, To: to})
	}

	add(FieldPetID, before.PetID, after.PetID)
	add(FieldOwnerID, before.OwnerID, after.OwnerID)
	add(FieldDate, before.Date, after.Date)
	add(FieldTime, before.Time, after.Time)
	add(FieldReason, before.Reason, after.Reason)
	add(FieldStatus, string(before.Status), string(after.Status))

	return out
}

// patchFor arma el patch mínimo (solo campos cambiados) a partir del estado final.
func patchFor(after Appointment, changes []FieldChange) Patch {
	var p Patch
	for _, c := range changes {
		switch c.Field {
		case FieldPetID:
			v := after.PetID
			p.PetID = &v
		case FieldOwnerID:
			v := after.OwnerID
			p.OwnerID = &v
		case FieldDate:
			v := after.Date
			p.Date = &v
		case FieldTime:
			v := after.Time
			p.Time = &v
		case FieldReason:
			v := after.Reason
			p.Reason = &v
		case FieldStatus:
			v := after.Status
			p.Status = &v
		}
	}
	return p
}
