package appointments

import "context"

// Directory resuelve pet/owner a su nombre visible. ok=false cuando la referencia no existe.
type Directory interface {
	PetSummary(ctx context.Context, id string) (PetSummary, bool, error)
	OwnerSummary(ctx context.Context, id string) (OwnerSummary, bool, error)
}

// Resolve adjunta Pet/Owner si todavía no vienen cargados (o si cambió la referencia).
// Referencias inexistentes quedan en nil; los errores del directory se devuelven.
func Resolve(ctx context.Context, dir Directory, a Appointment) (Appointment, error) {
	if dir == nil {
		return a, nil
	}

	if a.Pet == nil || a.Pet.ID != a.PetID {
		a.Pet = nil
		p, ok, err := dir.PetSummary(ctx, a.PetID)
		if err != nil {
			return a, err
		}
		if ok {
			a.Pet = &p
		}
	}

	if a.Owner == nil || a.Owner.ID != a.OwnerID {
		a.Owner = nil
		o, ok, err := dir.OwnerSummary(ctx, a.OwnerID)
		if err != nil {
			return a, err
		}
		if ok {
			a.Owner = &o
		}
	}

	return a, nil
}
