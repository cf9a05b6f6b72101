package directory

import (
	"context"
	"errors"

	"vet-clinic/internal/domain/appointments"
	"vet-clinic/internal/domain/owners"
	"vet-clinic/internal/domain/pets"
)

// Directory resuelve referencias de citas contra los servicios de pets y owners.
type Directory struct {
	pets   *pets.Service
	owners *owners.Service
}

var _ appointments.Directory = (*Directory)(nil)

func New(petsSvc *pets.Service, ownersSvc *owners.Service) *Directory {
	return &Directory{pets: petsSvc, owners: ownersSvc}
}

func (d *Directory) PetSummary(ctx context.Context, id string) (appointments.PetSummary, bool, error) {
	p, err := d.pets.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pets.ErrNotFound) {
			return appointments.PetSummary{}, false, nil
		}
		return appointments.PetSummary{}, false, err
	}
	return appointments.PetSummary{ID: p.ID, Name: p.Name, Type: string(p.Type)}, true, nil
}

func (d *Directory) OwnerSummary(ctx context.Context, id string) (appointments.OwnerSummary, bool, error) {
	o, err := d.owners.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, owners.ErrNotFound) {
			return appointments.OwnerSummary{}, false, nil
		}
		return appointments.OwnerSummary{}, false, err
	}
	return appointments.OwnerSummary{ID: o.ID, Name: o.Name, Phone: o.Phone}, true, nil
}
