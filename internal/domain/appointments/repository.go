package appointments

import (
	"context"
	"time"
)

// Repository es el colaborador de persistencia.
//
// Contrato:
//   - Create/UpdateFields devuelven ErrConflict si violan la unicidad de (pet_id, date, time)
//     sobre las filas scheduled. Esa constraint es la fuente de verdad bajo concurrencia.
//   - GetByID/UpdateFields/Delete devuelven ErrNotFound si el id no existe.
type Repository interface {
	ExistsActiveSlot(ctx context.Context, q SlotQuery) (bool, error)
	Create(ctx context.Context, a Appointment) error
	UpdateFields(ctx context.Context, id string, p Patch, updatedAt time.Time) (Appointment, error)
	GetByID(ctx context.Context, id string) (Appointment, error)
	List(ctx context.Context, filter ListFilter) ([]Appointment, error)
	Delete(ctx context.Context, id string) error
}
