package appointments

import (
	"context"
	"fmt"
	"strings"
)

// SlotQuery identifica un turno. ExcludeID es la cita que se está editando (no choca consigo misma).
type SlotQuery struct {
	PetID     string
	Date      string
	Time      string
	ExcludeID string
}

// SlotChecker es el subconjunto del store que necesita el guard.
type SlotChecker interface {
	ExistsActiveSlot(ctx context.Context, q SlotQuery) (bool, error)
}

// Guard es el pre-check de doble reserva. Es best-effort: dos requests concurrentes
// pueden pasar ambos y el perdedor lo rechaza la constraint del store.
type Guard struct {
	store SlotChecker
}

func NewGuard(store SlotChecker) *Guard {
	return &Guard{store: store}
}

// CheckConflict devuelve true si otra cita (distinta de ExcludeID) ocupa el turno en estado scheduled.
func (g *Guard) CheckConflict(ctx context.Context, q SlotQuery) (bool, error) {
	q.PetID = strings.TrimSpace(q.PetID)
	q.Date = strings.TrimSpace(q.Date)
	q.Time = strings.TrimSpace(q.Time)
	q.ExcludeID = strings.TrimSpace(q.ExcludeID)

	if q.PetID == "" || q.Date == "" || q.Time == "" {
		return false, ErrInvalidInput
	}

	taken, err := g.store.ExistsActiveSlot(ctx, q)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrStore, err)
	}
	return taken, nil
}
