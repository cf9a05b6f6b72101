package appointments

import (
	"fmt"
	"strings"
)

func ParseStatus(s string) (Status, error) {
	st := Status(strings.ToLower(strings.TrimSpace(s)))
	if !st.Valid() {
		return "", fmt.Errorf("%w: unknown status %q", ErrInvalidInput, s)
	}
	return st, nil
}

func (s Status) Valid() bool {
	switch s {
	case StatusScheduled, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}

func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// CheckTransition aplica la política de estados:
//   - cancelled -> completed: rechazado
//   - completed -> cancelled: rechazado
//   - cualquiera -> scheduled: permitido (el caller corre el guard)
//   - mismo estado: permitido (no-op)
func CheckTransition(from, to Status) error {
	if !to.Valid() {
		return fmt.Errorf("%w: unknown status %q", ErrInvalidInput, to)
	}
	if from == to {
		return nil
	}

	switch {
	case from == StatusCancelled && to == StatusCompleted:
		return fmt.Errorf("%w: cannot complete a cancelled appointment", ErrInvalidTransition)
	case from == StatusCompleted && to == StatusCancelled:
		return fmt.Errorf("%w: cannot cancel a completed appointment", ErrInvalidTransition)
	}
	return nil
}
