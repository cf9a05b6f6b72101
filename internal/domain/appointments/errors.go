package appointments

import "errors"

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("appointment not found")

	// ErrConflict: el turno (pet, date, time) ya está tomado por otra cita scheduled.
	// Sale igual si lo detecta el guard o la constraint del store.
	ErrConflict = errors.New("double booking detected")

	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrStore envuelve fallas del store que no tienen otra traducción.
	ErrStore = errors.New("appointment store failure")
)
