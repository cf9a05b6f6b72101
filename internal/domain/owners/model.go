package owners

import "time"

// Owner es el tutor responsable de una o más mascotas.
type Owner struct {
	ID    string
	Name  string
	Phone string
	Email string // opcional, único si viene

	CreatedAt time.Time
	UpdatedAt time.Time
}
