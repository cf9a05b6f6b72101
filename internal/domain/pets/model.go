package pets

import "time"

// Species son las especies más comunes en la clínica. El campo es libre: estas son sugerencias para la UI.
type Species string

const (
	SpeciesDog    Species = "dog"
	SpeciesCat    Species = "cat"
	SpeciesBird   Species = "bird"
	SpeciesRabbit Species = "rabbit"
	SpeciesOther  Species = "other"
)

// Pet representa una mascota paciente de la clínica.
type Pet struct {
	ID      string
	OwnerID string

	Name  string
	Type  Species
	Breed string

	BirthDate *time.Time

	Notes string

	CreatedAt time.Time
	UpdatedAt time.Time
}
