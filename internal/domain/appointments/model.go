package appointments

import "time"

// Status es el estado de una cita. scheduled es el inicial; completed y cancelled son terminales.
type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// Formatos de fecha/hora tal como se persisten (strings, sin zona horaria).
const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// PetSummary y OwnerSummary son las referencias resueltas que acompañan a una cita en las respuestas.
type PetSummary struct {
	ID   string
	Name string
	Type string
}

type OwnerSummary struct {
	ID    string
	Name  string
	Phone string
}

type Appointment struct {
	ID      string
	PetID   string
	OwnerID string

	Date   string // YYYY-MM-DD
	Time   string // HH:MM
	Reason string
	Status Status

	CreatedAt time.Time
	UpdatedAt time.Time

	// Opcionales: solo vienen cargados si alguien los resolvió (Directory).
	Pet   *PetSummary
	Owner *OwnerSummary
}

// Slot devuelve la terna (pet, date, time) que identifica un turno.
func (a Appointment) Slot() SlotQuery {
	return SlotQuery{PetID: a.PetID, Date: a.Date, Time: a.Time}
}

// FieldChange describe un campo modificado. From/To pueden venir vacíos (nil).
type FieldChange struct {
	Field string `json:"field"`
	From  any    `json:"from,omitempty"`
	To    any    `json:"to,omitempty"`
}

// Source identifica el camino de escritura que originó un ChangeEvent.
type Source string

const (
	SourceFieldUpdate Source = "field_update"
	SourceCancel      Source = "cancel"
	SourceComplete    Source = "complete"
	SourceTransition  Source = "status_transition"
)

// ChangeEvent es efímero: se publica una vez por update lógico y lo consume el notifier.
type ChangeEvent struct {
	Appointment Appointment
	Changes     []FieldChange
	Source      Source
}

// Patch es un update parcial: nil = no tocar.
type Patch struct {
	PetID   *string
	OwnerID *string
	Date    *string
	Time    *string
	Reason  *string
	Status  *Status
}

// IsEmpty indica si el patch no trae ningún campo.
func (p Patch) IsEmpty() bool {
	return p.PetID == nil && p.OwnerID == nil && p.Date == nil &&
		p.Time == nil && p.Reason == nil && p.Status == nil
}

type ListFilter struct {
	OwnerID string
	PetID   string
	Status  Status
	Date    string

	// Rango inclusivo sobre date (YYYY-MM-DD); vacío = sin límite.
	From string
	To   string

	// Newest invierte el orden (date, time) a descendente.
	Newest bool
}
