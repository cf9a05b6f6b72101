package owners

import "context"

type Repository interface {
	Create(ctx context.Context, o Owner) error
	GetByID(ctx context.Context, id string) (Owner, error)
	// List filtra por nombre, teléfono o email (contains, case-insensitive). q vacío = todos.
	List(ctx context.Context, q string) ([]Owner, error)
}
