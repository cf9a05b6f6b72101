package notifications

import "context"

type Repository interface {
	Create(ctx context.Context, n Notification) error
	GetByID(ctx context.Context, id string) (Notification, error)
	List(ctx context.Context, filter ListFilter) ([]Notification, error)
	MarkRead(ctx context.Context, id string) error
}

type ListFilter struct {
	OwnerID    string
	UnreadOnly bool
	Limit      int
}
