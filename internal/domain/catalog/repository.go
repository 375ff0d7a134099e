package catalog

import "context"

type Repository interface {
	Create(ctx context.Context, entry *Entry) error
	Update(ctx context.Context, entry *Entry) error
	Delete(ctx context.Context, kind Kind, id uint) error
	GetByID(ctx context.Context, kind Kind, id uint) (*Entry, error)
	// GetByKey returns nil when the key is unknown.
	GetByKey(ctx context.Context, kind Kind, key string) (*Entry, error)
	List(ctx context.Context, kind Kind, activeOnly bool) ([]*Entry, error)
	// Upsert inserts the entry or refreshes the name of an existing key.
	Upsert(ctx context.Context, entry *Entry) error
}
