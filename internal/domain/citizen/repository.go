package citizen

import "context"

type Repository interface {
	Create(ctx context.Context, citizen *Citizen) error
	Update(ctx context.Context, citizen *Citizen) error
	Delete(ctx context.Context, id uint) error
	GetByID(ctx context.Context, id uint) (*Citizen, error)
	// GetByNationalID returns nil when no citizen has the given national ID.
	GetByNationalID(ctx context.Context, nationalID string) (*Citizen, error)
	GetByIDs(ctx context.Context, ids []uint) (map[uint]*Citizen, error)
	List(ctx context.Context, filter ListFilter) ([]*Citizen, int64, error)
}

type ListFilter struct {
	Search   string
	Page     int
	PageSize int
}
