package admin

import "context"

type Repository interface {
	Create(ctx context.Context, admin *Admin) error
	GetByID(ctx context.Context, id uint) (*Admin, error)
	// GetByUsername returns nil when no admin has the given username.
	GetByUsername(ctx context.Context, username string) (*Admin, error)
	ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error)
	UpdateLastAccess(ctx context.Context, admin *Admin) error
}
