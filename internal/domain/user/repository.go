package user

import "context"

// UserRepository defines data access for application accounts.
type UserRepository interface {
	Create(ctx context.Context, u User) (User, error)

	GetByID(ctx context.Context, id string) (User, error)

	GetByEmail(ctx context.Context, email string) (User, error)

	UpdatePassword(ctx context.Context, id string, passwordHash string) error
}
