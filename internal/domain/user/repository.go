package user

import (
	"context"
)

type UserRepository interface {
	Create(ctx context.Context, u User) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByID(ctx context.Context, id string) (User, error)
	// LinkGoogleID attaches a Google account to an existing user.
	LinkGoogleID(ctx context.Context, id string, googleID string) error
}
