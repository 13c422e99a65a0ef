package auth

import (
	"context"
)

type AuthService interface {
	// Login authenticates with email/password and issues an access token.
	Login(ctx context.Context, req LoginRequest) (TokenResponse, error)

	// GoogleLoginURL returns the OAuth2 consent URL for the given state.
	GoogleLoginURL(state string) string

	// GoogleCallback exchanges the OAuth2 code, finds or creates the user and
	// issues an access token.
	GoogleCallback(ctx context.Context, code string) (TokenResponse, error)

	// Me resolves the authenticated user from the request claims.
	Me(ctx context.Context) (UserResponse, error)

	// SeedAdmin ensures the configured admin account exists at startup.
	SeedAdmin(ctx context.Context) error
}
