package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/sutra-hrms/hrms-backend-go/internal/config"
	"github.com/sutra-hrms/hrms-backend-go/internal/domain/auth"
	"github.com/sutra-hrms/hrms-backend-go/internal/domain/user"
	"github.com/sutra-hrms/hrms-backend-go/internal/pkg/jwt"
	"github.com/sutra-hrms/hrms-backend-go/internal/pkg/oauth"
)

const storeTimeout = 5 * time.Second

type AuthServiceImpl struct {
	userRepo      user.UserRepository
	jwtService    jwt.Service
	googleService oauth.GoogleService
	admin         config.AdminConfig
}

func NewAuthService(
	userRepo user.UserRepository,
	jwtService jwt.Service,
	googleService oauth.GoogleService,
	admin config.AdminConfig,
) auth.AuthService {
	return &AuthServiceImpl{
		userRepo:      userRepo,
		jwtService:    jwtService,
		googleService: googleService,
		admin:         admin,
	}
}

func (s *AuthServiceImpl) tokenFor(u user.User) (auth.TokenResponse, error) {
	token, expiresAt, err := s.jwtService.GenerateAccessToken(u.ID, u.Email, u.IsAdmin)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	return auth.TokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresAt:   expiresAt,
		User: auth.UserResponse{
			ID:       u.ID,
			Email:    u.Email,
			FullName: u.FullName,
			IsAdmin:  u.IsAdmin,
		},
	}, nil
}

// Login implements auth.AuthService. Unknown email and wrong password both
// map to ErrInvalidCredentials so the response does not leak which accounts
// exist.
func (s *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	u, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, err
	}

	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)) != nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	return s.tokenFor(u)
}

// GoogleLoginURL implements auth.AuthService.
func (s *AuthServiceImpl) GoogleLoginURL(state string) string {
	return s.googleService.RedirectURL(state)
}

// GoogleCallback implements auth.AuthService. First-time Google sign-ins get
// an account created on the fly; returning users with a password account get
// their Google id linked.
func (s *AuthServiceImpl) GoogleCallback(ctx context.Context, code string) (auth.TokenResponse, error) {
	token, err := s.googleService.VerifyToken(ctx, code)
	if err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidGoogleToken
	}

	info, err := s.googleService.VerifyUser(ctx, token)
	if err != nil || !info.VerifiedEmail {
		return auth.TokenResponse{}, auth.ErrInvalidGoogleToken
	}

	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	u, err := s.userRepo.GetByEmail(ctx, info.Email)
	switch {
	case errors.Is(err, user.ErrUserNotFound):
		u, err = s.userRepo.Create(ctx, user.User{
			Email:    info.Email,
			FullName: info.Name,
			GoogleID: &info.GoogleID,
		})
		if err != nil {
			return auth.TokenResponse{}, err
		}
		slog.Info("user created from google sign-in", "email", info.Email)
	case err != nil:
		return auth.TokenResponse{}, err
	case u.GoogleID == nil:
		if err := s.userRepo.LinkGoogleID(ctx, u.ID, info.GoogleID); err != nil {
			return auth.TokenResponse{}, err
		}
	}

	return s.tokenFor(u)
}

// Me implements auth.AuthService. The verification middleware has already
// validated the token; this resolves the claims back to a live user record.
func (s *AuthServiceImpl) Me(ctx context.Context) (auth.UserResponse, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return auth.UserResponse{}, auth.ErrInvalidToken
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return auth.UserResponse{}, auth.ErrInvalidToken
	}

	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	u, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.UserResponse{}, auth.ErrInvalidToken
		}
		return auth.UserResponse{}, err
	}

	return auth.UserResponse{
		ID:       u.ID,
		Email:    u.Email,
		FullName: u.FullName,
		IsAdmin:  u.IsAdmin,
	}, nil
}

// SeedAdmin implements auth.AuthService. Idempotent: an existing admin
// account is left untouched, password changes included.
func (s *AuthServiceImpl) SeedAdmin(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	_, err := s.userRepo.GetByEmail(ctx, s.admin.Email)
	if err == nil {
		return nil
	}
	if !errors.Is(err, user.ErrUserNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(s.admin.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	_, err = s.userRepo.Create(ctx, user.User{
		Email:        s.admin.Email,
		PasswordHash: string(hash),
		FullName:     s.admin.FullName,
		IsAdmin:      true,
	})
	if err != nil {
		return fmt.Errorf("failed to seed admin account: %w", err)
	}

	slog.Info("admin account seeded", "email", s.admin.Email)
	return nil
}
