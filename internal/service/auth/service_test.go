package auth

import (
	"context"
	"fmt"
	"testing"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/oauth2"

	"github.com/sutra-hrms/hrms-backend-go/internal/config"
	"github.com/sutra-hrms/hrms-backend-go/internal/domain/auth"
	"github.com/sutra-hrms/hrms-backend-go/internal/domain/user"
	"github.com/sutra-hrms/hrms-backend-go/internal/pkg/jwt"
	"github.com/sutra-hrms/hrms-backend-go/internal/pkg/oauth"
)

type fakeUserRepo struct {
	seq     int
	byEmail map[string]user.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: make(map[string]user.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, u user.User) (user.User, error) {
	if _, ok := r.byEmail[u.Email]; ok {
		return user.User{}, user.ErrEmailExists
	}
	r.seq++
	u.ID = fmt.Sprintf("user-%d", r.seq)
	r.byEmail[u.Email] = u
	return u, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (user.User, error) {
	u, ok := r.byEmail[email]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (user.User, error) {
	for _, u := range r.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

func (r *fakeUserRepo) LinkGoogleID(_ context.Context, id string, googleID string) error {
	for email, u := range r.byEmail {
		if u.ID == id {
			u.GoogleID = &googleID
			r.byEmail[email] = u
			return nil
		}
	}
	return user.ErrUserNotFound
}

type fakeGoogleService struct {
	info        oauth.GoogleInformation
	exchangeErr error
	verifyErr   error
}

func (g *fakeGoogleService) GenerateState(string) string { return "state" }

func (g *fakeGoogleService) RedirectURL(state string) string {
	return "https://accounts.google.com/o/oauth2/auth?state=" + state
}

func (g *fakeGoogleService) VerifyToken(context.Context, string) (*oauth2.Token, error) {
	if g.exchangeErr != nil {
		return nil, g.exchangeErr
	}
	return &oauth2.Token{AccessToken: "google-access"}, nil
}

func (g *fakeGoogleService) VerifyUser(context.Context, *oauth2.Token) (oauth.GoogleInformation, error) {
	if g.verifyErr != nil {
		return oauth.GoogleInformation{}, g.verifyErr
	}
	return g.info, nil
}

var testAdmin = config.AdminConfig{
	Email:    "admin@sutra.com",
	Password: "super-secret",
	FullName: "System Administrator",
}

func newTestService(t *testing.T) (auth.AuthService, *fakeUserRepo, *fakeGoogleService, jwt.Service) {
	t.Helper()
	repo := newFakeUserRepo()
	google := &fakeGoogleService{}
	jwtService := jwt.NewJWTService("test-secret-key", "1h")
	svc := NewAuthService(repo, jwtService, google, testAdmin)
	return svc, repo, google, jwtService
}

func seedUser(t *testing.T, repo *fakeUserRepo, email, password string) user.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	u, err := repo.Create(context.Background(), user.User{
		Email:        email,
		PasswordHash: string(hash),
		FullName:     "Rajesh Kumar",
	})
	require.NoError(t, err)
	return u
}

func TestAuthService_Login(t *testing.T) {
	t.Parallel()
	svc, repo, _, _ := newTestService(t)
	seedUser(t, repo, "rajesh@example.com", "password123")

	resp, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "Rajesh@Example.com",
		Password: "password123",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, "Bearer", resp.TokenType)
	assert.Positive(t, resp.ExpiresAt)
	assert.Equal(t, "rajesh@example.com", resp.User.Email)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	t.Parallel()
	svc, repo, _, _ := newTestService(t)
	seedUser(t, repo, "rajesh@example.com", "password123")

	_, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "rajesh@example.com",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	t.Parallel()
	svc, _, _, _ := newTestService(t)

	_, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "nobody@example.com",
		Password: "password123",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestAuthService_GoogleCallback_CreatesUser(t *testing.T) {
	t.Parallel()
	svc, repo, google, _ := newTestService(t)
	google.info = oauth.GoogleInformation{
		GoogleID:      "g-123",
		Email:         "priya@example.com",
		Name:          "Priya Sharma",
		VerifiedEmail: true,
	}

	resp, err := svc.GoogleCallback(context.Background(), "auth-code")
	require.NoError(t, err)
	assert.Equal(t, "priya@example.com", resp.User.Email)

	created, err := repo.GetByEmail(context.Background(), "priya@example.com")
	require.NoError(t, err)
	require.NotNil(t, created.GoogleID)
	assert.Equal(t, "g-123", *created.GoogleID)
}

func TestAuthService_GoogleCallback_LinksExistingUser(t *testing.T) {
	t.Parallel()
	svc, repo, google, _ := newTestService(t)
	existing := seedUser(t, repo, "rajesh@example.com", "password123")
	google.info = oauth.GoogleInformation{
		GoogleID:      "g-456",
		Email:         "rajesh@example.com",
		Name:          "Rajesh Kumar",
		VerifiedEmail: true,
	}

	resp, err := svc.GoogleCallback(context.Background(), "auth-code")
	require.NoError(t, err)
	assert.Equal(t, existing.ID, resp.User.ID)

	linked, err := repo.GetByEmail(context.Background(), "rajesh@example.com")
	require.NoError(t, err)
	require.NotNil(t, linked.GoogleID)
	assert.Equal(t, "g-456", *linked.GoogleID)
}

func TestAuthService_GoogleCallback_UnverifiedEmail(t *testing.T) {
	t.Parallel()
	svc, _, google, _ := newTestService(t)
	google.info = oauth.GoogleInformation{
		GoogleID: "g-789",
		Email:    "shady@example.com",
	}

	_, err := svc.GoogleCallback(context.Background(), "auth-code")
	assert.ErrorIs(t, err, auth.ErrInvalidGoogleToken)
}

func TestAuthService_Me(t *testing.T) {
	t.Parallel()
	svc, repo, _, jwtService := newTestService(t)
	u := seedUser(t, repo, "rajesh@example.com", "password123")

	tokenString, _, err := jwtService.GenerateAccessToken(u.ID, u.Email, false)
	require.NoError(t, err)
	token, err := jwtService.JWTAuth().Decode(tokenString)
	require.NoError(t, err)
	ctx := jwtauth.NewContext(context.Background(), token, nil)

	me, err := svc.Me(ctx)
	require.NoError(t, err)
	assert.Equal(t, u.ID, me.ID)
	assert.Equal(t, "rajesh@example.com", me.Email)
}

func TestAuthService_Me_NoToken(t *testing.T) {
	t.Parallel()
	svc, _, _, _ := newTestService(t)

	_, err := svc.Me(context.Background())
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestAuthService_SeedAdmin(t *testing.T) {
	t.Parallel()
	svc, repo, _, _ := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.SeedAdmin(ctx))

	admin, err := repo.GetByEmail(ctx, testAdmin.Email)
	require.NoError(t, err)
	assert.True(t, admin.IsAdmin)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(testAdmin.Password)))

	// Seeding again is a no-op.
	require.NoError(t, svc.SeedAdmin(ctx))
	assert.Len(t, repo.byEmail, 1)
}
