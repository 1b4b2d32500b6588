package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	httptransport "github.com/aetheris/airline-platform/internal/api/http"
	"github.com/aetheris/airline-platform/internal/api/http/handlers"
	"github.com/aetheris/airline-platform/internal/auth"
	"github.com/aetheris/airline-platform/internal/config"
	"github.com/aetheris/airline-platform/internal/domain"
	"github.com/aetheris/airline-platform/internal/observability"
	"github.com/aetheris/airline-platform/internal/service"
)

// personRepoStub is an in-memory PersonRepository.
type personRepoStub struct {
	nextID  int64
	persons map[int64]*domain.Person
}

func newPersonRepoStub() *personRepoStub {
	return &personRepoStub{nextID: 1, persons: map[int64]*domain.Person{}}
}

func (r *personRepoStub) Create(_ context.Context, person *domain.Person) error {
	person.ID = r.nextID
	r.nextID++
	copied := *person
	r.persons[person.ID] = &copied
	return nil
}

func (r *personRepoStub) Update(_ context.Context, person *domain.Person) error {
	stored, ok := r.persons[person.ID]
	if !ok {
		return pgx.ErrNoRows
	}
	person.PasswordHash = stored.PasswordHash
	copied := *person
	r.persons[person.ID] = &copied
	return nil
}

func (r *personRepoStub) UpdatePassword(_ context.Context, id int64, passwordHash string) error {
	stored, ok := r.persons[id]
	if !ok {
		return pgx.ErrNoRows
	}
	stored.PasswordHash = passwordHash
	return nil
}

func (r *personRepoStub) Delete(_ context.Context, id int64) error {
	if _, ok := r.persons[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.persons, id)
	return nil
}

func (r *personRepoStub) GetByID(_ context.Context, id int64) (*domain.Person, error) {
	person, ok := r.persons[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *person
	return &copied, nil
}

func (r *personRepoStub) GetByEmail(_ context.Context, email string) (*domain.Person, error) {
	for _, person := range r.persons {
		if person.Email == email {
			copied := *person
			return &copied, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *personRepoStub) List(_ context.Context) ([]domain.Person, error) {
	out := make([]domain.Person, 0, len(r.persons))
	for _, person := range r.persons {
		out = append(out, *person)
	}
	return out, nil
}

func (r *personRepoStub) Count(_ context.Context) (int64, error) {
	return int64(len(r.persons)), nil
}

// userRepoStub is an in-memory UserRepository.
type userRepoStub struct {
	users map[int64]*domain.User
}

func newUserRepoStub() *userRepoStub {
	return &userRepoStub{users: map[int64]*domain.User{}}
}

func (r *userRepoStub) Create(_ context.Context, user *domain.User) error {
	copied := *user
	r.users[user.PersonID] = &copied
	return nil
}

func (r *userRepoStub) GetByPersonID(_ context.Context, personID int64) (*domain.User, error) {
	user, ok := r.users[personID]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *user
	return &copied, nil
}

func (r *userRepoStub) List(_ context.Context) ([]domain.User, error) {
	out := make([]domain.User, 0, len(r.users))
	for _, user := range r.users {
		out = append(out, *user)
	}
	return out, nil
}

const testPassword = "opensesame"

func newPersonsApp(t *testing.T) (*fiber.App, *personRepoStub) {
	t.Helper()

	repo := newPersonRepoStub()
	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	require.NoError(t, err)
	repo.persons[1] = &domain.Person{
		ID:           1,
		NationalID:   "0012345678",
		FirstName:    "Ada",
		LastName:     "Lovelace",
		Phone:        "+100000000",
		Email:        "ada@example.com",
		PasswordHash: string(hash),
		Role:         domain.RoleCustomer,
	}
	repo.nextID = 2

	cfg := config.Config{Auth: config.AuthConfig{
		JWTSecret:       "handler-secret",
		TokenTTLSeconds: 3600,
		BcryptCost:      bcrypt.MinCost,
		CookieSameSite:  "Lax",
	}}

	svc := service.NewPersonService(cfg, service.PersonDependencies{
		PersonRepo: repo,
		UserRepo:   newUserRepoStub(),
	})
	mw := auth.NewMiddleware(svc.TokenCodec(), auth.PersonsRules(), "svc-key", zap.NewNop())

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, zap.NewNop(), observability.NewMetrics(), 0)
	httptransport.RegisterPersonsRoutes(app, httptransport.PersonsRoutes{
		Health:   handlers.NewHealthHandler(nil, nil),
		Persons:  handlers.NewPersonsHandler(svc, cfg.Auth),
		Accounts: handlers.NewAccountsHandler(svc),
		Auth:     mw,
	})
	return app, repo
}

func loginRequest(t *testing.T, email, password string) *http.Request {
	t.Helper()
	payload, err := json.Marshal(map[string]string{"email": email, "password": password})
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/api/persons/login", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func sessionCookie(t *testing.T, resp *http.Response) *http.Cookie {
	t.Helper()
	for _, cookie := range resp.Cookies() {
		if cookie.Name == auth.CookieName {
			return cookie
		}
	}
	t.Fatalf("session cookie not set")
	return nil
}

func TestLoginSetsSessionCookie(t *testing.T) {
	t.Parallel()

	app, repo := newPersonsApp(t)

	resp, err := app.Test(loginRequest(t, "ada@example.com", testPassword))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	cookie := sessionCookie(t, resp)
	assert.Equal(t, "/", cookie.Path)
	assert.Equal(t, 3600, cookie.MaxAge)
	assert.True(t, cookie.HttpOnly)
	assert.NotEmpty(t, cookie.Value)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var body struct {
		Data struct {
			ID    int64  `json:"id"`
			Email string `json:"email"`
			Role  string `json:"role"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(raw, &body))
	assert.Equal(t, int64(1), body.Data.ID)
	assert.Equal(t, "ada@example.com", body.Data.Email)
	assert.Equal(t, string(domain.RoleCustomer), body.Data.Role)

	// The stored hash never leaks into the response.
	assert.NotContains(t, string(raw), repo.persons[1].PasswordHash)
	assert.NotContains(t, string(raw), "password")
}

func TestLoginRejectsBadPassword(t *testing.T) {
	t.Parallel()

	app, _ := newPersonsApp(t)

	resp, err := app.Test(loginRequest(t, "ada@example.com", "wrong"))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Empty(t, resp.Cookies())
}

func TestMeResolvesTokenSubject(t *testing.T) {
	t.Parallel()

	app, _ := newPersonsApp(t)

	loginResp, err := app.Test(loginRequest(t, "ada@example.com", testPassword))
	require.NoError(t, err)
	cookie := sessionCookie(t, loginResp)

	for _, path := range []string{
		"/api/persons/me",
		auth.PersonsRoutePrefix + "/api/persons/me",
	} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		req.AddCookie(cookie)

		resp, err := app.Test(req)
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode, path)

		raw, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		var body struct {
			Data struct {
				ID    int64  `json:"id"`
				Email string `json:"email"`
			} `json:"data"`
		}
		require.NoError(t, json.Unmarshal(raw, &body))
		assert.Equal(t, int64(1), body.Data.ID, path)
		assert.Equal(t, "ada@example.com", body.Data.Email, path)
	}
}

func TestMeRequiresCredential(t *testing.T) {
	t.Parallel()

	app, _ := newPersonsApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/persons/me", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestCollectionReadIsOpen(t *testing.T) {
	t.Parallel()

	app, _ := newPersonsApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/persons", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestWriteRequiresCredential(t *testing.T) {
	t.Parallel()

	app, _ := newPersonsApp(t)

	req := httptest.NewRequest(http.MethodDelete, "/api/persons/delete/1", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	// The same call succeeds for a trusted peer.
	req = httptest.NewRequest(http.MethodDelete, "/api/persons/delete/1", nil)
	req.Header.Set(auth.ServiceKeyHeader, "svc-key")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
}

func TestRegisterUserIsOpenAndDeduplicates(t *testing.T) {
	t.Parallel()

	app, _ := newPersonsApp(t)

	payload := map[string]any{
		"national_id": "0098765432",
		"first_name":  "Grace",
		"last_name":   "Hopper",
		"phone":       "+100000001",
		"email":       "grace@example.com",
		"password":    "secret123",
		"address":     "1 Navy Way",
	}
	raw, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/users/save", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	// Same email again is refused.
	req = httptest.NewRequest(http.MethodPost, "/api/users/save", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.NotEqual(t, http.StatusCreated, resp.StatusCode)
}
