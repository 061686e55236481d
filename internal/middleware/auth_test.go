package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/ahmetcoskunkizilkaya/cf-incubator/internal/database"
	"github.com/ahmetcoskunkizilkaya/cf-incubator/internal/models"
	"github.com/ahmetcoskunkizilkaya/cf-incubator/internal/owner"
	"github.com/ahmetcoskunkizilkaya/cf-incubator/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
)

type authFixture struct {
	app       *fiber.App
	tokens    *services.TokenService
	rep       *models.Representative
	setActive func(bool)
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()

	db, err := database.Open(sqlite.Open(filepath.Join(t.TempDir(), "auth.db")))
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	t.Cleanup(func() { _ = database.Close(db) })

	hash, err := bcrypt.GenerateFromPassword([]byte("pw1"), bcrypt.MinCost)
	require.NoError(t, err)
	rep := &models.Representative{FullName: "Ana", Country: "CO", Email: "a@x.com", HashedPassword: string(hash), IsActive: true}
	require.NoError(t, db.Create(rep).Error)

	tokens, err := services.NewTokenService(services.TokenConfig{Secret: []byte("mw-secret"), TTL: time.Minute})
	require.NoError(t, err)
	auth := services.NewAuthService(db, services.NewPasswordHasher(bcrypt.MinCost), tokens, nil)

	app := fiber.New()
	app.Get("/me", Authenticated(tokens, auth), RequireActive(), func(c *fiber.Ctx) error {
		id, err := owner.GetRepresentativeID(c)
		if err != nil {
			return err
		}
		return c.JSON(fiber.Map{"id": id})
	})

	f := &authFixture{app: app, tokens: tokens, rep: rep}
	f.setActive = func(active bool) {
		svc := services.NewRepresentativeService(db, nil, "US")
		require.NoError(t, svc.SetActive(context.Background(), rep.ID, active))
	}
	return f
}

func (f *authFixture) get(t *testing.T, header string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	resp, err := f.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestAuthenticatedAcceptsValidToken(t *testing.T) {
	f := newAuthFixture(t)
	token, _, err := f.tokens.IssueDefault("a@x.com")
	require.NoError(t, err)

	resp := f.get(t, "Bearer "+token)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestAuthenticatedRejects(t *testing.T) {
	f := newAuthFixture(t)

	expired, _, err := f.tokens.Issue("a@x.com", -time.Minute)
	require.NoError(t, err)
	ghost, _, err := f.tokens.IssueDefault("ghost@x.com")
	require.NoError(t, err)
	other, err := services.NewTokenService(services.TokenConfig{Secret: []byte("other-secret")})
	require.NoError(t, err)
	forged, _, err := other.IssueDefault("a@x.com")
	require.NoError(t, err)

	for name, header := range map[string]string{
		"missing header":  "",
		"wrong scheme":    "Basic Zm9vOmJhcg==",
		"garbage":         "Bearer not.a.jwt",
		"expired":         "Bearer " + expired,
		"unknown subject": "Bearer " + ghost,
		"foreign secret":  "Bearer " + forged,
	} {
		t.Run(name, func(t *testing.T) {
			resp := f.get(t, header)
			assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
			assert.Equal(t, "Bearer", resp.Header.Get(fiber.HeaderWWWAuthenticate))
		})
	}
}

func TestRequireActiveRejectsDeactivatedAccount(t *testing.T) {
	f := newAuthFixture(t)
	token, _, err := f.tokens.IssueDefault("a@x.com")
	require.NoError(t, err)

	f.setActive(false)
	resp := f.get(t, "Bearer "+token)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Empty(t, resp.Header.Get(fiber.HeaderWWWAuthenticate))

	f.setActive(true)
	resp = f.get(t, "Bearer "+token)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRequireActiveWithoutRepresentative(t *testing.T) {
	app := fiber.New()
	app.Get("/", RequireActive(), func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
