package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"simdiklat_backend/config"
	"simdiklat_backend/middleware"
	"simdiklat_backend/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupConfig() {
	config.AppConfig = &config.Config{
		AccessTokenSecret:  "test-access-secret",
		RefreshTokenSecret: "test-refresh-secret",
	}
}

func protectedApp(roles ...string) *fiber.App {
	app := fiber.New()
	handlers := []fiber.Handler{middleware.JWTMiddleware}
	if len(roles) > 0 {
		handlers = append(handlers, middleware.RequireRole(roles...))
	}
	handlers = append(handlers, func(c *fiber.Ctx) error {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "ok", fiber.Map{
			"userId": c.Locals("userId"),
			"role":   c.Locals("role"),
		})
	})
	app.Get("/protected", handlers...)
	return app
}

func TestJWTMiddleware(t *testing.T) {
	setupConfig()
	app := protectedApp()

	// Missing header
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/protected", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	// Malformed header
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Token abc")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	// Garbage token
	req = httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer not.a.token")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	// Valid token passes
	user := models.User{ID: 7, Email: "a@test.go.id", Role: models.RolePeserta}
	token, err := middleware.GenerateAccessToken(&user)
	require.NoError(t, err)

	req = httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRequireRole(t *testing.T) {
	setupConfig()
	app := protectedApp(models.RoleManager, models.RoleAdmin)

	request := func(role string) int {
		user := models.User{ID: 1, Email: "x@test.go.id", Role: role}
		token, err := middleware.GenerateAccessToken(&user)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		resp, err := app.Test(req)
		require.NoError(t, err)
		return resp.StatusCode
	}

	assert.Equal(t, http.StatusForbidden, request(models.RolePeserta))
	assert.Equal(t, http.StatusOK, request(models.RoleManager))
	assert.Equal(t, http.StatusOK, request(models.RoleAdmin))
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	setupConfig()

	token, err := middleware.GenerateRefreshToken(42)
	require.NoError(t, err)

	id, err := middleware.ParseRefreshToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), id)

	// An access token is not a valid refresh token (different secret)
	user := models.User{ID: 42, Email: "y@test.go.id", Role: models.RolePeserta}
	accessToken, err := middleware.GenerateAccessToken(&user)
	require.NoError(t, err)

	_, err = middleware.ParseRefreshToken(accessToken)
	assert.Error(t, err)
}
