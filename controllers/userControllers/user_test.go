package userController_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"simdiklat_backend/config"
	"simdiklat_backend/database"
	"simdiklat_backend/middleware"
	"simdiklat_backend/models"
	userRoutes "simdiklat_backend/routers/userRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func setupApp(t *testing.T) *fiber.App {
	t.Helper()

	config.AppConfig = &config.Config{
		Port:               "0",
		SaltRound:          bcrypt.MinCost,
		AccessTokenSecret:  "test-access-secret",
		RefreshTokenSecret: "test-refresh-secret",
		BaseURL:            "http://localhost:3001",
		UploadDir:          t.TempDir(),
	}

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Seminar{},
		&models.History{},
		&models.Announcement{},
		&models.LoginTracking{},
	))
	database.Database = database.DbInstance{Db: db}

	app := fiber.New()
	userRoutes.SetupUserRoutes(app)
	return app
}

func createUser(t *testing.T, role string) models.User {
	t.Helper()
	user := models.User{
		Email:    fmt.Sprintf("%s-%d@test.go.id", role, time.Now().UnixNano()),
		Password: "x",
		Role:     role,
		Nama:     "Test " + role,
	}
	require.NoError(t, database.Database.Db.Create(&user).Error)
	return user
}

func bearer(t *testing.T, user models.User) string {
	t.Helper()
	token, err := middleware.GenerateAccessToken(&user)
	require.NoError(t, err)
	return "Bearer " + token
}

func jsonRequest(method, target string, body interface{}, auth string) *http.Request {
	payload, _ := json.Marshal(body)
	req := httptest.NewRequest(method, target, strings.NewReader(string(payload)))
	req.Header.Set("Content-Type", "application/json")
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	return req
}

func TestUsersRequireToken(t *testing.T) {
	app := setupApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/users/", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAdminCreatesUser(t *testing.T) {
	app := setupApp(t)
	admin := createUser(t, models.RoleAdmin)
	manager := createUser(t, models.RoleManager)

	body := fiber.Map{
		"email":    "pegawai@test.go.id",
		"password": "rahasia123",
		"nik":      "198703142010121001",
		"nama":     "Pegawai Baru",
		"role":     "manager",
	}

	// Only admins may create accounts
	resp, err := app.Test(jsonRequest(http.MethodPost, "/api/v1/users", body, bearer(t, manager)))
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp, err = app.Test(jsonRequest(http.MethodPost, "/api/v1/users", body, bearer(t, admin)))
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	// Duplicate email conflicts
	resp, err = app.Test(jsonRequest(http.MethodPost, "/api/v1/users", body, bearer(t, admin)))
	require.NoError(t, err)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestListUsersOmitsSecrets(t *testing.T) {
	app := setupApp(t)
	admin := createUser(t, models.RoleAdmin)

	resp, err := app.Test(jsonRequest(http.MethodGet, "/api/v1/users/", nil, bearer(t, admin)))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	assert.NotContains(t, string(env.Data), "password")
	assert.NotContains(t, string(env.Data), "refresh_token")
}

func TestRoleChangeRestrictedToAdmin(t *testing.T) {
	app := setupApp(t)
	admin := createUser(t, models.RoleAdmin)
	manager := createUser(t, models.RoleManager)
	peserta := createUser(t, models.RolePeserta)

	target := fmt.Sprintf("/api/v1/users/%d", peserta.ID)

	resp, err := app.Test(jsonRequest(http.MethodPut, target,
		fiber.Map{"role": "manager"}, bearer(t, manager)))
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp, err = app.Test(jsonRequest(http.MethodPut, target,
		fiber.Map{"role": "manager"}, bearer(t, admin)))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var after models.User
	database.Database.Db.First(&after, peserta.ID)
	assert.Equal(t, models.RoleManager, after.Role)
}

func TestUpdateUserRehashesPassword(t *testing.T) {
	app := setupApp(t)
	admin := createUser(t, models.RoleAdmin)
	peserta := createUser(t, models.RolePeserta)

	resp, err := app.Test(jsonRequest(http.MethodPut, fmt.Sprintf("/api/v1/users/%d", peserta.ID),
		fiber.Map{"password": "barubanget123", "kota": "Bandung"}, bearer(t, admin)))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var after models.User
	database.Database.Db.First(&after, peserta.ID)
	assert.Equal(t, "Bandung", after.Kota)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(after.Password), []byte("barubanget123")))
}

func TestDeleteUser(t *testing.T) {
	app := setupApp(t)
	admin := createUser(t, models.RoleAdmin)
	manager := createUser(t, models.RoleManager)
	peserta := createUser(t, models.RolePeserta)

	target := fmt.Sprintf("/api/v1/users/%d", peserta.ID)

	resp, err := app.Test(jsonRequest(http.MethodDelete, target, nil, bearer(t, manager)))
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp, err = app.Test(jsonRequest(http.MethodDelete, target, nil, bearer(t, admin)))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	err = database.Database.Db.First(&models.User{}, peserta.ID).Error
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	resp, err = app.Test(jsonRequest(http.MethodGet, target, nil, bearer(t, admin)))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
