package authController_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"elearn/config"
	"elearn/database"
	"elearn/models"
	"elearn/routers/authRoutes"
)

var dbCounter int

func setup(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	config.LoadConfig()

	dbCounter++
	dsn := fmt.Sprintf("file:authtest%d?mode=memory&cache=shared", dbCounter)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, database.MigrateModels(db))

	database.Database = database.DbInstance{Db: db}

	app := fiber.New()
	authRoutes.SetupAuthRoutes(app)
	return app, db
}

type apiResponse struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func post(t *testing.T, app *fiber.App, path string, body interface{}) (*http.Response, apiResponse) {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, json.NewEncoder(&buf).Encode(body))
	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var out apiResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return resp, out
}

func signupBody(email, role string) fiber.Map {
	return fiber.Map{
		"name":     "Test User",
		"email":    email,
		"password": "secret-password",
		"role":     role,
	}
}

func TestSignup(t *testing.T) {
	app, db := setup(t)

	resp, out := post(t, app, "/signup", signupBody("student@example.com", "STUDENT"))
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.True(t, out.Status)

	var user models.User
	require.NoError(t, db.Where("email = ?", "student@example.com").First(&user).Error)
	assert.Equal(t, "STUDENT", user.Role)
	// Password is stored hashed, never verbatim
	assert.NotEqual(t, "secret-password", user.Password)
	assert.NotEmpty(t, user.Password)
}

func TestSignupCannotClaimAdminRole(t *testing.T) {
	app, db := setup(t)

	resp, _ := post(t, app, "/signup", signupBody("sneaky@example.com", "ADMIN"))
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	// Omitting the role falls back to STUDENT
	resp, _ = post(t, app, "/signup", signupBody("student2@example.com", ""))
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var user models.User
	require.NoError(t, db.Where("email = ?", "student2@example.com").First(&user).Error)
	assert.Equal(t, "STUDENT", user.Role)
}

func TestSignupRejectsDuplicateEmail(t *testing.T) {
	app, _ := setup(t)

	resp, _ := post(t, app, "/signup", signupBody("student@example.com", "STUDENT"))
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, out := post(t, app, "/signup", signupBody("student@example.com", "STUDENT"))
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "Email is already registered!", out.Message)
}

func TestLogin(t *testing.T) {
	app, _ := setup(t)

	resp, _ := post(t, app, "/signup", signupBody("student@example.com", "STUDENT"))
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, out := post(t, app, "/signin", fiber.Map{
		"email":    "student@example.com",
		"password": "secret-password",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var data struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(out.Data, &data))
	assert.NotEmpty(t, data.Token)
}

func TestLoginBlocksAfterRepeatedFailures(t *testing.T) {
	app, db := setup(t)

	resp, _ := post(t, app, "/signup", signupBody("student@example.com", "STUDENT"))
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	for i := 0; i < 3; i++ {
		resp, out := post(t, app, "/signin", fiber.Map{
			"email":    "student@example.com",
			"password": "wrong-password",
		})
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		assert.Equal(t, "Wrong Password", out.Message)
	}

	var user models.User
	require.NoError(t, db.Where("email = ?", "student@example.com").First(&user).Error)
	assert.True(t, user.IsBlocked)

	// Even the correct password is rejected while the block lasts
	resp, out := post(t, app, "/signin", fiber.Map{
		"email":    "student@example.com",
		"password": "secret-password",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Your account is temporarily blocked. Try again later.", out.Message)
}
