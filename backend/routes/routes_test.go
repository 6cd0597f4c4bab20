package routes

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"net/http/httptest"
	"testing"

	"project/backend/config"
	"project/backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, utils.Migrate(db))

	cfg := &config.Config{JWTSecret: "testsecret", ServerPort: "8080"}
	app := fiber.New()
	SetupRoutes(app, db, cfg, log.New(io.Discard, "", 0), nil)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path, token string, body interface{}) map[string]interface{} {
	t.Helper()

	data, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest("POST", path, bytes.NewBuffer(data))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var result map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	return result
}

func TestLearningFlow(t *testing.T) {
	app := newTestApp(t)

	// Register and pick up the token.
	registered := postJSON(t, app, "/api/auth/register", "", map[string]interface{}{
		"email":       "u1@example.com",
		"password":    "password",
		"name":        "U One",
		"preferences": []string{"Python"},
	})
	token := registered["token"].(string)
	require.NotEmpty(t, token)

	// Listing seeds the default catalog.
	req := httptest.NewRequest("GET", "/api/courses/", nil)
	req.Header.Set("Authorization", token)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var courses []map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&courses))
	require.Len(t, courses, 4)
	assert.Equal(t, "python-basics", courses[0]["id"])

	// Enroll, then complete half the course.
	postJSON(t, app, "/api/courses/python-basics/enroll", token, nil)

	for i := 0; i < 12; i++ {
		postJSON(t, app,
			"/api/courses/python-basics/lectures/lec-"+string(rune('a'+i))+"/progress",
			token, map[string]interface{}{"completed": true})
	}

	req = httptest.NewRequest("GET", "/api/courses/python-basics/enrollment", nil)
	req.Header.Set("Authorization", token)
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var enrollment map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&enrollment))
	assert.Equal(t, true, enrollment["enrolled"])
	assert.Equal(t, float64(50), enrollment["progress"])

	// A streak exists after today's activity.
	req = httptest.NewRequest("GET", "/api/streak", nil)
	req.Header.Set("Authorization", token)
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var streak map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&streak))
	assert.Equal(t, float64(1), streak["streakDays"])
}

func TestUnauthorizedWithoutToken(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest("GET", "/api/user/profile", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
