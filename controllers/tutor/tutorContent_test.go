package tutorController_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	tutorController "elimu/controllers/tutor"
	"elimu/database"
	"elimu/models"
	tutorValidator "elimu/validators/tutor"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTutorApp(t *testing.T) *fiber.App {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	database.RunMigrations(db)
	database.Database = database.DbInstance{Db: db}

	t.Cleanup(func() {
		db.Exec("DELETE FROM tutor_contents")
	})

	app := fiber.New()
	app.Post("/tutor/content", tutorValidator.SaveContent(), tutorController.SaveContent)
	app.Get("/tutor/content", tutorController.GetContent)
	return app
}

func postContent(t *testing.T, app *fiber.App, body map[string]interface{}) (int, map[string]interface{}) {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest("POST", "/tutor/content", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var envelope map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	return resp.StatusCode, envelope
}

func tutorBody() map[string]interface{} {
	return map[string]interface{}{
		"grade_level":  "grade4",
		"subject":      "mathematics",
		"strand":       "numbers",
		"substrand":    "fractions",
		"content_type": "read",
		"body":         map[string]interface{}{"text": "A fraction names part of a whole."},
	}
}

func TestSaveContent_FirstWriteWins(t *testing.T) {
	app := setupTutorApp(t)

	status, envelope := postContent(t, app, tutorBody())
	require.Equal(t, fiber.StatusCreated, status)

	data := envelope["data"].(map[string]interface{})
	assert.Equal(t, false, data["cached"])

	// A duplicate POST reports cached and does not overwrite
	status, envelope = postContent(t, app, tutorBody())
	require.Equal(t, fiber.StatusOK, status)

	data = envelope["data"].(map[string]interface{})
	assert.Equal(t, true, data["cached"])

	var count int64
	database.Database.Db.Model(&models.TutorContent{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestSaveContent_ValidationRejectsBadContentType(t *testing.T) {
	app := setupTutorApp(t)

	body := tutorBody()
	body["content_type"] = "video"

	status, _ := postContent(t, app, body)
	assert.Equal(t, fiber.StatusUnprocessableEntity, status)
}

func TestGetContent_RequiresAllParams(t *testing.T) {
	app := setupTutorApp(t)

	req := httptest.NewRequest("GET", "/tutor/content?grade=grade4&subject=mathematics", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestGetContent_MissAndHit(t *testing.T) {
	app := setupTutorApp(t)

	url := "/tutor/content?grade=grade4&subject=mathematics&strand=numbers&substrand=fractions&content_type=read"

	req := httptest.NewRequest("GET", url, nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	status, _ := postContent(t, app, tutorBody())
	require.Equal(t, fiber.StatusCreated, status)

	req = httptest.NewRequest("GET", url, nil)
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestTutorCacheKey(t *testing.T) {
	key := models.TutorCacheKey("grade4", "mathematics", "numbers", "fractions", "read")

	assert.Equal(t, "grade4_mathematics_numbers_fractions_read", key)
}
