package tests

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"progreso/backend/config"
	"progreso/backend/models"
	"progreso/backend/routes"
	"progreso/backend/utils"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var (
	app *fiber.App
	db  *gorm.DB
	cfg *config.Config
)

func TestMain(m *testing.M) {
	setup()
	code := m.Run()
	teardown()
	os.Exit(code)
}

var dbPath string

func setup() {
	cfg = &config.Config{
		JWTSecret:  "testsecret",
		ServerPort: "8000",
	}

	dbPath = filepath.Join(os.TempDir(), "progreso_test.db")
	os.Remove(dbPath)

	var err error
	db, err = gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		panic(err)
	}
	if err := utils.Migrate(db); err != nil {
		panic(err)
	}

	seedFixtures()

	app = fiber.New()
	routes.SetupRoutes(app, db, cfg)
}

func teardown() {
	os.Remove(dbPath)
}

func seedFixtures() {
	videos := []models.Video{
		{ID: "test_vid_1", Subject: "Matemáticas", Title: "Test Video Math", Description: "Test description", Duration: "05:00", URL: "https://www.youtube.com/embed/test1"},
		{ID: "test_vid_2", Subject: "Lengua", Title: "Test Video Lang", Description: "Test description", Duration: "10:30", URL: "https://www.youtube.com/embed/test2"},
	}
	if err := db.Create(&videos).Error; err != nil {
		panic(err)
	}

	questions := []models.Question{
		{ID: "test_q1", Level: 1, Text: "Test question level 1", Options: `["A","B","C","D"]`, AnswerIndex: 0},
		{ID: "test_q2", Level: 2, Text: "Test question level 2", Options: `["A","B","C","D"]`, AnswerIndex: 1},
		{ID: "test_q3", Level: 3, Text: "Test question level 3", Options: `["A","B","C","D"]`, AnswerIndex: 2},
	}
	if err := db.Create(&questions).Error; err != nil {
		panic(err)
	}
}

// doJSON lanza una petición JSON contra la app y decodifica la respuesta.
func doJSON(t *testing.T, method, path string, body interface{}, headers ...map[string]string) (int, map[string]interface{}) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request: %v", err)
		}
		reader = bytes.NewBuffer(jsonData)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for _, h := range headers {
		for k, v := range h {
			req.Header.Set(k, v)
		}
	}

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("request %s %s: %v", method, path, err)
	}
	defer resp.Body.Close()

	var result map[string]interface{}
	raw, _ := io.ReadAll(resp.Body)
	if len(raw) > 0 && json.Valid(raw) && raw[0] == '{' {
		json.Unmarshal(raw, &result)
	}
	return resp.StatusCode, result
}

// doJSONList es como doJSON para endpoints que devuelven un array.
func doJSONList(t *testing.T, method, path string) (int, []interface{}) {
	t.Helper()

	req := httptest.NewRequest(method, path, nil)
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("request %s %s: %v", method, path, err)
	}
	defer resp.Body.Close()

	var result []interface{}
	json.NewDecoder(resp.Body).Decode(&result)
	return resp.StatusCode, result
}

func mustCreateStudent(t *testing.T, name, course string) string {
	t.Helper()
	status, body := doJSON(t, http.MethodPost, "/api/students", map[string]string{
		"name":   name,
		"course": course,
	})
	if status != http.StatusOK {
		t.Fatalf("create student: status %d", status)
	}
	return body["id"].(string)
}
