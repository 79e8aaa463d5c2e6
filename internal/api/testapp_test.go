package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/mindmentor/mindmentor/internal/config"
	"github.com/mindmentor/mindmentor/internal/db"
	"gorm.io/gorm"
)

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	return newTestAppWithTokenExpiry(t, time.Hour)
}

func newTestAppWithTokenExpiry(t *testing.T, tokenExpiry time.Duration) (*fiber.App, *gorm.DB) {
	t.Helper()

	databasePath := filepath.Join(t.TempDir(), "mindmentor-test.db")
	database, err := db.Open(databasePath)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("open sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	cfg := &config.Config{
		DatabaseURL: databasePath,
		SecretKey:   "test-secret-key",
		TokenExpiry: tokenExpiry,
	}
	handler := NewHandler(database, cfg)

	app := fiber.New()
	RegisterRoutes(app, handler)
	return app, database
}

func performJSON(t *testing.T, app *fiber.App, method string, path string, token string, payload any) *http.Response {
	t.Helper()

	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("encode request payload: %v", err)
		}
		body = bytes.NewReader(encoded)
	}

	request := httptest.NewRequest(method, path, body)
	if payload != nil {
		request.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		request.Header.Set("Authorization", "Bearer "+token)
	}

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, path, err)
	}
	return response
}

func decodeJSON(t *testing.T, response *http.Response, out any) {
	t.Helper()
	defer response.Body.Close()

	body, err := io.ReadAll(response.Body)
	if err != nil {
		t.Fatalf("read response body: %v", err)
	}
	if err := json.Unmarshal(body, out); err != nil {
		t.Fatalf("decode response body %q: %v", body, err)
	}
}

func registerTestUser(t *testing.T, app *fiber.App, email string, password string) userOut {
	t.Helper()

	response := performJSON(t, app, http.MethodPost, "/auth/register", "", fiber.Map{
		"email":    email,
		"password": password,
	})
	if response.StatusCode != http.StatusCreated {
		t.Fatalf("expected register status 201, got %d", response.StatusCode)
	}

	user := userOut{}
	decodeJSON(t, response, &user)
	return user
}

func loginTestUser(t *testing.T, app *fiber.App, email string, password string) string {
	t.Helper()

	response := performJSON(t, app, http.MethodPost, "/auth/login", "", fiber.Map{
		"email":    email,
		"password": password,
	})
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected login status 200, got %d", response.StatusCode)
	}

	token := tokenOut{}
	decodeJSON(t, response, &token)
	if token.AccessToken == "" {
		t.Fatal("expected access token in login response")
	}
	return token.AccessToken
}

func createTestJournal(t *testing.T, app *fiber.App, token string, payload fiber.Map) journalOut {
	t.Helper()

	response := performJSON(t, app, http.MethodPost, "/journals", token, payload)
	if response.StatusCode != http.StatusCreated {
		t.Fatalf("expected journal create status 201, got %d", response.StatusCode)
	}

	entry := journalOut{}
	decodeJSON(t, response, &entry)
	return entry
}
