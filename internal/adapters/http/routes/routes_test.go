package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Lemonadezzz/acidilabs-pharma-ims/internal/adapters/persistence/models"
	"github.com/Lemonadezzz/acidilabs-pharma-ims/internal/config"
	"github.com/Lemonadezzz/acidilabs-pharma-ims/internal/core/domain"
)

func setupTestApp(t *testing.T) *fiber.App {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := models.AutoMigrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	cfg := &config.Config{AppMode: "dev"}
	cfg.JWT.Secret = "test_secret"
	config.AppConfig = cfg

	app := fiber.New()
	Setup(app, db, cfg)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body interface{}) (*http.Response, map[string]interface{}) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}

	var parsed map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		t.Fatalf("%s %s: decode response: %v", method, path, err)
	}
	return resp, parsed
}

func signupAdmin(t *testing.T, app *fiber.App) string {
	t.Helper()
	resp, body := doJSON(t, app, "POST", "/api/auth/signup-admin", "", fiber.Map{
		"username": "admin",
		"password": "secret123",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("signup-admin status = %d, body = %v", resp.StatusCode, body)
	}
	data := body["data"].(map[string]interface{})
	return data["token"].(string)
}

func TestAuthFlow(t *testing.T) {
	app := setupTestApp(t)

	// Before signup: not initialized
	resp, body := doJSON(t, app, "GET", "/api/auth/", "", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("initialize status = %d", resp.StatusCode)
	}
	if data := body["data"].(map[string]interface{}); data["initialized"] != false {
		t.Errorf("initialized = %v, want false", data["initialized"])
	}

	token := signupAdmin(t, app)

	// After signup: initialized
	_, body = doJSON(t, app, "GET", "/api/auth/", "", nil)
	if data := body["data"].(map[string]interface{}); data["initialized"] != true {
		t.Errorf("initialized = %v, want true", data["initialized"])
	}

	// Wrong password answers 403
	resp, _ = doJSON(t, app, "POST", "/api/auth/login", "", fiber.Map{
		"username": "admin",
		"password": "wrong",
	})
	if resp.StatusCode != http.StatusForbidden {
		t.Errorf("bad login status = %d, want 403", resp.StatusCode)
	}

	// Token gives access to /info
	resp, body = doJSON(t, app, "GET", "/api/auth/info", token, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("info status = %d", resp.StatusCode)
	}
	if user := body["data"].(map[string]interface{}); user["username"] != "admin" {
		t.Errorf("info username = %v", user["username"])
	}

	// No token answers 403
	resp, _ = doJSON(t, app, "GET", "/api/auth/info", "", nil)
	if resp.StatusCode != http.StatusForbidden {
		t.Errorf("unauthenticated info status = %d, want 403", resp.StatusCode)
	}
}

func TestPermissionGate(t *testing.T) {
	app := setupTestApp(t)
	adminToken := signupAdmin(t, app)

	// Admin creates an item
	resp, body := doJSON(t, app, "POST", "/api/items/create-item", adminToken, fiber.Map{
		"name": "Aspirin",
		"qty":  10,
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create-item status = %d, body = %v", resp.StatusCode, body)
	}
	itemID := body["data"].(map[string]interface{})["id"].(float64)

	// Read-only staff account
	resp, _ = doJSON(t, app, "POST", "/api/auth/create-user", adminToken, fiber.Map{
		"username":    "bob",
		"password":    "secret123",
		"role":        domain.RoleUser,
		"permissions": domain.DefaultPermissions(),
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create-user status = %d", resp.StatusCode)
	}
	_, body = doJSON(t, app, "POST", "/api/auth/login", "", fiber.Map{
		"username": "bob",
		"password": "secret123",
	})
	bobToken := body["data"].(map[string]interface{})["token"].(string)

	// Read allowed
	resp, _ = doJSON(t, app, "GET", "/api/items/", bobToken, nil)
	if resp.StatusCode != http.StatusOK {
		t.Errorf("bob list items status = %d, want 200", resp.StatusCode)
	}

	// Write refused
	resp, _ = doJSON(t, app, "POST", "/api/items/use-item", bobToken, fiber.Map{
		"id":         itemID,
		"usedAmount": 1,
	})
	if resp.StatusCode != http.StatusForbidden {
		t.Errorf("bob use-item status = %d, want 403", resp.StatusCode)
	}

	// Admin endpoints refused
	resp, _ = doJSON(t, app, "GET", "/api/dashboard", bobToken, nil)
	if resp.StatusCode != http.StatusForbidden {
		t.Errorf("bob dashboard status = %d, want 403", resp.StatusCode)
	}
	resp, _ = doJSON(t, app, "GET", "/api/logs/", bobToken, nil)
	if resp.StatusCode != http.StatusForbidden {
		t.Errorf("bob logs status = %d, want 403", resp.StatusCode)
	}

	// Admin can do all of it
	resp, _ = doJSON(t, app, "POST", "/api/items/use-item", adminToken, fiber.Map{
		"id":         itemID,
		"usedAmount": 20,
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("over-use status = %d, want 400", resp.StatusCode)
	}
	resp, body = doJSON(t, app, "POST", "/api/items/use-item", adminToken, fiber.Map{
		"id":         itemID,
		"usedAmount": 4,
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("use-item status = %d, body = %v", resp.StatusCode, body)
	}
	if qty := body["data"].(map[string]interface{})["qty"].(float64); qty != 6 {
		t.Errorf("qty after use = %v, want 6", qty)
	}

	resp, _ = doJSON(t, app, "GET", "/api/dashboard", adminToken, nil)
	if resp.StatusCode != http.StatusOK {
		t.Errorf("admin dashboard status = %d, want 200", resp.StatusCode)
	}
}
