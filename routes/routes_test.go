package routes_test

import (
	"net/http/httptest"
	"strings"
	"testing"

	"app/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestProtectedRoutesRequireJWT(t *testing.T) {
	app := fiber.New()
	routes.SetupRoutes(app)

	paths := []struct {
		method string
		path   string
	}{
		{"POST", "/api/v1/analytics/chat"},
		{"POST", "/api/v1/assistant/ask"},
		{"GET", "/api/v1/dashboard/summary"},
		{"GET", "/api/v1/reports/"},
		{"GET", "/api/v1/admin/stores"},
	}
	for _, p := range paths {
		req := httptest.NewRequest(p.method, p.path, nil)
		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("app test error for %s %s: %v", p.method, p.path, err)
		}
		assert.Equal(t, 401, resp.StatusCode, "%s %s", p.method, p.path)
	}
}

func TestLoginRejectsMalformedBody(t *testing.T) {
	app := fiber.New()
	routes.SetupRoutes(app)

	req := httptest.NewRequest("POST", "/api/v1/auth/login", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app test error: %v", err)
	}
	assert.Equal(t, 400, resp.StatusCode)
}
