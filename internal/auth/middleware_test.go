package auth

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/spec-kit/hospital-record-service/internal/domain"
	apperrors "github.com/spec-kit/hospital-record-service/pkg/util/errorutil"
)

func newGateApp(tm *TokenManager) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		err := c.Next()
		if err == nil {
			return nil
		}
		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return c.Status(fiberErr.Code).JSON(fiber.Map{"error": fiberErr.Message})
		}
		domainErr := apperrors.ToDomainError(err)
		return c.Status(domainErr.HTTPStatus).JSON(fiber.Map{"error": domainErr.Code})
	})

	gate := NewAccessGate(tm, zap.NewNop())
	app.Use(gate.Handle)

	app.Get("/docs", func(c *fiber.Ctx) error {
		return c.SendString("docs")
	})
	app.Get("/profile", func(c *fiber.Ctx) error {
		principal, ok := PrincipalFromContext(c)
		if !ok {
			return c.SendString("anonymous")
		}
		return c.SendString(principal.Subject)
	})
	app.Get("/admin-only", RequireAdmin(), func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	app.Get("/guarded", RequireAuthenticated(), func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	return app
}

func doRequest(t *testing.T, app *fiber.App, path, authorization string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	return resp
}

func TestGateAllowsListedPathsWithoutToken(t *testing.T) {
	app := newGateApp(newTestManager())

	resp := doRequest(t, app, "/docs", "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
}

func TestGatePassesAnonymousRequests(t *testing.T) {
	app := newGateApp(newTestManager())

	resp := doRequest(t, app, "/profile", "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
}

func TestGateIgnoresNonBearerCredentials(t *testing.T) {
	app := newGateApp(newTestManager())

	resp := doRequest(t, app, "/profile", "Basic dXNlcjpwYXNz")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
}

func TestGateRejectsGarbageToken(t *testing.T) {
	app := newGateApp(newTestManager())

	resp := doRequest(t, app, "/profile", "Bearer not-a-token")
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", resp.StatusCode)
	}
}

func TestGateRejectsExpiredToken(t *testing.T) {
	tm := newTestManager()
	base := time.Date(2025, time.March, 1, 12, 0, 0, 0, time.UTC)
	tm.now = func() time.Time { return base }

	token, _, err := tm.IssueAccessToken(testAccount())
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	tm.now = func() time.Time { return base.Add(time.Hour) }

	app := newGateApp(tm)
	resp := doRequest(t, app, "/profile", "Bearer "+token)
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", resp.StatusCode)
	}
}

func TestGateRejectsRefreshTokenOnRequests(t *testing.T) {
	tm := newTestManager()
	token, _, err := tm.IssueRefreshToken(testAccount())
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	app := newGateApp(tm)
	resp := doRequest(t, app, "/profile", "Bearer "+token)
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", resp.StatusCode)
	}
}

func TestGateAdmitsAdminWithoutHospital(t *testing.T) {
	tm := newTestManager()
	token, _, err := tm.IssueAccessToken(&domain.User{Email: "root@example.com", IsAdmin: true})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	app := newGateApp(tm)
	resp := doRequest(t, app, "/admin-only", "Bearer "+token)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
}

func TestGateRejectsStaffWithoutHospital(t *testing.T) {
	tm := newTestManager()
	token, _, err := tm.IssueAccessToken(&domain.User{Email: "stray@example.com"})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	app := newGateApp(tm)
	resp := doRequest(t, app, "/profile", "Bearer "+token)
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", resp.StatusCode)
	}
}

func TestRequireAdminRejectsStaff(t *testing.T) {
	tm := newTestManager()
	token, _, err := tm.IssueAccessToken(testAccount())
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	app := newGateApp(tm)
	resp := doRequest(t, app, "/admin-only", "Bearer "+token)
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", resp.StatusCode)
	}
}

func TestRequireAuthenticatedRejectsAnonymous(t *testing.T) {
	app := newGateApp(newTestManager())

	resp := doRequest(t, app, "/guarded", "")
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", resp.StatusCode)
	}
}
