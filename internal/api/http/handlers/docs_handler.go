package handlers

import (
	"github.com/gofiber/fiber/v2"
)

// DocsHandler serves a minimal API reference. Both paths bypass the access
// gate so the reference stays reachable without a token.
type DocsHandler struct {
	appName string
}

// NewDocsHandler constructs handler.
func NewDocsHandler(appName string) *DocsHandler {
	return &DocsHandler{appName: appName}
}

// Page handles GET /docs.
func (h *DocsHandler) Page(c *fiber.Ctx) error {
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.SendString(`<!DOCTYPE html>
<html>
<head><title>` + h.appName + ` API</title></head>
<body>
<h1>` + h.appName + `</h1>
<p>The machine-readable description is served at <a href="/openapi.json">/openapi.json</a>.</p>
</body>
</html>`)
}

// OpenAPI handles GET /openapi.json.
func (h *DocsHandler) OpenAPI(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"openapi": "3.0.3",
		"info": fiber.Map{
			"title":   h.appName,
			"version": "1.0.0",
		},
		"paths": fiber.Map{
			"/auth/login":              fiber.Map{"post": fiber.Map{"summary": "Exchange credentials for access and refresh tokens"}},
			"/auth/refresh-token":      fiber.Map{"post": fiber.Map{"summary": "Mint a fresh access token from a refresh token"}},
			"/auth/verify-email":       fiber.Map{"get": fiber.Map{"summary": "Redeem an emailed verification link"}},
			"/password-reset/request":  fiber.Map{"post": fiber.Map{"summary": "Request a password reset link"}},
			"/password-reset/confirm":  fiber.Map{"post": fiber.Map{"summary": "Redeem a reset link and set a new password"}},
			"/users":                   fiber.Map{"post": fiber.Map{"summary": "Register an account"}, "get": fiber.Map{"summary": "List accounts"}},
			"/hospitals":               fiber.Map{"get": fiber.Map{"summary": "List hospitals"}, "post": fiber.Map{"summary": "Create a hospital"}},
			"/hospitals/{id}/patients": fiber.Map{"get": fiber.Map{"summary": "List a hospital's patients"}},
			"/patients":                fiber.Map{"post": fiber.Map{"summary": "Admit a patient"}},
			"/patients/{id}/tests":     fiber.Map{"post": fiber.Map{"summary": "Order a test"}, "get": fiber.Map{"summary": "List a patient's tests"}},
			"/tests/{id}/result":       fiber.Map{"put": fiber.Map{"summary": "Record a test result"}},
			"/tests/{id}/images":       fiber.Map{"post": fiber.Map{"summary": "Upload a diagnostic image"}},
		},
	})
}
