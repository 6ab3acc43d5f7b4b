package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/hospital-record-service/internal/api/http/handlers"
	"github.com/spec-kit/hospital-record-service/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health    *handlers.HealthHandler
	Docs      *handlers.DocsHandler
	Auth      *handlers.AuthHandler
	Users     *handlers.UsersHandler
	Hospitals *handlers.HospitalsHandler
	Patients  *handlers.PatientsHandler
	Tests     *handlers.TestsHandler
	Gate      *auth.AccessGate
}

// RegisterRoutes wires HTTP routes. The access gate runs on every request;
// per-route guards then enforce role requirements.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Use(cfg.Gate.Handle)

	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	app.Get("/docs", cfg.Docs.Page)
	app.Get("/openapi.json", cfg.Docs.OpenAPI)

	authGroup := app.Group("/auth")
	authGroup.Post("/login", cfg.Auth.Login)
	authGroup.Post("/refresh-token", cfg.Auth.Refresh)
	authGroup.Get("/verify-email", cfg.Auth.VerifyEmail)

	app.Post("/password-reset/request", cfg.Auth.RequestPasswordReset)
	app.Post("/password-reset/confirm", cfg.Auth.ConfirmPasswordReset)

	users := app.Group("/users")
	users.Post("", cfg.Users.Create)
	users.Get("", auth.RequireAdmin(), cfg.Users.List)
	users.Get("/:id", auth.RequireAuthenticated(), cfg.Users.Show)

	hospitals := app.Group("/hospitals")
	hospitals.Get("", auth.RequireAuthenticated(), cfg.Hospitals.List)
	hospitals.Post("", auth.RequireAdmin(), cfg.Hospitals.Create)
	hospitals.Get("/:id", auth.RequireAuthenticated(), cfg.Hospitals.Show)
	hospitals.Put("/:id", auth.RequireAdmin(), cfg.Hospitals.Update)
	hospitals.Delete("/:id", auth.RequireAdmin(), cfg.Hospitals.Delete)
	hospitals.Get("/:id/patients", auth.RequireHospitalAdmin(), cfg.Patients.ListByHospital)

	patients := app.Group("/patients", auth.RequireAuthenticated())
	patients.Post("", cfg.Patients.Create)
	patients.Get("/:id", cfg.Patients.Show)
	patients.Put("/:id", cfg.Patients.Update)
	patients.Delete("/:id", auth.RequireHospitalAdmin(), cfg.Patients.Delete)
	patients.Post("/:id/tests", cfg.Tests.Create)
	patients.Get("/:id/tests", cfg.Tests.ListByPatient)

	tests := app.Group("/tests", auth.RequireAuthenticated())
	tests.Get("/:id", cfg.Tests.Show)
	tests.Put("/:id/result", cfg.Tests.RecordResult)
	tests.Post("/:id/images", cfg.Tests.AttachImage)
	tests.Get("/:id/images", cfg.Tests.ListImages)
	tests.Post("/:id/result-images", cfg.Tests.AttachResultImage)
	tests.Get("/:id/result-images", cfg.Tests.ListResultImages)
}
