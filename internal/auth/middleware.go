package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	apperrors "github.com/spec-kit/hospital-record-service/pkg/util/errorutil"
)

const principalKey = "auth_principal"

// Principal is the verified identity attached to an authenticated request.
type Principal struct {
	Subject         string
	IsAdmin         bool
	IsHospitalAdmin bool
	HospitalID      *int64
	Claims          *Claims
}

// AccessGate intercepts every routed request before handler dispatch.
//
// Requests without a bearer token continue as anonymous; downstream
// handlers decide whether authentication is mandatory. A token that is
// present but fails verification is rejected outright: it signals
// tampering or expiry, not absence of intent. The rejection is one opaque
// forbidden response regardless of which check failed; only the internal
// log keeps the distinction.
type AccessGate struct {
	tokens        *TokenManager
	logger        *zap.Logger
	allowPrefixes []string
}

// NewAccessGate constructs the gate with the default allow-list.
func NewAccessGate(tokens *TokenManager, logger *zap.Logger) *AccessGate {
	return &AccessGate{
		tokens:        tokens,
		logger:        logger,
		allowPrefixes: []string{"/docs", "/openapi.json", "/health"},
	}
}

// Handle runs the gate for one request.
func (g *AccessGate) Handle(c *fiber.Ctx) error {
	path := c.Path()
	for _, prefix := range g.allowPrefixes {
		if strings.HasPrefix(path, prefix) {
			return c.Next()
		}
	}

	header := c.Get(fiber.HeaderAuthorization)
	if header == "" {
		return c.Next()
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		// not a bearer credential; treat as anonymous
		return c.Next()
	}

	claims, err := g.tokens.Verify(parts[1], PurposeAccess)
	if err != nil {
		g.logger.Warn("rejected bearer token",
			zap.String("path", path),
			zap.String("method", c.Method()),
			zap.Error(err))
		return apperrors.NewForbidden("forbidden")
	}

	principal := &Principal{
		Subject:         claims.Subject,
		IsAdmin:         claims.IsAdmin,
		IsHospitalAdmin: claims.IsHospitalAdmin,
		HospitalID:      claims.HospitalID,
		Claims:          claims,
	}

	if !principal.IsAdmin && principal.HospitalID == nil {
		g.logger.Warn("principal lacks hospital affiliation",
			zap.String("subject", principal.Subject),
			zap.String("path", path))
		return apperrors.NewForbidden("forbidden")
	}

	c.Locals(principalKey, principal)
	return c.Next()
}

// PrincipalFromContext retrieves the authenticated principal, when present.
func PrincipalFromContext(c *fiber.Ctx) (*Principal, bool) {
	val := c.Locals(principalKey)
	if val == nil {
		return nil, false
	}
	principal, ok := val.(*Principal)
	return principal, ok
}
