package auth

import (
	jwt "github.com/golang-jwt/jwt/v5"

	"github.com/spec-kit/hospital-record-service/internal/domain"
)

// TokenPurpose fixes which flow a token is valid for. Every verifier call
// site names the purpose it expects, so a token minted for one flow can
// never be redeemed in another.
type TokenPurpose string

const (
	PurposeAccess        TokenPurpose = "access"
	PurposeRefresh       TokenPurpose = "refresh"
	PurposeEmailVerify   TokenPurpose = "email-verify"
	PurposePasswordReset TokenPurpose = "password-reset"
)

// Claims describes the signed JWT payload. The privilege snapshot fields
// are only populated on access tokens.
type Claims struct {
	Purpose         TokenPurpose `json:"purpose"`
	IsAdmin         bool         `json:"is_admin,omitempty"`
	IsHospitalAdmin bool         `json:"is_hospital_admin,omitempty"`
	HospitalID      *int64       `json:"hospital_id,omitempty"`
	jwt.RegisteredClaims
}

// Snapshot returns the privilege snapshot carried by the claims.
func (c *Claims) Snapshot() domain.PrivilegeSnapshot {
	return domain.PrivilegeSnapshot{
		IsAdmin:         c.IsAdmin,
		IsHospitalAdmin: c.IsHospitalAdmin,
		HospitalID:      c.HospitalID,
	}
}
