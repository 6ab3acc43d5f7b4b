package service

import (
	"net/http"

	apperrors "github.com/spec-kit/hospital-record-service/pkg/util/errorutil"
)

// Domain error taxonomy. Token-level failures (malformed, expired, wrong
// purpose) are collapsed into the generic invalid-token errors before they
// leave this package so clients cannot enumerate which check failed.
var (
	ErrInvalidCredentials  = apperrors.NewDomainError("INVALID_CREDENTIALS", "invalid credentials", http.StatusBadRequest, nil)
	ErrInvalidRefreshToken = apperrors.NewDomainError("INVALID_REFRESH_TOKEN", "invalid refresh token", http.StatusUnauthorized, nil)
	ErrInvalidLinkToken    = apperrors.NewDomainError("INVALID_TOKEN", "invalid or expired token", http.StatusBadRequest, nil)
	ErrAccountNotFound     = apperrors.NewDomainError("ACCOUNT_NOT_FOUND", "account not found", http.StatusNotFound, nil)
	ErrAlreadyVerified     = apperrors.NewDomainError("ALREADY_VERIFIED", "email is already verified", http.StatusConflict, nil)
	ErrEmailNotVerified    = apperrors.NewDomainError("EMAIL_NOT_VERIFIED", "email is not verified yet", http.StatusForbidden, nil)
	ErrNotRegistered       = apperrors.NewDomainError("NOT_REGISTERED", "email is not registered", http.StatusNotFound, nil)
	ErrPasswordMismatch    = apperrors.NewDomainError("PASSWORD_MISMATCH", "passwords do not match", http.StatusBadRequest, nil)
	ErrEmailTaken          = apperrors.NewDomainError("EMAIL_TAKEN", "email already registered", http.StatusConflict, nil)
	ErrUsernameTaken       = apperrors.NewDomainError("USERNAME_TAKEN", "username already taken", http.StatusConflict, nil)
	ErrHospitalNotFound    = apperrors.NewDomainError("HOSPITAL_NOT_FOUND", "hospital not found", http.StatusNotFound, nil)
	ErrHospitalExists      = apperrors.NewDomainError("HOSPITAL_EXISTS", "hospital already exists", http.StatusBadRequest, nil)
	ErrPatientNotFound     = apperrors.NewDomainError("PATIENT_NOT_FOUND", "patient not found", http.StatusNotFound, nil)
	ErrTestNotFound        = apperrors.NewDomainError("TEST_NOT_FOUND", "test not found", http.StatusNotFound, nil)
)
