package auth

import "errors"

// Verification failures. Callers collapse these into a single opaque
// rejection before anything reaches a client; the distinction exists for
// internal logging and tests.
var (
	ErrTokenMalformed = errors.New("token malformed")
	ErrTokenExpired   = errors.New("token expired")
	ErrWrongPurpose   = errors.New("token purpose mismatch")
)
