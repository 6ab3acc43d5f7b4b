package auth

import (
	"errors"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/spec-kit/hospital-record-service/internal/domain"
)

var signingMethod = jwt.SigningMethodHS256

// TokenManager issues and verifies every signed token in the service. All
// purposes share one symmetric secret; the purpose claim is what keeps
// them apart. The manager holds no mutable state and is safe for
// concurrent use.
type TokenManager struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
	linkTTL    time.Duration
	now        func() time.Time
}

// NewTokenManager builds a manager. TTLs are taken as configured; callers
// own the defaults.
func NewTokenManager(secret string, accessTTL, refreshTTL, linkTTL time.Duration) *TokenManager {
	return &TokenManager{
		secret:     []byte(secret),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
		linkTTL:    linkTTL,
		now:        time.Now,
	}
}

// IssueAccessToken mints a short-lived token embedding the account's
// privilege snapshot.
func (tm *TokenManager) IssueAccessToken(account *domain.User) (string, time.Time, error) {
	snap := account.Snapshot()
	return tm.issue(&Claims{
		Purpose:         PurposeAccess,
		IsAdmin:         snap.IsAdmin,
		IsHospitalAdmin: snap.IsHospitalAdmin,
		HospitalID:      snap.HospitalID,
	}, account.Email, tm.accessTTL)
}

// IssueRefreshToken mints a long-lived token carrying only the subject.
func (tm *TokenManager) IssueRefreshToken(account *domain.User) (string, time.Time, error) {
	return tm.issue(&Claims{Purpose: PurposeRefresh}, account.Email, tm.refreshTTL)
}

// IssueEmailVerifyToken mints the token embedded in verification links.
func (tm *TokenManager) IssueEmailVerifyToken(subject string) (string, time.Time, error) {
	return tm.issue(&Claims{Purpose: PurposeEmailVerify}, subject, tm.linkTTL)
}

// IssuePasswordResetToken mints the token embedded in reset links.
func (tm *TokenManager) IssuePasswordResetToken(subject string) (string, time.Time, error) {
	return tm.issue(&Claims{Purpose: PurposePasswordReset}, subject, tm.linkTTL)
}

func (tm *TokenManager) issue(claims *Claims, subject string, ttl time.Duration) (string, time.Time, error) {
	issuedAt := tm.now()
	expiresAt := issuedAt.Add(ttl)
	claims.RegisteredClaims = jwt.RegisteredClaims{
		Subject:   subject,
		ID:        uuid.NewString(),
		IssuedAt:  jwt.NewNumericDate(issuedAt),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}

	token := jwt.NewWithClaims(signingMethod, claims)
	signed, err := token.SignedString(tm.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// Verify checks signature, expiry and purpose, in that order, and returns
// the claims only when all pass. It never touches storage: the result is a
// function of the token and the wall clock.
func (tm *TokenManager) Verify(tokenStr string, expected TokenPurpose) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != signingMethod {
			return nil, errors.New("unexpected signing method")
		}
		return tm.secret, nil
	},
		jwt.WithValidMethods([]string{signingMethod.Alg()}),
		jwt.WithTimeFunc(tm.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenMalformed
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid || claims.Subject == "" {
		return nil, ErrTokenMalformed
	}
	if claims.Purpose != expected {
		return nil, ErrWrongPurpose
	}
	return claims, nil
}
