package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/spec-kit/hospital-record-service/internal/domain"
)

func newTestManager() *TokenManager {
	return NewTokenManager("test-secret", 30*time.Minute, 168*time.Hour, 24*time.Hour)
}

func testAccount() *domain.User {
	hospitalID := int64(7)
	return &domain.User{
		ID:              1,
		Email:           "nurse@example.com",
		IsHospitalAdmin: true,
		HospitalID:      &hospitalID,
	}
}

func TestAccessTokenRoundTrip(t *testing.T) {
	tm := newTestManager()
	account := testAccount()

	token, expiresAt, err := tm.IssueAccessToken(account)
	if err != nil {
		t.Fatalf("issue access token: %v", err)
	}
	if time.Until(expiresAt) <= 0 {
		t.Fatalf("expiry %v is not in the future", expiresAt)
	}

	claims, err := tm.Verify(token, PurposeAccess)
	if err != nil {
		t.Fatalf("verify access token: %v", err)
	}
	if claims.Subject != account.Email {
		t.Errorf("subject = %q, want %q", claims.Subject, account.Email)
	}
	if claims.Purpose != PurposeAccess {
		t.Errorf("purpose = %q, want %q", claims.Purpose, PurposeAccess)
	}
	if claims.IsAdmin {
		t.Error("is_admin should be false")
	}
	if !claims.IsHospitalAdmin {
		t.Error("is_hospital_admin should be true")
	}
	if claims.HospitalID == nil || *claims.HospitalID != 7 {
		t.Errorf("hospital_id = %v, want 7", claims.HospitalID)
	}
	if claims.ID == "" {
		t.Error("token id should not be empty")
	}
}

func TestVerifyRejectsTamperedToken(t *testing.T) {
	tm := newTestManager()

	token, _, err := tm.IssueAccessToken(testAccount())
	if err != nil {
		t.Fatalf("issue access token: %v", err)
	}

	raw := []byte(token)
	mid := len(raw) / 2
	if raw[mid] == 'a' {
		raw[mid] = 'b'
	} else {
		raw[mid] = 'a'
	}

	if _, err := tm.Verify(string(raw), PurposeAccess); !errors.Is(err, ErrTokenMalformed) {
		t.Fatalf("err = %v, want ErrTokenMalformed", err)
	}
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	tm := newTestManager()
	other := NewTokenManager("other-secret", 30*time.Minute, 168*time.Hour, 24*time.Hour)

	token, _, err := tm.IssueAccessToken(testAccount())
	if err != nil {
		t.Fatalf("issue access token: %v", err)
	}

	if _, err := other.Verify(token, PurposeAccess); !errors.Is(err, ErrTokenMalformed) {
		t.Fatalf("err = %v, want ErrTokenMalformed", err)
	}
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	tm := newTestManager()
	base := time.Date(2025, time.March, 1, 12, 0, 0, 0, time.UTC)
	tm.now = func() time.Time { return base }

	token, _, err := tm.IssueAccessToken(testAccount())
	if err != nil {
		t.Fatalf("issue access token: %v", err)
	}

	tm.now = func() time.Time { return base.Add(31 * time.Minute) }
	if _, err := tm.Verify(token, PurposeAccess); !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("err = %v, want ErrTokenExpired", err)
	}
}

func TestVerifyRejectsWrongPurpose(t *testing.T) {
	tm := newTestManager()

	refresh, _, err := tm.IssueRefreshToken(testAccount())
	if err != nil {
		t.Fatalf("issue refresh token: %v", err)
	}
	if _, err := tm.Verify(refresh, PurposeAccess); !errors.Is(err, ErrWrongPurpose) {
		t.Fatalf("err = %v, want ErrWrongPurpose", err)
	}

	verify, _, err := tm.IssueEmailVerifyToken("nurse@example.com")
	if err != nil {
		t.Fatalf("issue verify token: %v", err)
	}
	if _, err := tm.Verify(verify, PurposePasswordReset); !errors.Is(err, ErrWrongPurpose) {
		t.Fatalf("err = %v, want ErrWrongPurpose", err)
	}
}

func TestVerifyRejectsEmptySubject(t *testing.T) {
	tm := newTestManager()

	token, _, err := tm.issue(&Claims{Purpose: PurposeAccess}, "", time.Minute)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if _, err := tm.Verify(token, PurposeAccess); !errors.Is(err, ErrTokenMalformed) {
		t.Fatalf("err = %v, want ErrTokenMalformed", err)
	}
}

func TestTokenIDsAreUnique(t *testing.T) {
	tm := newTestManager()
	account := testAccount()

	first, _, err := tm.IssueAccessToken(account)
	if err != nil {
		t.Fatalf("issue first: %v", err)
	}
	second, _, err := tm.IssueAccessToken(account)
	if err != nil {
		t.Fatalf("issue second: %v", err)
	}

	firstClaims, err := tm.Verify(first, PurposeAccess)
	if err != nil {
		t.Fatalf("verify first: %v", err)
	}
	secondClaims, err := tm.Verify(second, PurposeAccess)
	if err != nil {
		t.Fatalf("verify second: %v", err)
	}
	if firstClaims.ID == secondClaims.ID {
		t.Fatalf("token ids should differ, both %q", firstClaims.ID)
	}
}

func TestRefreshTokenCarriesNoPrivileges(t *testing.T) {
	tm := newTestManager()

	token, _, err := tm.IssueRefreshToken(testAccount())
	if err != nil {
		t.Fatalf("issue refresh token: %v", err)
	}
	claims, err := tm.Verify(token, PurposeRefresh)
	if err != nil {
		t.Fatalf("verify refresh token: %v", err)
	}
	if claims.IsAdmin || claims.IsHospitalAdmin || claims.HospitalID != nil {
		t.Errorf("refresh claims should carry no privilege snapshot: %+v", claims)
	}
}
