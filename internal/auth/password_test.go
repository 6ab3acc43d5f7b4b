package auth

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestHashAndComparePassword(t *testing.T) {
	hashed, err := HashPassword("s3cret-pass", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	if hashed == "s3cret-pass" {
		t.Fatal("hash should not equal plaintext")
	}

	if err := ComparePassword(hashed, "s3cret-pass"); err != nil {
		t.Errorf("compare with correct password: %v", err)
	}
	if err := ComparePassword(hashed, "wrong-pass"); err == nil {
		t.Error("compare with wrong password should fail")
	}
}

func TestHashPasswordProducesDistinctDigests(t *testing.T) {
	first, err := HashPassword("same-pass", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash first: %v", err)
	}
	second, err := HashPassword("same-pass", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash second: %v", err)
	}
	if first == second {
		t.Error("salted digests should differ between calls")
	}
}
