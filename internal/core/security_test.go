// AngelaMos | 2026
// security_test.go

package core

import (
	"encoding/hex"
	"testing"
)

func TestHashPasswordRoundTrip(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}

	ok, err := VerifyPassword("correct horse battery staple", hash)
	if err != nil {
		t.Fatalf("VerifyPassword: %v", err)
	}
	if !ok {
		t.Error("correct password did not verify")
	}

	ok, err = VerifyPassword("wrong password", hash)
	if err != nil {
		t.Fatalf("VerifyPassword: %v", err)
	}
	if ok {
		t.Error("wrong password verified")
	}
}

func TestHashPasswordProducesUniqueSalts(t *testing.T) {
	h1, err := HashPassword("same password")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	h2, err := HashPassword("same password")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if h1 == h2 {
		t.Error("two hashes of the same password are identical")
	}
}

func TestVerifyPasswordRejectsMalformedHash(t *testing.T) {
	if _, err := VerifyPassword("anything", "not-a-hash"); err == nil {
		t.Error("expected error for malformed hash")
	}
}

func TestVerifyPasswordTimingSafe(t *testing.T) {
	hash, err := HashPassword("secret123")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}

	ok, err := VerifyPasswordTimingSafe("secret123", &hash)
	if err != nil {
		t.Fatalf("VerifyPasswordTimingSafe: %v", err)
	}
	if !ok {
		t.Error("correct password did not verify")
	}

	// No stored hash: always false, never an error.
	ok, err = VerifyPasswordTimingSafe("secret123", nil)
	if err != nil {
		t.Fatalf("VerifyPasswordTimingSafe(nil): %v", err)
	}
	if ok {
		t.Error("verification succeeded with no stored hash")
	}

	empty := ""
	ok, err = VerifyPasswordTimingSafe("secret123", &empty)
	if err != nil {
		t.Fatalf("VerifyPasswordTimingSafe(empty): %v", err)
	}
	if ok {
		t.Error("verification succeeded with empty stored hash")
	}
}

func TestGenerateResetToken(t *testing.T) {
	token, err := GenerateResetToken()
	if err != nil {
		t.Fatalf("GenerateResetToken: %v", err)
	}

	if len(token) != 64 {
		t.Errorf("token length = %d, want 64", len(token))
	}
	if _, err := hex.DecodeString(token); err != nil {
		t.Errorf("token is not hex: %v", err)
	}

	other, err := GenerateResetToken()
	if err != nil {
		t.Fatalf("GenerateResetToken: %v", err)
	}
	if token == other {
		t.Error("two tokens are identical")
	}
}
