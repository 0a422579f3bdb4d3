package utils

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword_NeverStoresPlaintext(t *testing.T) {
	t.Parallel()

	plain := "s3cret"
	hash, err := HashPassword(plain, bcrypt.MinCost)
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if hash == plain {
		t.Fatalf("hash equals plaintext")
	}
	if !VerifyPassword(hash, plain) {
		t.Fatalf("hash does not verify against its own plaintext")
	}
}

func TestHashPassword_SaltedPerCall(t *testing.T) {
	t.Parallel()

	plain := "same input"
	h1, err := HashPassword(plain, bcrypt.MinCost)
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	h2, err := HashPassword(plain, bcrypt.MinCost)
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if h1 == h2 {
		t.Fatalf("two hashes of the same input are identical")
	}
	if !VerifyPassword(h1, plain) || !VerifyPassword(h2, plain) {
		t.Fatalf("hashes do not both verify")
	}
}

func TestVerifyPassword_Mismatch(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("right", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if VerifyPassword(hash, "wrong") {
		t.Fatalf("wrong password verified")
	}
	// A mismatch is a boolean outcome, never a panic, even for garbage input.
	if VerifyPassword("not a bcrypt hash", "anything") {
		t.Fatalf("garbage hash verified")
	}
}

func TestHashPassword_DefaultCost(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("pw", 10)
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	cost, err := bcrypt.Cost([]byte(hash))
	if err != nil {
		t.Fatalf("bcrypt.Cost error: %v", err)
	}
	if cost != 10 {
		t.Fatalf("cost mismatch: got %d want 10", cost)
	}
}
