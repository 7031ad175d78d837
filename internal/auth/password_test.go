package auth

import "testing"

func TestHashAndComparePassword(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("s3cret", 4)
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if hash == "s3cret" {
		t.Fatal("hash equals plaintext")
	}

	if err := ComparePassword(hash, "s3cret"); err != nil {
		t.Fatalf("ComparePassword error: %v", err)
	}
	if err := ComparePassword(hash, "wrong"); err == nil {
		t.Fatal("expected mismatch error, got nil")
	}
}

func TestHashPassword_OutOfRangeCost(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("pw", 99)
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if err := ComparePassword(hash, "pw"); err != nil {
		t.Fatalf("ComparePassword error: %v", err)
	}
}
