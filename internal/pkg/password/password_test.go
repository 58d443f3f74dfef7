package password

import (
	"strings"
	"testing"
)

func TestHashAndVerify(t *testing.T) {
	digest, err := Hash("secret123")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if digest == "secret123" {
		t.Fatalf("digest must not equal plaintext")
	}
	if !strings.HasPrefix(digest, "$2") {
		t.Fatalf("expected bcrypt digest, got %q", digest)
	}
	if !Verify("secret123", digest) {
		t.Fatalf("expected matching password to verify")
	}
	if Verify("secret124", digest) {
		t.Fatalf("expected non-matching password to fail")
	}
}

func TestHashIsSalted(t *testing.T) {
	a, err := Hash("secret123")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	b, err := Hash("secret123")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if a == b {
		t.Fatalf("two hashes of the same password must differ")
	}
	if !Verify("secret123", a) || !Verify("secret123", b) {
		t.Fatalf("both salted digests must verify")
	}
}

func TestVerifyMalformedDigest(t *testing.T) {
	cases := []string{
		"",
		"not-a-digest",
		"$argon2id$v=19$m=65536,t=3,p=2$c29tZXNhbHQ$hash", // foreign scheme
		"$2a$borked",
	}
	for _, digest := range cases {
		if Verify("secret123", digest) {
			t.Fatalf("malformed digest %q must not verify", digest)
		}
	}
}
