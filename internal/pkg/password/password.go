// Package password wraps bcrypt hashing and verification of user secrets.
// Digests are self-describing (algorithm, cost and salt are embedded), so
// verification needs no state beyond the digest itself.
package password

import "golang.org/x/crypto/bcrypt"

// Hash returns the bcrypt digest of a plaintext password at the default
// cost. The plaintext never leaves this package in any other form.
func Hash(plain string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// Verify reports whether plain matches the stored digest. The comparison
// is constant-time. Malformed digests, including ones produced by a
// foreign hashing scheme, verify as false rather than erroring, which
// keeps a future algorithm migration a pure data concern.
func Verify(plain, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plain)) == nil
}
