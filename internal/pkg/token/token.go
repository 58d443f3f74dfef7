// Package token encodes and decodes the signed claim sets carried inside
// bearer tokens. A single symmetric codec serves two TTL profiles: a
// short-lived access token and a longer-lived refresh token.
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	defaultAccessTTL  = 30 * time.Minute
	defaultRefreshTTL = 7 * 24 * time.Hour
)

// Decode failures, distinguishable for diagnostics. Callers outside this
// package collapse all of them into a single unauthenticated category.
var (
	ErrMalformed = errors.New("token malformed")
	ErrSignature = errors.New("token signature invalid")
	ErrAlgorithm = errors.New("token algorithm mismatch")
	ErrExpired   = errors.New("token expired")
)

// Claims is the payload embedded in every issued token: the subject (user
// id) plus the login handle as an auxiliary claim.
type Claims struct {
	Email string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

// Codec signs and verifies claim sets with a shared symmetric secret.
type Codec struct {
	secret     []byte
	method     jwt.SigningMethod
	accessTTL  time.Duration
	refreshTTL time.Duration
}

// NewCodec builds a Codec for the named HMAC algorithm. Zero TTLs fall
// back to the defaults (30m access, 7d refresh).
func NewCodec(secret, algorithm string, accessTTL, refreshTTL time.Duration) (*Codec, error) {
	if secret == "" {
		return nil, errors.New("token: signing secret must not be empty")
	}
	method := jwt.GetSigningMethod(algorithm)
	if method == nil {
		return nil, fmt.Errorf("token: unknown signing algorithm %q", algorithm)
	}
	if _, ok := method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("token: algorithm %q is not symmetric", algorithm)
	}
	if accessTTL <= 0 {
		accessTTL = defaultAccessTTL
	}
	if refreshTTL <= 0 {
		refreshTTL = defaultRefreshTTL
	}
	return &Codec{
		secret:     []byte(secret),
		method:     method,
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}, nil
}

// IssueAccess signs an access token for the subject.
func (c *Codec) IssueAccess(subject, email string) (string, error) {
	return c.issue(subject, email, c.accessTTL)
}

// IssueRefresh signs a refresh token for the subject. Issuance only:
// there is no exchange endpoint, the token simply outlives the access one.
func (c *Codec) IssueRefresh(subject, email string) (string, error) {
	return c.issue(subject, email, c.refreshTTL)
}

func (c *Codec) issue(subject, email string, ttl time.Duration) (string, error) {
	now := time.Now().UTC()
	claims := Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(c.method, claims).SignedString(c.secret)
}

// Decode verifies signature, algorithm and expiry, then returns the claim
// set. The error is one of the package sentinels wrapping the underlying
// parser error.
func (c *Codec) Decode(raw string) (*Claims, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
		if t.Method.Alg() != c.method.Alg() {
			return nil, ErrAlgorithm
		}
		return c.secret, nil
	})
	if err != nil {
		return nil, classify(err)
	}
	if !parsed.Valid {
		return nil, fmt.Errorf("%w: parsed token not valid", ErrMalformed)
	}
	return claims, nil
}

func classify(err error) error {
	switch {
	case errors.Is(err, ErrAlgorithm):
		return fmt.Errorf("%w: %v", ErrAlgorithm, err)
	case errors.Is(err, jwt.ErrTokenExpired):
		return fmt.Errorf("%w: %v", ErrExpired, err)
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return fmt.Errorf("%w: %v", ErrSignature, err)
	default:
		return fmt.Errorf("%w: %v", ErrMalformed, err)
	}
}
