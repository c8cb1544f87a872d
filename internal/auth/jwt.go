package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrTokenExpired means the signature checked out but the token is
	// past its embedded expiry.
	ErrTokenExpired = errors.New("token expired")
	// ErrTokenInvalid means the signature failed verification or the
	// token is structurally malformed.
	ErrTokenInvalid = errors.New("invalid token")
	// ErrMissingToken means no token was presented at all.
	ErrMissingToken = errors.New("authentication token required")
)

// TokenService issues and verifies signed, time-limited session tokens.
// The secret key and validity duration are fixed at construction and never
// mutated, so a single instance is safe for concurrent use.
type TokenService struct {
	secretKey []byte
	validity  time.Duration
}

// NewTokenService creates a token service with the given signing secret and
// token validity duration. secretKey should be a strong random string
// (e.g., 32 bytes).
func NewTokenService(secretKey string, validity time.Duration) *TokenService {
	return &TokenService{
		secretKey: []byte(secretKey),
		validity:  validity,
	}
}

// Validity returns the configured token lifetime.
func (s *TokenService) Validity() time.Duration {
	return s.validity
}

// Issue creates a signed HS256 token carrying the subject (the user's ID)
// and an absolute expiry of now + validity. Expiry lives inside the token
// itself; nothing is tracked server-side.
func (s *TokenService) Issue(subject string) (string, error) {
	now := time.Now()
	claims := &jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(now.Add(s.validity)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secretKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}

// Verify checks the token's signature and expiry, returning the embedded
// subject. Returns ErrTokenExpired for a well-signed but stale token and
// ErrTokenInvalid for anything tampered with or malformed.
func (s *TokenService) Verify(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(
		tokenString,
		claims,
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return s.secretKey, nil
		},
	)

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrTokenExpired
		}
		return "", fmt.Errorf("%w: %v", ErrTokenInvalid, err)
	}

	if !token.Valid || claims.Subject == "" {
		return "", ErrTokenInvalid
	}

	return claims.Subject, nil
}
