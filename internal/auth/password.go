package auth

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrWeakPassword    = errors.New("password must be at least 8 characters")
	ErrMalformedDigest = errors.New("malformed password digest")
)

// Hasher defines one-way password hashing and verification.
// This abstracts the underlying algorithm (currently bcrypt), keeping the
// rest of the code independent of the digest format.
type Hasher interface {
	// Hash generates a salted digest from a plaintext password.
	// Two calls with the same input produce different digests.
	Hash(plain string) (string, error)

	// Verify compares a plaintext password with a stored digest.
	// A mismatch is (false, nil); a digest that is not in a recognized
	// format is (false, ErrMalformedDigest).
	Verify(plain, digest string) (bool, error)
}

// BcryptHasher implements Hasher using bcrypt.
type BcryptHasher struct {
	cost int
}

// bcrypt only uses the first 72 bytes of input; truncate explicitly so
// longer passphrases hash and verify instead of erroring.
const maxPasswordBytes = 72

func truncatePassword(plain string) []byte {
	b := []byte(plain)
	if len(b) > maxPasswordBytes {
		b = b[:maxPasswordBytes]
	}
	return b
}

// Ensure BcryptHasher implements Hasher
var _ Hasher = (*BcryptHasher)(nil)

// NewBcryptHasher creates a Hasher with the default bcrypt cost.
func NewBcryptHasher() *BcryptHasher {
	return &BcryptHasher{cost: bcrypt.DefaultCost}
}

// Hash generates a salted bcrypt digest of the password.
func (h *BcryptHasher) Hash(plain string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword(truncatePassword(plain), h.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(digest), nil
}

// Verify checks the password against a stored digest.
// Verification dispatches on the digest's format prefix, so the default
// algorithm can change later while digests written under the old one keep
// verifying.
func (h *BcryptHasher) Verify(plain, digest string) (bool, error) {
	// bcrypt digests carry a "$2a$"/"$2b$" version prefix
	if !strings.HasPrefix(digest, "$2") {
		return false, ErrMalformedDigest
	}

	err := bcrypt.CompareHashAndPassword([]byte(digest), truncatePassword(plain))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		// Structurally broken digest (truncated, bad cost, bad salt)
		return false, fmt.Errorf("%w: %v", ErrMalformedDigest, err)
	}
}

// ValidatePassword checks if a new password meets minimum requirements.
func ValidatePassword(plain string) error {
	if len(plain) < 8 {
		return ErrWeakPassword
	}
	return nil
}
