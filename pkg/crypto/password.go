package crypto

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

const (
	// DefaultCost is the default bcrypt cost
	DefaultCost = 12
	// MaxPasswordBytes is the longest input bcrypt accepts
	MaxPasswordBytes = 72
)

// ErrPasswordTooLong is returned for passwords over MaxPasswordBytes
var ErrPasswordTooLong = bcrypt.ErrPasswordTooLong

var (
	bcryptGenerateFromPassword = bcrypt.GenerateFromPassword
	cost                       = DefaultCost
)

// SetCost overrides the bcrypt work factor. Values outside the bcrypt range
// fall back to DefaultCost.
func SetCost(c int) {
	if c < bcrypt.MinCost || c > bcrypt.MaxCost {
		c = DefaultCost
	}
	cost = c
}

// Cost returns the configured bcrypt work factor
func Cost() int {
	return cost
}

// HashPassword hashes a password using bcrypt with a random salt
func HashPassword(password string) (string, error) {
	if len(password) > MaxPasswordBytes {
		return "", ErrPasswordTooLong
	}
	bytes, err := bcryptGenerateFromPassword([]byte(password), cost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", ErrPasswordTooLong
		}
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(bytes), nil
}

// CheckPassword compares a password with a hash
func CheckPassword(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// IsHash reports whether value already looks like a bcrypt hash
func IsHash(value string) bool {
	_, err := bcrypt.Cost([]byte(value))
	return err == nil
}
