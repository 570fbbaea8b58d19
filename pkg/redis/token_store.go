package redis

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"
)

const refreshKeyPrefix = "refresh:"

// ErrTokenNotFound is returned when a refresh token was never issued or was already used
var ErrTokenNotFound = errors.New("refresh token not found")

// RefreshTokenStore tracks issued refresh tokens so each one can be redeemed once.
// Tokens are stored by digest, never in plain text.
type RefreshTokenStore struct{}

var (
	setTokenValue = Set
	getDelToken   = GetDel
)

// NewRefreshTokenStore creates a new store backed by the package client
func NewRefreshTokenStore() *RefreshTokenStore {
	return &RefreshTokenStore{}
}

// Save records a refresh token issued to userID
func (s *RefreshTokenStore) Save(ctx context.Context, userID, token string, ttl time.Duration) error {
	return setTokenValue(ctx, tokenKey(token), userID, ttl)
}

// Consume removes the token and returns the user it was issued to
func (s *RefreshTokenStore) Consume(ctx context.Context, token string) (string, error) {
	userID, err := getDelToken(ctx, tokenKey(token))
	if err != nil {
		if IsNil(err) {
			return "", ErrTokenNotFound
		}
		return "", err
	}
	return userID, nil
}

func tokenKey(token string) string {
	sum := sha256.Sum256([]byte(token))
	return refreshKeyPrefix + hex.EncodeToString(sum[:])
}
