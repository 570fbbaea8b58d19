package utils

import (
	"github.com/google/uuid"
)

var newUUIDv7 = uuid.NewV7

// GenerateUUIDv7 returns a time-ordered id for new records, falling back to
// a random v4 if the v7 source fails.
func GenerateUUIDv7() uuid.UUID {
	if id, err := newUUIDv7(); err == nil {
		return id
	}
	return uuid.New()
}
