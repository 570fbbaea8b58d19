package utils

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestGenerateUUIDv7_TimeOrdered(t *testing.T) {
	first := GenerateUUIDv7()
	second := GenerateUUIDv7()

	assert.Equal(t, uuid.Version(7), first.Version())
	assert.NotEqual(t, first, second)
	assert.Less(t, first.String(), second.String())
}

func TestGenerateUUIDv7_FallsBackToRandom(t *testing.T) {
	orig := newUUIDv7
	t.Cleanup(func() { newUUIDv7 = orig })
	newUUIDv7 = func() (uuid.UUID, error) { return uuid.Nil, errors.New("clock unavailable") }

	id := GenerateUUIDv7()
	assert.NotEqual(t, uuid.Nil, id)
	assert.Equal(t, uuid.Version(4), id.Version())
}
