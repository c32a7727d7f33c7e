package foresterr_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ara-lang/forest/internal/foresterr"
)

func TestWrapUnwrap(t *testing.T) {
	cause := errors.New("disk full")
	err := foresterr.Wrap(foresterr.IO, "writing cache entry", cause)

	assert.Equal(t, cause, errors.Unwrap(err))
	assert.Contains(t, err.Error(), "io")
	assert.Contains(t, err.Error(), "writing cache entry")
	assert.Contains(t, err.Error(), "disk full")
}

func TestIsMatchesByKind(t *testing.T) {
	err := foresterr.New(foresterr.CacheMiss, "a.ara")
	target := foresterr.New(foresterr.CacheMiss, "")

	assert.True(t, errors.Is(err, target))
	assert.False(t, errors.Is(err, foresterr.New(foresterr.Decode, "")))
}
