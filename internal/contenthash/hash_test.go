package contenthash_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ara-lang/forest/internal/contenthash"
)

func TestXXHashIsDeterministic(t *testing.T) {
	h := contenthash.New()
	content := []byte("class Void {}")

	assert.Equal(t, h.Sum(content), h.Sum(content))
}

func TestXXHashDistinguishesContent(t *testing.T) {
	h := contenthash.New()
	assert.NotEqual(t, h.Sum([]byte("a")), h.Sum([]byte("b")))
}
