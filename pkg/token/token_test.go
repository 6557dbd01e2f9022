package token

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerate(t *testing.T) {
	token, err := Generate(8)
	assert.NoError(t, err)
	assert.Equal(t, 8, len(token))

	token2, err := Generate(8)
	assert.NoError(t, err)
	assert.NotEqual(t, token, token2)

	rx := regexp.MustCompile(`^[A-Za-z0-9_-]+$`)
	for _, n := range []int{1, 12, 64} {
		token, err := Generate(n)
		assert.NoError(t, err)
		assert.Equal(t, n, len(token))
		assert.Regexp(t, rx, token)
	}
}
