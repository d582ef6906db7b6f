package compare

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// caseless is a string whose equality ignores ASCII case.
type caseless string

func (s caseless) Equals(other caseless) bool {
	if len(s) != len(other) {
		return false
	}

	for i := range len(s) {
		if lower(s[i]) != lower(other[i]) {
			return false
		}
	}

	return true
}

func lower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}

	return c
}

func TestEquals(t *testing.T) {
	t.Parallel()

	assert.True(t, Equals[caseless](caseless("Hello"), caseless("hELLO")))
	assert.False(t, Equals[caseless](caseless("Hello"), caseless("Help!")))
	assert.False(t, Equals[caseless](caseless("Hello"), caseless("Hell")))
}
