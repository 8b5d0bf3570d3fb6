package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidUsername(t *testing.T) {
	valid := []string{"abc", "alice", "a_b-c9", strings.Repeat("a", 20)}
	for _, name := range valid {
		assert.True(t, ValidUsername(name), "%q should be valid", name)
	}

	invalid := []string{"", "ab", strings.Repeat("a", 21), "has space", "bad!char", "dot.name"}
	for _, name := range invalid {
		assert.False(t, ValidUsername(name), "%q should be invalid", name)
	}
}

func TestValidPassword(t *testing.T) {
	assert.True(t, ValidPassword("abc"))
	assert.True(t, ValidPassword("secret123"))
	assert.True(t, ValidPassword("with spaces ok!"))
	assert.True(t, ValidPassword(strings.Repeat("x", 20)))

	assert.False(t, ValidPassword(""))
	assert.False(t, ValidPassword("ab"))
	assert.False(t, ValidPassword(strings.Repeat("x", 21)))
}

func TestValidEmail(t *testing.T) {
	// Empty is allowed; the field is optional.
	assert.True(t, ValidEmail(""))
	assert.True(t, ValidEmail("alice@example.com"))

	assert.False(t, ValidEmail("not-an-email"))
	assert.False(t, ValidEmail("a@b"))
	assert.False(t, ValidEmail("a b@c.com"))
}
