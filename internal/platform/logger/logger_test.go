package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeKVsRedactsSensitiveKeys(t *testing.T) {
	out := sanitizeKVs([]interface{}{
		"user_id", "u-1",
		"access_token", "eyJhbGciOi...",
		"response_text", "private words",
		"dangling",
	})

	assert.Equal(t, []interface{}{
		"user_id", "u-1",
		"access_token", "[REDACTED]",
		"response_text", "[REDACTED]",
		"dangling",
	}, out)
}

func TestNewModes(t *testing.T) {
	for _, mode := range []string{"dev", "prod", "test"} {
		l, err := New(mode)
		assert.NoError(t, err, mode)
		assert.NotNil(t, l.With("component", "test"))
	}
}
