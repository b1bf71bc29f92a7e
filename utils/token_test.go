package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateResetCode(t *testing.T) {
	for _, length := range []int{1, 6, 12} {
		code := GenerateResetCode(length)
		assert.Len(t, code, length)
		for _, r := range code {
			assert.True(t, r >= '0' && r <= '9', "reset codes are digits only, got %q", code)
		}
	}

	assert.Empty(t, GenerateResetCode(0))
}
