package service

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGenerateCode_Format проверяет формат сгенерированного кода
func TestGenerateCode_Format(t *testing.T) {
	generator := NewCodeGenerator()
	pattern := regexp.MustCompile(`^[A-Za-z0-9]{6}$`)

	for i := 0; i < 100; i++ {
		code := generator.GenerateCode()

		require.Len(t, string(code), CodeLength)
		assert.Regexp(t, pattern, string(code))
	}
}

// TestGenerateCode_Randomness проверяет что генератор не выдает
// один и тот же код постоянно
func TestGenerateCode_Randomness(t *testing.T) {
	generator := NewCodeGenerator()

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		seen[string(generator.GenerateCode())] = true
	}

	// При 62^6 вариантах 100 подряд одинаковых кодов означают сломанный генератор
	assert.Greater(t, len(seen), 1)
}
