package utils_test

import (
	"strings"
	"testing"

	"github.com/minibanco/minibanco/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateRandomKey_Length(t *testing.T) {
	key, err := utils.GenerateRandomKey(utils.RandomKeyLength)
	require.NoError(t, err)
	assert.Len(t, key, 32)
}

func TestGenerateRandomKey_Alphabet(t *testing.T) {
	key, err := utils.GenerateRandomKey(256)
	require.NoError(t, err)
	for _, r := range key {
		assert.True(t, (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'), "unexpected character %q", r)
	}
	assert.Equal(t, strings.ToLower(key), key)
}

func TestGenerateRandomKey_Distinct(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		key, err := utils.GenerateRandomKey(utils.RandomKeyLength)
		require.NoError(t, err)
		assert.False(t, seen[key], "duplicate key generated")
		seen[key] = true
	}
}

func TestGenerateRandomKey_InvalidLength(t *testing.T) {
	_, err := utils.GenerateRandomKey(0)
	assert.Error(t, err)
}
