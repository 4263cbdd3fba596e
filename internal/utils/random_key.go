package utils

import (
	"crypto/rand"
	"fmt"
)

const randomKeyAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// RandomKeyLength is the length of server-generated PIX key values.
const RandomKeyLength = 32

// GenerateRandomKey generates a random lowercase-alphanumeric string of the given
// length, drawn from crypto/rand. Collision probability is negligible at expected
// scale; global uniqueness is still enforced by the key store on insert.
func GenerateRandomKey(length int) (string, error) {
	if length <= 0 {
		return "", fmt.Errorf("length must be positive")
	}
	b := make([]byte, length)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	for i := range b {
		b[i] = randomKeyAlphabet[int(b[i])%len(randomKeyAlphabet)]
	}
	return string(b), nil
}
