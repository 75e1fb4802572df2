package token

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
)

// ErrInvalidLength is returned when a token of zero or negative length is requested
var ErrInvalidLength = errors.New("token length must be positive")

// Generate returns a crypto-secure random string of length n
// The string is made of URL safe base64 characters: A-Z, a-z, 0-9, - and _
func Generate(n int) (string, error) {
	if n <= 0 {
		return "", ErrInvalidLength
	}

	// every 3 bytes encode to 4 characters
	b := make([]byte, (n*3+3)/4)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}

	return base64.RawURLEncoding.EncodeToString(b)[0:n], nil
}

// MustGenerate is Generate, but panics on error
func MustGenerate(n int) string {
	t, err := Generate(n)
	if err != nil {
		panic(err)
	}

	return t
}
