package token

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerate(t *testing.T) {
	a := assert.New(t)
	valid := regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

	for _, n := range []int{1, 2, 3, 4, 8, 33} {
		token, err := Generate(n)
		a.NoError(err)
		a.Len(token, n)
		a.Regexp(valid, token)
	}

	token, _ := Generate(16)
	token2, _ := Generate(16)
	a.NotEqual(token, token2)

	_, err := Generate(0)
	a.Equal(ErrInvalidLength, err)

	a.Panics(func() {
		MustGenerate(-1)
	})
}
