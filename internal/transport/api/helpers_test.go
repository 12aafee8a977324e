package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidLuhn(t *testing.T) {
	cases := []struct {
		code string
		want bool
	}{
		{code: "4242424242424242", want: true},
		{code: "4111111111111111", want: true},
		{code: "5555555555554444", want: true},
		{code: "4242424242424241", want: false},
		{code: "79927398713", want: true},
		{code: "79927398710", want: false},
		{code: "", want: false},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, isValidLuhn(c.code), c.code)
	}
}
