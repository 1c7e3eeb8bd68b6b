package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected string
	}{
		{name: "spaces and parentheses", raw: "Lab 1 (Makeup)", expected: "lab1makeup"},
		{name: "already normalised", raw: "lab1", expected: "lab1"},
		{name: "empty", raw: "", expected: ""},
		{name: "only stripped characters", raw: " ( ) ", expected: ""},
		{name: "punctuation kept", raw: "HW-2: Pointers!", expected: "hw-2:pointers!"},
		{name: "tabs kept", raw: "Lab\t3", expected: "lab\t3"},
		{name: "brackets kept", raw: "Lab [4]", expected: "lab[4]"},
		{name: "unicode kept", raw: "Práctica Ñ (A)", expected: "prácticaña"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeName(tt.raw))
		})
	}
}

func TestNormalizeName_Stable(t *testing.T) {
	raw := "Lab 10 (Linked Lists)"
	first := NormalizeName(raw)
	assert.Equal(t, first, NormalizeName(raw))
	assert.Equal(t, first, NormalizeName(first))
}
