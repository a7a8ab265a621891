package turkish_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/durak-nlp/durak/turkish"
)

func TestLower(t *testing.T) {
	cases := []struct {
		input    string
		expected string
	}{
		{"İSTANBUL", "istanbul"},
		{"ILIK", "ılık"},
		{"DURAK", "durak"},
		{"Âlem", "âlem"},
		{"ÎMA", "îma"},
		{"SÛRET", "sûret"},
		{"ve", "ve"},
		{"", ""},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.expected, turkish.Lower(tc.input), "Lower(%q)", tc.input)
	}
}

func TestUpper(t *testing.T) {
	cases := []struct {
		input    string
		expected string
	}{
		{"istanbul", "İSTANBUL"},
		{"ılık", "ILIK"},
		{"durak", "DURAK"},
		{"âlem", "ÂLEM"},
		{"", ""},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.expected, turkish.Upper(tc.input), "Upper(%q)", tc.input)
	}
}

func TestLowerUpperRoundTrip(t *testing.T) {
	for _, word := range []string{"ışık", "istanbul", "çünkü", "öyle", "şey"} {
		assert.Equal(t, word, turkish.Lower(turkish.Upper(word)))
	}
}
