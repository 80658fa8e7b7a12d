package assistant

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in       string
		expected string
	}{
		{"André", "andre"},
		{"NATÁLIA", "natalia"},
		{"ação", "acao"},
		{"Projeto Alpha", "projeto alpha"},
		{"", ""},
		{"já normalizado", "ja normalizado"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, Normalize(tt.in), "input %q", tt.in)
	}
}

func TestNormalize_MatchingIsAccentInsensitive(t *testing.T) {
	assert.Equal(t, Normalize("Natália"), Normalize("natalia"))
	assert.Equal(t, Normalize("André"), Normalize("ANDRE"))
}
