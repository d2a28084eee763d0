package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeTruckNumber(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"kda 123-x", "KDA123X"},
		{" KDA123X ", "KDA123X"},
		{"kda-123 x", "KDA123X"},
		{"", ""},
		{"  ", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeTruckNumber(tt.raw))
	}
}
