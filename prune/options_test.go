package prune

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() zerolog.Logger {
	return zerolog.Nop()
}

func TestParseOptions(t *testing.T) {
	tests := []struct {
		input    string
		h        uint8
		k        uint8
		maxdepth uint8
	}{
		{"0;4;20", 0, 4, 20},
		{"11;2;20", 11, 2, 20},
		{"7;2;10", 7, 2, 10},
		{"0; 4; 20", 0, 4, 20},
	}
	for _, tt := range tests {
		h, k, maxdepth, err := ParseOptions(tt.input)
		require.NoError(t, err, "options %q", tt.input)
		assert.Equal(t, tt.h, h)
		assert.Equal(t, tt.k, k)
		assert.Equal(t, tt.maxdepth, maxdepth)
	}
}

func TestParseOptionsInvalid(t *testing.T) {
	for _, input := range []string{
		"", "0;4", "0;4;20;1", "a;4;20", "12;4;20", "0;3;20", "0;4;999",
	} {
		_, _, _, err := ParseOptions(input)
		assert.ErrorIs(t, err, ErrOptions, "options %q", input)
	}
}
