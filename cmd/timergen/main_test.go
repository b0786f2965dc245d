package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDurationArg(t *testing.T) {
	tests := []struct {
		arg  string
		want time.Duration
	}{
		{"60", time.Minute},
		{"12.5", 12500 * time.Millisecond},
		{"0.04", 40 * time.Millisecond},
		{"1m30s", 90 * time.Second},
		{"2.5h", 150 * time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.arg, func(t *testing.T) {
			got, err := parseDurationArg(tt.arg)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseDurationArgInvalid(t *testing.T) {
	for _, arg := range []string{"", "abc", "1x", "--"} {
		_, err := parseDurationArg(arg)
		assert.Error(t, err, "arg %q", arg)
	}
}
