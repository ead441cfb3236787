package slots

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidDay(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"2025-06-10", true},
		{"1999-01-01", true},
		{"2025-6-10", false},
		{"2025/06/10", false},
		{"20250610", false},
		{"2025-06-10 ", false},
		{"", false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, IsValidDay(tc.input), "input %q", tc.input)
	}
}

func TestIsValidTime(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"09:00", true},
		{"21:30", true},
		{"9:00", false},
		{"09.00", false},
		{"09:00:00", false},
		{"", false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, IsValidTime(tc.input), "input %q", tc.input)
	}
}
