package numx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseFloat(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want float64
	}{
		{"plain integer", "150", 150},
		{"decimal", "150.5", 150.5},
		{"leading whitespace", "  99 ", 99},
		{"trailing currency", "150 EGP", 150},
		{"trailing text no space", "150جنيه", 150},
		{"negative", "-10", -10},
		{"plus sign", "+5", 5},
		{"trailing dot", "150.", 150},
		{"empty", "", 0},
		{"whitespace only", "   ", 0},
		{"not a number", "abc", 0},
		{"lone sign", "-", 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ParseFloat(tc.in))
		})
	}
}

func TestParseQty(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want int
	}{
		{"plain", "3", 3},
		{"decimal truncates", "2.7", 2},
		{"zero falls back", "0", 1},
		{"negative falls back", "-2", 1},
		{"empty falls back", "", 1},
		{"garbage falls back", "abc", 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ParseQty(tc.in))
		})
	}
}
