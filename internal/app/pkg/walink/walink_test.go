package walink

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"local with leading zero", "01012345678", "201012345678"},
		{"already international", "201012345678", "201012345678"},
		{"formatted", "+20 101 234-5678", "201012345678"},
		{"spaces and dashes", "0101-234 5678", "201012345678"},
		{"no leading zero", "1012345678", "201012345678"},
		{"empty", "", ""},
		{"no digits", "abc", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Normalize(tc.in, ""))
		})
	}
}

func TestNormalize_CustomCountryCode(t *testing.T) {
	assert.Equal(t, "9665012345", Normalize("05012345", "966"))
}

func TestURL(t *testing.T) {
	assert.Equal(t, "https://wa.me/201012345678", URL("01012345678", "20"))
	assert.Equal(t, "", URL("", "20"))
}
