package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		name     string
		input    string
		expected string
	}{
		{"Simple name", "Electronics", "electronics"},
		{"Spaces become dashes", "Home & Kitchen", "home-kitchen"},
		{"Consecutive separators collapse", "Buy 1 -- Get 1", "buy-1-get-1"},
		{"Leading and trailing junk trimmed", "  !Deals!  ", "deals"},
		{"Already slug-like", "mobile-phones", "mobile-phones"},
		{"Empty string", "", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Slugify(tc.input))
		})
	}
}
