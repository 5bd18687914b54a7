package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	cases := []struct {
		in   string
		want Language
		ok   bool
	}{
		{"ar", Arabic, true},
		{"en", English, true},
		{"EN", English, true},
		{"ar-BH", Arabic, true},
		{"en_US", English, true},
		{"fr", "", false},
		{"", "", false},
		{"not a tag!", "", false},
	}

	for _, tc := range cases {
		got, ok := Parse(tc.in)
		assert.Equal(t, tc.ok, ok, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}

	require.Equal(t, English, ParseOr("fr", English))
}

func TestNegotiateHonorsQValues(t *testing.T) {
	require.Equal(t, English, Negotiate("ar;q=0.5, en;q=0.9", Arabic))
	require.Equal(t, Arabic, Negotiate("ar-BH,en;q=0.8", English))
	require.Equal(t, English, Negotiate("", English))
	require.Equal(t, Arabic, Negotiate("de-DE", Arabic))
}

func TestLabels(t *testing.T) {
	require.Equal(t, "New Order", English.T(KeyOrderHeader))
	require.Equal(t, "طلب جديد", Arabic.T(KeyOrderHeader))
	require.Equal(t, "السعر عند الطلب", Language("fr").T(KeyPriceOnRequest))
	require.Equal(t, "unknown.key", English.T("unknown.key"))
}
