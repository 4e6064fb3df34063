package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizePhone(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"local with leading zero", "0912345678", "+251912345678"},
		{"bare subscriber number", "912345678", "+251912345678"},
		{"country code no plus", "251912345678", "+251912345678"},
		{"already international", "+251912345678", "+251912345678"},
		{"spaces and dashes", "09 12-34-56 78", "+251912345678"},
		{"seven prefix", "0712345678", "+251712345678"},
		{"telegram format", "+251 91 234 5678", "+251912345678"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := NormalizePhone(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestNormalizePhoneInvalid(t *testing.T) {
	cases := []struct {
		name string
		in   string
	}{
		{"empty", ""},
		{"too short", "0912345"},
		{"too long", "09123456789"},
		{"landline prefix", "0112345678"},
		{"six prefix", "0612345678"},
		{"letters only", "not a phone"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NormalizePhone(tc.in)
			assert.ErrorIs(t, err, ErrInvalidPhone)
		})
	}
}
