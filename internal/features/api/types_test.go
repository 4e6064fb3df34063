package api

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeUnmarshalLayouts(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want time.Time
	}{
		{"rfc3339 with zone", `"2025-03-01T12:30:45Z"`, time.Date(2025, 3, 1, 12, 30, 45, 0, time.UTC)},
		{"rfc3339 fractional", `"2025-03-01T12:30:45.123456Z"`, time.Date(2025, 3, 1, 12, 30, 45, 123456000, time.UTC)},
		{"bare iso seconds", `"2025-03-01T12:30:45"`, time.Date(2025, 3, 1, 12, 30, 45, 0, time.UTC)},
		{"bare iso micros", `"2025-03-01T12:30:45.123456"`, time.Date(2025, 3, 1, 12, 30, 45, 123456000, time.UTC)},
		{"date only", `"2025-03-01"`, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var got Time
			require.NoError(t, json.Unmarshal([]byte(tc.raw), &got))
			assert.True(t, got.Time.Equal(tc.want), "got %v want %v", got.Time, tc.want)
		})
	}
}

func TestTimeUnmarshalEmpty(t *testing.T) {
	var got Time
	require.NoError(t, json.Unmarshal([]byte(`""`), &got))
	assert.True(t, got.IsZero())
}

func TestTimeUnmarshalUnsupported(t *testing.T) {
	var got Time
	err := json.Unmarshal([]byte(`"01/03/2025"`), &got)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported format")
}

func TestDecodeEnveloped(t *testing.T) {
	var raw envelope
	require.NoError(t, json.Unmarshal([]byte(`{"data": {"name": "Shiro"}, "success": true}`), &raw))

	var item MenuItem
	require.NoError(t, decodeEnveloped(raw, &item))
	assert.Equal(t, "Shiro", item.Name)

	var empty envelope
	require.NoError(t, json.Unmarshal([]byte(`{"success": true}`), &empty))
	assert.Error(t, decodeEnveloped(empty, &item))
}

func TestProfileDisplayName(t *testing.T) {
	assert.Equal(t, "Abebe Bekele", Profile{FirstName: "Abebe", LastName: "Bekele"}.DisplayName())
	assert.Equal(t, "Abebe", Profile{FirstName: "Abebe"}.DisplayName())
	assert.Equal(t, "abebe_b", Profile{Username: "abebe_b"}.DisplayName())
	assert.Equal(t, "Guest", Profile{}.DisplayName())
}
