package initdata

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testBotToken = "7210987654:TESTTOKENabcDEFghiJKLmnoPQRstuVWXyz"

	// Signed fixture: hash covers auth_date, query_id and user.
	testInitData = "auth_date=1717171717&query_id=AAHdF6IQAAAAAN0XohDhrOrc&user=%7B%22id%22%3A279058397%2C%22first_name%22%3A%22Abebe%22%2C%22last_name%22%3A%22Bekele%22%2C%22username%22%3A%22abebe_b%22%7D&hash=da5db641e55b2e02073beecf273b5b8b439c8d8da2583998cad63d2a66133eb4"

	// Same fields, different wire order, same hash.
	testInitDataShuffled = "user=%7B%22id%22%3A279058397%2C%22first_name%22%3A%22Abebe%22%2C%22last_name%22%3A%22Bekele%22%2C%22username%22%3A%22abebe_b%22%7D&hash=da5db641e55b2e02073beecf273b5b8b439c8d8da2583998cad63d2a66133eb4&auth_date=1717171717&query_id=AAHdF6IQAAAAAN0XohDhrOrc"
)

func TestValidate(t *testing.T) {
	assert.True(t, Validate(testInitData, testBotToken))
}

func TestValidateFieldOrderIndependent(t *testing.T) {
	assert.True(t, Validate(testInitDataShuffled, testBotToken))
}

func TestValidateRejectsTampering(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"changed auth_date", strings.Replace(testInitData, "1717171717", "1717171718", 1)},
		{"changed user name", strings.Replace(testInitData, "Abebe", "Kebede", 1)},
		{"changed query_id", strings.Replace(testInitData, "AAHdF6IQ", "AAHdF6IX", 1)},
		{"changed hash", strings.Replace(testInitData, "da5db641", "da5db642", 1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.False(t, Validate(tt.data, testBotToken))
		})
	}
}

func TestValidateWrongToken(t *testing.T) {
	assert.False(t, Validate(testInitData, "1234:some-other-token"))
}

func TestValidateMalformed(t *testing.T) {
	assert.False(t, Validate("", testBotToken))
	assert.False(t, Validate("auth_date=1&user=x", testBotToken)) // no hash field
	assert.False(t, Validate("%zz=bad", testBotToken))            // unparseable query
}

func TestParse(t *testing.T) {
	data, err := Parse(testInitData)
	require.NoError(t, err)

	assert.Equal(t, int64(279058397), data.User.ID)
	assert.Equal(t, "Abebe", data.User.FirstName)
	assert.Equal(t, "Bekele", data.User.LastName)
	assert.Equal(t, "abebe_b", data.User.Username)
	assert.Equal(t, int64(1717171717), data.AuthDate.Unix())
	assert.Equal(t, "AAHdF6IQAAAAAN0XohDhrOrc", data.QueryID)
}

func TestParseMalformed(t *testing.T) {
	_, err := Parse("user=%7Bnot-json&auth_date=1")
	assert.Error(t, err)

	_, err = Parse("auth_date=yesterday")
	assert.Error(t, err)
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "Abebe", User{FirstName: "Abebe", Username: "abebe_b"}.DisplayName())
	assert.Equal(t, "abebe_b", User{Username: "abebe_b"}.DisplayName())
	assert.Equal(t, "Guest", User{}.DisplayName())
}
