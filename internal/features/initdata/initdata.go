// Package initdata parses and verifies the signed payload a Telegram
// Mini-App host injects at launch. Verification here is advisory: the
// backend repeats it with the bot token it alone holds.
package initdata

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"time"
)

// User is the profile Telegram embeds in the init-data "user" field. It is
// unverified on its own; only the payload signature vouches for it.
type User struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Username  string `json:"username"`
}

// DisplayName returns the best human-readable name available.
func (u User) DisplayName() string {
	if u.FirstName != "" {
		return u.FirstName
	}
	if u.Username != "" {
		return u.Username
	}
	return "Guest"
}

// InitData is the decoded launch payload.
type InitData struct {
	User     User
	AuthDate time.Time
	QueryID  string
	Hash     string
}

// Parse decodes a raw init-data query string. It does not check the
// signature; use Validate for that.
func Parse(raw string) (InitData, error) {
	values, err := url.ParseQuery(raw)
	if err != nil {
		return InitData{}, fmt.Errorf("parse init data: %w", err)
	}

	data := InitData{
		QueryID: values.Get("query_id"),
		Hash:    values.Get("hash"),
	}

	if userJSON := values.Get("user"); userJSON != "" {
		if err := json.Unmarshal([]byte(userJSON), &data.User); err != nil {
			return InitData{}, fmt.Errorf("decode init data user: %w", err)
		}
	}

	if authDate := values.Get("auth_date"); authDate != "" {
		unix, err := strconv.ParseInt(authDate, 10, 64)
		if err != nil {
			return InitData{}, fmt.Errorf("decode init data auth_date: %w", err)
		}
		data.AuthDate = time.Unix(unix, 0)
	}

	return data, nil
}
