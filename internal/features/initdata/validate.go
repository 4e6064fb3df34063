package initdata

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"net/url"
	"sort"
	"strings"
)

// secretSeed is the fixed key Telegram uses to derive the per-bot secret for
// Mini-App payloads.
const secretSeed = "WebAppData"

// Validate reports whether the raw init-data carries a valid signature for
// the given bot token. Malformed input yields false, never a panic: callers
// branch on the result instead of handling errors.
func Validate(raw, botToken string) bool {
	values, err := url.ParseQuery(raw)
	if err != nil {
		return false
	}

	hash := values.Get("hash")
	if hash == "" {
		return false
	}
	values.Del("hash")

	computed := hex.EncodeToString(sign(checkString(values), botToken))
	return hmac.Equal([]byte(computed), []byte(hash))
}

// checkString builds the canonical form the signature covers: every field
// except hash as "key=value" lines, keys sorted, joined by newlines.
func checkString(values url.Values) string {
	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, key := range keys {
		for _, value := range values[key] {
			pairs = append(pairs, key+"="+value)
		}
	}
	return strings.Join(pairs, "\n")
}

// sign derives the bot secret from the token, then signs the check string
// with it. Both stages are HMAC-SHA256.
func sign(checkString, botToken string) []byte {
	derivation := hmac.New(sha256.New, []byte(secretSeed))
	derivation.Write([]byte(botToken))
	secret := derivation.Sum(nil)

	mac := hmac.New(sha256.New, secret)
	mac.Write([]byte(checkString))
	return mac.Sum(nil)
}
