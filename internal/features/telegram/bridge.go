package telegram

import (
	"context"
	"errors"
)

// ErrContactDeclined is returned by RequestContact when the user refuses to
// share their phone number. Declining is an expected outcome, not a failure.
var ErrContactDeclined = errors.New("telegram: contact request declined")

// Contact is the result of a successful contact-share request.
type Contact struct {
	PhoneNumber string
}

// Bridge is the surface of the embedded Telegram client the Mini-App runs
// inside. The browser build talks to window.Telegram.WebApp; the CLI build
// uses EnvBridge; tests use fakes. A nil Bridge means "plain browser mode".
type Bridge interface {
	// Ready signals the host that the app finished loading. Must be called
	// exactly once per launch before anything else.
	Ready()

	// InitData returns the raw signed launch payload, or "" when the host
	// did not provide one.
	InitData() string

	// ShowAlert shows a user-visible message via the host's native UI.
	ShowAlert(message string)

	// RequestContact asks the user to share their phone number. Returns
	// ErrContactDeclined when the user refuses.
	RequestContact(ctx context.Context) (Contact, error)
}
