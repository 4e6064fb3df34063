package telegram

import (
	"context"
	"sync"

	"foodbot-miniapp/internal/features/initdata"
)

// Session is what the embedded host hands the app at launch: the raw signed
// payload plus the unverified user parsed out of it.
type Session struct {
	InitData string
	User     initdata.User
}

// Reader detects the embedded Telegram host and captures its session once
// per launch. Absence of the host is a first-class result, never an error.
type Reader struct {
	bridge Bridge

	once     sync.Once
	session  Session
	embedded bool
}

func NewReader(bridge Bridge) *Reader {
	return &Reader{bridge: bridge}
}

// Read returns the captured session and whether the app runs embedded.
// The first call signals ready and snapshots the init-data string before any
// other bridge interaction; some hosts invalidate it lazily.
func (r *Reader) Read() (Session, bool) {
	if r.bridge == nil {
		return Session{}, false
	}

	r.once.Do(func() {
		r.bridge.Ready()

		raw := r.bridge.InitData()
		if raw == "" {
			return
		}

		session := Session{InitData: raw}
		if parsed, err := initdata.Parse(raw); err == nil {
			session.User = parsed.User
		}

		r.session = session
		r.embedded = true
	})

	return r.session, r.embedded
}

// IsEmbedded reports whether a Telegram host was detected. Triggers capture
// on first use, same as Read.
func (r *Reader) IsEmbedded() bool {
	_, embedded := r.Read()
	return embedded
}

// RequestContact forwards the native contact-share request to the host.
func (r *Reader) RequestContact(ctx context.Context) (Contact, error) {
	if r.bridge == nil {
		return Contact{}, ErrContactDeclined
	}
	return r.bridge.RequestContact(ctx)
}

// ShowAlert surfaces a message through the host when embedded; a no-op
// otherwise so callers do not need to branch.
func (r *Reader) ShowAlert(message string) {
	if r.bridge == nil {
		return
	}
	r.bridge.ShowAlert(message)
}
