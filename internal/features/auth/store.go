package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"foodbot-miniapp/internal/features/roles"
	"foodbot-miniapp/internal/platform/storage"
)

// Well-known storage keys, mirroring the localStorage layout the browser
// frontends use so a backend inspecting either sees the same shape.
const (
	keyToken    = "auth_token"
	keySession  = "auth_session"
	keyInitData = "telegram_init_data"
)

// Identity is who the backend says we are.
type Identity struct {
	ID    int64      `json:"id"`
	Name  string     `json:"name"`
	Role  roles.Role `json:"role,omitempty"`
	Phone string     `json:"phone,omitempty"`
}

// Session is an authenticated backend identity plus its bearer credential.
type Session struct {
	Token     string    `json:"token"`
	User      Identity  `json:"user"`
	CreatedAt time.Time `json:"created_at"`
}

// SessionStore owns the persisted session. At most one session exists at a
// time; writes overwrite, Clear removes everything including the cached
// init-data. Callers re-read rather than cache: a logout elsewhere must be
// observed on the next request.
type SessionStore struct {
	store storage.Storage
}

func NewSessionStore(store storage.Storage) *SessionStore {
	return &SessionStore{store: store}
}

func (s *SessionStore) Write(ctx context.Context, session Session) error {
	encoded, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := s.store.Set(ctx, keySession, string(encoded)); err != nil {
		return fmt.Errorf("persist session: %w", err)
	}
	// The bare token lives under its own key so request signing does not
	// deserialize the whole session.
	if err := s.store.Set(ctx, keyToken, session.Token); err != nil {
		return fmt.Errorf("persist token: %w", err)
	}
	return nil
}

func (s *SessionStore) Read(ctx context.Context) (Session, bool) {
	raw, err := s.store.Get(ctx, keySession)
	if err != nil {
		return Session{}, false
	}

	var session Session
	if err := json.Unmarshal([]byte(raw), &session); err != nil || session.Token == "" {
		return Session{}, false
	}
	return session, true
}

func (s *SessionStore) Clear(ctx context.Context) error {
	for _, key := range []string{keySession, keyToken, keyInitData} {
		if err := s.store.Delete(ctx, key); err != nil {
			return fmt.Errorf("clear %s: %w", key, err)
		}
	}
	return nil
}

// Token implements api.Credentials.
func (s *SessionStore) Token(ctx context.Context) (string, bool) {
	token, err := s.store.Get(ctx, keyToken)
	if err != nil || token == "" {
		return "", false
	}
	return token, true
}

// InitData implements api.Credentials: the raw payload captured at launch is
// reused as an auth header within the same load.
func (s *SessionStore) InitData(ctx context.Context) (string, bool) {
	raw, err := s.store.Get(ctx, keyInitData)
	if err != nil || raw == "" {
		return "", false
	}
	return raw, true
}

func (s *SessionStore) WriteInitData(ctx context.Context, raw string) error {
	if err := s.store.Set(ctx, keyInitData, raw); err != nil {
		return fmt.Errorf("persist init data: %w", err)
	}
	return nil
}
