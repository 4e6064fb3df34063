package auth

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"foodbot-miniapp/internal/common/logger"
	"foodbot-miniapp/internal/features/api"
	"foodbot-miniapp/internal/features/initdata"
	"foodbot-miniapp/internal/features/roles"
	"foodbot-miniapp/internal/features/telegram"
)

// State of the authentication handshake.
type State string

const (
	StateIdle            State = "idle"
	StateDetecting       State = "detecting"
	StateAuthenticating  State = "authenticating"
	StateAuthenticated   State = "authenticated"
	StateUnauthenticated State = "unauthenticated"
)

var (
	// ErrNotEmbedded means no Telegram host was detected; the app continues
	// in browser mode and may offer the manual staff login instead.
	ErrNotEmbedded = errors.New("auth: not running inside telegram")

	// ErrInvalidInitData is the advisory client-side rejection. The backend
	// would refuse the payload anyway; failing here just saves a round trip.
	ErrInvalidInitData = errors.New("auth: init data failed local validation")

	// ErrAlreadyRunning guards against a second concurrent handshake, e.g.
	// a mount effect firing twice.
	ErrAlreadyRunning = errors.New("auth: handshake already in flight")
)

const reopenMessage = "Failed to verify your session. Please reopen the app."

// Gateway drives the handshake: detect the Telegram host, optionally check
// the payload locally, exchange it for a backend session, persist it, then
// kick off the best-effort phone check. One handshake per app start.
type Gateway struct {
	reader   *telegram.Reader
	sessions *SessionStore
	client   *api.Client

	// botToken enables the local advisory validation when non-empty. The
	// production bundle never carries the real secret; the backend stays
	// the authority either way.
	botToken string

	mu       sync.Mutex
	state    State
	inFlight bool
	identity Identity
}

type GatewayOption func(*Gateway)

// WithLocalValidation turns on the defense-in-depth init-data check.
func WithLocalValidation(botToken string) GatewayOption {
	return func(g *Gateway) {
		g.botToken = botToken
	}
}

func NewGateway(reader *telegram.Reader, sessions *SessionStore, client *api.Client, opts ...GatewayOption) *Gateway {
	gateway := &Gateway{
		reader:   reader,
		sessions: sessions,
		client:   client,
		state:    StateIdle,
	}
	for _, opt := range opts {
		opt(gateway)
	}
	return gateway
}

func (g *Gateway) State() State {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state
}

// Identity returns who we are, if authenticated.
func (g *Gateway) Identity() (Identity, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.state != StateAuthenticated {
		return Identity{}, false
	}
	return g.identity, true
}

// Resume restores a persisted session without a network round trip, for
// silent continuation across reloads. Expiry surfaces later as a 401.
func (g *Gateway) Resume(ctx context.Context) bool {
	session, ok := g.sessions.Read(ctx)
	if !ok {
		return false
	}

	g.mu.Lock()
	g.state = StateAuthenticated
	g.identity = session.User
	g.mu.Unlock()

	logger.Debug().Int64("user_id", session.User.ID).Msg("session resumed")
	return true
}

// Run performs the handshake once. Re-entry while a handshake is in flight
// returns ErrAlreadyRunning without side effects.
func (g *Gateway) Run(ctx context.Context) error {
	g.mu.Lock()
	if g.inFlight {
		g.mu.Unlock()
		return ErrAlreadyRunning
	}
	g.inFlight = true
	g.state = StateDetecting
	g.mu.Unlock()

	defer func() {
		g.mu.Lock()
		g.inFlight = false
		g.mu.Unlock()
	}()

	session, embedded := g.reader.Read()
	if !embedded {
		g.setState(StateUnauthenticated)
		logger.Info().Msg("telegram host not detected, browser mode")
		return ErrNotEmbedded
	}

	if g.botToken != "" && !initdata.Validate(session.InitData, g.botToken) {
		g.setState(StateUnauthenticated)
		g.reader.ShowAlert(reopenMessage)
		return ErrInvalidInitData
	}

	// Cache the raw payload before the exchange so follow-up requests in
	// this load can send it as a header.
	if err := g.sessions.WriteInitData(ctx, session.InitData); err != nil {
		logger.Warn().Err(err).Msg("init data not cached")
	}

	g.setState(StateAuthenticating)

	resp, err := g.client.ExchangeTelegram(ctx, session.InitData)
	if err != nil {
		g.setState(StateUnauthenticated)
		g.reader.ShowAlert(reopenMessage)
		return fmt.Errorf("telegram exchange: %w", err)
	}

	identity := Identity{
		ID:    resp.User.ID,
		Name:  resp.User.DisplayName(),
		Role:  roles.Canonical(resp.User.Role),
		Phone: resp.User.Phone,
	}
	if identity.ID == 0 {
		identity.ID = session.User.ID
	}
	if identity.Name == "" || identity.Name == "Guest" {
		identity.Name = session.User.DisplayName()
	}

	if err := g.sessions.Write(ctx, Session{
		Token:     resp.SessionToken,
		User:      identity,
		CreatedAt: time.Now(),
	}); err != nil {
		g.setState(StateUnauthenticated)
		return fmt.Errorf("persist session: %w", err)
	}

	g.mu.Lock()
	g.state = StateAuthenticated
	g.identity = identity
	g.mu.Unlock()

	logger.Info().Int64("user_id", identity.ID).Msg("authenticated via telegram")

	// Best effort: a missing phone triggers the capture flow, but nothing
	// here can revert the authenticated state.
	g.ensurePhone(ctx)

	return nil
}

// Login is the browser-mode fallback for staff: credentials plus a role
// instead of a Telegram payload.
func (g *Gateway) Login(ctx context.Context, username, password string, role roles.Role) error {
	if !roles.Known(role) {
		return fmt.Errorf("auth: unknown role %q", role)
	}

	g.mu.Lock()
	if g.inFlight {
		g.mu.Unlock()
		return ErrAlreadyRunning
	}
	g.inFlight = true
	g.state = StateAuthenticating
	g.mu.Unlock()

	defer func() {
		g.mu.Lock()
		g.inFlight = false
		g.mu.Unlock()
	}()

	token, err := g.client.AdminLogin(ctx, username, password, role)
	if err != nil {
		g.setState(StateUnauthenticated)
		return fmt.Errorf("admin login: %w", err)
	}

	identity := Identity{Name: username, Role: roles.Canonical(role)}
	if err := g.sessions.Write(ctx, Session{
		Token:     token,
		User:      identity,
		CreatedAt: time.Now(),
	}); err != nil {
		g.setState(StateUnauthenticated)
		return fmt.Errorf("persist session: %w", err)
	}

	g.mu.Lock()
	g.state = StateAuthenticated
	g.identity = identity
	g.mu.Unlock()

	logger.Info().Str("role", string(identity.Role)).Msg("authenticated via credentials")
	return nil
}

// Logout clears the session synchronously. In-flight requests holding the
// old token fail with 401 and must not resurrect it.
func (g *Gateway) Logout(ctx context.Context) {
	if err := g.sessions.Clear(ctx); err != nil {
		logger.Warn().Err(err).Msg("session clear failed")
	}

	g.mu.Lock()
	g.state = StateUnauthenticated
	g.identity = Identity{}
	g.mu.Unlock()
}

// Invalidate is the 401 hook: same as Logout, named for the caller's intent.
func (g *Gateway) Invalidate(ctx context.Context) {
	g.Logout(ctx)
}

// SubmitPhone normalizes and persists a manually entered phone number.
func (g *Gateway) SubmitPhone(ctx context.Context, raw string) (string, error) {
	normalized, err := NormalizePhone(raw)
	if err != nil {
		return "", err
	}
	if err := g.client.UpdatePhone(ctx, normalized, "manual"); err != nil {
		return "", fmt.Errorf("save phone: %w", err)
	}

	g.mu.Lock()
	g.identity.Phone = normalized
	g.mu.Unlock()
	return normalized, nil
}

// ensurePhone checks the profile for a phone number and, when missing,
// tries the native contact share. Declines and failures are logged only.
func (g *Gateway) ensurePhone(ctx context.Context) {
	profile, err := g.client.Me(ctx)
	if err != nil {
		logger.Warn().Err(err).Msg("phone check failed")
		return
	}
	if profile.Phone != "" {
		g.mu.Lock()
		g.identity.Phone = profile.Phone
		g.mu.Unlock()
		return
	}

	contact, err := g.reader.RequestContact(ctx)
	if err != nil {
		if errors.Is(err, telegram.ErrContactDeclined) {
			logger.Info().Msg("contact share declined, awaiting manual entry")
		} else {
			logger.Warn().Err(err).Msg("contact request failed")
		}
		return
	}

	normalized, err := NormalizePhone(contact.PhoneNumber)
	if err != nil {
		logger.Warn().Str("phone", contact.PhoneNumber).Msg("shared contact not a valid number")
		return
	}
	if err := g.client.UpdatePhone(ctx, normalized, "telegram"); err != nil {
		logger.Warn().Err(err).Msg("phone save failed")
		return
	}

	g.mu.Lock()
	g.identity.Phone = normalized
	g.mu.Unlock()
}

func (g *Gateway) setState(state State) {
	g.mu.Lock()
	g.state = state
	g.mu.Unlock()
}
