package auth_test

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"foodbot-miniapp/internal/features/api"
	"foodbot-miniapp/internal/features/auth"
	"foodbot-miniapp/internal/features/roles"
	"foodbot-miniapp/internal/features/telegram"
	"foodbot-miniapp/internal/mockapi"
	"foodbot-miniapp/internal/platform/storage"
)

// Same signed fixture the init-data tests use; Debug mode on the stub
// disables the expiry check so the static auth_date keeps working.
const (
	testBotToken = "7210987654:TESTTOKENabcDEFghiJKLmnoPQRstuVWXyz"
	testInitData = "auth_date=1717171717&query_id=AAHdF6IQAAAAAN0XohDhrOrc&user=%7B%22id%22%3A279058397%2C%22first_name%22%3A%22Abebe%22%2C%22last_name%22%3A%22Bekele%22%2C%22username%22%3A%22abebe_b%22%7D&hash=da5db641e55b2e02073beecf273b5b8b439c8d8da2583998cad63d2a66133eb4"
)

type hostBridge struct {
	initData string
	phone    string

	alerts []string
}

func (h *hostBridge) Ready()           {}
func (h *hostBridge) InitData() string { return h.initData }

func (h *hostBridge) ShowAlert(message string) {
	h.alerts = append(h.alerts, message)
}

func (h *hostBridge) RequestContact(context.Context) (telegram.Contact, error) {
	if h.phone == "" {
		return telegram.Contact{}, telegram.ErrContactDeclined
	}
	return telegram.Contact{PhoneNumber: h.phone}, nil
}

type fixture struct {
	gateway  *auth.Gateway
	sessions *auth.SessionStore
	client   *api.Client
	bridge   *hostBridge
}

func newFixture(t *testing.T, bridge *hostBridge, opts ...auth.GatewayOption) *fixture {
	t.Helper()

	backend := mockapi.NewServer(mockapi.Config{
		BotToken: testBotToken,
		Origin:   "http://localhost:5173",
		Debug:    true,
	})
	server := httptest.NewServer(backend.Router())
	t.Cleanup(server.Close)

	sessions := auth.NewSessionStore(storage.NewMemory())
	client := api.NewClient(server.URL, sessions)

	var host telegram.Bridge
	if bridge != nil {
		host = bridge
	}
	reader := telegram.NewReader(host)

	return &fixture{
		gateway:  auth.NewGateway(reader, sessions, client, opts...),
		sessions: sessions,
		client:   client,
		bridge:   bridge,
	}
}

func TestHandshakeSuccess(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, &hostBridge{initData: testInitData, phone: "+251 91 122 3344"},
		auth.WithLocalValidation(testBotToken))

	require.NoError(t, f.gateway.Run(ctx))
	assert.Equal(t, auth.StateAuthenticated, f.gateway.State())

	identity, ok := f.gateway.Identity()
	require.True(t, ok)
	assert.Equal(t, int64(279058397), identity.ID)
	assert.Equal(t, "Abebe", identity.Name)
	assert.Equal(t, "+251911223344", identity.Phone)

	// The persisted token authenticates subsequent requests, and the shared
	// contact reached the backend profile.
	profile, err := f.client.Me(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(279058397), profile.ID)
	assert.Equal(t, "+251911223344", profile.Phone)

	session, ok := f.sessions.Read(ctx)
	require.True(t, ok)
	assert.NotEmpty(t, session.Token)
	assert.Empty(t, f.bridge.alerts)
}

func TestHandshakeContactDeclined(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, &hostBridge{initData: testInitData})

	require.NoError(t, f.gateway.Run(ctx))
	assert.Equal(t, auth.StateAuthenticated, f.gateway.State())

	// A declined share never reverts the authenticated state; the phone just
	// stays empty until manual entry.
	identity, ok := f.gateway.Identity()
	require.True(t, ok)
	assert.Empty(t, identity.Phone)

	normalized, err := f.gateway.SubmitPhone(ctx, "0911223344")
	require.NoError(t, err)
	assert.Equal(t, "+251911223344", normalized)

	profile, err := f.client.Me(ctx)
	require.NoError(t, err)
	assert.Equal(t, "+251911223344", profile.Phone)
}

func TestHandshakeRejectedLocally(t *testing.T) {
	ctx := context.Background()
	tampered := strings.Replace(testInitData, "Abebe", "Kebede", 1)
	f := newFixture(t, &hostBridge{initData: tampered}, auth.WithLocalValidation(testBotToken))

	err := f.gateway.Run(ctx)
	assert.ErrorIs(t, err, auth.ErrInvalidInitData)
	assert.Equal(t, auth.StateUnauthenticated, f.gateway.State())

	// Exactly one user-facing alert, and nothing persisted.
	require.Len(t, f.bridge.alerts, 1)
	assert.Contains(t, f.bridge.alerts[0], "reopen the app")
	_, ok := f.sessions.Token(ctx)
	assert.False(t, ok)
}

func TestHandshakeRejectedByBackend(t *testing.T) {
	ctx := context.Background()
	tampered := strings.Replace(testInitData, "da5db641", "da5db642", 1)
	f := newFixture(t, &hostBridge{initData: tampered})

	err := f.gateway.Run(ctx)
	require.Error(t, err)

	var apiErr *api.Error
	require.ErrorAs(t, err, &apiErr)
	assert.True(t, api.IsUnauthorized(err))

	assert.Equal(t, auth.StateUnauthenticated, f.gateway.State())
	require.Len(t, f.bridge.alerts, 1)
	_, ok := f.sessions.Token(ctx)
	assert.False(t, ok)
}

func TestHandshakeNotEmbedded(t *testing.T) {
	f := newFixture(t, nil)

	err := f.gateway.Run(context.Background())
	assert.ErrorIs(t, err, auth.ErrNotEmbedded)
	assert.Equal(t, auth.StateUnauthenticated, f.gateway.State())
}

func TestResume(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, nil)

	assert.False(t, f.gateway.Resume(ctx))

	require.NoError(t, f.sessions.Write(ctx, auth.Session{
		Token: "persisted-token",
		User:  auth.Identity{ID: 7, Name: "Sara"},
	}))

	require.True(t, f.gateway.Resume(ctx))
	assert.Equal(t, auth.StateAuthenticated, f.gateway.State())
	identity, ok := f.gateway.Identity()
	require.True(t, ok)
	assert.Equal(t, "Sara", identity.Name)
}

func TestLogout(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, &hostBridge{initData: testInitData})

	require.NoError(t, f.gateway.Run(ctx))
	f.gateway.Logout(ctx)

	assert.Equal(t, auth.StateUnauthenticated, f.gateway.State())
	_, ok := f.gateway.Identity()
	assert.False(t, ok)
	_, ok = f.sessions.Token(ctx)
	assert.False(t, ok)
	_, ok = f.sessions.InitData(ctx)
	assert.False(t, ok)
}

func TestCredentialLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("admin", func(t *testing.T) {
		f := newFixture(t, nil)
		require.NoError(t, f.gateway.Login(ctx, "admin@foodbot.test", "admin", roles.RoleAdmin))
		identity, ok := f.gateway.Identity()
		require.True(t, ok)
		assert.Equal(t, roles.RoleAdmin, identity.Role)
	})

	t.Run("manager resolves to admin", func(t *testing.T) {
		f := newFixture(t, nil)
		require.NoError(t, f.gateway.Login(ctx, "manager@foodbot.test", "manager", roles.RoleManager))
		identity, ok := f.gateway.Identity()
		require.True(t, ok)
		assert.Equal(t, roles.RoleAdmin, identity.Role)

		// The aliased role passes the admin-only gate.
		_, err := f.client.DashboardStats(ctx)
		assert.NoError(t, err)
	})

	t.Run("wrong password", func(t *testing.T) {
		f := newFixture(t, nil)
		err := f.gateway.Login(ctx, "admin@foodbot.test", "nope", roles.RoleAdmin)
		require.Error(t, err)
		assert.Equal(t, auth.StateUnauthenticated, f.gateway.State())
	})

	t.Run("unknown role", func(t *testing.T) {
		f := newFixture(t, nil)
		err := f.gateway.Login(ctx, "admin@foodbot.test", "admin", roles.Role("superuser"))
		require.Error(t, err)
	})
}
