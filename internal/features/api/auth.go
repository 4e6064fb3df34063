package api

import (
	"context"
	"fmt"
	"net/http"

	"foodbot-miniapp/internal/features/roles"
)

// ExchangeTelegram trades raw init-data for a backend session. The payload
// travels as a header, not the body: it is already URL-encoded and some
// proxies mangle large JSON-escaped bodies.
func (c *Client) ExchangeTelegram(ctx context.Context, initDataRaw string) (AuthResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/v1/auth/telegram", nil)
	if err != nil {
		return AuthResponse{}, fmt.Errorf("build auth request: %w", err)
	}
	req.Header.Set(headerInitData, initDataRaw)

	var resp AuthResponse
	if err := c.do(req, &resp); err != nil {
		return AuthResponse{}, err
	}
	return resp, nil
}

// adminLoginRequest matches the staff panel login form. The backend calls
// the field "username" but treats it as an email.
type adminLoginRequest struct {
	Username string     `json:"username"`
	Password string     `json:"password"`
	Role     roles.Role `json:"role"`
}

type adminLoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// AdminLogin authenticates a staff member by credentials and role, the
// fallback path when no Telegram host is present.
func (c *Client) AdminLogin(ctx context.Context, username, password string, role roles.Role) (string, error) {
	body := adminLoginRequest{Username: username, Password: password, Role: role}

	var resp adminLoginResponse
	if err := c.Post(ctx, "/api/v1/admin/login", body, &resp); err != nil {
		return "", err
	}
	return resp.AccessToken, nil
}
