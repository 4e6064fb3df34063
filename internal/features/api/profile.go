package api

import "context"

// Me fetches the authenticated profile. Used right after login to decide
// whether the phone-capture flow is needed.
func (c *Client) Me(ctx context.Context) (Profile, error) {
	var profile Profile
	if err := c.Get(ctx, "/api/v1/me", &profile); err != nil {
		return Profile{}, err
	}
	return profile, nil
}

type phoneUpdateRequest struct {
	Phone  string `json:"phone"`
	Source string `json:"source"`
}

// UpdatePhone persists a phone number. Source is "telegram" for the native
// contact share and "manual" for typed entry.
func (c *Client) UpdatePhone(ctx context.Context, phone, source string) error {
	return c.Post(ctx, "/update-phone", phoneUpdateRequest{Phone: phone, Source: source}, nil)
}
