package api

import "context"

func (c *Client) RestaurantSettings(ctx context.Context) (RestaurantSettings, error) {
	var settings RestaurantSettings
	if err := c.Get(ctx, adminBase+"/settings/restaurant", &settings); err != nil {
		return RestaurantSettings{}, err
	}
	return settings, nil
}

func (c *Client) UpdateRestaurantSettings(ctx context.Context, settings RestaurantSettings) (RestaurantSettings, error) {
	var updated RestaurantSettings
	if err := c.Put(ctx, adminBase+"/settings/restaurant", settings, &updated); err != nil {
		return RestaurantSettings{}, err
	}
	return updated, nil
}

type passwordChangeRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

func (c *Client) ChangePassword(ctx context.Context, current, updated string) error {
	return c.Put(ctx, adminBase+"/settings/password", passwordChangeRequest{
		CurrentPassword: current,
		NewPassword:     updated,
	}, nil)
}
