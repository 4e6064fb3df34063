package api

import "context"

// Staff endpoints return bare payloads, no envelope.

func (c *Client) ListStaff(ctx context.Context) ([]Staff, error) {
	var staff []Staff
	if err := c.Get(ctx, adminBase+"/staff", &staff); err != nil {
		return nil, err
	}
	return staff, nil
}

func (c *Client) CreateStaff(ctx context.Context, member Staff) (Staff, error) {
	var created Staff
	if err := c.Post(ctx, adminBase+"/staff", member, &created); err != nil {
		return Staff{}, err
	}
	return created, nil
}

func (c *Client) UpdateStaff(ctx context.Context, staffID string, member Staff) (Staff, error) {
	var updated Staff
	if err := c.Put(ctx, adminBase+"/staff/"+staffID, member, &updated); err != nil {
		return Staff{}, err
	}
	return updated, nil
}

func (c *Client) DeleteStaff(ctx context.Context, staffID string) error {
	return c.Delete(ctx, adminBase+"/staff/"+staffID)
}
