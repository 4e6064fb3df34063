package api

import (
	"context"
	"io"
)

// ListMenu returns the menu, optionally limited to one category.
func (c *Client) ListMenu(ctx context.Context, category string) ([]MenuItem, error) {
	path := adminBase + "/menu"
	if category != "" {
		path += "?category=" + category
	}

	var wrapped envelope
	if err := c.Get(ctx, path, &wrapped); err != nil {
		return nil, err
	}

	var items []MenuItem
	if err := decodeEnveloped(wrapped, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *Client) CreateMenuItem(ctx context.Context, item MenuItem) (MenuItem, error) {
	var wrapped envelope
	if err := c.Post(ctx, adminBase+"/menu", item, &wrapped); err != nil {
		return MenuItem{}, err
	}

	var created MenuItem
	if err := decodeEnveloped(wrapped, &created); err != nil {
		return MenuItem{}, err
	}
	return created, nil
}

func (c *Client) UpdateMenuItem(ctx context.Context, itemID string, item MenuItem) (MenuItem, error) {
	var wrapped envelope
	if err := c.Put(ctx, adminBase+"/menu/"+itemID, item, &wrapped); err != nil {
		return MenuItem{}, err
	}

	var updated MenuItem
	if err := decodeEnveloped(wrapped, &updated); err != nil {
		return MenuItem{}, err
	}
	return updated, nil
}

func (c *Client) DeleteMenuItem(ctx context.Context, itemID string) error {
	return c.Delete(ctx, adminBase+"/menu/"+itemID)
}

// SetMenuItemAvailability flips the sold-out switch without resending the
// whole item.
func (c *Client) SetMenuItemAvailability(ctx context.Context, itemID string, available bool) error {
	return c.Put(ctx, adminBase+"/menu/"+itemID, map[string]bool{"available": available}, nil)
}

type imageUploadResponse struct {
	URL string `json:"url"`
}

// UploadMenuImage pushes an item photo as multipart form data and returns
// the hosted URL.
func (c *Client) UploadMenuImage(ctx context.Context, fileName string, content io.Reader) (string, error) {
	upload := &Upload{Field: "file", FileName: fileName, Content: content}

	var resp imageUploadResponse
	if err := c.Post(ctx, adminBase+"/upload/image", upload, &resp); err != nil {
		return "", err
	}
	return resp.URL, nil
}
