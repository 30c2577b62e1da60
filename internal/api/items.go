package api

import (
	"context"
	"fmt"

	"github.com/rickgao/numbeo-prices/internal/model"
)

// GetItems fetches the item catalog. Order is as returned by the server.
func (c *Client) GetItems(ctx context.Context) ([]model.CatalogItem, error) {
	if err := c.requireKey(); err != nil {
		return nil, err
	}

	var resp ItemsResponse
	status, body, err := c.get(ctx, ItemsPath, nil, &resp)
	if err != nil {
		return nil, fmt.Errorf("get items: %w", err)
	}

	items, err := resp.ToModel()
	if err != nil {
		return nil, fmt.Errorf("get items: %w", &APIError{
			StatusCode: status,
			Message:    err.Error(),
			Body:       body,
		})
	}

	c.logger.Debug("fetched catalog", "items", len(items))
	return items, nil
}
