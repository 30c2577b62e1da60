package api

import (
	"context"
	"fmt"
	"net/url"

	"github.com/rickgao/numbeo-prices/internal/model"
)

// GetCityPrices fetches price observations for a "City, Country" query.
// An empty price list is not an error.
func (c *Client) GetCityPrices(ctx context.Context, query string) (*model.CityPrices, error) {
	if err := c.requireKey(); err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("query", query)

	var resp CityPricesResponse
	status, body, err := c.get(ctx, CityPricesPath, params, &resp)
	if err != nil {
		return nil, fmt.Errorf("get city prices %q: %w", query, err)
	}

	prices, err := resp.ToModel(query)
	if err != nil {
		return nil, fmt.Errorf("get city prices %q: %w", query, &APIError{
			StatusCode: status,
			Message:    err.Error(),
			Body:       body,
		})
	}

	c.logger.Debug("fetched city prices",
		"city", prices.Name,
		"currency", prices.Currency,
		"observations", len(prices.Observations),
	)
	return prices, nil
}
