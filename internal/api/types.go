package api

import "github.com/shopspring/decimal"

// API paths, relative to the configured base URL.
const (
	ItemsPath      = "/api/items"
	CityPricesPath = "/api/city_prices"
)

// ItemsResponse from GET /api/items
// Items is nil when the list is absent or null.
type ItemsResponse struct {
	Items *[]APIItem `json:"items"`
}

// APIItem represents a catalog entry from the Numbeo API.
// Pointer fields distinguish "absent" from zero.
type APIItem struct {
	ItemID       *int   `json:"item_id"`
	ID           *int   `json:"id"` // Older alias of item_id
	DisplayOrder *int   `json:"display_order"`
	Category     string `json:"category"`
	CategoryName string `json:"category_name"` // Alias of category
	Name         string `json:"name"`
}

// CityPricesResponse from GET /api/city_prices
// Prices is nil when the list is absent or null; an empty list is valid.
type CityPricesResponse struct {
	Name     string      `json:"name"`
	Currency string      `json:"currency"`
	Prices   *[]APIPrice `json:"prices"`
}

// APIPrice represents one item's price summary for a city.
type APIPrice struct {
	ItemID *int `json:"item_id"`

	// Null or absent prices decode as invalid NullDecimals
	AveragePrice decimal.NullDecimal `json:"average_price"`
	LowestPrice  decimal.NullDecimal `json:"lowest_price"`
	HighestPrice decimal.NullDecimal `json:"highest_price"`
	MinPrice     decimal.NullDecimal `json:"min_price"` // Alias of lowest_price
	MaxPrice     decimal.NullDecimal `json:"max_price"` // Alias of highest_price

	DataPoints *int `json:"data_points"`
}
