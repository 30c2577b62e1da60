package model

import "github.com/shopspring/decimal"

// -----------------------------------------------------------------------------
// Catalog Types
// -----------------------------------------------------------------------------

// CatalogItem is one priceable item from GET /api/items.
type CatalogItem struct {
	ItemID       int    // Primary key (e.g., 1)
	DisplayOrder int    // Primary sort key for rendered rows
	Category     string // Category (e.g., "Restaurants")
	Name         string // Display name (e.g., "Meal, Inexpensive Restaurant")
}

// -----------------------------------------------------------------------------
// Price Types
// -----------------------------------------------------------------------------

// PriceObservation is one item's price summary for a city from GET /api/city_prices.
type PriceObservation struct {
	ItemID     int                 // Foreign key to CatalogItem (may be orphaned)
	Average    decimal.NullDecimal // Average price
	Lowest     decimal.NullDecimal // Lowest observed price
	Highest    decimal.NullDecimal // Highest observed price
	Currency   string              // Currency code (e.g., "USD")
	DataPoints *int                // Number of contributing entries, nil if not reported
}

// CityPrices is the result of a single price lookup for a city query.
type CityPrices struct {
	Name         string // City name as reported by the API, falls back to the query
	Currency     string // Currency code for every observation
	Observations []PriceObservation
}

// -----------------------------------------------------------------------------
// Report Types
// -----------------------------------------------------------------------------

// JoinedRow is a PriceObservation matched to its CatalogItem by item ID.
type JoinedRow struct {
	ItemID       int
	DisplayOrder int
	Category     string
	Name         string
	Average      decimal.NullDecimal
	Lowest       decimal.NullDecimal
	Highest      decimal.NullDecimal
	Currency     string
	DataPoints   *int
}
