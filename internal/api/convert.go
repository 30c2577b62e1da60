package api

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/rickgao/numbeo-prices/internal/model"
)

// ToModel converts an APIItem to model.CatalogItem.
// item_id (or id), display_order and name are required.
func (i *APIItem) ToModel() (model.CatalogItem, error) {
	id := i.ItemID
	if id == nil {
		id = i.ID
	}
	if id == nil {
		return model.CatalogItem{}, fmt.Errorf("missing item_id")
	}
	if i.DisplayOrder == nil {
		return model.CatalogItem{}, fmt.Errorf("item %d: missing display_order", *id)
	}
	if i.Name == "" {
		return model.CatalogItem{}, fmt.Errorf("item %d: missing name", *id)
	}

	category := i.Category
	if category == "" {
		category = i.CategoryName
	}

	return model.CatalogItem{
		ItemID:       *id,
		DisplayOrder: *i.DisplayOrder,
		Category:     category,
		Name:         i.Name,
	}, nil
}

// ToModel converts an ItemsResponse to catalog items, in server order.
func (r *ItemsResponse) ToModel() ([]model.CatalogItem, error) {
	if r.Items == nil {
		return nil, fmt.Errorf("missing items")
	}

	raw := *r.Items
	items := make([]model.CatalogItem, 0, len(raw))
	for idx := range raw {
		item, err := raw[idx].ToModel()
		if err != nil {
			return nil, fmt.Errorf("items[%d]: %w", idx, err)
		}
		items = append(items, item)
	}
	return items, nil
}

// ToModel converts an APIPrice to model.PriceObservation in the given currency.
// item_id is required; prices may be null.
func (p *APIPrice) ToModel(currency string) (model.PriceObservation, error) {
	if p.ItemID == nil {
		return model.PriceObservation{}, fmt.Errorf("missing item_id")
	}

	return model.PriceObservation{
		ItemID:     *p.ItemID,
		Average:    p.AveragePrice,
		Lowest:     firstValid(p.LowestPrice, p.MinPrice),
		Highest:    firstValid(p.HighestPrice, p.MaxPrice),
		Currency:   currency,
		DataPoints: p.DataPoints,
	}, nil
}

// ToModel converts a CityPricesResponse to model.CityPrices.
// query is used as the city name when the API omits one.
func (r *CityPricesResponse) ToModel(query string) (*model.CityPrices, error) {
	if r.Prices == nil {
		return nil, fmt.Errorf("missing prices")
	}

	name := r.Name
	if name == "" {
		name = query
	}

	raw := *r.Prices
	observations := make([]model.PriceObservation, 0, len(raw))
	for idx := range raw {
		obs, err := raw[idx].ToModel(r.Currency)
		if err != nil {
			return nil, fmt.Errorf("prices[%d]: %w", idx, err)
		}
		observations = append(observations, obs)
	}

	return &model.CityPrices{
		Name:         name,
		Currency:     r.Currency,
		Observations: observations,
	}, nil
}

func firstValid(values ...decimal.NullDecimal) decimal.NullDecimal {
	for _, v := range values {
		if v.Valid {
			return v
		}
	}
	return decimal.NullDecimal{}
}
