package model

import (
	"testing"

	"github.com/shopspring/decimal"
)

// TestModelTypes validates that model types can be instantiated correctly.
func TestModelTypes(t *testing.T) {
	t.Run("CatalogItem", func(t *testing.T) {
		item := CatalogItem{
			ItemID:       1,
			DisplayOrder: 1,
			Category:     "Restaurants",
			Name:         "Meal, Inexpensive Restaurant",
		}

		if item.ItemID != 1 {
			t.Errorf("ItemID = %d, want %d", item.ItemID, 1)
		}
		if item.Name != "Meal, Inexpensive Restaurant" {
			t.Errorf("Name = %q, want %q", item.Name, "Meal, Inexpensive Restaurant")
		}
	})

	t.Run("PriceObservation with null prices", func(t *testing.T) {
		obs := PriceObservation{
			ItemID:   1,
			Average:  decimal.NewNullDecimal(decimal.RequireFromString("25.00")),
			Currency: "USD",
		}

		if !obs.Average.Valid {
			t.Error("Average should be valid")
		}
		if obs.Lowest.Valid {
			t.Error("Lowest zero value should be invalid (null)")
		}
		if obs.DataPoints != nil {
			t.Errorf("DataPoints = %v, want nil", *obs.DataPoints)
		}
	})

	t.Run("CityPrices empty", func(t *testing.T) {
		cp := CityPrices{Name: "Nowhere, Atlantis", Currency: "EUR"}
		if len(cp.Observations) != 0 {
			t.Errorf("len(Observations) = %d, want 0", len(cp.Observations))
		}
	})
}
