package api

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/rickgao/numbeo-prices/internal/model"
)

func intPtr(v int) *int { return &v }

func TestAPIItemToModel(t *testing.T) {
	tests := []struct {
		name    string
		input   APIItem
		want    model.CatalogItem
		wantErr string
	}{
		{
			name:  "item_id and category",
			input: APIItem{ItemID: intPtr(1), DisplayOrder: intPtr(1), Category: "Restaurants", Name: "Meal"},
			want:  model.CatalogItem{ItemID: 1, DisplayOrder: 1, Category: "Restaurants", Name: "Meal"},
		},
		{
			name:  "id and category_name aliases",
			input: APIItem{ID: intPtr(8), DisplayOrder: intPtr(0), CategoryName: "Markets", Name: "Bread"},
			want:  model.CatalogItem{ItemID: 8, DisplayOrder: 0, Category: "Markets", Name: "Bread"},
		},
		{
			name:  "item_id wins over id",
			input: APIItem{ItemID: intPtr(3), ID: intPtr(4), DisplayOrder: intPtr(2), Name: "Water"},
			want:  model.CatalogItem{ItemID: 3, DisplayOrder: 2, Name: "Water"},
		},
		{
			name:    "missing id",
			input:   APIItem{DisplayOrder: intPtr(1), Name: "Meal"},
			wantErr: "missing item_id",
		},
		{
			name:    "missing display order",
			input:   APIItem{ItemID: intPtr(5), Name: "Meal"},
			wantErr: "item 5: missing display_order",
		},
		{
			name:    "missing name",
			input:   APIItem{ItemID: intPtr(5), DisplayOrder: intPtr(1)},
			wantErr: "item 5: missing name",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.input.ToModel()
			if tt.wantErr != "" {
				if err == nil || err.Error() != tt.wantErr {
					t.Fatalf("ToModel() error = %v, want %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ToModel() unexpected error: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ToModel() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestItemsResponseToModel(t *testing.T) {
	var resp ItemsResponse
	body := `{"items": [
		{"item_id": 2, "display_order": 5, "category": "Markets", "name": "Eggs"},
		{"item_id": 1, "display_order": 5, "category": "Markets", "name": "Apples"},
		{"item_id": 9, "name": "Broken"}
	]}`
	if err := json.Unmarshal([]byte(body), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	_, err := resp.ToModel()
	if err == nil || err.Error() != "items[2]: item 9: missing display_order" {
		t.Errorf("ToModel() error = %v, want items[2] display_order failure", err)
	}

	valid := (*resp.Items)[:2]
	resp.Items = &valid
	items, err := resp.ToModel()
	if err != nil {
		t.Fatalf("ToModel() unexpected error: %v", err)
	}
	// Server order is preserved; sorting happens in the report.
	if items[0].Name != "Eggs" || items[1].Name != "Apples" {
		t.Errorf("items = %+v, want server order", items)
	}
}

func TestCityPricesResponseToModel(t *testing.T) {
	var resp CityPricesResponse
	body := `{"currency": "JPY", "prices": [
		{"item_id": 1, "average_price": 1200, "lowest_price": 800, "highest_price": 2000, "min_price": 1},
		{"item_id": 2}
	]}`
	if err := json.Unmarshal([]byte(body), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	prices, err := resp.ToModel("Tokyo, Japan")
	if err != nil {
		t.Fatalf("ToModel() unexpected error: %v", err)
	}
	if prices.Name != "Tokyo, Japan" {
		t.Errorf("Name = %q, want %q", prices.Name, "Tokyo, Japan")
	}

	first := prices.Observations[0]
	if got := first.Lowest.Decimal.String(); got != "800" {
		t.Errorf("Lowest = %s, want 800 (lowest_price preferred over min_price)", got)
	}
	if first.Currency != "JPY" {
		t.Errorf("Currency = %q, want %q", first.Currency, "JPY")
	}

	second := prices.Observations[1]
	if second.Average.Valid || second.Lowest.Valid || second.Highest.Valid {
		t.Errorf("absent prices should be null, got %+v", second)
	}
	if second.DataPoints != nil {
		t.Errorf("DataPoints = %d, want nil", *second.DataPoints)
	}
}

func TestResponseListsRequired(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		convert func([]byte) error
		wantErr string
	}{
		{name: "items absent", body: `{}`, convert: convertItems, wantErr: "missing items"},
		{name: "items null", body: `{"items": null}`, convert: convertItems, wantErr: "missing items"},
		{name: "null items body", body: `null`, convert: convertItems, wantErr: "missing items"},
		{name: "items empty", body: `{"items": []}`, convert: convertItems},
		{name: "prices absent", body: `{"currency": "EUR"}`, convert: convertPrices, wantErr: "missing prices"},
		{name: "prices null", body: `{"prices": null}`, convert: convertPrices, wantErr: "missing prices"},
		{name: "null prices body", body: `null`, convert: convertPrices, wantErr: "missing prices"},
		{name: "prices empty", body: `{"currency": "EUR", "prices": []}`, convert: convertPrices},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.convert([]byte(tt.body))
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("ToModel() unexpected error: %v", err)
				}
				return
			}
			if err == nil || err.Error() != tt.wantErr {
				t.Errorf("ToModel() error = %v, want %q", err, tt.wantErr)
			}
		})
	}
}

func convertItems(body []byte) error {
	var resp ItemsResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return err
	}
	_, err := resp.ToModel()
	return err
}

func convertPrices(body []byte) error {
	var resp CityPricesResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return err
	}
	_, err := resp.ToModel("Berlin, Germany")
	return err
}
