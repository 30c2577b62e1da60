package report

import (
	"cmp"
	"slices"
	"strings"

	"github.com/rickgao/numbeo-prices/internal/model"
)

// IndexCatalog maps item IDs to catalog items. A duplicate ID keeps the
// last item seen.
func IndexCatalog(catalog []model.CatalogItem) map[int]model.CatalogItem {
	index := make(map[int]model.CatalogItem, len(catalog))
	for _, item := range catalog {
		index[item.ItemID] = item
	}
	return index
}

// Join emits one row per item ID present in both the catalog and the
// observations. A repeated observation for the same item replaces the
// earlier one. Observations without a catalog entry are dropped, and
// catalog items without an observation produce no row. Rows are returned
// sorted.
func Join(catalog []model.CatalogItem, prices []model.PriceObservation) []model.JoinedRow {
	index := IndexCatalog(catalog)

	rows := make([]model.JoinedRow, 0, len(prices))
	seen := make(map[int]int, len(prices)) // item ID -> index in rows
	for _, p := range prices {
		item, ok := index[p.ItemID]
		if !ok {
			continue
		}
		row := model.JoinedRow{
			ItemID:       item.ItemID,
			DisplayOrder: item.DisplayOrder,
			Category:     item.Category,
			Name:         item.Name,
			Average:      p.Average,
			Lowest:       p.Lowest,
			Highest:      p.Highest,
			Currency:     p.Currency,
			DataPoints:   p.DataPoints,
		}
		if i, dup := seen[p.ItemID]; dup {
			rows[i] = row
			continue
		}
		seen[p.ItemID] = len(rows)
		rows = append(rows, row)
	}

	Sort(rows)
	return rows
}

// Sort orders rows by display order, then name (byte-wise, case-sensitive),
// then item ID.
func Sort(rows []model.JoinedRow) {
	slices.SortStableFunc(rows, func(a, b model.JoinedRow) int {
		if c := cmp.Compare(a.DisplayOrder, b.DisplayOrder); c != 0 {
			return c
		}
		if c := strings.Compare(a.Name, b.Name); c != 0 {
			return c
		}
		return cmp.Compare(a.ItemID, b.ItemID)
	})
}
