package report

import (
	"io"
	"slices"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/rickgao/numbeo-prices/internal/model"
)

// TitlePrefix starts the first line of every rendered report.
const TitlePrefix = "Numbeo cost-of-living prices for "

// Column separators.
const (
	cellSeparator = " | "
	lineJunction  = "-+-"
)

// Headers for the fixed columns, in order.
var Headers = []string{"Order", "Category", "Item", "Average", "Lowest", "Highest"}

// DataPointsHeader names the optional trailing column.
const DataPointsHeader = "Data Points"

// Options controls optional columns.
type Options struct {
	DataPoints bool
}

// Table is a rendered-ready report: every cell is already formatted.
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string
}

// Build joins catalog and prices and formats every cell.
func Build(city string, catalog []model.CatalogItem, prices []model.PriceObservation, opts Options) *Table {
	headers := slices.Clone(Headers)
	if opts.DataPoints {
		headers = append(headers, DataPointsHeader)
	}

	joined := Join(catalog, prices)
	rows := make([][]string, 0, len(joined))
	for _, r := range joined {
		row := []string{
			strconv.Itoa(r.DisplayOrder),
			r.Category,
			r.Name,
			FormatMoney(r.Average, r.Currency),
			FormatMoney(r.Lowest, r.Currency),
			FormatMoney(r.Highest, r.Currency),
		}
		if opts.DataPoints {
			row = append(row, FormatCount(r.DataPoints))
		}
		rows = append(rows, row)
	}

	return &Table{
		Title:   TitlePrefix + city,
		Headers: headers,
		Rows:    rows,
	}
}

// Widths returns each column's width: the widest of its header and cells,
// counted in runes.
func (t *Table) Widths() []int {
	widths := make([]int, len(t.Headers))
	for i, h := range t.Headers {
		widths[i] = utf8.RuneCountInString(h)
	}
	for _, row := range t.Rows {
		for i, cell := range row {
			if n := utf8.RuneCountInString(cell); n > widths[i] {
				widths[i] = n
			}
		}
	}
	return widths
}

// String renders the table: title, header, separator, then one line per row.
// Every line ends with a newline.
func (t *Table) String() string {
	widths := t.Widths()

	var b strings.Builder
	b.WriteString(t.Title)
	b.WriteByte('\n')

	writeRow(&b, t.Headers, widths)

	for i, w := range widths {
		if i > 0 {
			b.WriteString(lineJunction)
		}
		b.WriteString(strings.Repeat("-", w))
	}
	b.WriteByte('\n')

	for _, row := range t.Rows {
		writeRow(&b, row, widths)
	}
	return b.String()
}

// WriteTo writes the rendered table to w.
func (t *Table) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, t.String())
	return int64(n), err
}

// Render is Build followed by String.
func Render(city string, catalog []model.CatalogItem, prices []model.PriceObservation, opts Options) string {
	return Build(city, catalog, prices, opts).String()
}

func writeRow(b *strings.Builder, cells []string, widths []int) {
	for i, cell := range cells {
		if i > 0 {
			b.WriteString(cellSeparator)
		}
		b.WriteString(cell)
		if pad := widths[i] - utf8.RuneCountInString(cell); pad > 0 {
			b.WriteString(strings.Repeat(" ", pad))
		}
	}
	b.WriteByte('\n')
}
