package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Table holds a decoded field table: column names in header order and one
// mapping per body row.
type Table struct {
	Columns []string
	Rows    []Row
}

// Row maps a column name to trimmed cell text.
type Row map[string]string

// DecodeTable decodes the block's table element. A missing header or body
// section yields zero columns or zero rows rather than an error; some
// tables on the page are malformed without invalidating the whole parse.
//
// Body cells are zipped positionally against the header columns. A row
// with fewer cells than the header is partially filled: trailing columns
// are simply absent from that row's mapping. Cells beyond the header
// column count are dropped. Non-table blocks decode to an empty table.
func (b Block) DecodeTable() Table {
	var t Table
	if b.Kind != BlockTable || b.sel == nil {
		return t
	}

	b.sel.Find("thead th").Each(func(_ int, cell *goquery.Selection) {
		t.Columns = append(t.Columns, strings.TrimSpace(cell.Text()))
	})

	b.sel.Find("tbody tr").Each(func(_ int, row *goquery.Selection) {
		r := make(Row)
		row.ChildrenFiltered("td").Each(func(i int, cell *goquery.Selection) {
			if i >= len(t.Columns) {
				return
			}
			r[t.Columns[i]] = strings.TrimSpace(cell.Text())
		})
		t.Rows = append(t.Rows, r)
	})

	return t
}
