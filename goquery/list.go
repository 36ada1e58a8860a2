package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// DecodeList returns the trimmed text of each list item. Blank items are
// dropped and duplicates collapse, keeping first-occurrence order; list
// items on this page are short enum-like labels where repetition would
// indicate a documentation error. Non-list blocks decode to nil.
func (b Block) DecodeList() []string {
	if b.Kind != BlockList || b.sel == nil {
		return nil
	}

	seen := make(map[string]bool)
	var items []string
	b.sel.ChildrenFiltered("li").Each(func(_ int, li *goquery.Selection) {
		text := strings.TrimSpace(li.Text())
		if text == "" || seen[text] {
			return
		}
		seen[text] = true
		items = append(items, text)
	})

	return items
}
