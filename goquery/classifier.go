// Package goquery implements schema extraction from the Telegram Bot API
// documentation page using CSS selection over the parsed HTML tree.
//
// The page carries no explicit nesting: declarations are encoded as a flat
// sequence of headings, paragraphs, tables and lists inside one container
// element. Classification converts that sequence into tagged blocks once;
// everything downstream works off the block sequence and never re-inspects
// raw markup.
package goquery

import (
	"strings"
	"unicode"

	"github.com/PuerkitoBio/goquery"
	"github.com/tgsdk/apischema"
)

// contentRegionSelector locates the single element bounding the relevant
// documentation content. Absence is fatal for the whole parse.
const contentRegionSelector = "#dev_page_content"

// tableClassMarker is the exact class carried by field tables. The page
// uses plain table elements for unrelated layout, so only marked tables
// are admitted.
const tableClassMarker = "table"

// BlockKind identifies the variant of a classified content block.
type BlockKind int

// Block kinds, in no particular order. The zero value is invalid.
const (
	BlockHeading BlockKind = iota + 1
	BlockParagraph
	BlockTable
	BlockList
)

// String returns a short name for the block kind.
func (k BlockKind) String() string {
	switch k {
	case BlockHeading:
		return "heading"
	case BlockParagraph:
		return "paragraph"
	case BlockTable:
		return "table"
	case BlockList:
		return "list"
	}
	return "invalid"
}

// Block is one classified unit of page content. Heading and paragraph
// blocks carry their text; table and list blocks keep a reference to the
// underlying element and are decoded lazily, per declaration.
type Block struct {
	Kind BlockKind
	Text string

	sel *goquery.Selection
}

// Classify parses the document and returns its content blocks in document
// order. Order is the only structural signal the page provides and must be
// preserved exactly.
//
// Admission rules per element, anything else is skipped:
//   - h4: admitted only if its text has no internal whitespace. Prose-style
//     sub-headings contain spaces and never name a declaration.
//   - p: always admitted, text captured verbatim.
//   - table: admitted only with the exact field-table class marker.
//   - ul: admitted if it has at least one list item.
//
// Returns ESTRUCTURE if the content-region marker is absent.
func Classify(html string) ([]Block, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, apischema.Errorf(apischema.EINVALID, "failed to parse HTML: %v", err)
	}
	return classify(doc)
}

func classify(doc *goquery.Document) ([]Block, error) {
	region := doc.Find(contentRegionSelector)
	if region.Length() == 0 {
		return nil, apischema.Errorf(apischema.ESTRUCTURE, "content region %q not found in document", contentRegionSelector)
	}

	var blocks []Block
	region.First().Children().Each(func(_ int, sel *goquery.Selection) {
		switch goquery.NodeName(sel) {
		case "h4":
			text := sel.Text()
			if text == "" || strings.ContainsFunc(text, unicode.IsSpace) {
				return
			}
			blocks = append(blocks, Block{Kind: BlockHeading, Text: text})
		case "p":
			blocks = append(blocks, Block{Kind: BlockParagraph, Text: sel.Text()})
		case "table":
			if sel.AttrOr("class", "") != tableClassMarker {
				return
			}
			blocks = append(blocks, Block{Kind: BlockTable, sel: sel})
		case "ul":
			if sel.ChildrenFiltered("li").Length() == 0 {
				return
			}
			blocks = append(blocks, Block{Kind: BlockList, sel: sel})
		}
	})

	return blocks, nil
}
