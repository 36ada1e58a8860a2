package goquery

import (
	"context"

	"github.com/tgsdk/apischema"
	"golang.org/x/sync/errgroup"
)

// Ensure Parser implements apischema.Parser at compile time.
var _ apischema.Parser = (*Parser)(nil)

// Parser extracts a schema from a raw HTML document.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse classifies the document's content blocks, then assembles types and
// methods. The two extraction passes read the same immutable block
// sequence and share no state, so they run as a fork/join pair; each pass
// owns its result collection and the first error cancels the join.
func (p *Parser) Parse(ctx context.Context, html string) (*apischema.Schema, error) {
	blocks, err := Classify(html)
	if err != nil {
		return nil, err
	}

	var (
		types   []apischema.Type
		methods []apischema.Method
	)

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		types, err = BuildTypes(blocks)
		return err
	})
	g.Go(func() error {
		var err error
		methods, err = BuildMethods(blocks)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &apischema.Schema{Types: types, Methods: methods}, nil
}
