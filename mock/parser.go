package mock

import (
	"context"

	"github.com/tgsdk/apischema"
)

var _ apischema.Parser = (*Parser)(nil)

// Parser is a mock implementation of apischema.Parser.
type Parser struct {
	ParseFn func(ctx context.Context, html string) (*apischema.Schema, error)
}

func (p *Parser) Parse(ctx context.Context, html string) (*apischema.Schema, error) {
	return p.ParseFn(ctx, html)
}
