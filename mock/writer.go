package mock

import (
	"context"

	"github.com/tgsdk/apischema"
)

var _ apischema.SchemaWriter = (*SchemaWriter)(nil)

// SchemaWriter is a mock implementation of apischema.SchemaWriter.
type SchemaWriter struct {
	WriteSchemaFn func(ctx context.Context, schema *apischema.Schema) error
}

func (w *SchemaWriter) WriteSchema(ctx context.Context, schema *apischema.Schema) error {
	return w.WriteSchemaFn(ctx, schema)
}
