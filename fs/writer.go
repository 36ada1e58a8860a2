// Package fs provides file-based output for extracted schemas.
package fs

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/tgsdk/apischema"
)

// Ensure Writer implements apischema.SchemaWriter at compile time.
var _ apischema.SchemaWriter = (*Writer)(nil)

// Writer writes a schema as an indented JSON file.
type Writer struct {
	path string
}

// NewWriter creates a new Writer that writes to the given file path.
// Parent directories are created as needed.
func NewWriter(path string) *Writer {
	return &Writer{path: path}
}

// WriteSchema writes the schema to disk as JSON.
func (w *Writer) WriteSchema(ctx context.Context, schema *apischema.Schema) error {
	if schema == nil {
		return apischema.Errorf(apischema.EINVALID, "schema required")
	}

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')

	dir := filepath.Dir(w.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	// Write to a temp file in the same directory, then rename, so a
	// partially written file never replaces a previous schema.
	tmp, err := os.CreateTemp(dir, filepath.Base(w.path)+".tmp*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}

	return os.Rename(tmp.Name(), w.path)
}
