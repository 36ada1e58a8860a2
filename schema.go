package apischema

import (
	"context"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Field describes one field of a Type declaration.
type Field struct {
	Name        string `json:"name"`
	Type        string `json:"type"` // canonical type token, see Normalize
	Optional    bool   `json:"optional"`
	Description string `json:"description"`
}

// Parameter describes one parameter of a Method declaration.
// Unlike fields, parameters are required unless the documentation marks
// them optional, and their documented order is significant.
type Parameter struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Required    bool   `json:"required"`
	Description string `json:"description"`
}

// Type represents a named data shape declared by the documentation.
// Its name always begins with an uppercase letter.
type Type struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Fields      []Field `json:"fields"`
}

// Validate returns an error if the type contains invalid fields.
func (t *Type) Validate() error {
	if t.Name == "" {
		return Errorf(EINVALID, "type name required")
	}
	if !UpperLed(t.Name) {
		return Errorf(EINVALID, "type name %q must begin with an uppercase letter", t.Name)
	}
	return nil
}

// SetField inserts a field keeping Fields sorted by name. A field with the
// same name replaces the existing one, so field identity is the name alone.
func (t *Type) SetField(f Field) {
	i, found := slices.BinarySearchFunc(t.Fields, f, func(a, b Field) int {
		return strings.Compare(a.Name, b.Name)
	})
	if found {
		t.Fields[i] = f
		return
	}
	t.Fields = slices.Insert(t.Fields, i, f)
}

// Method represents a remote operation signature declared by the
// documentation. Its name always begins with a lowercase letter.
type Method struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Parameters  []Parameter `json:"parameters"`
}

// Validate returns an error if the method contains invalid fields.
func (m *Method) Validate() error {
	if m.Name == "" {
		return Errorf(EINVALID, "method name required")
	}
	if UpperLed(m.Name) {
		return Errorf(EINVALID, "method name %q must begin with a lowercase letter", m.Name)
	}
	return nil
}

// Schema is the terminal result of parsing one documentation page: the
// declared types and methods, each in document order and unique by name.
// A Schema is a read-only snapshot; nothing mutates it after the parse.
type Schema struct {
	Types   []Type   `json:"types"`
	Methods []Method `json:"methods"`
}

// UpperLed reports whether s begins with an uppercase letter. The leading
// letter case is the sole signal distinguishing a Type declaration from a
// Method declaration in the source page.
func UpperLed(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)
	return unicode.IsUpper(r)
}

// Parser extracts a Schema from a raw HTML document.
// Implementations do not perform network I/O; the document must be fully
// materialized before parsing begins.
type Parser interface {
	// Parse classifies the document's content blocks and assembles the
	// declared types and methods. Returns ESTRUCTURE if the content-region
	// marker is absent, EMISSINGCOLUMN or EAMBIGUOUS on broken tables.
	Parse(ctx context.Context, html string) (*Schema, error)
}

// Fetcher retrieves raw HTML from URLs.
type Fetcher interface {
	// Fetch retrieves the document at url. A non-success HTTP status is a
	// fetch failure. The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases client resources.
	Close() error
}

// SchemaWriter persists a schema outside the database, e.g. as a JSON file.
type SchemaWriter interface {
	WriteSchema(ctx context.Context, schema *Schema) error
}
