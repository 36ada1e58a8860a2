package apischema_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tgsdk/apischema"
)

func TestFormatSchema(t *testing.T) {
	t.Parallel()

	schema := &apischema.Schema{
		Types: []apischema.Type{
			{
				Name: "User",
				Fields: []apischema.Field{
					{Name: "id", Type: "int64"},
					{Name: "username", Type: "string", Optional: true},
				},
			},
		},
		Methods: []apischema.Method{
			{
				Name: "sendMessage",
				Parameters: []apischema.Parameter{
					{Name: "chat_id", Type: "int64", Required: true},
					{Name: "parse_mode", Type: "string", Required: false},
				},
			},
		},
	}

	out := apischema.FormatSchema(schema)

	assert.Contains(t, out, "Types (1):")
	assert.Contains(t, out, "Methods (1):")
	assert.Contains(t, out, "username string (optional)")
	assert.Contains(t, out, "parse_mode string (optional)")
	assert.Contains(t, out, "chat_id int64\n")

	// Types section precedes methods section.
	assert.Less(t, strings.Index(out, "User"), strings.Index(out, "sendMessage"))
}

func TestFormatSchema_Nil(t *testing.T) {
	t.Parallel()

	assert.Empty(t, apischema.FormatSchema(nil))
}
