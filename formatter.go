package apischema

import (
	"fmt"
	"strings"
)

// FormatSchema renders a schema as a human-readable listing, types first,
// then methods. Intended for terminal display, not machine consumption.
func FormatSchema(schema *Schema) string {
	if schema == nil {
		return ""
	}

	var b strings.Builder

	fmt.Fprintf(&b, "Types (%d):\n", len(schema.Types))
	for _, t := range schema.Types {
		fmt.Fprintf(&b, "  %s\n", t.Name)
		for _, f := range t.Fields {
			marker := ""
			if f.Optional {
				marker = " (optional)"
			}
			fmt.Fprintf(&b, "    %s %s%s\n", f.Name, f.Type, marker)
		}
	}

	fmt.Fprintf(&b, "\nMethods (%d):\n", len(schema.Methods))
	for _, m := range schema.Methods {
		fmt.Fprintf(&b, "  %s\n", m.Name)
		for _, p := range m.Parameters {
			marker := ""
			if !p.Required {
				marker = " (optional)"
			}
			fmt.Fprintf(&b, "    %s %s%s\n", p.Name, p.Type, marker)
		}
	}

	return b.String()
}
