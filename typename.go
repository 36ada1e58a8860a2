package apischema

import "strings"

// Canonical type tokens produced by Normalize. Tokens use Go type syntax
// because the downstream binding generator emits Go source.
const (
	TokenInt64   = "int64"
	TokenBool    = "bool"
	TokenFloat64 = "float64"
	TokenString  = "string"
)

// arrayOfPrefix marks a sequence type phrase in the documentation,
// e.g. "Array of PhotoSize" or "Array of Array of Integer".
const arrayOfPrefix = "Array of "

// primitives maps documentation type phrases to canonical tokens. The page
// spells a handful of primitives in a fixed set of ways; union phrases that
// accept a string degrade to string.
var primitives = map[string]string{
	"Integer":             TokenInt64,
	"Int":                 TokenInt64,
	"Boolean":             TokenBool,
	"True":                TokenBool,
	"Float":               TokenFloat64,
	"Float number":        TokenFloat64,
	"String":              TokenString,
	"InputFile or String": TokenString,
	"Integer or String":   TokenString,
}

// Normalize maps a documentation type phrase to its canonical type token.
//
// "Array of X" phrases wrap the normalized remainder as a sequence token,
// recursing through nested wrapping. Known primitive phrases map through a
// fixed table. Anything else passes through unchanged: an unrecognized
// phrase names a nested declaration type and the caller needs the literal
// name. Normalize is total and pure; it never fails.
func Normalize(phrase string) string {
	if rest, ok := strings.CutPrefix(phrase, arrayOfPrefix); ok {
		return "[]" + Normalize(rest)
	}
	if token, ok := primitives[phrase]; ok {
		return token
	}
	return phrase
}
