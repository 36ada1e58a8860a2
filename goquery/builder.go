package goquery

import (
	"strings"

	"github.com/tgsdk/apischema"
)

// Column names used by declaration tables. Type tables use Field, method
// tables use Parameter and add Required; the two kinds share Type and
// Description.
const (
	columnField       = "Field"
	columnParameter   = "Parameter"
	columnType        = "Type"
	columnRequired    = "Required"
	columnDescription = "Description"
)

// optionalPrefix marks an optional field in its free-text description.
// Method parameters use the Required column instead; the two conventions
// are distinct in the source and must not be unified.
const optionalPrefix = "Optional"

// scanState tracks the grouping heuristic while walking the block
// sequence: the previous block's kind, the name and description pending
// from the most recent heading, and whether a shape-bearing block has
// already been consumed for that heading.
type scanState struct {
	prev      BlockKind
	name      string
	desc      string
	shapeSeen bool
}

// pendingType reports whether the pending name belongs to a Type
// declaration. The leading letter case is the only discriminator the page
// provides.
func (s *scanState) pendingType() bool {
	return apischema.UpperLed(s.name)
}

// pendingMethod reports whether the pending name belongs to a Method
// declaration.
func (s *scanState) pendingMethod() bool {
	return s.name != "" && !apischema.UpperLed(s.name)
}

// shapeless reports whether the pending declaration has produced no table
// or list so far and its last block was a description paragraph. This is
// the condition under which a heading (or the end of the scan) closes out
// a declaration with no fields.
func (s *scanState) shapeless() bool {
	return s.prev == BlockParagraph && !s.shapeSeen
}

// BuildTypes assembles Type declarations from the classified block
// sequence. Headings beginning with a lowercase letter name methods and
// are ignored here; BuildMethods handles them in an independent pass over
// the same sequence.
func BuildTypes(blocks []Block) ([]apischema.Type, error) {
	var types []apischema.Type
	seen := make(map[string]bool)
	add := func(t apischema.Type) {
		if seen[t.Name] {
			return
		}
		seen[t.Name] = true
		types = append(types, t)
	}

	var s scanState
	for _, b := range blocks {
		switch b.Kind {
		case BlockHeading:
			// A heading right after a description paragraph, with no
			// table or list in between, closes out a field-less type.
			// This is how the page encodes types with no structured
			// field table.
			if s.shapeless() && s.pendingType() {
				add(apischema.Type{Name: s.name, Description: s.desc})
			}
			s = scanState{prev: BlockHeading, name: b.Text}
		case BlockParagraph:
			// Last paragraph wins as the description. Earlier paragraphs
			// for the same declaration are lost, matching the source
			// heuristic.
			s.desc = b.Text
			s.prev = BlockParagraph
		case BlockTable:
			if s.pendingType() {
				if s.shapeSeen {
					return nil, apischema.Errorf(apischema.EAMBIGUOUS, "type %q is described by more than one table or list", s.name)
				}
				t := apischema.Type{Name: s.name, Description: s.desc}
				for _, row := range b.DecodeTable().Rows {
					f, err := fieldFromRow(s.name, row)
					if err != nil {
						return nil, err
					}
					t.SetField(f)
				}
				add(t)
				s.shapeSeen = true
			}
			s.prev = BlockTable
		case BlockList:
			// Enum-like type: each item names one of its variants, so the
			// item text serves as both field name and field type.
			if s.pendingType() {
				if s.shapeSeen {
					return nil, apischema.Errorf(apischema.EAMBIGUOUS, "type %q is described by more than one table or list", s.name)
				}
				t := apischema.Type{Name: s.name, Description: s.desc}
				for _, item := range b.DecodeList() {
					t.SetField(apischema.Field{Name: item, Type: item})
				}
				add(t)
				s.shapeSeen = true
			}
			s.prev = BlockList
		}
	}

	// End-of-scan flush mirrors the heading rule so a field-less type
	// whose description is the last block of the page is not lost.
	if s.shapeless() && s.pendingType() {
		add(apischema.Type{Name: s.name, Description: s.desc})
	}

	return types, nil
}

// BuildMethods assembles Method declarations from the classified block
// sequence. Symmetric to BuildTypes but keyed on lowercase-led headings
// and producing ordered parameter lists.
func BuildMethods(blocks []Block) ([]apischema.Method, error) {
	var methods []apischema.Method
	seen := make(map[string]bool)
	add := func(m apischema.Method) {
		if seen[m.Name] {
			return
		}
		seen[m.Name] = true
		methods = append(methods, m)
	}

	var s scanState
	for _, b := range blocks {
		switch b.Kind {
		case BlockHeading:
			// Methods with no parameters have no table at all; the next
			// heading closes them out, same as field-less types.
			if s.shapeless() && s.pendingMethod() {
				add(apischema.Method{Name: s.name, Description: s.desc})
			}
			s = scanState{prev: BlockHeading, name: b.Text}
		case BlockParagraph:
			s.desc = b.Text
			s.prev = BlockParagraph
		case BlockTable:
			if s.pendingMethod() {
				if s.shapeSeen {
					return nil, apischema.Errorf(apischema.EAMBIGUOUS, "method %q is described by more than one table or list", s.name)
				}
				m := apischema.Method{Name: s.name, Description: s.desc}
				for _, row := range b.DecodeTable().Rows {
					p, err := parameterFromRow(s.name, row)
					if err != nil {
						return nil, err
					}
					m.Parameters = append(m.Parameters, p)
				}
				add(m)
				s.shapeSeen = true
			}
			s.prev = BlockTable
		case BlockList:
			if s.pendingMethod() {
				if s.shapeSeen {
					return nil, apischema.Errorf(apischema.EAMBIGUOUS, "method %q is described by more than one table or list", s.name)
				}
				m := apischema.Method{Name: s.name, Description: s.desc}
				for _, item := range b.DecodeList() {
					m.Parameters = append(m.Parameters, apischema.Parameter{Name: item, Type: item, Required: true})
				}
				add(m)
				s.shapeSeen = true
			}
			s.prev = BlockList
		}
	}

	if s.shapeless() && s.pendingMethod() {
		add(apischema.Method{Name: s.name, Description: s.desc})
	}

	return methods, nil
}

// fieldFromRow builds a Field from one decoded table row. A row lacking
// any of the expected columns indicates a structurally broken table and
// fails the whole pass rather than skipping the row.
func fieldFromRow(decl string, row Row) (apischema.Field, error) {
	name, ok := row[columnField]
	if !ok {
		return apischema.Field{}, apischema.Errorf(apischema.EMISSINGCOLUMN, "type %q: table row missing %q column", decl, columnField)
	}
	typ, ok := row[columnType]
	if !ok {
		return apischema.Field{}, apischema.Errorf(apischema.EMISSINGCOLUMN, "type %q: table row missing %q column", decl, columnType)
	}
	desc, ok := row[columnDescription]
	if !ok {
		return apischema.Field{}, apischema.Errorf(apischema.EMISSINGCOLUMN, "type %q: table row missing %q column", decl, columnDescription)
	}

	return apischema.Field{
		Name:        name,
		Type:        apischema.Normalize(typ),
		Optional:    strings.HasPrefix(desc, optionalPrefix),
		Description: desc,
	}, nil
}

// parameterFromRow builds a Parameter from one decoded table row.
// Parameters are required unless the Required cell reads "Optional";
// unlike fields, their optionality never comes from the description text.
func parameterFromRow(decl string, row Row) (apischema.Parameter, error) {
	name, ok := row[columnParameter]
	if !ok {
		return apischema.Parameter{}, apischema.Errorf(apischema.EMISSINGCOLUMN, "method %q: table row missing %q column", decl, columnParameter)
	}
	typ, ok := row[columnType]
	if !ok {
		return apischema.Parameter{}, apischema.Errorf(apischema.EMISSINGCOLUMN, "method %q: table row missing %q column", decl, columnType)
	}
	required, ok := row[columnRequired]
	if !ok {
		return apischema.Parameter{}, apischema.Errorf(apischema.EMISSINGCOLUMN, "method %q: table row missing %q column", decl, columnRequired)
	}
	desc, ok := row[columnDescription]
	if !ok {
		return apischema.Parameter{}, apischema.Errorf(apischema.EMISSINGCOLUMN, "method %q: table row missing %q column", decl, columnDescription)
	}

	return apischema.Parameter{
		Name:        name,
		Type:        apischema.Normalize(typ),
		Required:    !strings.EqualFold(required, optionalPrefix),
		Description: desc,
	}, nil
}
