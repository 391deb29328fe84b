package typeexpr

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMalformedField is matched by every *MalformedFieldError.
var ErrMalformedField = errors.New("malformed field")

// MalformedFieldError reports a field spec that isn't of the form
// `name:type`. Column is 1-based within Spec and points at the problem.
type MalformedFieldError struct {
	Spec   string
	Column int
	Reason string
}

func (e *MalformedFieldError) Error() string {
	return fmt.Sprintf("malformed field %q: %s", e.Spec, e.Reason)
}

func (e *MalformedFieldError) Is(target error) bool {
	return target == ErrMalformedField
}

// NormalizedField is one `name:type` argument with its type rewritten in
// ModeRuby.
type NormalizedField struct {
	Name     string `json:"name"`
	TypeExpr string `json:"type"`
	Null     bool   `json:"null"`
	// Raw is the type expression as the user wrote it.
	Raw string `json:"raw"`
}

// ParseField splits spec on its first `:` and normalizes the type side.
func ParseField(spec string) (NormalizedField, error) {
	name, raw, ok := strings.Cut(spec, ":")
	switch {
	case !ok:
		return NormalizedField{}, &MalformedFieldError{
			Spec:   spec,
			Column: len(spec) + 1,
			Reason: "expected name:type",
		}
	case name == "":
		return NormalizedField{}, &MalformedFieldError{
			Spec:   spec,
			Column: 1,
			Reason: "missing field name",
		}
	case raw == "":
		return NormalizedField{}, &MalformedFieldError{
			Spec:   spec,
			Column: len(name) + 2,
			Reason: "missing type expression",
		}
	}
	if i := invalidNameIndex(name); i >= 0 {
		return NormalizedField{}, &MalformedFieldError{
			Spec:   spec,
			Column: i + 1,
			Reason: fmt.Sprintf("invalid character %q in field name", name[i]),
		}
	}

	typeExpr, null := Normalize(raw, ModeRuby)
	return NormalizedField{Name: name, TypeExpr: typeExpr, Null: null, Raw: raw}, nil
}

// invalidNameIndex returns the index of the first byte that keeps name from
// being both a Ruby symbol and a GraphQL name, or -1.
func invalidNameIndex(name string) int {
	for i := 0; i < len(name); i++ {
		c := name[i]
		if c == '_' || isLower(c) || (c >= 'A' && c <= 'Z') {
			continue
		}
		if i > 0 && c >= '0' && c <= '9' {
			continue
		}
		return i
	}
	return -1
}

// ToRuby renders the graphql-ruby field declaration.
func (f NormalizedField) ToRuby() string {
	return fmt.Sprintf("field :%s, %s, null: %t", f.Name, f.TypeExpr, f.Null)
}

// ToSDL renders the field as an SDL field definition, e.g. `title: String!`.
func (f NormalizedField) ToSDL() string {
	name, null := Normalize(f.Raw, ModeGraphQL)
	if !null {
		name += "!"
	}
	return f.Name + ": " + name
}
