// Package typeexpr normalizes type expressions written in any mix of
// graphql-ruby and GraphQL SDL styles (`[Post!]`, `types.comment`,
// `Types::CommentType`, `!ID`) into one requested notation.
package typeexpr

import (
	"fmt"
	"strings"

	"github.com/iancoleman/strcase"
)

// Mode selects the vocabulary a normalized name is written in.
type Mode int

const (
	// ModeRuby renders names the way graphql-ruby code references them:
	// `Integer`, `String`, `Types::PostType`.
	ModeRuby Mode = iota + 1
	// ModeGraphQL renders bare SDL names: `Int`, `Post`.
	ModeGraphQL
)

func (m Mode) String() string {
	switch m {
	case ModeRuby:
		return "ruby"
	case ModeGraphQL:
		return "graphql"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode resolves a mode from its name, case-insensitively.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(s) {
	case "ruby":
		return ModeRuby, nil
	case "graphql":
		return ModeGraphQL, nil
	default:
		return 0, fmt.Errorf("invalid mode: %s (valid: ruby, graphql)", s)
	}
}

// UnsupportedModeError is the panic value raised when Normalize is called
// with a Mode other than ModeRuby or ModeGraphQL.
type UnsupportedModeError struct {
	Mode Mode
}

func (e *UnsupportedModeError) Error() string {
	return fmt.Sprintf("unexpected normalize mode: %s", e.Mode)
}

const (
	namespacePrefix      = "Types::"
	lowerNamespacePrefix = "types."
	typeSuffix           = "Type"
)

// rubyBuiltins are base names graphql-ruby accepts as-is.
var rubyBuiltins = map[string]bool{
	"Integer": true,
	"Float":   true,
	"Boolean": true,
	"String":  true,
	"ID":      true,
}

// Normalize rewrites expr in the given mode and reports whether the
// resulting type is nullable. Expressions without a `!` marker are nullable.
//
// Normalize panics with *UnsupportedModeError for an unknown mode.
func Normalize(expr string, mode Mode) (string, bool) {
	return NormalizeNull(expr, mode, true)
}

// NormalizeNull is Normalize with an explicit starting nullability. Any `!`
// marker found while peeling the expression forces it to false.
//
// List wrappers don't carry their own nullability: `[Post!]` comes back as
// non-null because its element is, and `[Post]!` likewise.
func NormalizeNull(expr string, mode Mode, null bool) (string, bool) {
	p := peel(expr, null)
	name := mapBaseName(p.base, mode)
	if p.depth > 0 {
		name = strings.Repeat("[", p.depth) + name + strings.Repeat("]", p.depth)
	}
	return name, p.null
}

// BaseName returns the bare name left once every marker, list wrapper,
// namespace and `Type` suffix has been stripped from expr.
func BaseName(expr string) string {
	return peel(expr, true).base
}

type peeled struct {
	base  string
	depth int
	null  bool
}

// peel strips markers off expr one at a time, in the same order a
// recursive rewrite would try them.
func peel(expr string, null bool) peeled {
	p := peeled{null: null}
	for {
		switch {
		case strings.HasPrefix(expr, "!"):
			expr = expr[1:]
			p.null = false
		case strings.HasSuffix(expr, "!"):
			expr = expr[:len(expr)-1]
			p.null = false
		case strings.HasPrefix(expr, "[") && strings.HasSuffix(expr, "]"):
			expr = expr[1 : len(expr)-1]
			p.depth++
		case strings.HasSuffix(expr, typeSuffix):
			expr = strings.TrimSuffix(expr, typeSuffix)
		case strings.HasPrefix(expr, namespacePrefix):
			expr = strings.TrimPrefix(expr, namespacePrefix)
		case strings.HasPrefix(expr, lowerNamespacePrefix):
			expr = strings.TrimPrefix(expr, lowerNamespacePrefix)
		default:
			p.base = expr
			return p
		}
	}
}

func mapBaseName(name string, mode Mode) string {
	switch mode {
	case ModeRuby:
		if name == "Int" {
			return "Integer"
		}
		if rubyBuiltins[name] {
			return name
		}
		return namespacePrefix + Camelize(name) + typeSuffix
	case ModeGraphQL:
		return Camelize(name)
	default:
		panic(&UnsupportedModeError{Mode: mode})
	}
}

// Camelize turns a snake_case or lower camelCase identifier into PascalCase
// the way the Rails inflector does: the first letter of the leading word is
// upper-cased and every `_`-separated word after it is capitalized.
// Capitals already present in the leading word are kept, so `ID` and
// `BlogPost` are returned unchanged. A `/` starts a namespace segment and is
// written as `::`, so `admin/user` becomes `Admin::User`.
func Camelize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i, segment := range strings.Split(s, "/") {
		words := strings.Split(segment, "_")
		if i == 0 {
			b.WriteString(upperFirst(words[0]))
		} else {
			b.WriteString("::")
			b.WriteString(capitalizeLead(words[0]))
		}
		for _, w := range words[1:] {
			b.WriteString(capitalizeLead(w))
		}
	}
	return b.String()
}

// Underscore turns a PascalCase identifier into snake_case:
// `BlogPostType` becomes `blog_post_type`. Namespace separators become
// path separators, so `Admin::UserType` becomes `admin/user_type`.
func Underscore(s string) string {
	segments := strings.Split(s, "::")
	for i, segment := range segments {
		segments[i] = strcase.ToSnake(segment)
	}
	return strings.Join(segments, "/")
}

func upperFirst(s string) string {
	if s == "" || !isLower(s[0]) {
		return s
	}
	return string(s[0]-'a'+'A') + s[1:]
}

// capitalizeLead capitalizes the leading alphanumeric run of s, lowering the
// rest of that run. Anything after the run is kept as written.
func capitalizeLead(s string) string {
	end := 0
	for end < len(s) && isAlnum(s[end]) {
		end++
	}
	if end == 0 {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:end]) + s[end:]
}

func isLower(c byte) bool { return c >= 'a' && c <= 'z' }

func isAlnum(c byte) bool {
	return isLower(c) || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}
