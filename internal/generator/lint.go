package generator

import (
	"fmt"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/samwightt/gqlscaffold/internal/typeexpr"
)

// builtinScalars are the base names that map to graphql-ruby scalars.
var builtinScalars = []string{"Int", "Integer", "Float", "Boolean", "String", "ID"}

// Warning flags a field whose type probably isn't what was meant. It never
// blocks generation.
type Warning struct {
	Field      string `json:"field"`
	Type       string `json:"type"`
	Message    string `json:"message"`
	Suggestion string `json:"suggestion,omitempty"`
}

func (w Warning) String() string {
	if w.Suggestion != "" {
		return fmt.Sprintf("field %q: %s, did you mean %q?", w.Field, w.Message, w.Suggestion)
	}
	return fmt.Sprintf("field %q: %s", w.Field, w.Message)
}

// Lint checks each well-formed field. Base names that look like a misspelt
// scalar are flagged, and when a schema is configured, object types missing
// from it are flagged as well.
func (g *TypeGenerator) Lint() []Warning {
	var warnings []Warning
	for _, spec := range g.FieldSpecs {
		f, err := typeexpr.ParseField(spec)
		if err != nil {
			continue
		}
		base := typeexpr.BaseName(f.Raw)
		if isScalar(base) {
			continue
		}
		if s := closeScalar(base); s != "" {
			warnings = append(warnings, Warning{
				Field:      f.Name,
				Type:       f.Raw,
				Message:    fmt.Sprintf("%q is not a built-in scalar", base),
				Suggestion: s,
			})
			continue
		}
		if g.Opts.Schema == nil {
			continue
		}
		name, _ := typeexpr.Normalize(base, typeexpr.ModeGraphQL)
		if name == g.GraphQLName() || g.Opts.Schema.Types[name] != nil {
			continue
		}
		w := Warning{
			Field:   f.Name,
			Type:    f.Raw,
			Message: fmt.Sprintf("type %q does not exist in schema", name),
		}
		candidates := make([]string, 0, len(g.Opts.Schema.Types))
		for n := range g.Opts.Schema.Types {
			if !strings.HasPrefix(n, "__") {
				candidates = append(candidates, n)
			}
		}
		w.Suggestion = findClosest(name, candidates)
		warnings = append(warnings, w)
	}
	return warnings
}

func isScalar(name string) bool {
	for _, s := range builtinScalars {
		if name == s {
			return true
		}
	}
	return false
}

// closeScalar returns the scalar name is most likely a typo of, or "".
func closeScalar(name string) string {
	for _, s := range builtinScalars {
		if strings.EqualFold(name, s) {
			return s
		}
	}
	best, bestDist := "", -1
	for _, s := range builtinScalars {
		d := levenshtein.ComputeDistance(name, s)
		if bestDist == -1 || d < bestDist {
			best, bestDist = s, d
		}
	}
	if bestDist*3 > len(name) {
		return ""
	}
	return best
}

const maxSuggestionDistance = 5

func findClosest(input string, candidates []string) string {
	minDist := -1
	closest := ""
	for _, c := range candidates {
		dist := levenshtein.ComputeDistance(input, c)
		if minDist == -1 || dist < minDist || (dist == minDist && c < closest) {
			minDist = dist
			closest = c
		}
	}
	if minDist > maxSuggestionDistance {
		return ""
	}
	return closest
}
