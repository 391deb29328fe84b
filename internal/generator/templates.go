package generator

import (
	"errors"
	"fmt"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/gqlerror"
	"github.com/vektah/gqlparser/v2/parser"

	"github.com/samwightt/gqlscaffold/internal/typeexpr"
)

// ErrInvalidSDL is returned when the rendered SDL doesn't parse, which
// usually means a type expression or a namespaced type name has no SDL form.
var ErrInvalidSDL = errors.New("generated SDL is invalid")

const rubyTemplate = `# frozen_string_literal: true

module Types
  class {{ .ClassName }} < Types::BaseObject
{{- if .Node }}
    implements GraphQL::Types::Relay::Node
{{- end }}
{{- range .Fields }}
{{ .ToRuby | indent 4 }}
{{- end }}
  end
end
`

const sdlTemplate = `type {{ .Name }}{{ if .Node }} implements Node{{ end }}
{{- if .Fields }} {
{{- range .Fields }}
{{ .ToSDL | indent 2 }}
{{- end }}
}
{{- end }}
`

var templates = template.Must(
	template.New("ruby").Funcs(sprig.TxtFuncMap()).Option("missingkey=error").Parse(rubyTemplate),
)

func init() {
	template.Must(templates.New("sdl").Parse(sdlTemplate))
}

type templateData struct {
	Name      string
	ClassName string
	Node      bool
	Fields    []typeexpr.NormalizedField
}

func (g *TypeGenerator) templateData() (*templateData, error) {
	fields, err := g.Fields()
	if err != nil {
		return nil, err
	}
	return &templateData{
		Name:      g.GraphQLName(),
		ClassName: g.ClassName(),
		Node:      g.Opts.Node,
		Fields:    fields,
	}, nil
}

func execute(name string, data *templateData) (string, error) {
	var buf strings.Builder
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("failed to execute %s template: %w", name, err)
	}
	return buf.String(), nil
}

// RenderRuby renders the graphql-ruby object type source.
func (g *TypeGenerator) RenderRuby() (string, error) {
	data, err := g.templateData()
	if err != nil {
		return "", err
	}
	return execute("ruby", data)
}

// RenderSDL renders the SDL definition of the type and checks it parses.
func (g *TypeGenerator) RenderSDL() (string, error) {
	data, err := g.templateData()
	if err != nil {
		return "", err
	}
	sdl, err := execute("sdl", data)
	if err != nil {
		return "", err
	}
	if err := checkSDL(g.FileName()+".graphql", sdl); err != nil {
		return "", err
	}
	return sdl, nil
}

func checkSDL(name, sdl string) error {
	_, err := parser.ParseSchema(&ast.Source{Name: name, Input: sdl})
	if err == nil {
		return nil
	}
	var gqlErr *gqlerror.Error
	if errors.As(err, &gqlErr) {
		return fmt.Errorf("%w: %s", ErrInvalidSDL, gqlErr.Message)
	}
	return fmt.Errorf("%w: %v", ErrInvalidSDL, err)
}
