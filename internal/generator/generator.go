// Package generator turns a type name and its `name:type` field specs into
// a graphql-ruby object type file, optionally with the matching SDL.
package generator

import (
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"github.com/samwightt/gqlscaffold/internal/typeexpr"
)

// TypeGenerator holds one generation run. Derived names are computed on
// first use and kept for the lifetime of the value.
type TypeGenerator struct {
	TypeName   string
	FieldSpecs []string
	Opts       *Options

	rubyName    func() string
	graphqlName func() string
	fileName    func() string
	fields      func() ([]typeexpr.NormalizedField, error)
}

// FieldPlan is one normalized field together with its rendered
// declarations.
type FieldPlan struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Null        bool   `json:"null"`
	Declaration string `json:"declaration"`
	SDL         string `json:"sdl"`
}

// Plan is everything needed to place and render a type, without touching
// disk.
type Plan struct {
	FileBaseName string      `json:"fileBaseName"`
	RubyName     string      `json:"rubyName"`
	GraphQLName  string      `json:"graphqlName"`
	Path         string      `json:"path"`
	SDLPath      string      `json:"sdlPath,omitempty"`
	Node         bool        `json:"node,omitempty"`
	Fields       []FieldPlan `json:"fields"`
}

func New(typeName string, fieldSpecs []string, opts ...Option) *TypeGenerator {
	o := NewOptions()
	for _, opt := range opts {
		opt(o)
	}
	g := &TypeGenerator{
		TypeName:   typeName,
		FieldSpecs: fieldSpecs,
		Opts:       o,
	}
	g.rubyName = sync.OnceValue(func() string {
		name, _ := typeexpr.Normalize(g.TypeName, typeexpr.ModeRuby)
		return name
	})
	g.graphqlName = sync.OnceValue(func() string {
		name, _ := typeexpr.Normalize(g.TypeName, typeexpr.ModeGraphQL)
		return name
	})
	g.fileName = sync.OnceValue(func() string {
		return typeexpr.Underscore(g.graphqlName() + "Type")
	})
	g.fields = sync.OnceValues(func() ([]typeexpr.NormalizedField, error) {
		fields := make([]typeexpr.NormalizedField, 0, len(g.FieldSpecs))
		for _, spec := range g.FieldSpecs {
			f, err := typeexpr.ParseField(spec)
			if err != nil {
				return nil, err
			}
			fields = append(fields, f)
		}
		return fields, nil
	})
	return g
}

// RubyName is the type name as referenced from Ruby, e.g. `Types::BlogPostType`.
func (g *TypeGenerator) RubyName() string { return g.rubyName() }

// GraphQLName is the type name as it appears in the schema, e.g. `BlogPost`.
func (g *TypeGenerator) GraphQLName() string { return g.graphqlName() }

// FileName is the generated file's base name without extension, e.g.
// `blog_post_type`.
func (g *TypeGenerator) FileName() string { return g.fileName() }

// ClassName is RubyName relative to the Types module, e.g. `BlogPostType`
// or `Admin::UserType`.
func (g *TypeGenerator) ClassName() string {
	return strings.TrimPrefix(g.RubyName(), "Types::")
}

// Fields returns the parsed fields in argument order. The first malformed
// spec aborts parsing.
func (g *TypeGenerator) Fields() ([]typeexpr.NormalizedField, error) {
	return g.fields()
}

// RubyPath is where the Ruby type file is written.
func (g *TypeGenerator) RubyPath() string {
	return filepath.Join(g.Opts.Directory, "types", g.FileName()+".rb")
}

// SDLPath is where the SDL file is written when SDL output is enabled.
func (g *TypeGenerator) SDLPath() string {
	return filepath.Join(g.Opts.Directory, "types", g.FileName()+".graphql")
}

func (g *TypeGenerator) Plan() (*Plan, error) {
	fields, err := g.Fields()
	if err != nil {
		return nil, err
	}

	p := &Plan{
		FileBaseName: g.FileName(),
		RubyName:     g.RubyName(),
		GraphQLName:  g.GraphQLName(),
		Path:         g.RubyPath(),
		Node:         g.Opts.Node,
		Fields:       make([]FieldPlan, 0, len(fields)),
	}
	if g.Opts.SDL {
		p.SDLPath = g.SDLPath()
	}
	for _, f := range fields {
		p.Fields = append(p.Fields, FieldPlan{
			Name:        f.Name,
			Type:        f.TypeExpr,
			Null:        f.Null,
			Declaration: f.ToRuby(),
			SDL:         f.ToSDL(),
		})
	}

	g.Opts.Logger.Debug("planned type",
		"type", p.RubyName, "path", p.Path, "fields", len(p.Fields))
	return p, nil
}

// Declarations returns the rendered field declarations in order.
func (p *Plan) Declarations() []string {
	decls := make([]string, len(p.Fields))
	for i, f := range p.Fields {
		decls[i] = f.Declaration
	}
	return decls
}

func (g *TypeGenerator) String() string {
	return fmt.Sprintf("%s (%s)", g.RubyName(), g.RubyPath())
}
