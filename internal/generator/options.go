package generator

import (
	"log/slog"

	"github.com/vektah/gqlparser/v2/ast"
)

// DefaultDirectory is the graphql-ruby application directory types are
// written under.
const DefaultDirectory = "app/graphql"

// Options control where and how a type is generated.
//
// Directory – root GraphQL directory, files go to <Directory>/types
// Node      – implement the Relay Node interface
// SDL       – also write a .graphql file next to the Ruby one
// Force     – overwrite files that exist with different content
// Schema    – existing schema used to check field type references
type Options struct {
	Directory string
	Node      bool
	SDL       bool
	Force     bool
	Schema    *ast.Schema
	Logger    *slog.Logger
}

func NewOptions() *Options {
	return &Options{
		Directory: DefaultDirectory,
		Logger:    slog.Default(),
	}
}

type Option func(*Options)

func WithDirectory(d string) Option {
	return func(o *Options) {
		if d != "" {
			o.Directory = d
		}
	}
}

func WithNode() Option {
	return func(o *Options) { o.Node = true }
}

func WithSDL() Option {
	return func(o *Options) { o.SDL = true }
}

func WithForce() Option {
	return func(o *Options) { o.Force = true }
}

func WithSchema(s *ast.Schema) Option {
	return func(o *Options) { o.Schema = s }
}

func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
