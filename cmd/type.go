/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/samwightt/gqlscaffold/internal/config"
	"github.com/samwightt/gqlscaffold/internal/generator"
	"github.com/samwightt/gqlscaffold/internal/typeexpr"
	"github.com/samwightt/gqlscaffold/pkg/diagnostic"
	"github.com/samwightt/gqlscaffold/pkg/render"
)

// ErrConflict is returned when a generated file already exists with
// different content and --force wasn't given.
var ErrConflict = errors.New("file already exists with different content")

var dryRun bool

func formatFieldsPretty(fields []generator.FieldPlan) string {
	rows := make([][]string, 0, len(fields))
	for _, f := range fields {
		rows = append(rows, []string{f.Name, f.Type, fmt.Sprint(f.Null), f.SDL})
	}
	return render.Table([]string{"field", "ruby type", "null", "sdl"}, rows)
}

func NewTypeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "type TypeName [field:type ...]",
		Aliases: []string{"object"},
		Short:   "Generate a graphql-ruby object type",
		Long: `Generate a graphql-ruby object type class.

TypeName and each field type may be given in Ruby or GraphQL style. A field type
marked with ! (leading or trailing) is generated with null: false. List types
are written in brackets, e.g. comments:[Comment].

Existing files are never overwritten unless --force is given. When the file
already exists with different content, the diff is printed and the command fails.`,
		Example: `  gqlscaffold type BlogPost title:String! comments:[Comment] views:Int
  gqlscaffold type types.post 'author:Types::User' --directory graphql
  gqlscaffold type Post id:ID! --node --sdl --dry-run -f json
  gqlscaffold type Post author:User --schema schema.graphql`,
		Args:         cobra.MinimumNArgs(1),
		SilenceUsage: true,
		RunE:         runTypeCmd,
	}

	cmd.Flags().StringP(config.KeyDirectory, "d", generator.DefaultDirectory, "directory the types/ folder is written under")
	cmd.Flags().Bool(config.KeyNode, false, "implement the Relay Node interface")
	cmd.Flags().Bool(config.KeySDL, false, "also write the type's SDL to a .graphql file")
	cmd.Flags().Bool(config.KeyForce, false, "overwrite files that exist with different content")
	cmd.Flags().StringP(config.KeySchema, "s", "", "existing schema file used to check field types")
	cmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "print what would be generated without writing files")
	for _, key := range []string{config.KeyDirectory, config.KeyNode, config.KeySDL, config.KeyForce, config.KeySchema} {
		_ = settings.BindPFlag(key, cmd.Flags().Lookup(key))
	}

	return cmd
}

func runTypeCmd(cmd *cobra.Command, args []string) error {
	err := generateType(cmd, args)
	if err != nil {
		reportTypeError(cmd, args, err)
	}
	return err
}

func generateType(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(settings)
	if err != nil {
		return err
	}

	opts := append(cfg.GeneratorOptions(), generator.WithLogger(logger))
	if cfg.Schema != "" {
		schema, err := loadCliForSchema(cfg.Schema)
		if err != nil {
			return err
		}
		opts = append(opts, generator.WithSchema(schema))
	}

	g := generator.New(args[0], args[1:], opts...)
	warnings := g.Lint()
	for _, w := range warnings {
		fmt.Fprintln(cmd.ErrOrStderr(), warnStyle.Render("warning:")+" "+w.String())
	}
	if help := detectZshEscapeIssue(args[1:]); help != "" {
		fmt.Fprintln(cmd.ErrOrStderr(), diagnostic.RenderHelp(help))
	}

	if dryRun {
		return printPlan(cmd, g, warnings)
	}

	res, err := g.Write(afero.NewOsFs())
	if err != nil {
		return err
	}
	return printResult(cmd, res)
}

func printPlan(cmd *cobra.Command, g *generator.TypeGenerator, warnings []generator.Warning) error {
	plan, err := g.Plan()
	if err != nil {
		return err
	}
	info := PlanInfo{Plan: plan, Warnings: warnings}
	if info.Ruby, err = g.RenderRuby(); err != nil {
		return err
	}
	if g.Opts.SDL {
		if info.SDL, err = g.RenderSDL(); err != nil {
			return err
		}
	}

	out := cmd.OutOrStdout()
	switch outputFormat {
	case render.FormatJSON:
		s, err := render.JSON(info)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, s)
	case render.FormatPretty:
		fmt.Fprintf(out, "%s %s\n", plan.RubyName, pathStyle.Render(plan.Path))
		s, err := render.Renderer[generator.FieldPlan]{
			Data:         plan.Fields,
			PrettyFormat: formatFieldsPretty,
		}.Render(render.FormatPretty)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, s)
	default:
		fmt.Fprintf(out, "# %s\n%s", plan.Path, info.Ruby)
		if info.SDL != "" {
			fmt.Fprintf(out, "\n# %s\n%s", plan.SDLPath, info.SDL)
		}
	}
	return nil
}

func printResult(cmd *cobra.Command, res *generator.Result) error {
	out := cmd.OutOrStdout()
	if outputFormat == render.FormatJSON {
		s, err := render.JSON(res)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, s)
	} else {
		for _, fr := range res.Files {
			fmt.Fprintln(out, statusLine(fr))
			if fr.Status == generator.StatusConflict {
				fmt.Fprintln(out, fr.Diff)
			}
		}
	}

	conflicts := res.Conflicts()
	if len(conflicts) == 0 {
		return nil
	}
	paths := make([]string, len(conflicts))
	for i, c := range conflicts {
		paths[i] = c.Path
	}
	return fmt.Errorf("%w: %s (use --force to overwrite)", ErrConflict, strings.Join(paths, ", "))
}

// reportTypeError points at the offending argument of a malformed field.
// The error itself is printed by cobra.
func reportTypeError(cmd *cobra.Command, args []string, err error) {
	var malformed *typeexpr.MalformedFieldError
	if !errors.As(err, &malformed) {
		return
	}
	for i := 1; i < len(args); i++ {
		if args[i] == malformed.Spec {
			fmt.Fprintln(cmd.ErrOrStderr(), diagnostic.RenderArgs(args, i, malformed.Column, 1, malformed.Reason))
			return
		}
	}
}
