/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/samwightt/gqlscaffold/internal/typeexpr"
	"github.com/samwightt/gqlscaffold/pkg/render"
)

func formatNormalizedText(n NormalizedInfo) string {
	return fmt.Sprintf("%s => %s, null: %t", n.Input, n.Name, n.Null)
}

func formatNormalizedPretty(items []NormalizedInfo) string {
	rows := make([][]string, 0, len(items))
	for _, n := range items {
		rows = append(rows, []string{n.Input, n.Name, fmt.Sprint(n.Null)})
	}
	return render.Table([]string{"input", nameHeader(items), "null"}, rows)
}

// nameHeader names the normalized column after the mode in use.
func nameHeader(items []NormalizedInfo) string {
	if len(items) > 0 && items[0].Mode == typeexpr.ModeGraphQL.String() {
		return "graphql"
	}
	return "ruby"
}

func NewNormalizeCmd() *cobra.Command {
	var modeStr string

	cmd := &cobra.Command{
		Use:   "normalize EXPR...",
		Short: "Show how type expressions are normalized",
		Long: `Normalize type expressions written in Ruby or GraphQL style and print the
result in the requested notation together with the derived nullability.`,
		Example: `  gqlscaffold normalize Int '[Post!]' types.comment
  gqlscaffold normalize blog_post --mode graphql -f json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := typeexpr.ParseMode(modeStr)
			if err != nil {
				return err
			}

			results := make([]NormalizedInfo, 0, len(args))
			for _, expr := range args {
				name, null := typeexpr.Normalize(expr, mode)
				results = append(results, NormalizedInfo{
					Input: expr,
					Mode:  mode.String(),
					Name:  name,
					Null:  null,
				})
			}

			output, err := render.Renderer[NormalizedInfo]{
				Data:         results,
				TextFormat:   formatNormalizedText,
				PrettyFormat: formatNormalizedPretty,
			}.Render(outputFormat)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&modeStr, "mode", "m", typeexpr.ModeRuby.String(), "output notation: ruby, graphql")

	return cmd
}
