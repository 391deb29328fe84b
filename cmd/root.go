/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"bytes"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/samwightt/gqlscaffold/internal/config"
	"github.com/samwightt/gqlscaffold/internal/logging"
	"github.com/samwightt/gqlscaffold/pkg/render"
)

var (
	configFiles  []string
	outputFormat render.Format
	settings     *viper.Viper
	logger       *slog.Logger
)

func formatFlag() string {
	if term.IsTerminal(int(os.Stdout.Fd())) {
		return string(render.FormatPretty)
	}
	return string(render.FormatText)
}

// NewRootCmd creates and returns the root command with all subcommands attached.
// This function creates a fresh command tree, ensuring no state leaks between invocations.
func NewRootCmd() *cobra.Command {
	settings = viper.New()
	config.SetDefaults(settings)
	logger = slog.Default()

	cmd := &cobra.Command{
		Use:   "gqlscaffold",
		Short: "Generate graphql-ruby object types from a type name and field list",
		Long: `gqlscaffold writes the boilerplate for a graphql-ruby object type.

Type names and field types may be written in Ruby or GraphQL style, or a mix:
Int, Integer, [Post!], !ID, Types::PostType, types.post and post_comment are all
understood and rewritten the way graphql-ruby expects them.

Files are written to <directory>/types/<name>_type.rb (app/graphql by default).
Settings can also come from a .gqlscaffold.yaml file in the working directory,
a file given with --config, or GQLSCAFFOLD_* environment variables.`,
		Example: `  # Generate app/graphql/types/blog_post_type.rb
  gqlscaffold type BlogPost title:String! body:String comments:[Comment]

  # Preview without writing anything
  gqlscaffold type BlogPost title:String! --dry-run

  # Also write the SDL and implement the Relay Node interface
  gqlscaffold type Post id:ID! --sdl --node

  # See how an expression is normalized
  gqlscaffold normalize '[Post!]' types.comment --mode graphql`,
	}

	cmd.PersistentFlags().StringSliceVar(&configFiles, "config", nil, "config file(s), merged with the last file having highest priority")
	cmd.PersistentFlags().StringP("level", "l", "info", "log level (trace, debug, info, warn, error, debug+1, etc)")
	_ = settings.BindPFlag(config.KeyLogLevel, cmd.PersistentFlags().Lookup("level"))

	var formatStr string
	cmd.PersistentFlags().StringVarP(&formatStr, "format", "f", formatFlag(), "Output format: json, text, pretty (default: pretty if interactive, text otherwise)")

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		var err error
		outputFormat, err = render.ParseFormat(formatStr)
		if err != nil {
			return err
		}
		if err := config.Read(settings, configFiles); err != nil {
			return err
		}
		logger, err = logging.New(cmd.ErrOrStderr(), settings.GetString(config.KeyLogLevel))
		if err != nil {
			return err
		}
		if used := settings.ConfigFileUsed(); used != "" {
			logger.Debug("using config file", "config", used)
		}
		return nil
	}

	cmd.AddCommand(NewTypeCmd())
	cmd.AddCommand(NewNormalizeCmd())

	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// ExecuteWithArgs runs the CLI with the given arguments and returns stdout, stderr, and any error.
// This is useful for testing.
func ExecuteWithArgs(args []string) (stdout string, stderr string, err error) {
	cmd := NewRootCmd()

	stdoutBuf := new(bytes.Buffer)
	stderrBuf := new(bytes.Buffer)

	cmd.SetOut(stdoutBuf)
	cmd.SetErr(stderrBuf)
	cmd.SetArgs(args)

	err = cmd.Execute()

	return stdoutBuf.String(), stderrBuf.String(), err
}
