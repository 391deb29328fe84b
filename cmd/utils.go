package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	gqlparser "github.com/vektah/gqlparser/v2"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/gqlerror"

	"github.com/samwightt/gqlscaffold/internal/generator"
)

var (
	warnStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)
	pathStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("243"))

	statusStyles = map[generator.Status]lipgloss.Style{
		generator.StatusCreated:   lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true),
		generator.StatusIdentical: lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true),
		generator.StatusConflict:  lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
		generator.StatusForced:    lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true),
	}
)

// statusLine renders a file status the way Rails generators print them,
// e.g. "      create  app/graphql/types/post_type.rb".
func statusLine(fr generator.FileResult) string {
	label := fmt.Sprintf("%12s", fr.Status)
	if style, ok := statusStyles[fr.Status]; ok {
		label = style.Render(label)
	}
	return label + "  " + fr.Path
}

func loadSchema(schemaFilePath string) (*ast.Schema, error) {
	path, err := filepath.Abs(schemaFilePath)
	if err != nil {
		return nil, err
	}

	bytes, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	source := ast.Source{
		Input: string(bytes),
		Name:  filepath.Base(path),
	}
	schema, err := gqlparser.LoadSchema(&source)
	if err != nil {
		return nil, err
	}

	return schema, nil
}

func loadCliForSchema(schemaFilePath string) (*ast.Schema, error) {
	schema, err := loadSchema(schemaFilePath)

	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("schema file does not exist: %s", schemaFilePath)
		}
		var parsingError *gqlerror.Error

		if errors.As(err, &parsingError) {
			return nil, fmt.Errorf("GraphQL schema parsing error: %v", parsingError)
		}

		return nil, fmt.Errorf("unexpected error: %v", err)
	}

	return schema, nil
}

// detectZshEscapeIssue checks whether a field spec carries `\!`, which is what
// zsh's history expansion leaves behind when `!` is escaped on the command
// line. Returns a help message if detected.
func detectZshEscapeIssue(fieldSpecs []string) string {
	for _, spec := range fieldSpecs {
		if strings.Contains(spec, `\!`) {
			return fmt.Sprintf("%q contains `\\!`, it looks like the shell escaped `!`. Quote the argument instead:\n"+
				"       gqlscaffold type Post 'title:String!'", spec)
		}
	}
	return ""
}
