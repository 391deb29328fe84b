// Package render formats command results as JSON, plain text or lipgloss
// tables.
package render

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

type Format string

const (
	FormatJSON   Format = "json"
	FormatText   Format = "text"
	FormatPretty Format = "pretty"
)

var ValidFormats = []Format{FormatJSON, FormatText, FormatPretty}

func ParseFormat(s string) (Format, error) {
	for _, f := range ValidFormats {
		if strings.EqualFold(s, string(f)) {
			return f, nil
		}
	}
	return "", fmt.Errorf("invalid format: %s (valid: json, text, pretty)", s)
}

// Renderer renders a list of items in any Format. JSON needs no callback;
// text calls TextFormat once per item, pretty hands the whole list to
// PrettyFormat.
type Renderer[T any] struct {
	Data         []T
	TextFormat   func(T) string
	PrettyFormat func([]T) string
}

func (r Renderer[T]) Render(format Format) (string, error) {
	switch format {
	case FormatJSON:
		return JSON(r.Data)
	case FormatPretty:
		if r.PrettyFormat == nil {
			return "", fmt.Errorf("pretty format not defined for this type")
		}
		return r.PrettyFormat(r.Data), nil
	case FormatText:
		if r.TextFormat == nil {
			return "", fmt.Errorf("text format not defined for this type")
		}
		lines := make([]string, 0, len(r.Data))
		for _, item := range r.Data {
			lines = append(lines, r.TextFormat(item))
		}
		return strings.Join(lines, "\n"), nil
	default:
		return "", fmt.Errorf("unsupported format: %s", format)
	}
}

// JSON renders v as indented JSON.
func JSON(v any) (string, error) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", err
	}
	return string(b), nil
}

var cellStyle = lipgloss.NewStyle().PaddingRight(1)

// Table renders rows under headers as a wrapped lipgloss table.
func Table(headers []string, rows [][]string) string {
	tbl := table.New().
		Width(120).
		Wrap(true).
		StyleFunc(func(row, col int) lipgloss.Style {
			return cellStyle
		}).
		Rows(rows...).
		Headers(headers...)
	return tbl.String()
}
