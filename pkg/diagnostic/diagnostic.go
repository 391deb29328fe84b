// Package diagnostic renders error messages with a source snippet and a
// caret underline, e.g. for a bad field spec on the command line.
package diagnostic

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	gutterStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("243"))
	caretStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	messageStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	helpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
)

// RenderSnippet renders a source line with line number, gutter, and underline caret.
// Returns something like:
//
//	1 | BlogPost title body:String
//	  |               ^ expected name:type
func RenderSnippet(source string, lineNum int, column int, length int, message string) string {
	if length < 1 {
		length = 1
	}
	if column < 1 {
		column = 1
	}

	numStr := strconv.Itoa(lineNum)
	gutterWidth := len(numStr)

	lineNumStyled := gutterStyle.Render(numStr)
	pipe := gutterStyle.Render("|")
	emptyGutter := strings.Repeat(" ", gutterWidth)

	codeLine := lineNumStyled + " " + pipe + " " + source

	padding := strings.Repeat(" ", column-1)
	carets := caretStyle.Render(strings.Repeat("^", length))
	msgRendered := ""
	if message != "" {
		msgRendered = " " + messageStyle.Render(message)
	}
	underLine := emptyGutter + " " + pipe + " " + padding + carets + msgRendered

	return codeLine + "\n" + underLine
}

// RenderLocation renders a location header like "--> args:1:9".
func RenderLocation(source string, line int, column int) string {
	loc := source + ":" + strconv.Itoa(line) + ":" + strconv.Itoa(column)
	arrow := gutterStyle.Render("-->")
	return arrow + " " + loc
}

// RenderArgs underlines part of one command-line argument. args are shown
// joined by spaces on a single line, index selects the argument and column
// is 1-based within it.
func RenderArgs(args []string, index int, column int, length int, message string) string {
	offset := 0
	for i := 0; i < index && i < len(args); i++ {
		offset += len(args[i]) + 1
	}
	if column < 1 {
		column = 1
	}
	col := offset + column
	return RenderLocation("args", 1, col) + "\n" +
		RenderSnippet(strings.Join(args, " "), 1, col, length, message)
}

// RenderHelp renders a "help:" note shown under a snippet.
func RenderHelp(message string) string {
	return helpStyle.Render("help:") + " " + message
}
