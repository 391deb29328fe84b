package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want Format
	}{
		{"json", FormatJSON},
		{"JSON", FormatJSON},
		{"text", FormatText},
		{"Text", FormatText},
		{"pretty", FormatPretty},
		{"PRETTY", FormatPretty},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestParseFormat_Invalid(t *testing.T) {
	for _, in := range []string{"invalid", ""} {
		_, err := ParseFormat(in)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid format")
		assert.Contains(t, err.Error(), "json, text, pretty")
	}
}

type normalized struct {
	Input string `json:"input"`
	Null  bool   `json:"null"`
}

func TestRenderer_JSON(t *testing.T) {
	r := Renderer[normalized]{Data: []normalized{{"Int", true}, {"ID!", false}}}
	out, err := r.Render(FormatJSON)
	require.NoError(t, err)
	assert.Contains(t, out, `"input": "Int"`)
	assert.Contains(t, out, `"null": false`)

	out, err = Renderer[normalized]{Data: []normalized{}}.Render(FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, "[]", out)

	out, err = Renderer[normalized]{}.Render(FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, "null", out)
}

func TestRenderer_Text(t *testing.T) {
	r := Renderer[normalized]{
		Data:       []normalized{{"Int", true}, {"ID!", false}},
		TextFormat: func(n normalized) string { return n.Input },
	}
	out, err := r.Render(FormatText)
	require.NoError(t, err)
	assert.Equal(t, "Int\nID!", out)

	r.Data = nil
	out, err = r.Render(FormatText)
	require.NoError(t, err)
	assert.Equal(t, "", out)
}

func TestRenderer_MissingFormatters(t *testing.T) {
	r := Renderer[normalized]{Data: []normalized{{"Int", true}}}

	_, err := r.Render(FormatText)
	assert.ErrorContains(t, err, "text format not defined")

	_, err = r.Render(FormatPretty)
	assert.ErrorContains(t, err, "pretty format not defined")

	_, err = r.Render(Format("yaml"))
	assert.ErrorContains(t, err, "unsupported format")
}

func TestRenderer_Pretty(t *testing.T) {
	r := Renderer[normalized]{
		Data: []normalized{{"Int", true}},
		PrettyFormat: func(items []normalized) string {
			rows := make([][]string, 0, len(items))
			for _, n := range items {
				rows = append(rows, []string{n.Input})
			}
			return Table([]string{"input"}, rows)
		},
	}
	out, err := r.Render(FormatPretty)
	require.NoError(t, err)
	assert.Contains(t, out, "input")
	assert.Contains(t, out, "Int")
}
