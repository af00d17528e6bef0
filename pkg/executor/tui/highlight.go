package tui

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// highlighter colors the JSON preview for a 256-color terminal.
type highlighter struct {
	enabled   bool
	lexer     chroma.Lexer
	style     *chroma.Style
	formatter chroma.Formatter
}

// newHighlighter builds a JSON highlighter using the named chroma style.
// Unknown style names fall back to chroma's default style.
func newHighlighter(enabled bool, styleName string) *highlighter {
	h := &highlighter{enabled: enabled}
	if !enabled {
		return h
	}

	lexer := lexers.Get("json")
	if lexer == nil {
		h.enabled = false
		return h
	}
	h.lexer = chroma.Coalesce(lexer)
	h.style = styles.Get(styleName)
	h.formatter = formatters.Get("terminal256")
	return h
}

// render returns text highlighted, or unchanged if highlighting is off or
// fails.
func (h *highlighter) render(text string) string {
	if h == nil || !h.enabled {
		return text
	}

	iterator, err := h.lexer.Tokenise(nil, text)
	if err != nil {
		return text
	}

	var out strings.Builder
	if err := h.formatter.Format(&out, h.style, iterator); err != nil {
		return text
	}
	return out.String()
}
