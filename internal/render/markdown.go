// Package render turns assistant answers (markdown) into terminal output.
package render

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/pkg/errors"
)

// Renderer formats markdown for a terminal of the given width.
type Renderer struct {
	tr *glamour.TermRenderer
}

// NewRenderer builds a renderer using the named glamour style ("dark", "light", "notty", "auto").
func NewRenderer(style string, width int) (*Renderer, error) {
	opts := []glamour.TermRendererOption{glamour.WithWordWrap(width)}
	if style == "auto" {
		opts = append(opts, glamour.WithAutoStyle())
	} else {
		opts = append(opts, glamour.WithStandardStyle(style))
	}
	tr, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return nil, errors.Wrap(err, "create markdown renderer")
	}
	return &Renderer{tr: tr}, nil
}

// Render returns the styled text, or md itself if rendering fails.
func (r *Renderer) Render(md string) string {
	if r == nil || r.tr == nil {
		return md
	}
	out, err := r.tr.Render(md)
	if err != nil {
		return md
	}
	return strings.TrimRight(out, "\n") + "\n"
}
