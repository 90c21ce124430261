package report

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// Glyphs used by Render.
const (
	GlyphFree    = '.'
	GlyphBlocked = '#'
	GlyphPath    = '*'
	GlyphStart   = 'S'
	GlyphGoal    = 'G'
)

// RenderOptions configures Render.
type RenderOptions struct {
	Color bool
}

// RenderOption is a functional option for Render.
type RenderOption func(*RenderOptions)

// WithColor styles each glyph class with lipgloss.
func WithColor() RenderOption {
	return func(o *RenderOptions) { o.Color = true }
}

var (
	blockedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	pathStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	endStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)
)

// Render writes g one row per line, cells separated by a space, with path
// overlaid and the start and goal marked.
func Render(w io.Writer, g *gridgraph.Grid, path []gridgraph.Cell, start, goal gridgraph.Cell, opts ...RenderOption) error {
	var cfg RenderOptions
	for _, opt := range opts {
		opt(&cfg)
	}

	onPath := make(map[gridgraph.Cell]bool, len(path))
	for _, c := range path {
		onPath[c] = true
	}

	var b strings.Builder
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			if c > 0 {
				b.WriteByte(' ')
			}
			cell := gridgraph.C(r, c)
			b.WriteString(glyph(g, cell, onPath[cell], start, goal, cfg.Color))
		}
		b.WriteByte('\n')
	}
	_, err := io.WriteString(w, b.String())

	return err
}

func glyph(g *gridgraph.Grid, cell gridgraph.Cell, onPath bool, start, goal gridgraph.Cell, color bool) string {
	var ch rune
	var style lipgloss.Style
	switch {
	case cell == start:
		ch, style = GlyphStart, endStyle
	case cell == goal:
		ch, style = GlyphGoal, endStyle
	case onPath:
		ch, style = GlyphPath, pathStyle
	case g.Blocked(cell):
		ch, style = GlyphBlocked, blockedStyle
	default:
		return string(GlyphFree)
	}
	if !color {
		return string(ch)
	}

	return style.Render(string(ch))
}
