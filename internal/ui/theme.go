package ui

import (
	"github.com/gdamore/tcell/v2"
)

// Palette is the ring of text colors cycled by Ctrl+R.
type Palette struct {
	names  []string
	colors []tcell.Color
	index  int
	hint   tcell.Color
}

// NewPalette builds a palette from color names ("silver", "#ff8800").
// Unknown names render in the terminal's default color.
func NewPalette(names []string, index int, hint string) *Palette {
	p := &Palette{}
	p.Replace(names, hint)
	if index >= 0 && index < len(p.colors) {
		p.index = index
	}
	return p
}

// Replace swaps in new colors, keeping the current position when it is
// still in range.
func (p *Palette) Replace(names []string, hint string) {
	p.names = append(p.names[:0], names...)
	p.colors = p.colors[:0]
	for _, name := range names {
		p.colors = append(p.colors, tcell.GetColor(name))
	}
	if p.index >= len(p.colors) {
		p.index = 0
	}
	p.hint = tcell.GetColor(hint)
}

// Next advances to the following color, wrapping at the end.
func (p *Palette) Next() {
	if len(p.colors) == 0 {
		return
	}
	p.index = (p.index + 1) % len(p.colors)
}

// Name returns the current color name.
func (p *Palette) Name() string {
	if len(p.names) == 0 {
		return ""
	}
	return p.names[p.index]
}

// Text returns the style for document text.
func (p *Palette) Text() tcell.Style {
	if len(p.colors) == 0 {
		return tcell.StyleDefault
	}
	return tcell.StyleDefault.Foreground(p.colors[p.index])
}

// Hint returns the style for the completion hint.
func (p *Palette) Hint() tcell.Style {
	return tcell.StyleDefault.Foreground(p.hint)
}
