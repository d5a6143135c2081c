// Package report renders the budget as bordered text panels.
//
// This file implements the Builder Pattern for box-drawn panels. Rows are
// padded by terminal display width, so wide emoji markers keep the right
// border aligned.
package report

import (
	"io"
	"strings"
	"unicode"

	"golang.org/x/text/width"
)

// PanelWidth is the interior width of every panel, borders excluded.
const PanelWidth = 60

// panelBuilder accumulates the lines of one bordered panel.
type panelBuilder struct {
	width int
	b     strings.Builder
}

func newPanel() *panelBuilder {
	return &panelBuilder{width: PanelWidth}
}

func (p *panelBuilder) rule(left, right string) *panelBuilder {
	p.b.WriteString(left + strings.Repeat("─", p.width) + right + "\n")
	return p
}

// Top writes the upper border.
func (p *panelBuilder) Top() *panelBuilder { return p.rule("┌", "┐") }

// Separator writes a horizontal divider.
func (p *panelBuilder) Separator() *panelBuilder { return p.rule("├", "┤") }

// Bottom writes the lower border followed by an empty line.
func (p *panelBuilder) Bottom() *panelBuilder {
	p.rule("└", "┘")
	p.b.WriteString("\n")
	return p
}

// Title writes a row with the text centred between single spaces.
func (p *panelBuilder) Title(text string) *panelBuilder {
	p.b.WriteString("│" + center(" "+text+" ", p.width) + "│\n")
	return p
}

// Row writes content left-aligned and padded to the panel width. Content
// wider than the panel pushes the right border out rather than being cut.
func (p *panelBuilder) Row(content string) *panelBuilder {
	p.b.WriteString("│" + padRight(content, p.width) + "│\n")
	return p
}

// Blank writes an empty row.
func (p *panelBuilder) Blank() *panelBuilder { return p.Row("") }

// WriteTo writes the panel to w.
func (p *panelBuilder) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, p.b.String())
	return int64(n), err
}

// displayWidth returns the number of terminal columns s occupies.
func displayWidth(s string) int {
	n := 0
	for _, r := range s {
		switch {
		case r == '\u200d' || unicode.Is(unicode.Mn, r):
			// joiners, variation selectors and combining marks take no column
		default:
			switch width.LookupRune(r).Kind() {
			case width.EastAsianWide, width.EastAsianFullwidth:
				n += 2
			default:
				n++
			}
		}
	}
	return n
}

func padRight(s string, w int) string {
	if gap := w - displayWidth(s); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}

// center pads s on both sides to w columns. An odd gap puts the extra space
// on the right unless both gap and width are odd.
func center(s string, w int) string {
	gap := w - displayWidth(s)
	if gap <= 0 {
		return s
	}
	left := gap/2 + (gap & w & 1)
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", gap-left)
}
