// ABOUTME: Segment rendering: one item becomes a styled fragment plus its width
// ABOUTME: Two-phase: compose body and separator first, materialize once positions are final

package bufferline

import (
	"fmt"
	"strings"

	"github.com/jessarcher/bufferline/internal/config"
	"github.com/jessarcher/bufferline/pkg/tui/theme"
	"github.com/jessarcher/bufferline/pkg/tui/width"
)

// Segment is the rendered form of one item. The body carries every styled
// sub-fragment except the trailing separator, which only the final assembly
// pass can decide on: membership in the last position is unknown until
// truncation has run.
type Segment struct {
	body      string
	separator string
	width     int // cells, separator included
}

// Materialize returns the final text for a segment at the given position.
// Only the true last segment of the merged line omits its separator.
func (s Segment) Materialize(index, total int) string {
	if index == total-1 {
		return s.body
	}
	return s.body + s.separator
}

// Width returns the segment's display width in cells.
func (s Segment) Width() int { return s.width }

// itemBase is the pre-padding composition of an item: icon, truncated name,
// and the modified-indicator slot.
type itemBase struct {
	text  string
	width int
}

// composeBase builds icon + padding + name + padding, where both padding
// blocks are as wide as the modified indicator. When the item is modified the
// trailing block carries the indicator glyph instead, so the transition to
// modified never changes layout width.
func (r *Renderer) composeBase(it Item) itemBase {
	name := truncateName(it.Name, r.opts.MaxNameLength)

	pad := strings.Repeat(" ", width.VisibleWidth(r.opts.ModifiedIcon))
	trailing := pad
	if it.Modifiable && it.Modified {
		trailing = r.pal.Modified.Apply(r.opts.ModifiedIcon)
	}

	styled := r.stateColor(it).Apply(name)
	text := it.Icon + pad + styled + trailing
	return itemBase{text: text, width: width.VisibleWidth(text)}
}

// renderItem finishes a segment from its base: slot padding, numbering,
// click wrap, active indicator, close fragment, and separator choice.
func (r *Renderer) renderItem(it Item, base itemBase, slot int, zones *zoneBudget) Segment {
	body := base.text
	w := base.width

	// Center to the slot width. Both sides get the ceiling-divided pad, so
	// an odd gap overshoots the slot by one cell rather than sitting askew.
	if w < slot {
		pad := strings.Repeat(" ", (slot-w+1)/2)
		body = pad + body + pad
		w += 2 * len(pad)
	}

	if r.opts.Numbering != config.NumberingNone {
		num := r.numberPrefix(it)
		body = num + body
		w += width.VisibleWidth(num)
	}

	zoneID := fmt.Sprintf("buf:%d", it.ID)
	if r.opts.ViewMode == config.ViewMultiwindow {
		zoneID = fmt.Sprintf("win:%d", it.ID)
	}
	body = zones.wrap(zoneID, body)

	if it.Current {
		body = r.pal.Indicator.Apply(r.opts.IndicatorIcon) + body
	} else {
		body = strings.Repeat(" ", width.VisibleWidth(r.opts.IndicatorIcon)) + body
	}
	w += width.VisibleWidth(r.opts.IndicatorIcon)

	if r.opts.ShowCloseIcons {
		body += " " + r.pal.Close.Apply(r.opts.CloseIcon)
		w += 1 + width.VisibleWidth(r.opts.CloseIcon)
	}

	sep := r.separatorFor(it)
	return Segment{body: body, separator: sep, width: w + width.VisibleWidth(sep)}
}

func (r *Renderer) stateColor(it Item) theme.Color {
	switch {
	case it.Current:
		return r.pal.Selected
	case it.Visible:
		return r.pal.Visible
	default:
		return r.pal.Inactive
	}
}

// numberPrefix renders "{number}{padding}" in the configured mode and style.
func (r *Renderer) numberPrefix(it Item) string {
	n := it.Ordinal
	if r.opts.Numbering == config.NumberingID {
		n = it.ID
	}
	text := plainNumber(n)
	if r.opts.NumberStyle == config.NumberSuperscript {
		text = superscript(n)
	}
	return r.pal.Number.Apply(text) + " "
}

func plainNumber(n int) string {
	return fmt.Sprintf("%d.", n)
}

var superscriptDigits = [10]string{"⁰", "¹", "²", "³", "⁴", "⁵", "⁶", "⁷", "⁸", "⁹"}

// superscript renders 0-20 from the glyph table. Beyond 20 there is no
// defined glyph sequence, so the plain form is used instead.
func superscript(n int) string {
	if n < 0 || n > 20 {
		return plainNumber(n)
	}
	if n < 10 {
		return superscriptDigits[n]
	}
	return superscriptDigits[n/10] + superscriptDigits[n%10]
}

// truncateName cuts the name at max storage units and appends an ellipsis.
// The cut is deliberately byte-based, not cell-based: the rest of the layout
// arithmetic measures cells, and for multi-cell glyphs the two disagree.
func truncateName(name string, max int) string {
	if max <= 0 || len(name) <= max {
		return name
	}
	return name[:max] + "…"
}

var (
	thickSeparators = [2]string{"▌", "▏"}
	thinSeparators  = [2]string{"▏", "│"}
)

// separatorFor picks the separator glyph: each style has one glyph for
// current-or-visible items and another for inactive ones.
func (r *Renderer) separatorFor(it Item) string {
	pair := thinSeparators
	if r.opts.SeparatorStyle == config.SeparatorThick {
		pair = thickSeparators
	}
	if it.Current || it.Visible {
		return r.pal.SeparatorSelected.Apply(pair[0])
	}
	return r.pal.SeparatorInactive.Apply(pair[1])
}
