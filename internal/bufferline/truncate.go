// ABOUTME: The fitting loop: shrink before/after sections until the line fits
// ABOUTME: Current item is never dropped; drop counts feed the overflow markers

package bufferline

import (
	"strings"

	"github.com/jessarcher/bufferline/pkg/tui/width"
)

// overflow tracks how many items were dropped per side and the cell overhead
// each side's marker costs once it appears.
type overflow struct {
	left  int
	right int

	leftReserve  int
	rightReserve int
}

// reserved returns the marker budget currently in play. A side reserves its
// overhead only once truncation has started on that side.
func (o *overflow) reserved() int {
	n := 0
	if o.left > 0 {
		n += o.leftReserve
	}
	if o.right > 0 {
		n += o.rightReserve
	}
	return n
}

// markerReserve is padding + glyph + padding; the count digits render on top
// of this but are not part of the fixed reservation.
func markerReserve(icon string) int {
	return 1 + width.VisibleWidth(icon) + 1
}

// fit shrinks the sections until before+current+after plus any active marker
// reservation fits the available width, then returns the surviving segments
// in order. Rules, applied one drop per iteration:
//
//   - the wider side loses; on a tie, before loses
//   - before loses its first segment (the item furthest from current)
//   - after loses all of its segments at once
//
// The current section is never touched. If it alone exceeds the budget the
// loop stops with the budget exceeded; that is accepted as display-only
// degradation.
func fit(before, current, after *Section, available int, o *overflow) []Segment {
	for {
		total := before.width + current.width + after.width + o.reserved()
		if available >= total {
			break
		}
		if before.len() == 0 && after.len() == 0 {
			break
		}
		if before.len() > 0 && before.width >= after.width {
			before.dropFirst(1)
			o.left++
		} else {
			o.right += after.len()
			after.dropLast(after.len())
		}
	}

	merged := make([]Segment, 0, before.len()+current.len()+after.len())
	merged = append(merged, before.segments...)
	merged = append(merged, current.segments...)
	merged = append(merged, after.segments...)
	return merged
}

// materializeLine concatenates the fitted segments, giving each its final
// position so only the true last segment omits its separator.
func materializeLine(segments []Segment) string {
	var b strings.Builder
	total := len(segments)
	for i, seg := range segments {
		b.WriteString(seg.Materialize(i, total))
	}
	return b.String()
}
