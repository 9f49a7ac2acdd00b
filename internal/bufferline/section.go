// ABOUTME: Section: a contiguous run of segments with a running cell width
// ABOUTME: splitSections partitions segments around the current item

package bufferline

import "github.com/jessarcher/bufferline/internal/log"

// Section is an ordered run of segments plus their total display width.
// The width is kept equal to the sum of the segment widths on every
// mutation. A Section is owned by the single render call that built it.
type Section struct {
	segments []Segment
	width    int
}

func (s *Section) add(seg Segment) {
	s.segments = append(s.segments, seg)
	s.width += seg.width
}

func (s *Section) len() int { return len(s.segments) }

// dropFirst removes the first n segments, decrementing the width.
func (s *Section) dropFirst(n int) {
	if n > len(s.segments) {
		n = len(s.segments)
	}
	for _, seg := range s.segments[:n] {
		s.width -= seg.width
	}
	s.segments = s.segments[n:]
}

// dropLast removes the last n segments, decrementing the width.
func (s *Section) dropLast(n int) {
	if n > len(s.segments) {
		n = len(s.segments)
	}
	cut := len(s.segments) - n
	for _, seg := range s.segments[cut:] {
		s.width -= seg.width
	}
	s.segments = s.segments[:cut]
}

// splitSections partitions segments into before/current/after in a single
// left-to-right pass. The first item flagged current wins; later duplicates
// are logged and treated as after. With no current item everything lands in
// before and current stays empty.
func splitSections(items []Item, segments []Segment) (before, current, after *Section) {
	before, current, after = &Section{}, &Section{}, &Section{}
	for i, it := range items {
		switch {
		case it.Current && current.len() == 0:
			current.add(segments[i])
		case it.Current:
			log.Warn("bufferline: multiple items flagged current, using first (id=%d ignored)", it.ID)
			after.add(segments[i])
		case current.len() == 0:
			before.add(segments[i])
		default:
			after.add(segments[i])
		}
	}
	return before, current, after
}
