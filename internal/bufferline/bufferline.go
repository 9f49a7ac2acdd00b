// ABOUTME: Renderer: the public entry point tying segments, sections, and assembly together
// ABOUTME: Render is a pure function of the host's state at the moment of the call

package bufferline

import (
	"fmt"
	"strings"

	"github.com/jessarcher/bufferline/internal/config"
	"github.com/jessarcher/bufferline/internal/log"
	"github.com/jessarcher/bufferline/pkg/tui/theme"
	"github.com/jessarcher/bufferline/pkg/tui/width"
)

// maxClickRegions caps the atomic clickable units per rendered line; the
// host rendering surface rejects lines with more.
const maxClickRegions = 80

// zoneBudget hands out click-region wraps until the per-line cap is spent,
// then passes text through unmarked.
type zoneBudget struct {
	mark      Marker
	remaining int
}

func (z *zoneBudget) wrap(id, text string) string {
	if z.remaining <= 0 {
		return text
	}
	z.remaining--
	return z.mark.Mark(id, text)
}

// Renderer renders the tab strip. It holds only read-only collaborators;
// all per-render state lives on the call stack, so renders are independent
// and re-entrant.
type Renderer struct {
	host Host
	opts *config.Options
	pal  theme.Palette
	mark Marker
}

// New creates a Renderer. A nil marker disables click regions.
func New(host Host, opts *config.Options, pal theme.Palette, mark Marker) *Renderer {
	if mark == nil {
		mark = nopMarker{}
	}
	return &Renderer{host: host, opts: opts, pal: pal, mark: mark}
}

// Render produces one full display line for the given cell budget. The
// current item always survives truncation; when items are dropped, "+N"
// overflow markers report the count per side. The line can exceed the
// budget only when the current item alone already does.
func (r *Renderer) Render(available int) string {
	items := r.host.Items()
	for i := range items {
		items[i].Ordinal = i + 1
	}

	zones := &zoneBudget{mark: r.mark, remaining: maxClickRegions}

	// The group row and close control share the cell budget with the items,
	// so they render first and the truncation budget shrinks by their width.
	groupRow := r.renderGroups(r.host.Groups(), zones)
	closeCtl := zones.wrap("close", r.pal.Close.Apply(" "+r.opts.CloseIcon+" "))
	furniture := width.VisibleWidth(groupRow) + width.VisibleWidth(closeCtl)

	// Phase 1: width-only composition, establishing the slot width every
	// segment pads to.
	bases := make([]itemBase, len(items))
	slot := 0
	for i, it := range items {
		bases[i] = r.composeBase(it)
		if bases[i].width > slot {
			slot = bases[i].width
		}
	}

	segments := make([]Segment, len(items))
	for i, it := range items {
		segments[i] = r.renderItem(it, bases[i], slot, zones)
	}

	before, current, after := splitSections(items, segments)
	o := &overflow{
		leftReserve:  markerReserve(r.opts.LeftOverflowIcon),
		rightReserve: markerReserve(r.opts.RightOverflowIcon),
	}
	fitted := fit(before, current, after, available-furniture, o)

	var b strings.Builder
	if o.left > 0 {
		b.WriteString(r.pal.Overflow.Apply(fmt.Sprintf("%d %s ", o.left, r.opts.LeftOverflowIcon)))
	}
	b.WriteString(materializeLine(fitted))
	if o.right > 0 {
		b.WriteString(r.pal.Overflow.Apply(fmt.Sprintf(" %s %d", r.opts.RightOverflowIcon, o.right)))
	}

	// Fill spacer: right-align the group row and close control within the
	// budget. Nothing to fill when the strip already overflows.
	used := width.VisibleWidth(b.String()) + furniture
	if fill := available - used; fill > 0 {
		b.WriteString(r.pal.Fill.Apply(strings.Repeat(" ", fill)))
	}

	b.WriteString(groupRow)
	b.WriteString(closeCtl)
	return b.String()
}

// HandleSelect selects the item by id. Stale ids no-op: item lifetime is
// owned by the host and may have changed between render and click.
func (r *Renderer) HandleSelect(id int) {
	if !r.itemExists(id) {
		log.Debug("bufferline: select on stale item %d", id)
		return
	}
	r.host.Select(id)
}

// HandleFocusWindow focuses the window currently showing the item. Stale
// ids no-op.
func (r *Renderer) HandleFocusWindow(id int) {
	if !r.itemExists(id) {
		log.Debug("bufferline: focus on stale item %d", id)
		return
	}
	r.host.FocusWindow(id)
}

// HandleSwitchGroup switches to the group by id. Stale ids no-op.
func (r *Renderer) HandleSwitchGroup(id int) {
	for _, g := range r.host.Groups() {
		if g.ID == id {
			r.host.SwitchGroup(id)
			return
		}
	}
	log.Debug("bufferline: switch to stale group %d", id)
}

func (r *Renderer) itemExists(id int) bool {
	for _, it := range r.host.Items() {
		if it.ID == id {
			return true
		}
	}
	return false
}
