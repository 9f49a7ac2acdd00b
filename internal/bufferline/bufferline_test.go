// ABOUTME: Render-level tests: ordering, idempotence, budgets, click handlers
// ABOUTME: Drives the full pipeline through a fake host

package bufferline

import (
	"fmt"
	"strings"
	"testing"

	"github.com/jessarcher/bufferline/internal/config"
	"github.com/jessarcher/bufferline/pkg/tui/theme"
	"github.com/jessarcher/bufferline/pkg/tui/width"
)

type fakeHost struct {
	items  []Item
	groups []Group

	selected []int
	focused  []int
	switched []int
}

func (h *fakeHost) Items() []Item      { return append([]Item(nil), h.items...) }
func (h *fakeHost) Groups() []Group    { return append([]Group(nil), h.groups...) }
func (h *fakeHost) Select(id int)      { h.selected = append(h.selected, id) }
func (h *fakeHost) FocusWindow(id int) { h.focused = append(h.focused, id) }
func (h *fakeHost) SwitchGroup(id int) { h.switched = append(h.switched, id) }

type countingMarker struct {
	calls int
}

func (m *countingMarker) Mark(_, text string) string {
	m.calls++
	return text
}

func plainRenderer(h Host, mutate func(*config.Options)) *Renderer {
	opts := config.Default()
	if mutate != nil {
		mutate(opts)
	}
	return New(h, opts, theme.Palette{}, nil)
}

func TestRenderAllItemsInOrder(t *testing.T) {
	t.Parallel()

	h := &fakeHost{items: []Item{
		{ID: 1, Name: "one.go"},
		{ID: 2, Name: "two.go", Current: true},
		{ID: 3, Name: "three.go"},
		{ID: 4, Name: "four.go"},
	}}
	out := plainRenderer(h, nil).Render(500)

	last := -1
	for _, name := range []string{"one.go", "two.go", "three.go", "four.go"} {
		idx := strings.Index(out, name)
		if idx < 0 {
			t.Fatalf("output missing %q: %q", name, out)
		}
		if idx < last {
			t.Errorf("%q out of order", name)
		}
		last = idx
	}
	if strings.Contains(out, "«") || strings.Contains(out, "»") {
		t.Error("no overflow markers expected with an ample budget")
	}
}

func TestRenderExactBudgetWhenEverythingFits(t *testing.T) {
	t.Parallel()

	h := &fakeHost{
		items:  []Item{{ID: 1, Name: "a.go", Current: true}, {ID: 2, Name: "b.go"}},
		groups: []Group{{ID: 1, Active: true, ItemIDs: []int{1, 2}}},
	}
	out := plainRenderer(h, nil).Render(120)

	// The fill spacer pads the line to exactly the budget.
	if got := width.VisibleWidth(out); got != 120 {
		t.Errorf("rendered width = %d, want 120", got)
	}
}

func TestRenderIdempotent(t *testing.T) {
	t.Parallel()

	h := &fakeHost{
		items: []Item{
			{ID: 1, Name: "alpha.go"},
			{ID: 2, Name: "beta.go", Current: true, Modifiable: true, Modified: true},
			{ID: 3, Name: "gamma.go", Visible: true},
		},
		groups: []Group{{ID: 1, Active: true, ItemIDs: []int{1}}, {ID: 2, ItemIDs: []int{2, 3}}},
	}
	r := plainRenderer(h, func(o *config.Options) {
		o.Numbering = config.NumberingOrdinal
		o.NumberStyle = config.NumberSuperscript
	})

	first := r.Render(60)
	second := r.Render(60)
	if first != second {
		t.Errorf("renders differ:\n%q\n%q", first, second)
	}
}

func TestRenderCurrentSurvivesTightBudget(t *testing.T) {
	t.Parallel()

	var items []Item
	for i := 1; i <= 10; i++ {
		items = append(items, Item{ID: i, Name: fmt.Sprintf("buffer%02d.go", i)})
	}
	items[5].Current = true
	h := &fakeHost{items: items}

	out := plainRenderer(h, nil).Render(30)

	if !strings.Contains(out, "buffer06.go") {
		t.Errorf("current item missing from %q", out)
	}
	if !strings.Contains(out, "«") {
		t.Error("expected a left overflow marker")
	}
}

func TestRenderZeroItemsZeroGroups(t *testing.T) {
	t.Parallel()

	h := &fakeHost{}
	out := plainRenderer(h, nil).Render(20)

	// Just the fill spacer and the close control, no markers.
	want := strings.Repeat(" ", 17) + " × "
	if out != want {
		t.Errorf("output = %q, want %q", out, want)
	}
}

func TestRenderZeroWidth(t *testing.T) {
	t.Parallel()

	h := &fakeHost{items: []Item{{ID: 1, Name: "a.go", Current: true}}}
	out := plainRenderer(h, nil).Render(0)

	// Unrepresentable: the current item renders anyway.
	if !strings.Contains(out, "a.go") {
		t.Errorf("current item missing from %q", out)
	}
}

func TestRenderClickRegionCap(t *testing.T) {
	t.Parallel()

	var items []Item
	for i := 1; i <= 100; i++ {
		items = append(items, Item{ID: i, Name: fmt.Sprintf("b%d", i)})
	}
	items[0].Current = true
	h := &fakeHost{items: items}

	m := &countingMarker{}
	r := New(h, config.Default(), theme.Palette{}, m)
	r.Render(5000)

	if m.calls != maxClickRegions {
		t.Errorf("marked %d regions, want %d", m.calls, maxClickRegions)
	}
}

func TestHandlersValidateIDs(t *testing.T) {
	t.Parallel()

	h := &fakeHost{
		items:  []Item{{ID: 7, Name: "a.go", Current: true}},
		groups: []Group{{ID: 2, Active: true}},
	}
	r := plainRenderer(h, nil)

	r.HandleSelect(7)
	r.HandleSelect(99) // stale: silently ignored
	if len(h.selected) != 1 || h.selected[0] != 7 {
		t.Errorf("selected = %v, want [7]", h.selected)
	}

	r.HandleFocusWindow(7)
	r.HandleFocusWindow(99)
	if len(h.focused) != 1 || h.focused[0] != 7 {
		t.Errorf("focused = %v, want [7]", h.focused)
	}

	r.HandleSwitchGroup(2)
	r.HandleSwitchGroup(5)
	if len(h.switched) != 1 || h.switched[0] != 2 {
		t.Errorf("switched = %v, want [2]", h.switched)
	}
}

func TestRenderMultiwindowZoneIDs(t *testing.T) {
	t.Parallel()

	h := &fakeHost{items: []Item{{ID: 3, Name: "a.go", Current: true}}}

	var ids []string
	record := markerFunc(func(id, text string) string {
		ids = append(ids, id)
		return text
	})

	opts := config.Default()
	opts.ViewMode = config.ViewMultiwindow
	New(h, opts, theme.Palette{}, record).Render(100)

	found := false
	for _, id := range ids {
		if id == "win:3" {
			found = true
		}
		if id == "buf:3" {
			t.Error("multiwindow mode must mark win: regions, not buf:")
		}
	}
	if !found {
		t.Errorf("no win:3 region in %v", ids)
	}
}

type markerFunc func(id, text string) string

func (f markerFunc) Mark(id, text string) string { return f(id, text) }
