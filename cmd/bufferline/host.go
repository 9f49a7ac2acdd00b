// ABOUTME: In-memory Host implementation backing the demo
// ABOUTME: Scratch buffers and groups mutated by key and mouse actions

package main

import (
	"fmt"
	"strings"

	"github.com/jessarcher/bufferline/internal/bufferline"
)

type buffer struct {
	id       int
	name     string
	icon     string
	modified bool
	group    int
}

// scratchHost holds the demo's live state. It satisfies bufferline.Host:
// Items and Groups answer fresh slices on every call.
type scratchHost struct {
	buffers     []buffer
	currentID   int
	groupIDs    []int
	activeGroup int
	nextID      int
}

func newScratchHost() *scratchHost {
	h := &scratchHost{groupIDs: []int{1, 2}, activeGroup: 1, nextID: 1}
	for _, name := range []string{"main.go", "bufferline.go", "README.md", "go.mod"} {
		h.addBuffer(name, 1)
	}
	h.addBuffer("notes.md", 2)
	h.addBuffer("scratch.txt", 2)
	h.currentID = 1
	return h
}

func (h *scratchHost) addBuffer(name string, group int) *buffer {
	h.buffers = append(h.buffers, buffer{id: h.nextID, name: name, icon: iconFor(name), group: group})
	h.nextID++
	return &h.buffers[len(h.buffers)-1]
}

func iconFor(name string) string {
	switch {
	case strings.HasSuffix(name, ".go"):
		return "🐹"
	case strings.HasSuffix(name, ".md"):
		return "📄"
	default:
		return ""
	}
}

// visible returns the buffers of the active group, in order.
func (h *scratchHost) visible() []buffer {
	var out []buffer
	for _, b := range h.buffers {
		if b.group == h.activeGroup {
			out = append(out, b)
		}
	}
	return out
}

func (h *scratchHost) Items() []bufferline.Item {
	vis := h.visible()
	items := make([]bufferline.Item, len(vis))
	for i, b := range vis {
		items[i] = bufferline.Item{
			ID:         b.id,
			Name:       b.name,
			Icon:       b.icon,
			Current:    b.id == h.currentID,
			Modifiable: true,
			Modified:   b.modified,
		}
	}
	return items
}

func (h *scratchHost) Groups() []bufferline.Group {
	groups := make([]bufferline.Group, len(h.groupIDs))
	for i, id := range h.groupIDs {
		var ids []int
		for _, b := range h.buffers {
			if b.group == id {
				ids = append(ids, b.id)
			}
		}
		groups[i] = bufferline.Group{ID: id, Active: id == h.activeGroup, ItemIDs: ids}
	}
	return groups
}

func (h *scratchHost) Select(id int) {
	h.currentID = id
}

// FocusWindow behaves like Select here: the demo renders a single window.
func (h *scratchHost) FocusWindow(id int) {
	h.currentID = id
}

func (h *scratchHost) SwitchGroup(id int) {
	h.activeGroup = id
	if vis := h.visible(); len(vis) > 0 {
		h.currentID = vis[0].id
	}
}

func (h *scratchHost) find(id int) *buffer {
	for i := range h.buffers {
		if h.buffers[i].id == id {
			return &h.buffers[i]
		}
	}
	return nil
}

// closeBuffer removes the buffer and moves current to a neighbor.
func (h *scratchHost) closeBuffer(id int) {
	for i := range h.buffers {
		if h.buffers[i].id == id {
			h.buffers = append(h.buffers[:i], h.buffers[i+1:]...)
			break
		}
	}
	if h.currentID == id {
		if vis := h.visible(); len(vis) > 0 {
			h.currentID = vis[0].id
		} else {
			h.currentID = 0
		}
	}
}

// step moves current by delta within the visible list, wrapping around.
func (h *scratchHost) step(delta int) {
	vis := h.visible()
	if len(vis) == 0 {
		return
	}
	idx := 0
	for i, b := range vis {
		if b.id == h.currentID {
			idx = i
			break
		}
	}
	idx = (idx + delta + len(vis)) % len(vis)
	h.currentID = vis[idx].id
}

func (h *scratchHost) newBuffer() {
	b := h.addBuffer(fmt.Sprintf("untitled-%d.txt", h.nextID), h.activeGroup)
	h.currentID = b.id
}

func (h *scratchHost) nextGroup() {
	for i, id := range h.groupIDs {
		if id == h.activeGroup {
			h.SwitchGroup(h.groupIDs[(i+1)%len(h.groupIDs)])
			return
		}
	}
}
