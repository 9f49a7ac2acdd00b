// ABOUTME: Data model for the tab strip: Item, Group, Host, Marker
// ABOUTME: Items are rebuilt from the host on every render; nothing persists

package bufferline

// Item is one selectable document shown in the strip. Items are constructed
// fresh from the host's live list on every render call.
type Item struct {
	ID   int
	Name string
	Icon string // optional leading glyph, may be empty

	// Ordinal is the item's position in the visible list (1-based),
	// distinct from its identity. Assigned by the renderer each pass.
	Ordinal int

	Current    bool
	Visible    bool // displayed in another split
	Modifiable bool
	Modified   bool
}

// Group is one entry of the secondary row. ItemIDs is used only to filter
// duplicate groups out of the row.
type Group struct {
	ID      int
	Active  bool
	ItemIDs []int
}

// Host supplies live state and receives the click actions. Implementations
// must answer Items and Groups fresh on each call; the renderer never caches
// across renders.
type Host interface {
	Items() []Item
	Groups() []Group

	Select(id int)
	FocusWindow(id int)
	SwitchGroup(id int)
}

// Marker wraps a text fragment in an opaque clickable region the host's
// rendering surface can resolve back to an id. Hosts without a click surface
// can pass nil to New and get a pass-through.
type Marker interface {
	Mark(id, text string) string
}

type nopMarker struct{}

func (nopMarker) Mark(_, text string) string { return text }
