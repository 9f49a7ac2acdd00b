// ABOUTME: VisibleWidth computes the display-cell width of styled strings
// ABOUTME: Grapheme-cluster aware with an LRU cache and a pure-ASCII fast path

package width

import (
	"container/list"
	"sync"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

const cacheSize = 512

// Every fit decision in the line builder goes through VisibleWidth, so the
// same tab names are measured over and over between renders. The cache keys
// on the full styled string; ASCII strings bypass it entirely.
type measureCache struct {
	mu    sync.RWMutex
	items map[string]*list.Element
	order *list.List
	max   int
}

type measureEntry struct {
	key  string
	cols int
}

func newMeasureCache(max int) *measureCache {
	return &measureCache{
		items: make(map[string]*list.Element, max),
		order: list.New(),
		max:   max,
	}
}

func (c *measureCache) get(key string) (int, bool) {
	c.mu.RLock()
	elem, ok := c.items[key]
	c.mu.RUnlock()
	if !ok {
		return 0, false
	}
	c.mu.Lock()
	c.order.MoveToFront(elem)
	c.mu.Unlock()
	return elem.Value.(measureEntry).cols, true
}

func (c *measureCache) put(key string, cols int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.items[key]; ok {
		return
	}
	if c.order.Len() >= c.max {
		back := c.order.Back()
		if back != nil {
			c.order.Remove(back)
			delete(c.items, back.Value.(measureEntry).key)
		}
	}
	c.items[key] = c.order.PushFront(measureEntry{key: key, cols: cols})
}

var cache = newMeasureCache(cacheSize)

// VisibleWidth returns the number of terminal cells s occupies. ANSI escape
// sequences contribute zero width; grapheme clusters are measured as units,
// so East Asian characters, emoji, and icon glyphs count their true cell
// width rather than their byte length.
func VisibleWidth(s string) int {
	if s == "" {
		return 0
	}
	if isPlainASCII(s) {
		return len(s)
	}
	if w, ok := cache.get(s); ok {
		return w
	}
	w := measure(s)
	cache.put(s, w)
	return w
}

// isPlainASCII reports whether s is printable ASCII (0x20-0x7E) with no
// escape sequences, the case where byte length equals cell width.
func isPlainASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 0x20 || s[i] > 0x7E {
			return false
		}
	}
	return true
}

func measure(s string) int {
	stripped := StripANSI(s)
	w := 0
	state := -1
	for len(stripped) > 0 {
		var cluster string
		cluster, stripped, _, state = uniseg.FirstGraphemeClusterInString(stripped, state)
		w += clusterWidth(cluster)
	}
	return w
}

// clusterWidth returns the cell width of one grapheme cluster, taken from
// its first rune.
func clusterWidth(cluster string) int {
	if cluster == "" {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(cluster)
	return runewidth.RuneWidth(r)
}
