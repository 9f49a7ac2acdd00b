// ABOUTME: Secondary row rendering: one padded, clickable fragment per group
// ABOUTME: No truncation; groups displaying the same item set are filtered

package bufferline

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// renderGroups renders the group row in order. Groups whose item set
// duplicates an earlier group's are skipped; the row is assumed short and is
// never truncated.
func (r *Renderer) renderGroups(groups []Group, zones *zoneBudget) string {
	var b strings.Builder
	seen := make(map[string]bool)
	for _, g := range groups {
		if key := itemSetKey(g.ItemIDs); key != "" {
			if seen[key] {
				continue
			}
			seen[key] = true
		}

		style := r.pal.GroupInactive
		if g.Active {
			style = r.pal.GroupActive
		}
		text := style.Apply(fmt.Sprintf(" %d ", g.ID))
		b.WriteString(zones.wrap("tab:"+strconv.Itoa(g.ID), text))
	}
	return b.String()
}

// itemSetKey fingerprints a group's item set, order-insensitive. Empty sets
// return "" and are never treated as duplicates of each other.
func itemSetKey(ids []int) string {
	if len(ids) == 0 {
		return ""
	}
	sorted := make([]int, len(ids))
	copy(sorted, ids)
	sort.Ints(sorted)

	parts := make([]string, len(sorted))
	for i, id := range sorted {
		parts[i] = strconv.Itoa(id)
	}
	return strings.Join(parts, ",")
}
