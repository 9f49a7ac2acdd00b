// ABOUTME: Tests for the group row: styling, ordering, duplicate filtering
// ABOUTME: Group fragments are never truncated

package bufferline

import (
	"strings"
	"testing"
)

func TestRenderGroups(t *testing.T) {
	t.Parallel()

	r := testRenderer(nil)
	groups := []Group{
		{ID: 1, Active: true, ItemIDs: []int{1, 2}},
		{ID: 2, ItemIDs: []int{3}},
	}
	out := r.renderGroups(groups, testZones())

	if out != " 1  2 " {
		t.Errorf("group row = %q, want %q", out, " 1  2 ")
	}
}

func TestRenderGroupsFiltersDuplicateItemSets(t *testing.T) {
	t.Parallel()

	r := testRenderer(nil)
	groups := []Group{
		{ID: 1, Active: true, ItemIDs: []int{4, 2}},
		{ID: 2, ItemIDs: []int{2, 4}}, // same set, different order
		{ID: 3, ItemIDs: []int{9}},
	}
	out := r.renderGroups(groups, testZones())

	if strings.Contains(out, " 2 ") {
		t.Errorf("duplicate group not filtered: %q", out)
	}
	if !strings.Contains(out, " 1 ") || !strings.Contains(out, " 3 ") {
		t.Errorf("expected groups 1 and 3 in %q", out)
	}
}

func TestRenderGroupsEmptySetsNotDuplicates(t *testing.T) {
	t.Parallel()

	r := testRenderer(nil)
	groups := []Group{
		{ID: 1, Active: true},
		{ID: 2},
	}
	out := r.renderGroups(groups, testZones())

	if !strings.Contains(out, " 1 ") || !strings.Contains(out, " 2 ") {
		t.Errorf("empty item sets must not filter each other: %q", out)
	}
}

func TestItemSetKey(t *testing.T) {
	t.Parallel()

	if itemSetKey(nil) != "" {
		t.Error("empty set must produce empty key")
	}
	if itemSetKey([]int{3, 1, 2}) != itemSetKey([]int{2, 3, 1}) {
		t.Error("key must be order-insensitive")
	}
	if itemSetKey([]int{1, 2}) == itemSetKey([]int{1, 2, 3}) {
		t.Error("different sets must differ")
	}
	// Concatenation ambiguity: {1,23} vs {12,3}.
	if itemSetKey([]int{1, 23}) == itemSetKey([]int{12, 3}) {
		t.Error("key must separate ids unambiguously")
	}
}
