// ABOUTME: Tests for VisibleWidth and ANSI stripping
// ABOUTME: Covers ASCII, CJK, emoji, styled text, and cache eviction

package width

import (
	"strings"
	"testing"
)

func TestVisibleWidth(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  int
	}{
		{name: "empty", input: "", want: 0},
		{name: "ascii", input: "main.go", want: 7},
		{name: "styled", input: "\x1b[31mmain.go\x1b[0m", want: 7},
		{name: "cjk name", input: "メモ.md", want: 7},
		{name: "modified dot", input: "●", want: 1},
		{name: "emoji icon", input: "📝", want: 2},
		{name: "superscript", input: "¹²", want: 2},
		{name: "only ansi", input: "\x1b[48;5;236m\x1b[0m", want: 0},
		{name: "styled mixed", input: "\x1b[1m▎\x1b[0m a.txt ", want: 8},
		{name: "control char not plain", input: "a\tb", want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := VisibleWidth(tt.input); got != tt.want {
				t.Errorf("VisibleWidth(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestStripANSI(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "no escapes", input: "plain", want: "plain"},
		{name: "sgr", input: "\x1b[36mtab\x1b[0m", want: "tab"},
		{name: "osc bel", input: "\x1b]8;;http://x\x07link\x1b]8;;\x07", want: "link"},
		{name: "apc", input: "\x1b_marker\x1b\\after", want: "after"},
		{name: "charset", input: "\x1b(Bok", want: "ok"},
		{name: "truncated csi", input: "\x1b[38;5", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := StripANSI(tt.input); got != tt.want {
				t.Errorf("StripANSI(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestMeasureCacheEviction(t *testing.T) {
	t.Parallel()

	c := newMeasureCache(2)
	c.put("あ", 2)
	c.put("い", 2)

	// Touch "あ" so "い" becomes the eviction candidate.
	if _, ok := c.get("あ"); !ok {
		t.Fatal("expected あ cached")
	}
	c.put("う", 2)

	if _, ok := c.get("い"); ok {
		t.Error("expected い evicted")
	}
	if _, ok := c.get("あ"); !ok {
		t.Error("expected あ retained")
	}
}

func TestVisibleWidthLongStyledLine(t *testing.T) {
	t.Parallel()

	// A full assembled line: styled fragments joined together.
	line := strings.Repeat("\x1b[38;5;117m buf \x1b[0m▏", 10)
	if got, want := VisibleWidth(line), 60; got != want {
		t.Errorf("VisibleWidth(line) = %d, want %d", got, want)
	}
}
