// ABOUTME: JSON theme file loading with default fallback
// ABOUTME: Unset palette fields inherit from DefaultPalette to ensure completeness

package theme

import (
	"encoding/json"
	"fmt"
	"os"
)

// jsonPalette is the JSON-friendly representation of a Palette.
// Fields use snake_case to match the theme file format; values are ANSI
// escape codes with the ESC byte written as "", since JSON forbids
// unescaped control characters in string literals.
type jsonPalette struct {
	Selected string `json:"selected"`
	Visible  string `json:"visible"`
	Inactive string `json:"inactive"`

	Indicator string `json:"indicator"`
	Modified  string `json:"modified"`
	Number    string `json:"number"`
	Close     string `json:"close"`

	SeparatorSelected string `json:"separator_selected"`
	SeparatorInactive string `json:"separator_inactive"`

	Overflow string `json:"overflow"`
	Fill     string `json:"fill"`

	GroupActive   string `json:"group_active"`
	GroupInactive string `json:"group_inactive"`
}

type jsonTheme struct {
	Name    string      `json:"name"`
	Palette jsonPalette `json:"palette"`
}

// LoadFile reads a JSON theme file and returns a Theme.
// Missing palette fields fall back to DefaultPalette values. Escape codes in
// the file must spell ESC as ""; a literal ESC byte is a parse error.
func LoadFile(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading theme file: %w", err)
	}

	var jt jsonTheme
	if err := json.Unmarshal(data, &jt); err != nil {
		return nil, fmt.Errorf("parsing theme file %s: %w", path, err)
	}
	if jt.Name == "" {
		return nil, fmt.Errorf("theme file %s: missing name", path)
	}

	def := DefaultPalette()
	jp := jt.Palette
	p := Palette{
		Selected: colorOr(jp.Selected, def.Selected),
		Visible:  colorOr(jp.Visible, def.Visible),
		Inactive: colorOr(jp.Inactive, def.Inactive),

		Indicator: colorOr(jp.Indicator, def.Indicator),
		Modified:  colorOr(jp.Modified, def.Modified),
		Number:    colorOr(jp.Number, def.Number),
		Close:     colorOr(jp.Close, def.Close),

		SeparatorSelected: colorOr(jp.SeparatorSelected, def.SeparatorSelected),
		SeparatorInactive: colorOr(jp.SeparatorInactive, def.SeparatorInactive),

		Overflow: colorOr(jp.Overflow, def.Overflow),
		Fill:     colorOr(jp.Fill, def.Fill),

		GroupActive:   colorOr(jp.GroupActive, def.GroupActive),
		GroupInactive: colorOr(jp.GroupInactive, def.GroupInactive),
	}

	return &Theme{Name: jt.Name, Palette: p}, nil
}

func colorOr(code string, fallback Color) Color {
	if code == "" {
		return fallback
	}
	return NewColor(code)
}
