// ABOUTME: Tab strip rendering options with YAML file loading
// ABOUTME: Defaults plus allowed-value validation; constructed once, passed explicitly

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Numbering selects what number, if any, prefixes each item.
type Numbering string

const (
	NumberingNone    Numbering = "none"
	NumberingID      Numbering = "id"
	NumberingOrdinal Numbering = "ordinal"
)

// NumberStyle selects how the number is rendered.
type NumberStyle string

const (
	NumberPlain       NumberStyle = "plain"
	NumberSuperscript NumberStyle = "superscript"
)

// SeparatorStyle selects the glyph pair between items.
type SeparatorStyle string

const (
	SeparatorThin  SeparatorStyle = "thin"
	SeparatorThick SeparatorStyle = "thick"
)

// ViewMode selects what a click on an item does.
type ViewMode string

const (
	ViewDefault     ViewMode = "default"     // click selects the item
	ViewMultiwindow ViewMode = "multiwindow" // click focuses the window showing it
)

var (
	validNumbering = map[Numbering]bool{NumberingNone: true, NumberingID: true, NumberingOrdinal: true}
	validNumStyle  = map[NumberStyle]bool{NumberPlain: true, NumberSuperscript: true}
	validSeparator = map[SeparatorStyle]bool{SeparatorThin: true, SeparatorThick: true}
	validViewMode  = map[ViewMode]bool{ViewDefault: true, ViewMultiwindow: true}
)

// Options holds the full rendering configuration. It is read-only after
// construction; every render call receives it explicitly.
type Options struct {
	Numbering      Numbering      `yaml:"numbering"`
	NumberStyle    NumberStyle    `yaml:"number_style"`
	MaxNameLength  int            `yaml:"max_name_length"`
	ShowCloseIcons bool           `yaml:"show_close_icons"`
	SeparatorStyle SeparatorStyle `yaml:"separator_style"`
	ViewMode       ViewMode       `yaml:"view_mode"`

	CloseIcon         string `yaml:"close_icon"`
	LeftOverflowIcon  string `yaml:"left_overflow_icon"`
	RightOverflowIcon string `yaml:"right_overflow_icon"`
	ModifiedIcon      string `yaml:"modified_icon"`
	IndicatorIcon     string `yaml:"indicator_icon"`

	// Theme names a built-in theme; used by hosts at startup, not by the
	// render path.
	Theme string `yaml:"theme"`
}

// Default returns the stock options.
func Default() *Options {
	return &Options{
		Numbering:      NumberingNone,
		NumberStyle:    NumberPlain,
		MaxNameLength:  30,
		ShowCloseIcons: true,
		SeparatorStyle: SeparatorThick,
		ViewMode:       ViewDefault,

		CloseIcon:         "×",
		LeftOverflowIcon:  "«",
		RightOverflowIcon: "»",
		ModifiedIcon:      "●",
		IndicatorIcon:     "▎",

		Theme: "default",
	}
}

// Load reads options from a YAML file, layered over the defaults.
// A missing file returns the defaults without error.
func Load(path string) (*Options, error) {
	opts := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return opts, nil
		}
		return nil, fmt.Errorf("reading options %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, opts); err != nil {
		return nil, fmt.Errorf("parsing options %s: %w", path, err)
	}

	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("options %s: %w", path, err)
	}
	return opts, nil
}

// Validate checks enum fields and numeric bounds.
func (o *Options) Validate() error {
	if !validNumbering[o.Numbering] {
		return fmt.Errorf("invalid numbering %q", o.Numbering)
	}
	if !validNumStyle[o.NumberStyle] {
		return fmt.Errorf("invalid number_style %q", o.NumberStyle)
	}
	if !validSeparator[o.SeparatorStyle] {
		return fmt.Errorf("invalid separator_style %q", o.SeparatorStyle)
	}
	if !validViewMode[o.ViewMode] {
		return fmt.Errorf("invalid view_mode %q", o.ViewMode)
	}
	if o.MaxNameLength <= 0 {
		return fmt.Errorf("max_name_length must be positive, got %d", o.MaxNameLength)
	}
	return nil
}
