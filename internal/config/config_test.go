// ABOUTME: Tests for options loading and validation
// ABOUTME: Covers defaults, YAML layering, missing files, and enum rejection

package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeOptions(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bufferline.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaultValidates(t *testing.T) {
	t.Parallel()

	if err := Default().Validate(); err != nil {
		t.Errorf("Default().Validate() = %v", err)
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	t.Parallel()

	opts, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	def := Default()
	if *opts != *def {
		t.Errorf("Load(missing) = %+v, want defaults %+v", opts, def)
	}
}

func TestLoadLayersOverDefaults(t *testing.T) {
	t.Parallel()

	path := writeOptions(t, `
numbering: ordinal
number_style: superscript
max_name_length: 15
separator_style: thin
`)

	opts, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if opts.Numbering != NumberingOrdinal {
		t.Errorf("Numbering = %q", opts.Numbering)
	}
	if opts.NumberStyle != NumberSuperscript {
		t.Errorf("NumberStyle = %q", opts.NumberStyle)
	}
	if opts.MaxNameLength != 15 {
		t.Errorf("MaxNameLength = %d", opts.MaxNameLength)
	}
	if opts.SeparatorStyle != SeparatorThin {
		t.Errorf("SeparatorStyle = %q", opts.SeparatorStyle)
	}
	// Untouched fields keep defaults.
	if opts.ViewMode != ViewDefault {
		t.Errorf("ViewMode = %q, want default", opts.ViewMode)
	}
	if opts.CloseIcon != "×" {
		t.Errorf("CloseIcon = %q", opts.CloseIcon)
	}
}

func TestValidateRejects(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*Options)
	}{
		{name: "bad numbering", mutate: func(o *Options) { o.Numbering = "roman" }},
		{name: "bad number style", mutate: func(o *Options) { o.NumberStyle = "subscript" }},
		{name: "bad separator", mutate: func(o *Options) { o.SeparatorStyle = "double" }},
		{name: "bad view mode", mutate: func(o *Options) { o.ViewMode = "split" }},
		{name: "zero name length", mutate: func(o *Options) { o.MaxNameLength = 0 }},
		{name: "negative name length", mutate: func(o *Options) { o.MaxNameLength = -3 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			opts := Default()
			tt.mutate(opts)
			if err := opts.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestLoadRejectsInvalidEnum(t *testing.T) {
	t.Parallel()

	path := writeOptions(t, "numbering: roman\n")
	if _, err := Load(path); err == nil {
		t.Error("expected error for invalid enum")
	}
}
