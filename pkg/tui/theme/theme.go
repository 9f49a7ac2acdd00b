// ABOUTME: Semantic color theme types: Color, Palette, Theme
// ABOUTME: Palette maps tab-strip roles to ANSI styling tokens

package theme

// Color represents a terminal styling token that can wrap text.
type Color struct {
	code string
}

// NewColor creates a Color from a raw ANSI escape code.
func NewColor(code string) Color {
	return Color{code: code}
}

// Apply wraps text with the ANSI code and a reset suffix.
// If the code is empty, the text is returned unchanged.
func (c Color) Apply(text string) string {
	if c.code == "" {
		return text
	}
	return c.code + text + "\x1b[0m"
}

// Code returns the raw ANSI escape code.
func (c Color) Code() string {
	return c.code
}

// Bold returns a new Color that prepends bold (\x1b[1m) to the code.
func (c Color) Bold() Color {
	return Color{code: "\x1b[1m" + c.code}
}

// Dim returns a new Color that prepends dim (\x1b[2m) to the code.
func (c Color) Dim() Color {
	return Color{code: "\x1b[2m" + c.code}
}

// Palette holds all semantic colors for the tab strip.
type Palette struct {
	// Item text by state
	Selected Color // the current item
	Visible  Color // shown in another split
	Inactive Color

	// Item decorations
	Indicator Color // single-cell active indicator
	Modified  Color
	Number    Color
	Close     Color

	// Separators
	SeparatorSelected Color
	SeparatorInactive Color

	// Strip furniture
	Overflow Color // "+N" drop markers
	Fill     Color // spacer between items and the group row

	// Group row
	GroupActive   Color
	GroupInactive Color
}

// Theme holds a named palette.
type Theme struct {
	Name    string
	Palette Palette
}

// DefaultPalette returns the stock 256-color palette.
func DefaultPalette() Palette {
	return Palette{
		Selected: NewColor("\x1b[1m"),
		Visible:  NewColor("\x1b[0m"),
		Inactive: NewColor("\x1b[90m"),

		Indicator: NewColor("\x1b[38;5;75m"),
		Modified:  NewColor("\x1b[38;5;114m"),
		Number:    NewColor("\x1b[2m"),
		Close:     NewColor("\x1b[90m"),

		SeparatorSelected: NewColor("\x1b[38;5;240m"),
		SeparatorInactive: NewColor("\x1b[38;5;238m"),

		Overflow: NewColor("\x1b[48;5;236m\x1b[38;5;221m"),
		Fill:     NewColor("\x1b[48;5;234m"),

		GroupActive:   NewColor("\x1b[1m\x1b[38;5;75m"),
		GroupInactive: NewColor("\x1b[90m"),
	}
}
