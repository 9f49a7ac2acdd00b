// ABOUTME: Built-in themes: default, dark, light, monochrome
// ABOUTME: Provides Builtin(name) lookup and BuiltinNames() enumeration

package theme

var builtins = map[string]*Theme{
	"default": {
		Name:    "default",
		Palette: DefaultPalette(),
	},
	"dark": {
		Name: "dark",
		Palette: Palette{
			Selected: NewColor("\x1b[1m\x1b[97m"),
			Visible:  NewColor("\x1b[37m"),
			Inactive: NewColor("\x1b[38;5;244m"),

			Indicator: NewColor("\x1b[38;5;214m"),
			Modified:  NewColor("\x1b[38;5;114m"),
			Number:    NewColor("\x1b[38;5;244m"),
			Close:     NewColor("\x1b[38;5;244m"),

			SeparatorSelected: NewColor("\x1b[38;5;240m"),
			SeparatorInactive: NewColor("\x1b[38;5;236m"),

			Overflow: NewColor("\x1b[48;5;236m\x1b[38;5;221m"),
			Fill:     NewColor("\x1b[48;5;233m"),

			GroupActive:   NewColor("\x1b[1m\x1b[38;5;214m"),
			GroupInactive: NewColor("\x1b[38;5;244m"),
		},
	},
	"light": {
		Name: "light",
		Palette: Palette{
			Selected: NewColor("\x1b[1m\x1b[30m"),
			Visible:  NewColor("\x1b[30m"),
			Inactive: NewColor("\x1b[38;5;246m"),

			Indicator: NewColor("\x1b[38;5;25m"),
			Modified:  NewColor("\x1b[38;5;28m"),
			Number:    NewColor("\x1b[38;5;246m"),
			Close:     NewColor("\x1b[38;5;246m"),

			SeparatorSelected: NewColor("\x1b[38;5;249m"),
			SeparatorInactive: NewColor("\x1b[38;5;252m"),

			Overflow: NewColor("\x1b[48;5;254m\x1b[38;5;130m"),
			Fill:     NewColor("\x1b[48;5;255m"),

			GroupActive:   NewColor("\x1b[1m\x1b[38;5;25m"),
			GroupInactive: NewColor("\x1b[38;5;246m"),
		},
	},
	"monochrome": {
		Name: "monochrome",
		Palette: Palette{
			Selected: NewColor("\x1b[1m"),
			Visible:  NewColor("\x1b[0m"),
			Inactive: NewColor("\x1b[2m"),

			Indicator: NewColor("\x1b[1m"),
			Modified:  NewColor("\x1b[1m"),
			Number:    NewColor("\x1b[2m"),
			Close:     NewColor("\x1b[2m"),

			SeparatorSelected: NewColor("\x1b[2m"),
			SeparatorInactive: NewColor("\x1b[2m"),

			Overflow: NewColor("\x1b[7m"),
			Fill:     NewColor(""),

			GroupActive:   NewColor("\x1b[1m\x1b[4m"),
			GroupInactive: NewColor("\x1b[2m"),
		},
	},
}

// Builtin returns a built-in theme by name, or nil if unknown.
func Builtin(name string) *Theme {
	return builtins[name]
}

// BuiltinNames returns the names of all built-in themes.
func BuiltinNames() []string {
	return []string{"default", "dark", "light", "monochrome"}
}
