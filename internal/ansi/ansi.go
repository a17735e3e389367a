// Package ansi provides ANSI escape sequences and palette presets for the
// styled tree renderer.
package ansi

// Base ANSI escape codes.
const (
	Reset         = "\x1b[0m"
	Bold          = "\x1b[1m"
	Faint         = "\x1b[90m"
	Red           = "\x1b[31m"
	Green         = "\x1b[32m"
	Yellow        = "\x1b[33m"
	Blue          = "\x1b[34m"
	Magenta       = "\x1b[35m"
	Cyan          = "\x1b[36m"
	Gray          = "\x1b[37m"
	BrightRed     = "\x1b[1;31m"
	BrightGreen   = "\x1b[1;32m"
	BrightYellow  = "\x1b[1;33m"
	BrightBlue    = "\x1b[1;34m"
	BrightMagenta = "\x1b[1;35m"
	BrightCyan    = "\x1b[1;36m"
	BrightWhite   = "\x1b[1;37m"
)

// Palette holds the semantic colours for schema-tree output.
type Palette struct {
	Key    string
	Type   string
	Branch string
}

// PaletteDefault mirrors jq's defaults where they map: 1;34 for keys, 0;32
// for (string) values, faint structure.
var PaletteDefault = Palette{
	Key:    BrightBlue,
	Type:   Green,
	Branch: Faint,
}

// PaletteMono only emboldens keys; for terminals without colour support.
var PaletteMono = Palette{
	Key: Bold,
}

// PaletteBright is a higher-contrast variant of the default.
var PaletteBright = Palette{
	Key:    BrightCyan,
	Type:   BrightGreen,
	Branch: Gray,
}
