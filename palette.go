package schematree

import (
	"fmt"
	"sort"
	"strings"

	"github.com/schematree/schematree/internal/ansi"
)

const (
	paletteDefaultName = "default"
	paletteNoneName    = "none"
)

// Palette carries the SGR sequences RenderStyled wraps around tree parts.
// The zero value styles nothing.
type Palette struct {
	Key    string
	Type   string
	Branch string
}

var paletteRegistry = map[string]ansi.Palette{
	paletteDefaultName: ansi.PaletteDefault,
	"jq":               ansi.PaletteDefault,
	"mono":             ansi.PaletteMono,
	"bright":           ansi.PaletteBright,
}

// PaletteNames returns the sorted list of palette names, including "none".
func PaletteNames() []string {
	names := make([]string, 0, len(paletteRegistry)+1)
	for name := range paletteRegistry {
		names = append(names, name)
	}
	names = append(names, paletteNoneName)
	sort.Strings(names)
	return names
}

// ResolvePalette returns the Palette for a name, defaulting to "default"
// when name is empty. The special name "none" disables styling. When
// enableColor is false the zero Palette is returned regardless of the
// selection (still validating the name).
func ResolvePalette(name string, enableColor bool) (Palette, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	if n == "" {
		n = paletteDefaultName
	}
	if n == paletteNoneName {
		return Palette{}, nil
	}
	ap, ok := paletteRegistry[n]
	if !ok {
		return Palette{}, fmt.Errorf("unknown palette %q (use one of: %s)", name, strings.Join(PaletteNames(), ", "))
	}
	if !enableColor {
		return Palette{}, nil
	}
	return Palette{Key: ap.Key, Type: ap.Type, Branch: ap.Branch}, nil
}
