package schematree

import "fmt"

// Warning records one mixed-type sequence found during inference. It is a
// collected diagnostic, not an error: traversal continues past it and the
// node it refers to simply lacks ElementType and Children.
type Warning struct {
	Key   string
	Types []string // sorted distinct element type names
}

func (w Warning) String() string {
	return fmt.Sprintf("Key '%s': mixed types in list: %s", w.Key, typeListLiteral(w.Types))
}

// Warnings is the slice of diagnostics collected during one inference call,
// in traversal order.
type Warnings []Warning

// Strings renders every warning message, mainly for test assertions and
// batch logging.
func (ws Warnings) Strings() []string {
	out := make([]string, len(ws))
	for i, w := range ws {
		out[i] = w.String()
	}
	return out
}
