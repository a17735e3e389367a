package schematree

import (
	"fmt"
	"io"
)

// Preview infers the schema of data and returns the rendered tree in one
// call. Diagnostics are discarded; callers that need them should compose
// InferWithMeta and Render themselves.
func Preview(data any, opts ...Option) string {
	return Render(Infer(data, opts...))
}

// Fprint renders like Preview and writes the tree to w followed by a
// newline.
func Fprint(w io.Writer, data any, opts ...Option) error {
	_, err := fmt.Fprintln(w, Preview(data, opts...))
	return err
}
