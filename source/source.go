// Package source loads JSON and YAML input into the ordered value model the
// schematree inferencer consumes. JSON objects and YAML mappings become
// *schematree.Map so that key insertion order survives decoding; arrays and
// sequences become []any; numbers split into int64 vs float64 by literal
// shape.
package source

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrUnsupportedExt reports a file whose extension names no known format.
var ErrUnsupportedExt = errors.New("source: unsupported file extension")

// File loads a value from path, dispatching on the file extension: .json,
// .yaml and .yml are supported.
func File(path string) (any, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		return JSONBytes(data)
	case ".yaml", ".yml":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		return YAMLBytes(data)
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupportedExt, path)
}

// Load resolves the path-vs-data rule for convenience callers: a string
// naming an existing regular file is loaded via File (including its
// unsupported-extension error); any other value, including strings that do
// not name a file, passes through untouched as data.
func Load(v any) (any, error) {
	path, ok := v.(string)
	if !ok {
		return v, nil
	}
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return v, nil
	}
	return File(path)
}
