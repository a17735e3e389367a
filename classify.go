package schematree

import (
	"encoding/json"
	"reflect"
	"sort"
	"strings"
)

// Canonical type-name vocabulary. The exact strings are part of the rendered
// output contract, so they are fixed here rather than derived from Go type
// names.
const (
	typeDict      = "dict"
	typeList      = "list"
	typeTuple     = "tuple"
	typeSet       = "set"
	typeFrozenSet = "frozenset"
	typeInt       = "int"
	typeFloat     = "float"
	typeStr       = "str"
	typeBool      = "bool"
	typeNone      = "NoneType"
)

// sequenceTypes are the container names that render as "<seq>[<element>]".
var sequenceTypes = map[string]bool{
	typeList:      true,
	typeTuple:     true,
	typeSet:       true,
	typeFrozenSet: true,
}

// kind is the closed variant a value classifies into before recursion.
type kind int

const (
	kindMapping kind = iota
	kindSequence
	kindScalar
)

// classified is the outcome of the single classification pass over a value.
// pairs is populated for mappings, elems for sequences.
type classified struct {
	kind     kind
	typeName string
	pairs    []Pair
	elems    []any
}

// classify dispatches a value into the closed {mapping, sequence, scalar}
// variant set and resolves its canonical type name. It is total: values
// outside the vocabulary become scalars named after their concrete Go type.
func classify(v any) classified {
	switch x := v.(type) {
	case nil:
		return classified{kind: kindScalar, typeName: typeNone}
	case *Map:
		if x == nil {
			return classified{kind: kindScalar, typeName: typeNone}
		}
		return classified{kind: kindMapping, typeName: typeDict, pairs: x.Pairs()}
	case map[string]any:
		return classified{kind: kindMapping, typeName: typeDict, pairs: sortedPairs(x)}
	case []any:
		return classified{kind: kindSequence, typeName: typeList, elems: x}
	case Tuple:
		return classified{kind: kindSequence, typeName: typeTuple, elems: x}
	case Set:
		return classified{kind: kindSequence, typeName: typeSet, elems: x}
	case FrozenSet:
		return classified{kind: kindSequence, typeName: typeFrozenSet, elems: x}
	case bool:
		return classified{kind: kindScalar, typeName: typeBool}
	case string:
		return classified{kind: kindScalar, typeName: typeStr}
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, uintptr:
		return classified{kind: kindScalar, typeName: typeInt}
	case float32, float64:
		return classified{kind: kindScalar, typeName: typeFloat}
	case json.Number:
		// Matches JSON decoding semantics: a literal with a fraction or
		// exponent is a float, everything else an int.
		if strings.ContainsAny(string(x), ".eE") {
			return classified{kind: kindScalar, typeName: typeFloat}
		}
		return classified{kind: kindScalar, typeName: typeInt}
	}
	return classifyReflect(v)
}

// classifyReflect handles values outside the concrete type switch: named
// scalar types, typed slices/arrays, and string-keyed maps of any value
// type. Everything else is a leaf carrying its concrete Go type string.
func classifyReflect(v any) classified {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer:
		if rv.IsNil() {
			return classified{kind: kindScalar, typeName: typeNone}
		}
		return classify(rv.Elem().Interface())
	case reflect.Bool:
		return classified{kind: kindScalar, typeName: typeBool}
	case reflect.String:
		return classified{kind: kindScalar, typeName: typeStr}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return classified{kind: kindScalar, typeName: typeInt}
	case reflect.Float32, reflect.Float64:
		return classified{kind: kindScalar, typeName: typeFloat}
	case reflect.Slice, reflect.Array:
		elems := make([]any, rv.Len())
		for i := range elems {
			elems[i] = rv.Index(i).Interface()
		}
		return classified{kind: kindSequence, typeName: typeList, elems: elems}
	case reflect.Map:
		if rv.Type().Key().Kind() == reflect.String {
			pairs := make([]Pair, 0, rv.Len())
			iter := rv.MapRange()
			for iter.Next() {
				pairs = append(pairs, Pair{Key: iter.Key().String(), Value: iter.Value().Interface()})
			}
			sort.Slice(pairs, func(i, j int) bool { return pairs[i].Key < pairs[j].Key })
			return classified{kind: kindMapping, typeName: typeDict, pairs: pairs}
		}
	}
	return classified{kind: kindScalar, typeName: reflect.TypeOf(v).String()}
}

// typeNameOf resolves just the canonical type name of a value.
func typeNameOf(v any) string { return classify(v).typeName }

// sortedPairs flattens a raw Go map into pairs in sorted key order, the
// deterministic stand-in for insertion order that raw maps lack.
func sortedPairs(m map[string]any) []Pair {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	pairs := make([]Pair, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, Pair{Key: k, Value: m[k]})
	}
	return pairs
}

// sortedDistinct returns the sorted set of names.
func sortedDistinct(names []string) []string {
	seen := make(map[string]bool, len(names))
	out := make([]string, 0, len(names))
	for _, n := range names {
		if !seen[n] {
			seen[n] = true
			out = append(out, n)
		}
	}
	sort.Strings(out)
	return out
}
