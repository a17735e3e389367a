package schematree

// Pair is one key/value entry of an ordered Map.
type Pair struct {
	Key   string
	Value any
}

// Map is a string-keyed map that preserves insertion order. It is the
// fidelity path for "dict" inference: the source package produces it when
// decoding JSON objects and YAML mappings so that children keep first-seen
// key order. Raw Go maps are also accepted by Infer but iterate in sorted
// key order instead, since they carry no insertion order of their own.
type Map struct {
	pairs []Pair
	index map[string]int
}

// NewMap returns an empty ordered map.
func NewMap() *Map {
	return &Map{index: make(map[string]int)}
}

// MapOf builds an ordered map from pairs, keeping first occurrence order.
func MapOf(pairs ...Pair) *Map {
	m := NewMap()
	for _, p := range pairs {
		m.Set(p.Key, p.Value)
	}
	return m
}

// Set stores value under key. Re-setting an existing key replaces its value
// without changing the key's position.
func (m *Map) Set(key string, value any) {
	if i, ok := m.index[key]; ok {
		m.pairs[i].Value = value
		return
	}
	m.index[key] = len(m.pairs)
	m.pairs = append(m.pairs, Pair{Key: key, Value: value})
}

// Get returns the value stored under key.
func (m *Map) Get(key string) (any, bool) {
	i, ok := m.index[key]
	if !ok {
		return nil, false
	}
	return m.pairs[i].Value, true
}

// Len reports the number of entries.
func (m *Map) Len() int { return len(m.pairs) }

// Pairs returns the entries in insertion order. The slice is the Map's
// backing storage; callers must not mutate it.
func (m *Map) Pairs() []Pair { return m.pairs }

// Tuple, Set and FrozenSet tag plain slices with the remaining container
// kinds of the type vocabulary. A plain []any is a list. Set and FrozenSet
// are nominally unordered; their iteration order is the slice order, which
// keeps inference deterministic within a single pass.
type (
	Tuple     []any
	Set       []any
	FrozenSet []any
)
