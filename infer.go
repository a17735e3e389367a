package schematree

// Option configures an inference call.
type Option func(*inferOptions)

type inferOptions struct {
	key      string
	maxItems int
}

// WithKey overrides the label of the returned root node. Default "root".
func WithKey(key string) Option {
	return func(o *inferOptions) { o.key = key }
}

// WithMaxItems bounds how many elements of a sequence are inspected for type
// inference. Default 10. Values <= 0 make every sequence look empty, which
// keeps the call total rather than rejecting the option.
func WithMaxItems(n int) Option {
	return func(o *inferOptions) { o.maxItems = n }
}

// Infer builds a schema tree from data. It never fails: every value maps to
// some Node, with values outside the known vocabulary degrading to leaves
// named after their concrete type. Mixed-type diagnostics are discarded; use
// InferWithMeta to collect them.
func Infer(data any, opts ...Option) *Node {
	n, _ := InferWithMeta(data, opts...)
	return n
}

// InferWithMeta is Infer plus the Warnings collected during traversal, one
// per mixed-type sequence encountered, in traversal order.
func InferWithMeta(data any, opts ...Option) (*Node, Warnings) {
	o := inferOptions{key: "root", maxItems: 10}
	for _, opt := range opts {
		opt(&o)
	}
	in := &inferencer{maxItems: o.maxItems}
	return in.infer(data, o.key), in.warnings
}

// inferencer carries the sampling bound and accumulates diagnostics for one
// inference call.
type inferencer struct {
	maxItems int
	warnings Warnings
}

func (in *inferencer) infer(data any, key string) *Node {
	c := classify(data)
	switch c.kind {
	case kindMapping:
		children := make([]*Node, 0, len(c.pairs))
		for _, p := range c.pairs {
			children = append(children, in.infer(p.Value, p.Key))
		}
		return &Node{Key: key, Types: []string{typeDict}, Children: children}
	case kindSequence:
		return in.inferSequence(c.elems, c.typeName, key)
	default:
		return &Node{Key: key, Types: []string{c.typeName}}
	}
}

// inferSequence samples the first maxItems elements and classifies the
// container by the distinct element type names:
//
//  1. all dicts       -> merge keys across elements, ElementType "dict"
//  2. one other type  -> ElementType set to that name (nested sequences are
//     tagged, not recursed into, e.g. list[list])
//  3. mixed           -> warning; bare container node
//
// Zero sampled elements (empty container, or maxItems <= 0) yield a bare
// container node.
func (in *inferencer) inferSequence(elems []any, containerType, key string) *Node {
	limit := in.maxItems
	if limit < 0 {
		limit = 0
	}
	if limit > len(elems) {
		limit = len(elems)
	}
	sampled := elems[:limit]
	if len(sampled) == 0 {
		return &Node{Key: key, Types: []string{containerType}}
	}

	names := make([]string, len(sampled))
	for i, e := range sampled {
		names[i] = typeNameOf(e)
	}
	distinct := sortedDistinct(names)

	if len(distinct) == 1 && distinct[0] == typeDict {
		return &Node{
			Key:         key,
			Types:       []string{containerType},
			Children:    in.mergeMappings(sampled),
			ElementType: typeDict,
		}
	}
	if len(distinct) == 1 {
		return &Node{Key: key, Types: []string{containerType}, ElementType: distinct[0]}
	}

	in.warnings = append(in.warnings, Warning{Key: key, Types: distinct})
	return &Node{Key: key, Types: []string{containerType}}
}

// mergeMappings merges keys across sibling dicts, tracking per-key type
// sets. Keys keep first-seen order across the whole slice; a dict missing a
// key contributes nothing for it (absence is not a type).
func (in *inferencer) mergeMappings(dicts []any) []*Node {
	var order []string
	typesByKey := make(map[string][]string)
	valuesByKey := make(map[string][]any)

	for _, d := range dicts {
		for _, p := range classify(d).pairs {
			if _, seen := typesByKey[p.Key]; !seen {
				order = append(order, p.Key)
			}
			typesByKey[p.Key] = append(typesByKey[p.Key], typeNameOf(p.Value))
			valuesByKey[p.Key] = append(valuesByKey[p.Key], p.Value)
		}
	}

	children := make([]*Node, 0, len(order))
	for _, k := range order {
		distinct := sortedDistinct(typesByKey[k])

		// All occurrences are dicts: merge them into one child subtree.
		if len(distinct) == 1 && distinct[0] == typeDict {
			children = append(children, &Node{
				Key:      k,
				Types:    []string{typeDict},
				Children: in.mergeMappings(valuesByKey[k]),
			})
			continue
		}

		// All occurrences are lists: flatten every occurrence into one
		// combined pool, then infer a sequence node from it. The pool is
		// built before the maxItems cap applies inside inferSequence, so a
		// key held as a length-3 list by 5 dicts resamples from a
		// 15-element pool. Documented behavior, kept as-is.
		if len(distinct) == 1 && distinct[0] == typeList {
			var pool []any
			for _, v := range valuesByKey[k] {
				pool = append(pool, classify(v).elems...)
			}
			children = append(children, in.inferSequence(pool, typeList, k))
			continue
		}

		// Single non-container type, or several distinct types: carry the
		// sorted set verbatim.
		children = append(children, &Node{Key: k, Types: distinct})
	}
	return children
}
