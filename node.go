package schematree

// Node is one node in an inferred schema tree.
//
// A Node with non-empty Children has Types equal to ["dict"], or to a single
// sequence type name when it was produced by merging dict elements of a
// sequence (ElementType is "dict" in that case). ElementType is set only for
// homogeneous sequences; it holds the one type name shared by every sampled
// element, and is empty for dict nodes, mixed-type sequences and scalars.
//
// Trees are built bottom-up by Infer and are not mutated afterwards; each
// Node exclusively owns its Children (a tree, not a graph).
type Node struct {
	Key         string
	Types       []string // sorted and deduplicated when len > 1
	Children    []*Node
	ElementType string // "" when absent
}
