// Package schematree infers a human-readable schema tree for arbitrary
// nested data and renders it as a Unicode box-drawing diagram.
//
// It provides:
//
// - Inference over in-memory values (mappings, sequences, sets, scalars)
//   into an immutable Node tree, with per-sequence sampling via WithMaxItems
// - A collected Warnings slice for mixed-type sequences via InferWithMeta
// - A deterministic tree renderer (Render) plus ANSI styling (RenderStyled)
// - Convenience wrappers Preview and Fprint
//
// Design policy:
// - Keep only public APIs in the root package; presentation details live
//   under internal/, input decoding under source/, and the CLI under
//   cmd/schematree.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	data, err := source.File("payload.json")
//	tree, warns := schematree.InferWithMeta(data, schematree.WithMaxItems(20))
//	fmt.Println(schematree.Render(tree))
//
// Output looks like:
//
//	root
//	├── user_id: int
//	├── profile: dict
//	│   ├── nickname: str
//	│   └── settings: dict
//	│       ├── dark_mode: bool
//	│       └── notifications: list[int]
//	└── history: list[dict]
//	    ├── action: str
//	    └── timestamp: int
package schematree
