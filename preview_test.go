package schematree_test

import (
	"bytes"
	"strings"
	"testing"

	schematree "github.com/schematree/schematree"
)

func TestPreview(t *testing.T) {
	data := schematree.MapOf(
		schematree.Pair{Key: "a", Value: 1},
		schematree.Pair{Key: "b", Value: "hello"},
	)
	got := schematree.Preview(data)
	if !strings.Contains(got, "a: int") || !strings.Contains(got, "b: str") {
		t.Fatalf("preview = %q", got)
	}
}

func TestPreviewForwardsOptions(t *testing.T) {
	got := schematree.Preview([]any{1, "x"}, schematree.WithMaxItems(1), schematree.WithKey("payload"))
	if got != "payload: list[int]" {
		t.Fatalf("got %q", got)
	}
}

func TestFprint(t *testing.T) {
	var buf bytes.Buffer
	data := schematree.MapOf(schematree.Pair{Key: "x", Value: []any{1, 2, 3}})
	if err := schematree.Fprint(&buf, data); err != nil {
		t.Fatalf("Fprint: %v", err)
	}
	if got, want := buf.String(), "root\n└── x: list[int]\n"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}
