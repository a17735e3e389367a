package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func runCLI(t *testing.T, args []string, stdin string) (code int, stdout, stderr string) {
	t.Helper()
	var out, errb bytes.Buffer
	code = run(args, strings.NewReader(stdin), &out, &errb)
	return code, out.String(), errb.String()
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRunFileArgument(t *testing.T) {
	path := writeFile(t, "data.json", `{"x":[1,2,3]}`)
	code, out, errb := runCLI(t, []string{path}, "")
	if code != 0 {
		t.Fatalf("exit = %d, stderr = %q", code, errb)
	}
	if out != "root\n└── x: list[int]\n" {
		t.Fatalf("stdout = %q", out)
	}
}

func TestRunStdinDefault(t *testing.T) {
	code, out, _ := runCLI(t, nil, `{"x":[1,2,3]}`)
	if code != 0 {
		t.Fatalf("exit = %d", code)
	}
	if !strings.Contains(out, "x: list[int]") {
		t.Fatalf("stdout = %q", out)
	}
}

func TestRunStdinDashArgument(t *testing.T) {
	code, out, _ := runCLI(t, []string{"-"}, `[1,2,3]`)
	if code != 0 {
		t.Fatalf("exit = %d", code)
	}
	if out != "root: list[int]\n" {
		t.Fatalf("stdout = %q", out)
	}
}

func TestRunYAMLStdin(t *testing.T) {
	code, out, _ := runCLI(t, []string{"--yaml"}, "b: 1\na: two\n")
	if code != 0 {
		t.Fatalf("exit = %d", code)
	}
	if out != "root\n├── b: int\n└── a: str\n" {
		t.Fatalf("stdout = %q", out)
	}
}

func TestRunMaxItemsFlag(t *testing.T) {
	// First two elements are ints; the third would make the list mixed.
	input := `{"vals":[1,1,"x"]}`

	code, out, errb := runCLI(t, []string{"--max-items", "2", "-"}, input)
	if code != 0 {
		t.Fatalf("exit = %d", code)
	}
	if !strings.Contains(out, "vals: list[int]") {
		t.Fatalf("stdout = %q", out)
	}
	if errb != "" {
		t.Fatalf("unexpected warnings: %q", errb)
	}

	code, out, errb = runCLI(t, []string{"-"}, input)
	if code != 0 {
		t.Fatalf("exit = %d", code)
	}
	if !strings.Contains(out, "vals: list\n") {
		t.Fatalf("stdout = %q", out)
	}
	if !strings.Contains(errb, "Key 'vals': mixed types in list: ['int', 'str']") {
		t.Fatalf("stderr = %q", errb)
	}
}

func TestRunQuietSuppressesWarnings(t *testing.T) {
	code, _, errb := runCLI(t, []string{"--quiet", "-"}, `[1,"x"]`)
	if code != 0 {
		t.Fatalf("exit = %d", code)
	}
	if errb != "" {
		t.Fatalf("stderr = %q, want empty", errb)
	}
}

func TestRunUnsupportedExtension(t *testing.T) {
	path := writeFile(t, "data.txt", "hello")
	code, _, errb := runCLI(t, []string{path}, "")
	if code != 1 {
		t.Fatalf("exit = %d, want 1", code)
	}
	if !strings.Contains(errb, "unsupported file extension") {
		t.Fatalf("stderr = %q", errb)
	}
}

func TestRunMissingFile(t *testing.T) {
	code, _, errb := runCLI(t, []string{"/no/such/file.json"}, "")
	if code != 1 {
		t.Fatalf("exit = %d, want 1", code)
	}
	if errb == "" {
		t.Fatalf("expected error on stderr")
	}
}

func TestRunBadFlag(t *testing.T) {
	code, _, _ := runCLI(t, []string{"--definitely-not-a-flag"}, "")
	if code != 2 {
		t.Fatalf("exit = %d, want 2", code)
	}
}

func TestRunUnknownPalette(t *testing.T) {
	code, _, errb := runCLI(t, []string{"--palette", "nope", "-"}, `{}`)
	if code != 2 {
		t.Fatalf("exit = %d, want 2", code)
	}
	if !strings.Contains(errb, "unknown palette") {
		t.Fatalf("stderr = %q", errb)
	}
}

func TestRunMultipleFiles(t *testing.T) {
	a := writeFile(t, "a.json", `{"a":1}`)
	b := writeFile(t, "b.json", `[true]`)
	code, out, _ := runCLI(t, []string{a, b}, "")
	if code != 0 {
		t.Fatalf("exit = %d", code)
	}
	if out != "root\n└── a: int\nroot: list[bool]\n" {
		t.Fatalf("stdout = %q", out)
	}
}
