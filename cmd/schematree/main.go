// Command schematree prints an inferred schema tree for JSON or YAML input.
//
//	schematree data.json
//	schematree --max-items 20 data.json other.yaml
//	cat data.json | schematree
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	flag "github.com/spf13/pflag"

	schematree "github.com/schematree/schematree"
	"github.com/schematree/schematree/source"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("schematree", flag.ContinueOnError)
	fs.SetOutput(stderr)
	maxItems := fs.Int("max-items", 10, "max number of sequence elements sampled for type inference")
	forceYAML := fs.Bool("yaml", false, "parse stdin as YAML instead of JSON")
	paletteName := fs.String("palette", "default", `color palette for TTY output ("none" disables)`)
	quiet := fs.BoolP("quiet", "q", false, "suppress mixed-type warnings")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: schematree [flags] [file ...]\n\nPrints an inferred schema tree for JSON or YAML input.\nWith no file, or with \"-\", input is read from stdin.\n\nFlags:\n%s", fs.FlagUsages())
	}
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}

	color := false
	if f, ok := stdout.(*os.File); ok {
		color = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	pal, err := schematree.ResolvePalette(*paletteName, color)
	if err != nil {
		fmt.Fprintf(stderr, "schematree: %v\n", err)
		return 2
	}

	paths := fs.Args()
	if len(paths) == 0 {
		if f, ok := stdin.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
			fs.Usage()
			return 2
		}
		paths = []string{"-"}
	}

	for _, path := range paths {
		data, err := loadInput(path, stdin, *forceYAML)
		if err != nil {
			fmt.Fprintf(stderr, "schematree: %v\n", err)
			return 1
		}
		tree, warns := schematree.InferWithMeta(data, schematree.WithMaxItems(*maxItems))
		if !*quiet {
			for _, w := range warns {
				fmt.Fprintf(stderr, "schematree: warning: %s\n", w)
			}
		}
		fmt.Fprintln(stdout, schematree.RenderStyled(tree, pal))
	}
	return 0
}

func loadInput(path string, stdin io.Reader, forceYAML bool) (any, error) {
	if path == "-" {
		if forceYAML {
			return source.YAMLReader(stdin)
		}
		return source.JSONReader(stdin)
	}
	return source.File(path)
}
