package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/Sayama3/L-System/grammar"
	"github.com/Sayama3/L-System/plotter"
	"github.com/Sayama3/L-System/turtle"
)

func plot(args []string) error {
	fs := flag.NewFlagSet("plot", flag.ExitOnError)
	seed := fs.Int64("seed", time.Now().UnixNano(), "Random seed (defaults to current time)")
	output := fs.String("output", "", "Output SVG file (required)")
	width := fs.Float64("width", 800, "SVG width in pixels")
	height := fs.Float64("height", 800, "SVG height in pixels")
	title := fs.String("title", "", "Plot title (defaults to the axiom and rules)")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: lsys plot <grammar.json> [options]

Derive and interpret a grammar, then render the generated tree as an
SVG line drawing (orthographic X/Y projection).

Options:
`)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		fs.Usage()
		return fmt.Errorf("grammar file required")
	}
	if *output == "" {
		fs.Usage()
		return fmt.Errorf("--output required")
	}

	params, err := loadParams(fs.Arg(0))
	if err != nil {
		return err
	}

	symbols, err := grammar.Rewrite(params)
	if err != nil {
		return fmt.Errorf("rewrite: %w", err)
	}
	tr, diags, err := turtle.Interpret(symbols, params, nil, turtle.NewSource(*seed), nil)
	if err != nil {
		return fmt.Errorf("interpret: %w", err)
	}
	for _, d := range diags {
		fmt.Fprintf(os.Stderr, "Warning: %s at index %d\n", d.Message, d.Index)
	}

	name := *title
	if name == "" {
		name = fmt.Sprintf("%s | %s | n=%d", params.Axiom, params.Rules, params.Iterations)
	}
	if err := plotter.SaveSVG(tr, *output, *width, *height, name); err != nil {
		return fmt.Errorf("write svg: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Plotted %d nodes to %s (seed %d)\n", tr.Len(), *output, *seed)
	return nil
}
