package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/Sayama3/L-System/grammar"
	"github.com/Sayama3/L-System/results"
	"github.com/Sayama3/L-System/store"
	"github.com/Sayama3/L-System/turtle"
)

func generate(args []string) error {
	fs := flag.NewFlagSet("generate", flag.ExitOnError)
	seed := fs.Int64("seed", time.Now().UnixNano(), "Random seed (defaults to current time)")
	output := fs.String("output", "", "Output file for results JSON")
	dbPath := fs.String("db", "", "SQLite database to log the run to")
	keepSymbols := fs.Bool("symbols", false, "Include the full derived string in results")
	lenient := fs.Bool("lenient", false, "Ignore extra branch closes instead of failing")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: lsys generate <grammar.json> [options]

Derive the grammar and interpret it into a spatial tree. Results are
written as JSON and optionally logged to a SQLite database.

Options:
`)
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Examples:
  # Reproducible run
  lsys generate grammar.json --seed 42 --output run.json

  # Log to a database
  lsys generate grammar.json --seed 42 --db runs.db
`)
	}

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		fs.Usage()
		return fmt.Errorf("grammar file required")
	}

	params, err := loadParams(fs.Arg(0))
	if err != nil {
		return err
	}

	opts := turtle.DefaultOptions()
	opts.Lenient = *lenient

	start := time.Now()
	symbols, err := grammar.Rewrite(params)
	if err != nil {
		return fmt.Errorf("rewrite: %w", err)
	}
	tr, diags, interpErr := turtle.Interpret(symbols, params, nil, turtle.NewSource(*seed), opts)
	elapsed := time.Since(start).Seconds()

	builder := results.NewBuilder().
		WithGrammar(params).
		WithDerivation(symbols, *keepSymbols).
		WithTree(tr).
		WithRun(*seed, elapsed).
		WithDiagnostics(diags)
	if interpErr != nil {
		builder.WithError(interpErr)
	}
	res := builder.Build()

	if *output != "" {
		if err := results.WriteJSON(res, *output); err != nil {
			return fmt.Errorf("write results: %w", err)
		}
	}

	if *dbPath != "" {
		s, err := store.New(*dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer s.Close()
		id, err := s.LogRun(res)
		if err != nil {
			return fmt.Errorf("log run: %w", err)
		}
		fmt.Fprintf(os.Stderr, "  Run id: %s\n", id)
	}

	fmt.Fprintf(os.Stderr, "Generation complete\n")
	fmt.Fprintf(os.Stderr, "  Seed: %d\n", *seed)
	fmt.Fprintf(os.Stderr, "  Symbols: %d\n", len(symbols))
	fmt.Fprintf(os.Stderr, "  Nodes: %d (depth %d, %d leaves)\n", res.Tree.Nodes, res.Tree.Depth, res.Tree.Leaves)
	if len(diags) > 0 {
		fmt.Fprintf(os.Stderr, "  Diagnostics: %d\n", len(diags))
	}
	fmt.Fprintf(os.Stderr, "  Compute time: %.3fs\n", elapsed)
	if *output != "" {
		fmt.Fprintf(os.Stderr, "  Output: %s\n", *output)
	}

	return interpErr
}
