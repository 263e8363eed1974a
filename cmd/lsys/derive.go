package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/Sayama3/L-System/grammar"
	"github.com/Sayama3/L-System/parser"
)

func derive(args []string) error {
	fs := flag.NewFlagSet("derive", flag.ExitOnError)
	maxPrint := fs.Int("max-print", 4096, "Print only a summary when the derivation is longer than this")
	output := fs.String("output", "", "Write the full derived string to a file instead of stdout")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: lsys derive <grammar.json> [options]

Rewrite a grammar for the configured number of iterations and print
the derived symbol string.

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

	params, err := loadParams(fs.Arg(0))
	if err != nil {
		return err
	}

	symbols, err := grammar.Rewrite(params)
	if err != nil {
		return fmt.Errorf("rewrite: %w", err)
	}

	if *output != "" {
		if err := os.WriteFile(*output, []byte(symbols), 0644); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		fmt.Fprintf(os.Stderr, "Derived %d symbols to %s\n", len(symbols), *output)
		return nil
	}

	if len(symbols) > *maxPrint {
		fmt.Fprintf(os.Stderr, "Derivation is %d symbols (over --max-print %d); first %d:\n",
			len(symbols), *maxPrint, *maxPrint)
		fmt.Println(symbols[:*maxPrint])
		return nil
	}
	fmt.Println(symbols)
	return nil
}

// loadParams reads and parses a grammar JSON file.
func loadParams(filename string) (grammar.Params, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return grammar.Params{}, fmt.Errorf("read grammar: %w", err)
	}
	params, err := parser.FromJSON(data)
	if err != nil {
		return grammar.Params{}, fmt.Errorf("parse grammar: %w", err)
	}
	return params, nil
}
