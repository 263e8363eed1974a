package main

import (
	"fmt"
	"os"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "derive":
		if err := derive(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "validate":
		if err := validate(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "generate":
		if err := generate(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "plot":
		if err := plot(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "sweep":
		if err := sweep(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "runs":
		if err := runs(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "help", "-h", "--help":
		printUsage()
	case "version", "-v", "--version":
		fmt.Println("lsys version 1.0.0")
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`lsys - L-system derivation and turtle generation tool

Usage:
  lsys <command> [options]

Commands:
  derive     Rewrite a grammar and print the derived string
  validate   Validate grammar parameters
  generate   Derive and interpret a grammar into a spatial tree
  plot       Generate SVG visualization of a generated tree
  sweep      Interpret one grammar under many seeds and summarize
  runs       List logged generation runs from a SQLite database
  help       Show this help message
  version    Show version information

Examples:
  # Derive the symbol string only
  lsys derive grammar.json

  # Full generation run with a fixed seed
  lsys generate grammar.json --seed 42 --output run.json

  # Render the tree as SVG
  lsys plot grammar.json --seed 42 --output tree.svg

  # Log runs to a database, then inspect them
  lsys generate grammar.json --seed 42 --db runs.db
  lsys runs runs.db

For command-specific help, run:
  lsys <command> --help`)
}
