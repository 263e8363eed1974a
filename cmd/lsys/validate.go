package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/Sayama3/L-System/grammar"
)

func validate(args []string) error {
	fs := flag.NewFlagSet("validate", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: lsys validate <grammar.json>

Check grammar parameters without deriving: non-empty axiom, non-empty
rule set, non-negative iteration count.
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
	if err := grammar.Validate(params); err != nil {
		return err
	}

	fmt.Printf("Grammar OK\n")
	fmt.Printf("  Axiom: %s\n", params.Axiom)
	fmt.Printf("  Rules: %s\n", params.Rules)
	fmt.Printf("  Iterations: %d\n", params.Iterations)
	fmt.Printf("  Angle: %.1f°\n", params.Angle)
	fmt.Printf("  Growth factor: %.2f symbols/rule\n", grammar.GrowthFactor(params.Rules))
	return nil
}
