package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/Sayama3/L-System/store"
)

func runs(args []string) error {
	fs := flag.NewFlagSet("runs", flag.ExitOnError)
	limit := fs.Int("limit", 20, "Maximum number of runs to list")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: lsys runs <runs.db> [options]

List logged generation runs, newest first.

Options:
`)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		fs.Usage()
		return fmt.Errorf("database file required")
	}

	s, err := store.New(fs.Arg(0))
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer s.Close()

	list, err := s.ListRuns(*limit)
	if err != nil {
		return err
	}
	if len(list) == 0 {
		fmt.Println("No runs logged.")
		return nil
	}

	fmt.Printf("%-36s  %-12s  %-8s  %-7s  %-6s  %s\n",
		"ID", "SEED", "SYMBOLS", "NODES", "DEPTH", "STATUS")
	for _, r := range list {
		fmt.Printf("%-36s  %-12d  %-8d  %-7d  %-6d  %s\n",
			r.ID, r.Seed, r.Length, r.Nodes, r.Depth, r.Status)
	}
	return nil
}
