// Package results defines the structured output format for generation runs
package results

import (
	"time"

	"github.com/Sayama3/L-System/turtle"
)

const SchemaVersion = "1.0.0"

// PreviewLength caps the derivation preview stored in results.
const PreviewLength = 120

// Results contains complete generation output
type Results struct {
	Version     string              `json:"version"`
	Metadata    Metadata            `json:"metadata"`
	Grammar     Grammar             `json:"grammar"`
	Derivation  Derivation          `json:"derivation"`
	Tree        Tree                `json:"tree"`
	Diagnostics []turtle.Diagnostic `json:"diagnostics,omitempty"`
}

// Metadata contains run execution information
type Metadata struct {
	Timestamp   time.Time `json:"timestamp"`
	Seed        int64     `json:"seed"`
	Status      string    `json:"status"` // success, error
	Error       string    `json:"error,omitempty"`
	ComputeTime float64   `json:"computeTime"` // seconds
}

// Grammar summarizes the input parameters
type Grammar struct {
	Axiom      string            `json:"axiom"`
	Rules      map[string]string `json:"rules"`
	Iterations int               `json:"iterations"`
	Angle      float64           `json:"angle"`
}

// Derivation describes the rewritten symbol string
type Derivation struct {
	Length  int    `json:"length"`
	Preview string `json:"preview"`
	Symbols string `json:"symbols,omitempty"` // full string, only when requested
}

// Tree summarizes the generated spatial structure
type Tree struct {
	Nodes  int `json:"nodes"` // including the root
	Depth  int `json:"depth"`
	Leaves int `json:"leaves"`
}
