package results

import (
	"time"

	"github.com/Sayama3/L-System/grammar"
	"github.com/Sayama3/L-System/tree"
	"github.com/Sayama3/L-System/turtle"
)

// Builder helps construct Results from generation output
type Builder struct {
	results Results
}

// NewBuilder creates a new results builder
func NewBuilder() *Builder {
	return &Builder{
		results: Results{
			Version: SchemaVersion,
			Metadata: Metadata{
				Timestamp: time.Now(),
				Status:    "success",
			},
		},
	}
}

// WithGrammar sets the input parameters
func (b *Builder) WithGrammar(p grammar.Params) *Builder {
	rules := make(map[string]string, len(p.Rules))
	for sym, replacement := range p.Rules {
		rules[string(sym)] = replacement
	}
	b.results.Grammar = Grammar{
		Axiom:      p.Axiom,
		Rules:      rules,
		Iterations: p.Iterations,
		Angle:      p.Angle,
	}
	return b
}

// WithDerivation sets the rewritten string. The full string is stored
// only when keepSymbols is set; the preview is always stored.
func (b *Builder) WithDerivation(symbols string, keepSymbols bool) *Builder {
	preview := symbols
	if len(preview) > PreviewLength {
		preview = preview[:PreviewLength] + "..."
	}
	b.results.Derivation = Derivation{
		Length:  len(symbols),
		Preview: preview,
	}
	if keepSymbols {
		b.results.Derivation.Symbols = symbols
	}
	return b
}

// WithTree summarizes the generated tree
func (b *Builder) WithTree(t *tree.Tree) *Builder {
	b.results.Tree = Tree{
		Nodes:  t.Len(),
		Depth:  t.Depth(),
		Leaves: t.Leaves(),
	}
	return b
}

// WithRun sets seed and timing information
func (b *Builder) WithRun(seed int64, computeTime float64) *Builder {
	b.results.Metadata.Seed = seed
	b.results.Metadata.ComputeTime = computeTime
	return b
}

// WithDiagnostics attaches interpreter diagnostics
func (b *Builder) WithDiagnostics(diags []turtle.Diagnostic) *Builder {
	b.results.Diagnostics = diags
	return b
}

// WithError marks the run as failed
func (b *Builder) WithError(err error) *Builder {
	b.results.Metadata.Status = "error"
	b.results.Metadata.Error = err.Error()
	return b
}

// Build returns the assembled results
func (b *Builder) Build() *Results {
	return &b.results
}
