package results

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/Sayama3/L-System/grammar"
	"github.com/Sayama3/L-System/turtle"
)

func sweepParams() grammar.Params {
	return grammar.Params{
		Axiom:      "F",
		Rules:      grammar.RuleSet{'F': "F[+F]F"},
		Iterations: 3,
		Angle:      22.5,
	}
}

func TestBuilder(t *testing.T) {
	p := sweepParams()
	symbols, err := grammar.Rewrite(p)
	if err != nil {
		t.Fatalf("Rewrite failed: %v", err)
	}
	tr, diags, err := turtle.Interpret(symbols, p, nil, turtle.NewSource(11), nil)
	if err != nil {
		t.Fatalf("Interpret failed: %v", err)
	}

	res := NewBuilder().
		WithGrammar(p).
		WithDerivation(symbols, false).
		WithTree(tr).
		WithRun(11, 0.005).
		WithDiagnostics(diags).
		Build()

	if res.Version != SchemaVersion {
		t.Errorf("Expected version %s, got %s", SchemaVersion, res.Version)
	}
	if res.Metadata.Status != "success" {
		t.Errorf("Expected status success, got %s", res.Metadata.Status)
	}
	if res.Metadata.Seed != 11 {
		t.Errorf("Expected seed 11, got %d", res.Metadata.Seed)
	}
	if res.Derivation.Length != len(symbols) {
		t.Errorf("Expected derivation length %d, got %d", len(symbols), res.Derivation.Length)
	}
	if res.Derivation.Symbols != "" {
		t.Error("Expected full symbols omitted when not requested")
	}
	if res.Tree.Nodes != tr.Len() {
		t.Errorf("Expected %d nodes, got %d", tr.Len(), res.Tree.Nodes)
	}
	if res.Grammar.Rules["F"] != "F[+F]F" {
		t.Errorf("Expected rule F -> F[+F]F, got %v", res.Grammar.Rules)
	}
}

func TestBuilderWithError(t *testing.T) {
	res := NewBuilder().WithError(errors.New("boom")).Build()
	if res.Metadata.Status != "error" || res.Metadata.Error != "boom" {
		t.Errorf("Expected error metadata, got %+v", res.Metadata)
	}
}

func TestWriteReadJSON(t *testing.T) {
	res := NewBuilder().
		WithGrammar(sweepParams()).
		WithDerivation("F[+F]F", true).
		WithRun(3, 0.001).
		Build()

	path := filepath.Join(t.TempDir(), "run.json")
	if err := WriteJSON(res, path); err != nil {
		t.Fatalf("WriteJSON failed: %v", err)
	}
	got, err := ReadJSON(path)
	if err != nil {
		t.Fatalf("ReadJSON failed: %v", err)
	}

	if got.Derivation.Symbols != "F[+F]F" {
		t.Errorf("Expected symbols preserved, got '%s'", got.Derivation.Symbols)
	}
	if got.Metadata.Seed != 3 {
		t.Errorf("Expected seed 3, got %d", got.Metadata.Seed)
	}
}

func TestReadJSONMissing(t *testing.T) {
	if _, err := ReadJSON(filepath.Join(os.TempDir(), "does-not-exist-12345.json")); err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestSweepSeeds(t *testing.T) {
	seeds := []int64{1, 2, 3, 4, 5, 6, 7, 8}
	sweep, err := SweepSeeds(sweepParams(), nil, seeds)
	if err != nil {
		t.Fatalf("SweepSeeds failed: %v", err)
	}

	if len(sweep.Points) != len(seeds) {
		t.Fatalf("Expected %d points, got %d", len(seeds), len(sweep.Points))
	}
	// Node count is structural: identical for every seed of the same
	// derivation, only geometry varies.
	for _, pt := range sweep.Points {
		if pt.Error != "" {
			t.Errorf("Seed %d failed: %s", pt.Seed, pt.Error)
		}
		if pt.Nodes != sweep.Points[0].Nodes {
			t.Errorf("Seed %d node count %d differs from %d", pt.Seed, pt.Nodes, sweep.Points[0].Nodes)
		}
	}
	if sweep.MinNodes != sweep.MaxNodes {
		t.Errorf("Expected min == max nodes, got %d vs %d", sweep.MinNodes, sweep.MaxNodes)
	}
	if sweep.MeanNodes != float64(sweep.MinNodes) {
		t.Errorf("Expected mean %d, got %f", sweep.MinNodes, sweep.MeanNodes)
	}
}

func TestSweepSeedsInvalidGrammar(t *testing.T) {
	p := sweepParams()
	p.Iterations = -1
	if _, err := SweepSeeds(p, nil, []int64{1}); !errors.Is(err, grammar.ErrInvalidGrammar) {
		t.Errorf("Expected ErrInvalidGrammar, got %v", err)
	}
}
