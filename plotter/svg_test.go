package plotter

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Sayama3/L-System/grammar"
	"github.com/Sayama3/L-System/tree"
	"github.com/Sayama3/L-System/turtle"
)

func generate(t *testing.T, symbols string) *tree.Tree {
	t.Helper()
	p := grammar.Params{
		Axiom:      "F",
		Rules:      grammar.RuleSet{'F': "FF"},
		Iterations: 0,
		Angle:      25.0,
	}
	tr, _, err := turtle.Interpret(symbols, p, nil, turtle.NewSource(21), nil)
	if err != nil {
		t.Fatalf("Interpret failed: %v", err)
	}
	return tr
}

func TestRenderEdgeCount(t *testing.T) {
	tr := generate(t, "F[+F][-F]F")
	svg := NewSVGPlotter(400, 400).Render(tr)

	if !strings.HasPrefix(svg, `<svg xmlns="http://www.w3.org/2000/svg"`) {
		t.Error("Expected SVG root element")
	}
	// One line per parent->child edge: node count minus the root.
	lines := strings.Count(svg, "<line ")
	if lines != tr.Len()-1 {
		t.Errorf("Expected %d edges, got %d", tr.Len()-1, lines)
	}
	if !strings.Contains(svg, "<circle ") {
		t.Error("Expected root marker")
	}
}

func TestRenderTitleEscaped(t *testing.T) {
	tr := generate(t, "F")
	svg := NewSVGPlotter(200, 200).SetTitle("a <b> & c").Render(tr)
	if !strings.Contains(svg, "a &lt;b&gt; &amp; c") {
		t.Error("Expected escaped title text")
	}
}

func TestRenderRootOnlyTree(t *testing.T) {
	tr := generate(t, "+-")
	svg := NewSVGPlotter(200, 200).Render(tr)
	if strings.Contains(svg, "<line ") {
		t.Error("Expected no edges for a root-only tree")
	}
}

func TestSaveSVG(t *testing.T) {
	tr := generate(t, "FF")
	path := filepath.Join(t.TempDir(), "tree.svg")
	if err := SaveSVG(tr, path, 300, 300, "test"); err != nil {
		t.Fatalf("SaveSVG failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if !strings.Contains(string(data), "</svg>") {
		t.Error("Expected complete SVG document")
	}
}
