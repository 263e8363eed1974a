package parser

import (
	"testing"

	"github.com/Sayama3/L-System/grammar"
)

func TestFromJSON(t *testing.T) {
	data := []byte(`{
		"axiom": "X",
		"rules": {"X": "F[+X]F[-X]+X", "F": "FF"},
		"iterations": 4,
		"angle": 25.0
	}`)

	p, err := FromJSON(data)
	if err != nil {
		t.Fatalf("FromJSON failed: %v", err)
	}
	if p.Axiom != "X" {
		t.Errorf("Expected axiom 'X', got '%s'", p.Axiom)
	}
	if len(p.Rules) != 2 {
		t.Errorf("Expected 2 rules, got %d", len(p.Rules))
	}
	if p.Rules['F'] != "FF" {
		t.Errorf("Expected rule F -> FF, got '%s'", p.Rules['F'])
	}
	if p.Iterations != 4 {
		t.Errorf("Expected 4 iterations, got %d", p.Iterations)
	}
	if p.Angle != 25.0 {
		t.Errorf("Expected angle 25.0, got %f", p.Angle)
	}
	if err := grammar.Validate(p); err != nil {
		t.Errorf("Expected valid params, got %v", err)
	}
}

func TestFromJSONErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"malformed", `{"axiom": `},
		{"multi-rune rule key", `{"axiom": "F", "rules": {"FX": "F"}, "iterations": 1}`},
		{"empty rule key", `{"axiom": "F", "rules": {"": "F"}, "iterations": 1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := FromJSON([]byte(tt.data)); err == nil {
				t.Error("Expected error, got nil")
			}
		})
	}
}

func TestRoundTrip(t *testing.T) {
	p := grammar.Params{
		Axiom:      "F",
		Rules:      grammar.RuleSet{'F': "F+F-F"},
		Iterations: 3,
		Angle:      60.0,
		MaxLength:  4096,
	}

	data, err := ToJSON(p)
	if err != nil {
		t.Fatalf("ToJSON failed: %v", err)
	}
	got, err := FromJSON(data)
	if err != nil {
		t.Fatalf("FromJSON failed: %v", err)
	}

	if got.Axiom != p.Axiom || got.Iterations != p.Iterations ||
		got.Angle != p.Angle || got.MaxLength != p.MaxLength {
		t.Errorf("Round trip changed params: %+v vs %+v", got, p)
	}
	if got.Rules['F'] != p.Rules['F'] {
		t.Errorf("Round trip changed rules: %v vs %v", got.Rules, p.Rules)
	}
}

func TestFromJSONUnicodeSymbol(t *testing.T) {
	p, err := FromJSON([]byte(`{"axiom": "Δ", "rules": {"Δ": "ΔΔ"}, "iterations": 1}`))
	if err != nil {
		t.Fatalf("FromJSON failed: %v", err)
	}
	if p.Rules['Δ'] != "ΔΔ" {
		t.Errorf("Expected rule for Δ, got %v", p.Rules)
	}
}
