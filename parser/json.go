// Package parser handles JSON import/export for grammar parameters.
//
// The JSON format:
//
//	{
//	  "axiom": "X",
//	  "rules": {"X": "F[+X]F[-X]+X", "F": "FF"},
//	  "iterations": 4,
//	  "angle": 25.0,
//	  "maxLength": 1048576
//	}
//
// Rule keys must be single symbols; maxLength is optional.
package parser

import (
	"encoding/json"
	"fmt"

	"github.com/Sayama3/L-System/grammar"
)

// paramsJSON is the wire form of grammar.Params.
type paramsJSON struct {
	Axiom      string            `json:"axiom"`
	Rules      map[string]string `json:"rules"`
	Iterations int               `json:"iterations"`
	Angle      float64           `json:"angle"`
	MaxLength  int               `json:"maxLength,omitempty"`
}

// FromJSON parses grammar parameters from JSON bytes.
// The result is syntactically well-formed but not yet validated;
// callers run grammar.Validate before rewriting.
func FromJSON(data []byte) (grammar.Params, error) {
	var raw paramsJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return grammar.Params{}, fmt.Errorf("invalid JSON: %w", err)
	}

	rules := make(grammar.RuleSet, len(raw.Rules))
	for key, replacement := range raw.Rules {
		runes := []rune(key)
		if len(runes) != 1 {
			return grammar.Params{}, fmt.Errorf("rule key %q must be a single symbol", key)
		}
		rules[runes[0]] = replacement
	}

	return grammar.Params{
		Axiom:      raw.Axiom,
		Rules:      rules,
		Iterations: raw.Iterations,
		Angle:      raw.Angle,
		MaxLength:  raw.MaxLength,
	}, nil
}

// ToJSON serializes grammar parameters to indented JSON bytes.
func ToJSON(p grammar.Params) ([]byte, error) {
	rules := make(map[string]string, len(p.Rules))
	for sym, replacement := range p.Rules {
		rules[string(sym)] = replacement
	}

	return json.MarshalIndent(paramsJSON{
		Axiom:      p.Axiom,
		Rules:      rules,
		Iterations: p.Iterations,
		Angle:      p.Angle,
		MaxLength:  p.MaxLength,
	}, "", "  ")
}
