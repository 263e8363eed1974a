// Package grammar implements the core L-system rewriting engine.
// An L-system is a symbol-rewriting system: an alphabet, a set of
// per-symbol replacement rules, an initial string (axiom), and an
// iteration count. Rewriting is pure and deterministic; randomness
// only enters downstream in the turtle interpreter.
package grammar

import (
	"fmt"
	"sort"
	"strings"
)

// DefaultMaxLength bounds the derived string when Params.MaxLength is zero.
// Iteration counts compose exponentially with replacement length, so an
// unguarded rewrite can exhaust memory on small inputs.
const DefaultMaxLength = 1 << 22

// RuleSet maps a single symbol to its replacement string.
// Keys are unique by construction, so at most one rule can match a
// symbol; there is no tie-break. An empty replacement is legal and
// erases the symbol, but only when explicitly defined.
type RuleSet map[rune]string

// Params holds the inputs of a generation run.
type Params struct {
	Axiom      string  // Initial string; must be non-empty after trimming
	Rules      RuleSet // Must contain at least one rule
	Iterations int     // Number of rewrite passes; must be >= 0
	Angle      float64 // Rotation magnitude in degrees for turn/branch symbols
	MaxLength  int     // Safety bound on derived length; 0 means DefaultMaxLength
}

// Validate checks params before any rewriting occurs.
// All failures wrap ErrInvalidGrammar and are recoverable by fixing
// the inputs and retrying.
func Validate(p Params) error {
	if strings.TrimSpace(p.Axiom) == "" {
		return fmt.Errorf("%w: axiom is empty", ErrInvalidGrammar)
	}
	if len(p.Rules) == 0 {
		return fmt.Errorf("%w: rule set is empty", ErrInvalidGrammar)
	}
	if p.Iterations < 0 {
		return fmt.Errorf("%w: iterations must be >= 0, got %d", ErrInvalidGrammar, p.Iterations)
	}
	return nil
}

// Rewrite derives the final string by applying the rule set to the
// trimmed axiom Iterations times. Each pass scans left to right and
// replaces every matched symbol with its rule's replacement; inserted
// symbols are not re-scanned within the same pass. Unmatched symbols
// pass through unchanged.
func Rewrite(p Params) (string, error) {
	if err := Validate(p); err != nil {
		return "", err
	}

	maxLen := p.MaxLength
	if maxLen <= 0 {
		maxLen = DefaultMaxLength
	}

	current := strings.TrimSpace(p.Axiom)
	for i := 0; i < p.Iterations; i++ {
		var next strings.Builder
		next.Grow(len(current))
		for _, sym := range current {
			if replacement, ok := p.Rules[sym]; ok {
				next.WriteString(replacement)
			} else {
				next.WriteRune(sym)
			}
			if next.Len() > maxLen {
				return "", fmt.Errorf("%w: exceeded %d bytes at iteration %d", ErrOverflow, maxLen, i+1)
			}
		}
		current = next.String()
	}
	return current, nil
}

// GrowthFactor estimates the per-iteration expansion of the rule set:
// the mean replacement length in runes. Useful for sizing MaxLength
// before committing to a large iteration count.
func GrowthFactor(rules RuleSet) float64 {
	if len(rules) == 0 {
		return 1.0
	}
	total := 0
	for _, replacement := range rules {
		total += len([]rune(replacement))
	}
	return float64(total) / float64(len(rules))
}

// Symbols returns the sorted rule keys, for stable display and hashing.
func (r RuleSet) Symbols() []rune {
	syms := make([]rune, 0, len(r))
	for sym := range r {
		syms = append(syms, sym)
	}
	sort.Slice(syms, func(i, j int) bool { return syms[i] < syms[j] })
	return syms
}

// String renders the rule set as "F -> F+F; X -> F" in key order.
func (r RuleSet) String() string {
	var sb strings.Builder
	for i, sym := range r.Symbols() {
		if i > 0 {
			sb.WriteString("; ")
		}
		fmt.Fprintf(&sb, "%c -> %s", sym, r[sym])
	}
	return sb.String()
}
