package grammar

import "errors"

// Error types for the grammar package.
var (
	// ErrInvalidGrammar is returned when grammar parameters fail validation.
	// Inspect the wrapped message for the specific field at fault.
	ErrInvalidGrammar = errors.New("invalid grammar")

	// ErrOverflow is returned when a rewrite pass grows the string past
	// the configured safety bound.
	ErrOverflow = errors.New("grammar overflow")
)
