package turtle

import (
	"errors"
	"fmt"
)

// ErrUnbalancedBranches is returned when a branch-close symbol appears
// with no matching open, which would pop the root cursor.
var ErrUnbalancedBranches = errors.New("unbalanced branches")

// UnbalancedError reports the symbol index of a branch-close that had
// nothing to pop. It wraps ErrUnbalancedBranches.
type UnbalancedError struct {
	Index int
}

func (e *UnbalancedError) Error() string {
	return fmt.Sprintf("unbalanced branches: close at symbol index %d has no matching open", e.Index)
}

func (e *UnbalancedError) Unwrap() error {
	return ErrUnbalancedBranches
}
