package ruleset

import (
	"errors"
	"fmt"

	"github.com/rulestash/rulestash/node"
)

// ErrInvalid signals "this candidate tuple does not produce a node" from a
// production function. Rule2 through Rule5 recognize it via errors.Is and
// silently drop the candidate tuple; Rule1 treats it like any other error.
var ErrInvalid = errors.New("ruleset: invalid production")

// ProductionError wraps a production function's non-Invalid error. It
// aborts the current ApplyAll call; any partial stash built so far is
// discarded by the caller.
type ProductionError struct {
	RuleSym node.Symbol
	Err     error
}

func (e *ProductionError) Error() string {
	return fmt.Sprintf("rule %d: production error: %v", e.RuleSym, e.Err)
}

func (e *ProductionError) Unwrap() error { return e.Err }

func wrapProduction(sym node.Symbol, err error) error {
	return &ProductionError{RuleSym: sym, Err: err}
}
