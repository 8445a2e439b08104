// Package ruleset implements the rule combinators, the fixpoint driver,
// the boundary validator, and the builder facade that together grow a
// stash of typed parse nodes from a sentence to a fixed point.
package ruleset

import (
	"github.com/rulestash/rulestash/node"
)

// MaxIterations bounds how many times ApplyAll sweeps every rule over the
// stash before giving up.
const MaxIterations = 10

// MaxStashSize is the stash-size threshold the early-termination check
// compares against; see TerminationMode for why this is configurable
// rather than load-bearing by itself.
const MaxStashSize = 600

// TerminationMode selects between the two readings of the original
// driver's early-termination condition (§4.5, §9 "Fixpoint termination
// condition"). The source reads
//
//	stash.len() <= previous_size && stash.len() > max_stash_size
//
// which can only fire once growth has already stalled *and* the stash has
// grown past MaxStashSize — in practice this defers almost all
// termination decisions to MaxIterations. TerminationAnd reproduces that
// literally; TerminationSaturatedOnly and TerminationOversizedOnly offer
// the two single-condition readings the "&&" most likely should have
// been, per the flagged open question. Do not silently pick one: the
// caller chooses via Builder.WithTermination. No mode combines the two
// conditions with "||".
type TerminationMode int

const (
	// TerminationAnd reproduces the original's "&&" literally: stop early
	// only when growth has stalled AND the stash exceeds MaxStashSize.
	TerminationAnd TerminationMode = iota
	// TerminationSaturatedOnly stops as soon as growth stalls
	// (stash.len() <= previous_size), ignoring MaxStashSize — the most
	// likely original intent.
	TerminationSaturatedOnly
	// TerminationOversizedOnly stops as soon as the stash exceeds
	// MaxStashSize, ignoring whether growth has stalled.
	TerminationOversizedOnly
)

// RuleSet is an immutable, concurrently-shareable set of rules plus the
// symbol table that named them. Built once via Builder; ApplyAll may be
// called concurrently from multiple goroutines with disjoint sentences,
// each holding its own stash.
type RuleSet[StashValue any] struct {
	symbols     *node.SymbolTable
	rules       []Rule[StashValue]
	class       CharClass
	termination TerminationMode
	maxIter     int
	maxStash    int
}

// ResolveSym returns the source string a Symbol was interned from.
func (rs *RuleSet[StashValue]) ResolveSym(sym node.Symbol) (string, bool) {
	return rs.symbols.Resolve(sym)
}

// ApplyAll iteratively grows a stash by applying every rule in declaration
// order against the current stash snapshot, until the RuleSet's
// TerminationMode stops it early or the iteration bound (MaxIterations
// unless overridden) is reached, then filters the result by valid word
// boundaries. Under the default TerminationAnd, a stash that stops growing
// while at or below the size threshold does not end the loop early.
func (rs *RuleSet[StashValue]) ApplyAll(sentence string) (node.Stash[StashValue], error) {
	var stash node.Stash[StashValue]
	previousSize := 0

	for range rs.maxIter {
		var produced node.Stash[StashValue]
		for _, rule := range rs.rules {
			nodes, err := rule.Apply(stash, sentence)
			if err != nil {
				return nil, err
			}
			produced = append(produced, nodes...)
		}
		stash = append(stash, produced...)

		stop := false
		switch rs.termination {
		case TerminationSaturatedOnly:
			stop = len(stash) <= previousSize
		case TerminationOversizedOnly:
			stop = len(stash) > rs.maxStash
		default:
			stop = len(stash) <= previousSize && len(stash) > rs.maxStash
		}
		if stop {
			break
		}
		previousSize = len(stash)
	}

	var out node.Stash[StashValue]
	for _, pn := range stash {
		if ValidBoundaries(sentence, pn.Root.Range, rs.class) {
			out = append(out, pn)
		}
	}
	return out, nil
}
