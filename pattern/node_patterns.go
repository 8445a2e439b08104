package pattern

import "github.com/rulestash/rulestash/node"

// AnyNodePattern returns every stash entry whose value can be projected to
// V, preserving stash order. Typing is nominal: attemptFrom is the
// "attempt-from" capability that tries to narrow a StashValue sum-type down
// to V.
type AnyNodePattern[V any, StashValue any] struct {
	attemptFrom func(StashValue) (V, bool)
}

// NewAnyNodePattern builds an AnyNodePattern using attemptFrom to project
// stash entries to V.
func NewAnyNodePattern[V any, StashValue any](attemptFrom func(StashValue) (V, bool)) *AnyNodePattern[V, StashValue] {
	return &AnyNodePattern[V, StashValue]{attemptFrom: attemptFrom}
}

// Predicate implements Pattern.
func (p *AnyNodePattern[V, StashValue]) Predicate(stash node.Stash[StashValue], _ string) ([]NodeMatch[V], error) {
	var out []NodeMatch[V]
	for _, pn := range stash {
		if v, ok := p.attemptFrom(pn.Value); ok {
			out = append(out, NodeMatch[V]{Parsed: node.ParsedNode[V]{Root: pn.Root, Value: v}})
		}
	}
	return out, nil
}

// FilterNodePattern is an AnyNodePattern additionally filtered by a
// conjunction of user-supplied predicates over the projected value.
type FilterNodePattern[V any, StashValue any] struct {
	attemptFrom func(StashValue) (V, bool)
	predicates  []func(V) bool
}

// NewFilterNodePattern builds a FilterNodePattern. A stash entry passes only
// if every predicate returns true for its projected value.
func NewFilterNodePattern[V any, StashValue any](attemptFrom func(StashValue) (V, bool), predicates ...func(V) bool) *FilterNodePattern[V, StashValue] {
	return &FilterNodePattern[V, StashValue]{attemptFrom: attemptFrom, predicates: predicates}
}

// Predicate implements Pattern.
func (p *FilterNodePattern[V, StashValue]) Predicate(stash node.Stash[StashValue], _ string) ([]NodeMatch[V], error) {
	var out []NodeMatch[V]
	for _, pn := range stash {
		v, ok := p.attemptFrom(pn.Value)
		if !ok {
			continue
		}
		allPass := true
		for _, pred := range p.predicates {
			if !pred(v) {
				allPass = false
				break
			}
		}
		if !allPass {
			continue
		}
		out = append(out, NodeMatch[V]{Parsed: node.ParsedNode[V]{Root: pn.Root, Value: v}})
	}
	return out, nil
}
