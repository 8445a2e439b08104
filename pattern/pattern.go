// Package pattern implements the primitive matchers that a rule
// composes: regex-text patterns and stash-node predicates, both producing
// Match values the ruleset package turns into parse nodes.
package pattern

import (
	"github.com/rulestash/rulestash/node"
)

// Match is implemented by every kind of submatch a Pattern can produce.
type Match interface {
	// Range is the byte span this match covers in the sentence.
	Range() node.Range
	// ToNode converts the match into the child node a rule's output should
	// reference.
	ToNode() *node.Node
}

// Pattern is anything exposing Predicate(stash, sentence) -> matches,
// specialized over the stash's value type (StashValue) and the concrete
// Match kind it produces (M). Patterns over text (TextPattern,
// LiteralSetPattern) ignore the stash; patterns over nodes (AnyNodePattern,
// FilterNodePattern) ignore the sentence.
type Pattern[StashValue any, M Match] interface {
	Predicate(stash node.Stash[StashValue], sentence string) ([]M, error)
}

// TextMatch is produced by a regex-backed pattern: Groups[0] is the outer
// match span, Groups[i>0] are capture-group spans (each inclusive-exclusive
// byte range; an unmatched optional group is Range{-1,-1}, which Slice
// turns into "").
type TextMatch struct {
	Groups     []node.Range
	PatternSym node.Symbol
}

// Range returns the outer (group 0) span.
func (m TextMatch) Range() node.Range { return m.Groups[0] }

// ToNode builds a leaf node (no children) for this text match.
func (m TextMatch) ToNode() *node.Node {
	return node.NewNode(m.PatternSym, m.Groups[0], nil)
}

// Group returns the ix-th capture slice from sentence; ix 0 is the whole
// match.
func (m TextMatch) Group(sentence string, ix int) string {
	return m.Groups[ix].Slice(sentence)
}

// NodeMatch reuses an existing stash ParsedNode as a match.
type NodeMatch[V any] struct {
	Parsed node.ParsedNode[V]
}

// Range returns the span of the underlying parsed node's root.
func (m NodeMatch[V]) Range() node.Range { return m.Parsed.Root.Range }

// ToNode returns the underlying parsed node's root, reused (not copied).
func (m NodeMatch[V]) ToNode() *node.Node { return m.Parsed.Root }

// Value returns the semantic value the node's producing rule computed.
func (m NodeMatch[V]) Value() V { return m.Parsed.Value }
