package ruleset

import "github.com/rulestash/rulestash/pattern"

// RuleProductionArg pairs the sentence with a single submatch, handed to a
// rule's production function. Use Group for a TextMatch arg and Value for a
// NodeMatch arg — Go has no specialization, so these are free functions
// rather than methods restricted to one instantiation.
type RuleProductionArg[M pattern.Match] struct {
	Sentence string
	Match    M
}

// Group returns the ix-th capture slice of a text-pattern argument; ix 0 is
// the whole match.
func Group(arg RuleProductionArg[pattern.TextMatch], ix int) string {
	return arg.Match.Group(arg.Sentence, ix)
}

// Value returns the semantic value carried by a node-pattern argument.
func Value[V any](arg RuleProductionArg[pattern.NodeMatch[V]]) V {
	return arg.Match.Value()
}
