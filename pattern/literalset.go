package pattern

import (
	"github.com/rulestash/rulestash/internal/ahocorasick"
	"github.com/rulestash/rulestash/node"
)

// LiteralSetPattern matches any of a closed set of literal words against
// the sentence, the way a regex alternation `(monday|tuesday|...|sunday)`
// would, but in O(len(sentence)) total rather than one regex pass per
// alternative. It is a supplemental pattern primitive for closed lexical
// classes (weekday names, month names, scale words) that real rule
// grammars lean on heavily — see SPEC_FULL.md's DOMAIN STACK.
type LiteralSetPattern[StashValue any] struct {
	automaton  *ahocorasick.Automaton
	patternSym node.Symbol
	words      []string
}

// NewLiteralSetPattern interns name as the pattern's symbol and compiles
// words into an Aho-Corasick automaton.
func NewLiteralSetPattern[StashValue any](st *node.SymbolTable, name string, words []string) *LiteralSetPattern[StashValue] {
	keywords := make([][]byte, len(words))
	for i, w := range words {
		keywords[i] = []byte(w)
	}
	return &LiteralSetPattern[StashValue]{
		automaton:  ahocorasick.Build(keywords),
		patternSym: st.Intern(name),
		words:      words,
	}
}

// Predicate returns one TextMatch per non-overlapping, leftmost-longest
// literal occurrence in sentence.
func (p *LiteralSetPattern[StashValue]) Predicate(_ node.Stash[StashValue], sentence string) ([]TextMatch, error) {
	hits := p.automaton.FindAllLeftmostLongest([]byte(sentence))
	if len(hits) == 0 {
		return nil, nil
	}
	matches := make([]TextMatch, len(hits))
	for i, h := range hits {
		matches[i] = TextMatch{
			Groups:     []node.Range{{Begin: h.Start, End: h.End}},
			PatternSym: p.patternSym,
		}
	}
	return matches, nil
}

// Words returns the literal word set this pattern was built from.
func (p *LiteralSetPattern[StashValue]) Words() []string { return p.words }
