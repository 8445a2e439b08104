package pattern

import (
	"fmt"

	re2 "github.com/wasilibs/go-re2"
	"github.com/wasilibs/go-re2/experimental"

	"github.com/rulestash/rulestash/node"
)

// RegexError wraps a failure to compile or evaluate a regular expression. It
// is surfaced to the caller as is, not wrapped in a ruleset.ProductionError.
type RegexError struct {
	Pattern string
	Err     error
}

func (e *RegexError) Error() string {
	return fmt.Sprintf("regex %q: %v", e.Pattern, e.Err)
}

func (e *RegexError) Unwrap() error { return e.Err }

// TextPattern matches a compiled regex against the sentence, ignoring the
// stash entirely. Like LiteralSetPattern, it looks at sentence text rather
// than prior stash entries.
type TextPattern[StashValue any] struct {
	regex      *re2.Regexp
	patternSym node.Symbol
}

// NewTextPattern compiles pattern with the RE2 engine and interns the
// pattern text itself as its symbol via st, so a TextPattern's symbol
// names its source regex.
func NewTextPattern[StashValue any](st *node.SymbolTable, pattern string) (*TextPattern[StashValue], error) {
	re, err := re2.Compile(pattern)
	if err != nil {
		return nil, &RegexError{Pattern: pattern, Err: err}
	}
	return &TextPattern[StashValue]{regex: re, patternSym: st.Intern(pattern)}, nil
}

// Predicate returns one TextMatch per non-overlapping regex match in
// sentence, in leftmost order. Groups[0] is the outer span; later entries
// are capture group spans. An unmatched optional capture group is reported
// as Range{-1,-1}.
func (p *TextPattern[StashValue]) Predicate(_ node.Stash[StashValue], sentence string) ([]TextMatch, error) {
	locs := p.regex.FindAllStringSubmatchIndex(sentence, -1)
	if locs == nil {
		return nil, nil
	}
	matches := make([]TextMatch, 0, len(locs))
	for _, loc := range locs {
		groups := make([]node.Range, len(loc)/2)
		for i := range groups {
			b, e := loc[2*i], loc[2*i+1]
			if b < 0 || e < 0 {
				groups[i] = node.Range{Begin: -1, End: -1}
				continue
			}
			groups[i] = node.Range{Begin: b, End: e}
		}
		matches = append(matches, TextMatch{Groups: groups, PatternSym: p.patternSym})
	}
	return matches, nil
}

// Sym returns the interned symbol for this pattern's source text.
func (p *TextPattern[StashValue]) Sym() node.Symbol { return p.patternSym }

// NewASCIITextPattern compiles pattern with go-re2's Latin1 fast path. It
// is only correct for patterns and sentences that never need to match a
// non-ASCII rune: the Latin1 engine treats the input as a byte string,
// so multi-byte UTF-8 sequences are not decoded as single characters.
// Use NewTextPattern for sentences that may contain non-ASCII text.
func NewASCIITextPattern[StashValue any](st *node.SymbolTable, pattern string) (*TextPattern[StashValue], error) {
	re, err := experimental.CompileLatin1(pattern)
	if err != nil {
		return nil, &RegexError{Pattern: pattern, Err: err}
	}
	return &TextPattern[StashValue]{regex: re, patternSym: st.Intern(pattern)}, nil
}
