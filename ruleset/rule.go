package ruleset

import (
	"errors"

	"github.com/rulestash/rulestash/node"
	"github.com/rulestash/rulestash/pattern"
)

// Rule is the type-erased interface the RuleSet driver iterates: a sym,
// N patterns, and a production closure bundled behind Apply. StashValue is
// the embedder's sum-type of all per-rule values.
type Rule[StashValue any] interface {
	Apply(stash node.Stash[StashValue], sentence string) ([]node.ParsedNode[StashValue], error)
}

func isDuplicate[StashValue any](stash node.Stash[StashValue], sym node.Symbol, children []*node.Node) bool {
	for _, old := range stash {
		if old.Root.RuleSym == sym && node.EqualChildren(old.Root.Children, children) {
			return true
		}
	}
	return false
}

// Rule1 is an arity-1 rule. Per §4.4/§9, an arity-1 production has no
// Invalid escape hatch: any error it returns is fatal, mirroring
// core/src/rule.rs's Rule1::apply exactly.
type Rule1[StashValue any, MA pattern.Match, V any] struct {
	Sym          node.Symbol
	PatternA     pattern.Pattern[StashValue, MA]
	Produce      func(RuleProductionArg[MA]) (V, error)
	ToStashValue func(V) StashValue
}

// Apply implements Rule.
func (r *Rule1[StashValue, MA, V]) Apply(stash node.Stash[StashValue], sentence string) ([]node.ParsedNode[StashValue], error) {
	matches, err := r.PatternA.Predicate(stash, sentence)
	if err != nil {
		return nil, err
	}
	var out []node.ParsedNode[StashValue]
	for _, m := range matches {
		children := []*node.Node{m.ToNode()}
		if isDuplicate(stash, r.Sym, children) {
			continue
		}
		v, perr := r.Produce(RuleProductionArg[MA]{Sentence: sentence, Match: m})
		if perr != nil {
			return nil, wrapProduction(r.Sym, perr)
		}
		out = append(out, node.NewParsedNode(r.Sym, r.ToStashValue(v), m.Range(), children))
	}
	return out, nil
}

// Rule2 is an arity-2 rule: its two patterns' matches are combined
// pairwise wherever adjacent, in nested-iteration order.
type Rule2[StashValue any, MA, MB pattern.Match, V any] struct {
	Sym          node.Symbol
	PatternA     pattern.Pattern[StashValue, MA]
	PatternB     pattern.Pattern[StashValue, MB]
	Produce      func(RuleProductionArg[MA], RuleProductionArg[MB]) (V, error)
	ToStashValue func(V) StashValue
}

// Apply implements Rule.
func (r *Rule2[StashValue, MA, MB, V]) Apply(stash node.Stash[StashValue], sentence string) ([]node.ParsedNode[StashValue], error) {
	as, err := r.PatternA.Predicate(stash, sentence)
	if err != nil || len(as) == 0 {
		return nil, err
	}
	bs, err := r.PatternB.Predicate(stash, sentence)
	if err != nil {
		return nil, err
	}

	var out []node.ParsedNode[StashValue]
	for _, a := range as {
		for _, b := range bs {
			if !pattern.Adjacent(a, b, sentence) {
				continue
			}
			children := []*node.Node{a.ToNode(), b.ToNode()}
			if isDuplicate(stash, r.Sym, children) {
				continue
			}
			rng := a.Range().Span(b.Range())
			v, perr := r.Produce(
				RuleProductionArg[MA]{Sentence: sentence, Match: a},
				RuleProductionArg[MB]{Sentence: sentence, Match: b},
			)
			if perr != nil {
				if errors.Is(perr, ErrInvalid) {
					continue
				}
				return nil, wrapProduction(r.Sym, perr)
			}
			out = append(out, node.NewParsedNode(r.Sym, r.ToStashValue(v), rng, children))
		}
	}
	return out, nil
}

// Rule3 is an arity-3 rule.
type Rule3[StashValue any, MA, MB, MC pattern.Match, V any] struct {
	Sym          node.Symbol
	PatternA     pattern.Pattern[StashValue, MA]
	PatternB     pattern.Pattern[StashValue, MB]
	PatternC     pattern.Pattern[StashValue, MC]
	Produce      func(RuleProductionArg[MA], RuleProductionArg[MB], RuleProductionArg[MC]) (V, error)
	ToStashValue func(V) StashValue
}

// Apply implements Rule.
func (r *Rule3[StashValue, MA, MB, MC, V]) Apply(stash node.Stash[StashValue], sentence string) ([]node.ParsedNode[StashValue], error) {
	as, err := r.PatternA.Predicate(stash, sentence)
	if err != nil || len(as) == 0 {
		return nil, err
	}
	bs, err := r.PatternB.Predicate(stash, sentence)
	if err != nil || len(bs) == 0 {
		return nil, err
	}
	cs, err := r.PatternC.Predicate(stash, sentence)
	if err != nil || len(cs) == 0 {
		return nil, err
	}

	var out []node.ParsedNode[StashValue]
	for _, a := range as {
		for _, b := range bs {
			if !pattern.Adjacent(a, b, sentence) {
				continue
			}
			for _, c := range cs {
				if !pattern.Adjacent(b, c, sentence) {
					continue
				}
				children := []*node.Node{a.ToNode(), b.ToNode(), c.ToNode()}
				if isDuplicate(stash, r.Sym, children) {
					continue
				}
				rng := a.Range().Span(c.Range())
				v, perr := r.Produce(
					RuleProductionArg[MA]{Sentence: sentence, Match: a},
					RuleProductionArg[MB]{Sentence: sentence, Match: b},
					RuleProductionArg[MC]{Sentence: sentence, Match: c},
				)
				if perr != nil {
					if errors.Is(perr, ErrInvalid) {
						continue
					}
					return nil, wrapProduction(r.Sym, perr)
				}
				out = append(out, node.NewParsedNode(r.Sym, r.ToStashValue(v), rng, children))
			}
		}
	}
	return out, nil
}

// Rule4 is an arity-4 rule.
type Rule4[StashValue any, MA, MB, MC, MD pattern.Match, V any] struct {
	Sym          node.Symbol
	PatternA     pattern.Pattern[StashValue, MA]
	PatternB     pattern.Pattern[StashValue, MB]
	PatternC     pattern.Pattern[StashValue, MC]
	PatternD     pattern.Pattern[StashValue, MD]
	Produce      func(RuleProductionArg[MA], RuleProductionArg[MB], RuleProductionArg[MC], RuleProductionArg[MD]) (V, error)
	ToStashValue func(V) StashValue
}

// Apply implements Rule.
func (r *Rule4[StashValue, MA, MB, MC, MD, V]) Apply(stash node.Stash[StashValue], sentence string) ([]node.ParsedNode[StashValue], error) {
	as, err := r.PatternA.Predicate(stash, sentence)
	if err != nil || len(as) == 0 {
		return nil, err
	}
	bs, err := r.PatternB.Predicate(stash, sentence)
	if err != nil || len(bs) == 0 {
		return nil, err
	}
	cs, err := r.PatternC.Predicate(stash, sentence)
	if err != nil || len(cs) == 0 {
		return nil, err
	}
	ds, err := r.PatternD.Predicate(stash, sentence)
	if err != nil || len(ds) == 0 {
		return nil, err
	}

	var out []node.ParsedNode[StashValue]
	for _, a := range as {
		for _, b := range bs {
			if !pattern.Adjacent(a, b, sentence) {
				continue
			}
			for _, c := range cs {
				if !pattern.Adjacent(b, c, sentence) {
					continue
				}
				for _, d := range ds {
					if !pattern.Adjacent(c, d, sentence) {
						continue
					}
					children := []*node.Node{a.ToNode(), b.ToNode(), c.ToNode(), d.ToNode()}
					if isDuplicate(stash, r.Sym, children) {
						continue
					}
					rng := a.Range().Span(d.Range())
					v, perr := r.Produce(
						RuleProductionArg[MA]{Sentence: sentence, Match: a},
						RuleProductionArg[MB]{Sentence: sentence, Match: b},
						RuleProductionArg[MC]{Sentence: sentence, Match: c},
						RuleProductionArg[MD]{Sentence: sentence, Match: d},
					)
					if perr != nil {
						if errors.Is(perr, ErrInvalid) {
							continue
						}
						return nil, wrapProduction(r.Sym, perr)
					}
					out = append(out, node.NewParsedNode(r.Sym, r.ToStashValue(v), rng, children))
				}
			}
		}
	}
	return out, nil
}

// Rule5 is an arity-5 rule.
type Rule5[StashValue any, MA, MB, MC, MD, ME pattern.Match, V any] struct {
	Sym          node.Symbol
	PatternA     pattern.Pattern[StashValue, MA]
	PatternB     pattern.Pattern[StashValue, MB]
	PatternC     pattern.Pattern[StashValue, MC]
	PatternD     pattern.Pattern[StashValue, MD]
	PatternE     pattern.Pattern[StashValue, ME]
	Produce      func(RuleProductionArg[MA], RuleProductionArg[MB], RuleProductionArg[MC], RuleProductionArg[MD], RuleProductionArg[ME]) (V, error)
	ToStashValue func(V) StashValue
}

// Apply implements Rule.
func (r *Rule5[StashValue, MA, MB, MC, MD, ME, V]) Apply(stash node.Stash[StashValue], sentence string) ([]node.ParsedNode[StashValue], error) {
	as, err := r.PatternA.Predicate(stash, sentence)
	if err != nil || len(as) == 0 {
		return nil, err
	}
	bs, err := r.PatternB.Predicate(stash, sentence)
	if err != nil || len(bs) == 0 {
		return nil, err
	}
	cs, err := r.PatternC.Predicate(stash, sentence)
	if err != nil || len(cs) == 0 {
		return nil, err
	}
	ds, err := r.PatternD.Predicate(stash, sentence)
	if err != nil || len(ds) == 0 {
		return nil, err
	}
	es, err := r.PatternE.Predicate(stash, sentence)
	if err != nil || len(es) == 0 {
		return nil, err
	}

	var out []node.ParsedNode[StashValue]
	for _, a := range as {
		for _, b := range bs {
			if !pattern.Adjacent(a, b, sentence) {
				continue
			}
			for _, c := range cs {
				if !pattern.Adjacent(b, c, sentence) {
					continue
				}
				for _, d := range ds {
					if !pattern.Adjacent(c, d, sentence) {
						continue
					}
					for _, e := range es {
						if !pattern.Adjacent(d, e, sentence) {
							continue
						}
						children := []*node.Node{a.ToNode(), b.ToNode(), c.ToNode(), d.ToNode(), e.ToNode()}
						if isDuplicate(stash, r.Sym, children) {
							continue
						}
						rng := a.Range().Span(e.Range())
						v, perr := r.Produce(
							RuleProductionArg[MA]{Sentence: sentence, Match: a},
							RuleProductionArg[MB]{Sentence: sentence, Match: b},
							RuleProductionArg[MC]{Sentence: sentence, Match: c},
							RuleProductionArg[MD]{Sentence: sentence, Match: d},
							RuleProductionArg[ME]{Sentence: sentence, Match: e},
						)
						if perr != nil {
							if errors.Is(perr, ErrInvalid) {
								continue
							}
							return nil, wrapProduction(r.Sym, perr)
						}
						out = append(out, node.NewParsedNode(r.Sym, r.ToStashValue(v), rng, children))
					}
				}
			}
		}
	}
	return out, nil
}
