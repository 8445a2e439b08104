package ruleset

import (
	"github.com/rulestash/rulestash/node"
	"github.com/rulestash/rulestash/pattern"
)

// Builder is the typed construction surface for a RuleSet: register rules
// of arity 1–5, then Build. No semantic behavior beyond plumbing — rule
// registration interns the rule name into a Symbol and appends a
// type-erased Rule.
type Builder[StashValue any] struct {
	symbols     *node.SymbolTable
	rules       []Rule[StashValue]
	class       CharClass
	termination TerminationMode
	maxIter     int
	maxStash    int
}

// NewBuilder returns a Builder with sensible defaults: MaxIterations,
// MaxStashSize, AlphanumericClass, and TerminationAnd (the literal original
// behavior; override with WithTermination to pick a single-condition
// reading).
func NewBuilder[StashValue any]() *Builder[StashValue] {
	return &Builder[StashValue]{
		symbols:  node.NewSymbolTable(),
		class:    AlphanumericClass,
		maxIter:  MaxIterations,
		maxStash: MaxStashSize,
	}
}

// Symbols returns the builder's symbol table, so pattern constructors
// (which need to intern their own pattern text) share it with the rules
// that use them.
func (b *Builder[StashValue]) Symbols() *node.SymbolTable { return b.symbols }

// WithCharClass overrides the boundary validator's character-class
// function (default AlphanumericClass). See DetailedClass for the
// documented alternative, or supply a custom func.
func (b *Builder[StashValue]) WithCharClass(class CharClass) *Builder[StashValue] {
	b.class = class
	return b
}

// WithTermination overrides the fixpoint driver's early-termination
// reading (default TerminationAnd, reproducing the original literally).
func (b *Builder[StashValue]) WithTermination(mode TerminationMode) *Builder[StashValue] {
	b.termination = mode
	return b
}

// WithMaxIterations overrides MaxIterations.
func (b *Builder[StashValue]) WithMaxIterations(n int) *Builder[StashValue] {
	b.maxIter = n
	return b
}

// WithMaxStashSize overrides MaxStashSize.
func (b *Builder[StashValue]) WithMaxStashSize(n int) *Builder[StashValue] {
	b.maxStash = n
	return b
}

// Rule1Of registers an arity-1 rule under name and returns its interned
// symbol.
func Rule1Of[StashValue any, MA pattern.Match, V any](
	b *Builder[StashValue],
	name string,
	p pattern.Pattern[StashValue, MA],
	produce func(RuleProductionArg[MA]) (V, error),
	toStashValue func(V) StashValue,
) node.Symbol {
	sym := b.symbols.Intern(name)
	b.rules = append(b.rules, &Rule1[StashValue, MA, V]{
		Sym: sym, PatternA: p, Produce: produce, ToStashValue: toStashValue,
	})
	return sym
}

// Rule2Of registers an arity-2 rule under name and returns its interned
// symbol.
func Rule2Of[StashValue any, MA, MB pattern.Match, V any](
	b *Builder[StashValue],
	name string,
	pa pattern.Pattern[StashValue, MA],
	pb pattern.Pattern[StashValue, MB],
	produce func(RuleProductionArg[MA], RuleProductionArg[MB]) (V, error),
	toStashValue func(V) StashValue,
) node.Symbol {
	sym := b.symbols.Intern(name)
	b.rules = append(b.rules, &Rule2[StashValue, MA, MB, V]{
		Sym: sym, PatternA: pa, PatternB: pb, Produce: produce, ToStashValue: toStashValue,
	})
	return sym
}

// Rule3Of registers an arity-3 rule under name and returns its interned
// symbol.
func Rule3Of[StashValue any, MA, MB, MC pattern.Match, V any](
	b *Builder[StashValue],
	name string,
	pa pattern.Pattern[StashValue, MA],
	pb pattern.Pattern[StashValue, MB],
	pc pattern.Pattern[StashValue, MC],
	produce func(RuleProductionArg[MA], RuleProductionArg[MB], RuleProductionArg[MC]) (V, error),
	toStashValue func(V) StashValue,
) node.Symbol {
	sym := b.symbols.Intern(name)
	b.rules = append(b.rules, &Rule3[StashValue, MA, MB, MC, V]{
		Sym: sym, PatternA: pa, PatternB: pb, PatternC: pc, Produce: produce, ToStashValue: toStashValue,
	})
	return sym
}

// Rule4Of registers an arity-4 rule under name and returns its interned
// symbol.
func Rule4Of[StashValue any, MA, MB, MC, MD pattern.Match, V any](
	b *Builder[StashValue],
	name string,
	pa pattern.Pattern[StashValue, MA],
	pb pattern.Pattern[StashValue, MB],
	pc pattern.Pattern[StashValue, MC],
	pd pattern.Pattern[StashValue, MD],
	produce func(RuleProductionArg[MA], RuleProductionArg[MB], RuleProductionArg[MC], RuleProductionArg[MD]) (V, error),
	toStashValue func(V) StashValue,
) node.Symbol {
	sym := b.symbols.Intern(name)
	b.rules = append(b.rules, &Rule4[StashValue, MA, MB, MC, MD, V]{
		Sym: sym, PatternA: pa, PatternB: pb, PatternC: pc, PatternD: pd, Produce: produce, ToStashValue: toStashValue,
	})
	return sym
}

// Rule5Of registers an arity-5 rule under name and returns its interned
// symbol.
func Rule5Of[StashValue any, MA, MB, MC, MD, ME pattern.Match, V any](
	b *Builder[StashValue],
	name string,
	pa pattern.Pattern[StashValue, MA],
	pb pattern.Pattern[StashValue, MB],
	pc pattern.Pattern[StashValue, MC],
	pd pattern.Pattern[StashValue, MD],
	pe pattern.Pattern[StashValue, ME],
	produce func(RuleProductionArg[MA], RuleProductionArg[MB], RuleProductionArg[MC], RuleProductionArg[MD], RuleProductionArg[ME]) (V, error),
	toStashValue func(V) StashValue,
) node.Symbol {
	sym := b.symbols.Intern(name)
	b.rules = append(b.rules, &Rule5[StashValue, MA, MB, MC, MD, ME, V]{
		Sym: sym, PatternA: pa, PatternB: pb, PatternC: pc, PatternD: pd, PatternE: pe, Produce: produce, ToStashValue: toStashValue,
	})
	return sym
}

// Build freezes the builder into an immutable RuleSet.
func (b *Builder[StashValue]) Build() *RuleSet[StashValue] {
	return &RuleSet[StashValue]{
		symbols:     b.symbols,
		rules:       b.rules,
		class:       b.class,
		termination: b.termination,
		maxIter:     b.maxIter,
		maxStash:    b.maxStash,
	}
}
