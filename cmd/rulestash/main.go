// Command rulestash runs a small demonstration rule set (digit numbers
// plus lexicon-declared word classes) over every line of a corpus file
// and prints what each line's fixpoint stash ends up holding.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/rulestash/rulestash/corpus"
	"github.com/rulestash/rulestash/lexicon"
	"github.com/rulestash/rulestash/pattern"
	"github.com/rulestash/rulestash/ruleset"
)

// value is the demonstration StashValue sum type: either a parsed integer
// or a lexicon word-class hit.
type value struct {
	isInt     bool
	n         int
	className string
	word      string
}

func intValue(n int) value { return value{isInt: true, n: n} }

func wordValue(class string) func(string) value {
	return func(word string) value { return value{className: class, word: word} }
}

func main() {
	args := os.Args[1:]
	ascii := false
	if len(args) > 0 && args[0] == "-ascii" {
		ascii = true
		args = args[1:]
	}
	if len(args) != 2 {
		fmt.Fprintf(os.Stderr, "usage: rulestash [-ascii] <lexicon.txt> <corpus.txt>\n")
		os.Exit(1)
	}
	lexiconFile := args[0]
	corpusFile := args[1]

	lex, err := loadLexicon(lexiconFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error loading lexicon: %v\n", err)
		os.Exit(1)
	}

	rs, err := buildRuleSet(lex, ascii)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error building rule set: %v\n", err)
		os.Exit(1)
	}

	mapped, err := corpus.Open(corpusFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error opening corpus: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = mapped.Close() }()

	lines := mapped.Lines()
	var scanned, matched int
	for _, line := range lines {
		scanned++
		stash, err := rs.ApplyAll(line)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error applying rules to %q: %v\n", line, err)
			continue
		}
		if len(stash) == 0 {
			continue
		}
		matched++
		fmt.Println(line)
		for _, pn := range stash {
			name, _ := rs.ResolveSym(pn.Root.RuleSym)
			fmt.Printf("  %s %v %+v\n", name, pn.Root.Range, pn.Value)
		}
	}

	fmt.Fprintf(os.Stderr, "scanned %d lines, %d matched\n", scanned, matched)
}

func loadLexicon(filename string) (*lexicon.File, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	return lexicon.Parse(string(data))
}

// buildRuleSet wires the demonstration rule set. With ascii set, the
// digit pattern compiles through go-re2's Latin1 fast path instead of
// the full-Unicode engine, trading non-ASCII sentence support for a
// faster compiled matcher — worthwhile when the corpus is known ASCII.
func buildRuleSet(lex *lexicon.File, ascii bool) (*ruleset.RuleSet[value], error) {
	b := ruleset.NewBuilder[value]()

	var digits *pattern.TextPattern[value]
	var err error
	if ascii {
		digits, err = pattern.NewASCIITextPattern[value](b.Symbols(), `\d+`)
	} else {
		digits, err = pattern.NewTextPattern[value](b.Symbols(), `\d+`)
	}
	if err != nil {
		return nil, err
	}
	ruleset.Rule1Of[value](b, "integer", digits, func(a ruleset.RuleProductionArg[pattern.TextMatch]) (int, error) {
		return strconv.Atoi(ruleset.Group(a, 0))
	}, intValue)

	for className, words := range lex.Classes() {
		litPattern := pattern.NewLiteralSetPattern[value](b.Symbols(), className, words)
		ruleset.Rule1Of[value](b, className, litPattern, func(a ruleset.RuleProductionArg[pattern.TextMatch]) (string, error) {
			return ruleset.Group(a, 0), nil
		}, wordValue(className))
	}

	return b.Build(), nil
}
