// Package lexicon parses a small textual DSL declaring named closed word
// classes (weekdays, months, scale words, ...) and turns them into
// pattern.LiteralSetPattern instances a rule can match against.
package lexicon

import (
	"fmt"

	"github.com/alecthomas/participle/v2"

	"github.com/rulestash/rulestash/node"
	"github.com/rulestash/rulestash/pattern"
)

var parser = participle.MustBuild[File]()

// Parse reads a lexicon source document into a File of class declarations.
func Parse(source string) (*File, error) {
	f, err := parser.ParseString("", source)
	if err != nil {
		return nil, fmt.Errorf("lexicon: %w", err)
	}
	return f, nil
}

// Classes returns the parsed declarations as a name-to-words map. A class
// declared more than once has its later word lists appended to the
// earlier ones.
func (f *File) Classes() map[string][]string {
	out := make(map[string][]string, len(f.Decls))
	for _, decl := range f.Decls {
		out[decl.Name] = append(out[decl.Name], decl.Words...)
	}
	return out
}

// LiteralSetPatterns builds one pattern.LiteralSetPattern per declared
// class, keyed by class name, sharing st so the resulting patterns can be
// interned and wired into a ruleset.Builder alongside the rest of a rule
// set's patterns.
func LiteralSetPatterns[StashValue any](st *node.SymbolTable, f *File) map[string]*pattern.LiteralSetPattern[StashValue] {
	classes := f.Classes()
	out := make(map[string]*pattern.LiteralSetPattern[StashValue], len(classes))
	for name, words := range classes {
		out[name] = pattern.NewLiteralSetPattern[StashValue](st, name, words)
	}
	return out
}
