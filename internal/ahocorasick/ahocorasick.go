// Package ahocorasick implements a trie-and-failure-link multi-pattern
// matcher for a narrow job: finding closed lexical classes (weekday names,
// month names, scale words) inside a sentence. It omits a SIMD prefilter
// and byte-class compression layer — see the module's DESIGN.md for why
// they have no home at this corpus's scale.
package ahocorasick

// Match is one occurrence of a keyword inside a haystack.
type Match struct {
	Start, End int // byte offsets into the haystack, [Start, End)
	Pattern    int // index into the keyword slice passed to Build
}

type node struct {
	children map[byte]int
	fail     int
	output   []int // indices into keywords that end at this node
	depth    int
}

// Automaton is a compiled multi-pattern matcher over a fixed keyword set.
type Automaton struct {
	nodes    []node
	keywords [][]byte
}

// Build compiles keywords into an Automaton. Keywords are matched exactly,
// case-sensitively; duplicate keywords are both recorded and will be
// reported once for each occurrence found.
func Build(keywords [][]byte) *Automaton {
	a := &Automaton{keywords: keywords}
	a.nodes = []node{{children: make(map[byte]int)}} // root
	for i, kw := range keywords {
		a.insert(kw, i)
	}
	a.buildFailLinks()
	return a
}

func (a *Automaton) insert(kw []byte, patternIdx int) {
	cur := 0
	for _, b := range kw {
		next, ok := a.nodes[cur].children[b]
		if !ok {
			a.nodes = append(a.nodes, node{children: make(map[byte]int), depth: a.nodes[cur].depth + 1})
			next = len(a.nodes) - 1
			a.nodes[cur].children[b] = next
		}
		cur = next
	}
	a.nodes[cur].output = append(a.nodes[cur].output, patternIdx)
}

func (a *Automaton) buildFailLinks() {
	var queue []int
	for _, child := range a.nodes[0].children {
		a.nodes[child].fail = 0
		queue = append(queue, child)
	}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for b, child := range a.nodes[cur].children {
			queue = append(queue, child)

			f := a.nodes[cur].fail
			matched := false
			for f != 0 {
				if next, ok := a.nodes[f].children[b]; ok {
					f = next
					matched = true
					break
				}
				f = a.nodes[f].fail
			}
			if !matched {
				if next, ok := a.nodes[0].children[b]; ok && next != child {
					f = next
				} else {
					f = 0
				}
			}
			a.nodes[child].fail = f
			a.nodes[child].output = append(a.nodes[child].output, a.nodes[f].output...)
		}
	}
}

// FindAllOverlapping returns every occurrence of every keyword in haystack,
// including overlapping ones, ordered by end offset; matches ending at the
// same offset are listed longest first.
func (a *Automaton) FindAllOverlapping(haystack []byte) []Match {
	var out []Match
	cur := 0
	for i, b := range haystack {
		for cur != 0 {
			if _, ok := a.nodes[cur].children[b]; ok {
				break
			}
			cur = a.nodes[cur].fail
		}
		if next, ok := a.nodes[cur].children[b]; ok {
			cur = next
		}
		for _, p := range a.nodes[cur].output {
			end := i + 1
			start := end - len(a.keywords[p])
			out = append(out, Match{Start: start, End: end, Pattern: p})
		}
	}
	return out
}

// FindAllLeftmostLongest returns non-overlapping matches chosen greedily by
// earliest start, breaking ties by longest length, the way a regex
// alternation `(w1|w2|...)` picks among overlapping literal alternatives.
func (a *Automaton) FindAllLeftmostLongest(haystack []byte) []Match {
	all := a.FindAllOverlapping(haystack)
	if len(all) == 0 {
		return nil
	}
	sortMatches(all)
	var out []Match
	nextFree := 0
	for _, m := range all {
		if m.Start < nextFree {
			continue
		}
		out = append(out, m)
		nextFree = m.End
	}
	return out
}

func sortMatches(m []Match) {
	// Insertion sort: keyword sets used for LiteralSetPattern are small
	// (tens of entries), so an O(n^2) sort on the match list is not worth
	// importing sort/slices for.
	for i := 1; i < len(m); i++ {
		j := i
		for j > 0 && less(m[j], m[j-1]) {
			m[j], m[j-1] = m[j-1], m[j]
			j--
		}
	}
}

func less(a, b Match) bool {
	if a.Start != b.Start {
		return a.Start < b.Start
	}
	la, lb := a.End-a.Start, b.End-b.Start
	if la != lb {
		return la > lb
	}
	return a.Pattern < b.Pattern
}

// Keyword returns the keyword bytes for a pattern index.
func (a *Automaton) Keyword(pattern int) []byte { return a.keywords[pattern] }
