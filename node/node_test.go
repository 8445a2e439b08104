package node

import "testing"

func TestSymbolTableInternIsStable(t *testing.T) {
	st := NewSymbolTable()
	ten := st.Intern("ten")
	again := st.Intern("ten")
	if ten != again {
		t.Fatalf("expected stable symbol, got %d and %d", ten, again)
	}

	other := st.Intern("twenty")
	if other == ten {
		t.Fatalf("expected distinct symbols for distinct strings")
	}

	s, ok := st.Resolve(ten)
	if !ok || s != "ten" {
		t.Fatalf("Resolve(ten) = %q, %v, want \"ten\", true", s, ok)
	}

	if _, ok := st.Resolve(Symbol(999)); ok {
		t.Fatalf("Resolve of unknown symbol should report false")
	}
}

func TestNodeEqualStructural(t *testing.T) {
	st := NewSymbolTable()
	sym := st.Intern("int")

	a := NewNode(sym, Range{8, 10}, nil)
	b := NewNode(sym, Range{8, 10}, nil)
	if !a.Equal(b) {
		t.Fatalf("expected structurally equal nodes to compare equal")
	}

	c := NewNode(sym, Range{8, 11}, nil)
	if a.Equal(c) {
		t.Fatalf("expected nodes with different ranges to differ")
	}

	parentA := NewNode(st.Intern("pair"), Range{8, 15}, []*Node{a, b})
	parentB := NewNode(st.Intern("pair"), Range{8, 15}, []*Node{a, b})
	if !parentA.Equal(parentB) {
		t.Fatalf("expected parents sharing equal children to compare equal")
	}

	parentC := NewNode(st.Intern("pair"), Range{8, 15}, []*Node{a, c})
	if parentA.Equal(parentC) {
		t.Fatalf("expected parents with differing children to differ")
	}
}

func TestRangeSpan(t *testing.T) {
	r := Range{8, 11}.Span(Range{12, 15})
	if r != (Range{8, 15}) {
		t.Fatalf("Span() = %v, want [8,15)", r)
	}
}
