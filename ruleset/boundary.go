package ruleset

import (
	"unicode"

	"github.com/rulestash/rulestash/node"
)

// CharClass maps a rune to a class sentinel for the boundary check. Two
// runes are "the same class" iff CharClass returns equal values for both.
type CharClass func(rune) rune

// AlphanumericClass is the driver's default: every Unicode alphanumeric
// code point maps to the sentinel 'A', everything else maps to itself. A
// span starting (or ending) in an alphanumeric run must not be immediately
// adjacent to another alphanumeric character outside the span — this is
// what stops "def" from being captured inside "def123".
func AlphanumericClass(r rune) rune {
	if unicode.IsLetter(r) || unicode.IsDigit(r) {
		return 'A'
	}
	return r
}

// DetailedClass distinguishes uppercase, lowercase, and digit runs
// separately instead of collapsing them all to 'A'. Present as a utility,
// per §4.6, but not wired into RuleSet.ApplyAll by default.
func DetailedClass(r rune) rune {
	switch {
	case unicode.IsUpper(r):
		return 'u'
	case unicode.IsLower(r):
		return 'l'
	case unicode.IsDigit(r):
		return 'd'
	default:
		return r
	}
}

// ValidBoundaries accepts range r within sentence iff the character class
// just inside each end of r differs from the character class just outside
// that end. "No character" (the range touches the start or end of the
// sentence) is treated as distinct from any class value.
func ValidBoundaries(sentence string, r node.Range, class CharClass) bool {
	inner := sentence[r.Begin:r.End]
	firstRune, firstOK := firstRuneOf(inner)
	lastRune, lastOK := lastRuneOf(inner)

	outerLeft, outerLeftOK := lastRuneOf(sentence[:r.Begin])
	outerRight, outerRightOK := firstRuneOf(sentence[r.End:])

	innerFirstClass, innerFirstSet := classOrNone(firstRune, firstOK, class)
	innerLastClass, innerLastSet := classOrNone(lastRune, lastOK, class)
	outerLeftClass, outerLeftSet := classOrNone(outerLeft, outerLeftOK, class)
	outerRightClass, outerRightSet := classOrNone(outerRight, outerRightOK, class)

	leftDiffers := innerFirstSet != outerLeftSet || innerFirstClass != outerLeftClass
	rightDiffers := innerLastSet != outerRightSet || innerLastClass != outerRightClass
	return leftDiffers && rightDiffers
}

func firstRuneOf(s string) (rune, bool) {
	for _, r := range s {
		return r, true
	}
	return 0, false
}

func lastRuneOf(s string) (rune, bool) {
	var last rune
	found := false
	for _, r := range s {
		last = r
		found = true
	}
	return last, found
}

func classOrNone(r rune, ok bool, class CharClass) (rune, bool) {
	if !ok {
		return 0, false
	}
	return class(r), true
}
