package pattern

import "unicode"

// Adjacent reports whether match a is adjacent to a later match b within
// sentence: a ends at or before b begins, and every character between them
// is either whitespace or an ASCII hyphen-minus. This is the sole
// inter-pattern positional constraint a rule combinator enforces.
func Adjacent[A Match, B Match](a A, b B, sentence string) bool {
	ar, br := a.Range(), b.Range()
	if ar.End > br.Begin {
		return false
	}
	for _, c := range sentence[ar.End:br.Begin] {
		if !unicode.IsSpace(c) && c != '-' {
			return false
		}
	}
	return true
}
