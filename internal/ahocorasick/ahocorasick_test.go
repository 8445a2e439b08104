package ahocorasick

import (
	"reflect"
	"testing"
)

func TestFindAllOverlapping(t *testing.T) {
	a := Build([][]byte{[]byte("he"), []byte("she"), []byte("his"), []byte("hers")})
	got := a.FindAllOverlapping([]byte("ushers"))

	want := []Match{
		{Start: 1, End: 4, Pattern: 1}, // she
		{Start: 2, End: 4, Pattern: 0}, // he
		{Start: 2, End: 6, Pattern: 3}, // hers
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("FindAllOverlapping() = %+v, want %+v", got, want)
	}
}

func TestFindAllLeftmostLongest(t *testing.T) {
	a := Build([][]byte{[]byte("monday"), []byte("mon"), []byte("tuesday")})
	got := a.FindAllLeftmostLongest([]byte("monday and tuesday"))

	want := []Match{
		{Start: 0, End: 6, Pattern: 0},  // "monday" wins over "mon" (longest)
		{Start: 11, End: 18, Pattern: 2}, // "tuesday"
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("FindAllLeftmostLongest() = %+v, want %+v", got, want)
	}
}

func TestNoMatches(t *testing.T) {
	a := Build([][]byte{[]byte("xyz")})
	if got := a.FindAllOverlapping([]byte("abc def")); got != nil {
		t.Fatalf("expected no matches, got %+v", got)
	}
}
