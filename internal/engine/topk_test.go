package engine

import (
	"reflect"
	"testing"

	"NGramCount/internal/types"
)

func TestTopFiveOrdersByCount(t *testing.T) {
	freq := map[string]uint64{
		"a b": 7,
		"b c": 3,
		"c d": 9,
		"d e": 1,
		"e f": 5,
		"f g": 4,
	}

	got := topFive(freq)
	want := []types.Pair{
		{Ngram: "c d", Count: 9},
		{Ngram: "a b", Count: 7},
		{Ngram: "e f", Count: 5},
		{Ngram: "f g", Count: 4},
		{Ngram: "b c", Count: 3},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("topFive = %v, want %v", got, want)
	}
}

func TestTopFiveBreaksTiesLexicographically(t *testing.T) {
	freq := map[string]uint64{
		"zebra": 2,
		"apple": 2,
		"mango": 2,
	}

	got := topFive(freq)
	want := []types.Pair{
		{Ngram: "apple", Count: 2},
		{Ngram: "mango", Count: 2},
		{Ngram: "zebra", Count: 2},
		{},
		{},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("topFive = %v, want %v", got, want)
	}
}

func TestTopFivePadsWithPlaceholders(t *testing.T) {
	got := topFive(map[string]uint64{"only one": 4})
	if len(got) != 5 {
		t.Fatalf("topFive returned %d slots, want 5", len(got))
	}
	if got[0] != (types.Pair{Ngram: "only one", Count: 4}) {
		t.Fatalf("topFive[0] = %v", got[0])
	}
	for i := 1; i < 5; i++ {
		if got[i] != (types.Pair{}) {
			t.Fatalf("topFive[%d] = %v, want placeholder", i, got[i])
		}
	}
}

func TestTopFiveEmptyTable(t *testing.T) {
	got := topFive(nil)
	for i, p := range got {
		if p != (types.Pair{}) {
			t.Fatalf("topFive[%d] = %v, want placeholder", i, p)
		}
	}
}
