package solver

import (
	"errors"
	"testing"

	"github.com/gitrdm/anagramtree/pkg/anagram/cost"
	"github.com/gitrdm/anagramtree/pkg/anagram/tree"
	"github.com/gitrdm/anagramtree/pkg/anagram/wordmodel"
)

func TestValidateRejectsEmptyInput(t *testing.T) {
	if _, err := Solve(Request{}); !errors.Is(err, ErrEmptyInput) {
		t.Fatalf("expected ErrEmptyInput, got %v", err)
	}
}

func TestValidateRejectsTooManyWords(t *testing.T) {
	words := make([]string, 33)
	for i := range words {
		words[i] = string(rune('a' + i%26))
	}
	if _, err := Solve(Request{Words: words}); !errors.Is(err, ErrTooManyWords) {
		t.Fatalf("expected ErrTooManyWords, got %v", err)
	}
}

func TestValidateRejectsNonASCIIOrEmptyWord(t *testing.T) {
	if _, err := Solve(Request{Words: []string{"cat", ""}}); !errors.Is(err, ErrNonASCIIOrEmptyWord) {
		t.Fatalf("expected ErrNonASCIIOrEmptyWord for empty word, got %v", err)
	}
	if _, err := Solve(Request{Words: []string{"cat", "dog5"}}); !errors.Is(err, ErrNonASCIIOrEmptyWord) {
		t.Fatalf("expected ErrNonASCIIOrEmptyWord for a digit, got %v", err)
	}
}

func TestValidateRejectsDuplicateWordsCaseInsensitively(t *testing.T) {
	if _, err := Solve(Request{Words: []string{"Cat", "cat"}}); !errors.Is(err, ErrDuplicateWord) {
		t.Fatalf("expected ErrDuplicateWord, got %v", err)
	}
}

func TestSingleWordIsALeaf(t *testing.T) {
	res, err := Solve(Request{Words: []string{"cat"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Trees) != 1 {
		t.Fatalf("expected exactly one tree for a single word, got %d", len(res.Trees))
	}
	leaf, ok := res.Trees[0].(*tree.Leaf)
	if !ok || leaf.Word != "cat" {
		t.Fatalf("expected a Leaf naming cat, got %+v", res.Trees[0])
	}
	if res.Cost.Depth != 0 || res.Cost.MaxNos != 0 {
		t.Fatalf("leaf baseline cost should be all-zero, got %+v", res.Cost)
	}
}

func TestTwoWordSplitClassifiesCorrectly(t *testing.T) {
	res, err := Solve(Request{Words: []string{"cat", "dog"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Trees) == 0 {
		t.Fatalf("expected at least one tree")
	}
	for _, tr := range res.Trees {
		for _, w := range []string{"cat", "dog"} {
			named, ok := tree.Identify(tr, wordmodel.NewWord(w))
			if !ok || named != w {
				t.Fatalf("tree %+v misclassified %q as %q", tr, w, named)
			}
		}
	}
}

// With Repeat enabled, a two-word subset whose words differ by only
// one distinguishing letter should prefer the Repeat (max_nos=0) over
// any split (max_nos=1): naming one word outright and recursing into
// the other as a singleton costs zero no-edges where a split costs one.
func TestRepeatDominatesSplitAtTwoWords(t *testing.T) {
	res, err := Solve(Request{Words: []string{"leo", "geo"}}, WithAllowRepeat(true))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := cost.Repeat(cost.Leaf())
	if res.Cost != want {
		t.Fatalf("got cost %+v, want %+v", res.Cost, want)
	}
	for _, tr := range res.Trees {
		if _, ok := tr.(*tree.Repeat); !ok {
			t.Fatalf("expected every optimal tree to be a Repeat, got %T", tr)
		}
	}
}

func TestRepeatDisabledFallsBackToSplit(t *testing.T) {
	res, err := Solve(Request{Words: []string{"leo", "geo"}}, WithAllowRepeat(false))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Cost.MaxNos != 1 {
		t.Fatalf("without Repeat, max_nos should be 1 (a single split), got %+v", res.Cost)
	}
	for _, tr := range res.Trees {
		if _, ok := tr.(*tree.Repeat); ok {
			t.Fatalf("Repeat should never appear when disabled")
		}
	}
}

func TestLimitCapsReturnedTreesAndSetsExhausted(t *testing.T) {
	// leo/geo/neo share "eo" and differ only by first letter, so the
	// top split can legally be a soft Contains('l'), Contains('g') or
	// Contains('n'), each with 'e' or 'o' as the letter every No-branch
	// word shares, at identical cost: well more than one tie at limit=1.
	words := []string{"leo", "geo", "neo"}
	res, err := Solve(Request{Words: words}, WithLimit(1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Trees) > 1 {
		t.Fatalf("limit=1 should cap trees at 1, got %d", len(res.Trees))
	}
	if !res.Exhausted {
		t.Fatalf("leo/geo/neo has more than one tied optimal tree, so limit=1 should report Exhausted")
	}
}

func TestMemoDisabledProducesSameCost(t *testing.T) {
	words := []string{"aries", "taurus", "gemini", "cancer", "leo"}
	withMemo, err := Solve(Request{Words: words}, WithAllowRepeat(true))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	withoutMemo, err := Solve(Request{Words: words}, WithAllowRepeat(true), WithMemoDisabled())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if withMemo.Cost != withoutMemo.Cost {
		t.Fatalf("memoization should not change the optimal cost: %+v vs %+v", withMemo.Cost, withoutMemo.Cost)
	}
}

func TestBothPrioritiesClassifyEveryWord(t *testing.T) {
	words := []string{"aries", "taurus", "gemini", "cancer", "leo", "virgo"}
	a, err := Solve(Request{Words: words}, WithPrioritizeSoftNo(false))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := Solve(Request{Words: words}, WithPrioritizeSoftNo(true))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Both must still classify every word correctly regardless of
	// which field ordering won out.
	for _, res := range []struct {
		name string
		r    Result
	}{{"default", a}, {"prioritized", b}} {
		for _, tr := range res.r.Trees {
			for _, w := range words {
				if named, ok := tree.Identify(tr, wordmodel.NewWord(w)); !ok || named != w {
					t.Fatalf("%s: tree misclassified %q as %q", res.name, w, named)
				}
			}
		}
	}
}

// Exactly the two-word case: "a" and "b" share no letters, but the
// single No-branch word always contains its own letter, so the best
// split is a soft Contains on either letter ("Contains 'a'? (all No
// have 'b')" and its mirror), giving two tied trees (Leaf a/no-Leaf b
// and Leaf b/no-Leaf a), both depth 1, max_nos=1, no hard No.
func TestTwoDisjointLettersGivesTwoTiedDepthOneTrees(t *testing.T) {
	res, err := Solve(Request{Words: []string{"a", "b"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	wantCost := cost.Split(cost.Leaf(), cost.Leaf(), false, 1)
	if res.Cost != wantCost {
		t.Fatalf("got cost %+v, want %+v", res.Cost, wantCost)
	}
	if len(res.Trees) != 2 {
		t.Fatalf("expected both tied trees (a-first and b-first), got %d", len(res.Trees))
	}
}

// The twelve-word zodiac list is large enough to exercise both the
// soft-split catalogue and the branch-and-bound pruning path (the
// LowerBound computation) at a scale the two/five-word cases above
// never reach. The exact cost tuple depends on a letter-pair
// reciprocity table this module only approximates (see DESIGN.md), so
// this does not assert literal numbers; instead it checks the
// properties that must hold regardless of that table's exact contents:
// every word is still classified correctly, the word count is exact,
// and flipping prioritize_soft_no never changes which words a tree
// names, only which tree the cost ordering ranks best.
func TestFullZodiacListClassifiesAndCountsCorrectlyUnderBothPriorities(t *testing.T) {
	words := []string{
		"aries", "taurus", "gemini", "cancer", "leo", "virgo",
		"libra", "scorpio", "sagittarius", "capricorn", "aquarius", "pisces",
	}
	for _, prioritize := range []bool{false, true} {
		res, err := Solve(Request{Words: words}, WithAllowRepeat(true), WithPrioritizeSoftNo(prioritize))
		if err != nil {
			t.Fatalf("prioritize_soft_no=%v: unexpected error: %v", prioritize, err)
		}
		if res.Cost.WordCount != uint32(len(words)) {
			t.Fatalf("prioritize_soft_no=%v: cost word count %d, want %d", prioritize, res.Cost.WordCount, len(words))
		}
		for _, tr := range res.Trees {
			for _, w := range words {
				if named, ok := tree.Identify(tr, wordmodel.NewWord(w)); !ok || named != w {
					t.Fatalf("prioritize_soft_no=%v: tree misclassified %q as %q", prioritize, w, named)
				}
			}
		}
	}
}

func TestMergedTreeIsPopulated(t *testing.T) {
	res, err := Solve(Request{Words: []string{"cat", "dog"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.MergedTree == nil || len(res.MergedTree.Options) == 0 {
		t.Fatalf("expected a populated merged tree")
	}
}
