package cost

import "testing"

func TestLeafBaseline(t *testing.T) {
	l := Leaf()
	if l.MaxHardNos != 0 || l.MaxNos != 0 || l.SumHardNos != 0 || l.SumNos != 0 || l.Depth != 0 || l.WordCount != 1 {
		t.Fatalf("unexpected leaf baseline: %+v", l)
	}
}

func TestSplitTwoLeaves(t *testing.T) {
	yes, no := Leaf(), Leaf()
	c := Split(yes, no, true, no.WordCount)
	want := Cost{MaxHardNos: 1, MaxNos: 1, SumHardNos: 1, SumNos: 1, Depth: 1, WordCount: 2}
	if c != want {
		t.Fatalf("got %+v, want %+v", c, want)
	}
}

func TestSplitSoftDoesNotIncrementHard(t *testing.T) {
	yes, no := Leaf(), Leaf()
	c := Split(yes, no, false, no.WordCount)
	if c.MaxHardNos != 0 || c.SumHardNos != 0 {
		t.Fatalf("soft split must not add hard-no cost, got %+v", c)
	}
	if c.MaxNos != 1 || c.SumNos != 1 {
		t.Fatalf("soft split must still add a no-edge, got %+v", c)
	}
}

func TestRepeatPassesThroughNoEdge(t *testing.T) {
	remaining := Cost{MaxHardNos: 2, MaxNos: 3, SumHardNos: 4, SumNos: 5, Depth: 2, WordCount: 3}
	c := Repeat(remaining)
	if c.MaxHardNos != remaining.MaxHardNos || c.MaxNos != remaining.MaxNos {
		t.Fatalf("repeat must not add a no-edge: got %+v from %+v", c, remaining)
	}
	if c.Depth != remaining.Depth+1 {
		t.Fatalf("repeat must add one depth level: got depth %d, want %d", c.Depth, remaining.Depth+1)
	}
	if c.WordCount != remaining.WordCount+1 {
		t.Fatalf("repeat must add the named word to the count: got %d", c.WordCount)
	}
}

func TestComparePrioritizationSwapsFieldOrder(t *testing.T) {
	softFirst := Cost{MaxHardNos: 0, MaxNos: 2, SumHardNos: 0, SumNos: 4, WordCount: 4}
	hardFirst := Cost{MaxHardNos: 1, MaxNos: 1, SumHardNos: 1, SumNos: 2, WordCount: 4}

	if Compare(softFirst, hardFirst, false) >= 0 {
		t.Fatalf("with default ordering softFirst should win (fewer hard nos)")
	}
	if Compare(softFirst, hardFirst, true) <= 0 {
		t.Fatalf("with prioritize_soft_no, hardFirst should win (fewer total nos)")
	}
}

func TestCompareWeightedSumUsesWordCount(t *testing.T) {
	a := Cost{SumNos: 1, WordCount: 2} // average 0.5
	b := Cost{SumNos: 3, WordCount: 4} // average 0.75
	if Compare(a, b, false) >= 0 {
		t.Fatalf("a has the lower weighted average and should sort first")
	}
}

func TestLowerBoundUsesTrueYesWordCount(t *testing.T) {
	no := Cost{SumHardNos: 1, WordCount: 1}
	bound := LowerBound(no, true, 1, 3)
	if bound.WordCount != 4 {
		t.Fatalf("lower bound must use the true Yes word count, got WordCount=%d", bound.WordCount)
	}
	// The true combined cost, once Yes is actually solved to a
	// perfectly-splittable zero-hard-no tree, has the same WordCount and
	// the same SumHardNos=1 as the bound: the bound must not be
	// optimistic (report a smaller WordCount and thus a better ratio)
	// relative to that true result.
	trueCombined := Split(Cost{WordCount: 3}, no, true, 1)
	if Compare(bound, trueCombined, false) > 0 {
		t.Fatalf("lower bound %+v must be no worse than the true combined cost %+v", bound, trueCombined)
	}
}

func TestAverages(t *testing.T) {
	c := Cost{SumHardNos: 3, SumNos: 9, WordCount: 6}
	avgHard, avgAll := c.Averages()
	if avgHard != 0.5 || avgAll != 1.5 {
		t.Fatalf("unexpected averages: hard=%v all=%v", avgHard, avgAll)
	}
}
