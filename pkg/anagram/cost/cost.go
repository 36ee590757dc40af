// Package cost implements the lexicographic cost algebra used to rank
// candidate anagram trees.
//
// A Cost is a 5-tuple (MaxHardNos, MaxNos, SumHardNos, SumNos, Depth).
// Smaller is better, and comparisons are strict lexicographic in that
// field order unless the caller asks to prioritize soft no-answers, in
// which case the first two and the next two fields swap places.
package cost

// Cost is the 5-tuple cost of a tree or sub-tree, plus the word count
// of the subtree it describes. WordCount is not one of the five
// ordered fields; it exists only so the Sum* fields can be compared as
// weighted averages without drifting into floating point during the
// search (see Compare).
type Cost struct {
	MaxHardNos uint32
	MaxNos     uint32
	SumHardNos uint32
	SumNos     uint32
	Depth      uint32
	WordCount  uint32
}

// Leaf is the baseline cost of a single word with no further
// questions left to ask. Depth starts at zero edges from the leaf
// itself; Split and Repeat both add one edge on the way up.
func Leaf() Cost {
	return Cost{WordCount: 1}
}

// Split combines a Yes-branch cost and a No-branch cost into the cost
// of the split that produced them. noWordCount is the number of words
// in the No branch, used to weight the sum fields. hard selects
// whether the split's No answer is unjustified (hard) or backed by a
// satisfied soft requirement (soft).
func Split(yes, no Cost, hard bool, noWordCount uint32) Cost {
	var hardInc, sumHardInc uint32
	if hard {
		hardInc = 1
		sumHardInc = noWordCount
	}
	return Cost{
		MaxHardNos: max32(yes.MaxHardNos, no.MaxHardNos+hardInc),
		MaxNos:     max32(yes.MaxNos, no.MaxNos+1),
		SumHardNos: yes.SumHardNos + no.SumHardNos + sumHardInc,
		SumNos:     yes.SumNos + no.SumNos + noWordCount,
		Depth:      max32(yes.Depth, no.Depth) + 1,
		WordCount:  yes.WordCount + no.WordCount,
	}
}

// Repeat combines the cost of naming one word outright with the cost
// of the remaining sub-problem. Unlike Split, answering a Repeat
// question does not add a No-edge: the word is simply named and the
// search continues among the rest, so the No counts pass through from
// the remaining sub-problem unchanged; only Depth gains one edge and
// WordCount gains the named word.
func Repeat(remaining Cost) Cost {
	return Cost{
		MaxHardNos: remaining.MaxHardNos,
		MaxNos:     remaining.MaxNos,
		SumHardNos: remaining.SumHardNos,
		SumNos:     remaining.SumNos,
		Depth:      remaining.Depth + 1,
		WordCount:  remaining.WordCount + 1,
	}
}

// LowerBound returns the smallest cost that a split with the given No
// side could possibly combine into, assuming the best case (zero-cost)
// Yes side. yesWordCount must be the Yes branch's true word count —
// known exactly before it is solved — not an assumed leaf. Using a
// wrong, smaller word count here would shrink only the denominator of
// the weighted Sum*/WordCount ratio Compare cross-multiplies, making
// the bound look better than any real Yes side could ever make it and
// letting the solver prune a candidate that could still win once Yes
// is actually solved.
func LowerBound(no Cost, hard bool, noWordCount, yesWordCount uint32) Cost {
	return Split(Cost{WordCount: yesWordCount}, no, hard, noWordCount)
}

// Compare orders a and b, smaller first. When prioritizeSoftNo is
// false the field order is (MaxHardNos, MaxNos, SumHardNos, SumNos,
// Depth); when true, fields 1/2 and 3/4 swap, so every No-answer
// (hard or soft) dominates hard-only No-answers.
//
// The weighted Sum* fields are compared by cross-multiplying with the
// two subtrees' word counts rather than dividing, avoiding floating
// point in a routine called on every search node.
func Compare(a, b Cost, prioritizeSoftNo bool) int {
	if prioritizeSoftNo {
		if c := cmp32(a.MaxNos, b.MaxNos); c != 0 {
			return c
		}
		if c := cmp32(a.MaxHardNos, b.MaxHardNos); c != 0 {
			return c
		}
		if c := cmpWeighted(a.SumNos, a.WordCount, b.SumNos, b.WordCount); c != 0 {
			return c
		}
		if c := cmpWeighted(a.SumHardNos, a.WordCount, b.SumHardNos, b.WordCount); c != 0 {
			return c
		}
		return cmp32(a.Depth, b.Depth)
	}

	if c := cmp32(a.MaxHardNos, b.MaxHardNos); c != 0 {
		return c
	}
	if c := cmp32(a.MaxNos, b.MaxNos); c != 0 {
		return c
	}
	if c := cmpWeighted(a.SumHardNos, a.WordCount, b.SumHardNos, b.WordCount); c != 0 {
		return c
	}
	if c := cmpWeighted(a.SumNos, a.WordCount, b.SumNos, b.WordCount); c != 0 {
		return c
	}
	return cmp32(a.Depth, b.Depth)
}

// Less reports whether a sorts strictly before b.
func Less(a, b Cost, prioritizeSoftNo bool) bool {
	return Compare(a, b, prioritizeSoftNo) < 0
}

// Averages returns the Sum* fields normalized by WordCount, the
// "average Nos per word on the heaviest path" figure reported to
// callers. Reporting is the only place these sums are turned into
// floating point; the search itself never divides.
func (c Cost) Averages() (avgHardNos, avgNos float64) {
	if c.WordCount == 0 {
		return 0, 0
	}
	return float64(c.SumHardNos) / float64(c.WordCount), float64(c.SumNos) / float64(c.WordCount)
}

func max32(a, b uint32) uint32 {
	if a > b {
		return a
	}
	return b
}

func cmp32(a, b uint32) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// cmpWeighted compares sumA/countA against sumB/countB without
// dividing, by cross-multiplying: sumA*countB vs sumB*countA.
func cmpWeighted(sumA, countA, sumB, countB uint32) int {
	left := uint64(sumA) * uint64(countB)
	right := uint64(sumB) * uint64(countA)
	switch {
	case left < right:
		return -1
	case left > right:
		return 1
	default:
		return 0
	}
}
