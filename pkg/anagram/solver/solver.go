// Package solver implements the memoized, branch-and-bound search
// over the split catalogue (pkg/anagram/splits) that builds one or
// more minimum-cost anagram trees for a word list.
package solver

import (
	"math/bits"

	"github.com/gitrdm/anagramtree/pkg/anagram/cost"
	"github.com/gitrdm/anagramtree/pkg/anagram/merge"
	"github.com/gitrdm/anagramtree/pkg/anagram/splits"
	"github.com/gitrdm/anagramtree/pkg/anagram/tree"
	"github.com/gitrdm/anagramtree/pkg/anagram/wordmodel"
)

// Request is the input to a Solve call: the word list to build a
// tree over. Words are case-insensitive; Solve lower-cases them.
type Request struct {
	Words []string
}

// Result is everything a Solve call produces.
type Result struct {
	Cost       cost.Cost
	Trees      []tree.Node
	MergedTree *merge.Node
	Exhausted  bool
}

// Solve finds the minimum-cost anagram tree (or trees, if several
// tie) for req.Words under opts. It is a pure function of its inputs:
// no package-level state survives between calls, and nothing it
// touches is shared with a concurrent call (see internal/batch for
// how independent calls are run concurrently).
func Solve(req Request, opts ...Option) (Result, error) {
	if err := validate(req.Words); err != nil {
		return Result{}, err
	}

	cfg := defaultConfig()
	for _, o := range opts {
		if o != nil {
			o(cfg)
		}
	}

	words := make([]wordmodel.Word, len(req.Words))
	for i, w := range req.Words {
		words[i] = wordmodel.NewWord(w)
	}
	model := wordmodel.New(words)

	s := &session{model: model, cfg: cfg, memo: map[key]*solution{}}
	root := s.solve(model.Full, splits.Empty())

	merged := merge.Merge(root.nodes)

	return Result{
		Cost:       root.cost,
		Trees:      root.nodes,
		MergedTree: merged,
		Exhausted:  root.exhausted,
	}, nil
}

// key is the memoization key: a sub-problem's word mask plus the
// touched-letter constraint state that governs which splits remain
// legal. The distilled design's key is (mask, forbidden, allowed-once
// letter); this also includes the allowed-once class and positional
// slot, a conservative widening that trades a few extra cache misses
// for the guarantee that no two sub-problems sharing a key actually
// differ in which splits are legal (see DESIGN.md).
type key struct {
	mask               uint32
	forbidden          uint32
	allowedOnceMask    uint32
	allowedOnceClass   splits.Class
	allowedOnceHasSlot bool
	allowedOnceSlot    wordmodel.Slot
}

func keyOf(mask uint32, c splits.Constraints) key {
	return key{
		mask:               mask,
		forbidden:          c.Forbidden,
		allowedOnceMask:    c.AllowedOnceMask,
		allowedOnceClass:   c.AllowedOnceClass,
		allowedOnceHasSlot: c.AllowedOnceHasSlot,
		allowedOnceSlot:    c.AllowedOnceSlot,
	}
}

// solution is the cached result for one (mask, constraints) pair: the
// best cost found and every tied tree discovered up to the session's
// limit.
type solution struct {
	cost      cost.Cost
	nodes     []tree.Node
	exhausted bool
}

// session holds the read-only model and options plus the mutable memo
// cache for a single Solve call. It is never shared across calls.
type session struct {
	model *wordmodel.Model
	cfg   *config
	memo  map[key]*solution
}

func (s *session) solve(mask uint32, c splits.Constraints) *solution {
	c = c.Prune(s.model.LettersPresentIn(mask))

	if bits.OnesCount32(mask) == 1 {
		return s.leaf(mask)
	}

	k := keyOf(mask, c)
	if !s.cfg.memoDisabled {
		if cached, ok := s.memo[k]; ok {
			return cached
		}
	}

	acc := &accumulator{limit: s.cfg.limit, prioritizeSoftNo: s.cfg.prioritizeSoftNo}

	if s.cfg.allowRepeat && bits.OnesCount32(mask) == 2 {
		s.tryRepeats(mask, acc)
	}

	for _, d := range splits.Candidates(s.model, mask, c) {
		s.tryCandidate(d, c, acc)
	}

	sol := &solution{cost: acc.best, nodes: acc.nodes, exhausted: acc.exhausted}
	if !s.cfg.memoDisabled {
		s.memo[k] = sol
	}
	return sol
}

func (s *session) leaf(mask uint32) *solution {
	w, ok := s.model.WordAt(mask)
	assertf(ok, "leaf called on non-singleton mask %b", mask)
	return &solution{cost: cost.Leaf(), nodes: []tree.Node{&tree.Leaf{Word: w.Text, Idx: mask}}}
}

func (s *session) tryRepeats(mask uint32, acc *accumulator) {
	for _, idx := range bitIndices(mask) {
		wordBit := uint32(1) << uint(idx)
		rest := mask &^ wordBit
		restSol := s.solve(rest, splits.Empty())
		c := cost.Repeat(restSol.cost)
		w, _ := s.model.WordAt(wordBit)
		for _, remaining := range restSol.nodes {
			node := &tree.Repeat{Word: w.Text, WordIdx: wordBit, Remaining: remaining}
			acc.consider(c, node)
		}
	}
}

func (s *session) tryCandidate(d splits.Descriptor, parent splits.Constraints, acc *accumulator) {
	noWordCount := uint32(bits.OnesCount32(d.No))
	yesWordCount := uint32(bits.OnesCount32(d.Yes))
	yesChild, noChild := splits.Derive(parent, d)

	noSol := s.solve(d.No, noChild)

	lowerBound := cost.LowerBound(noSol.cost, d.Hard, noWordCount, yesWordCount)
	if acc.hasBest {
		// The no side alone proves this candidate can't beat the best,
		// or can at most tie it when no further ties can be kept.
		if c := cost.Compare(lowerBound, acc.best, acc.prioritizeSoftNo); c > 0 || (c == 0 && acc.exhausted) {
			return
		}
	}

	yesSol := s.solve(d.Yes, yesChild)
	combined := cost.Split(yesSol.cost, noSol.cost, d.Hard, noWordCount)

	for _, yesNode := range yesSol.nodes {
		for _, noNode := range noSol.nodes {
			assertf(yesNode.Mask()&noNode.Mask() == 0, "yes/no children overlap: %b & %b", yesNode.Mask(), noNode.Mask())
			split := tree.FromDescriptor(d)
			split.Yes, split.No = yesNode, noNode
			if !acc.consider(combined, split) {
				return
			}
		}
	}
}

// accumulator tracks the best cost and the tied nodes achieving it
// for one node of the search, enforcing the tie cap.
type accumulator struct {
	hasBest          bool
	best             cost.Cost
	nodes            []tree.Node
	exhausted        bool
	limit            int
	prioritizeSoftNo bool
}

// consider folds one more candidate tree into the accumulator.
// Returns false once the cap has been hit and no further candidate at
// this cost could still be accepted, so callers may stop generating
// more ties for the current candidate split.
func (a *accumulator) consider(c cost.Cost, node tree.Node) bool {
	switch {
	case !a.hasBest:
		a.hasBest, a.best = true, c
		a.nodes = []tree.Node{node}
		a.exhausted = false
	case cost.Less(c, a.best, a.prioritizeSoftNo):
		a.best = c
		a.nodes = []tree.Node{node}
		a.exhausted = false
	case cost.Compare(c, a.best, a.prioritizeSoftNo) == 0:
		if a.limit == 0 || len(a.nodes) < a.limit {
			a.nodes = append(a.nodes, node)
		} else {
			a.exhausted = true
			return false
		}
	}
	return true
}

func bitIndices(mask uint32) []int {
	var out []int
	for mask != 0 {
		i := bits.TrailingZeros32(mask)
		out = append(out, i)
		mask &^= 1 << uint(i)
	}
	return out
}
