// Package splits implements the split catalogue: the enumerable set
// of questions a node may ask, and the legality rules (touched-letter
// constraints, same-class/downward exception chaining, same-index
// guard) that govern which of them a descendant may still use.
package splits

import (
	"math/bits"

	"github.com/gitrdm/anagramtree/pkg/anagram/partition"
	"github.com/gitrdm/anagramtree/pkg/anagram/wordmodel"
)

// Class is the ordered tier a split belongs to. Chain exceptions may
// only move to the same class or downward (Contains < Positional <
// Double/Triple).
type Class int

const (
	ClassContains Class = iota
	ClassPositional
	ClassDouble
	ClassTriple
)

// Rank orders classes for the same-class-or-downward exception check.
// Double and Triple share a rank: both sit at the bottom tier.
func (c Class) Rank() int {
	switch c {
	case ClassContains:
		return 0
	case ClassPositional:
		return 1
	default:
		return 2
	}
}

func (c Class) String() string {
	switch c {
	case ClassContains:
		return "Contains"
	case ClassPositional:
		return "Positional"
	case ClassDouble:
		return "Double"
	case ClassTriple:
		return "Triple"
	default:
		return "Class(?)"
	}
}

// reciprocal is the fixed, bidirectional table of visually/phonetically
// confusable letter pairs used to generate the reciprocal-letter
// (same-slot) soft Positional splits. Soft Contains splits do not use
// it; they consider every present letter as a secondary.
var reciprocal = buildReciprocal([][2]byte{
	{'e', 'i'},
	{'c', 'k'},
	{'s', 'z'},
	{'i', 'l'},
	{'m', 'n'},
	{'u', 'v'},
	{'o', 'q'},
	{'c', 'g'},
	{'b', 'p'},
	{'i', 't'},
	{'r', 'e'},
	{'a', 'r'},
})

func buildReciprocal(pairs [][2]byte) map[int][]int {
	m := map[int][]int{}
	add := func(a, b int) {
		for _, existing := range m[a] {
			if existing == b {
				return
			}
		}
		m[a] = append(m[a], b)
	}
	for _, p := range pairs {
		a, b := int(p[0]-'a'), int(p[1]-'a')
		add(a, b)
		add(b, a)
	}
	return m
}

// Reciprocals returns every letter the table pairs with letter l.
func Reciprocals(l int) []int {
	return reciprocal[l]
}

// Descriptor names one instantiated candidate split: which letters it
// tests, at which class (and, for positional splits, which slots),
// whether it is hard, and the Yes/No bipartition it produces.
type Descriptor struct {
	Class Class
	Hard  bool

	TestLetter int
	ReqLetter  int // equals TestLetter for a hard split

	// HasSlot is true for ClassPositional descriptors; TestSlot/ReqSlot
	// are meaningless otherwise.
	HasSlot  bool
	TestSlot wordmodel.Slot
	ReqSlot  wordmodel.Slot

	Yes, No uint32
}

// Constraints is the per-sub-problem touched-letter state propagated
// downward through the search. It is a plain value: copying it is
// copying the whole constraint state, which is exactly what the
// recursion needs at every branch.
type Constraints struct {
	// Forbidden holds every letter no descendant split may use as
	// primary or secondary, barring the exception below.
	Forbidden uint32

	// AllowedOnceMask holds at most one letter: the one the immediate
	// child (and only the immediate child) may still use as primary
	// despite being forbidden.
	AllowedOnceMask uint32
	// AllowedOnceClass is the class of the split that granted the
	// exception; a reuse must be the same class or downward from it.
	AllowedOnceClass Class
	// AllowedOnceHasSlot/AllowedOnceSlot record the parent's slot when
	// the grant came from a positional split, for the same-index guard.
	AllowedOnceHasSlot bool
	AllowedOnceSlot    wordmodel.Slot
}

// Empty is the constraint state at the root of a solve.
func Empty() Constraints {
	return Constraints{}
}

// Prune drops forbidden/allowed-once bits for letters that are not
// present anywhere in the current sub-problem: such bits can never
// affect legality again, and keeping them out of the state lets
// otherwise-identical sub-problems share one memo entry.
func (c Constraints) Prune(present uint32) Constraints {
	c.Forbidden &= present
	c.AllowedOnceMask &= present
	if c.AllowedOnceMask == 0 {
		c.AllowedOnceHasSlot = false
	}
	return c
}

func bit(l int) uint32 { return uint32(1) << uint(l) }

// primaryAllowed reports whether letter l may be used as a primary
// letter by a split of class cls (with slot/hasSlot when cls is
// Positional) inside the sub-problem branchMask.
func (c Constraints) primaryAllowed(model *wordmodel.Model, l int, cls Class, slot wordmodel.Slot, hasSlot bool, branchMask uint32) bool {
	if c.Forbidden&bit(l) == 0 {
		return true
	}
	if c.AllowedOnceMask&bit(l) == 0 {
		return false
	}
	if cls.Rank() < c.AllowedOnceClass.Rank() {
		return false
	}
	if !c.AllowedOnceHasSlot {
		return true
	}
	if !hasSlot {
		// The parent was positional but this candidate is not; no
		// positional collision is possible, so the guard is moot.
		return true
	}
	return !slotsCollideInBranch(model, branchMask, c.AllowedOnceSlot, slot)
}

// secondaryAllowed reports whether letter l may be used as a
// secondary letter. There is no exception for secondary use: once
// forbidden, always forbidden as a secondary.
func (c Constraints) secondaryAllowed(l int) bool {
	return c.Forbidden&bit(l) == 0
}

// slotsCollideInBranch reports whether slotA and slotB resolve to the
// same absolute letter index for any word in mask — the same-index
// guard that blocks an adjacent/mirror-slot soft split from chaining
// into a positional split that would ask about the identical letter
// twice.
func slotsCollideInBranch(model *wordmodel.Model, mask uint32, slotA, slotB wordmodel.Slot) bool {
	for idx, w := range model.Words {
		if mask&(uint32(1)<<uint(idx)) == 0 {
			continue
		}
		ia, oka := slotA.AbsoluteIndex(w.Len)
		ib, okb := slotB.AbsoluteIndex(w.Len)
		if oka && okb && ia == ib {
			return true
		}
	}
	return false
}

// Derive computes the constraint state handed to the Yes and No
// children of a split described by d.
func Derive(parent Constraints, d Descriptor) (yesChild, noChild Constraints) {
	testBit, reqBit := bit(d.TestLetter), bit(d.ReqLetter)

	yesChild = Constraints{
		Forbidden:          parent.Forbidden | testBit,
		AllowedOnceMask:    testBit,
		AllowedOnceClass:   d.Class,
		AllowedOnceHasSlot: d.HasSlot,
		AllowedOnceSlot:    d.TestSlot,
	}

	noChild = Constraints{Forbidden: parent.Forbidden | testBit | reqBit}
	if !d.Hard {
		// The no-branch child may still re-use the secondary letter as
		// its own primary; the test letter carries no such exception on
		// the no side because the no branch never satisfied the test.
		noChild.AllowedOnceMask = reqBit
		noChild.AllowedOnceClass = d.Class
		noChild.AllowedOnceHasSlot = d.HasSlot
		noChild.AllowedOnceSlot = d.ReqSlot
	}
	return yesChild, noChild
}

func positionTable(model *wordmodel.Model, cls Class, slot wordmodel.Slot) *[26]uint32 {
	switch cls {
	case ClassContains:
		return &model.Contains
	case ClassDouble:
		return &model.Doubled
	case ClassTriple:
		return &model.Tripled
	default:
		return &model.Positional[slot]
	}
}

// Candidates enumerates every legal split at a node, in the
// catalogue's fixed order: soft variants first (Contains, then
// Positional, then Double, then Triple), followed by the hard
// variants in the same class order. The order only affects how
// quickly the solver finds a good bound; it has no bearing on which
// trees are optimal.
func Candidates(model *wordmodel.Model, mask uint32, c Constraints) []Descriptor {
	var out []Descriptor

	out = softContains(model, mask, c, out)
	out = softPositional(model, mask, c, out)
	out = softDoubleOrTriple(model, mask, c, ClassDouble, out)
	out = softDoubleOrTriple(model, mask, c, ClassTriple, out)

	out = hardOfClass(model, mask, c, ClassContains, wordmodel.SlotFirst, false, out)
	for _, slot := range wordmodel.AllSlots {
		out = hardOfClass(model, mask, c, ClassPositional, slot, true, out)
	}
	out = hardOfClass(model, mask, c, ClassDouble, wordmodel.SlotFirst, false, out)
	out = hardOfClass(model, mask, c, ClassTriple, wordmodel.SlotFirst, false, out)

	return out
}

func hardOfClass(model *wordmodel.Model, mask uint32, c Constraints, cls Class, slot wordmodel.Slot, hasSlot bool, out []Descriptor) []Descriptor {
	table := positionTable(model, cls, slot)
	it := partition.New(table, mask, model.PresentLetters)
	for {
		letter, yes, no, ok := it.Next()
		if !ok {
			break
		}
		if !c.primaryAllowed(model, letter, cls, slot, hasSlot, mask) {
			continue
		}
		// A hard split's requirement letter is definitionally its test
		// letter — there is no independent secondary to forbid, so only
		// primaryAllowed governs legality here.
		out = append(out, Descriptor{
			Class: cls, Hard: true,
			TestLetter: letter, ReqLetter: letter,
			HasSlot: hasSlot, TestSlot: slot, ReqSlot: slot,
			Yes: yes, No: no,
		})
	}
	return out
}

// softContains generates the "(all-no contain S)" variant for every
// letter S that actually covers the whole No branch.
func softContains(model *wordmodel.Model, mask uint32, c Constraints, out []Descriptor) []Descriptor {
	it := partition.New(&model.Contains, mask, model.PresentLetters)
	for {
		p, yes, no, ok := it.Next()
		if !ok {
			break
		}
		if !c.primaryAllowed(model, p, ClassContains, 0, false, mask) {
			continue
		}
		for _, s := range model.PresentLetters {
			if s == p {
				continue
			}
			if !c.secondaryAllowed(s) {
				continue
			}
			if mask&model.Contains[s]&no != no || no == 0 {
				continue
			}
			out = append(out, Descriptor{
				Class: ClassContains, Hard: false,
				TestLetter: p, ReqLetter: s,
				Yes: yes, No: no,
			})
		}
	}
	return out
}

// softPositional generates the three named positional soft variants:
// reciprocal-letter at the same slot, and same-letter at an
// adjacent/mirror slot.
func softPositional(model *wordmodel.Model, mask uint32, c Constraints, out []Descriptor) []Descriptor {
	for _, slot := range wordmodel.AllSlots {
		it := partition.New(&model.Positional[slot], mask, model.PresentLetters)
		for {
			p, yes, no, ok := it.Next()
			if !ok {
				break
			}
			if !c.primaryAllowed(model, p, ClassPositional, slot, true, mask) {
				continue
			}

			for _, s := range Reciprocals(p) {
				if !c.secondaryAllowed(s) {
					continue
				}
				reqTable := model.Positional[slot]
				if mask&reqTable[s]&no != no || no == 0 {
					continue
				}
				out = append(out, Descriptor{
					Class: ClassPositional, Hard: false,
					TestLetter: p, ReqLetter: s,
					HasSlot: true, TestSlot: slot, ReqSlot: slot,
					Yes: yes, No: no,
				})
			}

			for _, reqSlot := range wordmodel.AdjacentSlots[slot] {
				if slotsCollideInBranch(model, no, slot, reqSlot) {
					continue
				}
				reqTable := model.Positional[reqSlot]
				if mask&reqTable[p]&no != no || no == 0 {
					continue
				}
				out = append(out, Descriptor{
					Class: ClassPositional, Hard: false,
					TestLetter: p, ReqLetter: p,
					HasSlot: true, TestSlot: slot, ReqSlot: reqSlot,
					Yes: yes, No: no,
				})
			}
		}
	}
	return out
}

// softDoubleOrTriple generates the "(all-no double/triple B), B != P"
// variant.
func softDoubleOrTriple(model *wordmodel.Model, mask uint32, c Constraints, cls Class, out []Descriptor) []Descriptor {
	table := positionTable(model, cls, 0)
	it := partition.New(table, mask, model.PresentLetters)
	for {
		p, yes, no, ok := it.Next()
		if !ok {
			break
		}
		if !c.primaryAllowed(model, p, cls, 0, false, mask) {
			continue
		}
		for _, b := range model.PresentLetters {
			if b == p {
				continue
			}
			if !c.secondaryAllowed(b) {
				continue
			}
			if mask&table[b]&no != no || no == 0 {
				continue
			}
			out = append(out, Descriptor{
				Class: cls, Hard: false,
				TestLetter: p, ReqLetter: b,
				Yes: yes, No: no,
			})
		}
	}
	return out
}

// PopCount is re-exported for callers that want a quick word-count
// estimate from a mask without importing math/bits directly.
func PopCount(mask uint32) int {
	return bits.OnesCount32(mask)
}
