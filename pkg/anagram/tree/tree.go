// Package tree defines the immutable tree shapes a solve can return:
// a leaf naming one word, a repeat that names a word while leaving the
// rest of its two-word subset to resolve below, and a split with a
// Yes/No child pair. Nodes are plain immutable values; sharing a
// sub-tree across multiple parent trees is ordinary Go pointer
// sharing, not a reference count — the garbage collector reclaims
// what the original design tracked by hand.
package tree

import (
	"github.com/gitrdm/anagramtree/pkg/anagram/splits"
	"github.com/gitrdm/anagramtree/pkg/anagram/wordmodel"
)

// Node is the closed set of tree shapes a solve can produce. It is
// implemented only by Leaf, Repeat and Split in this package; the
// switch in Identify is exhaustive by construction.
type Node interface {
	// Mask is the set of words this node resolves among.
	Mask() uint32
	node()
}

// Leaf names the single word left in its subset. No further question
// is asked below it.
type Leaf struct {
	Word string
	Idx  uint32 // bitmask with exactly one bit set
}

func (l *Leaf) Mask() uint32 { return l.Idx }
func (l *Leaf) node()        {}

// Repeat names Word outright and, if the answer is "no", falls
// through to Remaining — the node that resolves whatever is left of
// the two-word subset. Remaining is a *Leaf in every tree this engine
// produces (Repeat is only ever offered at exactly two words), but the
// field is typed as Node rather than *Leaf to mirror the two explicit
// branches the algebra's Repeat combinator describes.
type Repeat struct {
	Word      string
	WordIdx   uint32
	Remaining Node
}

func (r *Repeat) Mask() uint32 { return r.WordIdx | r.Remaining.Mask() }
func (r *Repeat) node()        {}

// Split asks one question from the catalogue and recurses into Yes or
// No depending on the answer. A hard split has ReqLetter == TestLetter
// and ReqSlot == TestSlot; HasSlot is true only for positional splits.
type Split struct {
	Class splits.Class
	Hard  bool

	TestLetter int
	ReqLetter  int

	HasSlot  bool
	TestSlot wordmodel.Slot
	ReqSlot  wordmodel.Slot

	Yes, No Node
}

func (s *Split) Mask() uint32 { return s.Yes.Mask() | s.No.Mask() }
func (s *Split) node()        {}

// Answer reports how word w answers this split's primary question.
func (s *Split) Answer(w wordmodel.Word) bool {
	switch s.Class {
	case splits.ClassContains:
		return w.Mask26&(1<<uint(s.TestLetter)) != 0
	case splits.ClassDouble:
		return w.Doubled26&(1<<uint(s.TestLetter)) != 0
	case splits.ClassTriple:
		return w.Tripled26&(1<<uint(s.TestLetter)) != 0
	default:
		return w.LetterAt(s.TestSlot) == s.TestLetter
	}
}

// Identify walks the tree rooted at n, answering every split along the
// way from w's own letter data, and returns the word named by the
// Leaf or Repeat it lands on together with whether that name matches
// w.Text — the check behind the classification-correctness property.
func Identify(n Node, w wordmodel.Word) (named string, matches bool) {
	for {
		switch t := n.(type) {
		case *Leaf:
			return t.Word, t.Word == w.Text
		case *Repeat:
			if t.Word == w.Text {
				return t.Word, true
			}
			n = t.Remaining
		case *Split:
			if t.Answer(w) {
				n = t.Yes
			} else {
				n = t.No
			}
		default:
			return "", false
		}
	}
}

// FromDescriptor builds the Split shell for a catalogue descriptor,
// leaving Yes/No nil for the caller to fill in once the children have
// been solved.
func FromDescriptor(d splits.Descriptor) *Split {
	return &Split{
		Class:      d.Class,
		Hard:       d.Hard,
		TestLetter: d.TestLetter,
		ReqLetter:  d.ReqLetter,
		HasSlot:    d.HasSlot,
		TestSlot:   d.TestSlot,
		ReqSlot:    d.ReqSlot,
	}
}
