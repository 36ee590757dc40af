// Package merge combines a set of cost-tied optimal trees into a
// single recursive structure that exposes, at each position where the
// tied trees diverge, the set of alternatives a renderer can present
// as options (grounded in original_source/src/merged.rs's equivalent
// pass over the Rust solver's output).
package merge

import (
	"sort"

	"github.com/gitrdm/anagramtree/pkg/anagram/splits"
	"github.com/gitrdm/anagramtree/pkg/anagram/tree"
	"github.com/gitrdm/anagramtree/pkg/anagram/wordmodel"
)

// NodeInfo identifies the "shape" of a tree node for grouping
// purposes: two nodes merge into the same Option iff their NodeInfo
// is equal.
type NodeInfo struct {
	Kind string // "Leaf", "Repeat", or "Split"
	Word string // set for Leaf and Repeat

	Class      splits.Class
	Hard       bool
	TestLetter int
	ReqLetter  int
	HasSlot    bool
	TestSlot   wordmodel.Slot
	ReqSlot    wordmodel.Slot
}

// Option is one alternative at a merged position: the shape every
// tree in its group shares, plus the recursive merge of their
// children. Yes is nil for Leaf and Repeat nodes; No is nil for Leaf
// nodes and holds the merged "remaining" sub-tree for Repeat nodes.
type Option struct {
	Info    NodeInfo
	Yes, No *Node
}

// Node is the recursive merged-tree record. Options holds one entry
// per distinct shape among the trees that reached this position; a
// single-element Options list means every tied tree agreed here.
type Node struct {
	Options []Option
}

// Merge groups nodes by shape and recurses into their children,
// producing one merged Node. It returns nil for an empty input. The
// grouping order is sorted by shape so that the result is independent
// of the order Solve happened to discover the tied trees in.
func Merge(nodes []tree.Node) *Node {
	if len(nodes) == 0 {
		return nil
	}

	groups := map[NodeInfo][]tree.Node{}
	for _, n := range nodes {
		info := infoOf(n)
		groups[info] = append(groups[info], n)
	}

	infos := make([]NodeInfo, 0, len(groups))
	for info := range groups {
		infos = append(infos, info)
	}
	sort.Slice(infos, func(i, j int) bool { return less(infos[i], infos[j]) })

	opts := make([]Option, 0, len(infos))
	for _, info := range infos {
		group := groups[info]
		opts = append(opts, buildOption(info, group))
	}
	return &Node{Options: opts}
}

func buildOption(info NodeInfo, group []tree.Node) Option {
	opt := Option{Info: info}
	switch info.Kind {
	case "Repeat":
		remaining := make([]tree.Node, 0, len(group))
		for _, n := range group {
			remaining = append(remaining, n.(*tree.Repeat).Remaining)
		}
		opt.No = Merge(remaining)
	case "Split":
		yes := make([]tree.Node, 0, len(group))
		no := make([]tree.Node, 0, len(group))
		for _, n := range group {
			s := n.(*tree.Split)
			yes = append(yes, s.Yes)
			no = append(no, s.No)
		}
		opt.Yes = Merge(yes)
		opt.No = Merge(no)
	}
	return opt
}

func infoOf(n tree.Node) NodeInfo {
	switch t := n.(type) {
	case *tree.Leaf:
		return NodeInfo{Kind: "Leaf", Word: t.Word}
	case *tree.Repeat:
		return NodeInfo{Kind: "Repeat", Word: t.Word}
	case *tree.Split:
		return NodeInfo{
			Kind:       "Split",
			Class:      t.Class,
			Hard:       t.Hard,
			TestLetter: t.TestLetter,
			ReqLetter:  t.ReqLetter,
			HasSlot:    t.HasSlot,
			TestSlot:   t.TestSlot,
			ReqSlot:    t.ReqSlot,
		}
	default:
		return NodeInfo{Kind: "Unknown"}
	}
}

// less provides the deterministic total order Merge sorts groups by.
func less(a, b NodeInfo) bool {
	if a.Kind != b.Kind {
		return a.Kind < b.Kind
	}
	if a.Word != b.Word {
		return a.Word < b.Word
	}
	if a.Class != b.Class {
		return a.Class < b.Class
	}
	if a.Hard != b.Hard {
		return !a.Hard // soft before hard, matching the catalogue's own enumeration order
	}
	if a.TestLetter != b.TestLetter {
		return a.TestLetter < b.TestLetter
	}
	if a.ReqLetter != b.ReqLetter {
		return a.ReqLetter < b.ReqLetter
	}
	if a.TestSlot != b.TestSlot {
		return a.TestSlot < b.TestSlot
	}
	return a.ReqSlot < b.ReqSlot
}
