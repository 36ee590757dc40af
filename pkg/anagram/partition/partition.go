// Package partition streams the (Yes, No) bipartitions a candidate
// split induces over a word-set mask, one per present letter, without
// allocating on each step.
package partition

// Iterator walks a fixed per-letter mask table (e.g. a Model's
// Contains, Positional[slot] or Doubled/Tripled table), yielding only
// the letters that actually split mask into two non-empty halves.
type Iterator struct {
	table   *[26]uint32
	mask    uint32
	letters []int
	pos     int
}

// New starts an iteration of table against mask, considering only the
// letters listed in presentLetters (ordinarily Model.PresentLetters,
// since a letter absent from every word can never produce a split).
func New(table *[26]uint32, mask uint32, presentLetters []int) *Iterator {
	return &Iterator{table: table, mask: mask, letters: presentLetters}
}

// Next advances the iterator. It returns ok=false once every present
// letter has been considered. A letter is only surfaced once, when it
// actually bipartitions mask (both the Yes and No sides are
// non-empty); letters whose mask fully contains or entirely misses
// the word set are skipped silently, as are letters that already
// match the full set.
func (it *Iterator) Next() (letter int, yes, no uint32, ok bool) {
	for it.pos < len(it.letters) {
		l := it.letters[it.pos]
		it.pos++
		y := it.mask & it.table[l]
		if y == 0 || y == it.mask {
			continue
		}
		return l, y, it.mask &^ y, true
	}
	return 0, 0, 0, false
}
