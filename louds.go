// Copyright 2023 Peter Hebert. Licensed under the MIT license.

package louds

import (
	"fmt"

	"github.com/hideo55/go-sbvector"
)

// Louds is a succinct ordered tree. The zero value is not usable; create one
// with New.
type Louds struct {
	builder sbvector.VectorBuilder
	bv      sbvector.SuccinctBitVector
	frozen  bool

	length  uint64 // bits pushed so far
	closed  uint64 // nodes fully closed so far, including the sentinel
	pending uint64 // child slots promised but not yet described
}

// New returns an empty Louds: just the sentinel super-root with one child
// (the future real root) and its closing bit, "1 0". Real nodes are added
// with PushNode or PushBit, in breadth-first order, before calling Freeze.
func New() *Louds {
	l := &Louds{builder: sbvector.NewVectorBuilder()}
	l.PushBit(true)
	l.PushBit(false)
	return l
}

// PushBit appends a single bit to the bit sequence under construction. It is
// the primitive PushNode is built from: a 1-bit promises one more child slot
// for the node currently being described, a 0-bit closes that node's child
// list.
//
// PushBit panics if it would close a node for which no child slot was ever
// promised (more closes than opens) — a degenerate construction, caught as
// early as possible rather than left to corrupt
// navigation silently.
func (l *Louds) PushBit(b bool) {
	assertf(!l.frozen, "PushBit called after Freeze")
	l.builder.PushBack(b)
	l.length++
	if b {
		l.pending++
		return
	}
	// The first zero closes the sentinel, which fills no promised slot; every
	// later zero closes a real node, i.e. one of the promised slots.
	if l.closed > 0 {
		assertf(l.pending > 0, "PushBit(false): no pending child slot to close (pushed more nodes than the tree implies)")
		l.pending--
	}
	l.closed++
}

// PushNode appends a node with d children: d one-bits followed by one
// zero-bit. Callers must push nodes in breadth-first order; Louds cannot
// detect a wrong order (only a wrong total count, via Freeze), so violating
// it silently corrupts navigation.
func (l *Louds) PushNode(d int) {
	assertf(d >= 0, "PushNode: negative degree %d", d)
	for i := 0; i < d; i++ {
		l.PushBit(true)
	}
	l.PushBit(false)
}

// Freeze finalizes construction: it builds the rank/select index over the
// accumulated bits and makes the Louds safe to query. It returns an error if
// the pushed bits don't describe a complete tree (a promised child slot was
// never described, i.e. pending != 0) or if the underlying bit vector fails
// to build.
func (l *Louds) Freeze() error {
	if l.frozen {
		return nil
	}
	if l.pending != 0 {
		return fmt.Errorf("louds: incomplete tree: %d child slot(s) promised but never described", l.pending)
	}
	bv, err := l.builder.Build(true, true)
	if err != nil {
		return fmt.Errorf("louds: building rank/select index: %w", err)
	}
	l.bv = bv
	l.frozen = true
	return nil
}

// NumNodes returns the number of real nodes pushed (the sentinel super-root
// does not count).
func (l *Louds) NumNodes() int {
	return int(l.closed - 1)
}

func (l *Louds) checkFrozen() {
	assertf(l.frozen, "louds: Louds must be frozen before it can be queried")
}

func (l *Louds) checkNode(i int) uint64 {
	assertf(i >= 0 && uint64(i) < l.closed-1, "louds: node id %d out of range [0,%d)", i, l.closed-1)
	return uint64(i)
}

// get reads a single bit, treating a position at or beyond the end of the
// bit vector as unset rather than an error. For in-range node ids the
// navigation methods only read positions inside the vector (the last node's
// closing zero is the final bit), so this guard only keeps an out-of-range
// read from surfacing as a failure of the bit vector.
func (l *Louds) get(pos uint64) bool {
	if pos >= l.length {
		return false
	}
	b, err := l.bv.Get(pos)
	assertf(err == nil, "louds: Get(%d): %v", pos, err)
	return b
}

func (l *Louds) rank1(pos uint64) uint64 {
	r, err := l.bv.Rank1(pos)
	assertf(err == nil, "louds: Rank1(%d): %v", pos, err)
	return r
}

func (l *Louds) rank0(pos uint64) uint64 {
	r, err := l.bv.Rank0(pos)
	assertf(err == nil, "louds: Rank0(%d): %v", pos, err)
	return r
}

func (l *Louds) select0(k uint64) uint64 {
	p, err := l.bv.Select0(k)
	assertf(err == nil, "louds: Select0(%d): %v", k, err)
	return p
}

func (l *Louds) select1(k uint64) uint64 {
	p, err := l.bv.Select1(k)
	assertf(err == nil, "louds: Select1(%d): %v", k, err)
	return p
}

// firstChildPos returns the bit position immediately after node i's closing
// zero: the position where i's first child, if any, is announced.
func (l *Louds) firstChildPos(i uint64) uint64 {
	return l.select0(i) + 1
}

// FirstChild returns the first child of node i, if it has one.
func (l *Louds) FirstChild(i int) (int, bool) {
	l.checkFrozen()
	ni := l.checkNode(i)
	pos := l.firstChildPos(ni)
	if !l.get(pos) {
		return 0, false
	}
	return int(l.rank1(pos)), true
}

// LastChild returns the last child of node i, if it has one.
func (l *Louds) LastChild(i int) (int, bool) {
	l.checkFrozen()
	ni := l.checkNode(i)
	pos := l.select0(ni+1) - 1
	if !l.get(pos) {
		return 0, false
	}
	return int(l.rank1(pos)), true
}

// IsLeaf reports whether node i has no children.
func (l *Louds) IsLeaf(i int) bool {
	l.checkFrozen()
	ni := l.checkNode(i)
	return !l.get(l.firstChildPos(ni))
}

// Degree returns the number of children of node i.
func (l *Louds) Degree(i int) int {
	l.checkFrozen()
	ni := l.checkNode(i)
	first := l.firstChildPos(ni)
	if !l.get(first) {
		return 0
	}
	last := l.select0(ni+1) - 1
	return int(last - first + 1)
}

// RangeChildren returns the inclusive range (s, e) of node i's children's
// identifiers, or ok=false if i is a leaf.
func (l *Louds) RangeChildren(i int) (s, e int, ok bool) {
	l.checkFrozen()
	ni := l.checkNode(i)
	first := l.firstChildPos(ni)
	if !l.get(first) {
		return 0, 0, false
	}
	last := l.select0(ni+1) - 1
	start := l.rank1(first)
	return int(start), int(start + (last - first)), true
}

// Child returns the k-th child (0-based) of node i.
func (l *Louds) Child(i, k int) (int, bool) {
	s, e, ok := l.RangeChildren(i)
	if !ok || k < 0 || s+k > e {
		return 0, false
	}
	return s + k, true
}

// Sibling returns the next sibling of node i, if it has one.
func (l *Louds) Sibling(i int) (int, bool) {
	l.checkFrozen()
	ni := l.checkNode(i)
	p := l.select1(ni)
	if !l.get(p + 1) {
		return 0, false
	}
	return i + 1, true
}

// Parent returns the parent of node i. The root (i == 0) has none.
func (l *Louds) Parent(i int) (int, bool) {
	l.checkFrozen()
	ni := l.checkNode(i)
	if ni == 0 {
		return 0, false
	}
	p := l.select1(ni)
	return int(l.rank0(p) - 1), true
}

// Depth returns the depth of node i (the root is at depth 0). It is O(depth)
// time, the only non-O(1) operation in this package.
func (l *Louds) Depth(i int) int {
	l.checkFrozen()
	ni := l.checkNode(i)
	d := 0
	for ni > 0 {
		p := l.select1(ni)
		ni = l.rank0(p) - 1
		d++
	}
	return d
}
