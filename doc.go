// Copyright 2023 Peter Hebert. Licensed under the MIT license.

// Package louds implements a succinct encoding of ordered rooted trees: the
// Level-Order Unary Degree Sequence (LOUDS). A tree of n nodes is stored as
// a single bit sequence of length 2n+1 plus the o(n)-bit rank/select index
// that [github.com/hideo55/go-sbvector] builds over it, instead of the
// Θ(n·w) bits a pointer-based tree would need on a w-bit machine. Every
// navigation primitive — parent, child-by-rank, first/last child, next
// sibling, degree — reduces to at most three rank/select queries.
//
// A Louds is built by pushing node degrees (or raw bits) in breadth-first
// order, then frozen; after Freeze it is read-only and safe for concurrent
// use by multiple goroutines, provided the underlying go-sbvector vector's
// read operations are too (it documents rank/select as having no internal
// mutation).
//
// This example builds the following ordered tree. Nodes are identified by
// breadth-first numbering:
//
//	       0
//	    /     \
//	   1       2
//	 / | \    / \
//	3  4  5  6   7
//	  / \ |  |
//	  8 9 10 11
//
// See the sibling package [github.com/loudslib/louds/trie] for a
// LOUDS-backed trie built on top of this package.
package louds

import "fmt"

func ExampleLouds() {
	degrees := []int{2, 3, 2, 0, 2, 1, 1, 0, 0, 0, 0, 0}
	l := New()
	for _, d := range degrees {
		l.PushNode(d)
	}
	if err := l.Freeze(); err != nil {
		panic(err)
	}

	// Tree traversal operations (move to parent/children/sibling) are
	// supported in constant-time.
	fc1, _ := l.FirstChild(1)
	fc3, fc3ok := l.FirstChild(3)
	lc2, _ := l.LastChild(2)
	lc7, lc7ok := l.LastChild(7)
	c11, _ := l.Child(1, 1)
	p4, _ := l.Parent(4)
	s4, _ := l.Sibling(4)
	d4 := l.Degree(4)

	fmt.Println(fc1, fc3, fc3ok, lc2, lc7, lc7ok, c11, p4, s4, d4)

	// Computing depth of a node takes time proportional to the height of
	// the tree.
	fmt.Println(l.Depth(4))

	// Output:
	// 3 0 false 7 0 false 4 1 5 2
	// 2
}
