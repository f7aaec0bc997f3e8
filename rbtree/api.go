// Copyright (c) 2015-2021, NVIDIA CORPORATION.
// SPDX-License-Identifier: Apache-2.0

// Package rbtree provides an in-memory ordered set implemented as a classic
// (parent-linked) Red-Black Tree.
//
// Red-Black Trees are Binary Search Trees ("BST") whose nodes are "colored"
// such that:
//
//   1. Every node is RED or BLACK
//   2. The root, if present, is BLACK
//   3. No RED node has a RED child
//   4. Every path from a node to any of its missing children passes through
//      the same number of BLACK nodes (the node's black-height)
//
// Together these bound the height of the tree at O(log n). Values are placed
// solely by the client supplied CompareFunc and duplicates (compare result 0)
// are rejected rather than replaced. Deletion is not supported.
//
// A Tree is not safe for concurrent use. Callers sharing a Tree between
// goroutines must serialize all access to it (e.g. with a single sync.Mutex)
// as insertion transiently violates the invariants above.
package rbtree

import (
	"github.com/NVIDIA/rbtree/logger"
)

// Color of a node
type Color bool

const (
	RED   Color = true
	BLACK Color = false
)

func (color Color) String() string {
	if RED == color {
		return "RED"
	}
	return "BLACK"
}

// CompareFunc returns <0 if value1 < value2, 0 if value1 == value2, >0 if value1 > value2
//
// The ordering must be total, consistent, and transitive for the lifetime of the Tree.
type CompareFunc[V any] func(value1 V, value2 V) (result int)

// DestroyFunc releases a single value. It is called exactly once per stored value
// by Destroy(). A nil DestroyFunc means values need no releasing.
type DestroyFunc[V any] func(value V)

// VisitFunc is called by ForEach() for each value in order. The context passed to
// ForEach() is handed through unmodified. Returning false stops the walk.
type VisitFunc[V any] func(value V, context interface{}) (ok bool)

// Tree is a Red-Black Tree of values of type V.
//
// A Tree must be created by New(). Every method tolerates a nil *Tree, reporting
// blunder.InvalidArgError (or false) rather than panicking.
type Tree[V any] struct {
	root      *nodeStruct[V]
	compare   CompareFunc[V]
	destroy   DestroyFunc[V]
	size      int
	destroyed bool
	stats     Stats
	statsName string // "" unless RegisterStats() was called
}

// New returns an empty Tree ordered by compare whose values will be released by destroy.
func New[V any](compare CompareFunc[V], destroy DestroyFunc[V]) (tree *Tree[V], err error) {
	return newTree(compare, destroy)
}

// Insert adds value to the tree.
//
// Returns ok == true if value was inserted. If a value comparing equal to value is
// already present, ok == false and err == nil (the tree is unchanged). Otherwise
// ok == false and err is one of:
//
//   blunder.InvalidArgError  - nil tree or absent (nil) value
//   blunder.BadHandleError   - tree has been destroyed
//   blunder.OutOfMemoryError - the configured RBTree.MaxNodes has been reached
//
func (tree *Tree[V]) Insert(value V) (ok bool, err error) {
	return tree.insert(value)
}

// Contains returns whether a value comparing equal to value is in the tree.
//
// An empty, nil, or destroyed tree, or an absent (nil) value, contains nothing.
func (tree *Tree[V]) Contains(value V) (found bool) {
	return tree.contains(value)
}

// ForEach calls visit on each value in ascending order, passing context through.
//
// Returns ok == true if visit returned true for every value. If visit returns
// false the walk stops immediately and ok == false with err == nil. An empty
// tree reports ok == false with blunder.NoDataError; a nil tree or nil visit
// reports blunder.InvalidArgError; a destroyed tree reports blunder.BadHandleError.
func (tree *Tree[V]) ForEach(visit VisitFunc[V], context interface{}) (ok bool, err error) {
	return tree.forEach(visit, context)
}

// Destroy calls the tree's DestroyFunc once on every value (children before
// parents) and releases every node. The tree may not be used afterwards; any
// further method reports blunder.BadHandleError.
func (tree *Tree[V]) Destroy() (err error) {
	return tree.destroyAll()
}

// Len returns the number of values in the tree (0 for a nil or destroyed tree).
func (tree *Tree[V]) Len() (numberOfItems int) {
	if nil == tree {
		return 0
	}
	return tree.size
}

// Validate checks every Red-Black and BST invariant along with parent links and
// the value count, returning blunder.CorruptTreeError describing the first
// violation found.
func (tree *Tree[V]) Validate() (err error) {
	ctx := logger.TraceEnter("size", tree.Len())
	defer func() { ctx.TraceExitErr("size", err, tree.Len()) }()

	err = tree.validate()
	return
}

// BlackHeight returns the number of BLACK nodes on every path from the root to a
// missing child (0 for an empty tree). The tree is validated first.
func (tree *Tree[V]) BlackHeight() (blackHeight int, err error) {
	return tree.blackHeight()
}

// Dump returns the tree rendered first in flat form (one line per node, pre-order)
// and then in (sideways) tree form.
func (tree *Tree[V]) Dump() (dump string, err error) {
	return tree.dump()
}
