// Copyright (c) 2015-2021, NVIDIA CORPORATION.
// SPDX-License-Identifier: Apache-2.0

package rbtree

import (
	"github.com/NVIDIA/rbtree/logger"
)

func (tree *Tree[V]) recolor(node *nodeStruct[V], color Color) {
	if color != node.color {
		node.color = color
		tree.stats.Recolors.Increment()
	}
}

// rotate performs the given rotation at node, keeping tree.root current
func (tree *Tree[V]) rotate(node *nodeStruct[V], left bool) (promoted *nodeStruct[V]) {
	if left {
		promoted = node.rotateLeft()
	} else {
		promoted = node.rotateRight()
	}

	if nil == promoted.parent {
		tree.root = promoted
	}

	tree.stats.Rotations.Increment()

	return
}

// fixupAfterInsert restores the Red-Black invariants after the RED node has
// been attached beneath a parent. Each pass handles exactly one of:
//
//   node is the root                     => color it BLACK, done
//   parent is BLACK                      => nothing violated, done
//   uncle is RED                         => recolor parent/uncle BLACK and
//                                           grandparent RED, continue at grandparent
//   node is an "inner" grandchild        => rotate at parent turning it into an
//                                           "outer" grandchild (falls through)
//   node is an "outer" grandchild        => recolor parent BLACK and grandparent
//                                           RED then rotate at grandparent, done
//
func (tree *Tree[V]) fixupAfterInsert(node *nodeStruct[V]) {
	var (
		grandparent *nodeStruct[V]
		parent      *nodeStruct[V]
		uncle       *nodeStruct[V]
	)

	for {
		parent = node.parent

		if nil == parent {
			tree.recolor(node, BLACK)
			return
		}

		if !parent.isRed() {
			return
		}

		// A RED parent is never the root so grandparent is present

		grandparent = parent.parent
		uncle = node.uncle()

		if uncle.isRed() {
			logger.DebugfID(logger.DbgInternal, "fixup: red uncle, ascending to grandparent")
			tree.recolor(parent, BLACK)
			tree.recolor(uncle, BLACK)
			tree.recolor(grandparent, RED)
			tree.stats.FixupAscents.Increment()
			node = grandparent
			continue
		}

		if (node == parent.right) && (parent == grandparent.left) {
			logger.DebugfID(logger.DbgInternal, "fixup: left-right zig-zag")
			parent = tree.rotate(parent, true)
			node = parent.left
		} else if (node == parent.left) && (parent == grandparent.right) {
			logger.DebugfID(logger.DbgInternal, "fixup: right-left zig-zag")
			parent = tree.rotate(parent, false)
			node = parent.right
		}

		tree.recolor(parent, BLACK)
		tree.recolor(grandparent, RED)

		if node == parent.left {
			tree.rotate(grandparent, false)
		} else {
			tree.rotate(grandparent, true)
		}

		return
	}
}
