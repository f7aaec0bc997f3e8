// Copyright (c) 2015-2021, NVIDIA CORPORATION.
// SPDX-License-Identifier: Apache-2.0

package rbtree

import (
	"github.com/NVIDIA/rbtree/blunder"
)

func (tree *Tree[V]) validate() (err error) {
	var (
		nodeCount int
	)

	err = tree.usable("Validate")
	if nil != err {
		return
	}

	if nil == tree.root {
		if 0 != tree.size {
			err = blunder.NewError(blunder.CorruptTreeError, "empty tree has size %v", tree.size)
			return
		}
		err = nil
		return
	}

	if nil != tree.root.parent {
		err = blunder.NewError(blunder.CorruptTreeError, "root has a parent")
		return
	}
	if tree.root.isRed() {
		err = blunder.NewError(blunder.CorruptTreeError, "root is RED")
		return
	}

	_, nodeCount, err = tree.validateRecursive(tree.root, nil, nil)
	if nil != err {
		return
	}

	if nodeCount != tree.size {
		err = blunder.NewError(blunder.CorruptTreeError, "tree has %v nodes but size %v", nodeCount, tree.size)
		return
	}

	err = nil
	return
}

// validateRecursive checks node's subtree, all of whose values must lie strictly
// between the values of lowerBound and upperBound (where present), returning its
// black-height and node count.
func (tree *Tree[V]) validateRecursive(node *nodeStruct[V], lowerBound *nodeStruct[V], upperBound *nodeStruct[V]) (blackHeight int, nodeCount int, err error) {
	var (
		leftBlackHeight  int
		leftNodeCount    int
		rightBlackHeight int
		rightNodeCount   int
	)

	if nil == node {
		blackHeight = 1
		nodeCount = 0
		err = nil
		return
	}

	if (nil != lowerBound) && (0 <= tree.compare(lowerBound.value, node.value)) {
		err = blunder.NewError(blunder.CorruptTreeError, "value %v not greater than ancestor %v", node.value, lowerBound.value)
		return
	}
	if (nil != upperBound) && (0 >= tree.compare(upperBound.value, node.value)) {
		err = blunder.NewError(blunder.CorruptTreeError, "value %v not less than ancestor %v", node.value, upperBound.value)
		return
	}

	if node.isRed() && (node.left.isRed() || node.right.isRed()) {
		err = blunder.NewError(blunder.CorruptTreeError, "RED node %v has a RED child", node.value)
		return
	}

	if (nil != node.left) && (node != node.left.parent) {
		err = blunder.NewError(blunder.CorruptTreeError, "left child of %v has wrong parent", node.value)
		return
	}
	if (nil != node.right) && (node != node.right.parent) {
		err = blunder.NewError(blunder.CorruptTreeError, "right child of %v has wrong parent", node.value)
		return
	}

	leftBlackHeight, leftNodeCount, err = tree.validateRecursive(node.left, lowerBound, node)
	if nil != err {
		return
	}
	rightBlackHeight, rightNodeCount, err = tree.validateRecursive(node.right, node, upperBound)
	if nil != err {
		return
	}

	if leftBlackHeight != rightBlackHeight {
		err = blunder.NewError(blunder.CorruptTreeError, "node %v has black-heights %v (left) and %v (right)", node.value, leftBlackHeight, rightBlackHeight)
		return
	}

	blackHeight = leftBlackHeight
	if !node.isRed() {
		blackHeight++
	}
	nodeCount = leftNodeCount + 1 + rightNodeCount

	err = nil
	return
}

func (tree *Tree[V]) blackHeight() (blackHeight int, err error) {
	err = tree.validate()
	if nil != err {
		return
	}

	for node := tree.root; nil != node; node = node.left {
		if !node.isRed() {
			blackHeight++
		}
	}

	err = nil
	return
}
