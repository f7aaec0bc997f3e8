// Copyright (c) 2015-2021, NVIDIA CORPORATION.
// SPDX-License-Identifier: Apache-2.0

package rbtree

type nodeStruct[V any] struct {
	value  V
	color  Color
	left   *nodeStruct[V] // Pointer to Left Child (or nil)
	right  *nodeStruct[V] // Pointer to Right Child (or nil)
	parent *nodeStruct[V] // Back-reference to Parent (or nil if root)
}

func newNode[V any](value V) (node *nodeStruct[V]) {
	node = &nodeStruct[V]{value: value, color: RED}
	return
}

func (node *nodeStruct[V]) isRed() bool {
	return (nil != node) && (RED == node.color)
}

func (node *nodeStruct[V]) grandparent() *nodeStruct[V] {
	if nil == node.parent {
		return nil
	}
	return node.parent.parent
}

func (node *nodeStruct[V]) sibling() *nodeStruct[V] {
	if nil == node.parent {
		return nil
	}
	if node == node.parent.left {
		return node.parent.right
	}
	return node.parent.left
}

func (node *nodeStruct[V]) uncle() *nodeStruct[V] {
	if nil == node.parent {
		return nil
	}
	return node.parent.sibling()
}

// replaceInParent makes replacement occupy node's slot in node's parent (if any)
func (node *nodeStruct[V]) replaceInParent(replacement *nodeStruct[V]) {
	replacement.parent = node.parent
	if nil != node.parent {
		if node == node.parent.left {
			node.parent.left = replacement
		} else {
			node.parent.right = replacement
		}
	}
}

// rotateLeft promotes node.right into node's position, making node its left child:
//
//         node                  right
//        /    \                /     \
//       a    right    =>     node     c
//           /     \         /    \
//          b       c       a      b
//
// node.right must be present. Colors are untouched, as is the tree's root: if the
// promoted node ends up with no parent the caller must make it the root.
func (node *nodeStruct[V]) rotateLeft() (promoted *nodeStruct[V]) {
	promoted = node.right

	node.right = promoted.left
	if nil != promoted.left {
		promoted.left.parent = node
	}

	node.replaceInParent(promoted)

	promoted.left = node
	node.parent = promoted

	return
}

// rotateRight is the mirror image of rotateLeft (node.left must be present)
func (node *nodeStruct[V]) rotateRight() (promoted *nodeStruct[V]) {
	promoted = node.left

	node.left = promoted.right
	if nil != promoted.right {
		promoted.right.parent = node
	}

	node.replaceInParent(promoted)

	promoted.right = node
	node.parent = promoted

	return
}
