// Copyright (c) 2015-2021, NVIDIA CORPORATION.
// SPDX-License-Identifier: Apache-2.0

package rbtree

import (
	"fmt"
	"strings"
)

func colorTag(color Color) string {
	if RED == color {
		return "R"
	}
	return "B"
}

func (tree *Tree[V]) dump() (dump string, err error) {
	var (
		sb strings.Builder
	)

	err = tree.usable("Dump")
	if nil != err {
		return
	}

	fmt.Fprintf(&sb, "Flat form (size %v):\n", tree.size)
	tree.dumpFlat(&sb, tree.root)

	fmt.Fprintf(&sb, "Tree form:\n")
	tree.dumpSideways(&sb, tree.root, "", "")

	dump = sb.String()
	err = nil
	return
}

// dumpFlat writes one line per node in pre-order
func (tree *Tree[V]) dumpFlat(sb *strings.Builder, node *nodeStruct[V]) {
	if nil == node {
		return
	}

	fmt.Fprintf(sb, "  %v [%s]", node.value, colorTag(node.color))
	if nil != node.left {
		fmt.Fprintf(sb, " left:%v", node.left.value)
	}
	if nil != node.right {
		fmt.Fprintf(sb, " right:%v", node.right.value)
	}
	sb.WriteString("\n")

	tree.dumpFlat(sb, node.left)
	tree.dumpFlat(sb, node.right)
}

// dumpSideways writes the tree rotated a quarter turn counter-clockwise: the
// root at the left margin with right subtrees above and left subtrees below.
func (tree *Tree[V]) dumpSideways(sb *strings.Builder, node *nodeStruct[V], indent string, branch string) {
	if nil == node {
		return
	}

	tree.dumpSideways(sb, node.right, indent+"      ", "/ ")
	fmt.Fprintf(sb, "%s%s%v [%s]\n", indent, branch, node.value, colorTag(node.color))
	tree.dumpSideways(sb, node.left, indent+"      ", "\\ ")
}
