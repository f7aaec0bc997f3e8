// Copyright (c) 2015-2021, NVIDIA CORPORATION.
// SPDX-License-Identifier: Apache-2.0

package rbtree

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NVIDIA/rbtree/blunder"
	"github.com/NVIDIA/rbtree/logger"
)

func TestValidateDetectsCorruption(t *testing.T) {
	testCases := []struct {
		name    string
		corrupt func(tree *Tree[int])
		expect  string
	}{
		{"red root", func(tree *Tree[int]) { tree.root.color = RED }, "root is RED"},
		{"red red", func(tree *Tree[int]) { tree.root.left.color = RED }, "has a RED child"},
		{"black height", func(tree *Tree[int]) { tree.root.left.right.color = BLACK }, "black-heights"},
		{"order", func(tree *Tree[int]) { tree.root.left.right.value = 25 }, "not less than ancestor"},
		{"parent link", func(tree *Tree[int]) { tree.root.left.right.parent = tree.root }, "wrong parent"},
		{"size", func(tree *Tree[int]) { tree.size++ }, "nodes but size"},
	}

	for _, testCase := range testCases {
		// 20(B) 10(B),30(B) 15(R) under 10
		tree := newIntTree(t, 10, 20, 30, 15)
		require.Nil(t, tree.Validate(), testCase.name)

		testCase.corrupt(tree)

		err := tree.Validate()
		if !blunder.Is(err, blunder.CorruptTreeError) {
			t.Fatalf("%s: Validate() should have failed with CorruptTreeError, got: %v", testCase.name, err)
		}
		if !strings.Contains(err.Error(), testCase.expect) {
			t.Fatalf("%s: Validate() error %q should mention %q", testCase.name, err.Error(), testCase.expect)
		}

		_, err = tree.BlackHeight()
		assert.True(t, blunder.Is(err, blunder.CorruptTreeError), testCase.name)
	}
}

func TestRotationPrimitives(t *testing.T) {
	assert := assert.New(t)

	//     b            d
	//    / \          / \
	//   a   d   <=>  b   e
	//      / \      / \
	//     c   e    a   c
	a, b, c, d, e := newNode(1), newNode(2), newNode(3), newNode(4), newNode(5)
	b.left, a.parent = a, b
	b.right, d.parent = d, b
	d.left, c.parent = c, d
	d.right, e.parent = e, d

	promoted := b.rotateLeft()
	assert.Equal(d, promoted)
	assert.Nil(d.parent)
	assert.Equal(b, d.left)
	assert.Equal(e, d.right)
	assert.Equal(d, b.parent)
	assert.Equal(a, b.left)
	assert.Equal(c, b.right)
	assert.Equal(b, c.parent)

	promoted = d.rotateRight()
	assert.Equal(b, promoted)
	assert.Nil(b.parent)
	assert.Equal(a, b.left)
	assert.Equal(d, b.right)
	assert.Equal(c, d.left)
	assert.Equal(d, c.parent)

	// Rotating beneath a parent replaces the child link in that parent
	top := newNode(10)
	top.left, b.parent = b, top
	promoted = b.rotateLeft()
	assert.Equal(d, top.left)
	assert.Equal(top, promoted.parent)

	assert.Equal(e, c.uncle())
	assert.Equal(top, c.grandparent().parent)
	assert.Nil(top.sibling())
}

func TestValidateTraced(t *testing.T) {
	testSetup(t, nil)
	defer testTeardown(t)

	assert := assert.New(t)

	tree := newIntTree(t, 10, 20, 30)

	var target logger.LogTarget
	target.Init(10)
	logger.AddLogTarget(target)

	assert.Nil(tree.Validate())
	assert.Equal(2, target.LogBuf.TotalEntries)
	assert.True(strings.Contains(target.LogBuf.LogEntries[1], ">> called size 3"), target.LogBuf.LogEntries[1])
	assert.True(strings.Contains(target.LogBuf.LogEntries[0], "<< returning size 3"), target.LogBuf.LogEntries[0])
	assert.True(strings.Contains(target.LogBuf.LogEntries[0], "function=Validate"), target.LogBuf.LogEntries[0])

	// The failure rides along on the exit trace
	tree.root.color = RED
	assert.True(blunder.Is(tree.Validate(), blunder.CorruptTreeError))
	assert.Equal(4, target.LogBuf.TotalEntries)
	assert.True(strings.Contains(target.LogBuf.LogEntries[0], "root is RED"), target.LogBuf.LogEntries[0])
}
