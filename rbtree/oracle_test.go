// Copyright (c) 2015-2021, NVIDIA CORPORATION.
// SPDX-License-Identifier: Apache-2.0

package rbtree

import (
	"math/rand"
	"testing"

	"github.com/NVIDIA/sortedmap"
	"github.com/google/btree"
)

const (
	testOracleSeed       = int64(0x5EED)
	testOracleRounds     = 20
	testOracleInsertions = 2000
	testOracleKeySpace   = 1500 // smaller than testOracleInsertions to force duplicates
)

// TestAgainstLLRBTree drives a Tree and a sortedmap.LLRBTree with the same
// random insertions (duplicates included) comparing acceptance, membership,
// and in-order contents.
func TestAgainstLLRBTree(t *testing.T) {
	var (
		err      error
		llrbOK   bool
		llrbTree sortedmap.LLRBTree
		ok       bool
		prng     *rand.Rand
		tree     *Tree[int]
	)

	prng = rand.New(rand.NewSource(testOracleSeed))

	for round := 0; round < testOracleRounds; round++ {
		tree = newIntTree(t)
		llrbTree = sortedmap.NewLLRBTree(sortedmap.CompareInt, nil)

		for i := 0; i < testOracleInsertions; i++ {
			value := prng.Intn(testOracleKeySpace)

			ok, err = tree.Insert(value)
			if nil != err {
				t.Fatalf("Insert(%v) failed: %v", value, err)
			}
			llrbOK, err = llrbTree.Put(value, struct{}{})
			if nil != err {
				t.Fatalf("llrbTree.Put(%v,) failed: %v", value, err)
			}
			if ok != llrbOK {
				t.Fatalf("round %v: Insert(%v) returned %v but llrbTree.Put() returned %v", round, value, ok, llrbOK)
			}
		}

		err = tree.Validate()
		if nil != err {
			t.Fatalf("round %v: Validate() failed: %v", round, err)
		}

		llrbLen, err := llrbTree.Len()
		if nil != err {
			t.Fatalf("llrbTree.Len() failed: %v", err)
		}
		if llrbLen != tree.Len() {
			t.Fatalf("round %v: Len() == %v but llrbTree.Len() == %v", round, tree.Len(), llrbLen)
		}

		inOrder := collectInOrder(t, tree)
		for index, value := range inOrder {
			llrbKey, _, llrbOK, err := llrbTree.GetByIndex(index)
			if nil != err || !llrbOK {
				t.Fatalf("llrbTree.GetByIndex(%v) failed: ok == %v err == %v", index, llrbOK, err)
			}
			if llrbKey.(int) != value {
				t.Fatalf("round %v: index %v holds %v but llrbTree holds %v", round, index, value, llrbKey)
			}
		}

		for key := -1; key <= testOracleKeySpace; key++ {
			_, llrbOK, err = llrbTree.GetByKey(key)
			if nil != err {
				t.Fatalf("llrbTree.GetByKey(%v) failed: %v", key, err)
			}
			if tree.Contains(key) != llrbOK {
				t.Fatalf("round %v: Contains(%v) disagrees with llrbTree", round, key)
			}
		}
	}
}

// TestAgainstBTree compares against github.com/google/btree while also
// checking the O(log n) height bound implied by the black-height.
func TestAgainstBTree(t *testing.T) {
	var (
		bTree *btree.BTree
		prng  *rand.Rand
		tree  *Tree[int]
	)

	prng = rand.New(rand.NewSource(testOracleSeed + 1))

	for round := 0; round < testOracleRounds; round++ {
		tree = newIntTree(t)
		bTree = btree.New(2)

		for i := 0; i < testOracleInsertions; i++ {
			value := prng.Intn(testOracleKeySpace)

			wasPresent := bTree.Has(btree.Int(value))
			_ = bTree.ReplaceOrInsert(btree.Int(value))

			ok, err := tree.Insert(value)
			if nil != err {
				t.Fatalf("Insert(%v) failed: %v", value, err)
			}
			if ok == wasPresent {
				t.Fatalf("round %v: Insert(%v) returned %v with bTree.Has() == %v", round, value, ok, wasPresent)
			}
		}

		if bTree.Len() != tree.Len() {
			t.Fatalf("round %v: Len() == %v but bTree.Len() == %v", round, tree.Len(), bTree.Len())
		}

		var expected []int
		bTree.Ascend(func(item btree.Item) bool {
			expected = append(expected, int(item.(btree.Int)))
			return true
		})

		inOrder := collectInOrder(t, tree)
		if len(expected) != len(inOrder) {
			t.Fatalf("round %v: ForEach() visited %v values, bTree holds %v", round, len(inOrder), len(expected))
		}
		for index := range expected {
			if expected[index] != inOrder[index] {
				t.Fatalf("round %v: index %v holds %v but bTree holds %v", round, index, inOrder[index], expected[index])
			}
		}

		blackHeight, err := tree.BlackHeight()
		if nil != err {
			t.Fatalf("BlackHeight() failed: %v", err)
		}
		if (1 << uint(blackHeight)) > (tree.Len() + 1) {
			t.Fatalf("round %v: black-height %v too large for %v values", round, blackHeight, tree.Len())
		}
		if height := testHeight(tree.root); height > 2*blackHeight {
			t.Fatalf("round %v: height %v exceeds twice the black-height %v", round, height, blackHeight)
		}
	}
}

func TestAscendingAndDescendingInsertion(t *testing.T) {
	const N = 4096

	ascending := newIntTree(t)
	descending := newIntTree(t)

	for i := 0; i < N; i++ {
		_, _ = ascending.Insert(i)
		_, _ = descending.Insert(N - 1 - i)
	}

	for _, tree := range []*Tree[int]{ascending, descending} {
		err := tree.Validate()
		if nil != err {
			t.Fatalf("Validate() failed: %v", err)
		}
		blackHeight, _ := tree.BlackHeight()
		if height := testHeight(tree.root); height > 2*blackHeight {
			t.Fatalf("height %v exceeds twice the black-height %v", height, blackHeight)
		}
		if N != len(collectInOrder(t, tree)) {
			t.Fatalf("ForEach() did not visit all %v values", N)
		}
	}
}

func testHeight[V any](node *nodeStruct[V]) int {
	if nil == node {
		return 0
	}
	leftHeight := testHeight(node.left)
	rightHeight := testHeight(node.right)
	if leftHeight > rightHeight {
		return leftHeight + 1
	}
	return rightHeight + 1
}
