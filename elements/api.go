// Copyright (c) 2015-2021, NVIDIA CORPORATION.
// SPDX-License-Identifier: Apache-2.0

// Package elements provides value types ready to be stored in an rbtree.Tree
// along with the CompareFunc, DestroyFunc, and VisitFunc each needs.
//
// Aggregates over a tree (the longest vector, the concatenation of all words)
// are computed solely via rbtree.Tree.ForEach().
package elements

import (
	"github.com/NVIDIA/rbtree/rbtree"
)

// NewVectorTree returns an empty tree of vectors ordered by CompareVectors.
func NewVectorTree() (tree *rbtree.Tree[*Vector], err error) {
	return rbtree.New(CompareVectors, DestroyVector)
}

// NewWordTree returns an empty tree of words ordered by CompareWords.
func NewWordTree() (tree *rbtree.Tree[string], err error) {
	return rbtree.New(CompareWords, nil)
}
