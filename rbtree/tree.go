// Copyright (c) 2015-2021, NVIDIA CORPORATION.
// SPDX-License-Identifier: Apache-2.0

package rbtree

import (
	"reflect"

	"github.com/NVIDIA/rbtree/blunder"
	"github.com/NVIDIA/rbtree/logger"
)

func newTree[V any](compare CompareFunc[V], destroy DestroyFunc[V]) (tree *Tree[V], err error) {
	if nil == compare {
		err = blunder.NewError(blunder.NilCallbackError, "New() requires a non-nil CompareFunc")
		return
	}

	tree = &Tree[V]{
		root:    nil,
		compare: compare,
		destroy: destroy,
		size:    0,
	}

	err = nil
	return
}

// isAbsent reports whether value is the "no value" of its type: a nil pointer,
// interface, map, slice, func, or chan. An interface holding any of those as
// a nil is absent too. Other kinds are always present.
func isAbsent[V any](value V) bool {
	v := reflect.ValueOf(&value).Elem()

	if reflect.Interface == v.Kind() {
		if v.IsNil() {
			return true
		}
		v = v.Elem()
	}

	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return v.IsNil()
	default:
		return false
	}
}

// usable verifies tree may be operated on by the method named fnName
func (tree *Tree[V]) usable(fnName string) (err error) {
	if nil == tree {
		err = blunder.NewError(blunder.NilTreeError, "%s() called on nil tree", fnName)
		return
	}
	if tree.destroyed {
		err = blunder.NewError(blunder.DestroyedError, "%s() called on destroyed tree", fnName)
		return
	}
	err = nil
	return
}

func (tree *Tree[V]) insert(value V) (ok bool, err error) {
	var (
		curr   *nodeStruct[V]
		depth  uint64
		node   *nodeStruct[V]
		parent *nodeStruct[V]
		result int
	)

	err = tree.usable("Insert")
	if nil != err {
		return
	}

	if isAbsent(value) {
		tree.stats.InvalidRejects.Increment()
		err = blunder.NewError(blunder.NilValueError, "Insert() called with absent value")
		logger.TracefWithError(err, "Insert() rejected %T value", value)
		return
	}

	// Single descent locating either an equal value or the attachment point

	curr = tree.root
	parent = nil

	for nil != curr {
		result = tree.compare(curr.value, value)
		if 0 == result {
			tree.stats.DuplicateRejects.Increment()
			ok = false
			err = nil
			return
		}
		parent = curr
		depth++
		if 0 < result {
			curr = curr.left
		} else {
			curr = curr.right
		}
	}

	// Nothing has been modified yet so a refused allocation leaves the tree intact

	if (0 != globals.maxNodes) && (uint64(tree.size) >= globals.maxNodes) {
		tree.stats.BudgetRejects.Increment()
		err = blunder.NewError(blunder.NodeBudgetError, "Insert() would exceed RBTree.MaxNodes (%v)", globals.maxNodes)
		logger.WarnfWithError(err, "tree holding %v values refused %v", tree.size, value)
		return
	}

	node = newNode(value)

	if nil == parent {
		node.color = BLACK
		tree.root = node
	} else {
		node.parent = parent
		if 0 < result {
			parent.left = node
		} else {
			parent.right = node
		}
		tree.fixupAfterInsert(node)
	}

	tree.size++

	tree.stats.Inserts.Increment()
	tree.stats.InsertDepth.Add(depth)

	if globals.validateOnInsert {
		err = tree.validate()
		if nil != err {
			logger.ErrorfWithError(err, "tree invalid after insert")
			ok = true // value is in the tree regardless
			return
		}
	}

	ok = true
	err = nil
	return
}

func (tree *Tree[V]) contains(value V) (found bool) {
	var (
		curr   *nodeStruct[V]
		result int
	)

	if (nil == tree) || tree.destroyed || isAbsent(value) {
		return false
	}

	tree.stats.Lookups.Increment()

	curr = tree.root

	for nil != curr {
		result = tree.compare(curr.value, value)
		if 0 == result {
			return true
		}
		if 0 < result {
			curr = curr.left
		} else {
			curr = curr.right
		}
	}

	return false
}

func (tree *Tree[V]) forEach(visit VisitFunc[V], context interface{}) (ok bool, err error) {
	err = tree.usable("ForEach")
	if nil != err {
		return
	}
	if nil == visit {
		err = blunder.NewError(blunder.NilCallbackError, "ForEach() requires a non-nil VisitFunc")
		return
	}
	if nil == tree.root {
		err = blunder.NewError(blunder.EmptyTreeError, "ForEach() called on empty tree")
		return
	}

	ok = tree.forEachRecursive(tree.root, visit, context)
	err = nil
	return
}

func (tree *Tree[V]) forEachRecursive(node *nodeStruct[V], visit VisitFunc[V], context interface{}) (ok bool) {
	if nil == node {
		return true
	}

	if !tree.forEachRecursive(node.left, visit, context) {
		return false
	}

	tree.stats.Visits.Increment()
	if !visit(node.value, context) {
		return false
	}

	return tree.forEachRecursive(node.right, visit, context)
}

func (tree *Tree[V]) destroyAll() (err error) {
	err = tree.usable("Destroy")
	if nil != err {
		return
	}

	logger.Tracef("destroying tree of %v values", tree.size)

	tree.destroyRecursive(tree.root)

	tree.root = nil
	tree.size = 0
	tree.destroyed = true

	tree.unregisterStats()

	err = nil
	return
}

// destroyRecursive releases node's subtree children first
func (tree *Tree[V]) destroyRecursive(node *nodeStruct[V]) {
	if nil == node {
		return
	}

	tree.destroyRecursive(node.left)
	tree.destroyRecursive(node.right)

	if nil != tree.destroy {
		tree.stats.DestroyCalls.Increment()
		tree.destroy(node.value)
	}

	node.left = nil
	node.right = nil
	node.parent = nil
}
