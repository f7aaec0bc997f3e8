// Copyright (c) 2015-2021, NVIDIA CORPORATION.
// SPDX-License-Identifier: Apache-2.0

package rbtree

import (
	"testing"

	"github.com/NVIDIA/rbtree/conf"
	"github.com/NVIDIA/rbtree/transitions"
)

var testConfMap conf.ConfMap

func testSetup(t *testing.T, testConfUpdateStrings []string) {
	var (
		err                error
		testConfMapStrings []string
	)

	testConfMapStrings = []string{
		"Logging.LogFilePath=/dev/null",
		"Logging.LogToConsole=false",
		"Logging.TraceLevelLogging=rbtree",
		"Logging.DebugLevelLogging=rbtree",
		"RBTree.MaxNodes=0",
		"RBTree.ValidateOnInsert=false",
	}

	testConfMap, err = conf.MakeConfMapFromStrings(testConfMapStrings)
	if nil != err {
		t.Fatalf("conf.MakeConfMapFromStrings() failed: %v", err)
	}

	err = testConfMap.UpdateFromStrings(testConfUpdateStrings)
	if nil != err {
		t.Fatalf("testConfMap.UpdateFromStrings(testConfUpdateStrings) failed: %v", err)
	}

	err = transitions.Up(testConfMap)
	if nil != err {
		t.Fatalf("transitions.Up() failed: %v", err)
	}
}

func testTeardown(t *testing.T) {
	var (
		err error
	)

	err = transitions.Down(testConfMap)
	if nil != err {
		t.Fatalf("transitions.Down() failed: %v", err)
	}
}

func compareInt(value1 int, value2 int) (result int) {
	switch {
	case value1 < value2:
		return -1
	case value1 > value2:
		return 1
	default:
		return 0
	}
}

func compareIntPtr(value1 *int, value2 *int) (result int) {
	return compareInt(*value1, *value2)
}

func newIntTree(t *testing.T, values ...int) (tree *Tree[int]) {
	var (
		err error
		ok  bool
	)

	tree, err = New(compareInt, nil)
	if nil != err {
		t.Fatalf("New() failed: %v", err)
	}

	for _, value := range values {
		ok, err = tree.Insert(value)
		if nil != err {
			t.Fatalf("Insert(%v) failed: %v", value, err)
		}
		if !ok {
			t.Fatalf("Insert(%v) returned !ok", value)
		}
	}

	return
}

func collectInOrder[V any](t *testing.T, tree *Tree[V]) (values []V) {
	ok, err := tree.ForEach(func(value V, context interface{}) bool {
		values = append(values, value)
		return true
	}, nil)
	if nil != err {
		t.Fatalf("ForEach() failed: %v", err)
	}
	if !ok {
		t.Fatalf("ForEach() returned !ok")
	}
	return
}
