// Copyright (c) 2015-2021, NVIDIA CORPORATION.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"

	"github.com/NVIDIA/sortedmap"
	"github.com/google/btree"

	"github.com/NVIDIA/rbtree/rbtree"
)

const bTreeDegree = 32

// container is the ordered set of uint64 values a workout drives. Callers
// serialize access to a container shared between goroutines.
type container interface {
	insert(value uint64) (ok bool, err error)
	contains(value uint64) (found bool, err error)
	walk(limit uint64) (visited uint64, err error)
	finish() (err error) // checks then releases the container
}

type rbtreeContainerStruct struct {
	tree *rbtree.Tree[uint64]
}

type llrbContainerStruct struct {
	tree sortedmap.LLRBTree
}

type bTreeContainerStruct struct {
	tree *btree.BTree
}

func compareUint64(value1 uint64, value2 uint64) (result int) {
	switch {
	case value1 < value2:
		return -1
	case value1 > value2:
		return 1
	default:
		return 0
	}
}

// newContainer returns an empty container of the selected kind. Only an
// rbtree.Tree reports bucketstats, under statsName.
func newContainer(kind byte, statsName string) (c container, err error) {
	switch kind {
	case 'r':
		rbtreeContainer := &rbtreeContainerStruct{}
		rbtreeContainer.tree, err = rbtree.New(compareUint64, nil)
		if nil != err {
			return
		}
		err = rbtreeContainer.tree.RegisterStats(statsName)
		if nil != err {
			return
		}
		c = rbtreeContainer
	case 'l':
		c = &llrbContainerStruct{tree: sortedmap.NewLLRBTree(sortedmap.CompareUint64, nil)}
	case 'b':
		c = &bTreeContainerStruct{tree: btree.New(bTreeDegree)}
	default:
		err = fmt.Errorf("unknown container kind '%c'", kind)
		return
	}

	err = nil
	return
}

func (rbtreeContainer *rbtreeContainerStruct) insert(value uint64) (ok bool, err error) {
	return rbtreeContainer.tree.Insert(value)
}

func (rbtreeContainer *rbtreeContainerStruct) contains(value uint64) (found bool, err error) {
	return rbtreeContainer.tree.Contains(value), nil
}

func (rbtreeContainer *rbtreeContainerStruct) walk(limit uint64) (visited uint64, err error) {
	_, err = rbtreeContainer.tree.ForEach(func(value uint64, context interface{}) bool {
		*context.(*uint64)++
		return *context.(*uint64) < limit
	}, &visited)
	return
}

func (rbtreeContainer *rbtreeContainerStruct) finish() (err error) {
	err = rbtreeContainer.tree.Validate()
	if nil != err {
		return
	}
	err = rbtreeContainer.tree.Destroy()
	return
}

func (llrbContainer *llrbContainerStruct) insert(value uint64) (ok bool, err error) {
	return llrbContainer.tree.Put(value, value)
}

func (llrbContainer *llrbContainerStruct) contains(value uint64) (found bool, err error) {
	_, found, err = llrbContainer.tree.GetByKey(value)
	return
}

func (llrbContainer *llrbContainerStruct) walk(limit uint64) (visited uint64, err error) {
	var (
		numberOfItems int
		ok            bool
	)

	numberOfItems, err = llrbContainer.tree.Len()
	if nil != err {
		return
	}

	for index := 0; (index < numberOfItems) && (visited < limit); index++ {
		_, _, ok, err = llrbContainer.tree.GetByIndex(index)
		if nil != err {
			return
		}
		if !ok {
			err = fmt.Errorf("llrbContainer.tree.GetByIndex(%v) found nothing", index)
			return
		}
		visited++
	}

	return
}

func (llrbContainer *llrbContainerStruct) finish() (err error) {
	return llrbContainer.tree.Validate()
}

func (bTreeContainer *bTreeContainerStruct) insert(value uint64) (ok bool, err error) {
	ok = (nil == bTreeContainer.tree.ReplaceOrInsert(btree.Int(value)))
	return
}

func (bTreeContainer *bTreeContainerStruct) contains(value uint64) (found bool, err error) {
	return bTreeContainer.tree.Has(btree.Int(value)), nil
}

func (bTreeContainer *bTreeContainerStruct) walk(limit uint64) (visited uint64, err error) {
	bTreeContainer.tree.Ascend(func(item btree.Item) bool {
		visited++
		return visited < limit
	})
	return
}

func (bTreeContainer *bTreeContainerStruct) finish() (err error) {
	bTreeContainer.tree.Clear(false)
	return
}
