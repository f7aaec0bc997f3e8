// Copyright (c) 2015-2021, NVIDIA CORPORATION.
// SPDX-License-Identifier: Apache-2.0

package rbtree

import (
	"github.com/NVIDIA/rbtree/blunder"
	"github.com/NVIDIA/rbtree/conf"
	"github.com/NVIDIA/rbtree/logger"
	"github.com/NVIDIA/rbtree/transitions"
)

type globalsStruct struct {
	maxNodes         uint64 // 0 means unlimited
	validateOnInsert bool
}

var globals globalsStruct

func init() {
	transitions.Register("rbtree", &globals)
}

func (dummy *globalsStruct) loadConf(confMap conf.ConfMap) (err error) {
	var (
		maxNodes         uint64
		validateOnInsert bool
	)

	// Both options are optional
	maxNodes, err = confMap.FetchOptionValueUint64("RBTree", "MaxNodes")
	if nil != err {
		if _, missingErr := confMap.FetchOptionValueStringSlice("RBTree", "MaxNodes"); nil == missingErr {
			err = blunder.AddError(err, blunder.BadConfigError)
			return
		}
		maxNodes = 0
	}

	validateOnInsert, err = confMap.FetchOptionValueBool("RBTree", "ValidateOnInsert")
	if nil != err {
		if _, missingErr := confMap.FetchOptionValueStringSlice("RBTree", "ValidateOnInsert"); nil == missingErr {
			err = blunder.AddError(err, blunder.BadConfigError)
			return
		}
		validateOnInsert = false
	}

	globals.maxNodes = maxNodes
	globals.validateOnInsert = validateOnInsert

	logger.Tracef("RBTree.MaxNodes=%v RBTree.ValidateOnInsert=%v", maxNodes, validateOnInsert)

	err = nil
	return
}

func (dummy *globalsStruct) Up(confMap conf.ConfMap) (err error) {
	return dummy.loadConf(confMap)
}

func (dummy *globalsStruct) Signaled(confMap conf.ConfMap) (err error) {
	return dummy.loadConf(confMap)
}

func (dummy *globalsStruct) Down(confMap conf.ConfMap) (err error) {
	globals.maxNodes = 0
	globals.validateOnInsert = false
	return nil
}
