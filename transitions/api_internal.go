// Copyright (c) 2015-2021, NVIDIA CORPORATION.
// SPDX-License-Identifier: Apache-2.0

package transitions

import (
	"container/list"
	"fmt"
	"sync"

	"github.com/NVIDIA/rbtree/conf"
	"github.com/NVIDIA/rbtree/logger"
)

type loggerCallbacksInterfaceStruct struct {
}

var loggerCallbacksInterface loggerCallbacksInterfaceStruct

type registrationItemStruct struct {
	packageName string
	callbacks   Callbacks
}

type globalsStruct struct {
	sync.Mutex                                         // Protects registration{List|Set} and isUp
	registrationList *list.List                        // Elements are *registrationItemStruct
	registrationSet  map[string]*registrationItemStruct // Key: registrationItemStruct.packageName
	isUp             bool
}

var globals globalsStruct

func init() {
	globals.Lock()
	globals.registrationList = list.New()
	globals.registrationSet = make(map[string]*registrationItemStruct)
	globals.Unlock()

	Register("logger", &loggerCallbacksInterface)
}

func register(packageName string, callbacks Callbacks) {
	var (
		alreadyRegistered bool
		registrationItem  *registrationItemStruct
	)

	globals.Lock()
	defer globals.Unlock()

	_, alreadyRegistered = globals.registrationSet[packageName]
	if alreadyRegistered {
		logger.Fatalf("transitions.Register(%s,) called twice", packageName)
	}
	registrationItem = &registrationItemStruct{packageName, callbacks}
	_ = globals.registrationList.PushBack(registrationItem)
	globals.registrationSet[packageName] = registrationItem
}

func up(confMap conf.ConfMap) (err error) {
	var (
		registrationItem        *registrationItemStruct
		registrationListElement *list.Element
	)

	globals.Lock()
	defer globals.Unlock()

	defer func() {
		if nil == err {
			logger.Infof("transitions.Up() returning successfully")
		} else {
			// On the relatively good likelihood that at least logger.Up() worked...
			logger.Errorf("transitions.Up() returning with failure: %v", err)
		}
	}()

	if globals.isUp {
		err = fmt.Errorf("transitions.Up() called while already up")
		return
	}

	// Issue Callbacks.Up() calls from Front() to Back() of globals.registrationList

	registrationListElement = globals.registrationList.Front()

	for nil != registrationListElement {
		registrationItem = registrationListElement.Value.(*registrationItemStruct)
		logger.Tracef("transitions.Up() calling %s.Up()", registrationItem.packageName)
		err = registrationItem.callbacks.Up(confMap)
		if nil != err {
			logger.Errorf("transitions.Up() call to %s.Up() failed: %v", registrationItem.packageName, err)
			err = fmt.Errorf("%s.Up() failed: %v", registrationItem.packageName, err)
			unwindUp(confMap, registrationListElement.Prev())
			return
		}
		registrationListElement = registrationListElement.Next()
	}

	globals.isUp = true

	return
}

// unwindUp issues Down() to every package (from registrationListElement back
// to Front()) whose Up() already succeeded.
func unwindUp(confMap conf.ConfMap, registrationListElement *list.Element) {
	for nil != registrationListElement {
		registrationItem := registrationListElement.Value.(*registrationItemStruct)
		downErr := registrationItem.callbacks.Down(confMap)
		if nil != downErr {
			logger.Warnf("transitions.Up() unwind call to %s.Down() failed: %v", registrationItem.packageName, downErr)
		}
		registrationListElement = registrationListElement.Prev()
	}
}

func signaled(confMap conf.ConfMap) (err error) {
	var (
		registrationItem        *registrationItemStruct
		registrationListElement *list.Element
	)

	globals.Lock()
	defer globals.Unlock()

	if !globals.isUp {
		err = fmt.Errorf("transitions.Signaled() called while not up")
		return
	}

	registrationListElement = globals.registrationList.Front()

	for nil != registrationListElement {
		registrationItem = registrationListElement.Value.(*registrationItemStruct)
		logger.Tracef("transitions.Signaled() calling %s.Signaled()", registrationItem.packageName)
		err = registrationItem.callbacks.Signaled(confMap)
		if nil != err {
			logger.Errorf("transitions.Signaled() call to %s.Signaled() failed: %v", registrationItem.packageName, err)
			err = fmt.Errorf("%s.Signaled() failed: %v", registrationItem.packageName, err)
			return
		}
		registrationListElement = registrationListElement.Next()
	}

	return
}

func down(confMap conf.ConfMap) (err error) {
	var (
		registrationItem        *registrationItemStruct
		registrationListElement *list.Element
	)

	globals.Lock()
	defer globals.Unlock()

	if !globals.isUp {
		err = fmt.Errorf("transitions.Down() called while not up")
		return
	}

	// Issue Callbacks.Down() calls from Back() to Front() of globals.registrationList

	registrationListElement = globals.registrationList.Back()

	for nil != registrationListElement {
		registrationItem = registrationListElement.Value.(*registrationItemStruct)
		logger.Tracef("transitions.Down() calling %s.Down()", registrationItem.packageName)
		err = registrationItem.callbacks.Down(confMap)
		if nil != err {
			// logger may already be down, so just report upward
			err = fmt.Errorf("%s.Down() failed: %v", registrationItem.packageName, err)
			return
		}
		registrationListElement = registrationListElement.Prev()
	}

	globals.isUp = false

	return
}

func (loggerCallbacksInterface *loggerCallbacksInterfaceStruct) Up(confMap conf.ConfMap) (err error) {
	return logger.Up(confMap)
}

func (loggerCallbacksInterface *loggerCallbacksInterfaceStruct) Signaled(confMap conf.ConfMap) (err error) {
	return logger.Signaled(confMap)
}

func (loggerCallbacksInterface *loggerCallbacksInterfaceStruct) Down(confMap conf.ConfMap) (err error) {
	return logger.Down()
}
