// Copyright (c) 2015-2021, NVIDIA CORPORATION.
// SPDX-License-Identifier: Apache-2.0

package transitions

import (
	"github.com/NVIDIA/rbtree/conf"
)

// Callbacks is the interface implemented by each package desiring notification of
// configuration changes. Each such package should implement a struct with pointer
// receivers for each API listed below even when there is no interest in being
// notified of a particular condition.
//
// By calling transitions.Register() in the package's init() func, the proper order
// of registration will be ensured. Up() and Signaled() are issued in the same order
// as package init() func calls have registered; Down() is issued in the reverse order.
//
type Callbacks interface {
	Up(confMap conf.ConfMap) (err error)
	Signaled(confMap conf.ConfMap) (err error)
	Down(confMap conf.ConfMap) (err error)
}

// Register should be called from a package's init() func should the package be interested
// in one or more of the callbacks that they will receive. Each callback func should receive
// a struct implementing the Callbacks interface by reference.
//
// As an example, consider the following:
//
//   package foo
//
//   import "github.com/NVIDIA/rbtree/conf"
//   import "github.com/NVIDIA/rbtree/transitions"
//
//   type transitionsCallbackInterfaceStruct struct {
//   }
//
//   var transitionsCallbackInterface transitionsCallbackInterfaceStruct
//
//   func init() {
//       transitions.Register("foo", &transitionsCallbackInterface)
//   }
//
//   func (transitionsCallbackInterface *transitionsCallbackInterfaceStruct) Up(confMap conf.ConfMap) (err error) {
//       // Perform start-up initialization derived from confMap
//       // ...set err at some point
//       return
//   }
//
// Package logger is always registered first (by this package's own init()).
//
func Register(packageName string, callbacks Callbacks) {
	register(packageName, callbacks)
}

// Up should be called at startup by the main() (or test) of the program
// after all registrations have been made.
func Up(confMap conf.ConfMap) (err error) {
	return up(confMap)
}

// Signaled should be called whenever confMap has been updated (e.g. on SIGHUP).
func Signaled(confMap conf.ConfMap) (err error) {
	return signaled(confMap)
}

// Down should be called just before exiting. Callbacks are issued in reverse
// registration order.
func Down(confMap conf.ConfMap) (err error) {
	return down(confMap)
}

