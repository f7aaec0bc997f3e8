// Copyright (c) 2015-2021, NVIDIA CORPORATION.
// SPDX-License-Identifier: Apache-2.0

// Package trackedlock provides a sync.Mutex that tracks how long it is held.
//
// An rbtree.Tree performs no locking of its own, so a tree shared between
// goroutines must be guarded by a single lock covering every operation. A
// trackedlock.Mutex serves that purpose while also reporting holds exceeding
// "TrackedLock.LockHoldTimeLimit": when such a lock is unlocked a warning is
// logged along with the stack traces of the Lock() and Unlock() calls.
//
// A LockHoldTimeLimit of 0 (the default) disables tracking, reducing the
// overhead to recording the lock time. Locks may be used before Up() is called
// but are not tracked until locked after it.
package trackedlock

import (
	"sync"
)

// Mutex wraps sync.Mutex adding tracking of lock hold time and locker stack.
type Mutex struct {
	wrappedMutex sync.Mutex // the actual Mutex
	tracker      mutexTrack // tracking information for the Mutex
}

func (m *Mutex) Lock() {
	m.wrappedMutex.Lock()

	m.tracker.lockTrack()
}

func (m *Mutex) Unlock() {
	m.tracker.unlockTrack(m)

	m.wrappedMutex.Unlock()
}
