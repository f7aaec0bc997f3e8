// Copyright (c) 2015-2021, NVIDIA CORPORATION.
// SPDX-License-Identifier: Apache-2.0

package trackedlock

import (
	"runtime"
	"sync"
	"time"

	"github.com/NVIDIA/rbtree/bucketstats"
	"github.com/NVIDIA/rbtree/logger"
	"github.com/NVIDIA/rbtree/utils"
)

type statsStruct struct {
	Locks         bucketstats.Total
	LongHolds     bucketstats.Total   // holds reaching LockHoldTimeLimit
	HoldTimeUsecs bucketstats.Average // only measured while tracking
}

type globalsStruct struct {
	lockHoldTimeLimit time.Duration // locks held longer then this get logged
	stats             statsStruct
	statsRegistered   bool
}

var globals globalsStruct

// stackTraceBuf is the storage required to hold one stack trace. We keep a
// pool of them around.
type stackTraceBuf [4040]byte

type stackTraceObj struct {
	stackTrace    []byte        // stack trace of curent or last locker
	stackTraceBuf stackTraceBuf // storage for stack trace slice
}

var stackTraceObjPool = sync.Pool{
	New: func() interface{} {
		return &stackTraceObj{}
	},
}

type mutexTrack struct {
	lockTime   time.Time      // time last lock operation completed
	lockerGoId uint64         // goroutine ID of the last locker
	lockStack  *stackTraceObj // stack trace when object was last locked
}

func (mt *mutexTrack) lockTrack() {
	globals.stats.Locks.Increment()

	// if lock tracking is disabled, just record the current time
	if globals.lockHoldTimeLimit == 0 {
		mt.lockTime = time.Now()
		return
	}

	mt.lockStack = stackTraceObjPool.Get().(*stackTraceObj)
	mt.lockStack.stackTrace = mt.lockStack.stackTraceBuf[:]

	cnt := runtime.Stack(mt.lockStack.stackTrace, false)
	mt.lockStack.stackTrace = mt.lockStack.stackTrace[0:cnt]
	mt.lockerGoId = utils.GetGID()
	mt.lockTime = time.Now()
}

func (mt *mutexTrack) unlockTrack(wrappedLock interface{}) {
	if globals.lockHoldTimeLimit != 0 {
		now := time.Now()
		held := now.Sub(mt.lockTime)

		globals.stats.HoldTimeUsecs.Add(uint64(held / time.Microsecond))

		if held >= globals.lockHoldTimeLimit {
			globals.stats.LongHolds.Increment()

			var buf stackTraceBuf
			unlockStackTrace := buf[:]
			cnt := runtime.Stack(unlockStackTrace, false)
			unlockStr := string(unlockStackTrace[0:cnt])

			// mt.lockTime is recorded even when not tracking, so mt.lockStack may be absent
			lockStr := "goroutine 9999 [unknown]\nlocked before lock tracking enabled\n"
			if mt.lockStack != nil {
				lockStr = string(mt.lockStack.stackTrace)
			}
			logger.Warnf("Unlock(): %T at %p locked by goroutine %d for %f sec; stack at call to Lock():\n%s stack at Unlock():\n%s",
				wrappedLock, wrappedLock, mt.lockerGoId,
				float64(held)/float64(time.Second), lockStr, unlockStr)
		}
	}

	if mt.lockStack != nil {
		stackTraceObjPool.Put(mt.lockStack)
		mt.lockStack = nil
	}
}
