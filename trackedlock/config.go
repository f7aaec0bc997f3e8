// Copyright (c) 2015-2021, NVIDIA CORPORATION.
// SPDX-License-Identifier: Apache-2.0

package trackedlock

import (
	"time"

	"github.com/NVIDIA/rbtree/bucketstats"
	"github.com/NVIDIA/rbtree/conf"
	"github.com/NVIDIA/rbtree/logger"
	"github.com/NVIDIA/rbtree/transitions"
)

func parseConfMap(confMap conf.ConfMap) (err error) {
	globals.lockHoldTimeLimit, err = confMap.FetchOptionValueDuration("TrackedLock", "LockHoldTimeLimit")
	if err != nil {
		logger.Tracef("config variable 'TrackedLock.LockHoldTimeLimit' defaulting to '0s': %v", err)
		globals.lockHoldTimeLimit = time.Duration(0)
	}

	err = nil
	return
}

// Register trackedlock package with transitions so that transitions can call
// Up()/Signaled()/Down() at the appropriate times.
func init() {
	transitions.Register("trackedlock", &globals)
}

func (dummy *globalsStruct) Up(confMap conf.ConfMap) (err error) {
	err = parseConfMap(confMap)
	if err != nil {
		return
	}

	logger.Infof("trackedlock.Up(): LockHoldTimeLimit %v", globals.lockHoldTimeLimit)

	if !globals.statsRegistered {
		bucketstats.Register("trackedlock", "global", &globals.stats)
		globals.statsRegistered = true
	}

	return
}

func (dummy *globalsStruct) Signaled(confMap conf.ConfMap) (err error) {
	oldTimeLimit := globals.lockHoldTimeLimit

	err = parseConfMap(confMap)
	if err != nil {
		return
	}

	if globals.lockHoldTimeLimit != oldTimeLimit {
		logger.Infof("trackedlock lock hold time limit changing from %v to %v", oldTimeLimit, globals.lockHoldTimeLimit)
	}

	return
}

func (dummy *globalsStruct) Down(confMap conf.ConfMap) (err error) {
	logger.Infof("trackedlock.Down() called")

	globals.lockHoldTimeLimit = 0

	if globals.statsRegistered {
		bucketstats.UnRegister("trackedlock", "global")
		globals.statsRegistered = false
	}

	// err is already nil
	return
}
