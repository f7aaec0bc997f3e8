// Copyright (c) 2015-2021, NVIDIA CORPORATION.
// SPDX-License-Identifier: Apache-2.0

// Program rbtreeworkout measures rbtree.Tree insert, lookup, and walk rates
// from a configurable number of goroutines. The same workout may be run
// against a sortedmap.LLRBTree or a google/btree BTree as a baseline.
package main

import (
	"fmt"
	"math/rand"
	"os"
	"runtime"
	"strconv"
	"time"

	"github.com/NVIDIA/rbtree/blunder"
	"github.com/NVIDIA/rbtree/bucketstats"
	"github.com/NVIDIA/rbtree/conf"
	"github.com/NVIDIA/rbtree/trackedlock"
	"github.com/NVIDIA/rbtree/transitions"
)

var (
	commonTree      container
	commonTreeMutex trackedlock.Mutex
	containerKind   byte
	doNextStepChan  chan bool
	measureContains bool
	measureInsert   bool
	measureWalk     bool
	perThreadTree   bool
	stepErrChan     chan error
	threads         uint64
	valuesPerThread uint64
)

func usage(file *os.File) {
	fmt.Fprintf(file, "Usage:\n")
	fmt.Fprintf(file, "    %v [iIcCwW] [rlb] threads values-per-thread conf-file [section.option=value]*\n", os.Args[0])
	fmt.Fprintf(file, "  where:\n")
	fmt.Fprintf(file, "    i                       run insert   test in common     tree\n")
	fmt.Fprintf(file, "    I                       run insert   test in per thread tree\n")
	fmt.Fprintf(file, "    c                       run contains test in common     tree\n")
	fmt.Fprintf(file, "    C                       run contains test in per thread tree\n")
	fmt.Fprintf(file, "    w                       run walk     test in common     tree\n")
	fmt.Fprintf(file, "    W                       run walk     test in per thread tree\n")
	fmt.Fprintf(file, "    r                       tree is an rbtree.Tree\n")
	fmt.Fprintf(file, "    l                       tree is a  sortedmap.LLRBTree\n")
	fmt.Fprintf(file, "    b                       tree is a  btree.BTree\n")
	fmt.Fprintf(file, "    threads                 number of threads\n")
	fmt.Fprintf(file, "    values-per-thread       number of values each thread will reference\n")
	fmt.Fprintf(file, "    conf-file               input to conf.MakeConfMapFromFile()\n")
	fmt.Fprintf(file, "    [section.option=value]* optional input to conf.UpdateFromStrings()\n")
	fmt.Fprintf(file, "\n")
	fmt.Fprintf(file, "Note: Precisely one test selector and one tree selector must be specified\n")
	fmt.Fprintf(file, "      The common tree is shared by all threads serialized by a single trackedlock.Mutex\n")
}

func main() {
	var (
		confMap                      conf.ConfMap
		durationOfMeasuredOperations time.Duration
		err                          error
		latencyPerOpInMicroSeconds   float64
		opsPerSecond                 float64
		timeAfterMeasuredOperations  time.Time
		timeBeforeMeasuredOperations time.Time
	)

	// Parse arguments

	if 6 > len(os.Args) {
		usage(os.Stderr)
		os.Exit(1)
	}

	switch os.Args[1] {
	case "i":
		measureInsert = true
	case "I":
		measureInsert = true
		perThreadTree = true
	case "c":
		measureContains = true
	case "C":
		measureContains = true
		perThreadTree = true
	case "w":
		measureWalk = true
	case "W":
		measureWalk = true
		perThreadTree = true
	default:
		fmt.Fprintf(os.Stderr, "os.Args[1] ('%v') must be one of 'i', 'I', 'c', 'C', 'w', or 'W'\n", os.Args[1])
		os.Exit(1)
	}

	switch os.Args[2] {
	case "r", "l", "b":
		containerKind = os.Args[2][0]
	default:
		fmt.Fprintf(os.Stderr, "os.Args[2] ('%v') must be one of 'r', 'l', or 'b'\n", os.Args[2])
		os.Exit(1)
	}

	threads, err = strconv.ParseUint(os.Args[3], 10, 64)
	if nil != err {
		fmt.Fprintf(os.Stderr, "strconv.ParseUint(\"%v\", 10, 64) of threads failed: %v\n", os.Args[3], err)
		os.Exit(1)
	}
	if 0 == threads {
		fmt.Fprintf(os.Stderr, "threads must be a positive number\n")
		os.Exit(1)
	}

	valuesPerThread, err = strconv.ParseUint(os.Args[4], 10, 64)
	if nil != err {
		fmt.Fprintf(os.Stderr, "strconv.ParseUint(\"%v\", 10, 64) of values-per-thread failed: %v\n", os.Args[4], err)
		os.Exit(1)
	}
	if 0 == valuesPerThread {
		fmt.Fprintf(os.Stderr, "values-per-thread must be a positive number\n")
		os.Exit(1)
	}

	confMap, err = conf.MakeConfMapFromFile(os.Args[5])
	if nil != err {
		fmt.Fprintf(os.Stderr, "conf.MakeConfMapFromFile(\"%v\") failed: %v\n", os.Args[5], err)
		os.Exit(1)
	}

	if 6 < len(os.Args) {
		err = confMap.UpdateFromStrings(os.Args[6:])
		if nil != err {
			fmt.Fprintf(os.Stderr, "confMap.UpdateFromStrings(%#v) failed: %v\n", os.Args[6:], err)
			os.Exit(1)
		}
	}

	// Start up needed components

	err = transitions.Up(confMap)
	if nil != err {
		fmt.Fprintf(os.Stderr, "transitions.Up() failed: %v\n", err)
		os.Exit(1)
	}

	if !perThreadTree {
		commonTree, err = newContainer(containerKind, "common")
		if nil != err {
			fmt.Fprintf(os.Stderr, "newContainer() failed: %v\n", blunder.Details(err))
			os.Exit(1)
		}
	}

	// Perform tests

	stepErrChan = make(chan error, 0)
	doNextStepChan = make(chan bool, 0)

	// Do initialization step
	for threadIndex := uint64(0); threadIndex < threads; threadIndex++ {
		go rbtreeWorkout(threadIndex)
	}
	for threadIndex := uint64(0); threadIndex < threads; threadIndex++ {
		err = <-stepErrChan
		if nil != err {
			fmt.Fprintf(os.Stderr, "rbtreeWorkout() initialization step returned: %v\n", blunder.Details(err))
			os.Exit(1)
		}
	}

	// Do measured operations step
	timeBeforeMeasuredOperations = time.Now()
	for threadIndex := uint64(0); threadIndex < threads; threadIndex++ {
		doNextStepChan <- true
	}
	for threadIndex := uint64(0); threadIndex < threads; threadIndex++ {
		err = <-stepErrChan
		if nil != err {
			fmt.Fprintf(os.Stderr, "rbtreeWorkout() measured operations step returned: %v\n", blunder.Details(err))
			os.Exit(1)
		}
	}
	timeAfterMeasuredOperations = time.Now()

	// Report stats while every tree is still registered
	if 'r' == containerKind {
		fmt.Print(bucketstats.SprintStats(bucketstats.StatFormatParsable1, "rbtree", "*"))
	}
	if !perThreadTree {
		fmt.Print(bucketstats.SprintStats(bucketstats.StatFormatParsable1, "trackedlock", "*"))
	}

	// Do shutdown step
	for threadIndex := uint64(0); threadIndex < threads; threadIndex++ {
		doNextStepChan <- true
	}
	for threadIndex := uint64(0); threadIndex < threads; threadIndex++ {
		err = <-stepErrChan
		if nil != err {
			fmt.Fprintf(os.Stderr, "rbtreeWorkout() shutdown step returned: %v\n", blunder.Details(err))
			os.Exit(1)
		}
	}

	if !perThreadTree {
		err = commonTree.finish()
		if nil != err {
			fmt.Fprintf(os.Stderr, "commonTree.finish() failed: %v\n", blunder.Details(err))
			os.Exit(1)
		}
	}

	// Stop components launched above

	err = transitions.Down(confMap)
	if nil != err {
		fmt.Fprintf(os.Stderr, "transitions.Down() failed: %v\n", err)
		os.Exit(1)
	}

	// Report results

	durationOfMeasuredOperations = timeAfterMeasuredOperations.Sub(timeBeforeMeasuredOperations)

	opsPerSecond = float64(threads*valuesPerThread*1000*1000*1000) / float64(durationOfMeasuredOperations.Nanoseconds())
	latencyPerOpInMicroSeconds = float64(durationOfMeasuredOperations.Nanoseconds()) / float64(valuesPerThread*1000)

	fmt.Printf("opsPerSecond = %10.2f\n", opsPerSecond)
	fmt.Printf("latencyPerOp = %10.2f us\n", latencyPerOpInMicroSeconds)
}

func rbtreeWorkout(threadIndex uint64) {
	var (
		err     error
		i       uint64
		ok      bool
		tree    container
		values  []uint64
		visited uint64
	)

	// Do initialization step
	if perThreadTree {
		tree, err = newContainer(containerKind, fmt.Sprintf("thread_%016X", threadIndex))
		if nil != err {
			stepErrChan <- err
			runtime.Goexit()
		}
	} else {
		tree = commonTree
	}

	// Distinct across threads, shuffled within each thread
	values = make([]uint64, valuesPerThread)
	for i = 0; i < valuesPerThread; i++ {
		values[i] = (threadIndex * valuesPerThread) + i
	}
	prng := rand.New(rand.NewSource(int64(threadIndex)))
	prng.Shuffle(len(values), func(i int, j int) { values[i], values[j] = values[j], values[i] })

	if !measureInsert {
		for _, value := range values {
			if !perThreadTree {
				commonTreeMutex.Lock()
			}
			ok, err = tree.insert(value)
			if !perThreadTree {
				commonTreeMutex.Unlock()
			}
			if nil != err {
				stepErrChan <- err
				runtime.Goexit()
			}
			if !ok {
				stepErrChan <- fmt.Errorf("value %v unexpectedly already present", value)
				runtime.Goexit()
			}
		}
	}

	// Indicate initialization step is done
	stepErrChan <- nil

	// Await signal to proceed with measured operations step
	_ = <-doNextStepChan

	// Do measured operations
	if measureWalk {
		if !perThreadTree {
			commonTreeMutex.Lock()
		}
		visited, err = tree.walk(valuesPerThread)
		if !perThreadTree {
			commonTreeMutex.Unlock()
		}
		if nil != err {
			stepErrChan <- err
			runtime.Goexit()
		}
		if visited != valuesPerThread {
			stepErrChan <- fmt.Errorf("walk visited %v values, expected %v", visited, valuesPerThread)
			runtime.Goexit()
		}
	} else {
		for _, value := range values {
			if !perThreadTree {
				commonTreeMutex.Lock()
			}
			if measureInsert {
				ok, err = tree.insert(value)
			} else { // measureContains
				ok, err = tree.contains(value)
			}
			if !perThreadTree {
				commonTreeMutex.Unlock()
			}
			if nil != err {
				stepErrChan <- err
				runtime.Goexit()
			}
			if !ok {
				stepErrChan <- fmt.Errorf("operation on value %v unexpectedly failed", value)
				runtime.Goexit()
			}
		}
	}

	// Indicate measured operations step is done
	stepErrChan <- nil

	// Await signal to proceed with shutdown step
	_ = <-doNextStepChan

	// Do shutdown step
	if perThreadTree {
		err = tree.finish()
		if nil != err {
			stepErrChan <- err
			runtime.Goexit()
		}
	}

	// Indicate shutdown step is done
	stepErrChan <- nil
}
