// Copyright (c) 2015-2021, NVIDIA CORPORATION.
// SPDX-License-Identifier: Apache-2.0

package rbtree

import (
	"github.com/NVIDIA/rbtree/blunder"
	"github.com/NVIDIA/rbtree/bucketstats"
	"github.com/NVIDIA/rbtree/logger"
)

const statsPkgName = "rbtree"

// Stats holds the per-tree operation counters
type Stats struct {
	Inserts          bucketstats.Total   // successful insertions
	DuplicateRejects bucketstats.Total   // insertions of a value already present
	InvalidRejects   bucketstats.Total   // insertions of an absent value
	BudgetRejects    bucketstats.Total   // insertions refused by RBTree.MaxNodes
	InsertDepth      bucketstats.Average // depth at which new nodes were attached
	Rotations        bucketstats.Total
	Recolors         bucketstats.Total // individual node color changes made by fixup
	FixupAscents     bucketstats.Total // red-uncle steps moving the fixup to the grandparent
	Lookups          bucketstats.Total
	Visits           bucketstats.Total // VisitFunc calls made by ForEach
	DestroyCalls     bucketstats.Total // DestroyFunc calls made by Destroy
}

// Stats returns the tree's counters (nil for a nil tree)
func (tree *Tree[V]) Stats() (stats *Stats) {
	if nil == tree {
		return nil
	}
	return &tree.stats
}

// RegisterStats publishes the tree's counters via bucketstats as "rbtree.<statsGroupName>".
//
// A tree registers under at most one name; registering again replaces the prior
// registration. Destroy() unregisters.
func (tree *Tree[V]) RegisterStats(statsGroupName string) (err error) {
	if nil == tree {
		err = blunder.NewError(blunder.NilTreeError, "RegisterStats() called on nil tree")
		return
	}
	if tree.destroyed {
		err = blunder.NewError(blunder.DestroyedError, "RegisterStats() called on destroyed tree")
		return
	}
	if "" == statsGroupName {
		err = blunder.NewError(blunder.InvalidArgError, "RegisterStats() requires a non-empty statsGroupName")
		return
	}
	if statsGroupName == tree.statsName {
		return nil
	}
	if bucketstats.IsRegistered(statsPkgName, statsGroupName) {
		err = blunder.NewError(blunder.AlreadyExistsError, "stats group %s.%s already registered", statsPkgName, statsGroupName)
		return
	}

	tree.unregisterStats()

	bucketstats.Register(statsPkgName, statsGroupName, &tree.stats)
	tree.statsName = statsGroupName

	logger.Tracef("registered stats %s.%s", statsPkgName, statsGroupName)

	return nil
}

func (tree *Tree[V]) unregisterStats() {
	if "" != tree.statsName {
		bucketstats.UnRegister(statsPkgName, tree.statsName)
		tree.statsName = ""
	}
}
