// Copyright (c) 2015-2021, NVIDIA CORPORATION.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/NVIDIA/rbtree/bucketstats"
)

func TestContainers(t *testing.T) {
	for _, kind := range []byte{'r', 'l', 'b'} {
		assert := assert.New(t)

		c, err := newContainer(kind, "container_test")
		if nil != err {
			t.Fatalf("newContainer('%c',) failed: %v", kind, err)
		}

		for _, value := range []uint64{40, 10, 30, 20, 50} {
			ok, err := c.insert(value)
			assert.True(ok, "kind %c value %v", kind, value)
			assert.Nil(err, "kind %c", kind)
		}

		ok, err := c.insert(30)
		assert.False(ok, "kind %c duplicate", kind)
		assert.Nil(err)

		found, err := c.contains(20)
		assert.True(found, "kind %c", kind)
		assert.Nil(err)
		found, err = c.contains(25)
		assert.False(found, "kind %c", kind)
		assert.Nil(err)

		visited, err := c.walk(3)
		assert.Nil(err)
		assert.Equal(uint64(3), visited, "kind %c", kind)
		visited, err = c.walk(100)
		assert.Nil(err)
		assert.Equal(uint64(5), visited, "kind %c", kind)

		// Only the rbtree reports bucketstats
		assert.Equal('r' == kind, bucketstats.IsRegistered("rbtree", "container_test"), "kind %c", kind)

		err = c.finish()
		assert.Nil(err, "kind %c", kind)
		assert.False(bucketstats.IsRegistered("rbtree", "container_test"))
	}

	_, err := newContainer('x', "container_test")
	if nil == err {
		t.Fatalf("newContainer('x',) should have failed")
	}
}
