// Copyright (c) 2015-2021, NVIDIA CORPORATION.
// SPDX-License-Identifier: Apache-2.0

package elements

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NVIDIA/rbtree/blunder"
)

func TestCompareVectors(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(0, CompareVectors(NewVector(1, 2, 3), NewVector(1, 2, 3)))
	assert.Equal(1, CompareVectors(NewVector(1, 3), NewVector(1, 2, 9)))
	assert.Equal(-1, CompareVectors(NewVector(1, 2, 9), NewVector(1, 3)))
	assert.Equal(-1, CompareVectors(NewVector(1, 2), NewVector(1, 2, 0)))
	assert.Equal(1, CompareVectors(NewVector(1, 2, 0), NewVector(1, 2)))
	assert.Equal(0, CompareVectors(NewVector(), NewVector()))
}

func TestSquaredNorm(t *testing.T) {
	var nilVector *Vector

	assert.Equal(t, float64(25), NewVector(3, -4).SquaredNorm())
	assert.Equal(t, float64(0), NewVector().SquaredNorm())
	assert.Equal(t, UndefinedNorm, (&Vector{}).SquaredNorm())
	assert.Equal(t, UndefinedNorm, nilVector.SquaredNorm())
}

func TestCopyIfNormIsLarger(t *testing.T) {
	assert := assert.New(t)

	maxVector := &Vector{}

	source := NewVector(1, 1)
	assert.True(CopyIfNormIsLarger(source, maxVector))
	assert.Equal([]float64{1, 1}, maxVector.Coordinates)

	// The accumulator holds a copy
	source.Coordinates[0] = 7
	assert.Equal([]float64{1, 1}, maxVector.Coordinates)

	assert.True(CopyIfNormIsLarger(NewVector(1), maxVector))
	assert.Equal([]float64{1, 1}, maxVector.Coordinates)

	assert.True(CopyIfNormIsLarger(NewVector(0, 0, 2), maxVector))
	assert.Equal([]float64{0, 0, 2}, maxVector.Coordinates)

	assert.False(CopyIfNormIsLarger(&Vector{}, maxVector))
	assert.False(CopyIfNormIsLarger(nil, maxVector))
	assert.False(CopyIfNormIsLarger(NewVector(5), "not a vector"))
}

func TestFindMaxNormVector(t *testing.T) {
	assert := assert.New(t)

	tree, err := NewVectorTree()
	require.Nil(t, err)

	_, err = FindMaxNormVector(tree)
	assert.True(blunder.Is(err, blunder.NoDataError))

	vectors := []*Vector{
		NewVector(1, 2, 3),
		NewVector(-5, 1),
		NewVector(0.5),
		NewVector(4, 0, 0, 0),
		NewVector(1, 2),
	}
	for _, vector := range vectors {
		ok, err := tree.Insert(vector)
		require.Nil(t, err)
		require.True(t, ok)
	}

	ok, err := tree.Insert(NewVector(1, 2))
	assert.False(ok)
	assert.Nil(err)

	maxVector, err := FindMaxNormVector(tree)
	require.Nil(t, err)
	assert.Equal([]float64{-5, 1}, maxVector.Coordinates)
	assert.Equal(float64(26), maxVector.SquaredNorm())

	// A copy is returned, not the stored vector
	maxVector.Coordinates[0] = 100
	assert.Equal(float64(-5), vectors[1].Coordinates[0])

	require.Nil(t, tree.Destroy())
	for _, vector := range vectors {
		assert.Nil(vector.Coordinates)
	}
}

func TestFindMaxNormVectorUndefined(t *testing.T) {
	tree, err := NewVectorTree()
	require.Nil(t, err)

	_, _ = tree.Insert(NewVector(1))
	_, _ = tree.Insert(&Vector{})

	maxVector, err := FindMaxNormVector(tree)
	assert.Nil(t, maxVector)
	assert.True(t, blunder.Is(err, blunder.InvalidArgError))
}

func TestConcatenateWords(t *testing.T) {
	assert := assert.New(t)

	tree, err := NewWordTree()
	require.Nil(t, err)

	_, err = ConcatenateWords(tree)
	assert.True(blunder.Is(err, blunder.NoDataError))

	for _, word := range []string{"pear", "apple", "fig", "Banana", "apple"} {
		_, err = tree.Insert(word)
		require.Nil(t, err)
	}
	assert.Equal(4, tree.Len())

	concatenated, err := ConcatenateWords(tree)
	require.Nil(t, err)
	assert.Equal("Banana\napple\nfig\npear\n", concatenated)

	var builder strings.Builder
	assert.True(Concatenate("x", &builder))
	assert.Equal("x\n", builder.String())
	assert.False(Concatenate("x", "not a builder"))

	assert.True(0 > CompareWords("apple", "apples"))
	assert.True(0 < CompareWords("b", "a"))
	assert.Equal(0, CompareWords("same", "same"))

	require.Nil(t, tree.Destroy())
}
