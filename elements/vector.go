// Copyright (c) 2015-2021, NVIDIA CORPORATION.
// SPDX-License-Identifier: Apache-2.0

package elements

import (
	"github.com/NVIDIA/rbtree/blunder"
	"github.com/NVIDIA/rbtree/logger"
	"github.com/NVIDIA/rbtree/rbtree"
)

// UndefinedNorm is returned by SquaredNorm() for a vector without coordinates.
const UndefinedNorm = float64(-1)

// Vector is a point in a space of len(Coordinates) dimensions.
//
// A nil Coordinates slice means the vector is undefined (as opposed to the
// zero-dimensional vector, whose Coordinates is empty but non-nil).
type Vector struct {
	Coordinates []float64
}

// NewVector returns a Vector holding a copy of coordinates.
func NewVector(coordinates ...float64) (vector *Vector) {
	vector = &Vector{Coordinates: make([]float64, len(coordinates))}
	copy(vector.Coordinates, coordinates)
	return
}

// CompareVectors orders vectors by their first differing coordinate. When one
// vector is a prefix of the other, the shorter one is smaller.
func CompareVectors(vector1 *Vector, vector2 *Vector) (result int) {
	var (
		minLen int
	)

	minLen = len(vector1.Coordinates)
	if minLen > len(vector2.Coordinates) {
		minLen = len(vector2.Coordinates)
	}

	for i := 0; i < minLen; i++ {
		if vector1.Coordinates[i] != vector2.Coordinates[i] {
			if vector1.Coordinates[i] > vector2.Coordinates[i] {
				return 1
			}
			return -1
		}
	}

	switch {
	case len(vector1.Coordinates) < len(vector2.Coordinates):
		return -1
	case len(vector1.Coordinates) > len(vector2.Coordinates):
		return 1
	default:
		return 0
	}
}

// SquaredNorm returns the sum of the squares of the coordinates, or
// UndefinedNorm for a nil or undefined vector.
func (vector *Vector) SquaredNorm() (squaredNorm float64) {
	if (nil == vector) || (nil == vector.Coordinates) {
		return UndefinedNorm
	}

	for _, coordinate := range vector.Coordinates {
		squaredNorm += coordinate * coordinate
	}

	return
}

// DestroyVector releases vector's coordinates, leaving it undefined.
func DestroyVector(vector *Vector) {
	if nil != vector {
		vector.Coordinates = nil
	}
}

// CopyIfNormIsLarger is a rbtree.VisitFunc[*Vector] whose context is the
// accumulating *Vector. The accumulator receives a copy of vector's coordinates
// if it is undefined or has the smaller squared norm.
//
// Returns false (stopping the walk) if vector is undefined or context is not
// a *Vector.
func CopyIfNormIsLarger(vector *Vector, context interface{}) (ok bool) {
	var (
		maxVector *Vector
	)

	if (nil == vector) || (nil == vector.Coordinates) {
		return false
	}

	maxVector, ok = context.(*Vector)
	if !ok || (nil == maxVector) {
		return false
	}

	if (nil == maxVector.Coordinates) || (maxVector.SquaredNorm() < vector.SquaredNorm()) {
		maxVector.Coordinates = make([]float64, len(vector.Coordinates))
		copy(maxVector.Coordinates, vector.Coordinates)
		logger.DebugfID(logger.DbgInternal, "new max squared norm %v", vector.SquaredNorm())
	}

	return true
}

// FindMaxNormVector returns a copy of the vector in tree having the largest
// squared norm. Among equal norms the first in tree order wins.
func FindMaxNormVector(tree *rbtree.Tree[*Vector]) (maxVector *Vector, err error) {
	var (
		ok bool
	)

	maxVector = &Vector{}

	ok, err = tree.ForEach(CopyIfNormIsLarger, maxVector)
	if nil != err {
		maxVector = nil
		return
	}
	if !ok {
		maxVector = nil
		err = blunder.NewError(blunder.InvalidArgError, "tree holds an undefined vector")
		return
	}

	logger.Tracef("max squared norm of %v vectors is %v", tree.Len(), maxVector.SquaredNorm())

	err = nil
	return
}
