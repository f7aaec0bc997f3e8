// Copyright (c) 2015-2021, NVIDIA CORPORATION.
// SPDX-License-Identifier: Apache-2.0

package elements

import (
	"strings"

	"github.com/NVIDIA/rbtree/logger"
	"github.com/NVIDIA/rbtree/rbtree"
)

// CompareWords orders words lexicographically (bytewise).
func CompareWords(word1 string, word2 string) (result int) {
	return strings.Compare(word1, word2)
}

// Concatenate is a rbtree.VisitFunc[string] appending word and a newline to
// the *strings.Builder passed as context.
func Concatenate(word string, context interface{}) (ok bool) {
	var (
		builder *strings.Builder
	)

	builder, ok = context.(*strings.Builder)
	if !ok || (nil == builder) {
		return false
	}

	_, _ = builder.WriteString(word)
	_ = builder.WriteByte('\n')

	return true
}

// ConcatenateWords returns every word in tree, in order, each followed by a newline.
func ConcatenateWords(tree *rbtree.Tree[string]) (concatenated string, err error) {
	var (
		builder strings.Builder
	)

	_, err = tree.ForEach(Concatenate, &builder)
	if nil != err {
		return
	}

	concatenated = builder.String()

	logger.Tracef("concatenated %v words into %v bytes", tree.Len(), len(concatenated))

	err = nil
	return
}
