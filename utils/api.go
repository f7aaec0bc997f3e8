// Copyright (c) 2015-2021, NVIDIA CORPORATION.
// SPDX-License-Identifier: Apache-2.0

// Package utils provides caller introspection used to tag log entries.
package utils

import (
	"bytes"
	"regexp"
	"runtime"
	"strconv"
)

var (
	extractFnPkgRE = regexp.MustCompile(`[^\/]*$`)
	extractPkgRE   = regexp.MustCompile(`^[^.]*`)
	extractFnRE    = regexp.MustCompile(`[^.]*$`)
)

// GetGID returns the id of the calling goroutine.
//
// Logging the goroutine is useful when a single tree is (incorrectly) shared
// between goroutines without external serialization.
//
func GetGID() uint64 {
	b := make([]byte, 64)
	b = b[:runtime.Stack(b, false)]
	b = bytes.TrimPrefix(b, []byte("goroutine "))
	b = b[:bytes.IndexByte(b, ' ')]
	n, _ := strconv.ParseUint(string(b), 10, 64)
	return n
}

// GetAFnName returns a string containing calling function and package
func GetAFnName(level int) string {
	// Get the PC and file for the level requested, adding one level to skip this function
	pc, _, _, ok := runtime.Caller(level + 1)
	if !ok {
		return ""
	}
	functionObject := runtime.FuncForPC(pc)
	if nil == functionObject {
		return ""
	}
	// Just the package and function name (and not the module path)
	return extractFnPkgRE.FindString(functionObject.Name())
}

// GetFuncPackage returns separate strings containing calling function and package
// along with the calling goroutine id
func GetFuncPackage(level int) (fn string, pkg string, gid uint64) {
	funcPkg := GetAFnName(level + 1)

	pkg = extractPkgRE.FindString(funcPkg)
	fn = extractFnRE.FindString(funcPkg)
	gid = GetGID()

	return fn, pkg, gid
}
