// Copyright (c) 2015-2021, NVIDIA CORPORATION.
// SPDX-License-Identifier: Apache-2.0

// Package blunder provides error-handling wrappers
//
// These wrappers allow callers to provide additional information in Go errors
// while still conforming to the Go error interface.
//
// This package provides APIs to add errno information to regular Go errors
// returned by the tree packages.
//
// This package is currently implemented on top of the ansel1/merry package:
//   https://github.com/ansel1/merry
//
//   merry comes with built-in support for adding information to errors:
//    - stacktraces
//    - overriding the error message
//    - your own additional information
//
//   From merry godoc:
//     You can add any context information to an error with `e = merry.WithValue(e, "code", 12345)`
//     You can retrieve that value with `v, _ := merry.Value(e, "code").(int)`
package blunder

import (
	"fmt"

	"github.com/ansel1/merry"
	"golang.org/x/sys/unix"

	"github.com/NVIDIA/rbtree/logger"
)

// TreeError is the error value attached to errors returned by tree operations.
//
// There are two groups of constants:
//  - constants that correspond to linux/POSIX errnos as defined in errno.h
//  - tree-specific constants for errors not covered in the errno space
//
type TreeError int

const (
	// Errors that map to linux/POSIX errnos as defined in errno.h
	//
	BadHandleError     TreeError = TreeError(int(unix.EBADF))   // Handle no longer valid
	OutOfMemoryError   TreeError = TreeError(int(unix.ENOMEM))  // Out of memory
	AlreadyExistsError TreeError = TreeError(int(unix.EEXIST))  // Entry exists
	InvalidArgError    TreeError = TreeError(int(unix.EINVAL))  // Invalid argument
	NoDataError        TreeError = TreeError(int(unix.ENODATA)) // No data available
)

// Errors that map to constants already defined above
const (
	NilTreeError     TreeError = InvalidArgError
	NilValueError    TreeError = InvalidArgError
	NilCallbackError TreeError = InvalidArgError
	EmptyTreeError   TreeError = NoDataError
	DestroyedError   TreeError = BadHandleError
	NodeBudgetError  TreeError = OutOfMemoryError
)

// SuccessError is the "not an error" value
const SuccessError TreeError = 0

const ( // reset iota to 0
	// Errors that are internal/specific to the tree packages
	CorruptTreeError TreeError = 1000 + iota
	BadConfigError
)

// Default errno values for success and failure
const successErrno = 0
const failureErrno = -1

// Value returns the int value for the specified TreeError constant
func (err TreeError) Value() int {
	return int(err)
}

func (err TreeError) String() string {
	switch err {
	case SuccessError:
		return "SuccessError"
	case BadHandleError:
		return "BadHandleError"
	case OutOfMemoryError:
		return "OutOfMemoryError"
	case AlreadyExistsError:
		return "AlreadyExistsError"
	case InvalidArgError:
		return "InvalidArgError"
	case NoDataError:
		return "NoDataError"
	case CorruptTreeError:
		return "CorruptTreeError"
	case BadConfigError:
		return "BadConfigError"
	default:
		return fmt.Sprintf("TreeError(%d)", int(err))
	}
}

// NewError creates a new merry/blunder.TreeError-annotated error using the given
// format string and arguments.
func NewError(errValue TreeError, format string, a ...interface{}) error {
	return merry.WrapSkipping(fmt.Errorf(format, a...), 1).WithValue("errno", int(errValue))
}

// AddError is used to add tree error detail to a Go error.
//
// NOTE: Checks whether the error value has already been set
//       Note that by default merry will replace the old with the new.
//
func AddError(e error, errValue TreeError) error {
	if e == nil {
		// The caller obviously intends to make this a non-nil error, so
		// don't silently hand back success.
		return merry.New("regular error").WithValue("errno", int(errValue))
	}

	// Check and log if an errno has already been added to this error, to
	// help debugging in the cases where this was not intentional.
	prevValue := Errno(e)
	if prevValue != successErrno && prevValue != failureErrno {
		logger.Warnf("replacing error value %v with value %v for error %v.\n", prevValue, int(errValue), e)
	}

	return merry.WrapSkipping(e, 1).WithValue("errno", int(errValue))
}

// Errno extracts errno from the error, if it was previously wrapped.
// Otherwise a default value is returned.
//
func Errno(e error) int {
	if e == nil {
		// nil error = success
		return successErrno
	}

	// If the "errno" key/value was not present, merry.Value returns nil.
	var errno = failureErrno
	tmp := merry.Value(e, "errno")
	if tmp != nil {
		errno = tmp.(int)
	}

	return errno
}

// Is checks if an error matches a particular TreeError
//
// NOTE: Because the value of the underlying errno is used to do this check, one cannot
//       use this API to distinguish between TreeErrors that use the same errno value.
//       IOW, it can't tell the difference between NilTreeError/NilValueError/InvalidArgError,
//       since they all use unix.EINVAL as their underlying errno value.
//
func Is(e error, theError TreeError) bool {
	return Errno(e) == theError.Value()
}

// Details wraps merry.Details, which returns all error details including stacktrace in a string.
func Details(e error) string {
	return merry.Details(e)
}
