// Copyright (c) 2015-2021, NVIDIA CORPORATION.
// SPDX-License-Identifier: Apache-2.0

package blunder

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/sys/unix"
)

func TestValues(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(int(unix.EINVAL), InvalidArgError.Value())
	assert.Equal(int(unix.EEXIST), AlreadyExistsError.Value())
	assert.Equal(int(unix.ENOMEM), OutOfMemoryError.Value())
	assert.Equal(int(unix.ENODATA), NoDataError.Value())
	assert.Equal(int(unix.EBADF), BadHandleError.Value())
	assert.Equal(1000, CorruptTreeError.Value())
	assert.Equal(1001, BadConfigError.Value())

	// Aliases share the underlying errno
	assert.Equal(InvalidArgError, NilValueError)
	assert.Equal(NoDataError, EmptyTreeError)
	assert.Equal(BadHandleError, DestroyedError)

	assert.Equal("InvalidArgError", NilTreeError.String())
	assert.Equal("CorruptTreeError", CorruptTreeError.String())
	assert.Equal("TreeError(4242)", TreeError(4242).String())
}

func TestDefaultErrno(t *testing.T) {
	var err error

	// Since err is nil, the default value should be successErrno
	if Errno(err) != successErrno {
		t.Fatalf("Errno(nil) returned %d, expected %d", Errno(err), successErrno)
	}

	// A plain Go error carries no errno, so the failure default is returned
	err = fmt.Errorf("this is a plain error")
	if Errno(err) != failureErrno {
		t.Fatalf("Errno(plain) returned %d, expected %d", Errno(err), failureErrno)
	}
}

func TestNewError(t *testing.T) {
	assert := assert.New(t)

	err := NewError(AlreadyExistsError, "stats name %v already registered", 5)
	assert.NotNil(err)
	assert.Equal("stats name 5 already registered", err.Error())
	assert.True(Is(err, AlreadyExistsError))
	assert.False(Is(err, InvalidArgError))
	assert.Equal(int(unix.EEXIST), Errno(err))

	// Details carries the stack of the NewError() caller
	assert.True(strings.Contains(Details(err), "stats name 5 already registered"))
	assert.True(strings.Contains(Details(err), "TestNewError"), Details(err))
}

func TestAddError(t *testing.T) {
	assert := assert.New(t)

	// Adding to a nil error still produces an error
	err := AddError(nil, NoDataError)
	assert.NotNil(err)
	assert.True(Is(err, NoDataError))

	err = AddError(fmt.Errorf("walk failed"), CorruptTreeError)
	assert.True(Is(err, CorruptTreeError))
	assert.Equal("walk failed", err.Error())

	// Replacing a previously set value wins (and is logged)
	err = AddError(err, BadHandleError)
	assert.True(Is(err, BadHandleError))
	assert.False(Is(err, CorruptTreeError))
}
