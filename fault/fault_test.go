// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/equityledger/equity/fault"
)

var (
	ErrInvalidOne  = fault.InvalidError("invalid one")
	ErrInvalidTwo  = fault.InvalidError("invalid two")
	ErrLengthOne   = fault.LengthError("length one")
	ErrLengthTwo   = fault.LengthError("length two")
	ErrNotFoundOne = fault.NotFoundError("not found one")
	ErrNotFoundTwo = fault.NotFoundError("not found two")
	ErrProcessOne  = fault.ProcessError("process one")
	ErrProcessTwo  = fault.ProcessError("process two")
	ErrRecordOne   = fault.RecordError("record one")
	ErrRecordTwo   = fault.RecordError("record two")
)

// test that the error classes can be distinguished
func TestClasses(t *testing.T) {
	errorList := []struct {
		err      error
		invalid  bool
		length   bool
		notFound bool
		process  bool
		record   bool
	}{
		{ErrInvalidOne, true, false, false, false, false},
		{ErrInvalidTwo, true, false, false, false, false},
		{ErrLengthOne, false, true, false, false, false},
		{ErrLengthTwo, false, true, false, false, false},
		{ErrNotFoundOne, false, false, true, false, false},
		{ErrNotFoundTwo, false, false, true, false, false},
		{ErrProcessOne, false, false, false, true, false},
		{ErrProcessTwo, false, false, false, true, false},
		{ErrRecordOne, false, false, false, false, true},
		{ErrRecordTwo, false, false, false, false, true},
		{fmt.Errorf("context: %w", ErrLengthOne), false, true, false, false, false},
		{fmt.Errorf("context: %w", ErrInvalidTwo), true, false, false, false, false},
	}

	for i, e := range errorList {
		err := e.err
		if fault.IsErrInvalid(err) != e.invalid {
			t.Errorf("%d: expected 'invalid' == %v for err = %v", i, e.invalid, err)
		}
		if fault.IsErrLength(err) != e.length {
			t.Errorf("%d: expected 'length' == %v for err = %v", i, e.length, err)
		}
		if fault.IsErrNotFound(err) != e.notFound {
			t.Errorf("%d: expected 'not found' == %v for err = %v", i, e.notFound, err)
		}
		if fault.IsErrProcess(err) != e.process {
			t.Errorf("%d: expected 'process' == %v for err = %v", i, e.process, err)
		}
		if fault.IsErrRecord(err) != e.record {
			t.Errorf("%d: expected 'record' == %v for err = %v", i, e.record, err)
		}
	}
}

func TestTaxonomy(t *testing.T) {
	assert.True(t, fault.IsErrLength(fault.ErrTruncatedInput), "truncated input class")
	assert.True(t, fault.IsErrInvalid(fault.ErrInvalidCharacter), "invalid character class")
	assert.True(t, fault.IsErrInvalid(fault.ErrChecksumMismatch), "checksum class")
	assert.True(t, fault.IsErrNotFound(fault.ErrIndexOutOfRange), "index class")
	assert.True(t, fault.IsErrLength(fault.ErrEmptyTree), "empty tree class")
	assert.True(t, fault.IsErrLength(fault.ErrCommandTooLong), "command class")
	assert.True(t, fault.IsErrLength(fault.ErrPayloadTooLarge), "payload class")
}

func TestPanicIfError(t *testing.T) {
	assert.NotPanics(t, func() { fault.PanicIfError("nothing", nil) }, "nil error panicked")
	assert.Panics(t, func() { fault.PanicIfError("something", ErrProcessOne) }, "error did not panic")
	assert.Panics(t, func() { fault.Panicf("value: %d", 42) }, "Panicf did not panic")
}
