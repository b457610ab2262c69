// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"unicode/utf8"

	"github.com/equityledger/equity/fault"
)

// ToVarString - Varint byte count followed by the UTF-8 bytes of s
func ToVarString(s string) []byte {
	n := uint64(len(s))
	result := make([]byte, 0, VarintLength(n)+len(s))
	result = append(result, ToVarint(n)...)
	return append(result, s...)
}

// FromVarString - decode a length prefixed string from the start of buffer
//
// also return the total number of bytes used (prefix and content)
func FromVarString(buffer []byte) (string, int, error) {
	length, prefixLength, err := FromVarint(buffer)
	if nil != err {
		return "", 0, err
	}

	remaining := uint64(len(buffer) - prefixLength)
	if length > remaining {
		return "", 0, fault.ErrTruncatedInput
	}

	end := prefixLength + int(length)
	content := buffer[prefixLength:end]
	if !utf8.Valid(content) {
		return "", 0, fault.ErrInvalidUtf8
	}
	return string(content), end, nil
}

// ToVarBytes - Varint byte count followed by the raw bytes
func ToVarBytes(data []byte) []byte {
	n := uint64(len(data))
	result := make([]byte, 0, VarintLength(n)+len(data))
	result = append(result, ToVarint(n)...)
	return append(result, data...)
}

// FromVarBytes - decode a length prefixed byte slice, no UTF-8 check
//
// the result is a copy, not a sub-slice of buffer
func FromVarBytes(buffer []byte) ([]byte, int, error) {
	length, prefixLength, err := FromVarint(buffer)
	if nil != err {
		return nil, 0, err
	}

	remaining := uint64(len(buffer) - prefixLength)
	if length > remaining {
		return nil, 0, fault.ErrTruncatedInput
	}

	end := prefixLength + int(length)
	result := make([]byte, length)
	copy(result, buffer[prefixLength:end])
	return result, end, nil
}
