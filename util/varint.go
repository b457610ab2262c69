// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"encoding/binary"

	"github.com/equityledger/equity/fault"
)

// VarintMaximumBytes - maximum possible number of bytes in a Varint
const VarintMaximumBytes = 9

// selector bytes for the wider forms
const (
	varint16 = 0xfd
	varint32 = 0xfe
	varint64 = 0xff
)

// ToVarint - convert a 64 bit unsigned integer to a Varint
//
// Structure of the result
//   value < 0xfd          1 byte:  value
//   value <= 0xffff       3 bytes: 0xfd | uint16 little endian
//   value <= 0xffffffff   5 bytes: 0xfe | uint32 little endian
//   otherwise             9 bytes: 0xff | uint64 little endian
func ToVarint(value uint64) []byte {
	result := make([]byte, VarintLength(value))
	switch len(result) {
	case 1:
		result[0] = byte(value)
	case 3:
		result[0] = varint16
		binary.LittleEndian.PutUint16(result[1:], uint16(value))
	case 5:
		result[0] = varint32
		binary.LittleEndian.PutUint32(result[1:], uint32(value))
	default:
		result[0] = varint64
		binary.LittleEndian.PutUint64(result[1:], value)
	}
	return result
}

// VarintLength - number of bytes ToVarint would produce
func VarintLength(value uint64) int {
	switch {
	case value < varint16:
		return 1
	case value <= 0xffff:
		return 3
	case value <= 0xffffffff:
		return 5
	default:
		return VarintMaximumBytes
	}
}

// FromVarint - convert the Varint at the start of buffer to a uint64
//
// also return the number of bytes used as second value
//
// non-minimal encodings are accepted, e.g. fd 01 00 decodes as 1
func FromVarint(buffer []byte) (uint64, int, error) {
	if 0 == len(buffer) {
		return 0, 0, fault.ErrTruncatedInput
	}

	width := 0
	switch buffer[0] {
	case varint16:
		width = 2
	case varint32:
		width = 4
	case varint64:
		width = 8
	default:
		return uint64(buffer[0]), 1, nil
	}

	count := 1 + width
	if len(buffer) < count {
		return 0, 0, fault.ErrTruncatedInput
	}

	switch width {
	case 2:
		return uint64(binary.LittleEndian.Uint16(buffer[1:])), count, nil
	case 4:
		return uint64(binary.LittleEndian.Uint32(buffer[1:])), count, nil
	default:
		return binary.LittleEndian.Uint64(buffer[1:]), count, nil
	}
}

// CopyVarint - make a copy of a Varint from the beginning of a buffer
func CopyVarint(buffer []byte) ([]byte, error) {
	_, count, err := FromVarint(buffer)
	if nil != err {
		return nil, err
	}
	result := make([]byte, count)
	copy(result, buffer)
	return result, nil
}

// ClippedVarint - return a positive clipped value as an int
// any value outside the range minimum..maximum is an error
func ClippedVarint(buffer []byte, minimum int, maximum int) (int, int, error) {
	if minimum < 0 || maximum < 0 || minimum > maximum {
		return 0, 0, fault.ErrCountOutOfRange
	}

	value, count, err := FromVarint(buffer)
	if nil != err {
		return 0, 0, err
	}
	if value < uint64(minimum) || value > uint64(maximum) {
		return 0, 0, fault.ErrCountOutOfRange
	}
	return int(value), count, nil
}
