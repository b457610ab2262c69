// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package message

import (
	"encoding/binary"

	"github.com/equityledger/equity/fault"
	"github.com/equityledger/equity/util"
)

// sequential decoder for payload fields
//
// the first error is sticky; all later reads return zero values
type unpacker struct {
	buffer []byte
	err    error
}

func newUnpacker(buffer []byte) *unpacker {
	return &unpacker{
		buffer: buffer,
	}
}

func (u *unpacker) take(n int) []byte {
	if nil != u.err {
		return nil
	}
	if n > len(u.buffer) {
		u.err = fault.ErrTruncatedInput
		return nil
	}
	b := u.buffer[:n]
	u.buffer = u.buffer[n:]
	return b
}

func (u *unpacker) uint8() uint8 {
	b := u.take(1)
	if nil == b {
		return 0
	}
	return b[0]
}

func (u *unpacker) uint16BE() uint16 {
	b := u.take(2)
	if nil == b {
		return 0
	}
	return binary.BigEndian.Uint16(b)
}

func (u *unpacker) uint32() uint32 {
	b := u.take(4)
	if nil == b {
		return 0
	}
	return binary.LittleEndian.Uint32(b)
}

func (u *unpacker) uint64() uint64 {
	b := u.take(8)
	if nil == b {
		return 0
	}
	return binary.LittleEndian.Uint64(b)
}

// a count bounded to prevent huge allocations from a small payload
func (u *unpacker) count(maximum int) int {
	if nil != u.err {
		return 0
	}
	n, length, err := util.ClippedVarint(u.buffer, 0, maximum)
	if nil != err {
		u.err = err
		return 0
	}
	u.buffer = u.buffer[length:]
	return n
}

func (u *unpacker) varString() string {
	if nil != u.err {
		return ""
	}
	s, n, err := util.FromVarString(u.buffer)
	if nil != err {
		u.err = err
		return ""
	}
	u.buffer = u.buffer[n:]
	return s
}

func (u *unpacker) rest() []byte {
	if nil != u.err || 0 == len(u.buffer) {
		return nil
	}
	b := make([]byte, len(u.buffer))
	copy(b, u.buffer)
	u.buffer = nil
	return b
}

func (u *unpacker) remaining() int {
	return len(u.buffer)
}

// the final error: any unread bytes are an error
func (u *unpacker) finish() error {
	if nil != u.err {
		return u.err
	}
	if 0 != len(u.buffer) {
		return fault.ErrTrailingData
	}
	return nil
}

// little endian field packers

func appendUint16BE(buffer []byte, value uint16) []byte {
	var b [2]byte
	binary.BigEndian.PutUint16(b[:], value)
	return append(buffer, b[:]...)
}

func appendUint32(buffer []byte, value uint32) []byte {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], value)
	return append(buffer, b[:]...)
}

func appendUint64(buffer []byte, value uint64) []byte {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], value)
	return append(buffer, b[:]...)
}
