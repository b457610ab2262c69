// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package base58

import (
	"bytes"

	"github.com/equityledger/equity/digest"
	"github.com/equityledger/equity/fault"
)

// minimum decoded size: version byte and checksum
const minimumCheckedLength = 1 + digest.ChecksumLength

// CheckedPayload - the content of a Base58Check string
//
// the checksum is not stored; it is a function of version and data
type CheckedPayload struct {
	Version byte
	Data    []byte
}

// CheckEncode - Base58Check string of version followed by data
//
// the encoded bytes are: version | data | first 4 bytes of SHA256(SHA256(version | data))
// each leading zero byte is represented by a '1'
func CheckEncode(version byte, data []byte) string {
	buffer := make([]byte, 0, minimumCheckedLength+len(data))
	buffer = append(buffer, version)
	buffer = append(buffer, data...)
	checksum := digest.NewChecksum(buffer)
	buffer = append(buffer, checksum[:]...)
	return encodeWithZeros(buffer)
}

// CheckDecode - validate a Base58Check string and split out its version
func CheckDecode(s string) (*CheckedPayload, error) {
	if err := validate(s); nil != err {
		if fault.ErrEmptyInput == err {
			return nil, fault.ErrTooShort
		}
		return nil, err
	}

	buffer, err := decode(s)
	if nil != err {
		return nil, err
	}
	if len(buffer) < minimumCheckedLength {
		return nil, fault.ErrTooShort
	}

	checksumStart := len(buffer) - digest.ChecksumLength
	checksum := digest.NewChecksum(buffer[:checksumStart])
	if !bytes.Equal(checksum[:], buffer[checksumStart:]) {
		return nil, fault.ErrChecksumMismatch
	}

	data := make([]byte, checksumStart-1)
	copy(data, buffer[1:checksumStart])
	return &CheckedPayload{
		Version: buffer[0],
		Data:    data,
	}, nil
}

// String - the Base58Check encoding of the payload
func (p CheckedPayload) String() string {
	return CheckEncode(p.Version, p.Data)
}

// MarshalText - convert the payload to its Base58Check JSON form
func (p CheckedPayload) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText - convert a Base58Check JSON string to a payload
func (p *CheckedPayload) UnmarshalText(s []byte) error {
	decoded, err := CheckDecode(string(s))
	if nil != err {
		return err
	}
	*p = *decoded
	return nil
}
