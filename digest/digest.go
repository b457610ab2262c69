// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package digest

import (
	"encoding/hex"
	"fmt"

	"github.com/minio/sha256-simd"

	"github.com/equityledger/equity/fault"
)

// Length - number of bytes in the digest
const Length = sha256.Size

// ChecksumLength - number of digest bytes used as a checksum
const ChecksumLength = 4

// Digest - type for a double SHA-256 digest
//
// stored as little endian byte array (wire order)
// represented as big endian hex value for print
// represented as little endian hex text for JSON encoding
// to convert to bytes just use d[:]
type Digest [Length]byte

// Checksum - type for the leading bytes of a digest
type Checksum [ChecksumLength]byte

// NewDigest - create a double SHA-256 digest from a byte slice
func NewDigest(record []byte) Digest {
	first := sha256.Sum256(record)
	return sha256.Sum256(first[:])
}

// SingleSum - plain SHA-256 of a byte slice
func SingleSum(record []byte) [Length]byte {
	return sha256.Sum256(record)
}

// NewChecksum - first four bytes of the double SHA-256 digest
func NewChecksum(record []byte) Checksum {
	d := NewDigest(record)
	var c Checksum
	copy(c[:], d[:ChecksumLength])
	return c
}

// internal function to return a reversed byte order copy of a digest
func reversed(d Digest) []byte {
	result := make([]byte, Length)
	for i := 0; i < Length; i += 1 {
		result[i] = d[Length-1-i]
	}
	return result
}

// IsZero - true if all bytes are zero
func (digest Digest) IsZero() bool {
	return Digest{} == digest
}

// String - convert a binary digest to hex string for use by the fmt package (for %s)
//
// the stored version is in little endian, but the output string is big endian
func (digest Digest) String() string {
	return hex.EncodeToString(reversed(digest))
}

// GoString - convert a binary digest to big endian hex string for use by the fmt package (for %#v)
func (digest Digest) GoString() string {
	return "<SHA256d:" + hex.EncodeToString(reversed(digest)) + ">"
}

// Scan - convert a big endian hex representation to a digest for use by the format package scan routines
func (digest *Digest) Scan(state fmt.ScanState, verb rune) error {
	token, err := state.Token(true, func(c rune) bool {
		if c >= '0' && c <= '9' {
			return true
		}
		if c >= 'A' && c <= 'F' {
			return true
		}
		if c >= 'a' && c <= 'f' {
			return true
		}
		return false
	})
	if nil != err {
		return err
	}
	if len(token) != hex.EncodedLen(Length) {
		return fault.ErrInvalidLength
	}

	buffer := make([]byte, Length)
	byteCount, err := hex.Decode(buffer, token)
	if nil != err {
		return err
	}

	for i, v := range buffer[:byteCount] {
		digest[Length-1-i] = v
	}
	return nil
}

// MarshalText - convert digest to little endian hex text
func (digest Digest) MarshalText() ([]byte, error) {
	size := hex.EncodedLen(len(digest))
	buffer := make([]byte, size)
	hex.Encode(buffer, digest[:])
	return buffer, nil
}

// UnmarshalText - convert little endian hex text into a digest
func (digest *Digest) UnmarshalText(s []byte) error {
	if Length != hex.DecodedLen(len(s)) {
		return fault.ErrInvalidLength
	}
	buffer := make([]byte, Length)
	byteCount, err := hex.Decode(buffer, s)
	if nil != err {
		return err
	}
	copy(digest[:], buffer[:byteCount])
	return nil
}

// DigestFromBytes - convert and validate little endian binary byte slice to a digest
func DigestFromBytes(digest *Digest, buffer []byte) error {
	if Length != len(buffer) {
		return fault.ErrInvalidLength
	}
	copy(digest[:], buffer)
	return nil
}
