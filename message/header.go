// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package message

import (
	"bytes"
	"encoding/binary"
	"math"

	"github.com/equityledger/equity/digest"
	"github.com/equityledger/equity/fault"
)

// byte sizes for various fields
const (
	MagicSize    = 4  // network identifier
	CommandSize  = 12 // ASCII command, NUL padded
	LengthSize   = 4  // payload byte count
	ChecksumSize = 4  // first 4 bytes of SHA256(SHA256(payload))
)

// offsets of the fields
const (
	magicOffset    = 0
	commandOffset  = magicOffset + MagicSize
	lengthOffset   = commandOffset + CommandSize
	checksumOffset = lengthOffset + LengthSize

	// HeaderSize - total bytes in the header
	HeaderSize = checksumOffset + ChecksumSize
)

// PackedHeader - fixed size array to simplify validation
type PackedHeader [HeaderSize]byte

// Header - the unpacked header structure
type Header struct {
	Magic    uint32 `json:"magic"`
	Command  string `json:"command"`
	Length   uint32 `json:"length"`
	Checksum uint32 `json:"checksum"`
}

// PayloadChecksum - first four bytes of the double SHA-256 as a little endian value
func PayloadChecksum(payload []byte) uint32 {
	c := digest.NewChecksum(payload)
	return binary.LittleEndian.Uint32(c[:])
}

// Pack - turn a header into an array of bytes
func (header *Header) Pack() (PackedHeader, error) {
	buffer := PackedHeader{}

	if len(header.Command) > CommandSize {
		return buffer, fault.ErrCommandTooLong
	}

	binary.LittleEndian.PutUint32(buffer[magicOffset:], header.Magic)
	copy(buffer[commandOffset:lengthOffset], header.Command)
	binary.LittleEndian.PutUint32(buffer[lengthOffset:], header.Length)
	binary.LittleEndian.PutUint32(buffer[checksumOffset:], header.Checksum)

	return buffer, nil
}

// Unpack - turn a packed header into a header structure
func (record PackedHeader) Unpack() *Header {
	command := record[commandOffset:lengthOffset]
	if n := bytes.IndexByte(command, 0); n >= 0 {
		command = command[:n]
	}
	return &Header{
		Magic:    binary.LittleEndian.Uint32(record[magicOffset:]),
		Command:  string(command),
		Length:   binary.LittleEndian.Uint32(record[lengthOffset:]),
		Checksum: binary.LittleEndian.Uint32(record[checksumOffset:]),
	}
}

// UnpackHeader - extract a header from the front of a []byte
func UnpackHeader(buffer []byte) (*Header, error) {
	if len(buffer) < HeaderSize {
		return nil, fault.ErrTruncatedHeader
	}
	packed := PackedHeader{}
	copy(packed[:], buffer[:HeaderSize])
	return packed.Unpack(), nil
}

// Frame - prefix a payload with its header
func Frame(magic uint32, command string, payload []byte) ([]byte, error) {
	if len(command) > CommandSize {
		return nil, fault.ErrCommandTooLong
	}
	if uint64(len(payload)) > math.MaxUint32 {
		return nil, fault.ErrPayloadTooLarge
	}

	header := Header{
		Magic:    magic,
		Command:  command,
		Length:   uint32(len(payload)),
		Checksum: PayloadChecksum(payload),
	}
	packed, err := header.Pack()
	if nil != err {
		return nil, err
	}

	buffer := make([]byte, 0, HeaderSize+len(payload))
	buffer = append(buffer, packed[:]...)
	return append(buffer, payload...), nil
}

// Parse - split one frame from the front of a buffer
//
// returns the header, a copy of the payload and the total bytes consumed
// so that a buffer holding several frames can be walked
func Parse(buffer []byte) (*Header, []byte, int, error) {
	header, err := UnpackHeader(buffer)
	if nil != err {
		return nil, nil, 0, err
	}

	remaining := uint64(len(buffer) - HeaderSize)
	if uint64(header.Length) > remaining {
		return nil, nil, 0, fault.ErrTruncatedPayload
	}

	end := HeaderSize + int(header.Length)
	payload := make([]byte, header.Length)
	copy(payload, buffer[HeaderSize:end])

	if PayloadChecksum(payload) != header.Checksum {
		return nil, nil, 0, fault.ErrChecksumMismatch
	}

	return header, payload, end, nil
}
