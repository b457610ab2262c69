// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package message

import (
	"io"

	"github.com/bitmark-inc/logger"

	"github.com/equityledger/equity/fault"
)

// DefaultMaximumPayload - payload cap used when none is configured
const DefaultMaximumPayload = 32 * 1024 * 1024

// Reader - extract frames from a byte stream
type Reader struct {
	log     *logger.L
	r       io.Reader
	magic   uint32
	maximum uint32
}

// Writer - emit frames onto a byte stream
type Writer struct {
	w     io.Writer
	magic uint32
}

// NewReader - reader for one network
//
// a zero maximumPayload selects DefaultMaximumPayload
func NewReader(log *logger.L, r io.Reader, magic uint32, maximumPayload uint32) *Reader {
	if 0 == maximumPayload {
		maximumPayload = DefaultMaximumPayload
	}
	return &Reader{
		log:     log,
		r:       r,
		magic:   magic,
		maximum: maximumPayload,
	}
}

// ReadMessage - read the next complete frame
//
// io.EOF is only returned when the stream ends exactly between frames
func (reader *Reader) ReadMessage() (*Header, []byte, error) {
	packed := PackedHeader{}
	_, err := io.ReadFull(reader.r, packed[:])
	if io.EOF == err {
		return nil, nil, io.EOF
	}
	if io.ErrUnexpectedEOF == err {
		return nil, nil, fault.ErrTruncatedHeader
	}
	if nil != err {
		return nil, nil, err
	}

	header := packed.Unpack()

	if header.Magic != reader.magic {
		reader.log.Warnf("magic: 0x%08x  expected: 0x%08x", header.Magic, reader.magic)
		return nil, nil, fault.ErrWrongNetwork
	}

	// length is checked before the payload is allocated
	if header.Length > reader.maximum {
		reader.log.Warnf("command: %q  length: %d  exceeds: %d", header.Command, header.Length, reader.maximum)
		return nil, nil, fault.ErrPayloadTooLarge
	}

	payload := make([]byte, header.Length)
	_, err = io.ReadFull(reader.r, payload)
	if io.EOF == err || io.ErrUnexpectedEOF == err {
		return nil, nil, fault.ErrTruncatedPayload
	}
	if nil != err {
		return nil, nil, err
	}

	if PayloadChecksum(payload) != header.Checksum {
		reader.log.Warnf("command: %q  checksum: 0x%08x mismatch", header.Command, header.Checksum)
		return nil, nil, fault.ErrChecksumMismatch
	}

	reader.log.Tracef("command: %q  length: %d", header.Command, header.Length)

	return header, payload, nil
}

// NewWriter - writer for one network
func NewWriter(w io.Writer, magic uint32) *Writer {
	return &Writer{
		w:     w,
		magic: magic,
	}
}

// WriteMessage - frame and write a payload
func (writer *Writer) WriteMessage(command string, payload []byte) error {
	buffer, err := Frame(writer.magic, command, payload)
	if nil != err {
		return err
	}
	_, err = writer.w.Write(buffer)
	return err
}

// WriteBody - pack, frame and write a body
func (writer *Writer) WriteBody(command string, body Body) error {
	payload, err := body.Pack()
	if nil != err {
		return err
	}
	return writer.WriteMessage(command, payload)
}
