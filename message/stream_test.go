// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package message_test

import (
	"bytes"
	"encoding/binary"
	"io"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"

	"github.com/equityledger/equity/fault"
	"github.com/equityledger/equity/message"
)

func TestReadWrite(t *testing.T) {
	buffer := &bytes.Buffer{}
	w := message.NewWriter(buffer, mainMagic)

	err := w.WriteBody(message.CommandPing, &message.Ping{Nonce: 99})
	assert.Nil(t, err, "write ping")
	err = w.WriteMessage(message.CommandVerAck, nil)
	assert.Nil(t, err, "write verack")
	err = w.WriteMessage(message.CommandTx, []byte{1, 2, 3, 4, 5})
	assert.Nil(t, err, "write tx")

	r := message.NewReader(logger.New(category), buffer, mainMagic, 1024)

	header, payload, err := r.ReadMessage()
	assert.Nil(t, err, "read ping")
	assert.Equal(t, message.CommandPing, header.Command, "ping command")
	ping, err := message.UnpackPing(payload)
	assert.Nil(t, err, "unpack ping")
	assert.Equal(t, uint64(99), ping.Nonce, "nonce")

	header, payload, err = r.ReadMessage()
	assert.Nil(t, err, "read verack")
	assert.Equal(t, message.CommandVerAck, header.Command, "verack command")
	assert.Equal(t, 0, len(payload), "verack payload")

	header, payload, err = r.ReadMessage()
	assert.Nil(t, err, "read tx")
	assert.Equal(t, message.CommandTx, header.Command, "tx command")
	assert.Equal(t, []byte{1, 2, 3, 4, 5}, payload, "tx payload")

	_, _, err = r.ReadMessage()
	assert.Equal(t, io.EOF, err, "end of stream")
}

func TestReaderErrors(t *testing.T) {
	log := logger.New(category)
	frame, err := message.Frame(mainMagic, message.CommandTx, bytes.Repeat([]byte{0xaa}, 100))
	assert.Nil(t, err, "frame")

	r := message.NewReader(log, bytes.NewReader(frame[:10]), mainMagic, 0)
	_, _, err = r.ReadMessage()
	assert.Equal(t, fault.ErrTruncatedHeader, err, "partial header")

	r = message.NewReader(log, bytes.NewReader(frame[:50]), mainMagic, 0)
	_, _, err = r.ReadMessage()
	assert.Equal(t, fault.ErrTruncatedPayload, err, "partial payload")

	r = message.NewReader(log, bytes.NewReader(frame[:message.HeaderSize]), mainMagic, 0)
	_, _, err = r.ReadMessage()
	assert.Equal(t, fault.ErrTruncatedPayload, err, "missing payload")

	r = message.NewReader(log, bytes.NewReader(frame), 0x0709110b, 0)
	_, _, err = r.ReadMessage()
	assert.Equal(t, fault.ErrWrongNetwork, err, "other network")

	r = message.NewReader(log, bytes.NewReader(frame), mainMagic, 99)
	_, _, err = r.ReadMessage()
	assert.Equal(t, fault.ErrPayloadTooLarge, err, "over maximum")

	r = message.NewReader(log, bytes.NewReader(frame), mainMagic, 100)
	_, _, err = r.ReadMessage()
	assert.Nil(t, err, "at maximum")

	corrupt := append([]byte{}, frame...)
	corrupt[len(corrupt)-1] = 0
	r = message.NewReader(log, bytes.NewReader(corrupt), mainMagic, 0)
	_, _, err = r.ReadMessage()
	assert.Equal(t, fault.ErrChecksumMismatch, err, "checksum")
}

// a declared length near 4 GiB is rejected without reading further
func TestReaderHugeLength(t *testing.T) {
	header := make([]byte, message.HeaderSize)
	binary.LittleEndian.PutUint32(header[0:], mainMagic)
	copy(header[4:], "block")
	binary.LittleEndian.PutUint32(header[16:], 0xfffffff0)

	r := message.NewReader(logger.New(category), bytes.NewReader(header), mainMagic, 0)
	_, _, err := r.ReadMessage()
	assert.Equal(t, fault.ErrPayloadTooLarge, err, "huge length")
}

func TestWriterErrors(t *testing.T) {
	buffer := &bytes.Buffer{}
	w := message.NewWriter(buffer, mainMagic)

	err := w.WriteMessage("thirteen-long", nil)
	assert.Equal(t, fault.ErrCommandTooLong, err, "long command")
	assert.Equal(t, 0, buffer.Len(), "nothing written")

	err = w.WriteBody(message.CommandInv, &message.Inventory{Items: make([]message.InventoryItem, message.MaximumInventory+1)})
	assert.Equal(t, fault.ErrCountOutOfRange, err, "oversized inventory")
	assert.Equal(t, 0, buffer.Len(), "nothing written")
}
