// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package message

import (
	"encoding/hex"

	"github.com/equityledger/equity/fault"
)

// Body - any payload that can be packed for framing
type Body interface {
	Pack() ([]byte, error)
}

// Raw - payload of a known command whose body is not interpreted here
type Raw []byte

// Pack - the bytes unchanged
func (r Raw) Pack() ([]byte, error) {
	return []byte(r), nil
}

// MarshalText - hex for JSON
func (r Raw) MarshalText() ([]byte, error) {
	buffer := make([]byte, hex.EncodedLen(len(r)))
	hex.Encode(buffer, r)
	return buffer, nil
}

type decoder func([]byte) (Body, error)

var decoders = map[Command]decoder{
	CommandAddr: func(b []byte) (Body, error) { return UnpackAddr(b) },
	CommandPing: func(b []byte) (Body, error) { return UnpackPing(b) },
	CommandPong: func(b []byte) (Body, error) { return UnpackPong(b) },

	CommandReject:  func(b []byte) (Body, error) { return UnpackReject(b) },
	CommandVersion: func(b []byte) (Body, error) { return UnpackVersion(b) },

	CommandInv:      func(b []byte) (Body, error) { return UnpackInventory(b) },
	CommandGetData:  func(b []byte) (Body, error) { return UnpackInventory(b) },
	CommandNotFound: func(b []byte) (Body, error) { return UnpackInventory(b) },

	CommandVerAck:      func(b []byte) (Body, error) { return UnpackEmpty(b) },
	CommandGetAddr:     func(b []byte) (Body, error) { return UnpackEmpty(b) },
	CommandMempool:     func(b []byte) (Body, error) { return UnpackEmpty(b) },
	CommandSendHeaders: func(b []byte) (Body, error) { return UnpackEmpty(b) },
	CommandFilterClear: func(b []byte) (Body, error) { return UnpackEmpty(b) },
}

// Decode - convert a payload into the body type for its command
//
// known commands without a body decoder give Raw
func Decode(command string, payload []byte) (Body, error) {
	if d, ok := decoders[command]; ok {
		body, err := d(payload)
		if nil != err {
			return nil, err
		}
		return body, nil
	}
	if IsKnown(command) {
		r := make(Raw, len(payload))
		copy(r, payload)
		return r, nil
	}
	return nil, fault.ErrUnknownCommand
}
