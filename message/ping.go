// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package message

// Ping - keep-alive request
type Ping struct {
	Nonce uint64 `json:"nonce,string"`
}

// Pong - reply to a ping carrying the same nonce
type Pong struct {
	Nonce uint64 `json:"nonce,string"`
}

// Pack - 8 byte little endian nonce
func (ping *Ping) Pack() ([]byte, error) {
	return appendUint64(nil, ping.Nonce), nil
}

// UnpackPing - decode a ping payload
func UnpackPing(buffer []byte) (*Ping, error) {
	u := newUnpacker(buffer)
	ping := &Ping{
		Nonce: u.uint64(),
	}
	if err := u.finish(); nil != err {
		return nil, err
	}
	return ping, nil
}

// Pack - 8 byte little endian nonce
func (pong *Pong) Pack() ([]byte, error) {
	return appendUint64(nil, pong.Nonce), nil
}

// UnpackPong - decode a pong payload
func UnpackPong(buffer []byte) (*Pong, error) {
	u := newUnpacker(buffer)
	pong := &Pong{
		Nonce: u.uint64(),
	}
	if err := u.finish(); nil != err {
		return nil, err
	}
	return pong, nil
}
