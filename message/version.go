// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package message

import (
	"github.com/equityledger/equity/util"
)

// protocol versions that change the version message layout
const (
	MinimumFromVersion  = 106   // adds From, Nonce, UserAgent and Height
	MinimumRelayVersion = 70001 // adds Relay
)

// Version - handshake announcing a node's capabilities
type Version struct {
	Version   uint32     `json:"version"`
	Services  uint64     `json:"services"`
	Timestamp int64      `json:"timestamp"`
	To        NetAddress `json:"to"`
	From      NetAddress `json:"from"`
	Nonce     uint64     `json:"nonce,string"`
	UserAgent string     `json:"userAgent"`
	Height    int32      `json:"height"`
	Relay     bool       `json:"relay"`
}

// Pack - fields present depend on the protocol version
func (v *Version) Pack() ([]byte, error) {
	buffer := appendUint32(nil, v.Version)
	buffer = appendUint64(buffer, v.Services)
	buffer = appendUint64(buffer, uint64(v.Timestamp))
	buffer = v.To.pack(buffer)

	if v.Version < MinimumFromVersion {
		return buffer, nil
	}

	buffer = v.From.pack(buffer)
	buffer = appendUint64(buffer, v.Nonce)
	buffer = append(buffer, util.ToVarString(v.UserAgent)...)
	buffer = appendUint32(buffer, uint32(v.Height))

	if v.Version < MinimumRelayVersion {
		return buffer, nil
	}

	relay := byte(0)
	if v.Relay {
		relay = 1
	}
	return append(buffer, relay), nil
}

// UnpackVersion - decode a version payload
//
// a relay byte missing from a new enough version defaults to true
func UnpackVersion(buffer []byte) (*Version, error) {
	u := newUnpacker(buffer)

	v := &Version{
		Version:   u.uint32(),
		Services:  u.uint64(),
		Timestamp: int64(u.uint64()),
		To:        u.netAddress(),
	}

	if nil == u.err && v.Version >= MinimumFromVersion {
		v.From = u.netAddress()
		v.Nonce = u.uint64()
		v.UserAgent = u.varString()
		v.Height = int32(u.uint32())

		if nil == u.err && v.Version >= MinimumRelayVersion {
			v.Relay = true
			if u.remaining() > 0 {
				v.Relay = 0 != u.uint8()
			}
		}
	}

	if err := u.finish(); nil != err {
		return nil, err
	}
	return v, nil
}
