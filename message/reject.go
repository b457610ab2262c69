// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package message

import (
	"encoding/hex"
	"encoding/json"

	"github.com/equityledger/equity/util"
)

// reject codes
const (
	RejectMalformed       = 0x01
	RejectInvalid         = 0x10
	RejectObsolete        = 0x11
	RejectDuplicate       = 0x12
	RejectNonstandard     = 0x40
	RejectDust            = 0x41
	RejectInsufficientFee = 0x42
	RejectCheckpoint      = 0x43
)

// Reject - a peer refused a message
//
// Data is whatever follows the reason, usually the hash of the rejected object
type Reject struct {
	Message string
	Code    byte
	Reason  string
	Data    []byte
}

// Pack - message and reason are var strings
func (r *Reject) Pack() ([]byte, error) {
	buffer := util.ToVarString(r.Message)
	buffer = append(buffer, r.Code)
	buffer = append(buffer, util.ToVarString(r.Reason)...)
	return append(buffer, r.Data...), nil
}

// UnpackReject - decode a reject payload
func UnpackReject(buffer []byte) (*Reject, error) {
	u := newUnpacker(buffer)
	r := &Reject{
		Message: u.varString(),
		Code:    u.uint8(),
		Reason:  u.varString(),
	}
	r.Data = u.rest()
	if err := u.finish(); nil != err {
		return nil, err
	}
	return r, nil
}

// MarshalJSON - data as hex
func (r Reject) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Message string `json:"message"`
		Code    byte   `json:"code"`
		Reason  string `json:"reason"`
		Data    string `json:"data"`
	}{
		Message: r.Message,
		Code:    r.Code,
		Reason:  r.Reason,
		Data:    hex.EncodeToString(r.Data),
	})
}
