// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package message

import (
	"github.com/equityledger/equity/fault"
)

// Empty - body of verack, getaddr, mempool, sendheaders and filterclear
type Empty struct{}

// Pack - no bytes
func (Empty) Pack() ([]byte, error) {
	return []byte{}, nil
}

// UnpackEmpty - any bytes present are an error
func UnpackEmpty(buffer []byte) (*Empty, error) {
	if 0 != len(buffer) {
		return nil, fault.ErrTrailingData
	}
	return &Empty{}, nil
}
