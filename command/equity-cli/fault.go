// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/equityledger/equity/fault"
)

// command errors - keep in alphabetic order
const (
	ErrConflictingOptions = fault.InvalidError("only one of the options may be given")
	ErrInvalidVersionByte = fault.InvalidError("version byte must be 0..255")
	ErrRequiredCommand    = fault.InvalidError("command is required")
	ErrRequiredData       = fault.InvalidError("data is required")
	ErrRequiredFrame      = fault.InvalidError("frame is required")
	ErrRequiredIndex      = fault.InvalidError("leaf index is required")
	ErrRequiredLeaf       = fault.InvalidError("leaf digest is required")
	ErrRequiredProof      = fault.InvalidError("proof is required")
	ErrRequiredRoot       = fault.InvalidError("root digest is required")
	ErrRequiredString     = fault.InvalidError("Base58Check string is required")
)
