// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chain

import (
	"github.com/equityledger/equity/fault"
)

// names of all chains
const (
	Main    = "main"
	Testing = "testing"
	Local   = "local"
)

// Params - per network constants
type Params struct {
	Name        string `json:"name"`
	Magic       uint32 `json:"magic"`
	DefaultPort uint16 `json:"defaultPort"`
	PubKeyHash  byte   `json:"pubKeyHash"` // address version byte
	ScriptHash  byte   `json:"scriptHash"` // script address version byte
	PrivateKey  byte   `json:"privateKey"` // WIF version byte
}

var parameters = map[string]Params{
	Main: {
		Name:        Main,
		Magic:       0xd9b4bef9,
		DefaultPort: 8333,
		PubKeyHash:  0x00,
		ScriptHash:  0x05,
		PrivateKey:  0x80,
	},
	Testing: {
		Name:        Testing,
		Magic:       0x0709110b,
		DefaultPort: 18333,
		PubKeyHash:  0x6f,
		ScriptHash:  0xc4,
		PrivateKey:  0xef,
	},
	Local: {
		Name:        Local,
		Magic:       0xdab5bffa,
		DefaultPort: 18444,
		PubKeyHash:  0x6f,
		ScriptHash:  0xc4,
		PrivateKey:  0xef,
	},
}

// Valid - validate a chain name
func Valid(name string) bool {
	switch name {
	case Main, Testing, Local:
		return true
	default:
		return false
	}
}

// Parameters - constants for a named chain
func Parameters(name string) (*Params, error) {
	p, ok := parameters[name]
	if !ok {
		return nil, fault.ErrInvalidChain
	}
	return &p, nil
}
