// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"fmt"

	"github.com/urfave/cli"

	"github.com/equityledger/equity/address"
	"github.com/equityledger/equity/fault"
)

type addressResult struct {
	Address *address.Address `json:"address"`
	Hash160 string           `json:"hash160"`
	Version byte             `json:"version"`
	Script  bool             `json:"script"`
}

func runAddress(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	publicKey := c.String("publickey")
	base58Address := c.String("address")
	wif := c.String("wif")

	given := 0
	for _, s := range []string{publicKey, base58Address, wif} {
		if "" != s {
			given += 1
		}
	}
	switch given {
	case 0:
		return fault.ErrMissingParameters
	case 1:
	default:
		return ErrConflictingOptions
	}

	if "" != wif {
		return checkPrivateKey(m, wif)
	}

	var a *address.Address
	if "" != publicKey {
		key, err := checkHex(publicKey, fault.ErrMissingParameters)
		if nil != err {
			return err
		}
		if m.verbose {
			fmt.Fprintf(m.e, "publicKey: %x\n", key)
		}
		a, err = address.FromPublicKey(m.chain.PubKeyHash, key)
		if nil != err {
			return err
		}
	} else {
		var err error
		a, err = address.FromBase58(base58Address)
		if nil != err {
			return err
		}
		err = a.ValidFor(m.chain)
		if nil != err {
			return err
		}
	}

	result := addressResult{
		Address: a,
		Hash160: hex.EncodeToString(a.Hash160()),
		Version: a.Version(),
		Script:  a.IsScript(m.chain),
	}
	return printJson(m.w, result)
}

// the private key itself is never printed
func checkPrivateKey(m *metadata, wif string) error {
	key, err := address.PrivateKeyFromWIF(wif)
	if nil != err {
		return err
	}
	if key.Version != m.chain.PrivateKey {
		return fault.ErrUnknownAddressType
	}

	if m.verbose {
		fmt.Fprintf(m.e, "version: 0x%02x  compressed: %t\n", key.Version, key.Compressed)
	}

	result := struct {
		Version    byte `json:"version"`
		Compressed bool `json:"compressed"`
		Valid      bool `json:"valid"`
	}{
		Version:    key.Version,
		Compressed: key.Compressed,
		Valid:      true,
	}
	return printJson(m.w, result)
}
