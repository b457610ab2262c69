// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"fmt"

	"github.com/urfave/cli"

	"github.com/equityledger/equity/base58"
)

type checkedResult struct {
	Version byte   `json:"version"`
	Data    string `json:"data"`
	Base58  string `json:"base58"`
}

func runEncode(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	data, err := checkHex(c.String("data"), ErrRequiredData)
	if nil != err {
		return err
	}

	version := int(m.chain.PubKeyHash)
	if n := c.Int("version-byte"); n >= 0 {
		version = n
	}
	if version > 255 {
		return ErrInvalidVersionByte
	}

	if m.verbose {
		fmt.Fprintf(m.e, "version: 0x%02x  data: %d bytes\n", version, len(data))
	}

	result := checkedResult{
		Version: byte(version),
		Data:    hex.EncodeToString(data),
		Base58:  base58.CheckEncode(byte(version), data),
	}
	return printJson(m.w, result)
}

func runDecode(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	s := c.String("string")
	if "" == s {
		return ErrRequiredString
	}

	p, err := base58.CheckDecode(s)
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "version: 0x%02x  data: %d bytes\n", p.Version, len(p.Data))
	}

	result := checkedResult{
		Version: p.Version,
		Data:    hex.EncodeToString(p.Data),
		Base58:  s,
	}
	return printJson(m.w, result)
}
