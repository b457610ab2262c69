// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"fmt"
	"strconv"

	"github.com/urfave/cli"

	"github.com/equityledger/equity/fault"
	"github.com/equityledger/equity/util"
)

func runVarint(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	value := c.String("value")
	hexBytes := c.String("hex")

	result := struct {
		Value  uint64 `json:"value,string"`
		Hex    string `json:"hex"`
		Length int    `json:"length"`
	}{}

	switch {
	case "" != value && "" != hexBytes:
		return ErrConflictingOptions

	case "" != value:
		n, err := strconv.ParseUint(value, 0, 64)
		if nil != err {
			return err
		}
		buffer := util.ToVarint(n)
		result.Value = n
		result.Hex = hex.EncodeToString(buffer)
		result.Length = len(buffer)

	case "" != hexBytes:
		buffer, err := checkHex(hexBytes, fault.ErrMissingParameters)
		if nil != err {
			return err
		}
		n, length, err := util.FromVarint(buffer)
		if nil != err {
			return err
		}
		if m.verbose && length < len(buffer) {
			fmt.Fprintf(m.e, "ignoring %d trailing bytes\n", len(buffer)-length)
		}
		result.Value = n
		result.Hex = hex.EncodeToString(buffer[:length])
		result.Length = length

	default:
		return fault.ErrMissingParameters
	}

	return printJson(m.w, result)
}
