// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"fmt"

	"github.com/urfave/cli"

	"github.com/equityledger/equity/fault"
	"github.com/equityledger/equity/message"
	"github.com/equityledger/equity/util"
)

func runFrame(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	command := c.String("command")
	if "" == command {
		return ErrRequiredCommand
	}

	payload := []byte{}
	if s := c.String("payload"); "" != s {
		p, err := checkHex(s, ErrRequiredData)
		if nil != err {
			return err
		}
		payload = p
	}

	if !message.IsKnown(command) && m.verbose {
		fmt.Fprintf(m.e, "warning: %q is not a known command\n", command)
	}

	frame, err := message.Frame(m.chain.Magic, command, payload)
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "%s\n", util.FormatBytes("frame", frame))
	}

	header, err := message.UnpackHeader(frame)
	if nil != err {
		return err
	}

	result := struct {
		Header *message.Header `json:"header"`
		Frame  string          `json:"frame"`
	}{
		Header: header,
		Frame:  hex.EncodeToString(frame),
	}
	return printJson(m.w, result)
}

func runParse(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	buffer, err := checkHex(c.String("frame"), ErrRequiredFrame)
	if nil != err {
		return err
	}

	header, payload, consumed, err := message.Parse(buffer)
	if nil != err {
		return err
	}
	if header.Magic != m.chain.Magic {
		return fault.ErrWrongNetwork
	}

	if m.verbose {
		fmt.Fprintf(m.e, "%s\n", util.FormatBytes("payload", payload))
		if consumed < len(buffer) {
			fmt.Fprintf(m.e, "%d bytes follow the frame\n", len(buffer)-consumed)
		}
	}

	body, err := message.Decode(header.Command, payload)
	if nil != err {
		if fault.ErrUnknownCommand != err {
			return err
		}
		body = message.Raw(payload)
	}

	result := struct {
		Header   *message.Header `json:"header"`
		Body     message.Body    `json:"body"`
		Consumed int             `json:"consumed"`
	}{
		Header:   header,
		Body:     body,
		Consumed: consumed,
	}
	return printJson(m.w, result)
}
