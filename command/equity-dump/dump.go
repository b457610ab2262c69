// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/bitmark-inc/logger"

	"github.com/equityledger/equity/chain"
	"github.com/equityledger/equity/fault"
	"github.com/equityledger/equity/message"
)

// one line of output per message
type record struct {
	Sequence int          `json:"sequence"`
	Command  string       `json:"command"`
	Length   uint32       `json:"length"`
	Checksum uint32       `json:"checksum"`
	Body     message.Body `json:"body"`
}

// printer - default handler writing each message as a JSON line
type printer struct {
	w        io.Writer
	sequence int
}

func (p *printer) Handle(header *message.Header, body message.Body) error {
	r := record{
		Sequence: p.sequence,
		Command:  header.Command,
		Length:   header.Length,
		Checksum: header.Checksum,
		Body:     body,
	}
	p.sequence += 1

	b, err := json.Marshal(r)
	if nil != err {
		return err
	}
	_, err = fmt.Fprintf(p.w, "%s\n", b)
	return err
}

// dump - read frames until end of input and print each one
//
// commands outside the registry are printed as raw payload hex
// returns the number of messages printed
func dump(w io.Writer, r io.Reader, params *chain.Params, maximumPayload uint32) (int, error) {

	p := &printer{w: w}

	dispatcher := message.NewDispatcher(logger.New("dispatcher"))
	dispatcher.RegisterDefault(p)

	reader := message.NewReader(logger.New("reader"), r, params.Magic, maximumPayload)
	for {
		header, payload, err := reader.ReadMessage()
		if io.EOF == err {
			return p.sequence, nil
		}
		if nil != err {
			return p.sequence, err
		}

		err = dispatcher.Dispatch(header, payload)
		if fault.ErrUnknownCommand == err {
			err = p.Handle(header, message.Raw(payload))
		}
		if nil != err {
			return p.sequence, err
		}
	}
}
