// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package message

import (
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/equityledger/equity/fault"
)

// Handler - receiver for decoded messages
type Handler interface {
	Handle(header *Header, body Body) error
}

// HandlerFunc - adapt an ordinary function to a Handler
type HandlerFunc func(header *Header, body Body) error

// Handle - call f(header, body)
func (f HandlerFunc) Handle(header *Header, body Body) error {
	return f(header, body)
}

// Dispatcher - route decoded messages to per-command handlers
type Dispatcher struct {
	sync.RWMutex
	log            *logger.L
	handlers       map[Command]Handler
	defaultHandler Handler
}

// NewDispatcher - create an empty dispatcher
func NewDispatcher(log *logger.L) *Dispatcher {
	return &Dispatcher{
		log:      log,
		handlers: make(map[Command]Handler),
	}
}

// Register - set the handler for one command, replacing any previous one
func (d *Dispatcher) Register(command Command, handler Handler) error {
	if !IsKnown(command) {
		return fault.ErrUnknownCommand
	}
	d.Lock()
	d.handlers[command] = handler
	d.Unlock()
	return nil
}

// RegisterDefault - handler for any known command without its own handler
func (d *Dispatcher) RegisterDefault(handler Handler) {
	d.Lock()
	d.defaultHandler = handler
	d.Unlock()
}

// Dispatch - decode a payload and pass it to the command's handler
func (d *Dispatcher) Dispatch(header *Header, payload []byte) error {
	d.RLock()
	handler, ok := d.handlers[header.Command]
	if !ok {
		handler = d.defaultHandler
	}
	d.RUnlock()

	if nil == handler {
		d.log.Warnf("no handler for command: %q", header.Command)
		return fault.ErrUnknownCommand
	}

	body, err := Decode(header.Command, payload)
	if nil != err {
		d.log.Errorf("command: %q  decode error: %s", header.Command, err)
		return err
	}

	d.log.Debugf("dispatch command: %q  length: %d", header.Command, header.Length)

	return handler.Handle(header, body)
}
