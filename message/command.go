// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package message

// Command - ASCII message type carried in the header
type Command = string

// recognised commands
const (
	CommandAddr        Command = "addr"
	CommandAlert       Command = "alert"
	CommandBlock       Command = "block"
	CommandCheckOrder  Command = "checkorder"
	CommandFilterAdd   Command = "filteradd"
	CommandFilterClear Command = "filterclear"
	CommandFilterLoad  Command = "filterload"
	CommandGetAddr     Command = "getaddr"
	CommandGetBlocks   Command = "getblocks"
	CommandGetData     Command = "getdata"
	CommandGetHeaders  Command = "getheaders"
	CommandHeaders     Command = "headers"
	CommandInv         Command = "inv"
	CommandMempool     Command = "mempool"
	CommandMerkleBlock Command = "merkleblock"
	CommandNotFound    Command = "notfound"
	CommandPing        Command = "ping"
	CommandPong        Command = "pong"
	CommandReject      Command = "reject"
	CommandSendHeaders Command = "sendheaders"
	CommandSubmitOrder Command = "submitorder"
	CommandTx          Command = "tx"
	CommandVerAck      Command = "verack"
	CommandVersion     Command = "version"
)

var knownCommands = map[Command]struct{}{
	CommandAddr:        {},
	CommandAlert:       {},
	CommandBlock:       {},
	CommandCheckOrder:  {},
	CommandFilterAdd:   {},
	CommandFilterClear: {},
	CommandFilterLoad:  {},
	CommandGetAddr:     {},
	CommandGetBlocks:   {},
	CommandGetData:     {},
	CommandGetHeaders:  {},
	CommandHeaders:     {},
	CommandInv:         {},
	CommandMempool:     {},
	CommandMerkleBlock: {},
	CommandNotFound:    {},
	CommandPing:        {},
	CommandPong:        {},
	CommandReject:      {},
	CommandSendHeaders: {},
	CommandSubmitOrder: {},
	CommandTx:          {},
	CommandVerAck:      {},
	CommandVersion:     {},
}

// IsKnown - true for any command in the protocol's vocabulary
func IsKnown(command string) bool {
	_, ok := knownCommands[command]
	return ok
}

// Commands - list of all known commands in sorted order
func Commands() []Command {
	return []Command{
		CommandAddr, CommandAlert, CommandBlock, CommandCheckOrder,
		CommandFilterAdd, CommandFilterClear, CommandFilterLoad,
		CommandGetAddr, CommandGetBlocks, CommandGetData, CommandGetHeaders,
		CommandHeaders, CommandInv, CommandMempool, CommandMerkleBlock,
		CommandNotFound, CommandPing, CommandPong, CommandReject,
		CommandSendHeaders, CommandSubmitOrder, CommandTx, CommandVerAck,
		CommandVersion,
	}
}
