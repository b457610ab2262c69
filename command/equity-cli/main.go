// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli"

	"github.com/equityledger/equity/chain"
)

type metadata struct {
	chain   *chain.Params
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	app := newApp(os.Stdout, os.Stderr)

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}

func newApp(w io.Writer, e io.Writer) *cli.App {

	app := cli.NewApp()
	app.Name = "equity-cli"
	app.Usage = "encode, frame and commit to equity ledger data"
	app.Version = version
	app.HideVersion = true

	app.Writer = w
	app.ErrWriter = e

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "chain, c",
			Value: chain.Main,
			Usage: " use parameters of `CHAIN` [main|testing|local]",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "encode",
			Usage:     "Base58Check encode a version byte and hex data",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "version-byte, b",
					Value: -1,
					Usage: " version `BYTE` [default: chain's public key hash version]",
				},
				cli.StringFlag{
					Name:  "data, d",
					Value: "",
					Usage: "*hex `DATA` to encode",
				},
			},
			Action: runEncode,
		},
		{
			Name:      "decode",
			Usage:     "decode and verify a Base58Check string",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "string, s",
					Value: "",
					Usage: "*Base58Check `STRING`",
				},
			},
			Action: runDecode,
		},
		{
			Name:      "varint",
			Usage:     "encode a value or decode hex as a variable length integer",
			ArgsUsage: "\n   (one of value or hex is required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "value, n",
					Value: "",
					Usage: " unsigned `NUMBER` to encode",
				},
				cli.StringFlag{
					Name:  "hex, x",
					Value: "",
					Usage: " `HEX` bytes to decode",
				},
			},
			Action: runVarint,
		},
		{
			Name:      "frame",
			Usage:     "frame a payload with a message header for the chain",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "command, C",
					Value: "",
					Usage: "*message `COMMAND`",
				},
				cli.StringFlag{
					Name:  "payload, p",
					Value: "",
					Usage: " hex `PAYLOAD` [default: empty]",
				},
			},
			Action: runFrame,
		},
		{
			Name:      "parse",
			Usage:     "parse and decode a framed message",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "frame, f",
					Value: "",
					Usage: "*hex `FRAME` starting with the header",
				},
			},
			Action: runParse,
		},
		{
			Name:      "merkle-root",
			Usage:     "compute the merkle root of leaf digests",
			ArgsUsage: "LEAF...\n   (leaves are 32 byte wire order hex)",
			Action:    runMerkleRoot,
		},
		{
			Name:      "merkle-proof",
			Usage:     "inclusion proof for one leaf",
			ArgsUsage: "LEAF...\n   (* = required)",
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "index, i",
					Value: -1,
					Usage: "*leaf `INDEX` to prove",
				},
			},
			Action: runMerkleProof,
		},
		{
			Name:      "merkle-verify",
			Usage:     "verify an encoded inclusion proof",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "leaf, l",
					Value: "",
					Usage: "*`LEAF` digest hex",
				},
				cli.StringFlag{
					Name:  "proof, p",
					Value: "",
					Usage: "*encoded `PROOF` hex",
				},
				cli.StringFlag{
					Name:  "root, r",
					Value: "",
					Usage: "*expected `ROOT` digest hex",
				},
			},
			Action: runMerkleVerify,
		},
		{
			Name:      "address",
			Usage:     "derive an address from a public key, or check an address or private key",
			ArgsUsage: "\n   (one of publickey, address or wif is required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "publickey, p",
					Value: "",
					Usage: " hex public `KEY`",
				},
				cli.StringFlag{
					Name:  "address, a",
					Value: "",
					Usage: " Base58Check `ADDRESS` to check",
				},
				cli.StringFlag{
					Name:  "wif, w",
					Value: "",
					Usage: " private key in wallet import `FORMAT` to check",
				},
			},
			Action: runAddress,
		},
		{
			Name:  "version",
			Usage: "display equity-cli version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	app.Before = func(c *cli.Context) error {

		e := c.App.ErrWriter
		w := c.App.Writer
		verbose := c.GlobalBool("verbose")

		name := strings.ToLower(c.GlobalString("chain"))
		params, err := chain.Parameters(name)
		if nil != err {
			return fmt.Errorf("chain: %q can only be main/testing/local", name)
		}

		if verbose {
			fmt.Fprintf(e, "chain: %s  magic: 0x%08x\n", params.Name, params.Magic)
		}

		c.App.Metadata["config"] = &metadata{
			chain:   params,
			verbose: verbose,
			e:       e,
			w:       w,
		}
		return nil
	}

	return app
}
