// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/equityledger/equity/chain"
	"github.com/equityledger/equity/configuration"
	"github.com/equityledger/equity/fault"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "config", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
		{Long: "chain", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'n'},
		{Long: "maximum", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'm'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		exitwithstatus.Message("%s: version: %s", program, version)
	}

	if len(options["help"]) > 0 || 1 != len(arguments) {
		exitwithstatus.Message("usage: %s [--help] [--config=FILE] [--chain=NAME] [--maximum=BYTES] FILE|-", program)
	}

	var conf *configuration.Configuration
	switch len(options["config"]) {
	case 0:
		conf = configuration.Default()
		conf.Logging.Directory = os.TempDir()
	case 1:
		conf, err = configuration.GetConfiguration(options["config"][0])
		if nil != err {
			exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, options["config"][0], err)
		}
	default:
		exitwithstatus.Message("%s: only one config option is allowed, %d were detected", program, len(options["config"]))
	}

	if len(options["chain"]) > 0 {
		conf.Chain = strings.ToLower(options["chain"][0])
	}
	params, err := chain.Parameters(conf.Chain)
	if nil != err {
		exitwithstatus.Message("%s: chain: %q  error: %s", program, conf.Chain, err)
	}

	if len(options["maximum"]) > 0 {
		n, err := strconv.ParseUint(options["maximum"][0], 0, 32)
		if nil != err {
			exitwithstatus.Message("%s: maximum: %q  error: %s", program, options["maximum"][0], err)
		}
		conf.MaximumPayload = uint32(n)
	}

	// start logging
	if err = logger.Initialise(conf.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	if err = fault.Initialise(); nil != err {
		exitwithstatus.Message("%s: panic channel setup failed with error: %s", program, err)
	}
	defer fault.Finalise()

	log := logger.New("main")
	log.Infof("version: %s", version)
	log.Infof("chain: %s  maximum payload: %d", params.Name, conf.MaximumPayload)

	var input io.Reader
	fileName := arguments[0]
	if "-" == fileName {
		input = os.Stdin
	} else {
		f, err := os.Open(fileName)
		if nil != err {
			exitwithstatus.Message("%s: open: %q  error: %s", program, fileName, err)
		}
		defer f.Close()
		input = f
	}

	count, err := dump(os.Stdout, input, params, conf.MaximumPayload)
	log.Infof("messages: %d", count)
	if nil != err {
		log.Errorf("stopped with error: %s", err)
		exitwithstatus.Message("%s: after %d messages  error: %s", program, count, err)
	}
}
