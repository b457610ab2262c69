// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/equityledger/equity/chain"
	"github.com/equityledger/equity/fault"
	"github.com/equityledger/equity/message"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "." // same directory as the configuration file

	defaultLogDirectory = "log"
	defaultLogFile      = "equity.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// LoglevelMap - to hold log levels
type LoglevelMap map[string]string

// Configuration - contents of the Lua configuration file
type Configuration struct {
	DataDirectory  string               `gluamapper:"data_directory" json:"data_directory"`
	Chain          string               `gluamapper:"chain" json:"chain"`
	MaximumPayload uint32               `gluamapper:"maximum_payload" json:"maximum_payload"`
	Logging        logger.Configuration `gluamapper:"logging" json:"logging"`
}

// Default - configuration used when no file is given
func Default() *Configuration {
	return &Configuration{
		DataDirectory:  defaultDataDirectory,
		Chain:          chain.Main,
		MaximumPayload: message.DefaultMaximumPayload,
		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels: LoglevelMap{
				"main":            "info",
				logger.DefaultTag: "critical",
			},
		},
	}
}

// GetConfiguration - read, decode and verify the configuration
func GetConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := Default()

	if err := ParseConfigurationFile(configurationFileName, options); nil != err {
		return nil, err
	}

	if err := options.resolve(dataDirectory); nil != err {
		return nil, err
	}

	return options, nil
}

// check values and expand all paths relative to the data directory
func (options *Configuration) resolve(baseDirectory string) error {

	options.Chain = strings.ToLower(options.Chain)
	if !chain.Valid(options.Chain) {
		return fmt.Errorf("%w: %q", fault.ErrInvalidChain, options.Chain)
	}

	if 0 == options.MaximumPayload {
		options.MaximumPayload = message.DefaultMaximumPayload
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return fmt.Errorf("path: %q is not a valid directory", options.DataDirectory)
	} else if "." == options.DataDirectory {
		options.DataDirectory = baseDirectory // same directory as the configuration file
	} else {
		options.DataDirectory = ensureAbsolute(baseDirectory, options.DataDirectory)
	}

	// this directory must exist - i.e. must be created prior to running
	if fileInfo, err := os.Stat(options.DataDirectory); nil != err {
		return err
	} else if !fileInfo.IsDir() {
		return fmt.Errorf("path: %q is not a directory", options.DataDirectory)
	}

	options.Logging.Directory = ensureAbsolute(options.DataDirectory, options.Logging.Directory)

	// log file must be a plain name within the log directory
	switch filepath.Dir(options.Logging.File) {
	case "", ".":
	default:
		return fmt.Errorf("file: %q is not plain name", options.Logging.File)
	}

	if err := os.MkdirAll(options.Logging.Directory, 0700); nil != err {
		return err
	}

	return nil
}

// ensure the path is absolute
func ensureAbsolute(directory string, filePath string) string {
	if !filepath.IsAbs(filePath) {
		filePath = filepath.Join(directory, filePath)
	}
	return filepath.Clean(filePath)
}
