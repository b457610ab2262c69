// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/equityledger/equity/digest"
	"github.com/equityledger/equity/fault"
)

// non-blank hex string, an optional 0x prefix is ignored
func checkHex(s string, required error) ([]byte, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "0x")
	if "" == s {
		return nil, required
	}
	return hex.DecodeString(s)
}

// 32 byte digest in wire order hex
func checkDigest(s string, required error) (digest.Digest, error) {
	var d digest.Digest
	s = strings.TrimSpace(s)
	if "" == s {
		return d, required
	}
	err := d.UnmarshalText([]byte(s))
	return d, err
}

// leaf digests from the command line arguments
func digestsFromArguments(arguments []string) ([]digest.Digest, error) {
	if 0 == len(arguments) {
		return nil, fault.ErrEmptyTree
	}
	leaves := make([]digest.Digest, len(arguments))
	for i, a := range arguments {
		err := leaves[i].UnmarshalText([]byte(strings.TrimSpace(a)))
		if nil != err {
			return nil, fmt.Errorf("leaf[%d]: %w", i, err)
		}
	}
	return leaves, nil
}
