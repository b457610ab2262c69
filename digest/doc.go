// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package digest - the 32 byte hash used throughout the wire format
//
// a digest is the double SHA-256 of some data; its first four bytes
// are the checksum used by Base58Check strings and message headers
package digest
