// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package base58 - Bitcoin base58 and Base58Check text encodings
//
// the characters 0, O, I and l never appear; Base58Check strings carry a
// version byte and a four byte checksum so that typing errors are
// detected on decode
package base58
