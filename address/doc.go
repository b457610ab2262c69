// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package address - pay to public key hash addresses and WIF private keys
//
// both are Base58Check strings whose version byte comes from the chain parameters
package address
