// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package merkle - commitment tree over an ordered list of digests
//
// parents are the double SHA-256 of the concatenated children and
// the last node of an odd sized level is paired with itself, so the
// roots match those found in Bitcoin block headers
package merkle
