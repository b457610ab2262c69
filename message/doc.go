// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package message - peer to peer message framing
//
// every message is a 24 byte header followed by its payload:
//
//   magic     uint32 little endian network identifier
//   command   12 bytes ASCII, NUL padded
//   length    uint32 little endian payload size
//   checksum  first 4 bytes of SHA256(SHA256(payload)) as little endian uint32
//
// payload bodies are decoded separately from framing, see Decode
//
//go:generate mockgen -source=dispatch.go -destination=mocks/handler.go -package=mocks
package message
