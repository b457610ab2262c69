// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package configuration - parse a Lua configuration file
//
// most of base Lua is available such as reading files to set key data
// and getenv to extract environment supplied items.
//
// the file must end by returning a table, e.g.
//
//   local M = {}
//   M.data_directory = "."
//   M.chain = "testing"
//   M.maximum_payload = 1048576
//   M.logging = { size = 1048576, count = 10, levels = { DEFAULT = "info" } }
//   return M
package configuration
