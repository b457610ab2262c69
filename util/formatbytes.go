// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"fmt"
	"strings"
)

// bytes on each line of the dump
const formatBytesPerLine = 8

// FormatBytes - dump data as a Go byte slice literal, for pasting
// into tests or for verbose command output
func FormatBytes(name string, data []byte) string {
	var s strings.Builder
	s.WriteString(name)
	s.WriteString(" := []byte{")
	for i, b := range data {
		if 0 == i%formatBytesPerLine {
			s.WriteString("\n\t")
		} else {
			s.WriteString(" ")
		}
		fmt.Fprintf(&s, "0x%02x,", b)
	}
	if len(data) > 0 {
		s.WriteString("\n")
	}
	s.WriteString("}")
	return s.String()
}
