// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package base58

import (
	"bytes"
	"fmt"
	"strings"

	mrbase58 "github.com/mr-tron/base58"

	"github.com/equityledger/equity/fault"
)

// Alphabet - the Bitcoin base58 digits in ascending value
const Alphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

// digit with zero value, also used for each leading zero byte
const zeroDigit = '1'

// Encode - base58 of the big endian integer held in input
//
// only the magnitude is encoded: leading zero bytes are not
// preserved, so any all zero input encodes as "1"
func Encode(input []byte) string {
	trimmed := bytes.TrimLeft(input, "\x00")
	if 0 == len(trimmed) {
		return string(zeroDigit)
	}
	return mrbase58.Encode(trimmed)
}

// Decode - convert a base58 string to bytes
//
// each leading '1' becomes a zero byte followed by the minimal big
// endian representation of the remaining digits
func Decode(s string) ([]byte, error) {
	if err := validate(s); nil != err {
		return nil, err
	}
	return decode(s)
}

// encode with one '1' per leading zero byte of input
func encodeWithZeros(input []byte) string {
	zeros := 0
	for zeros < len(input) && 0 == input[zeros] {
		zeros += 1
	}
	if zeros == len(input) {
		return strings.Repeat(string(zeroDigit), zeros)
	}
	return strings.Repeat(string(zeroDigit), zeros) + mrbase58.Encode(input[zeros:])
}

// decode an already validated string
func decode(s string) ([]byte, error) {
	zeros := 0
	for zeros < len(s) && zeroDigit == s[zeros] {
		zeros += 1
	}

	result := make([]byte, zeros, len(s))
	if zeros == len(s) {
		return result, nil
	}

	magnitude, err := mrbase58.Decode(s[zeros:])
	if nil != err {
		return nil, fmt.Errorf("%w: %s", fault.ErrInvalidCharacter, err)
	}
	return append(result, bytes.TrimLeft(magnitude, "\x00")...), nil
}

// check that every character is a base58 digit
func validate(s string) error {
	if 0 == len(s) {
		return fault.ErrEmptyInput
	}
	for i, c := range s {
		if !strings.ContainsRune(Alphabet, c) {
			return fmt.Errorf("%w: %q at position %d", fault.ErrInvalidCharacter, c, i)
		}
	}
	return nil
}
