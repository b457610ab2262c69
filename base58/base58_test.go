// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package base58_test

import (
	"bytes"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/equityledger/equity/base58"
	"github.com/equityledger/equity/fault"
)

func fromHex(s string) []byte {
	b, err := hex.DecodeString(s)
	if nil != err {
		panic(err)
	}
	return b
}

var encodeTests = []struct {
	data    []byte
	encoded string
}{
	{[]byte{0x00}, "1"},
	{[]byte{0xff}, "5Q"},
	{make([]byte, 20), "1"},
	{bytes.Repeat([]byte{0xff}, 20), "4ZrjxJnU1LA5xSyrWMNuXTvSYKwt"},
	{fromHex("010966776006953d5567439e5e39f86a0d273bee"), "qb3y62fmEEVTPySXPQ77WXok6H"},
	{make([]byte, 32), "1"},
	{fromHex("a1d850845a0776e0c859644a673faf7a552e0b76eeffaa913eefb77e55e8196a"), "Btmx3Rk8vxJPaGy2XcwHfoH5gUd88cVSNUog2VgejZrH"},
	{fromHex("fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364140"), "JEKNVnkbo3jma5nREBBJCD7MJVUPAg5THBwPPejEsG9u"},
	{fromHex("000111d38e5fc9071ffcd20b4a763cc9ae4f252bb4e48fd66a835e252ada93ff480d6dd43dc62a641155a5"), "23456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"},
}

var decodeTests = []struct {
	data    []byte
	encoded string
}{
	{[]byte{0x00}, "1"},
	{[]byte{0xff}, "5Q"},
	{make([]byte, 20), "11111111111111111111"},
	{bytes.Repeat([]byte{0xff}, 20), "4ZrjxJnU1LA5xSyrWMNuXTvSYKwt"},
	{fromHex("010966776006953d5567439e5e39f86a0d273bee"), "qb3y62fmEEVTPySXPQ77WXok6H"},
	{make([]byte, 32), "11111111111111111111111111111111"},
	{fromHex("a1d850845a0776e0c859644a673faf7a552e0b76eeffaa913eefb77e55e8196a"), "Btmx3Rk8vxJPaGy2XcwHfoH5gUd88cVSNUog2VgejZrH"},
	{fromHex("000111d38e5fc9071ffcd20b4a763cc9ae4f252bb4e48fd66a835e252ada93ff480d6dd43dc62a641155a5"), "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"},
}

func TestEncode(t *testing.T) {
	for i, item := range encodeTests {
		result := base58.Encode(item.data)
		if result != item.encoded {
			t.Errorf("%d: Encode(%x) -> %q  expected: %q", i, item.data, result, item.encoded)
		}
	}
}

func TestDecode(t *testing.T) {
	for i, item := range decodeTests {
		result, err := base58.Decode(item.encoded)
		if nil != err {
			t.Errorf("%d: Decode(%q) error: %s", i, item.encoded, err)
			continue
		}
		if !bytes.Equal(result, item.data) {
			t.Errorf("%d: Decode(%q) -> %x  expected: %x", i, item.encoded, result, item.data)
		}
	}
}

func TestDecodeInvalid(t *testing.T) {
	for _, s := range []string{"0", "O", "I", "l", "0OIl", "abc0", "1+", "€"} {
		_, err := base58.Decode(s)
		assert.True(t, fault.IsErrInvalid(err), "%q: expected invalid character, got: %v", s, err)
		assert.Contains(t, err.Error(), fault.ErrInvalidCharacter.Error(), "%q: message", s)
	}

	_, err := base58.Decode("")
	assert.Equal(t, fault.ErrEmptyInput, err, "empty string")
}

func TestAlphabet(t *testing.T) {
	assert.Equal(t, 58, len(base58.Alphabet), "alphabet size")
	for _, c := range "0OIl" {
		assert.NotContains(t, base58.Alphabet, string(c), "alphabet has %q", c)
	}

	// all 58 digits decode and re-encode to themselves
	result, err := base58.Decode(base58.Alphabet[1:])
	assert.Nil(t, err, "decode alphabet")
	assert.Equal(t, base58.Alphabet[1:], base58.Encode(result), "re-encode alphabet")
}
