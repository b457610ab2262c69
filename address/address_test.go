// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package address_test

import (
	"encoding/hex"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/equityledger/equity/address"
	"github.com/equityledger/equity/chain"
	"github.com/equityledger/equity/fault"
)

func fromHex(s string) []byte {
	b, err := hex.DecodeString(s)
	if nil != err {
		panic(err)
	}
	return b
}

var publicKeyTests = []struct {
	version   byte
	publicKey string
	hash      string
	address   string
}{
	{
		version:   0x00,
		publicKey: "0250863ad64a87ae8a2fe83c1af1a8403cb53f53e486d8511dad8a04887e5b2352",
		hash:      "f54a5851e9372b87810a8e60cdd2e7cfd80b6e31",
		address:   "1PMycacnJaSqwwJqjawXBErnLsZ7RkXUAs",
	},
	{
		version:   0x6f,
		publicKey: "0250863ad64a87ae8a2fe83c1af1a8403cb53f53e486d8511dad8a04887e5b2352",
		hash:      "f54a5851e9372b87810a8e60cdd2e7cfd80b6e31",
		address:   "n3svudhm7bt6j3nTT9uu1A57Cs9pKK3iXW",
	},
	{
		version:   0x00,
		publicKey: "0279be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798",
		hash:      "751e76e8199196d454941c45d1b3a323f1433bd6",
		address:   "1BgGZ9tcN4rm9KBzDn7KprQz87SZ26SAMH",
	},
	{
		version:   0x00,
		publicKey: "0479be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798483ada7726a3c4655da4fbfc0e1108a8fd17b448a68554199c47d08ffb10d4b8",
		hash:      "91b24bf9f5288532960ac687abb035127b1d28a5",
		address:   "1EHNa6Q4Jz2uvNExL497mE43ikXhwF6kZm",
	},
}

func TestFromPublicKey(t *testing.T) {
	for i, item := range publicKeyTests {
		a, err := address.FromPublicKey(item.version, fromHex(item.publicKey))
		if !assert.Nil(t, err, "%d: error", i) {
			continue
		}
		assert.Equal(t, item.hash, hex.EncodeToString(a.Hash160()), "%d: hash160", i)
		assert.Equal(t, item.address, a.String(), "%d: address", i)
		assert.Equal(t, item.version, a.Version(), "%d: version", i)

		a2, err := address.FromBase58(item.address)
		assert.Nil(t, err, "%d: decode", i)
		assert.Equal(t, a, a2, "%d: round trip", i)
	}
}

func TestFromPublicKeyErrors(t *testing.T) {
	_, err := address.FromPublicKey(0, fromHex("0550863ad64a87ae8a2fe83c1af1a8403cb53f53e486d8511dad8a04887e5b2352"))
	assert.Equal(t, fault.ErrInvalidPublicKey, err, "bad compressed prefix")

	bad := make([]byte, address.UncompressedPublicKey)
	bad[0] = 0x02
	_, err = address.FromPublicKey(0, bad)
	assert.Equal(t, fault.ErrInvalidPublicKey, err, "bad uncompressed prefix")

	_, err = address.FromPublicKey(0, make([]byte, 20))
	assert.Equal(t, fault.ErrInvalidLength, err, "wrong length")

	_, err = address.FromPublicKey(0, nil)
	assert.Equal(t, fault.ErrInvalidLength, err, "empty")
}

func TestFromHash160(t *testing.T) {
	a, err := address.FromHash160(0x05, fromHex("f54a5851e9372b87810a8e60cdd2e7cfd80b6e31"))
	assert.Nil(t, err, "from hash")
	assert.Equal(t, "3Q3zY87DrUmE371Grgc7bsDiVPqpu4mN1f", a.String(), "script address")

	main, _ := chain.Parameters(chain.Main)
	test, _ := chain.Parameters(chain.Testing)
	assert.True(t, a.IsScript(main), "script on main")
	assert.Nil(t, a.ValidFor(main), "valid on main")
	assert.Equal(t, fault.ErrUnknownAddressType, a.ValidFor(test), "not valid on testing")

	_, err = address.FromHash160(0, make([]byte, 19))
	assert.Equal(t, fault.ErrInvalidLength, err, "short hash")
}

func TestFromBase58Errors(t *testing.T) {
	_, err := address.FromBase58("1PMycacnJaSqwwJqjawXBErnLsZ7RkXUAt")
	assert.Equal(t, fault.ErrChecksumMismatch, err, "checksum")

	// valid Base58Check but a 32 byte payload
	_, err = address.FromBase58("5HueCGU8rMjxEXxiPuD5BDku4MkFqeZyd4dZ1jvhTVqvbTLvyTJ")
	assert.Equal(t, fault.ErrInvalidLength, err, "private key is not an address")

	_, err = address.FromBase58("1PMycacnJaSqwwJqjawXBErnLsZ7RkXUA0")
	assert.True(t, fault.IsErrInvalid(err), "invalid character")
}

func TestAddressJSON(t *testing.T) {
	a, _ := address.FromBase58("1PMycacnJaSqwwJqjawXBErnLsZ7RkXUAs")

	b, err := json.Marshal(a)
	assert.Nil(t, err, "marshal")
	assert.Equal(t, `"1PMycacnJaSqwwJqjawXBErnLsZ7RkXUAs"`, string(b), "json")

	var a2 address.Address
	err = json.Unmarshal(b, &a2)
	assert.Nil(t, err, "unmarshal")
	assert.Equal(t, *a, a2, "round trip")

	err = json.Unmarshal([]byte(`"1PMycacnJaSqwwJqjawXBErnLsZ7RkXUAt"`), &a2)
	assert.Equal(t, fault.ErrChecksumMismatch, err, "bad json")
}
