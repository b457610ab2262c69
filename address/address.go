// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package address

import (
	"encoding/hex"

	"golang.org/x/crypto/ripemd160"

	"github.com/equityledger/equity/base58"
	"github.com/equityledger/equity/chain"
	"github.com/equityledger/equity/digest"
	"github.com/equityledger/equity/fault"
)

// byte sizes of keys and hashes
const (
	Hash160Length         = ripemd160.Size
	CompressedPublicKey   = 33
	UncompressedPublicKey = 65
	compressedEvenPrefix  = 0x02
	compressedOddPrefix   = 0x03
	uncompressedKeyPrefix = 0x04
)

// Address - a version byte and a 20 byte hash
type Address struct {
	version byte
	hash    [Hash160Length]byte
}

// Hash160 - RIPEMD160(SHA256(data))
func Hash160(data []byte) [Hash160Length]byte {
	s := digest.SingleSum(data)
	h := ripemd160.New()
	h.Write(s[:])

	var result [Hash160Length]byte
	copy(result[:], h.Sum(nil))
	return result
}

// FromPublicKey - pay to public key hash address for a serialised public key
func FromPublicKey(version byte, publicKey []byte) (*Address, error) {
	switch len(publicKey) {
	case CompressedPublicKey:
		if compressedEvenPrefix != publicKey[0] && compressedOddPrefix != publicKey[0] {
			return nil, fault.ErrInvalidPublicKey
		}
	case UncompressedPublicKey:
		if uncompressedKeyPrefix != publicKey[0] {
			return nil, fault.ErrInvalidPublicKey
		}
	default:
		return nil, fault.ErrInvalidLength
	}
	return &Address{
		version: version,
		hash:    Hash160(publicKey),
	}, nil
}

// FromHash160 - address from an existing 20 byte hash
func FromHash160(version byte, hash []byte) (*Address, error) {
	if Hash160Length != len(hash) {
		return nil, fault.ErrInvalidLength
	}
	a := &Address{
		version: version,
	}
	copy(a.hash[:], hash)
	return a, nil
}

// FromBase58 - decode and validate an address string
func FromBase58(s string) (*Address, error) {
	p, err := base58.CheckDecode(s)
	if nil != err {
		return nil, err
	}
	return FromHash160(p.Version, p.Data)
}

// Version - the version byte
func (a Address) Version() byte {
	return a.version
}

// Hash160 - the 20 byte hash
func (a Address) Hash160() []byte {
	return append([]byte(nil), a.hash[:]...)
}

// IsScript - true for a pay to script hash address of the chain
func (a Address) IsScript(p *chain.Params) bool {
	return a.version == p.ScriptHash
}

// ValidFor - check that the version byte belongs to the chain
func (a Address) ValidFor(p *chain.Params) error {
	if a.version != p.PubKeyHash && a.version != p.ScriptHash {
		return fault.ErrUnknownAddressType
	}
	return nil
}

// String - Base58Check form
func (a Address) String() string {
	return base58.CheckEncode(a.version, a.hash[:])
}

// GoString - for the %#v format
func (a Address) GoString() string {
	return "<address:" + hex.EncodeToString([]byte{a.version}) + ":" + hex.EncodeToString(a.hash[:]) + ">"
}

// MarshalText - Base58Check string for JSON
func (a Address) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText - Base58Check string from JSON
func (a *Address) UnmarshalText(s []byte) error {
	decoded, err := FromBase58(string(s))
	if nil != err {
		return err
	}
	*a = *decoded
	return nil
}
