// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package address

import (
	"github.com/equityledger/equity/base58"
	"github.com/equityledger/equity/fault"
)

// PrivateKeyLength - bytes in a secp256k1 secret
const PrivateKeyLength = 32

// suffix marking a key whose public key is used in compressed form
const compressedSuffix = 0x01

// PrivateKey - secret with its network and public key form
type PrivateKey struct {
	Version    byte
	Key        [PrivateKeyLength]byte
	Compressed bool
}

// ToWIF - wallet import format
//
//   uncompressed: Base58Check(version, key)
//   compressed:   Base58Check(version, key | 0x01)
func (k *PrivateKey) ToWIF() string {
	data := make([]byte, 0, PrivateKeyLength+1)
	data = append(data, k.Key[:]...)
	if k.Compressed {
		data = append(data, compressedSuffix)
	}
	return base58.CheckEncode(k.Version, data)
}

// PrivateKeyFromWIF - decode a wallet import format string
func PrivateKeyFromWIF(s string) (*PrivateKey, error) {
	p, err := base58.CheckDecode(s)
	if nil != err {
		return nil, err
	}

	k := &PrivateKey{
		Version: p.Version,
	}

	switch len(p.Data) {
	case PrivateKeyLength:
	case PrivateKeyLength + 1:
		if compressedSuffix != p.Data[PrivateKeyLength] {
			return nil, fault.ErrInvalidPrivateKey
		}
		k.Compressed = true
	default:
		return nil, fault.ErrInvalidLength
	}

	copy(k.Key[:], p.Data)
	return k, nil
}

// String - WIF, so a key never prints as raw hex
func (k PrivateKey) String() string {
	return k.ToWIF()
}
