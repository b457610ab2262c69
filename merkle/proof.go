// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package merkle

import (
	"encoding/hex"
	"math"

	"github.com/equityledger/equity/digest"
	"github.com/equityledger/equity/fault"
	"github.com/equityledger/equity/util"
)

// MaximumProofLength - more siblings than this cannot come from a real tree
const MaximumProofLength = 64

// Side - position of a sibling relative to the node being proved
type Side byte

// sibling positions
const (
	Left  Side = iota // sibling is hashed first
	Right             // sibling is hashed second
)

// Sibling - one step of a proof
type Sibling struct {
	Digest digest.Digest `json:"digest"`
	Side   Side          `json:"side"`
}

// Proof - the path of siblings from a leaf up to the root
type Proof struct {
	LeafIndex int       `json:"leafIndex"`
	Siblings  []Sibling `json:"siblings"`
}

// String - for the fmt package
func (side Side) String() string {
	switch side {
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// MarshalText - side as a JSON string
func (side Side) MarshalText() ([]byte, error) {
	switch side {
	case Left, Right:
		return []byte(side.String()), nil
	default:
		return nil, fault.ErrInvalidLength
	}
}

// UnmarshalText - side from a JSON string
func (side *Side) UnmarshalText(s []byte) error {
	switch string(s) {
	case "left":
		*side = Left
	case "right":
		*side = Right
	default:
		return fault.ErrInvalidLength
	}
	return nil
}

// Proof - siblings needed to recompute the root from one leaf
//
// the last node of an odd level is its own sibling
func (tree *Tree) Proof(leafIndex int) (*Proof, error) {
	if leafIndex < 0 || leafIndex >= tree.LeafCount() {
		return nil, fault.ErrIndexOutOfRange
	}

	siblings := make([]Sibling, 0, tree.Depth())
	i := leafIndex
	for _, level := range tree.levels[:len(tree.levels)-1] {
		s := i ^ 1
		if s >= len(level) {
			s = i
		}
		side := Right
		if s < i {
			side = Left
		}
		siblings = append(siblings, Sibling{
			Digest: level[s],
			Side:   side,
		})
		i /= 2
	}

	return &Proof{
		LeafIndex: leafIndex,
		Siblings:  siblings,
	}, nil
}

// Root - fold the siblings over a leaf to get the implied root
func (proof *Proof) Root(leaf digest.Digest) digest.Digest {
	current := leaf
	for _, s := range proof.Siblings {
		if Left == s.Side {
			current = Combine(s.Digest, current)
		} else {
			current = Combine(current, s.Digest)
		}
	}
	return current
}

// Verify - check that leaf and proof reproduce the expected root
//
// a failed proof is an ordinary result, not an error
func Verify(leaf digest.Digest, proof *Proof, expectedRoot digest.Digest) bool {
	if nil == proof {
		return false
	}
	return proof.Root(leaf) == expectedRoot
}

// MarshalBinary - serialise a proof
//
// Structure:
//   varint      leaf index
//   varint      sibling count (n)
//   n * 32      sibling digests
//   (n+7)/8     side bits, bit i%8 of byte i/8 set for a left sibling
func (proof *Proof) MarshalBinary() ([]byte, error) {
	if proof.LeafIndex < 0 {
		return nil, fault.ErrIndexOutOfRange
	}
	count := len(proof.Siblings)
	if count > MaximumProofLength {
		return nil, fault.ErrCountOutOfRange
	}

	sides := make([]byte, (count+7)/8)
	buffer := util.ToVarint(uint64(proof.LeafIndex))
	buffer = append(buffer, util.ToVarint(uint64(count))...)
	for i, s := range proof.Siblings {
		buffer = append(buffer, s.Digest[:]...)
		if Left == s.Side {
			sides[i/8] |= 1 << uint(i%8)
		}
	}
	return append(buffer, sides...), nil
}

// UnmarshalBinary - deserialise a proof, all bytes must be used
func (proof *Proof) UnmarshalBinary(buffer []byte) error {
	leafIndex, n, err := util.ClippedVarint(buffer, 0, math.MaxInt32)
	if nil != err {
		return err
	}
	buffer = buffer[n:]

	count, n, err := util.ClippedVarint(buffer, 0, MaximumProofLength)
	if nil != err {
		return err
	}
	buffer = buffer[n:]

	sidesLength := (count + 7) / 8
	expected := count*digest.Length + sidesLength
	if len(buffer) < expected {
		return fault.ErrTruncatedInput
	}
	if len(buffer) > expected {
		return fault.ErrTrailingData
	}

	sides := buffer[count*digest.Length:]
	siblings := make([]Sibling, count)
	for i := 0; i < count; i += 1 {
		copy(siblings[i].Digest[:], buffer[i*digest.Length:])
		siblings[i].Side = Right
		if 0 != sides[i/8]&(1<<uint(i%8)) {
			siblings[i].Side = Left
		}
	}

	proof.LeafIndex = leafIndex
	proof.Siblings = siblings
	return nil
}

// MarshalText - hex of the binary form
func (proof *Proof) MarshalText() ([]byte, error) {
	b, err := proof.MarshalBinary()
	if nil != err {
		return nil, err
	}
	buffer := make([]byte, hex.EncodedLen(len(b)))
	hex.Encode(buffer, b)
	return buffer, nil
}

// UnmarshalText - proof from hex text
func (proof *Proof) UnmarshalText(s []byte) error {
	buffer := make([]byte, hex.DecodedLen(len(s)))
	byteCount, err := hex.Decode(buffer, s)
	if nil != err {
		return err
	}
	return proof.UnmarshalBinary(buffer[:byteCount])
}
