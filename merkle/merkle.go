// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package merkle

import (
	"github.com/equityledger/equity/digest"
	"github.com/equityledger/equity/fault"
)

// Tree - all levels of a merkle tree
//
// level 0 is the leaves, the last level holds only the root
type Tree struct {
	levels [][]digest.Digest
}

// Combine - the parent of two nodes: SHA256(SHA256(left | right))
func Combine(left digest.Digest, right digest.Digest) digest.Digest {
	var buffer [2 * digest.Length]byte
	copy(buffer[:digest.Length], left[:])
	copy(buffer[digest.Length:], right[:])
	return digest.NewDigest(buffer[:])
}

// FullMerkleTree - compute merkle tree from a set of transaction ids
//
// structure is:
//   1. N * transaction digests
//   2. level 1..m digests
//   3. merkle root digest
//
// a level with an odd count pairs its last digest with itself
func FullMerkleTree(txIds []digest.Digest) []digest.Digest {

	// compute length of ids + all tree levels including root
	idCount := len(txIds)
	if 0 == idCount {
		return nil
	}

	totalLength := 1 // all ids + space for the final root
	for n := idCount; n > 1; n = (n + 1) / 2 {
		totalLength += n
	}

	// add initial ids
	tree := make([]digest.Digest, totalLength)
	copy(tree[:], txIds)

	n := idCount
	j := 0
	for workLength := idCount; workLength > 1; workLength = (workLength + 1) / 2 {
		for i := 0; i < workLength; i += 2 {
			k := j + 1
			if i+1 == workLength {
				k = j // compensate for odd number
			}
			tree[n] = Combine(tree[j], tree[k])
			n += 1
			j = k + 1
		}
	}
	return tree
}

// Build - construct the tree over an ordered list of leaves
//
// the order of leaves is significant; a single leaf is its own root
func Build(leaves []digest.Digest) (*Tree, error) {
	if 0 == len(leaves) {
		return nil, fault.ErrEmptyTree
	}

	flat := FullMerkleTree(leaves)

	levels := make([][]digest.Digest, 0, 1)
	start := 0
	for n := len(leaves); ; n = (n + 1) / 2 {
		levels = append(levels, flat[start:start+n:start+n])
		start += n
		if 1 == n {
			break
		}
	}

	if start != len(flat) {
		fault.Panicf("merkle: level sizes: %d  expected: %d", start, len(flat))
	}

	return &Tree{
		levels: levels,
	}, nil
}

// Root - compute only the root of a set of leaves
func Root(leaves []digest.Digest) (digest.Digest, error) {
	if 0 == len(leaves) {
		return digest.Digest{}, fault.ErrEmptyTree
	}
	flat := FullMerkleTree(leaves)
	return flat[len(flat)-1], nil
}

// Root - the single node of the final level
func (tree *Tree) Root() digest.Digest {
	top := tree.levels[len(tree.levels)-1]
	if 1 != len(top) {
		fault.Panicf("merkle: top level has %d nodes", len(top))
	}
	return top[0]
}

// LeafCount - number of leaves the tree was built from
func (tree *Tree) LeafCount() int {
	return len(tree.levels[0])
}

// Depth - number of combining levels above the leaves
func (tree *Tree) Depth() int {
	return len(tree.levels) - 1
}

// Leaf - the leaf digest at index i
func (tree *Tree) Leaf(i int) (digest.Digest, error) {
	if i < 0 || i >= tree.LeafCount() {
		return digest.Digest{}, fault.ErrIndexOutOfRange
	}
	return tree.levels[0][i], nil
}

// Levels - copy of all levels, leaves first
func (tree *Tree) Levels() [][]digest.Digest {
	result := make([][]digest.Digest, len(tree.levels))
	for i, level := range tree.levels {
		result[i] = append([]digest.Digest(nil), level...)
	}
	return result
}
