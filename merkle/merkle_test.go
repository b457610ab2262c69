// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package merkle_test

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/equityledger/equity/digest"
	"github.com/equityledger/equity/fault"
	"github.com/equityledger/equity/merkle"
)

func fill(b byte) digest.Digest {
	var d digest.Digest
	copy(d[:], bytes.Repeat([]byte{b}, digest.Length))
	return d
}

func leaves(n int) []digest.Digest {
	result := make([]digest.Digest, n)
	for i := range result {
		result[i] = fill(byte(i + 1))
	}
	return result
}

func wireHex(t *testing.T, s string) digest.Digest {
	var d digest.Digest
	err := d.UnmarshalText([]byte(s))
	if nil != err {
		t.Fatalf("hex: %q  error: %s", s, err)
	}
	return d
}

func TestRootVectors(t *testing.T) {
	tests := []struct {
		count int
		root  string
	}{
		{2, "39ce20bede82c96b8908bec4a157b09c549b3db90b9b474bda9ae9b9030310b4"},
		{3, "223e023fadf1f053df26988871f893c821c28edf77d64a955e6c2a02d547bdac"},
		{4, "085aabaef98668701b87c9a1986bdf116726a9949802326b69895697d4e8c812"},
		{5, "26e2870f72368b3f8baef83fa26282d95d9c194e1f33d90a12932e0f6022e5d3"},
	}

	for _, item := range tests {
		expected := wireHex(t, item.root)

		root, err := merkle.Root(leaves(item.count))
		assert.Nil(t, err, "count: %d", item.count)
		assert.Equal(t, expected, root, "count: %d", item.count)

		tree, err := merkle.Build(leaves(item.count))
		assert.Nil(t, err, "count: %d", item.count)
		assert.Equal(t, expected, tree.Root(), "count: %d", item.count)
	}
}

// block 100000 of the main chain
func TestBlockRoot(t *testing.T) {
	txIds := []string{
		"8c14f0db3df150123e6f3dbbf30f8b955a8249b62ac1d1ff16284aefa3d06d87",
		"fff2525b8931402dd09222c50775608f75787bd2b87e56995a7bdd30f79702c4",
		"6359f0868171b1d194cbee1af2f16ea598ae8fad666d9b012c8ed2b79a236ec4",
		"e9a66845e05d5abc0ad04ec80f774a7e585c6e8db975962d069a522137b80c1d",
	}
	ids := make([]digest.Digest, len(txIds))
	for i, s := range txIds {
		_, err := fmt.Sscan(s, &ids[i])
		assert.Nil(t, err, "scan: %q", s)
	}

	root, err := merkle.Root(ids)
	assert.Nil(t, err, "root")
	assert.Equal(t, "f3e94742aca4b5ef85488dc37c06c3282295ffec960994b2c0d5ac2a25a95766", root.String(), "block root")
}

func TestOddDuplication(t *testing.T) {
	l := leaves(3)
	expected := merkle.Combine(merkle.Combine(l[0], l[1]), merkle.Combine(l[2], l[2]))

	root, err := merkle.Root(l)
	assert.Nil(t, err, "root")
	assert.Equal(t, expected, root, "odd level pairs last node with itself")
}

func TestSingleLeaf(t *testing.T) {
	leaf := fill(0x42)

	tree, err := merkle.Build([]digest.Digest{leaf})
	assert.Nil(t, err, "build")
	assert.Equal(t, leaf, tree.Root(), "root is the leaf")
	assert.Equal(t, 1, tree.LeafCount(), "leaf count")
	assert.Equal(t, 0, tree.Depth(), "depth")
}

func TestEmptyTree(t *testing.T) {
	_, err := merkle.Build(nil)
	assert.Equal(t, fault.ErrEmptyTree, err, "build")

	_, err = merkle.Root([]digest.Digest{})
	assert.Equal(t, fault.ErrEmptyTree, err, "root")

	assert.Nil(t, merkle.FullMerkleTree(nil), "full tree")
}

func TestOrderMatters(t *testing.T) {
	l := leaves(4)
	r1, err := merkle.Root(l)
	assert.Nil(t, err, "root")

	l[0], l[1] = l[1], l[0]
	r2, err := merkle.Root(l)
	assert.Nil(t, err, "swapped root")

	assert.NotEqual(t, r1, r2, "swapped leaves give same root")
}

func TestTreeAccessors(t *testing.T) {
	l := leaves(5)
	tree, err := merkle.Build(l)
	assert.Nil(t, err, "build")

	assert.Equal(t, 5, tree.LeafCount(), "leaf count")
	assert.Equal(t, 3, tree.Depth(), "depth")

	for i, expected := range l {
		leaf, err := tree.Leaf(i)
		assert.Nil(t, err, "leaf: %d", i)
		assert.Equal(t, expected, leaf, "leaf: %d", i)
	}

	_, err = tree.Leaf(-1)
	assert.Equal(t, fault.ErrIndexOutOfRange, err, "negative index")
	_, err = tree.Leaf(5)
	assert.Equal(t, fault.ErrIndexOutOfRange, err, "index past end")

	levels := tree.Levels()
	sizes := make([]int, len(levels))
	for i, level := range levels {
		sizes[i] = len(level)
	}
	assert.Equal(t, []int{5, 3, 2, 1}, sizes, "level sizes")

	// returned levels are a copy
	levels[0][0] = fill(0xff)
	leaf, _ := tree.Leaf(0)
	assert.Equal(t, l[0], leaf, "tree modified through Levels")

	// tree does not alias caller's slice
	l[1] = fill(0xee)
	leaf, _ = tree.Leaf(1)
	assert.Equal(t, fill(2), leaf, "tree modified through input")
}

func TestFullMerkleTreeLayout(t *testing.T) {
	l := leaves(3)
	flat := merkle.FullMerkleTree(l)

	// 3 leaves + 2 + root
	assert.Equal(t, 6, len(flat), "length")
	assert.Equal(t, l, flat[:3], "leaves first")
	assert.Equal(t, merkle.Combine(l[0], l[1]), flat[3], "first parent")
	assert.Equal(t, merkle.Combine(l[2], l[2]), flat[4], "duplicated parent")
	assert.Equal(t, merkle.Combine(flat[3], flat[4]), flat[5], "root")
}
