// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/equityledger/equity/digest"
	"github.com/equityledger/equity/merkle"
)

func runMerkleRoot(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	leaves, err := digestsFromArguments(c.Args())
	if nil != err {
		return err
	}

	tree, err := merkle.Build(leaves)
	if nil != err {
		return err
	}

	if m.verbose {
		for i, level := range tree.Levels() {
			fmt.Fprintf(m.e, "level %d: %d nodes\n", i, len(level))
		}
	}

	result := struct {
		Root      digest.Digest `json:"root"`
		Display   string        `json:"display"`
		LeafCount int           `json:"leafCount"`
		Depth     int           `json:"depth"`
	}{
		Root:      tree.Root(),
		Display:   tree.Root().String(),
		LeafCount: tree.LeafCount(),
		Depth:     tree.Depth(),
	}
	return printJson(m.w, result)
}

func runMerkleProof(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	index := c.Int("index")
	if index < 0 {
		return ErrRequiredIndex
	}

	leaves, err := digestsFromArguments(c.Args())
	if nil != err {
		return err
	}

	tree, err := merkle.Build(leaves)
	if nil != err {
		return err
	}

	proof, err := tree.Proof(index)
	if nil != err {
		return err
	}

	leaf, _ := tree.Leaf(index)
	if m.verbose {
		fmt.Fprintf(m.e, "leaf %d: %s  siblings: %d\n", index, leaf, len(proof.Siblings))
	}

	encoded, err := proof.MarshalText()
	if nil != err {
		return err
	}

	result := struct {
		Leaf      digest.Digest    `json:"leaf"`
		Root      digest.Digest    `json:"root"`
		LeafIndex int              `json:"leafIndex"`
		Siblings  []merkle.Sibling `json:"siblings"`
		Proof     string           `json:"proof"`
	}{
		Leaf:      leaf,
		Root:      tree.Root(),
		LeafIndex: proof.LeafIndex,
		Siblings:  proof.Siblings,
		Proof:     string(encoded),
	}
	return printJson(m.w, result)
}

func runMerkleVerify(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	leaf, err := checkDigest(c.String("leaf"), ErrRequiredLeaf)
	if nil != err {
		return err
	}
	root, err := checkDigest(c.String("root"), ErrRequiredRoot)
	if nil != err {
		return err
	}

	s := c.String("proof")
	if "" == s {
		return ErrRequiredProof
	}
	proof := &merkle.Proof{}
	err = proof.UnmarshalText([]byte(s))
	if nil != err {
		return err
	}

	computed := proof.Root(leaf)
	if m.verbose {
		fmt.Fprintf(m.e, "computed root: %s\n", computed)
	}

	result := struct {
		Valid     bool          `json:"valid"`
		LeafIndex int           `json:"leafIndex"`
		Computed  digest.Digest `json:"computed"`
	}{
		Valid:     merkle.Verify(leaf, proof, root),
		LeafIndex: proof.LeafIndex,
		Computed:  computed,
	}
	return printJson(m.w, result)
}
