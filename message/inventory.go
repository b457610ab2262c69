// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package message

import (
	"github.com/equityledger/equity/digest"
	"github.com/equityledger/equity/fault"
	"github.com/equityledger/equity/util"
)

// MaximumInventory - largest item list accepted in one inv, getdata or notfound
const MaximumInventory = 50000

// InventoryItemSize - bytes in one packed item
const InventoryItemSize = 4 + digest.Length

// InventoryType - kind of object an inventory hash refers to
type InventoryType uint32

// inventory types
const (
	InventoryError         InventoryType = 0 // may be ignored
	InventoryTransaction   InventoryType = 1
	InventoryBlock         InventoryType = 2
	InventoryFilteredBlock InventoryType = 3 // reply with merkleblock
)

// InventoryItem - one object reference
type InventoryItem struct {
	Type InventoryType `json:"type"`
	Hash digest.Digest `json:"hash"`
}

// Inventory - body of inv, getdata and notfound
type Inventory struct {
	Items []InventoryItem `json:"items"`
}

// String - for the fmt package
func (t InventoryType) String() string {
	switch t {
	case InventoryError:
		return "error"
	case InventoryTransaction:
		return "tx"
	case InventoryBlock:
		return "block"
	case InventoryFilteredBlock:
		return "filtered-block"
	default:
		return "unknown"
	}
}

// MarshalText - type name for JSON
func (t InventoryType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// Pack - varint count followed by 36 byte items
func (inv *Inventory) Pack() ([]byte, error) {
	if len(inv.Items) > MaximumInventory {
		return nil, fault.ErrCountOutOfRange
	}
	buffer := util.ToVarint(uint64(len(inv.Items)))
	for _, item := range inv.Items {
		buffer = appendUint32(buffer, uint32(item.Type))
		buffer = append(buffer, item.Hash[:]...)
	}
	return buffer, nil
}

// UnpackInventory - decode an inv, getdata or notfound payload
//
// unrecognised type values are kept as they are
func UnpackInventory(buffer []byte) (*Inventory, error) {
	u := newUnpacker(buffer)
	n := u.count(MaximumInventory)
	if nil == u.err && u.remaining() < n*InventoryItemSize {
		return nil, fault.ErrTruncatedInput
	}
	items := make([]InventoryItem, n)
	for i := 0; i < n && nil == u.err; i += 1 {
		items[i].Type = InventoryType(u.uint32())
		copy(items[i].Hash[:], u.take(digest.Length))
	}
	if err := u.finish(); nil != err {
		return nil, err
	}
	return &Inventory{
		Items: items,
	}, nil
}
