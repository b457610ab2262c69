// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package message

import (
	"encoding/json"
	"net"
	"strconv"

	"github.com/equityledger/equity/fault"
	"github.com/equityledger/equity/util"
)

// MaximumAddresses - largest address list accepted in one addr message
const MaximumAddresses = 1000

// byte sizes of the address records
const (
	NetAddressSize   = 8 + net.IPv6len + 2
	TimedAddressSize = 4 + NetAddressSize
)

// NetAddress - a peer's services and endpoint
//
// IPv4 addresses are stored in IPv4-mapped IPv6 form, the port is big endian on the wire
type NetAddress struct {
	Services uint64
	IP       [net.IPv6len]byte
	Port     uint16
}

// TimedAddress - an address with the time it was last seen
type TimedAddress struct {
	Timestamp uint32 `json:"timestamp"`
	NetAddress
}

// Addr - list of known peer addresses
type Addr struct {
	Addresses []TimedAddress `json:"addresses"`
}

// NewNetAddress - build an address from a net.IP of either family
func NewNetAddress(services uint64, ip net.IP, port uint16) NetAddress {
	a := NetAddress{
		Services: services,
		Port:     port,
	}
	copy(a.IP[:], ip.To16())
	return a
}

// IPAddress - the address as a net.IP
func (a NetAddress) IPAddress() net.IP {
	ip := make(net.IP, net.IPv6len)
	copy(ip, a.IP[:])
	return ip
}

// IsIPv4 - true for an IPv4-mapped address
func (a NetAddress) IsIPv4() bool {
	return nil != a.IPAddress().To4()
}

// String - host:port form
func (a NetAddress) String() string {
	return net.JoinHostPort(a.IPAddress().String(), strconv.Itoa(int(a.Port)))
}

type netAddressJSON struct {
	Services uint64 `json:"services"`
	IP       string `json:"ip"`
	Port     uint16 `json:"port"`
}

// MarshalJSON - IP as text
func (a NetAddress) MarshalJSON() ([]byte, error) {
	return json.Marshal(netAddressJSON{
		Services: a.Services,
		IP:       a.IPAddress().String(),
		Port:     a.Port,
	})
}

// pack appends the 26 byte record
func (a NetAddress) pack(buffer []byte) []byte {
	buffer = appendUint64(buffer, a.Services)
	buffer = append(buffer, a.IP[:]...)
	return appendUint16BE(buffer, a.Port)
}

func (u *unpacker) netAddress() NetAddress {
	a := NetAddress{
		Services: u.uint64(),
	}
	copy(a.IP[:], u.take(net.IPv6len))
	a.Port = u.uint16BE()
	return a
}

// Pack - the 26 byte wire record
func (a NetAddress) Pack() ([]byte, error) {
	return a.pack(make([]byte, 0, NetAddressSize)), nil
}

// UnpackNetAddress - decode a single address record
func UnpackNetAddress(buffer []byte) (*NetAddress, error) {
	u := newUnpacker(buffer)
	a := u.netAddress()
	if err := u.finish(); nil != err {
		return nil, err
	}
	return &a, nil
}

// MarshalJSON - flatten the embedded address
func (a TimedAddress) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Timestamp uint32 `json:"timestamp"`
		netAddressJSON
	}{
		Timestamp: a.Timestamp,
		netAddressJSON: netAddressJSON{
			Services: a.Services,
			IP:       a.IPAddress().String(),
			Port:     a.Port,
		},
	})
}

// Pack - varint count followed by 30 byte records
func (addr *Addr) Pack() ([]byte, error) {
	if len(addr.Addresses) > MaximumAddresses {
		return nil, fault.ErrCountOutOfRange
	}
	buffer := util.ToVarint(uint64(len(addr.Addresses)))
	for _, a := range addr.Addresses {
		buffer = appendUint32(buffer, a.Timestamp)
		buffer = a.pack(buffer)
	}
	return buffer, nil
}

// UnpackAddr - decode an addr payload
func UnpackAddr(buffer []byte) (*Addr, error) {
	u := newUnpacker(buffer)
	n := u.count(MaximumAddresses)
	addresses := make([]TimedAddress, 0, n)
	for i := 0; i < n && nil == u.err; i += 1 {
		timestamp := u.uint32()
		addresses = append(addresses, TimedAddress{
			Timestamp:  timestamp,
			NetAddress: u.netAddress(),
		})
	}
	if err := u.finish(); nil != err {
		return nil, err
	}
	return &Addr{
		Addresses: addresses,
	}, nil
}
