// Copyright (c) 2024-2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package zaddr

import (
	"fmt"
	"strings"

	"github.com/zcashgo/zaddr/base58check"
	"github.com/zcashgo/zaddr/chaincfg"
)

// sproutPrefixes are the leading characters of a Sprout address on the
// supported networks.
var sproutPrefixes = []string{"zc", "zt"}

// maxSproutAddrLen is the longest base58 string that can hold a version, a
// 64-byte receiver, and a checksum.
const maxSproutAddrLen = 96

// SproutAddress is a legacy Sprout shielded payment address.  Sprout
// receivers cannot be embedded in a unified address.
type SproutAddress struct {
	net      chaincfg.Network
	receiver SproutReceiver
	str      string
}

// NewSproutAddress returns an address that pays to the provided Sprout
// receiver on the network described by params.
func NewSproutAddress(receiver SproutReceiver, params *chaincfg.Params) *SproutAddress {
	return &SproutAddress{
		net:      params.Net,
		receiver: receiver,
		str:      base58check.CheckEncode(receiver[:], params.AddrIDSprout()),
	}
}

// ParseSproutAddress decodes a Sprout address.  The network is inferred from
// the version bytes.
func ParseSproutAddress(s string) (*SproutAddress, error) {
	var recognized bool
	for _, prefix := range sproutPrefixes {
		if strings.HasPrefix(s, prefix) {
			recognized = true
			break
		}
	}
	if !recognized {
		str := fmt.Sprintf("address %q is not a sprout address", s)
		return nil, makeError(ErrUnrecognizedAddressType, str)
	}
	if len(s) > maxSproutAddrLen {
		str := fmt.Sprintf("sprout address is %d characters vs a maximum of "+
			"%d", len(s), maxSproutAddrLen)
		return nil, makeError(ErrInvalidAddress, str)
	}

	data, version, err := base58check.CheckDecode(s)
	if err != nil {
		return nil, mapBase58Error("sprout address", err)
	}
	if len(data) != SproutReceiverLen {
		str := fmt.Sprintf("sprout address payload is %d bytes vs required "+
			"%d bytes", len(data), SproutReceiverLen)
		return nil, makeError(ErrInvalidAddress, str)
	}
	for _, params := range chaincfg.Networks() {
		if version == params.AddrIDSprout() {
			var receiver SproutReceiver
			copy(receiver[:], data)
			return NewSproutAddress(receiver, params), nil
		}
	}

	str := fmt.Sprintf("address %q has unknown sprout version %x", s, version)
	return nil, makeError(ErrInvalidAddress, str)
}

// String returns the Base58Check encoding of the address.
func (addr *SproutAddress) String() string { return addr.str }

// Network returns the network of the address.
func (addr *SproutAddress) Network() chaincfg.Network { return addr.net }

// HasShieldedReceiver returns true.
func (addr *SproutAddress) HasShieldedReceiver() bool { return true }

// Receiver returns the receiver for KindSprout.
func (addr *SproutAddress) Receiver(kind ReceiverKind) (Receiver, bool) {
	if kind == KindSprout {
		return addr.receiver, true
	}
	return nil, false
}

// SproutReceiver returns the receiver of the address.
func (addr *SproutAddress) SproutReceiver() SproutReceiver {
	return addr.receiver
}

func (addr *SproutAddress) zcashAddress() {}
