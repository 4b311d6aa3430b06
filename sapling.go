// Copyright (c) 2024-2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package zaddr

import (
	"fmt"
	"strings"

	"github.com/zcashgo/zaddr/chaincfg"
)

// SaplingAddress is a Sapling shielded payment address.
type SaplingAddress struct {
	net      chaincfg.Network
	receiver SaplingReceiver
	str      string
}

// NewSaplingAddress returns an address that pays to the provided Sapling
// receiver on the network described by params.
func NewSaplingAddress(receiver SaplingReceiver, params *chaincfg.Params) (*SaplingAddress, error) {
	str, err := encodeBech32(params.SaplingHRP(), receiver[:])
	if err != nil {
		return nil, err
	}
	return &SaplingAddress{net: params.Net, receiver: receiver, str: str}, nil
}

// ParseSaplingAddress decodes a Sapling address.  The network is inferred from
// the human-readable part.
func ParseSaplingAddress(s string) (*SaplingAddress, error) {
	params := paramsForBech32Prefix(s, (*chaincfg.Params).SaplingHRP)
	if params == nil {
		str := fmt.Sprintf("address %q is not a sapling address", s)
		return nil, makeError(ErrUnrecognizedAddressType, str)
	}

	hrp, data, err := decodeBech32("sapling address", s)
	if err != nil {
		return nil, err
	}
	if err := checkHRP("sapling address", hrp, params.SaplingHRP()); err != nil {
		return nil, err
	}
	if len(data) != SaplingReceiverLen {
		str := fmt.Sprintf("sapling address payload is %d bytes vs required "+
			"%d bytes", len(data), SaplingReceiverLen)
		return nil, makeError(ErrInvalidAddress, str)
	}

	var receiver SaplingReceiver
	copy(receiver[:], data)
	return &SaplingAddress{
		net:      params.Net,
		receiver: receiver,
		str:      strings.ToLower(s),
	}, nil
}

// String returns the Bech32 encoding of the address.
func (addr *SaplingAddress) String() string { return addr.str }

// Network returns the network of the address.
func (addr *SaplingAddress) Network() chaincfg.Network { return addr.net }

// HasShieldedReceiver returns true.
func (addr *SaplingAddress) HasShieldedReceiver() bool { return true }

// Receiver returns the receiver for KindSapling.
func (addr *SaplingAddress) Receiver(kind ReceiverKind) (Receiver, bool) {
	if kind == KindSapling {
		return addr.receiver, true
	}
	return nil, false
}

// SaplingReceiver returns the receiver of the address.
func (addr *SaplingAddress) SaplingReceiver() SaplingReceiver {
	return addr.receiver
}

func (addr *SaplingAddress) zcashAddress() {}
