// Copyright (c) 2024-2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package zaddr

import (
	"fmt"
	"strings"

	"github.com/zcashgo/zaddr/chaincfg"
)

// maxTexAddrLen is the longest string that could hold a TEX address on any of
// the supported networks.
const maxTexAddrLen = 90

// TexAddress is a transparent-source-only address as defined by ZIP-320.  It
// pays to a public key hash exactly like a TransparentP2PKHAddress, but
// signals to wallets that funds must only be sent from transparent inputs.
type TexAddress struct {
	net      chaincfg.Network
	receiver TexReceiver
	str      string
}

// NewTexAddress returns a TEX address that pays to the provided receiver on
// the network described by params.
func NewTexAddress(receiver TexReceiver, params *chaincfg.Params) (*TexAddress, error) {
	str, err := encodeBech32m(params.TexHRP(), receiver[:])
	if err != nil {
		return nil, err
	}
	return &TexAddress{net: params.Net, receiver: receiver, str: str}, nil
}

// NewTexAddressFromTransparent returns the TEX address that pays to the same
// public key hash as the provided P2PKH address.
func NewTexAddressFromTransparent(addr *TransparentP2PKHAddress) (*TexAddress, error) {
	params := chaincfg.ParamsForNetwork(addr.Network())
	if params == nil {
		str := fmt.Sprintf("unsupported network %v", addr.Network())
		return nil, makeError(ErrInvalidArgument, str)
	}
	return NewTexAddress(addr.TransparentReceiver().Tex(), params)
}

// ParseTexAddress decodes a TEX address.  The network is inferred from the
// human-readable part.
func ParseTexAddress(s string) (*TexAddress, error) {
	params := paramsForBech32Prefix(s, (*chaincfg.Params).TexHRP)
	if params == nil {
		str := fmt.Sprintf("address %q is not a TEX address", s)
		return nil, makeError(ErrUnrecognizedAddressType, str)
	}
	if len(s) > maxTexAddrLen {
		str := fmt.Sprintf("TEX address is %d characters vs a maximum of %d",
			len(s), maxTexAddrLen)
		return nil, makeError(ErrInvalidAddress, str)
	}

	hrp, data, err := decodeBech32m("TEX address", s)
	if err != nil {
		return nil, err
	}
	if err := checkHRP("TEX address", hrp, params.TexHRP()); err != nil {
		return nil, err
	}
	if len(data) != TransparentReceiverLen {
		str := fmt.Sprintf("TEX address payload is %d bytes vs required %d "+
			"bytes", len(data), TransparentReceiverLen)
		return nil, makeError(ErrInvalidAddress, str)
	}

	var receiver TexReceiver
	copy(receiver[:], data)
	return &TexAddress{
		net:      params.Net,
		receiver: receiver,
		str:      strings.ToLower(s),
	}, nil
}

// String returns the Bech32m encoding of the address.
func (addr *TexAddress) String() string { return addr.str }

// Network returns the network of the address.
func (addr *TexAddress) Network() chaincfg.Network { return addr.net }

// HasShieldedReceiver returns false.
func (addr *TexAddress) HasShieldedReceiver() bool { return false }

// Receiver returns the receiver for KindTex.
func (addr *TexAddress) Receiver(kind ReceiverKind) (Receiver, bool) {
	if kind == KindTex {
		return addr.receiver, true
	}
	return nil, false
}

// TexReceiver returns the public key hash the address pays.
func (addr *TexAddress) TexReceiver() TexReceiver {
	return addr.receiver
}

// TransparentAddress returns the P2PKH address that pays to the same public
// key hash.
func (addr *TexAddress) TransparentAddress() *TransparentP2PKHAddress {
	params := chaincfg.ParamsForNetwork(addr.net)
	return NewTransparentP2PKHAddress(addr.receiver.TransparentP2PKH(), params)
}

func (addr *TexAddress) zcashAddress() {}
