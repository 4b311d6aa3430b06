// Copyright (c) 2021-2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package zaddr

import (
	"errors"
	"fmt"
	"strings"

	"github.com/zcashgo/zaddr/base58check"
	"github.com/zcashgo/zaddr/chaincfg"
)

// transparentPrefixes are the leading characters of every Base58Check encoded
// transparent address on the supported networks.
var transparentPrefixes = []string{"t1", "t3", "tm", "t2"}

// maxTransparentAddrLen is the longest base58 string that can hold a version,
// a 20-byte hash, and a checksum.  Longer strings are rejected before
// decoding.
const maxTransparentAddrLen = 36

// mapBase58Error converts a base58check error to an address error of the
// appropriate kind while retaining its message.
func mapBase58Error(what string, err error) error {
	kind := ErrInvalidAddress
	switch {
	case errors.Is(err, base58check.ErrInvalidChecksum):
		kind = ErrInvalidChecksum
	case errors.Is(err, base58check.ErrInvalidCharacter):
		kind = ErrInvalidCharacter
	}
	str := fmt.Sprintf("failed to decode %s: %v", what, err)
	return makeError(kind, str)
}

// TransparentP2PKHAddress is a transparent address that pays to the Hash160
// of a secp256k1 public key.
type TransparentP2PKHAddress struct {
	net      chaincfg.Network
	receiver TransparentP2PKHReceiver
	str      string
}

// NewTransparentP2PKHAddress returns an address that pays to the provided
// public key hash receiver on the network described by params.
func NewTransparentP2PKHAddress(receiver TransparentP2PKHReceiver, params *chaincfg.Params) *TransparentP2PKHAddress {
	return &TransparentP2PKHAddress{
		net:      params.Net,
		receiver: receiver,
		str: base58check.CheckEncode(receiver[:],
			params.AddrIDTransparentP2PKH()),
	}
}

// String returns the Base58Check encoding of the address.
func (addr *TransparentP2PKHAddress) String() string { return addr.str }

// Network returns the network of the address.
func (addr *TransparentP2PKHAddress) Network() chaincfg.Network { return addr.net }

// HasShieldedReceiver returns false.
func (addr *TransparentP2PKHAddress) HasShieldedReceiver() bool { return false }

// Receiver returns the receiver for KindTransparentP2PKH.
func (addr *TransparentP2PKHAddress) Receiver(kind ReceiverKind) (Receiver, bool) {
	if kind == KindTransparentP2PKH {
		return addr.receiver, true
	}
	return nil, false
}

// TransparentReceiver returns the public key hash the address pays.
func (addr *TransparentP2PKHAddress) TransparentReceiver() TransparentP2PKHReceiver {
	return addr.receiver
}

func (addr *TransparentP2PKHAddress) zcashAddress() {}

// TransparentP2SHAddress is a transparent address that pays to the Hash160 of
// a redeem script.
type TransparentP2SHAddress struct {
	net      chaincfg.Network
	receiver TransparentP2SHReceiver
	str      string
}

// NewTransparentP2SHAddress returns an address that pays to the provided
// script hash receiver on the network described by params.
func NewTransparentP2SHAddress(receiver TransparentP2SHReceiver, params *chaincfg.Params) *TransparentP2SHAddress {
	return &TransparentP2SHAddress{
		net:      params.Net,
		receiver: receiver,
		str: base58check.CheckEncode(receiver[:],
			params.AddrIDTransparentP2SH()),
	}
}

// String returns the Base58Check encoding of the address.
func (addr *TransparentP2SHAddress) String() string { return addr.str }

// Network returns the network of the address.
func (addr *TransparentP2SHAddress) Network() chaincfg.Network { return addr.net }

// HasShieldedReceiver returns false.
func (addr *TransparentP2SHAddress) HasShieldedReceiver() bool { return false }

// Receiver returns the receiver for KindTransparentP2SH.
func (addr *TransparentP2SHAddress) Receiver(kind ReceiverKind) (Receiver, bool) {
	if kind == KindTransparentP2SH {
		return addr.receiver, true
	}
	return nil, false
}

// TransparentReceiver returns the script hash the address pays.
func (addr *TransparentP2SHAddress) TransparentReceiver() TransparentP2SHReceiver {
	return addr.receiver
}

func (addr *TransparentP2SHAddress) zcashAddress() {}

// hasTransparentPrefix returns whether s begins with the prefix of a Base58Check
// encoded transparent address.
func hasTransparentPrefix(s string) bool {
	for _, prefix := range transparentPrefixes {
		if strings.HasPrefix(s, prefix) {
			return true
		}
	}
	return false
}

// ParseTransparentAddress decodes a transparent address, which is either a
// Base58Check encoded P2PKH or P2SH address or a Bech32m encoded TEX address.
// The returned address is a *TransparentP2PKHAddress,
// *TransparentP2SHAddress, or *TexAddress.
func ParseTransparentAddress(s string) (Address, error) {
	if paramsForBech32Prefix(s, (*chaincfg.Params).TexHRP) != nil {
		addr, err := ParseTexAddress(s)
		if err != nil {
			return nil, err
		}
		return addr, nil
	}
	if !hasTransparentPrefix(s) {
		str := fmt.Sprintf("address %q is not a transparent address", s)
		return nil, makeError(ErrUnrecognizedAddressType, str)
	}
	if len(s) > maxTransparentAddrLen {
		str := fmt.Sprintf("transparent address is %d characters vs a "+
			"maximum of %d", len(s), maxTransparentAddrLen)
		return nil, makeError(ErrInvalidAddress, str)
	}

	data, version, err := base58check.CheckDecode(s)
	if err != nil {
		return nil, mapBase58Error("transparent address", err)
	}
	if len(data) != TransparentReceiverLen {
		str := fmt.Sprintf("transparent address payload is %d bytes vs "+
			"required %d bytes", len(data), TransparentReceiverLen)
		return nil, makeError(ErrInvalidAddress, str)
	}

	for _, params := range chaincfg.Networks() {
		switch version {
		case params.AddrIDTransparentP2PKH():
			var receiver TransparentP2PKHReceiver
			copy(receiver[:], data)
			return NewTransparentP2PKHAddress(receiver, params), nil

		case params.AddrIDTransparentP2SH():
			var receiver TransparentP2SHReceiver
			copy(receiver[:], data)
			return NewTransparentP2SHAddress(receiver, params), nil
		}
	}

	str := fmt.Sprintf("address %q has unknown transparent version %x", s,
		version)
	return nil, makeError(ErrInvalidAddress, str)
}

// ParseTransparentP2PKHAddress decodes a transparent P2PKH address.  An error
// with kind ErrUnrecognizedAddressType is returned for any other valid
// transparent address.
func ParseTransparentP2PKHAddress(s string) (*TransparentP2PKHAddress, error) {
	addr, err := ParseTransparentAddress(s)
	if err != nil {
		return nil, err
	}
	p2pkh, ok := addr.(*TransparentP2PKHAddress)
	if !ok {
		str := fmt.Sprintf("address %s is not a transparent P2PKH address", s)
		return nil, makeError(ErrUnrecognizedAddressType, str)
	}
	return p2pkh, nil
}

// ParseTransparentP2SHAddress decodes a transparent P2SH address.  An error
// with kind ErrUnrecognizedAddressType is returned for any other valid
// transparent address.
func ParseTransparentP2SHAddress(s string) (*TransparentP2SHAddress, error) {
	addr, err := ParseTransparentAddress(s)
	if err != nil {
		return nil, err
	}
	p2sh, ok := addr.(*TransparentP2SHAddress)
	if !ok {
		str := fmt.Sprintf("address %s is not a transparent P2SH address", s)
		return nil, makeError(ErrUnrecognizedAddressType, str)
	}
	return p2sh, nil
}
