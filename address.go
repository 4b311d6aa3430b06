// Copyright (c) 2021-2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package zaddr

import (
	"errors"
	"fmt"
	"strings"

	"github.com/zcashgo/zaddr/chaincfg"
)

// Address represents any Zcash address that can receive funds.  It is a closed
// set: the only implementations are the address types of this package.
//
// Addresses are immutable after construction and are therefore safe for
// concurrent use.
type Address interface {
	// String returns the encoded address.
	String() string

	// Network returns the network the address belongs to.
	Network() chaincfg.Network

	// HasShieldedReceiver returns whether funds sent to the address can be
	// received by a shielded pool.
	HasShieldedReceiver() bool

	// Receiver returns the receiver of the provided kind along with true, or
	// nil and false when the address has no receiver of that kind.
	Receiver(kind ReceiverKind) (Receiver, bool)

	// zcashAddress restricts implementations to this package.
	zcashAddress()
}

// UnifiedAddress is a unified address, which may bundle receivers for several
// pools.  An OrchardAddress is a unified address with a single Orchard
// receiver.
type UnifiedAddress interface {
	Address

	// Receivers returns the addresses of the individual receivers in
	// preference order, shielded pools first.  The returned slice is a copy.
	Receivers() []Address

	// Metadata returns the metadata encoded in the address.
	Metadata() UnifiedEncodingMetadata
}

// Ensure the address types implement the expected interfaces.
var (
	_ Address        = (*TransparentP2PKHAddress)(nil)
	_ Address        = (*TransparentP2SHAddress)(nil)
	_ Address        = (*TexAddress)(nil)
	_ Address        = (*SproutAddress)(nil)
	_ Address        = (*SaplingAddress)(nil)
	_ UnifiedAddress = (*OrchardAddress)(nil)
	_ UnifiedAddress = (*CompoundUnifiedAddress)(nil)
)

// hasBech32Prefix returns whether s begins with the provided human-readable
// part followed by the separator.  The comparison ignores case since an
// all-uppercase bech32 string is valid.
func hasBech32Prefix(s, hrp string) bool {
	n := len(hrp) + 1
	return len(s) > n && strings.EqualFold(s[:n], hrp+"1")
}

// paramsForBech32Prefix returns the network whose human-readable part, as
// selected by hrpFn, prefixes s.  It returns nil when no network matches.
func paramsForBech32Prefix(s string, hrpFn func(*chaincfg.Params) string) *chaincfg.Params {
	for _, params := range chaincfg.Networks() {
		if hasBech32Prefix(s, hrpFn(params)) {
			return params
		}
	}
	return nil
}

// checkHRP returns an error when the human-readable part decoded from an
// address differs from the one expected for its network.
func checkHRP(what, got, want string) error {
	if got != want {
		str := fmt.Sprintf("%s human-readable part %q does not match the "+
			"expected %q", what, got, want)
		return makeError(ErrInvalidAddress, str)
	}
	return nil
}

// decoder describes a parser the dispatcher attempts.
type decoder struct {
	name   string
	decode func(string) (Address, error)
}

// decoders houses the parsers attempted by Decode in order.  Sapling precedes
// Sprout since the testnet Sapling prefix also begins with a Sprout testnet
// prefix.
var decoders = []decoder{{
	name:   "transparent",
	decode: ParseTransparentAddress,
}, {
	name: "sapling",
	decode: func(s string) (Address, error) {
		addr, err := ParseSaplingAddress(s)
		if err != nil {
			return nil, err
		}
		return addr, nil
	},
}, {
	name: "sprout",
	decode: func(s string) (Address, error) {
		addr, err := ParseSproutAddress(s)
		if err != nil {
			return nil, err
		}
		return addr, nil
	},
}, {
	name: "unified",
	decode: func(s string) (Address, error) {
		addr, err := ParseUnifiedAddress(s)
		if err != nil {
			return nil, err
		}
		return addr, nil
	},
}}

// Decode decodes the string encoding of any supported Zcash address and
// returns it as one of the concrete address types of this package.  The
// network is inferred from the encoding.
//
// The address kinds are attempted in a fixed order.  A kind that does not
// recognize the prefix of the string defers to the next one, while any other
// failure of a kind that recognized the prefix is returned immediately.  An
// error with kind ErrUnrecognizedAddress is returned when no kind recognizes
// the string.
func Decode(s string) (Address, error) {
	for _, d := range decoders {
		addr, err := d.decode(s)
		if err == nil {
			log.Tracef("Decoded %s address %s", d.name, addr)
			return addr, nil
		}
		if !errors.Is(err, ErrUnrecognizedAddressType) {
			log.Tracef("Rejected %s address: %v", d.name, err)
			return nil, err
		}
	}

	str := fmt.Sprintf("address %q is not a recognized Zcash address", s)
	return nil, makeError(ErrUnrecognizedAddress, str)
}

// MustDecode decodes the string encoding of any supported Zcash address and
// panics with the error message when it fails.  It is intended for addresses
// known to be valid, such as constants in tests and initialization.
func MustDecode(s string) Address {
	addr, err := Decode(s)
	if err != nil {
		panic(err.Error())
	}
	return addr
}

// DecodeForNetwork decodes the string encoding of any supported Zcash address
// and additionally ensures it is for the network of the provided parameters.
// An error with kind ErrWrongNetwork is returned when it is not.
func DecodeForNetwork(s string, params *chaincfg.Params) (Address, error) {
	addr, err := Decode(s)
	if err != nil {
		return nil, err
	}
	if addr.Network() != params.Net {
		str := fmt.Sprintf("address %s is for %v, not %v", s, addr.Network(),
			params.Net)
		return nil, makeError(ErrWrongNetwork, str)
	}
	return addr, nil
}

// Equal returns whether the two addresses have the same encoding.
func Equal(a, b Address) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.String() == b.String()
}
