// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2015-2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import "fmt"

// Network identifies one of the Zcash networks an address may belong to.
type Network uint8

// These constants define the networks supported by the address codecs.
const (
	// MainNet is the main Zcash network.
	MainNet Network = iota

	// TestNet is the public Zcash test network.
	TestNet
)

// networkStrings is a map of networks back to their constant names for pretty
// printing.
var networkStrings = map[Network]string{
	MainNet: "MainNet",
	TestNet: "TestNet",
}

// String returns the Network in human-readable form.
func (n Network) String() string {
	if s, ok := networkStrings[n]; ok {
		return s
	}
	return fmt.Sprintf("Unknown Network (%d)", uint8(n))
}

// UnifiedPaddingLen is the number of bytes of padding appended to the body of
// every unified address or viewing key before it is jumbled.
const UnifiedPaddingLen = 16

// Params defines the address encoding parameters of a Zcash network.
type Params struct {
	// Name defines a human-readable identifier for the network.
	Name string

	// Net identifies the network.
	Net Network

	// Base58Check address encoding magics.
	TransparentP2PKHAddrID [2]byte // First 2 bytes of a P2PKH address
	TransparentP2SHAddrID  [2]byte // First 2 bytes of a P2SH address
	SproutAddrID           [2]byte // First 2 bytes of a Sprout address

	// Bech32 and Bech32m human-readable parts.
	SaplingAddrHRP string // Bech32 (BIP-173 checksum)
	TexAddrHRP     string // Bech32m
	UnifiedAddrHRP string // Bech32m
}

// AddrIDTransparentP2PKH returns the magic prefix bytes for transparent
// pay-to-pubkey-hash addresses.
func (p *Params) AddrIDTransparentP2PKH() [2]byte {
	return p.TransparentP2PKHAddrID
}

// AddrIDTransparentP2SH returns the magic prefix bytes for transparent
// pay-to-script-hash addresses.
func (p *Params) AddrIDTransparentP2SH() [2]byte {
	return p.TransparentP2SHAddrID
}

// AddrIDSprout returns the magic prefix bytes for Sprout addresses.
func (p *Params) AddrIDSprout() [2]byte {
	return p.SproutAddrID
}

// SaplingHRP returns the human-readable part for Sapling addresses.
func (p *Params) SaplingHRP() string {
	return p.SaplingAddrHRP
}

// TexHRP returns the human-readable part for transparent-source-only (TEX)
// addresses.
func (p *Params) TexHRP() string {
	return p.TexAddrHRP
}

// UnifiedHRP returns the human-readable part for unified addresses.
func (p *Params) UnifiedHRP() string {
	return p.UnifiedAddrHRP
}

// UnifiedPadding returns the padding block that terminates the body of a
// unified address on the network.  It is the ASCII human-readable part
// left-justified in a zero-filled 16-byte block.
func (p *Params) UnifiedPadding() [UnifiedPaddingLen]byte {
	var padding [UnifiedPaddingLen]byte
	copy(padding[:], p.UnifiedAddrHRP)
	return padding
}

// Networks returns the parameters for every supported network in a stable
// order.  It is used by decoders that infer the network from an encoded
// prefix.
func Networks() []*Params {
	return []*Params{MainNetParams(), TestNetParams()}
}

// ParamsForNetwork returns the parameters for the provided network or nil when
// the network is not known.
func ParamsForNetwork(net Network) *Params {
	switch net {
	case MainNet:
		return MainNetParams()
	case TestNet:
		return TestNetParams()
	}
	return nil
}
