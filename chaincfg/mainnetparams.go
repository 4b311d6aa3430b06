// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2015-2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

// MainNetParams returns the network parameters for the main Zcash network.
func MainNetParams() *Params {
	return &Params{
		Name: "mainnet",
		Net:  MainNet,

		// Address encoding magics
		TransparentP2PKHAddrID: [2]byte{0x1c, 0xb8}, // starts with t1
		TransparentP2SHAddrID:  [2]byte{0x1c, 0xbd}, // starts with t3
		SproutAddrID:           [2]byte{0x16, 0x9a}, // starts with zc

		SaplingAddrHRP: "zs",
		TexAddrHRP:     "tex",
		UnifiedAddrHRP: "u",
	}
}
