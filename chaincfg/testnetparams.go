// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2015-2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

// TestNetParams returns the network parameters for the public Zcash test
// network.
func TestNetParams() *Params {
	return &Params{
		Name: "testnet",
		Net:  TestNet,

		// Address encoding magics
		TransparentP2PKHAddrID: [2]byte{0x1d, 0x25}, // starts with tm
		TransparentP2SHAddrID:  [2]byte{0x1c, 0xba}, // starts with t2
		SproutAddrID:           [2]byte{0x16, 0xb6}, // starts with zt

		SaplingAddrHRP: "ztestsapling",
		TexAddrHRP:     "textest",
		UnifiedAddrHRP: "utest",
	}
}
