// Copyright (c) 2024-2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package zaddr_test

import (
	"fmt"

	"github.com/zcashgo/zaddr"
	"github.com/zcashgo/zaddr/chaincfg"
)

// This example demonstrates decoding addresses of several kinds, inspecting
// their network, and accessing the receivers they hold.
func ExampleDecode() {
	// Ordinarily addresses would be read from the user, but they are hard
	// coded here for the purposes of this example.
	addrsToDecode := []string{
		// transparent pay-to-pubkey-hash
		"t1VmmGiyjVNeCjxDZzg7vZmd99WyzVby9yC",

		// transparent-source-only address for the same key hash
		"tex1s2rt77ggv6q989lr49rkgzmh5slsksa9khdgte",

		// sapling
		"zs1gpq5ys6yg4rywjzfff95cn2wfag9z5jn2324v46ct9d9khzate0kqctzvdjx2en8" +
			"dp5k508a6ha",
	}
	for idx, encodedAddr := range addrsToDecode {
		addr, err := zaddr.Decode(encodedAddr)
		if err != nil {
			fmt.Println(err)
			return
		}
		fmt.Printf("addr%d: %T on %v (shielded: %v)\n", idx, addr,
			addr.Network(), addr.HasShieldedReceiver())

		for _, kind := range zaddr.ReceiverKinds() {
			if receiver, ok := addr.Receiver(kind); ok {
				fmt.Printf("  %v: %x\n", kind, receiver.Bytes())
			}
		}
	}

	// Output:
	// addr0: *zaddr.TransparentP2PKHAddress on MainNet (shielded: false)
	//   KindTransparentP2PKH: 8286bf790866805397e3a947640b77a43f0b43a5
	// addr1: *zaddr.TexAddress on MainNet (shielded: false)
	//   KindTex: 8286bf790866805397e3a947640b77a43f0b43a5
	// addr2: *zaddr.SaplingAddress on MainNet (shielded: true)
	//   KindSapling: 404142434445464748494a4b4c4d4e4f505152535455565758595a5b5c5d5e5f606162636465666768696a
}

// This example demonstrates combining addresses into a unified address and
// listing the receivers of the result in preference order.
func ExampleCreateUnifiedAddress() {
	p2pkh := zaddr.MustDecode("t1Hxw6JqWMnhDK5jRCieg5bFHM2qt7UtQvu")
	sapling := zaddr.MustDecode("zs1gpq5ys6yg4rywjzfff95cn2wfag9z5jn2324v46c" +
		"t9d9khzate0kqctzvdjx2en8dp5k508a6ha")

	ua, err := zaddr.CreateUnifiedAddress(p2pkh, sapling)
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, receiver := range ua.Receivers() {
		fmt.Println(receiver)
	}

	// The unified address decodes back to an equivalent address.
	decoded, err := zaddr.DecodeForNetwork(ua.String(), chaincfg.MainNetParams())
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(zaddr.Equal(ua, decoded))
	fmt.Println(zaddr.IsMatch(decoded, sapling))

	// Output:
	// zs1gpq5ys6yg4rywjzfff95cn2wfag9z5jn2324v46ct9d9khzate0kqctzvdjx2en8dp5k508a6ha
	// t1Hxw6JqWMnhDK5jRCieg5bFHM2qt7UtQvu
	// true
	// MatchingReceiversFound|UniqueReceiverTypesInReceivingAddress
}
