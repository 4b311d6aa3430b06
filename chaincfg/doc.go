// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package chaincfg defines the address encoding parameters of the Zcash
// networks.
//
// In addition to the main Zcash network, which is intended for the transfer of
// monetary value, there also exists a public test network.  Addresses for the
// two networks use different Base58Check version prefixes and different Bech32
// human-readable parts, so software should handle errors where an address
// intended for one network is used on an application instance running on the
// other.
//
// For main packages, a (typically global) var may be assigned the result of one
// of the standard params functions for use as the application's "active"
// network.
//
//	package main
//
//	import (
//		"flag"
//		"fmt"
//		"log"
//
//		"github.com/zcashgo/zaddr"
//		"github.com/zcashgo/zaddr/chaincfg"
//	)
//
//	func main() {
//		var testnet = flag.Bool("testnet", false, "operate on the test network")
//		flag.Parse()
//
//		// By default (without -testnet), use mainnet.
//		var chainParams = chaincfg.MainNetParams()
//		if *testnet {
//			chainParams = chaincfg.TestNetParams()
//		}
//
//		// Create and print a new transparent payment address specific to the
//		// active network.
//		pubKeyHash := make([]byte, 20)
//		receiver, err := zaddr.NewTransparentP2PKHReceiver(pubKeyHash)
//		if err != nil {
//			log.Fatal(err)
//		}
//		fmt.Println(zaddr.NewTransparentP2PKHAddress(receiver, chainParams))
//	}
package chaincfg
