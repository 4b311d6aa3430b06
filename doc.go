// Copyright (c) 2024-2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package zaddr encodes and decodes Zcash addresses.

The package supports the single-pool address formats along with ZIP-316
unified addresses, which bundle receivers for several pools into one string:

	Transparent P2PKH   Base58Check   t1... (mainnet)  tm... (testnet)
	Transparent P2SH    Base58Check   t3... (mainnet)  t2... (testnet)
	TEX (ZIP-320)       Bech32m       tex1...          textest1...
	Sprout              Base58Check   zc...            zt...
	Sapling             Bech32        zs1...           ztestsapling1...
	Unified             Bech32m       u1...            utest1...

# Receivers

A receiver is the fixed-size payload that directs funds into a specific pool.
Each kind of receiver is a distinct byte array type, so receivers are compared
with == and may be used as map keys.  The receivers that may be embedded in a
unified address implement UnifiedReceiver.  Sprout and TEX receivers do not.

# Decoding

Decode accepts the string encoding of any supported address and returns one of
the concrete address types.  The network is always inferred from the encoding.
Callers that expect a particular network should use DecodeForNetwork.

	addr, err := zaddr.Decode(s)
	if err != nil {
		return err
	}
	if addr.HasShieldedReceiver() {
		...
	}

# Unified Addresses

CreateUnifiedAddress bundles the receivers of several addresses.  The
receivers are serialized in ascending typecode order regardless of the order
they are provided in, so the result does not depend on the input order, while
UnifiedAddress.Receivers exposes them shielded pools first.  A unified address
whose only receiver is an Orchard receiver is an *OrchardAddress.

# Errors

Errors returned by this package are of type Error and wrap an ErrorKind, so
callers can use errors.Is to determine the reason for a failure, for example
to distinguish a string that is not an address from a corrupted one.
*/
package zaddr
