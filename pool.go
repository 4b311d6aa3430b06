// Copyright (c) 2024-2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package zaddr

import "fmt"

// Pool identifies the consensus value pool a receiver can fund.
type Pool uint8

// These constants define the Zcash value pools.
const (
	PoolTransparent Pool = iota
	PoolSprout
	PoolSapling
	PoolOrchard
)

// poolStrings is a map of pools back to their names for pretty printing.
var poolStrings = map[Pool]string{
	PoolTransparent: "transparent",
	PoolSprout:      "sprout",
	PoolSapling:     "sapling",
	PoolOrchard:     "orchard",
}

// String returns the Pool in human-readable form.
func (p Pool) String() string {
	if s, ok := poolStrings[p]; ok {
		return s
	}
	return fmt.Sprintf("Unknown Pool (%d)", uint8(p))
}

// IsShielded returns whether the pool hides the values and recipients of the
// notes it holds.
func (p Pool) IsShielded() bool {
	switch p {
	case PoolSprout, PoolSapling, PoolOrchard:
		return true
	}
	return false
}

// ReceiverKind is a stable key identifying a kind of receiver.  Addresses
// expose their receivers through it.
type ReceiverKind uint8

// These constants define the receiver kinds.
const (
	KindTransparentP2PKH ReceiverKind = iota
	KindTransparentP2SH
	KindSapling
	KindOrchard
	KindSprout
	KindTex

	// numReceiverKinds is the number of receiver kinds.  It must be the last
	// item in the list.
	numReceiverKinds
)

// receiverKindStrings is a map of receiver kinds back to their constant names
// for pretty printing.
var receiverKindStrings = map[ReceiverKind]string{
	KindTransparentP2PKH: "KindTransparentP2PKH",
	KindTransparentP2SH:  "KindTransparentP2SH",
	KindSapling:          "KindSapling",
	KindOrchard:          "KindOrchard",
	KindSprout:           "KindSprout",
	KindTex:              "KindTex",
}

// String returns the ReceiverKind as the human-readable name.
func (k ReceiverKind) String() string {
	if s, ok := receiverKindStrings[k]; ok {
		return s
	}
	return fmt.Sprintf("Unknown ReceiverKind (%d)", uint8(k))
}

// ReceiverKinds returns every known receiver kind.
func ReceiverKinds() []ReceiverKind {
	kinds := make([]ReceiverKind, 0, numReceiverKinds)
	for k := ReceiverKind(0); k < numReceiverKinds; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}
