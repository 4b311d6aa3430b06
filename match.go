// Copyright (c) 2024-2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package zaddr

import "strings"

// MatchResult is a set of flags describing how the receivers of two addresses
// relate to each other.
type MatchResult uint8

// NoMatch indicates that no receiver kind is present in either address.
const NoMatch MatchResult = 0

// These flags are combined to form a MatchResult.
const (
	// MismatchingReceiversFound indicates that at least one receiver kind is
	// present in both addresses with different receivers.  A receiving
	// address built to partially overlap a trusted one will set this flag.
	MismatchingReceiversFound MatchResult = 1 << iota

	// MatchingReceiversFound indicates that at least one receiver kind is
	// present in both addresses with identical receivers.
	MatchingReceiversFound

	// UniqueReceiverTypesInTestAddress indicates that at least one receiver
	// kind is present only in the test address.
	UniqueReceiverTypesInTestAddress

	// UniqueReceiverTypesInReceivingAddress indicates that at least one
	// receiver kind is present only in the receiving address.
	UniqueReceiverTypesInReceivingAddress
)

// matchResultStrings pairs each match flag with its constant name for pretty
// printing.
var matchResultStrings = []struct {
	flag MatchResult
	name string
}{
	{MismatchingReceiversFound, "MismatchingReceiversFound"},
	{MatchingReceiversFound, "MatchingReceiversFound"},
	{UniqueReceiverTypesInTestAddress, "UniqueReceiverTypesInTestAddress"},
	{UniqueReceiverTypesInReceivingAddress, "UniqueReceiverTypesInReceivingAddress"},
}

// String returns the set flags separated by '|', or NoMatch.
func (m MatchResult) String() string {
	if m == NoMatch {
		return "NoMatch"
	}
	var names []string
	for _, entry := range matchResultStrings {
		if m&entry.flag != 0 {
			names = append(names, entry.name)
		}
	}
	return strings.Join(names, "|")
}

// Has returns whether all of the provided flags are set.
func (m MatchResult) Has(flags MatchResult) bool {
	return m&flags == flags
}

// IsMatch compares every receiver kind of the receiving address against the
// test address.
//
// Callers deciding whether a receiving address belongs to a trusted test
// address must treat MismatchingReceiversFound as a failure regardless of any
// other flags.
func IsMatch(receiving, test Address) MatchResult {
	var result MatchResult
	for _, kind := range ReceiverKinds() {
		recvReceiver, inReceiving := receiving.Receiver(kind)
		testReceiver, inTest := test.Receiver(kind)
		switch {
		case inReceiving && inTest:
			if recvReceiver == testReceiver {
				result |= MatchingReceiversFound
			} else {
				result |= MismatchingReceiversFound
			}
		case inReceiving:
			result |= UniqueReceiverTypesInReceivingAddress
		case inTest:
			result |= UniqueReceiverTypesInTestAddress
		}
	}
	return result
}
