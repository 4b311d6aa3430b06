// Copyright (c) 2021-2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package zaddr

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/zcashgo/zaddr/chaincfg"
)

const (
	saplingZeroMainNet = "zs1qqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqq" +
		"qqqqqqqqqqqqqqqqqqqqqqpq6d8g"
	sproutMainNet = "zc8MjFMHS7Hn9pkBzkJ71ZCdR4PQzbKYpwRR5ukUefLtXFUpjkVXJmG6" +
		"c8Y5TTF347nWHHL9A6oa1EYTQe6h7rfY2KCWqXF"
	saplingTestNet = "ztestsapling1qypqxpq9qcrsszg2pvxq6rs0zqg3yyc5z5tpwxqerg" +
		"d3c8g7ruszzg3rysjjvfeg9y4zkyumw75"
)

// TestDecode ensures the dispatcher returns the expected concrete address type
// for every supported encoding and network.
func TestDecode(t *testing.T) {
	tests := []struct {
		name     string
		addr     string
		wantType string
		net      chaincfg.Network
		shielded bool
	}{{
		name:     "mainnet p2pkh",
		addr:     "t1NsuW4Xpz3GQUzt3BTZAxN6k4svKfWXgni",
		wantType: "*zaddr.TransparentP2PKHAddress",
		net:      chaincfg.MainNet,
	}, {
		name:     "testnet p2sh",
		addr:     "t26e94XS5n9cxwx1bFZKK3qnrc3MmURMBS5",
		wantType: "*zaddr.TransparentP2SHAddress",
		net:      chaincfg.TestNet,
	}, {
		name:     "mainnet tex",
		addr:     "tex1s2rt77ggv6q989lr49rkgzmh5slsksa9khdgte",
		wantType: "*zaddr.TexAddress",
		net:      chaincfg.MainNet,
	}, {
		name:     "mainnet sprout",
		addr:     sproutMainNet,
		wantType: "*zaddr.SproutAddress",
		net:      chaincfg.MainNet,
		shielded: true,
	}, {
		name:     "mainnet sapling",
		addr:     saplingZeroMainNet,
		wantType: "*zaddr.SaplingAddress",
		net:      chaincfg.MainNet,
		shielded: true,
	}, {
		name:     "testnet sapling shares the sprout testnet prefix",
		addr:     saplingTestNet,
		wantType: "*zaddr.SaplingAddress",
		net:      chaincfg.TestNet,
		shielded: true,
	}, {
		name:     "testnet orchard",
		addr:     orchardTestNet,
		wantType: "*zaddr.OrchardAddress",
		net:      chaincfg.TestNet,
		shielded: true,
	}, {
		name:     "mainnet compound unified",
		addr:     compoundMainNet,
		wantType: "*zaddr.CompoundUnifiedAddress",
		net:      chaincfg.MainNet,
		shielded: true,
	}}

	for _, test := range tests {
		addr, err := Decode(test.addr)
		if err != nil {
			t.Errorf("%s: unexpected error: %v", test.name, err)
			continue
		}
		if gotType := fmt.Sprintf("%T", addr); gotType != test.wantType {
			t.Errorf("%s: mismatched type -- got %s, want %s", test.name,
				gotType, test.wantType)
			continue
		}
		if addr.String() != test.addr {
			t.Errorf("%s: mismatched string -- got %s, want %s", test.name,
				addr, test.addr)
		}
		if addr.Network() != test.net {
			t.Errorf("%s: mismatched network -- got %v, want %v", test.name,
				addr.Network(), test.net)
		}
		if addr.HasShieldedReceiver() != test.shielded {
			t.Errorf("%s: mismatched shielded flag -- got %v, want %v",
				test.name, addr.HasShieldedReceiver(), test.shielded)
		}
		if !Equal(addr, MustDecode(test.addr)) {
			t.Errorf("%s: repeated decode is not equal", test.name)
		}
	}
}

// TestDecodeErrors ensures the dispatcher stops at the first address type that
// recognizes a string and reports unrecognized strings.
func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name    string
		addr    string
		wantErr error
	}{{
		name:    "empty",
		addr:    "",
		wantErr: ErrUnrecognizedAddress,
	}, {
		name:    "bitcoin address",
		addr:    "1BvBMSEYstWetqTFn5Au4m4GFg7xJaNVN2",
		wantErr: ErrUnrecognizedAddress,
	}, {
		name:    "unknown bech32 prefix",
		addr:    "bc1qw508d6qejxtdg4y5r3zarvary0c5xw7kv8f3t4",
		wantErr: ErrUnrecognizedAddress,
	}, {
		name:    "transparent with bad checksum",
		addr:    "t1NsuW4Xpz3GQUzt3BTZAxN6k4svKfWXgnj",
		wantErr: ErrInvalidChecksum,
	}, {
		name:    "sapling with bad checksum",
		addr:    saplingZeroMainNet[:len(saplingZeroMainNet)-1] + "h",
		wantErr: ErrInvalidChecksum,
	}, {
		name:    "sprout with invalid character",
		addr:    sproutMainNet[:10] + "0" + sproutMainNet[11:],
		wantErr: ErrInvalidCharacter,
	}, {
		name:    "oversized transparent",
		addr:    "t1" + strings.Repeat("z", 1<<20),
		wantErr: ErrInvalidAddress,
	}, {
		name:    "oversized sprout",
		addr:    "zc" + strings.Repeat("z", 1<<20),
		wantErr: ErrInvalidAddress,
	}, {
		name:    "unified with bad checksum",
		addr:    orchardMainNet[:len(orchardMainNet)-1] + "q",
		wantErr: ErrInvalidChecksum,
	}}

	for _, test := range tests {
		_, err := Decode(test.addr)
		if !errors.Is(err, test.wantErr) {
			t.Errorf("%s: mismatched err -- got %v, want %v", test.name, err,
				test.wantErr)
		}
	}
}

// TestMustDecode ensures MustDecode panics with the message of the decoding
// error.
func TestMustDecode(t *testing.T) {
	const addr = "t1NsuW4Xpz3GQUzt3BTZAxN6k4svKfWXgnj"
	_, wantErr := Decode(addr)

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("MustDecode did not panic")
		}
		msg, ok := r.(string)
		if !ok || msg != wantErr.Error() {
			t.Fatalf("mismatched panic -- got %v, want %v", r, wantErr)
		}
	}()
	MustDecode(addr)
}

// TestDecodeForNetwork ensures addresses for other networks are rejected.
func TestDecodeForNetwork(t *testing.T) {
	mainNetParams := chaincfg.MainNetParams()
	testNetParams := chaincfg.TestNetParams()

	if _, err := DecodeForNetwork(compoundMainNet, mainNetParams); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_, err := DecodeForNetwork(compoundMainNet, testNetParams)
	if !errors.Is(err, ErrWrongNetwork) {
		t.Fatalf("mismatched err -- got %v, want %v", err, ErrWrongNetwork)
	}
	_, err = DecodeForNetwork("bogus", testNetParams)
	if !errors.Is(err, ErrUnrecognizedAddress) {
		t.Fatalf("mismatched err -- got %v, want %v", err,
			ErrUnrecognizedAddress)
	}
}

// TestIsMatch ensures the receivers of two addresses are compared per kind.
func TestIsMatch(t *testing.T) {
	params := chaincfg.MainNetParams()
	f := testFixtures(t, params)

	trusted := MustDecode(compoundMainNet)

	// A unified address that reuses the trusted orchard receiver alongside a
	// different sapling receiver.
	otherSapling, err := NewSaplingAddress(SaplingReceiver{0xff}, params)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	contrived, err := CreateUnifiedAddress(otherSapling, f.orchardAddr)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := []struct {
		name      string
		receiving Address
		test      Address
		want      MatchResult
	}{{
		name:      "identical",
		receiving: trusted,
		test:      trusted,
		want:      MatchingReceiversFound,
	}, {
		name:      "receiving superset",
		receiving: trusted,
		test:      f.orchardAddr,
		want:      MatchingReceiversFound | UniqueReceiverTypesInReceivingAddress,
	}, {
		name:      "test superset",
		receiving: f.saplingAddr,
		test:      trusted,
		want:      MatchingReceiversFound | UniqueReceiverTypesInTestAddress,
	}, {
		name:      "partial overlap with a mismatch",
		receiving: contrived,
		test:      trusted,
		want: MatchingReceiversFound | MismatchingReceiversFound |
			UniqueReceiverTypesInTestAddress,
	}, {
		name:      "disjoint",
		receiving: f.p2shAddr,
		test:      f.saplingAddr,
		want: UniqueReceiverTypesInReceivingAddress |
			UniqueReceiverTypesInTestAddress,
	}, {
		name:      "tex against its p2pkh counterpart",
		receiving: MustDecode("tex1s2rt77ggv6q989lr49rkgzmh5slsksa9khdgte"),
		test:      MustDecode("t1VmmGiyjVNeCjxDZzg7vZmd99WyzVby9yC"),
		want: UniqueReceiverTypesInReceivingAddress |
			UniqueReceiverTypesInTestAddress,
	}}

	for _, test := range tests {
		got := IsMatch(test.receiving, test.test)
		if got != test.want {
			t.Errorf("%s: mismatched result -- got %v, want %v", test.name,
				got, test.want)
		}
	}

	if !IsMatch(contrived, trusted).Has(MismatchingReceiversFound) {
		t.Fatal("contrived address not flagged")
	}
}

// TestMatchResultStringer tests the stringized output for the MatchResult
// type.
func TestMatchResultStringer(t *testing.T) {
	tests := []struct {
		in   MatchResult
		want string
	}{
		{NoMatch, "NoMatch"},
		{MatchingReceiversFound, "MatchingReceiversFound"},
		{MismatchingReceiversFound | UniqueReceiverTypesInTestAddress,
			"MismatchingReceiversFound|UniqueReceiverTypesInTestAddress"},
	}

	for i, test := range tests {
		result := test.in.String()
		if result != test.want {
			t.Errorf("#%d: got: %s want: %s", i, result, test.want)
			continue
		}
	}
}

// TestEqual ensures addresses are equal exactly when their encodings are.
func TestEqual(t *testing.T) {
	upper := MustDecode(strings.ToUpper(orchardMainNet))
	lower := MustDecode(orchardMainNet)
	if !Equal(upper, lower) {
		t.Fatalf("%s and %s are not equal", upper, lower)
	}
	if Equal(lower, MustDecode(orchardTestNet)) {
		t.Fatal("mainnet and testnet addresses are equal")
	}
	if Equal(lower, nil) || !Equal(nil, nil) {
		t.Fatal("unexpected nil equality")
	}
}
