// Copyright (c) 2021-2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package zaddr

import (
	"errors"
	"strings"
	"testing"

	"github.com/zcashgo/zaddr/chaincfg"
)

// TestTransparentAddresses ensures transparent addresses encode to the
// expected strings and decode back to the same receiver and network.
func TestTransparentAddresses(t *testing.T) {
	mainNetParams := chaincfg.MainNetParams()
	testNetParams := chaincfg.TestNetParams()

	tests := []struct {
		name   string
		hash   string
		p2sh   bool
		params *chaincfg.Params
		want   string
	}{{
		name:   "mainnet p2pkh",
		hash:   "36e73bb5b78d1c975370875cb4ffdf835ab852a1",
		params: mainNetParams,
		want:   "t1NsuW4Xpz3GQUzt3BTZAxN6k4svKfWXgni",
	}, {
		name:   "mainnet p2pkh with tex counterpart",
		hash:   "8286bf790866805397e3a947640b77a43f0b43a5",
		params: mainNetParams,
		want:   "t1VmmGiyjVNeCjxDZzg7vZmd99WyzVby9yC",
	}, {
		name:   "testnet p2pkh",
		hash:   "0102030405060708090a0b0c0d0e0f1011121314",
		params: testNetParams,
		want:   "tm9ogR9KukTCiTKvrsSxQwFv2x1vhZTydav",
	}, {
		name:   "mainnet p2sh",
		hash:   "0102030405060708090a0b0c0d0e0f1011121314",
		p2sh:   true,
		params: mainNetParams,
		want:   "t3Jex1rKwuh1bQFRrKpKGWDcDVZ8bbQuNrB",
	}, {
		name:   "testnet p2sh",
		hash:   "0102030405060708090a0b0c0d0e0f1011121314",
		p2sh:   true,
		params: testNetParams,
		want:   "t26e94XS5n9cxwx1bFZKK3qnrc3MmURMBS5",
	}}

	for _, test := range tests {
		hash := hexToBytes(test.hash)

		var addr Address
		if test.p2sh {
			receiver, err := NewTransparentP2SHReceiver(hash)
			if err != nil {
				t.Errorf("%s: unexpected error: %v", test.name, err)
				continue
			}
			addr = NewTransparentP2SHAddress(receiver, test.params)
		} else {
			receiver, err := NewTransparentP2PKHReceiver(hash)
			if err != nil {
				t.Errorf("%s: unexpected error: %v", test.name, err)
				continue
			}
			addr = NewTransparentP2PKHAddress(receiver, test.params)
		}
		if addr.String() != test.want {
			t.Errorf("%s: mismatched encoding -- got %s, want %s", test.name,
				addr, test.want)
			continue
		}

		decoded, err := ParseTransparentAddress(test.want)
		if err != nil {
			t.Errorf("%s: unexpected decode error: %v", test.name, err)
			continue
		}
		if decoded.Network() != test.params.Net {
			t.Errorf("%s: mismatched network -- got %v, want %v", test.name,
				decoded.Network(), test.params.Net)
		}
		if decoded.HasShieldedReceiver() {
			t.Errorf("%s: transparent address reports a shielded receiver",
				test.name)
		}

		kind, otherKind := KindTransparentP2PKH, KindTransparentP2SH
		if test.p2sh {
			kind, otherKind = otherKind, kind
		}
		receiver, ok := decoded.Receiver(kind)
		if !ok {
			t.Errorf("%s: decoded address has no %v receiver", test.name, kind)
			continue
		}
		wantReceiver, _ := addr.Receiver(kind)
		if receiver != wantReceiver {
			t.Errorf("%s: mismatched receiver -- got %x, want %x", test.name,
				receiver.Bytes(), wantReceiver.Bytes())
		}
		if _, ok := decoded.Receiver(otherKind); ok {
			t.Errorf("%s: decoded address has a %v receiver", test.name,
				otherKind)
		}
	}
}

// TestParseTransparentAddressErrors ensures invalid transparent addresses are
// rejected with the expected error kinds.
func TestParseTransparentAddressErrors(t *testing.T) {
	sproutMain := "zc8MjFMHS7Hn9pkBzkJ71ZCdR4PQzbKYpwRR5ukUefLtXFUpjkVXJmG6c8Y5" +
		"TTF347nWHHL9A6oa1EYTQe6h7rfY2KCWqXF"

	tests := []struct {
		name    string
		addr    string
		wantErr error
	}{{
		name:    "empty",
		addr:    "",
		wantErr: ErrUnrecognizedAddressType,
	}, {
		name:    "sprout prefix",
		addr:    sproutMain,
		wantErr: ErrUnrecognizedAddressType,
	}, {
		name:    "bad checksum",
		addr:    "t1NsuW4Xpz3GQUzt3BTZAxN6k4svKfWXgnj",
		wantErr: ErrInvalidChecksum,
	}, {
		name:    "invalid base58 character",
		addr:    "t1NsuW4Xpz3GQUzt3BTZAxN6k4svKfWXgn0",
		wantErr: ErrInvalidCharacter,
	}, {
		name:    "truncated",
		addr:    "t1Ns",
		wantErr: ErrInvalidAddress,
	}, {
		name:    "longer than any transparent encoding",
		addr:    "t1NsuW4Xpz3GQUzt3BTZAxN6k4svKfWXgniii",
		wantErr: ErrInvalidAddress,
	}, {
		name:    "oversized",
		addr:    "t1" + strings.Repeat("z", 100000),
		wantErr: ErrInvalidAddress,
	}}

	for _, test := range tests {
		_, err := ParseTransparentAddress(test.addr)
		if !errors.Is(err, test.wantErr) {
			t.Errorf("%s: mismatched err -- got %v, want %v", test.name, err,
				test.wantErr)
		}
	}
}

// TestParseTransparentByType ensures the type-specific parsers only accept
// their own address type.
func TestParseTransparentByType(t *testing.T) {
	const p2pkh = "t1NsuW4Xpz3GQUzt3BTZAxN6k4svKfWXgni"
	const p2sh = "t3Jex1rKwuh1bQFRrKpKGWDcDVZ8bbQuNrB"

	if _, err := ParseTransparentP2PKHAddress(p2pkh); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := ParseTransparentP2SHAddress(p2sh); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_, err := ParseTransparentP2PKHAddress(p2sh)
	if !errors.Is(err, ErrUnrecognizedAddressType) {
		t.Fatalf("mismatched err -- got %v, want %v", err,
			ErrUnrecognizedAddressType)
	}
	_, err = ParseTransparentP2SHAddress(p2pkh)
	if !errors.Is(err, ErrUnrecognizedAddressType) {
		t.Fatalf("mismatched err -- got %v, want %v", err,
			ErrUnrecognizedAddressType)
	}
}
