// Copyright (c) 2024-2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package zaddr

import (
	"errors"
	"strings"
	"testing"

	"github.com/zcashgo/zaddr/chaincfg"
)

// TestTexAddress ensures TEX addresses convert to and from their P2PKH
// counterparts and round trip on both networks.
func TestTexAddress(t *testing.T) {
	tests := []struct {
		name        string
		transparent string
		tex         string
		net         chaincfg.Network
	}{{
		name:        "mainnet",
		transparent: "t1VmmGiyjVNeCjxDZzg7vZmd99WyzVby9yC",
		tex:         "tex1s2rt77ggv6q989lr49rkgzmh5slsksa9khdgte",
		net:         chaincfg.MainNet,
	}, {
		name:        "testnet",
		transparent: "tm9ogR9KukTCiTKvrsSxQwFv2x1vhZTydav",
		tex:         "textest1qypqxpq9qcrsszg2pvxq6rs0zqg3yyc5yflgzy",
		net:         chaincfg.TestNet,
	}}

	for _, test := range tests {
		p2pkh, err := ParseTransparentP2PKHAddress(test.transparent)
		if err != nil {
			t.Errorf("%s: unexpected error: %v", test.name, err)
			continue
		}
		tex, err := NewTexAddressFromTransparent(p2pkh)
		if err != nil {
			t.Errorf("%s: unexpected error: %v", test.name, err)
			continue
		}
		if tex.String() != test.tex {
			t.Errorf("%s: mismatched encoding -- got %s, want %s", test.name,
				tex, test.tex)
			continue
		}

		decoded, err := ParseTexAddress(test.tex)
		if err != nil {
			t.Errorf("%s: unexpected decode error: %v", test.name, err)
			continue
		}
		if decoded.Network() != test.net {
			t.Errorf("%s: mismatched network -- got %v, want %v", test.name,
				decoded.Network(), test.net)
		}
		if decoded.TexReceiver() != tex.TexReceiver() {
			t.Errorf("%s: mismatched receiver", test.name)
		}
		if back := decoded.TransparentAddress(); back.String() != test.transparent {
			t.Errorf("%s: mismatched transparent address -- got %s, want %s",
				test.name, back, test.transparent)
		}

		// The transparent parser also handles TEX addresses.
		viaTransparent, err := ParseTransparentAddress(test.tex)
		if err != nil {
			t.Errorf("%s: unexpected error: %v", test.name, err)
			continue
		}
		if _, ok := viaTransparent.(*TexAddress); !ok {
			t.Errorf("%s: transparent parser returned %T", test.name,
				viaTransparent)
		}

		// Uppercase encodings are valid and normalize to lowercase.
		upper, err := ParseTexAddress(strings.ToUpper(test.tex))
		if err != nil {
			t.Errorf("%s: unexpected error: %v", test.name, err)
			continue
		}
		if upper.String() != test.tex {
			t.Errorf("%s: uppercase encoding not normalized: %s", test.name,
				upper)
		}
	}
}

// TestParseTexAddressErrors ensures invalid TEX addresses are rejected with
// the expected error kinds.
func TestParseTexAddressErrors(t *testing.T) {
	const valid = "tex1s2rt77ggv6q989lr49rkgzmh5slsksa9khdgte"

	// A TEX payload encoded with the original bech32 checksum.
	receiver, _ := NewTexReceiver(hexToBytes("8286bf790866805397e3a947640b77a43f0b43a5"))
	bech32Encoded, err := encodeBech32(chaincfg.MainNetParams().TexHRP(),
		receiver[:])
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// A 21-byte payload.
	longPayload, err := encodeBech32m(chaincfg.MainNetParams().TexHRP(),
		append(receiver.Bytes(), 0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := []struct {
		name    string
		addr    string
		wantErr error
	}{{
		name:    "not a tex address",
		addr:    "t1VmmGiyjVNeCjxDZzg7vZmd99WyzVby9yC",
		wantErr: ErrUnrecognizedAddressType,
	}, {
		name:    "bad checksum",
		addr:    valid[:len(valid)-1] + "q",
		wantErr: ErrInvalidChecksum,
	}, {
		name:    "character outside charset",
		addr:    valid[:10] + "b" + valid[11:],
		wantErr: ErrInvalidCharacter,
	}, {
		name:    "mixed case",
		addr:    strings.ToUpper(valid[:10]) + valid[10:],
		wantErr: ErrInvalidCharacter,
	}, {
		name:    "original bech32 checksum",
		addr:    bech32Encoded,
		wantErr: ErrInvalidChecksum,
	}, {
		name:    "wrong payload length",
		addr:    longPayload,
		wantErr: ErrInvalidAddress,
	}, {
		name:    "too long",
		addr:    "tex1" + strings.Repeat("q", maxTexAddrLen),
		wantErr: ErrInvalidAddress,
	}}

	for _, test := range tests {
		_, err := ParseTexAddress(test.addr)
		if !errors.Is(err, test.wantErr) {
			t.Errorf("%s: mismatched err -- got %v, want %v", test.name, err,
				test.wantErr)
		}
	}
}
