// Copyright (c) 2024-2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package zaddr

import (
	"crypto/sha256"
	"fmt"

	"github.com/decred/dcrd/crypto/ripemd160"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

const (
	// TransparentReceiverLen is the length of a transparent receiver, which
	// is the Hash160 of a public key or redeem script.
	TransparentReceiverLen = ripemd160.Size

	// DiversifierLen is the length of a Sapling or Orchard diversifier.
	DiversifierLen = 11

	// PkdLen is the length of a Sapling or Orchard diversified transmission
	// key.
	PkdLen = 32

	// SaplingReceiverLen is the length of a Sapling receiver.
	SaplingReceiverLen = DiversifierLen + PkdLen

	// OrchardReceiverLen is the length of an Orchard receiver.
	OrchardReceiverLen = DiversifierLen + PkdLen

	// SproutKeyLen is the length of each of the two keys of a Sprout
	// receiver.
	SproutKeyLen = 32

	// SproutReceiverLen is the length of a Sprout receiver.
	SproutReceiverLen = 2 * SproutKeyLen
)

// Receiver is the payload that directs funds into one specific pool.
// Receivers are fixed-size byte arrays, so two receivers are equal exactly when
// they are the same kind and hold the same bytes.
type Receiver interface {
	// Kind returns the kind of the receiver.
	Kind() ReceiverKind

	// Pool returns the pool the receiver funds.
	Pool() Pool

	// EncodingLength returns the number of bytes written by Encode.
	EncodingLength() int

	// Encode writes the raw receiver to dst and returns the number of bytes
	// written, which is always EncodingLength.  An error with kind
	// ErrBufferTooSmall is returned when dst is too small.
	Encode(dst []byte) (int, error)

	// Bytes returns a copy of the raw receiver.
	Bytes() []byte
}

// UnifiedReceiver is a receiver that may be embedded in a unified address.
type UnifiedReceiver interface {
	Receiver

	// UnifiedTypeCode returns the typecode that identifies the receiver in
	// the body of a unified address.
	UnifiedTypeCode() byte
}

// Ensure the receivers implement the expected interfaces.
var (
	_ UnifiedReceiver = TransparentP2PKHReceiver{}
	_ UnifiedReceiver = TransparentP2SHReceiver{}
	_ UnifiedReceiver = SaplingReceiver{}
	_ UnifiedReceiver = OrchardReceiver{}
	_ Receiver        = SproutReceiver{}
	_ Receiver        = TexReceiver{}
)

// encodeReceiver copies the raw receiver to dst.
func encodeReceiver(dst, raw []byte) (int, error) {
	if len(dst) < len(raw) {
		str := fmt.Sprintf("destination holds %d bytes, receiver requires %d",
			len(dst), len(raw))
		return 0, makeError(ErrBufferTooSmall, str)
	}
	return copy(dst, raw), nil
}

// checkLen returns an error when b is not exactly want bytes.
func checkLen(what string, b []byte, want int) error {
	if len(b) != want {
		str := fmt.Sprintf("%s is %d bytes vs required %d bytes", what, len(b),
			want)
		return makeError(ErrInvalidArgument, str)
	}
	return nil
}

// Hash160 calculates the hash ripemd160(sha256(b)).
func Hash160(buf []byte) []byte {
	sha := sha256.Sum256(buf)
	hasher := ripemd160.New()
	hasher.Write(sha[:])
	return hasher.Sum(nil)
}

// TransparentP2PKHReceiver is the Hash160 of a secp256k1 public key.
type TransparentP2PKHReceiver [TransparentReceiverLen]byte

// NewTransparentP2PKHReceiver returns a receiver for the provided 20-byte
// public key hash.
func NewTransparentP2PKHReceiver(pkHash []byte) (TransparentP2PKHReceiver, error) {
	var r TransparentP2PKHReceiver
	if err := checkLen("public key hash", pkHash, len(r)); err != nil {
		return r, err
	}
	copy(r[:], pkHash)
	return r, nil
}

// NewTransparentP2PKHReceiverFromPubKey returns a receiver for the Hash160 of
// the provided serialized secp256k1 public key.  The key must be a valid point
// on the curve in either the compressed or uncompressed format, and it is
// hashed exactly as provided.
func NewTransparentP2PKHReceiverFromPubKey(serializedPubKey []byte) (TransparentP2PKHReceiver, error) {
	if _, err := secp256k1.ParsePubKey(serializedPubKey); err != nil {
		str := fmt.Sprintf("failed to parse public key: %v", err)
		return TransparentP2PKHReceiver{}, makeError(ErrInvalidArgument, str)
	}
	return NewTransparentP2PKHReceiver(Hash160(serializedPubKey))
}

// Kind returns KindTransparentP2PKH.
func (r TransparentP2PKHReceiver) Kind() ReceiverKind { return KindTransparentP2PKH }

// Pool returns PoolTransparent.
func (r TransparentP2PKHReceiver) Pool() Pool { return PoolTransparent }

// EncodingLength returns the length of the receiver.
func (r TransparentP2PKHReceiver) EncodingLength() int { return len(r) }

// Encode writes the receiver to dst.
func (r TransparentP2PKHReceiver) Encode(dst []byte) (int, error) {
	return encodeReceiver(dst, r[:])
}

// Bytes returns a copy of the receiver.
func (r TransparentP2PKHReceiver) Bytes() []byte {
	return append([]byte(nil), r[:]...)
}

// UnifiedTypeCode returns the P2PKH unified typecode.
func (r TransparentP2PKHReceiver) UnifiedTypeCode() byte {
	return TypeCodeTransparentP2PKH
}

// Tex returns the TEX receiver that pays the same public key hash.
func (r TransparentP2PKHReceiver) Tex() TexReceiver {
	return TexReceiver(r)
}

// TransparentP2SHReceiver is the Hash160 of a redeem script.
type TransparentP2SHReceiver [TransparentReceiverLen]byte

// NewTransparentP2SHReceiver returns a receiver for the provided 20-byte
// script hash.
func NewTransparentP2SHReceiver(scriptHash []byte) (TransparentP2SHReceiver, error) {
	var r TransparentP2SHReceiver
	if err := checkLen("script hash", scriptHash, len(r)); err != nil {
		return r, err
	}
	copy(r[:], scriptHash)
	return r, nil
}

// NewTransparentP2SHReceiverFromScript returns a receiver for the Hash160 of
// the provided redeem script.
func NewTransparentP2SHReceiverFromScript(redeemScript []byte) TransparentP2SHReceiver {
	var r TransparentP2SHReceiver
	copy(r[:], Hash160(redeemScript))
	return r
}

// Kind returns KindTransparentP2SH.
func (r TransparentP2SHReceiver) Kind() ReceiverKind { return KindTransparentP2SH }

// Pool returns PoolTransparent.
func (r TransparentP2SHReceiver) Pool() Pool { return PoolTransparent }

// EncodingLength returns the length of the receiver.
func (r TransparentP2SHReceiver) EncodingLength() int { return len(r) }

// Encode writes the receiver to dst.
func (r TransparentP2SHReceiver) Encode(dst []byte) (int, error) {
	return encodeReceiver(dst, r[:])
}

// Bytes returns a copy of the receiver.
func (r TransparentP2SHReceiver) Bytes() []byte {
	return append([]byte(nil), r[:]...)
}

// UnifiedTypeCode returns the P2SH unified typecode.
func (r TransparentP2SHReceiver) UnifiedTypeCode() byte {
	return TypeCodeTransparentP2SH
}

// TexReceiver is a transparent public key hash that may only be funded from
// transparent inputs (ZIP-320).  It is bit-for-bit identical to a
// TransparentP2PKHReceiver and is only ever converted to and from one, so a
// TEX address can never direct funds to a script hash.
type TexReceiver [TransparentReceiverLen]byte

// NewTexReceiver returns a TEX receiver for the provided 20-byte public key
// hash.
func NewTexReceiver(pkHash []byte) (TexReceiver, error) {
	p2pkh, err := NewTransparentP2PKHReceiver(pkHash)
	if err != nil {
		return TexReceiver{}, err
	}
	return p2pkh.Tex(), nil
}

// Kind returns KindTex.
func (r TexReceiver) Kind() ReceiverKind { return KindTex }

// Pool returns PoolTransparent.
func (r TexReceiver) Pool() Pool { return PoolTransparent }

// EncodingLength returns the length of the receiver.
func (r TexReceiver) EncodingLength() int { return len(r) }

// Encode writes the receiver to dst.
func (r TexReceiver) Encode(dst []byte) (int, error) {
	return encodeReceiver(dst, r[:])
}

// Bytes returns a copy of the receiver.
func (r TexReceiver) Bytes() []byte {
	return append([]byte(nil), r[:]...)
}

// TransparentP2PKH returns the P2PKH receiver that pays the same public key
// hash.
func (r TexReceiver) TransparentP2PKH() TransparentP2PKHReceiver {
	return TransparentP2PKHReceiver(r)
}

// shieldedReceiver constructs the diversifier || pk_d encoding shared by
// Sapling and Orchard receivers, validating each part independently.
func shieldedReceiver(pool string, d, pkd []byte) ([SaplingReceiverLen]byte, error) {
	var r [SaplingReceiverLen]byte
	if err := checkLen(pool+" diversifier", d, DiversifierLen); err != nil {
		return r, err
	}
	if err := checkLen(pool+" transmission key", pkd, PkdLen); err != nil {
		return r, err
	}
	copy(r[:DiversifierLen], d)
	copy(r[DiversifierLen:], pkd)
	return r, nil
}

// SaplingReceiver is a Sapling payment address: an 11-byte diversifier
// followed by a 32-byte diversified transmission key.
type SaplingReceiver [SaplingReceiverLen]byte

// NewSaplingReceiver returns a Sapling receiver for the provided 43 bytes.
func NewSaplingReceiver(b []byte) (SaplingReceiver, error) {
	var r SaplingReceiver
	if err := checkLen("sapling receiver", b, len(r)); err != nil {
		return r, err
	}
	copy(r[:], b)
	return r, nil
}

// NewSaplingReceiverFromParts returns a Sapling receiver for the provided
// diversifier and diversified transmission key.
func NewSaplingReceiverFromParts(d, pkd []byte) (SaplingReceiver, error) {
	r, err := shieldedReceiver("sapling", d, pkd)
	return SaplingReceiver(r), err
}

// Kind returns KindSapling.
func (r SaplingReceiver) Kind() ReceiverKind { return KindSapling }

// Pool returns PoolSapling.
func (r SaplingReceiver) Pool() Pool { return PoolSapling }

// EncodingLength returns the length of the receiver.
func (r SaplingReceiver) EncodingLength() int { return len(r) }

// Encode writes the receiver to dst.
func (r SaplingReceiver) Encode(dst []byte) (int, error) {
	return encodeReceiver(dst, r[:])
}

// Bytes returns a copy of the receiver.
func (r SaplingReceiver) Bytes() []byte {
	return append([]byte(nil), r[:]...)
}

// UnifiedTypeCode returns the Sapling unified typecode.
func (r SaplingReceiver) UnifiedTypeCode() byte {
	return TypeCodeSapling
}

// Diversifier returns the diversifier of the receiver.
func (r SaplingReceiver) Diversifier() (d [DiversifierLen]byte) {
	copy(d[:], r[:DiversifierLen])
	return d
}

// Pkd returns the diversified transmission key of the receiver.
func (r SaplingReceiver) Pkd() (pkd [PkdLen]byte) {
	copy(pkd[:], r[DiversifierLen:])
	return pkd
}

// OrchardReceiver is an Orchard raw address: an 11-byte diversifier followed
// by a 32-byte diversified transmission key.
type OrchardReceiver [OrchardReceiverLen]byte

// NewOrchardReceiver returns an Orchard receiver for the provided 43 bytes.
func NewOrchardReceiver(b []byte) (OrchardReceiver, error) {
	var r OrchardReceiver
	if err := checkLen("orchard receiver", b, len(r)); err != nil {
		return r, err
	}
	copy(r[:], b)
	return r, nil
}

// NewOrchardReceiverFromParts returns an Orchard receiver for the provided
// diversifier and diversified transmission key.
func NewOrchardReceiverFromParts(d, pkd []byte) (OrchardReceiver, error) {
	r, err := shieldedReceiver("orchard", d, pkd)
	return OrchardReceiver(r), err
}

// Kind returns KindOrchard.
func (r OrchardReceiver) Kind() ReceiverKind { return KindOrchard }

// Pool returns PoolOrchard.
func (r OrchardReceiver) Pool() Pool { return PoolOrchard }

// EncodingLength returns the length of the receiver.
func (r OrchardReceiver) EncodingLength() int { return len(r) }

// Encode writes the receiver to dst.
func (r OrchardReceiver) Encode(dst []byte) (int, error) {
	return encodeReceiver(dst, r[:])
}

// Bytes returns a copy of the receiver.
func (r OrchardReceiver) Bytes() []byte {
	return append([]byte(nil), r[:]...)
}

// UnifiedTypeCode returns the Orchard unified typecode.
func (r OrchardReceiver) UnifiedTypeCode() byte {
	return TypeCodeOrchard
}

// Diversifier returns the diversifier of the receiver.
func (r OrchardReceiver) Diversifier() (d [DiversifierLen]byte) {
	copy(d[:], r[:DiversifierLen])
	return d
}

// Pkd returns the diversified transmission key of the receiver.
func (r OrchardReceiver) Pkd() (pkd [PkdLen]byte) {
	copy(pkd[:], r[DiversifierLen:])
	return pkd
}

// SproutReceiver is a Sprout payment address: the 32-byte paying key a_pk
// followed by the 32-byte transmission key pk_enc.  Sprout receivers have no
// unified encoding.
type SproutReceiver [SproutReceiverLen]byte

// NewSproutReceiver returns a Sprout receiver for the provided 64 bytes.
func NewSproutReceiver(b []byte) (SproutReceiver, error) {
	var r SproutReceiver
	if err := checkLen("sprout receiver", b, len(r)); err != nil {
		return r, err
	}
	copy(r[:], b)
	return r, nil
}

// NewSproutReceiverFromParts returns a Sprout receiver for the provided paying
// key and transmission key.
func NewSproutReceiverFromParts(apk, pkEnc []byte) (SproutReceiver, error) {
	var r SproutReceiver
	if err := checkLen("sprout paying key", apk, SproutKeyLen); err != nil {
		return r, err
	}
	if err := checkLen("sprout transmission key", pkEnc, SproutKeyLen); err != nil {
		return r, err
	}
	copy(r[:SproutKeyLen], apk)
	copy(r[SproutKeyLen:], pkEnc)
	return r, nil
}

// Kind returns KindSprout.
func (r SproutReceiver) Kind() ReceiverKind { return KindSprout }

// Pool returns PoolSprout.
func (r SproutReceiver) Pool() Pool { return PoolSprout }

// EncodingLength returns the length of the receiver.
func (r SproutReceiver) EncodingLength() int { return len(r) }

// Encode writes the receiver to dst.
func (r SproutReceiver) Encode(dst []byte) (int, error) {
	return encodeReceiver(dst, r[:])
}

// Bytes returns a copy of the receiver.
func (r SproutReceiver) Bytes() []byte {
	return append([]byte(nil), r[:]...)
}

// PayingKey returns a_pk.
func (r SproutReceiver) PayingKey() (apk [SproutKeyLen]byte) {
	copy(apk[:], r[:SproutKeyLen])
	return apk
}

// TransmissionKey returns pk_enc.
func (r SproutReceiver) TransmissionKey() (pkEnc [SproutKeyLen]byte) {
	copy(pkEnc[:], r[SproutKeyLen:])
	return pkEnc
}
