// Copyright (c) 2024-2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package zaddr

import (
	"errors"
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/btcutil/bech32"
	dcrbech32 "github.com/decred/dcrd/bech32"
)

// bech32ChecksumLen is the number of 5-bit groups in a Bech32 or Bech32m
// checksum.
const bech32ChecksumLen = 6

// bech32EncodedLen returns the length of the Bech32 or Bech32m encoding of
// dataLen bytes under the provided human-readable part.
func bech32EncodedLen(hrp string, dataLen int) int {
	return len(hrp) + 1 + (dataLen*8+4)/5 + bech32ChecksumLen
}

// mapBech32Error converts an error returned by either bech32 implementation to
// an address error of the appropriate kind while retaining its message.
func mapBech32Error(what string, err error) error {
	kind := ErrInvalidAddress
	var (
		errChecksum    bech32.ErrInvalidChecksum
		errNonCharset  bech32.ErrNonCharsetChar
		errCharacter   bech32.ErrInvalidCharacter
		errMixedCase   bech32.ErrMixedCase
		errDcrChecksum dcrbech32.ErrInvalidChecksum
		errDcrNonChar  dcrbech32.ErrNonCharsetChar
		errDcrChar     dcrbech32.ErrInvalidCharacter
		errDcrMixed    dcrbech32.ErrMixedCase
	)
	switch {
	case errors.As(err, &errChecksum), errors.As(err, &errDcrChecksum):
		kind = ErrInvalidChecksum
	case errors.As(err, &errNonCharset), errors.As(err, &errCharacter),
		errors.As(err, &errMixedCase), errors.As(err, &errDcrNonChar),
		errors.As(err, &errDcrChar), errors.As(err, &errDcrMixed):
		kind = ErrInvalidCharacter
	}
	str := fmt.Sprintf("failed to decode %s: %v", what, err)
	return makeError(kind, str)
}

// encodeBech32 encodes the data with the original Bech32 checksum.
func encodeBech32(hrp string, data []byte) (string, error) {
	converted, err := dcrbech32.ConvertBits(data, 8, 5, true)
	if err != nil {
		return "", makeError(ErrInvalidArgument, err.Error())
	}
	encoded, err := dcrbech32.Encode(hrp, converted)
	if err != nil {
		return "", makeError(ErrInvalidArgument, err.Error())
	}
	return encoded, nil
}

// decodeBech32 decodes a string that carries the original Bech32 checksum and
// returns its human-readable part and the data regrouped into bytes.
func decodeBech32(what, s string) (string, []byte, error) {
	hrp, data, err := dcrbech32.Decode(s)
	if err != nil {
		return "", nil, mapBech32Error(what, err)
	}
	regrouped, err := dcrbech32.ConvertBits(data, 5, 8, false)
	if err != nil {
		str := fmt.Sprintf("malformed %s data: %v", what, err)
		return "", nil, makeError(ErrInvalidAddress, str)
	}
	return hrp, regrouped, nil
}

// encodeBech32m encodes the data with the Bech32m checksum.
func encodeBech32m(hrp string, data []byte) (string, error) {
	converted, err := bech32.ConvertBits(data, 8, 5, true)
	if err != nil {
		return "", makeError(ErrInvalidArgument, err.Error())
	}
	encoded, err := bech32.EncodeM(hrp, converted)
	if err != nil {
		return "", makeError(ErrInvalidArgument, err.Error())
	}
	return encoded, nil
}

// decodeBech32m decodes a string that carries the Bech32m checksum and returns
// its human-readable part and the data regrouped into bytes.  There is no
// limit on the string length, so callers must bound it first.
//
// The decoder accepts either checksum variant, so the data is re-encoded with
// the Bech32m constant and compared against the input to reject a string that
// carries an original Bech32 checksum.
func decodeBech32m(what, s string) (string, []byte, error) {
	hrp, data, err := bech32.DecodeNoLimit(s)
	if err != nil {
		return "", nil, mapBech32Error(what, err)
	}
	reencoded, err := bech32.EncodeM(hrp, data)
	if err != nil || reencoded != strings.ToLower(s) {
		str := fmt.Sprintf("%s does not carry a bech32m checksum", what)
		return "", nil, makeError(ErrInvalidChecksum, str)
	}
	regrouped, err := bech32.ConvertBits(data, 5, 8, false)
	if err != nil {
		str := fmt.Sprintf("malformed %s data: %v", what, err)
		return "", nil, makeError(ErrInvalidAddress, str)
	}
	return hrp, regrouped, nil
}
