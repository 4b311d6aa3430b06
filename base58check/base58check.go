// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package base58check implements the Base58Check encoding used by Zcash
// transparent and Sprout addresses.
//
// The encoding appends a 4-byte checksum, the first four bytes of the double
// SHA-256 of the payload, and then renders payload || checksum in base58 using
// the Bitcoin alphabet.  Every leading zero byte is rendered as a leading '1'.
//
// The alphabet conversion is delegated to the base58 package.
package base58check

import (
	"crypto/sha256"
	"fmt"

	"github.com/decred/base58"
)

const (
	// ChecksumLen is the number of checksum bytes appended to a payload.
	ChecksumLen = 4

	// VersionLen is the number of version bytes prepended to the data by
	// CheckEncode.
	VersionLen = 2
)

// checksum returns the first four bytes of the double SHA-256 of the input.
func checksum(input []byte) (cksum [ChecksumLen]byte) {
	h := sha256.Sum256(input)
	h2 := sha256.Sum256(h[:])
	copy(cksum[:], h2[:ChecksumLen])
	return
}

// Encode returns the base58check encoding of the provided payload.  The
// payload is expected to already contain any version bytes.
func Encode(payload []byte) string {
	b := make([]byte, 0, len(payload)+ChecksumLen)
	b = append(b, payload...)
	cksum := checksum(payload)
	b = append(b, cksum[:]...)
	return base58.Encode(b)
}

// decodeRaw converts the string to bytes and splits off the checksum after
// verifying it.
func decodeRaw(s string) ([]byte, error) {
	decoded := base58.Decode(s)
	if len(decoded) == 0 && len(s) != 0 {
		str := fmt.Sprintf("string %q contains a character outside the "+
			"base58 alphabet", s)
		return nil, makeError(ErrInvalidCharacter, str)
	}
	if len(decoded) < ChecksumLen {
		str := fmt.Sprintf("decoded length %d is shorter than the %d byte "+
			"checksum", len(decoded), ChecksumLen)
		return nil, makeError(ErrInvalidFormat, str)
	}

	payload := decoded[:len(decoded)-ChecksumLen]
	var gotCksum [ChecksumLen]byte
	copy(gotCksum[:], decoded[len(decoded)-ChecksumLen:])
	if wantCksum := checksum(payload); gotCksum != wantCksum {
		str := fmt.Sprintf("checksum mismatch -- got %x, want %x", gotCksum,
			wantCksum)
		return nil, makeError(ErrInvalidChecksum, str)
	}
	return payload, nil
}

// Decode decodes a base58check encoded string and returns the payload with the
// checksum removed.
func Decode(s string) ([]byte, error) {
	return decodeRaw(s)
}

// DecodeTo decodes a base58check encoded string into dst and returns the
// number of payload bytes written.  An error with kind ErrBufferTooSmall is
// returned when dst cannot hold the payload.  Data errors are reported before
// the buffer size is considered.
func DecodeTo(dst []byte, s string) (int, error) {
	payload, err := decodeRaw(s)
	if err != nil {
		return 0, err
	}
	if len(dst) < len(payload) {
		str := fmt.Sprintf("destination holds %d bytes, payload requires %d",
			len(dst), len(payload))
		return 0, makeError(ErrBufferTooSmall, str)
	}
	return copy(dst, payload), nil
}

// CheckEncode prepends two version bytes to the data and returns the
// base58check encoding of the result.
func CheckEncode(data []byte, version [VersionLen]byte) string {
	b := make([]byte, 0, VersionLen+len(data))
	b = append(b, version[:]...)
	b = append(b, data...)
	return Encode(b)
}

// CheckDecode decodes a string that was encoded with CheckEncode, verifies the
// checksum, and returns the data along with its version bytes.
func CheckDecode(s string) (data []byte, version [VersionLen]byte, err error) {
	payload, err := decodeRaw(s)
	if err != nil {
		return nil, version, err
	}
	if len(payload) < VersionLen {
		str := fmt.Sprintf("decoded payload of %d bytes has no room for the "+
			"%d version bytes", len(payload), VersionLen)
		return nil, version, makeError(ErrInvalidFormat, str)
	}
	copy(version[:], payload[:VersionLen])
	return payload[VersionLen:], version, nil
}
