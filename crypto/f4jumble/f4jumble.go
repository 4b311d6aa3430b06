// Copyright (c) 2024-2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package f4jumble implements the F4Jumble unkeyed permutation defined by
// ZIP-316.
//
// F4Jumble is a four-round Feistel construction over a message of between
// MinLength and MaxLength bytes that diffuses every input bit across the
// whole output.  Unified addresses and viewing keys are jumbled before they are
// Bech32m encoded so that an attacker cannot craft an address that shares a
// visible prefix or suffix with a target address without also matching its
// receivers.
//
// The message is split into a left part of min(64, L/2) bytes and a right part
// holding the rest.  The rounds are
//
//	right ^= G(0, left)
//	left  ^= H(0, right)
//	right ^= G(1, left)
//	left  ^= H(1, right)
//
// where H is a BLAKE2b digest of the right part sized to the left part, and G
// is a concatenation of 64-byte BLAKE2b digests of the left part, one per
// 64-byte block of the right part.  Both are personalized with the round index.
// The inverse runs the same rounds in the opposite order.
package f4jumble

import (
	"encoding/binary"
	"fmt"
	"hash"

	blake2b "github.com/minio/blake2b-simd"
)

const (
	// MinLength is the shortest message that can be jumbled.
	MinLength = 48

	// hashLen is the output length of a single BLAKE2b-512 block.
	hashLen = 64

	// MaxLength is the longest message that can be jumbled.  The G round
	// block counter is 16 bits wide, which bounds the right part to 2^16
	// blocks of 64 bytes.
	MaxLength = hashLen*(1<<16) + hashLen
)

var (
	// personalH and personalG are the fixed personalization prefixes of the
	// H and G round functions.  The remaining three bytes of the 16-byte
	// personalization are the round index and, for G, the little-endian
	// block counter.
	personalH = []byte("UA_F4Jumble_H")
	personalG = []byte("UA_F4Jumble_G")
)

// ErrorKind identifies a kind of error.
type ErrorKind string

// ErrInvalidLength indicates the message length is outside of the range
// [MinLength, MaxLength].
const ErrInvalidLength = ErrorKind("ErrInvalidLength")

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// Error identifies an F4Jumble error.
//
// It has full support for errors.Is and errors.As, so the caller can ascertain
// the specific reason for the error by checking the underlying error.
type Error struct {
	Err         error
	Description string
}

// Error satisfies the error interface and prints human-readable errors.
func (e Error) Error() string {
	return e.Description
}

// Unwrap returns the underlying wrapped error.
func (e Error) Unwrap() error {
	return e.Err
}

// checkLength returns an error when the message length is not valid.
func checkLength(n int) error {
	if n < MinLength || n > MaxLength {
		str := fmt.Sprintf("message length %d is outside of the valid range "+
			"[%d, %d]", n, MinLength, MaxLength)
		return Error{Err: ErrInvalidLength, Description: str}
	}
	return nil
}

// ValidLength returns whether a message of n bytes may be jumbled.
func ValidLength(n int) bool {
	return checkLength(n) == nil
}

// newHash returns a BLAKE2b hasher with the given digest size and
// personalization.  The configurations used by this package are statically
// valid, so a failure indicates a programming error.
func newHash(size int, personal []byte) hash.Hash {
	h, err := blake2b.New(&blake2b.Config{
		Size:   uint8(size),
		Person: personal,
	})
	if err != nil {
		panic(fmt.Sprintf("invalid blake2b config (size %d, personal %x): %v",
			size, personal, err))
	}
	return h
}

// split returns the left and right parts of the message.
func split(message []byte) (left, right []byte) {
	leftLen := len(message) / 2
	if leftLen > hashLen {
		leftLen = hashLen
	}
	return message[:leftLen], message[leftLen:]
}

// roundH xors the H_i digest of right into left.
func roundH(i byte, left, right []byte) {
	var personal [16]byte
	copy(personal[:], personalH)
	personal[13] = i

	h := newHash(len(left), personal[:])
	h.Write(right)
	var digest [hashLen]byte
	sum := h.Sum(digest[:0])
	for k := range left {
		left[k] ^= sum[k]
	}
}

// roundG xors the G_i keystream derived from left into right.
func roundG(i byte, left, right []byte) {
	var personal [16]byte
	copy(personal[:], personalG)
	personal[13] = i

	var digest [hashLen]byte
	for j := 0; j*hashLen < len(right); j++ {
		binary.LittleEndian.PutUint16(personal[14:], uint16(j))
		h := newHash(hashLen, personal[:])
		h.Write(left)
		sum := h.Sum(digest[:0])

		block := right[j*hashLen:]
		if len(block) > hashLen {
			block = block[:hashLen]
		}
		for k := range block {
			block[k] ^= sum[k]
		}
	}
}

// JumbleInPlace applies the forward F4Jumble permutation to the message in
// place.
func JumbleInPlace(message []byte) error {
	if err := checkLength(len(message)); err != nil {
		return err
	}

	left, right := split(message)
	roundG(0, left, right)
	roundH(0, left, right)
	roundG(1, left, right)
	roundH(1, left, right)
	return nil
}

// UnjumbleInPlace applies the inverse F4Jumble permutation to the message in
// place.
func UnjumbleInPlace(message []byte) error {
	if err := checkLength(len(message)); err != nil {
		return err
	}

	left, right := split(message)
	roundH(1, left, right)
	roundG(1, left, right)
	roundH(0, left, right)
	roundG(0, left, right)
	return nil
}

// Jumble returns the forward F4Jumble permutation of the message.  The
// message itself is not modified.
func Jumble(message []byte) ([]byte, error) {
	if err := checkLength(len(message)); err != nil {
		return nil, err
	}
	out := make([]byte, len(message))
	copy(out, message)
	return out, JumbleInPlace(out)
}

// Unjumble returns the inverse F4Jumble permutation of the message.  The
// message itself is not modified.
func Unjumble(message []byte) ([]byte, error) {
	if err := checkLength(len(message)); err != nil {
		return nil, err
	}
	out := make([]byte, len(message))
	copy(out, message)
	return out, UnjumbleInPlace(out)
}
