// Copyright (c) 2021-2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package zaddr

// ErrorKind identifies a kind of error.
type ErrorKind string

// These constants are used to identify a specific ErrorKind.
const (
	// ErrUnrecognizedAddressType indicates that a string does not carry the
	// prefix of the address type a parser handles.  The dispatcher treats it
	// as a signal to try the next address type.
	ErrUnrecognizedAddressType = ErrorKind("ErrUnrecognizedAddressType")

	// ErrUnrecognizedAddress indicates that a string is not recognized by any
	// of the supported address types.
	ErrUnrecognizedAddress = ErrorKind("ErrUnrecognizedAddress")

	// ErrInvalidAddress indicates that a string carries the prefix of a known
	// address type but violates its structure, such as a bad length, mixed
	// receiver networks, a duplicate receiver type, multiple transparent
	// receivers, or no shielded receiver.
	ErrInvalidAddress = ErrorKind("ErrInvalidAddress")

	// ErrInvalidPadding indicates that the padding recovered from a unified
	// address does not match the padding required for its network.  It
	// identifies a corrupted unified address as opposed to a string that is
	// not a unified address at all.
	ErrInvalidPadding = ErrorKind("ErrInvalidPadding")

	// ErrInvalidChecksum indicates that the checksum of an encoded address
	// does not verify.
	ErrInvalidChecksum = ErrorKind("ErrInvalidChecksum")

	// ErrInvalidCharacter indicates that an encoded address contains a
	// character outside of the alphabet of its encoding.
	ErrInvalidCharacter = ErrorKind("ErrInvalidCharacter")

	// ErrBufferTooSmall indicates that a caller-provided destination buffer
	// cannot hold the requested encoding.
	ErrBufferTooSmall = ErrorKind("ErrBufferTooSmall")

	// ErrUnrecognizedRequiredMetadata indicates that a unified encoding
	// contains an item with a must-understand typecode that is not known.
	ErrUnrecognizedRequiredMetadata = ErrorKind("ErrUnrecognizedRequiredMetadata")

	// ErrInvalidArgument indicates that a constructor was called with values
	// that violate its preconditions, such as a receiver of the wrong length
	// or a set of receivers that cannot form a unified address.
	ErrInvalidArgument = ErrorKind("ErrInvalidArgument")

	// ErrUnsupportedOperation indicates an attempt to embed a receiver type
	// that has no unified encoding, such as Sprout or TEX, in a unified
	// address.
	ErrUnsupportedOperation = ErrorKind("ErrUnsupportedOperation")

	// ErrWrongNetwork indicates that an address decoded successfully but is
	// for a different network than the one requested.
	ErrWrongNetwork = ErrorKind("ErrWrongNetwork")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// Error identifies an address-related error.
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

// makeError creates an Error given a set of arguments.
func makeError(kind ErrorKind, desc string) Error {
	return Error{Err: kind, Description: desc}
}
