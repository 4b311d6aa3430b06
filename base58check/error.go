// Copyright (c) 2021-2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package base58check

// ErrorKind identifies a kind of error.
type ErrorKind string

// These constants are used to identify a specific ErrorKind.
const (
	// ErrInvalidCharacter indicates that an encoded string contains a
	// character outside of the base58 alphabet.
	ErrInvalidCharacter = ErrorKind("ErrInvalidCharacter")

	// ErrInvalidChecksum indicates that the checksum of a check-encoded string
	// does not verify against the decoded payload.
	ErrInvalidChecksum = ErrorKind("ErrInvalidChecksum")

	// ErrInvalidFormat indicates that a check-encoded string decodes to fewer
	// bytes than are required to hold the checksum and any version bytes.
	ErrInvalidFormat = ErrorKind("ErrInvalidFormat")

	// ErrBufferTooSmall indicates that a caller-provided destination buffer
	// is too small to hold the decoded payload.
	ErrBufferTooSmall = ErrorKind("ErrBufferTooSmall")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// Error identifies a base58check encoding error.
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
