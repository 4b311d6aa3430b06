// Copyright (c) 2024-2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package zaddr

import (
	"encoding/binary"
	"fmt"
	"math"
	"time"
)

const (
	// expirationHeightLen is the length of the value of an expiration height
	// metadata item.
	expirationHeightLen = 4

	// expirationDateLen is the length of the value of an expiration date
	// metadata item.
	expirationDateLen = 8
)

// UnifiedEncodingMetadata is the optional metadata carried alongside the
// receivers of a unified address.  The zero value carries no metadata.
type UnifiedEncodingMetadata struct {
	// ExpirationHeight is the block height after which the address should no
	// longer be used.  Zero means the address has no expiration height.
	ExpirationHeight uint32

	// ExpirationDate is the time after which the address should no longer be
	// used, with second precision.  The zero time means the address has no
	// expiration date.
	ExpirationDate time.Time
}

// IsEmpty returns whether the metadata carries no items.
func (m UnifiedEncodingMetadata) IsEmpty() bool {
	return m.ExpirationHeight == 0 && m.ExpirationDate.IsZero()
}

// Equal returns whether both metadata carry the same items.
func (m UnifiedEncodingMetadata) Equal(other UnifiedEncodingMetadata) bool {
	return m.ExpirationHeight == other.ExpirationHeight &&
		m.ExpirationDate.Equal(other.ExpirationDate)
}

// normalize returns the metadata with the expiration date truncated to whole
// seconds in UTC, which is the precision it is encoded with.
func (m UnifiedEncodingMetadata) normalize() (UnifiedEncodingMetadata, error) {
	if m.ExpirationDate.IsZero() {
		return m, nil
	}
	secs := m.ExpirationDate.Unix()
	if secs <= 0 {
		str := fmt.Sprintf("expiration date %v precedes the unix epoch",
			m.ExpirationDate)
		return m, makeError(ErrInvalidArgument, str)
	}
	m.ExpirationDate = time.Unix(secs, 0).UTC()
	return m, nil
}

// items returns the encoded metadata items.
func (m UnifiedEncodingMetadata) items() []unifiedItem {
	var items []unifiedItem
	if m.ExpirationHeight != 0 {
		var v [expirationHeightLen]byte
		binary.LittleEndian.PutUint32(v[:], m.ExpirationHeight)
		items = append(items, unifiedItem{
			typeCode: TypeCodeExpirationHeight,
			value:    v[:],
		})
	}
	if !m.ExpirationDate.IsZero() {
		var v [expirationDateLen]byte
		binary.LittleEndian.PutUint64(v[:], uint64(m.ExpirationDate.Unix()))
		items = append(items, unifiedItem{
			typeCode: TypeCodeExpirationDate,
			value:    v[:],
		})
	}
	return items
}

// setItem decodes a metadata item with a known typecode into m.
func (m *UnifiedEncodingMetadata) setItem(typeCode uint64, value []byte) error {
	switch typeCode {
	case TypeCodeExpirationHeight:
		if len(value) != expirationHeightLen {
			str := fmt.Sprintf("expiration height is %d bytes vs required "+
				"%d bytes", len(value), expirationHeightLen)
			return makeError(ErrInvalidAddress, str)
		}
		height := binary.LittleEndian.Uint32(value)
		if height == 0 {
			return makeError(ErrInvalidAddress, "expiration height is zero")
		}
		m.ExpirationHeight = height

	case TypeCodeExpirationDate:
		if len(value) != expirationDateLen {
			str := fmt.Sprintf("expiration date is %d bytes vs required %d "+
				"bytes", len(value), expirationDateLen)
			return makeError(ErrInvalidAddress, str)
		}
		secs := binary.LittleEndian.Uint64(value)
		if secs == 0 || secs > math.MaxInt64 {
			str := fmt.Sprintf("expiration date %d is out of range", secs)
			return makeError(ErrInvalidAddress, str)
		}
		m.ExpirationDate = time.Unix(int64(secs), 0).UTC()

	default:
		str := fmt.Sprintf("unrecognized metadata typecode %#x", typeCode)
		return makeError(ErrUnrecognizedRequiredMetadata, str)
	}
	return nil
}
