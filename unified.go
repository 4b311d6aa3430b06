// Copyright (c) 2024-2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package zaddr

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/decred/dcrd/wire"
	"github.com/zcashgo/zaddr/chaincfg"
	"github.com/zcashgo/zaddr/crypto/f4jumble"
)

// These constants define the typecodes of the items in the body of a unified
// address.
const (
	TypeCodeTransparentP2PKH = 0x00
	TypeCodeTransparentP2SH  = 0x01
	TypeCodeSapling          = 0x02
	TypeCodeOrchard          = 0x03

	TypeCodeExpirationHeight = 0xe0
	TypeCodeExpirationDate   = 0xe1

	// typeCodeMustUnderstandMin and typeCodeMustUnderstandMax bound the
	// typecodes a decoder must understand in order to accept an address.
	typeCodeMustUnderstandMin = 0xe0
	typeCodeMustUnderstandMax = 0xfd
)

// maxUnifiedAddrLen is the longest string that could hold a unified address
// whose body is no longer than f4jumble.MaxLength.
var maxUnifiedAddrLen = bech32EncodedLen(chaincfg.TestNetParams().UnifiedHRP(),
	f4jumble.MaxLength)

// unifiedItem is a single typecode and value pair of a unified address body.
type unifiedItem struct {
	typeCode uint64
	value    []byte
}

// serializeSize returns the number of bytes the item occupies in the body.
func (item *unifiedItem) serializeSize() int {
	return wire.VarIntSerializeSize(item.typeCode) +
		wire.VarIntSerializeSize(uint64(len(item.value))) + len(item.value)
}

// encodeUnifiedBody serializes the items in ascending typecode order followed
// by the padding.
func encodeUnifiedBody(items []unifiedItem, padding [chaincfg.UnifiedPaddingLen]byte) ([]byte, error) {
	sort.Slice(items, func(i, j int) bool {
		return items[i].typeCode < items[j].typeCode
	})

	size := len(padding)
	for i := range items {
		size += items[i].serializeSize()
	}
	buf := bytes.NewBuffer(make([]byte, 0, size))
	for i := range items {
		if err := wire.WriteVarInt(buf, wire.ProtocolVersion, items[i].typeCode); err != nil {
			return nil, err
		}
		valueLen := uint64(len(items[i].value))
		if err := wire.WriteVarInt(buf, wire.ProtocolVersion, valueLen); err != nil {
			return nil, err
		}
		buf.Write(items[i].value)
	}
	buf.Write(padding[:])
	return buf.Bytes(), nil
}

// OrchardAddress is a unified address with a single Orchard receiver.
type OrchardAddress struct {
	net      chaincfg.Network
	receiver OrchardReceiver
	meta     UnifiedEncodingMetadata
	str      string
}

// NewOrchardAddress returns a unified address holding only the provided
// Orchard receiver on the network described by params.
func NewOrchardAddress(receiver OrchardReceiver, params *chaincfg.Params) (*OrchardAddress, error) {
	str, err := encodeUnified([]UnifiedReceiver{receiver},
		UnifiedEncodingMetadata{}, params)
	if err != nil {
		return nil, err
	}
	return &OrchardAddress{net: params.Net, receiver: receiver, str: str}, nil
}

// String returns the Bech32m encoding of the address.
func (addr *OrchardAddress) String() string { return addr.str }

// Network returns the network of the address.
func (addr *OrchardAddress) Network() chaincfg.Network { return addr.net }

// HasShieldedReceiver returns true.
func (addr *OrchardAddress) HasShieldedReceiver() bool { return true }

// Receiver returns the receiver for KindOrchard.
func (addr *OrchardAddress) Receiver(kind ReceiverKind) (Receiver, bool) {
	if kind == KindOrchard {
		return addr.receiver, true
	}
	return nil, false
}

// Receivers returns a slice holding only the address itself.
func (addr *OrchardAddress) Receivers() []Address {
	return []Address{addr}
}

// Metadata returns the metadata encoded in the address.
func (addr *OrchardAddress) Metadata() UnifiedEncodingMetadata {
	return addr.meta
}

// OrchardReceiver returns the receiver of the address.
func (addr *OrchardAddress) OrchardReceiver() OrchardReceiver {
	return addr.receiver
}

func (addr *OrchardAddress) zcashAddress() {}

// CompoundUnifiedAddress is a unified address whose receivers are not a lone
// Orchard receiver.
type CompoundUnifiedAddress struct {
	net       chaincfg.Network
	receivers []Address
	meta      UnifiedEncodingMetadata
	str       string
}

// String returns the Bech32m encoding of the address.
func (addr *CompoundUnifiedAddress) String() string { return addr.str }

// Network returns the network of the address.
func (addr *CompoundUnifiedAddress) Network() chaincfg.Network { return addr.net }

// HasShieldedReceiver returns whether any known receiver of the address funds
// a shielded pool.
func (addr *CompoundUnifiedAddress) HasShieldedReceiver() bool {
	for _, r := range addr.receivers {
		if r.HasShieldedReceiver() {
			return true
		}
	}
	return false
}

// Receiver returns the receiver of the provided kind when the address holds
// one.
func (addr *CompoundUnifiedAddress) Receiver(kind ReceiverKind) (Receiver, bool) {
	for _, r := range addr.receivers {
		if receiver, ok := r.Receiver(kind); ok {
			return receiver, true
		}
	}
	return nil, false
}

// Receivers returns the addresses of the individual receivers, shielded pools
// first.
func (addr *CompoundUnifiedAddress) Receivers() []Address {
	return append([]Address(nil), addr.receivers...)
}

// Metadata returns the metadata encoded in the address.
func (addr *CompoundUnifiedAddress) Metadata() UnifiedEncodingMetadata {
	return addr.meta
}

func (addr *CompoundUnifiedAddress) zcashAddress() {}

// unifiedReceiversOf returns the receivers an address contributes to a unified
// address.
func unifiedReceiversOf(addr Address) ([]UnifiedReceiver, error) {
	switch a := addr.(type) {
	case *TransparentP2PKHAddress:
		return []UnifiedReceiver{a.receiver}, nil
	case *TransparentP2SHAddress:
		return []UnifiedReceiver{a.receiver}, nil
	case *SaplingAddress:
		return []UnifiedReceiver{a.receiver}, nil
	case *OrchardAddress:
		return []UnifiedReceiver{a.receiver}, nil
	case *CompoundUnifiedAddress:
		var receivers []UnifiedReceiver
		for _, child := range a.receivers {
			rs, err := unifiedReceiversOf(child)
			if err != nil {
				return nil, err
			}
			receivers = append(receivers, rs...)
		}
		return receivers, nil
	case *SproutAddress, *TexAddress:
		str := fmt.Sprintf("%T receivers cannot be embedded in a unified "+
			"address", addr)
		return nil, makeError(ErrUnsupportedOperation, str)
	}

	str := fmt.Sprintf("unsupported address type %T", addr)
	return nil, makeError(ErrInvalidArgument, str)
}

// CreateUnifiedAddress returns a unified address that bundles the receivers of
// the provided addresses.  See CreateUnifiedAddressWithMetadata for details.
func CreateUnifiedAddress(addrs ...Address) (UnifiedAddress, error) {
	return CreateUnifiedAddressWithMetadata(UnifiedEncodingMetadata{}, addrs...)
}

// CreateUnifiedAddressWithMetadata returns a unified address that bundles the
// receivers of the provided addresses along with the provided metadata.
//
// Unified addresses among the inputs contribute each of their receivers, but
// not their metadata.  A lone unified address is returned unchanged when no
// metadata is provided.  Sprout and TEX addresses cannot be embedded and
// result in an error with kind ErrUnsupportedOperation.  An error with kind
// ErrInvalidArgument is returned when there are no inputs, the inputs span
// networks, more than one transparent receiver or two receivers of the same
// type are provided, or there is no shielded receiver.
//
// The result is an *OrchardAddress when the only receiver is an Orchard
// receiver and a *CompoundUnifiedAddress otherwise.
func CreateUnifiedAddressWithMetadata(meta UnifiedEncodingMetadata, addrs ...Address) (UnifiedAddress, error) {
	if len(addrs) == 0 {
		return nil, makeError(ErrInvalidArgument,
			"a unified address requires at least one receiver")
	}
	if len(addrs) == 1 && meta.IsEmpty() {
		if ua, ok := addrs[0].(UnifiedAddress); ok {
			return ua, nil
		}
	}
	meta, err := meta.normalize()
	if err != nil {
		return nil, err
	}

	var (
		net         chaincfg.Network
		receivers   []UnifiedReceiver
		seen        = make(map[byte]struct{})
		transparent int
		shielded    bool
	)
	for i, addr := range addrs {
		if addr == nil {
			return nil, makeError(ErrInvalidArgument, "nil address")
		}
		if i == 0 {
			net = addr.Network()
		} else if addr.Network() != net {
			str := fmt.Sprintf("address %s is for %v while address %s is "+
				"for %v", addr, addr.Network(), addrs[0], net)
			return nil, makeError(ErrInvalidArgument, str)
		}

		rs, err := unifiedReceiversOf(addr)
		if err != nil {
			return nil, err
		}
		for _, r := range rs {
			typeCode := r.UnifiedTypeCode()
			if _, ok := seen[typeCode]; ok {
				str := fmt.Sprintf("duplicate receiver of type %v",
					r.Kind())
				return nil, makeError(ErrInvalidArgument, str)
			}
			seen[typeCode] = struct{}{}

			if r.Pool().IsShielded() {
				shielded = true
			} else {
				transparent++
				if transparent > 1 {
					return nil, makeError(ErrInvalidArgument,
						"a unified address holds at most one transparent "+
							"receiver")
				}
			}
			receivers = append(receivers, r)
		}
	}
	if !shielded {
		return nil, makeError(ErrInvalidArgument,
			"a unified address requires a shielded receiver")
	}

	params := chaincfg.ParamsForNetwork(net)
	if params == nil {
		str := fmt.Sprintf("unsupported network %v", net)
		return nil, makeError(ErrInvalidArgument, str)
	}
	str, err := encodeUnified(receivers, meta, params)
	if err != nil {
		return nil, err
	}
	return newUnifiedAddress(receivers, meta, str, params)
}

// encodeUnified returns the unified encoding of the receivers and metadata.
func encodeUnified(receivers []UnifiedReceiver, meta UnifiedEncodingMetadata, params *chaincfg.Params) (string, error) {
	items := meta.items()
	for _, r := range receivers {
		items = append(items, unifiedItem{
			typeCode: uint64(r.UnifiedTypeCode()),
			value:    r.Bytes(),
		})
	}
	body, err := encodeUnifiedBody(items, params.UnifiedPadding())
	if err != nil {
		return "", makeError(ErrInvalidArgument, err.Error())
	}
	if err := f4jumble.JumbleInPlace(body); err != nil {
		return "", makeError(ErrInvalidArgument, err.Error())
	}
	return encodeBech32m(params.UnifiedHRP(), body)
}

// addressForReceiver returns the single-pool address of an embedded receiver.
func addressForReceiver(r UnifiedReceiver, params *chaincfg.Params) (Address, error) {
	switch receiver := r.(type) {
	case TransparentP2PKHReceiver:
		return NewTransparentP2PKHAddress(receiver, params), nil
	case TransparentP2SHReceiver:
		return NewTransparentP2SHAddress(receiver, params), nil
	case SaplingReceiver:
		return NewSaplingAddress(receiver, params)
	case OrchardReceiver:
		return NewOrchardAddress(receiver, params)
	}
	str := fmt.Sprintf("unsupported receiver type %T", r)
	return nil, makeError(ErrInvalidArgument, str)
}

// newUnifiedAddress returns the unified address with the provided encoding.
// The receivers are exposed in descending typecode order.
func newUnifiedAddress(receivers []UnifiedReceiver, meta UnifiedEncodingMetadata, str string, params *chaincfg.Params) (UnifiedAddress, error) {
	if len(receivers) == 1 {
		if orchard, ok := receivers[0].(OrchardReceiver); ok {
			return &OrchardAddress{
				net:      params.Net,
				receiver: orchard,
				meta:     meta,
				str:      str,
			}, nil
		}
	}

	sorted := append([]UnifiedReceiver(nil), receivers...)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].UnifiedTypeCode() > sorted[j].UnifiedTypeCode()
	})
	children := make([]Address, 0, len(sorted))
	for _, r := range sorted {
		child, err := addressForReceiver(r, params)
		if err != nil {
			return nil, err
		}
		children = append(children, child)
	}
	return &CompoundUnifiedAddress{
		net:       params.Net,
		receivers: children,
		meta:      meta,
		str:       str,
	}, nil
}

// ParseUnifiedAddress decodes a unified address.  The network is inferred from
// the human-readable part.
//
// Items with typecodes that are not understood are skipped unless they fall in
// the must-understand range, in which case an error with kind
// ErrUnrecognizedRequiredMetadata is returned.  Corrupted padding results in
// an error with kind ErrInvalidPadding.
func ParseUnifiedAddress(s string) (UnifiedAddress, error) {
	params := paramsForBech32Prefix(s, (*chaincfg.Params).UnifiedHRP)
	if params == nil {
		str := fmt.Sprintf("address %q is not a unified address", s)
		return nil, makeError(ErrUnrecognizedAddressType, str)
	}
	if len(s) > maxUnifiedAddrLen {
		str := fmt.Sprintf("unified address is %d characters vs a maximum of "+
			"%d", len(s), maxUnifiedAddrLen)
		return nil, makeError(ErrInvalidAddress, str)
	}

	hrp, body, err := decodeBech32m("unified address", s)
	if err != nil {
		return nil, err
	}
	if err := checkHRP("unified address", hrp, params.UnifiedHRP()); err != nil {
		return nil, err
	}
	if !f4jumble.ValidLength(len(body)) {
		str := fmt.Sprintf("unified address body is %d bytes vs a valid "+
			"range of [%d, %d]", len(body), f4jumble.MinLength,
			f4jumble.MaxLength)
		return nil, makeError(ErrInvalidAddress, str)
	}
	if err := f4jumble.UnjumbleInPlace(body); err != nil {
		return nil, makeError(ErrInvalidAddress, err.Error())
	}

	padding := params.UnifiedPadding()
	items := body[:len(body)-len(padding)]
	if !bytes.Equal(body[len(items):], padding[:]) {
		str := fmt.Sprintf("unified address padding %x does not match the "+
			"expected %x", body[len(items):], padding)
		return nil, makeError(ErrInvalidPadding, str)
	}

	receivers, meta, unknownReceivers, err := parseUnifiedItems(items)
	if err != nil {
		return nil, err
	}

	// Receivers with unknown typecodes may belong to shielded pools this
	// package does not know, so they satisfy the shielded receiver rule.
	var transparent int
	var shielded bool
	for _, r := range receivers {
		if r.Pool().IsShielded() {
			shielded = true
		} else {
			transparent++
		}
	}
	switch {
	case transparent > 1:
		return nil, makeError(ErrInvalidAddress,
			"unified address holds more than one transparent receiver")
	case !shielded && unknownReceivers == 0:
		return nil, makeError(ErrInvalidAddress,
			"unified address holds no shielded or unknown receivers")
	}

	return newUnifiedAddress(receivers, meta, strings.ToLower(s), params)
}

// parseUnifiedItems parses the items of a unjumbled unified address body with
// the padding removed.  It returns the recognized receivers, the metadata, and
// the number of receivers with unknown typecodes that were skipped.
func parseUnifiedItems(items []byte) ([]UnifiedReceiver, UnifiedEncodingMetadata, int, error) {
	var (
		receivers        []UnifiedReceiver
		meta             UnifiedEncodingMetadata
		unknownReceivers int
		prevTypeCode     uint64
	)
	r := bytes.NewReader(items)
	for i := 0; r.Len() > 0; i++ {
		typeCode, err := wire.ReadVarInt(r, wire.ProtocolVersion)
		if err != nil {
			return nil, meta, 0, itemReadError("typecode", err)
		}
		if i > 0 && typeCode <= prevTypeCode {
			str := fmt.Sprintf("typecode %#x follows typecode %#x", typeCode,
				prevTypeCode)
			return nil, meta, 0, makeError(ErrInvalidAddress, str)
		}
		prevTypeCode = typeCode

		valueLen, err := wire.ReadVarInt(r, wire.ProtocolVersion)
		if err != nil {
			return nil, meta, 0, itemReadError("length", err)
		}
		if valueLen > uint64(r.Len()) {
			str := fmt.Sprintf("item with typecode %#x claims %d bytes with "+
				"only %d remaining", typeCode, valueLen, r.Len())
			return nil, meta, 0, makeError(ErrInvalidAddress, str)
		}
		value := make([]byte, valueLen)
		if _, err := io.ReadFull(r, value); err != nil {
			return nil, meta, 0, itemReadError("value", err)
		}

		var receiver UnifiedReceiver
		switch {
		case typeCode == TypeCodeTransparentP2PKH:
			receiver, err = NewTransparentP2PKHReceiver(value)
		case typeCode == TypeCodeTransparentP2SH:
			receiver, err = NewTransparentP2SHReceiver(value)
		case typeCode == TypeCodeSapling:
			receiver, err = NewSaplingReceiver(value)
		case typeCode == TypeCodeOrchard:
			receiver, err = NewOrchardReceiver(value)
		case typeCode >= typeCodeMustUnderstandMin &&
			typeCode <= typeCodeMustUnderstandMax:
			if err := meta.setItem(typeCode, value); err != nil {
				return nil, meta, 0, err
			}
			continue
		case typeCode < typeCodeMustUnderstandMin:
			log.Tracef("Skipping unknown receiver with typecode %#x", typeCode)
			unknownReceivers++
			continue
		default:
			log.Tracef("Skipping unknown metadata with typecode %#x", typeCode)
			continue
		}
		if err != nil {
			str := fmt.Sprintf("malformed receiver with typecode %#x: %v",
				typeCode, err)
			return nil, meta, 0, makeError(ErrInvalidAddress, str)
		}
		receivers = append(receivers, receiver)
	}
	return receivers, meta, unknownReceivers, nil
}

// itemReadError converts a failure to read part of an item to an address
// error.
func itemReadError(what string, err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		str := fmt.Sprintf("unified address item %s is truncated", what)
		return makeError(ErrInvalidAddress, str)
	}
	str := fmt.Sprintf("malformed unified address item %s: %v", what, err)
	return makeError(ErrInvalidAddress, str)
}
