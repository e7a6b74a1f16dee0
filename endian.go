// Copyright 2026 The Wirekit Authors
// SPDX-License-Identifier: Apache-2.0

package wirekit

import (
	"encoding/binary"
	"unsafe"
)

// ByteOrder is the byte order multi-byte primitives travel in on the
// wire. It is [encoding/binary.ByteOrder]: wirekit doesn't reinvent
// big/little-endian encode/decode, it just decides, per [Codec], which
// of the standard library's two implementations to hand primitives.go.
type ByteOrder = binary.ByteOrder

// Network byte order constants, matching the wire tag's one-octet
// codes: 0x01 for big-endian, 0x02 for little-endian.
const (
	endianCodeBig    byte = 0x01
	endianCodeLittle byte = 0x02
)

// hostOrder is detected once at package init by probing a known
// multi-byte value's in-memory layout — there is no portable
// host-order query in the standard library. This detection only
// matters for diagnostics and cross-endian conformance tests:
// [Codec] never needs to know the host's order to encode correctly,
// because encoding/binary.ByteOrder already writes directly in the
// requested order regardless of the host's native layout.
var hostOrder ByteOrder

func init() {
	var probe uint16 = 0x0102
	var buf [2]byte
	*(*uint16)(unsafe.Pointer(&buf[0])) = probe
	if buf[0] == 0x01 {
		hostOrder = binary.BigEndian
	} else {
		hostOrder = binary.LittleEndian
	}
}

// HostByteOrder returns the byte order this process's CPU uses
// natively. Exposed for diagnostics and for conformance tests that
// want to exercise both the "native" and "swapped" code paths
// regardless of which platform the test runs on.
func HostByteOrder() ByteOrder { return hostOrder }

// endianCodeFor returns the one-octet wire code for order, used after
// [TagEndian].
func endianCodeFor(order ByteOrder) byte {
	if order == binary.LittleEndian {
		return endianCodeLittle
	}
	return endianCodeBig
}

// byteOrderForCode returns the [ByteOrder] for a wire endian code, or
// false if the code is not one of the two recognised values.
func byteOrderForCode(code byte) (ByteOrder, bool) {
	switch code {
	case endianCodeBig:
		return binary.BigEndian, true
	case endianCodeLittle:
		return binary.LittleEndian, true
	default:
		return nil, false
	}
}
