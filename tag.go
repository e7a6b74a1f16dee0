// Copyright 2026 The Wirekit Authors
// SPDX-License-Identifier: Apache-2.0

package wirekit

// Tag is the one-octet wire enumerator that introduces every value on
// the stream. Every encoded value begins with exactly one Tag. Tag
// values are wire-format constants — changing them breaks compatibility
// with every stream ever produced.
type Tag uint8

const (
	// TagUnknown is never emitted. Any tag octet outside this closed
	// set, including 0, is a hard decode error.
	TagUnknown Tag = 0

	// TagLiteral introduces a fixed-width numeric primitive: an
	// integer of width 8/16/32/64 (signed or unsigned) or an
	// IEEE-754 float32/float64, immediately followed by exactly
	// width octets in the stream's byte order.
	TagLiteral Tag = 1

	// TagString introduces a narrow character sequence: a 16-bit
	// element count followed by that many octets. Also used for
	// fixed-capacity char buffers, where the count is strlen+1 (the
	// terminator is included).
	TagString Tag = 8

	// TagWString introduces a wide character sequence: a 16-bit code
	// unit count followed by that many 2-octet code units in the
	// stream's byte order. Code units are always 16 bits on the
	// wire, regardless of the host's native wide character width.
	TagWString Tag = 9

	// TagVector introduces a contiguous ordered sequence: a 16-bit
	// element count followed by that many recursively-encoded
	// elements in insertion order. A vector of bool uses the
	// dedicated bitset encoding (one octet per element) instead of
	// per-element tagging.
	TagVector Tag = 20

	// TagMap introduces a keyed mapping: a 16-bit pair count
	// followed by that many (key, value) pairs in ascending key
	// order, each tagged independently.
	TagMap Tag = 21

	// TagList introduces a linked sequence: framed identically to
	// TagVector (element count, then elements in insertion order).
	// The distinct tag records whether the writer called WriteList
	// or WriteVector (both take a slice), even though the wire bytes
	// are structurally the same as TagVector.
	TagList Tag = 22

	// TagSet introduces a unique, ascending-ordered collection: a
	// 16-bit element count followed by that many recursively-encoded
	// elements in ascending order.
	TagSet Tag = 23

	// TagEndian introduces the optional stream byte-order marker: a
	// single octet immediately follows, 0x01 for big-endian or 0x02
	// for little-endian. At most meaningful as the very first tag on
	// a stream; see endian.go.
	TagEndian Tag = 30

	// TagUserDefined introduces a record: a 16-bit payload-length
	// placeholder (back-patched after encoding), followed by the
	// record's field sequence. The length is what makes the
	// evolution engine's skip/default behaviour possible.
	TagUserDefined Tag = 31
)

// String returns the tag's short wire name, for error messages and
// debug logging.
func (tag Tag) String() string {
	switch tag {
	case TagUnknown:
		return "unknown"
	case TagLiteral:
		return "literal"
	case TagString:
		return "string"
	case TagWString:
		return "wstring"
	case TagVector:
		return "vector"
	case TagMap:
		return "map"
	case TagList:
		return "list"
	case TagSet:
		return "set"
	case TagEndian:
		return "endian"
	case TagUserDefined:
		return "user-defined"
	default:
		return "invalid"
	}
}

// isVariableLength reports whether tag is followed by a 16-bit size
// prefix on the wire (every shape except TagLiteral and TagEndian).
func (tag Tag) isVariableLength() bool {
	switch tag {
	case TagString, TagWString, TagVector, TagMap, TagList, TagSet, TagUserDefined:
		return true
	default:
		return false
	}
}

// maxSizePrefix is the largest value the 16-bit size prefix can carry.
// Strings and containers with more elements, and records with a larger
// payload, are a SizeOverflow error.
const maxSizePrefix = 0xFFFF
