// Copyright 2026 The Wirekit Authors
// SPDX-License-Identifier: Apache-2.0

package wirekit

// skipValue consumes one wire value of unknown type from source without
// decoding it, returning the number of octets consumed. It implements
// the evolution engine's forward-compat path: an older reader
// encountering fields appended by a newer writer skips them one value
// at a time until the record's declared payload is exhausted.
//
// maxBytes bounds how many octets remain in the enclosing record; it
// is only consulted for TagLiteral, which carries no self-describing
// size (see the width note below), and to divide a container's
// element budget in skipElements.
func (c *Codec) skipValue(source Source, maxBytes int) (int, error) {
	tag, err := c.readTag(source)
	if err != nil {
		return 0, err
	}

	switch tag {
	case TagLiteral:
		// A LITERAL is a bare fixed-width payload (1, 2, 4, or 8
		// octets depending on which primitive wrote it) with no size
		// prefix on the wire, so a generic skipper cannot recover its
		// width from the tag alone. Appending a single trailing
		// LITERAL field to a record remains forward-compatible: the
		// skip below consumes the entire remainder of the declared
		// payload as that field's width, which is exactly right when
		// it is the last field. Appending more than one trailing
		// LITERAL, or a LITERAL followed by further fields, is not
		// supported by this skip path; authors extending a record
		// should make later additions self-delimiting (a string,
		// container, or nested record) so the width travels on the
		// wire.
		width := maxBytes - 1
		if width < 0 {
			return 0, c.fail(source, ErrorKindInvalid, nil, 1)
		}
		if err := source.Skip(width); err != nil {
			return 0, c.fail(source, ErrorKindEndOfStream, err, 1)
		}
		return maxBytes, nil

	case TagEndian:
		if err := source.Skip(1); err != nil {
			return 0, c.fail(source, ErrorKindEndOfStream, err, 1)
		}
		return 2, nil

	case TagString, TagUserDefined:
		// size is an octet count for both: a narrow string's bytes, or
		// a record's already-framed payload length.
		size, err := c.readSize(source)
		if err != nil {
			return 0, err
		}
		if err := source.Skip(size); err != nil {
			return 0, c.fail(source, ErrorKindEndOfStream, err, 1)
		}
		return 1 + 2 + size, nil

	case TagWString:
		// size is a code unit count; each unit is 2 octets on the wire.
		units, err := c.readSize(source)
		if err != nil {
			return 0, err
		}
		octets := units * 2
		if err := source.Skip(octets); err != nil {
			return 0, c.fail(source, ErrorKindEndOfStream, err, 1)
		}
		return 1 + 2 + octets, nil

	case TagVector, TagList, TagSet:
		// size is an element count, not an octet count: each element
		// is itself a fully tagged wire value and must be skipped
		// recursively, one at a time. The exception is a []bool
		// vector's dedicated bitset encoding (tag.go), which packs one
		// raw octet per element with no per-element tag at all; a
		// generic skip has no way to tell that shape apart from a
		// normal TagVector using only the bytes on the wire, so a
		// trailing []bool field is not safely skippable by this path.
		// As with the bare-LITERAL case above, authors appending a new
		// trailing []bool field should expect this limitation.
		return c.skipElements(source, maxBytes, 1)

	case TagMap:
		// size is a pair count; each pair contributes a key value and
		// a value value, so there are 2*size recursively-tagged wire
		// values to skip.
		return c.skipElements(source, maxBytes, 2)

	default:
		return 0, c.fail(source, ErrorKindInvalid, nil, 1)
	}
}

// skipElements skips a TagVector/TagList/TagSet/TagMap value whose tag
// has already been consumed by the caller: it reads the 16-bit element
// (or pair) count, then recursively skips valuesPerElement*count
// individually-tagged wire values.
//
// maxBytes bounds the entire container value, tag included; what's
// left after the 3-octet header is divided evenly among the remaining
// sub-values on each iteration. That division is only exact when every
// remaining sub-value shares the same on-wire width — true of the
// homogeneous element (or key, or value) type a single
// WriteVector/WriteList/WriteSet/WriteMap call produces when that type
// is itself a bare LITERAL, which is the only case where the width
// actually needs recovering; a self-describing element (a string,
// nested container, or record) determines its own width from its own
// wire bytes regardless of the per-iteration guess.
func (c *Codec) skipElements(source Source, maxBytes int, valuesPerElement int) (int, error) {
	count, err := c.readSize(source)
	if err != nil {
		return 0, err
	}
	remainingValues := count * valuesPerElement
	budget := maxBytes - 3
	consumed := 3
	for remainingValues > 0 {
		if budget < 0 {
			return 0, c.fail(source, ErrorKindInvalid, nil, 1)
		}
		elemBudget := budget / remainingValues
		skipped, err := c.skipValue(source, elemBudget)
		if err != nil {
			return 0, err
		}
		consumed += skipped
		budget -= skipped
		remainingValues--
	}
	return consumed, nil
}
