// Copyright 2026 The Wirekit Authors
// SPDX-License-Identifier: Apache-2.0

package wirekit

import "unicode/utf16"

// WriteString writes v as a TagString value: the tag, a 16-bit byte
// length, then v's UTF-8 bytes verbatim. Encoding fails with
// SizeOverflow if v is longer than 65535 octets.
func WriteString(c *Codec, sink Sink, v string) error {
	return c.writeNarrowString(sink, TagString, v)
}

// ReadString decodes a value written by [WriteString].
func ReadString(c *Codec, source Source, v *string) error {
	if c.atFieldBoundary(source) {
		return nil
	}
	s, err := c.readNarrowString(source, TagString)
	if err != nil {
		return err
	}
	*v = s
	return nil
}

// WriteFixedString writes v as a fixed-capacity character-array field:
// the wire count is len(v)+1 (the NUL terminator is part of the count,
// matching a C-style char buffer), and the terminator itself is
// appended to the payload. Encoding fails with StringTooLong instead
// of writing anything if len(v)+1 exceeds capacity octets, the
// compile-time buffer size chosen by the record author.
func WriteFixedString(c *Codec, sink Sink, v string, capacity int) error {
	count := len(v) + 1
	if count > capacity {
		return c.fail(sink, ErrorKindStringTooLong, nil, 1)
	}
	if !sink.Healthy() {
		return c.fail(sink, ErrorKindStreamError, nil, 1)
	}
	if err := c.writeTagAndPayloadHeader(sink, TagString, count); err != nil {
		return err
	}
	payload := make([]byte, count) // payload[len(v)] stays 0: the terminator.
	copy(payload, v)
	if _, err := sink.Write(payload); err != nil {
		return c.fail(sink, ErrorKindStreamError, err, 1)
	}
	return nil
}

// ReadFixedString decodes a value written by [WriteFixedString] into a
// buffer of the given capacity: the wire count includes the trailing
// NUL terminator, which is stripped from the returned string. Fails
// with StringTooLong if the wire count exceeds capacity, or Invalid if
// the count is 0 (too small to hold even an empty string's
// terminator).
func ReadFixedString(c *Codec, source Source, capacity int) (string, error) {
	if c.atFieldBoundary(source) {
		return "", nil
	}
	if err := c.expectTag(source, TagString); err != nil {
		return "", err
	}
	count, err := c.readSize(source)
	if err != nil {
		return "", err
	}
	if count > capacity {
		return "", c.fail(source, ErrorKindStringTooLong, nil, 1)
	}
	if count == 0 {
		return "", c.fail(source, ErrorKindInvalid, nil, 1)
	}
	buf := make([]byte, count)
	if _, err := source.Read(buf); err != nil {
		return "", c.fail(source, ErrorKindEndOfStream, err, 1)
	}
	return string(buf[:count-1]), nil
}

func (c *Codec) writeNarrowString(sink Sink, tag Tag, v string) error {
	payload := []byte(v)
	if !sink.Healthy() {
		return c.fail(sink, ErrorKindStreamError, nil, 2)
	}
	if err := c.writeTagAndPayloadHeader(sink, tag, len(payload)); err != nil {
		return err
	}
	if len(payload) == 0 {
		return nil
	}
	if _, err := sink.Write(payload); err != nil {
		return c.fail(sink, ErrorKindStreamError, err, 2)
	}
	return nil
}

func (c *Codec) readNarrowString(source Source, tag Tag) (string, error) {
	if err := c.expectTag(source, tag); err != nil {
		return "", err
	}
	size, err := c.readSize(source)
	if err != nil {
		return "", err
	}
	if size == 0 {
		return "", nil
	}
	buf := make([]byte, size)
	if _, err := source.Read(buf); err != nil {
		return "", c.fail(source, ErrorKindEndOfStream, err, 2)
	}
	return string(buf), nil
}

// writeTagAndPayloadHeader writes tag followed by a 16-bit size prefix
// for n, the shared header of every length-framed wire value (strings,
// containers, records).
func (c *Codec) writeTagAndPayloadHeader(sink Sink, tag Tag, n int) error {
	if !sink.Healthy() {
		return c.fail(sink, ErrorKindStreamError, nil, 3)
	}
	header := [1]byte{byte(tag)}
	if _, err := sink.Write(header[:]); err != nil {
		return c.fail(sink, ErrorKindStreamError, err, 3)
	}
	return c.writeSize(sink, n)
}

// WriteWString writes v as a TagWString value: the tag, a 16-bit code
// unit count (not an octet count), then v re-encoded as that many
// UTF-16 code units, each exactly 2 octets in the Codec's stream
// order. Encoding fails with Invalid if v contains a rune outside the
// Basic Multilingual Plane (a code point needing a UTF-16 surrogate
// pair): the wide-string wire type has no surrogate representation, so
// every code unit stands for exactly one wide character.
func WriteWString(c *Codec, sink Sink, v string) error {
	units := make([]uint16, 0, len(v))
	for _, r := range v {
		if r > 0xFFFF {
			return c.fail(sink, ErrorKindInvalid, nil, 1)
		}
		units = append(units, uint16(r))
	}
	if !sink.Healthy() {
		return c.fail(sink, ErrorKindStreamError, nil, 1)
	}
	if err := c.writeTagAndPayloadHeader(sink, TagWString, len(units)); err != nil {
		return err
	}
	payload := make([]byte, len(units)*2)
	for i, u := range units {
		c.streamOrder.PutUint16(payload[i*2:i*2+2], u)
	}
	if len(payload) == 0 {
		return nil
	}
	if _, err := sink.Write(payload); err != nil {
		return c.fail(sink, ErrorKindStreamError, err, 1)
	}
	return nil
}

// ReadWString decodes a value written by [WriteWString]: the 16-bit
// prefix is a code unit count, so the octets actually read off the
// wire are twice that.
func ReadWString(c *Codec, source Source, v *string) error {
	if c.atFieldBoundary(source) {
		return nil
	}
	if err := c.expectTag(source, TagWString); err != nil {
		return err
	}
	unitCount, err := c.readSize(source)
	if err != nil {
		return err
	}
	if unitCount == 0 {
		*v = ""
		return nil
	}
	payload := make([]byte, unitCount*2)
	if _, err := source.Read(payload); err != nil {
		return c.fail(source, ErrorKindEndOfStream, err, 1)
	}
	units := make([]uint16, unitCount)
	for i := range units {
		units[i] = c.streamOrder.Uint16(payload[i*2 : i*2+2])
	}
	*v = string(utf16.Decode(units))
	return nil
}
