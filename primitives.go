// Copyright 2026 The Wirekit Authors
// SPDX-License-Identifier: Apache-2.0

package wirekit

import "math"

// writeTagAndPayload writes tag followed by payload, failing the Codec
// (and marking sink unhealthy) on any short write. It is the shared
// tail of every fixed-width primitive Write function.
func (c *Codec) writeTagAndPayload(sink Sink, tag Tag, payload []byte) error {
	if !sink.Healthy() {
		return c.fail(sink, ErrorKindStreamError, nil, 2)
	}
	header := [1]byte{byte(tag)}
	if _, err := sink.Write(header[:]); err != nil {
		return c.fail(sink, ErrorKindStreamError, err, 2)
	}
	if len(payload) == 0 {
		return nil
	}
	if _, err := sink.Write(payload); err != nil {
		return c.fail(sink, ErrorKindStreamError, err, 2)
	}
	return nil
}

// readTag reads the next wire tag.
func (c *Codec) readTag(source Source) (Tag, error) {
	if !source.Healthy() {
		return TagUnknown, c.fail(source, ErrorKindEndOfStream, nil, 2)
	}
	var buf [1]byte
	if _, err := source.Read(buf[:]); err != nil {
		return TagUnknown, c.fail(source, ErrorKindEndOfStream, err, 2)
	}
	return Tag(buf[0]), nil
}

// expectTag reads the next wire tag and fails with TypeMismatch if it
// isn't want.
func (c *Codec) expectTag(source Source, want Tag) error {
	tag, err := c.readTag(source)
	if err != nil {
		return err
	}
	if tag != want {
		return c.fail(source, ErrorKindTypeMismatch, nil, 2)
	}
	return nil
}

// readPayload expects tag, then reads exactly n further octets into
// buf (which must have length n).
func (c *Codec) readPayload(source Source, tag Tag, buf []byte) error {
	if err := c.expectTag(source, tag); err != nil {
		return err
	}
	if len(buf) == 0 {
		return nil
	}
	if _, err := source.Read(buf); err != nil {
		return c.fail(source, ErrorKindEndOfStream, err, 2)
	}
	return nil
}

// writeSize writes a 16-bit size prefix, failing with SizeOverflow if n
// exceeds what a 16-bit prefix can represent.
func (c *Codec) writeSize(sink Sink, n int) error {
	if n < 0 || n > maxSizePrefix {
		return c.fail(sink, ErrorKindSizeOverflow, nil, 2)
	}
	if !sink.Healthy() {
		return c.fail(sink, ErrorKindStreamError, nil, 2)
	}
	var buf [2]byte
	c.streamOrder.PutUint16(buf[:], uint16(n))
	if _, err := sink.Write(buf[:]); err != nil {
		return c.fail(sink, ErrorKindStreamError, err, 2)
	}
	return nil
}

// readSize reads a 16-bit size prefix.
func (c *Codec) readSize(source Source) (int, error) {
	if !source.Healthy() {
		return 0, c.fail(source, ErrorKindEndOfStream, nil, 2)
	}
	var buf [2]byte
	if _, err := source.Read(buf[:]); err != nil {
		return 0, c.fail(source, ErrorKindEndOfStream, err, 2)
	}
	return int(c.streamOrder.Uint16(buf[:])), nil
}

// WriteBool writes v as a one-octet LITERAL (0x00 or 0x01). Standalone
// bools use this path; a []bool uses the dedicated bitset encoding in
// [WriteVectorBool] instead.
func WriteBool(c *Codec, sink Sink, v bool) error {
	var b byte
	if v {
		b = 1
	}
	return c.writeTagAndPayload(sink, TagLiteral, []byte{b})
}

// ReadBool decodes a value written by [WriteBool].
func ReadBool(c *Codec, source Source, v *bool) error {
	if c.atFieldBoundary(source) {
		return nil
	}
	var buf [1]byte
	if err := c.readPayload(source, TagLiteral, buf[:]); err != nil {
		return err
	}
	*v = buf[0] != 0
	return nil
}

// WriteInt8 writes v as a one-octet LITERAL.
func WriteInt8(c *Codec, sink Sink, v int8) error {
	return c.writeTagAndPayload(sink, TagLiteral, []byte{byte(v)})
}

// ReadInt8 decodes a value written by [WriteInt8].
func ReadInt8(c *Codec, source Source, v *int8) error {
	if c.atFieldBoundary(source) {
		return nil
	}
	var buf [1]byte
	if err := c.readPayload(source, TagLiteral, buf[:]); err != nil {
		return err
	}
	*v = int8(buf[0])
	return nil
}

// WriteUint8 writes v as a one-octet LITERAL.
func WriteUint8(c *Codec, sink Sink, v uint8) error {
	return c.writeTagAndPayload(sink, TagLiteral, []byte{v})
}

// ReadUint8 decodes a value written by [WriteUint8].
func ReadUint8(c *Codec, source Source, v *uint8) error {
	if c.atFieldBoundary(source) {
		return nil
	}
	var buf [1]byte
	if err := c.readPayload(source, TagLiteral, buf[:]); err != nil {
		return err
	}
	*v = buf[0]
	return nil
}

// WriteInt16 writes v as a LITERAL followed by 2 octets in the Codec's
// stream order.
func WriteInt16(c *Codec, sink Sink, v int16) error {
	return WriteUint16(c, sink, uint16(v))
}

// ReadInt16 decodes a value written by [WriteInt16].
func ReadInt16(c *Codec, source Source, v *int16) error {
	var u uint16
	if err := ReadUint16(c, source, &u); err != nil {
		return err
	}
	*v = int16(u)
	return nil
}

// WriteUint16 writes v as a LITERAL followed by 2 octets in the
// Codec's stream order.
func WriteUint16(c *Codec, sink Sink, v uint16) error {
	buf := make([]byte, 2)
	c.streamOrder.PutUint16(buf, v)
	return c.writeTagAndPayload(sink, TagLiteral, buf)
}

// ReadUint16 decodes a value written by [WriteUint16].
func ReadUint16(c *Codec, source Source, v *uint16) error {
	if c.atFieldBoundary(source) {
		return nil
	}
	buf := make([]byte, 2)
	if err := c.readPayload(source, TagLiteral, buf); err != nil {
		return err
	}
	*v = c.streamOrder.Uint16(buf)
	return nil
}

// WriteInt32 writes v as a LITERAL followed by 4 octets in the
// Codec's stream order.
func WriteInt32(c *Codec, sink Sink, v int32) error {
	return WriteUint32(c, sink, uint32(v))
}

// ReadInt32 decodes a value written by [WriteInt32].
func ReadInt32(c *Codec, source Source, v *int32) error {
	var u uint32
	if err := ReadUint32(c, source, &u); err != nil {
		return err
	}
	*v = int32(u)
	return nil
}

// WriteUint32 writes v as a LITERAL followed by 4 octets in the
// Codec's stream order.
func WriteUint32(c *Codec, sink Sink, v uint32) error {
	buf := make([]byte, 4)
	c.streamOrder.PutUint32(buf, v)
	return c.writeTagAndPayload(sink, TagLiteral, buf)
}

// ReadUint32 decodes a value written by [WriteUint32].
func ReadUint32(c *Codec, source Source, v *uint32) error {
	if c.atFieldBoundary(source) {
		return nil
	}
	buf := make([]byte, 4)
	if err := c.readPayload(source, TagLiteral, buf); err != nil {
		return err
	}
	*v = c.streamOrder.Uint32(buf)
	return nil
}

// WriteInt64 writes v as a LITERAL followed by 8 octets in the
// Codec's stream order.
func WriteInt64(c *Codec, sink Sink, v int64) error {
	return WriteUint64(c, sink, uint64(v))
}

// ReadInt64 decodes a value written by [WriteInt64].
func ReadInt64(c *Codec, source Source, v *int64) error {
	var u uint64
	if err := ReadUint64(c, source, &u); err != nil {
		return err
	}
	*v = int64(u)
	return nil
}

// WriteUint64 writes v as a LITERAL followed by 8 octets in the
// Codec's stream order.
func WriteUint64(c *Codec, sink Sink, v uint64) error {
	buf := make([]byte, 8)
	c.streamOrder.PutUint64(buf, v)
	return c.writeTagAndPayload(sink, TagLiteral, buf)
}

// ReadUint64 decodes a value written by [WriteUint64].
func ReadUint64(c *Codec, source Source, v *uint64) error {
	if c.atFieldBoundary(source) {
		return nil
	}
	buf := make([]byte, 8)
	if err := c.readPayload(source, TagLiteral, buf); err != nil {
		return err
	}
	*v = c.streamOrder.Uint64(buf)
	return nil
}

// WriteFloat32 writes v as a LITERAL followed by its IEEE-754 bit
// pattern, 4 octets in the Codec's stream order. The bits are moved as
// an opaque pattern, never revalidated as IEEE-754.
func WriteFloat32(c *Codec, sink Sink, v float32) error {
	return WriteUint32(c, sink, math.Float32bits(v))
}

// ReadFloat32 decodes a value written by [WriteFloat32].
func ReadFloat32(c *Codec, source Source, v *float32) error {
	var bits uint32
	if err := ReadUint32(c, source, &bits); err != nil {
		return err
	}
	*v = math.Float32frombits(bits)
	return nil
}

// WriteFloat64 writes v as a LITERAL followed by its IEEE-754 bit
// pattern, 8 octets in the Codec's stream order.
func WriteFloat64(c *Codec, sink Sink, v float64) error {
	return WriteUint64(c, sink, math.Float64bits(v))
}

// ReadFloat64 decodes a value written by [WriteFloat64].
func ReadFloat64(c *Codec, source Source, v *float64) error {
	var bits uint64
	if err := ReadUint64(c, source, &bits); err != nil {
		return err
	}
	*v = math.Float64frombits(bits)
	return nil
}
