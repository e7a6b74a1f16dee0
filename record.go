// Copyright 2026 The Wirekit Authors
// SPDX-License-Identifier: Apache-2.0

package wirekit

// Record is the capability a user-defined type supplies to participate
// in encoding and decoding: an explicit encode/decode function pair
// over the [Codec] façade. There is no reflection and no schema
// registry — TypeName and the field sequence are exactly what the
// author writes.
//
// Composition (e.g. AlarmLog extending Log) is explicit delegation:
// the derived type's EncodeInto calls the base type's EncodeInto first,
// and likewise for DecodeFrom. See doc.go's "Field declaration
// contract".
type Record interface {
	// TypeName identifies the record for the progress handler. It has
	// no wire representation — it exists purely to give a decoded
	// value a reportable runtime identity without depending on
	// reflection.
	TypeName() string

	// EncodeInto writes the record's fields, in the author's fixed
	// declared order, to sink via c.
	EncodeInto(c *Codec, sink Sink) error

	// DecodeFrom reads the record's fields, in the same fixed order,
	// from source via c.
	DecodeFrom(c *Codec, source Source) error
}

// pushRecordBound records the absolute source position at which the
// currently-decoding record's declared payload ends, and returns a
// function that pops it. Nested records (fields that are themselves
// Records) push their own tighter bound while active.
func (c *Codec) pushRecordBound(end int) func() {
	c.recordBounds = append(c.recordBounds, end)
	return func() {
		c.recordBounds = c.recordBounds[:len(c.recordBounds)-1]
	}
}

// atFieldBoundary reports whether source has already reached the
// innermost active record's declared payload end. When true, every
// Read* function no-ops instead of consuming input — this is the
// backward-compat path: an old, shorter record leaves the reader's
// newer trailing fields at their zero value.
func (c *Codec) atFieldBoundary(source Source) bool {
	if len(c.recordBounds) == 0 {
		return false
	}
	end := c.recordBounds[len(c.recordBounds)-1]
	if source.Position() < end {
		return false
	}
	c.debugf("wirekit: field decode short-circuited: record exhausted",
		"position", source.Position(), "record_end", end)
	return true
}

// WriteRecord encodes record as a length-framed TagUserDefined value:
// the tag, a 16-bit payload-length placeholder, the record's field
// sequence, then the placeholder is back-patched with the actual
// length. If the resulting payload would exceed 65535 octets, the
// placeholder is never made valid and the Codec fails with
// SizeOverflow.
//
// When called on a [Sink] at position 0 and the Codec was constructed
// with [WithAlwaysEmitEndianMarker], a [TagEndian] marker precedes the
// record.
func WriteRecord(c *Codec, sink Sink, record Record) error {
	if sink.Position() == 0 && c.alwaysEmitEndianMarker {
		if err := writeEndianMarker(c, sink); err != nil {
			return err
		}
	}

	if !sink.Healthy() {
		return c.fail(sink, ErrorKindStreamError, nil, 1)
	}

	header := [1]byte{byte(TagUserDefined)}
	if _, err := sink.Write(header[:]); err != nil {
		return c.fail(sink, ErrorKindStreamError, err, 1)
	}

	// Placeholder length, back-patched below. ByteSink is the only
	// Sink that supports patching an already-written position
	// in-place; a purely streaming Sink (StreamSink over a socket)
	// cannot rewind, so WriteRecord requires random-access patch
	// support via the PatchableSink interface.
	patcher, ok := sink.(patchableSink)
	if !ok {
		return c.fail(sink, ErrorKindStreamError, errNotPatchable, 1)
	}
	placeholderPos := sink.Position()
	if _, err := sink.Write([]byte{0, 0}); err != nil {
		return c.fail(sink, ErrorKindStreamError, err, 1)
	}

	payloadStart := sink.Position()
	if err := record.EncodeInto(c, sink); err != nil {
		return err
	}
	if !sink.Healthy() {
		return c.fail(sink, ErrorKindStreamError, nil, 1)
	}
	payloadLength := sink.Position() - payloadStart

	if payloadLength > maxSizePrefix {
		return c.fail(sink, ErrorKindSizeOverflow, nil, 1)
	}

	var lenBuf [2]byte
	c.streamOrder.PutUint16(lenBuf[:], uint16(payloadLength))
	if err := patcher.PatchAt(placeholderPos, lenBuf[:]); err != nil {
		return c.fail(sink, ErrorKindStreamError, err, 1)
	}
	return nil
}

// ReadRecord decodes a TagUserDefined value into record. After the
// record's DecodeFrom returns, the consumed byte count is reconciled
// against the declared payload length: fewer bytes consumed means the
// writer had trailing fields this reader doesn't know about, and they
// are skipped one value at a time (forward-compat); more bytes
// consumed than declared is stream corruption (Invalid).
//
// When called on a [Source] at position 0, a leading [TagEndian] marker
// is consumed and negotiates c's stream order; if absent and the Codec
// was constructed with [WithRequireEndianMarker], decoding fails with
// Invalid instead of defaulting to big-endian.
func ReadRecord(c *Codec, source Source, record Record) error {
	if c.atFieldBoundary(source) {
		return nil
	}
	if source.Position() == 0 {
		if err := maybeConsumeEndianMarker(c, source); err != nil {
			return err
		}
	}

	if err := c.expectTag(source, TagUserDefined); err != nil {
		return err
	}
	payloadLength, err := c.readSize(source)
	if err != nil {
		return err
	}

	payloadStart := source.Position()
	popBound := c.pushRecordBound(payloadStart + payloadLength)
	decodeErr := record.DecodeFrom(c, source)
	popBound()
	if decodeErr != nil {
		return decodeErr
	}
	if !source.Healthy() {
		return c.fail(source, ErrorKindStreamError, nil, 1)
	}

	consumed := source.Position() - payloadStart
	switch {
	case consumed > payloadLength:
		return c.fail(source, ErrorKindInvalid, nil, 1)
	case consumed < payloadLength:
		remaining := payloadLength - consumed
		c.debugf("wirekit: skipping unknown trailing field(s)",
			"type", record.TypeName(), "remaining_octets", remaining)
		for remaining > 0 {
			skipped, err := c.skipValue(source, remaining)
			if err != nil {
				return err
			}
			remaining -= skipped
			if remaining < 0 {
				// A skipped nested value's declared size ran past the
				// enclosing record's boundary.
				return c.fail(source, ErrorKindInvalid, nil, 1)
			}
		}
	}

	c.reportProgress(record.TypeName(), payloadLength)
	return nil
}

// patchableSink is implemented by Sinks that support rewriting
// already-written bytes in place, needed for the record length
// back-patch. [ByteSink] and [StreamSink] (when its underlying
// [io.Writer] is an [io.WriterAt]) both implement it.
type patchableSink interface {
	PatchAt(pos int, data []byte) error
}

func (s *ByteSink) PatchAt(pos int, data []byte) error {
	if pos < 0 || pos+len(data) > len(s.buf) {
		return errPatchOutOfRange
	}
	copy(s.buf[pos:pos+len(data)], data)
	return nil
}

func writeEndianMarker(c *Codec, sink Sink) error {
	if !sink.Healthy() {
		return c.fail(sink, ErrorKindStreamError, nil, 2)
	}
	buf := [2]byte{byte(TagEndian), endianCodeFor(c.streamOrder)}
	if _, err := sink.Write(buf[:]); err != nil {
		return c.fail(sink, ErrorKindStreamError, err, 2)
	}
	return nil
}

// maybeConsumeEndianMarker peeks the next tag; if it's TagEndian, it is
// consumed and c's stream order updated. Otherwise the stream is left
// untouched and c keeps its current (default big-endian) order, unless
// the Codec requires the marker.
func maybeConsumeEndianMarker(c *Codec, source Source) error {
	peeked, ok := source.PeekByte()
	if !ok {
		return nil // empty source; let the caller's tag read report EndOfStream.
	}
	if Tag(peeked) != TagEndian {
		if c.requireEndianMarker {
			return c.fail(source, ErrorKindInvalid, nil, 2)
		}
		return nil
	}
	if err := c.expectTag(source, TagEndian); err != nil {
		return err
	}
	var codeBuf [1]byte
	if _, err := source.Read(codeBuf[:]); err != nil {
		return c.fail(source, ErrorKindEndOfStream, err, 2)
	}
	order, ok := byteOrderForCode(codeBuf[0])
	if !ok {
		return c.fail(source, ErrorKindInvalid, nil, 2)
	}
	c.streamOrder = order
	return nil
}
