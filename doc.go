// Copyright 2026 The Wirekit Authors
// SPDX-License-Identifier: Apache-2.0

// Package wirekit is a binary message codec: it encodes user-defined
// records into a self-describing, tagged and length-framed octet stream,
// and decodes them back — across CPUs of differing byte order, and
// across schema revisions where a record has grown new trailing fields.
//
// wirekit is a codec, not a serialization framework: there is no schema
// registry, no field identifiers, and no reflection. A record implements
// [Record] by hand, calling back into the [Codec] once per field, in a
// fixed declared order. This is deliberate — see the "Field declaration
// contract" below.
//
// # Wire format
//
// Every value on the wire begins with a one-octet [Tag] identifying its
// shape. Variable-length shapes (strings, containers, records) follow
// the tag with a 16-bit element or octet count. Multi-byte primitives
// travel in the codec's negotiated [ByteOrder], defaulting to big-endian
// when no [TagEndian] marker is present. See tag.go, endian.go, and the
// per-shape encode/decode routines in primitives.go, strings.go, and
// containers.go for the exact framing of each shape.
//
// Records are framed as [TagUserDefined], a 16-bit payload-length
// placeholder, the field sequence, then the placeholder is back-patched
// with the actual length. On decode, that length is what makes schema
// evolution possible: a reader built against a newer schema, decoding a
// record from an older writer that lacks its trailing fields, stops
// reading fields at the record's end (those fields keep their zero
// value); a reader built against an older schema skips the trailing
// fields a newer writer appended, one tagged value at a time, until the
// declared length is used up. See record.go and skip.go.
//
// # Usage
//
//	type Date struct{ Day, Month, Year int16 }
//
//	func (d *Date) TypeName() string { return "Date" }
//
//	func (d *Date) EncodeInto(c *wirekit.Codec, sink wirekit.Sink) error {
//		if err := wirekit.WriteInt16(c, sink, d.Day); err != nil {
//			return err
//		}
//		if err := wirekit.WriteInt16(c, sink, d.Month); err != nil {
//			return err
//		}
//		return wirekit.WriteInt16(c, sink, d.Year)
//	}
//
//	func (d *Date) DecodeFrom(c *wirekit.Codec, source wirekit.Source) error {
//		if err := wirekit.ReadInt16(c, source, &d.Day); err != nil {
//			return err
//		}
//		if err := wirekit.ReadInt16(c, source, &d.Month); err != nil {
//			return err
//		}
//		return wirekit.ReadInt16(c, source, &d.Year)
//	}
//
//	codec := wirekit.New()
//	sink := wirekit.NewByteSink()
//	_ = wirekit.WriteRecord(codec, sink, &Date{1, 1, 2001})
//	source := wirekit.NewByteSource(sink.Bytes())
//	var decoded Date
//	_ = wirekit.ReadRecord(codec, source, &decoded)
//
// # Field declaration contract
//
// Record authors must follow these rules for the evolution engine's
// forward/backward compatibility guarantees to hold:
//
//   - Never remove a previously-serialised field.
//   - Never reorder serialised fields.
//   - Never change a field's wire shape.
//   - Append new fields only at the end.
//   - When composing records (e.g. AlarmLog extends Log), always invoke
//     the base record's EncodeInto/DecodeFrom before the derived
//     record's own fields — explicit delegation, not virtual dispatch.
//
// # What this package does not do
//
// No schema registry, no field identifiers, no optional-field markers,
// no compression, no encryption, no out-of-order field layout, no
// random access into encoded records, no reflection-driven
// autogeneration. The byte-stream transport, the host program's record
// definitions, file I/O, and any CLI or UI are all external to this
// package: wirekit exposes [Sink] and [Source] and a [Codec] façade;
// callers wire those to whatever transport and presentation they choose.
//
// Cyclic or shared-ownership object graphs cannot be represented — the
// wire format carries no object-identity concept. Do not attempt to
// serialize cyclic structures.
package wirekit
