// Copyright 2026 The Wirekit Authors
// SPDX-License-Identifier: Apache-2.0

// Package inspect renders an encoded wirekit stream as CBOR diagnostic
// notation, for debugging streams without writing a matching [wirekit.Record]
// first. It only descends as far as the wire format is self-describing:
// individual record fields are opaque once a record's own framing is
// unwrapped, because a bare TagLiteral field carries no on-wire width —
// only the record's Go type knows whether it's 1, 2, 4, or 8 octets.
package inspect

import (
	"encoding/binary"
	"fmt"

	"github.com/fxamacker/cbor/v2"

	"github.com/wirekit-project/wirekit"
)

// encMode uses Core Deterministic Encoding: the frame descriptions
// this package builds have no semantic need for determinism, but one
// canonical encMode configuration avoids a second set of CBOR encoding
// decisions to review.
var encMode cbor.EncMode

func init() {
	opts := cbor.CoreDetEncOptions()
	var err error
	encMode, err = opts.EncMode()
	if err != nil {
		panic("inspect: CBOR encoder initialization failed: " + err.Error())
	}
}

// Frame is one top-level unit recovered from a stream: either the
// leading endian marker or a complete, still-opaque record.
type Frame struct {
	// Kind is "endian" or "record".
	Kind string `json:"kind"`

	// Order is the negotiated byte order name, set only for "endian" frames.
	Order string `json:"order,omitempty"`

	// PayloadLength is the record's declared payload length in
	// octets, set only for "record" frames.
	PayloadLength int `json:"payload_length,omitempty"`

	// Payload is the record's raw, still-tagged field bytes, set only
	// for "record" frames. Descending further requires knowing the
	// record's Go type and calling [wirekit.ReadRecord] against it.
	Payload []byte `json:"payload,omitempty"`
}

// ParseFrames walks data as a sequence of top-level wirekit values —
// the shape produced by repeated [wirekit.WriteRecord] calls against
// one [wirekit.Sink] — without needing to know any record's Go type.
// It fails with an error, not a [wirekit.CodecError], since it isn't
// itself a Codec operation.
func ParseFrames(data []byte) ([]Frame, error) {
	var frames []Frame
	order := binary.ByteOrder(binary.BigEndian)
	pos := 0
	for pos < len(data) {
		tag := wirekit.Tag(data[pos])
		switch tag {
		case wirekit.TagEndian:
			if pos+2 > len(data) {
				return nil, fmt.Errorf("inspect: truncated endian marker at offset %d", pos)
			}
			orderName := "big-endian"
			if data[pos+1] == 0x02 {
				order = binary.LittleEndian
				orderName = "little-endian"
			}
			frames = append(frames, Frame{Kind: "endian", Order: orderName})
			pos += 2

		case wirekit.TagUserDefined:
			if pos+3 > len(data) {
				return nil, fmt.Errorf("inspect: truncated record header at offset %d", pos)
			}
			length := int(order.Uint16(data[pos+1 : pos+3]))
			payloadStart := pos + 3
			if payloadStart+length > len(data) {
				return nil, fmt.Errorf("inspect: record at offset %d declares %d octets past end of data", pos, length)
			}
			frames = append(frames, Frame{
				Kind:          "record",
				PayloadLength: length,
				Payload:       data[payloadStart : payloadStart+length],
			})
			pos = payloadStart + length

		default:
			return nil, fmt.Errorf("inspect: unexpected top-level tag %s at offset %d", tag, pos)
		}
	}
	return frames, nil
}

// Dump returns CBOR diagnostic notation (RFC 8949 §8) describing every
// top-level frame in data, for logging or ad hoc debugging.
func Dump(data []byte) (string, error) {
	frames, err := ParseFrames(data)
	if err != nil {
		return "", err
	}
	encoded, err := encMode.Marshal(frames)
	if err != nil {
		return "", fmt.Errorf("inspect: encoding frames: %w", err)
	}
	return cbor.Diagnose(encoded)
}
