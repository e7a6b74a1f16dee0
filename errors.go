// Copyright 2026 The Wirekit Authors
// SPDX-License-Identifier: Apache-2.0

package wirekit

import (
	"errors"
	"fmt"
)

// ErrorKind classifies why an encode or decode operation failed. It is
// the value handed to the error handler and returned by
// [Codec.LastError].
type ErrorKind int

const (
	// ErrorKindNone means no error has occurred.
	ErrorKindNone ErrorKind = iota

	// ErrorKindTypeMismatch means the tag observed on the wire
	// differs from the tag the decoder expected. Not recoverable:
	// the stream position is no longer trustworthy.
	ErrorKindTypeMismatch

	// ErrorKindStreamError means the underlying [Sink] or [Source]
	// reported a short write, short read, or other transport
	// failure.
	ErrorKindStreamError

	// ErrorKindStringTooLong means a decoded size prefix exceeds the
	// capacity of the receiving fixed-length buffer.
	ErrorKindStringTooLong

	// ErrorKindSizeOverflow means an encoded string, container, or
	// record would need a size prefix larger than 65535.
	ErrorKindSizeOverflow

	// ErrorKindInvalid means malformed framing: an unlisted tag, a
	// record that consumed more than its declared payload length, or
	// (with [WithRequireEndianMarker]) a missing endian marker.
	ErrorKindInvalid

	// ErrorKindEndOfStream means the source was exhausted while more
	// input was expected.
	ErrorKindEndOfStream
)

// String returns the error kind's name, matching the taxonomy names
// used in error handler callbacks and log output.
func (kind ErrorKind) String() string {
	switch kind {
	case ErrorKindNone:
		return "None"
	case ErrorKindTypeMismatch:
		return "TypeMismatch"
	case ErrorKindStreamError:
		return "StreamError"
	case ErrorKindStringTooLong:
		return "StringTooLong"
	case ErrorKindSizeOverflow:
		return "SizeOverflow"
	case ErrorKindInvalid:
		return "Invalid"
	case ErrorKindEndOfStream:
		return "EndOfStream"
	default:
		return "Unknown"
	}
}

// Sentinel errors, one per non-None [ErrorKind], so callers can use
// errors.Is against a stable value instead of comparing strings or
// digging a *CodecError out with errors.As.
var (
	ErrTypeMismatch  = errors.New("wirekit: type mismatch")
	ErrStreamError   = errors.New("wirekit: stream error")
	ErrStringTooLong = errors.New("wirekit: string too long for buffer")
	ErrSizeOverflow  = errors.New("wirekit: size exceeds 65535")
	ErrInvalid       = errors.New("wirekit: invalid framing")
	ErrEndOfStream   = errors.New("wirekit: end of stream")
)

// errNotPatchable and errPatchOutOfRange wrap [ErrorKindStreamError]
// failures specific to [WriteRecord]'s length back-patch; they are
// never exposed directly, only via CodecError.Err.
var (
	errNotPatchable    = errors.New("wirekit: sink does not support length back-patching")
	errPatchOutOfRange = errors.New("wirekit: patch position out of range")
)

func sentinelFor(kind ErrorKind) error {
	switch kind {
	case ErrorKindTypeMismatch:
		return ErrTypeMismatch
	case ErrorKindStreamError:
		return ErrStreamError
	case ErrorKindStringTooLong:
		return ErrStringTooLong
	case ErrorKindSizeOverflow:
		return ErrSizeOverflow
	case ErrorKindInvalid:
		return ErrInvalid
	case ErrorKindEndOfStream:
		return ErrEndOfStream
	default:
		return nil
	}
}

// CodecError is the concrete error type returned by every failing
// Codec operation. It carries the classified [ErrorKind] plus the
// library call site (line and file) that detected the failure, mirroring
// the (error, line, file) triple the error handler callback receives.
//
// Callers extract the kind with errors.As:
//
//	var codecErr *wirekit.CodecError
//	if errors.As(err, &codecErr) {
//		switch codecErr.Kind { ... }
//	}
//
// or test against the kind-specific sentinel with errors.Is:
//
//	if errors.Is(err, wirekit.ErrEndOfStream) { ... }
type CodecError struct {
	// Kind classifies the failure.
	Kind ErrorKind

	// Line and File identify the wirekit source location that
	// detected the error. Advisory only — useful when reporting a
	// bug against wirekit itself, not meaningful to end users.
	Line int
	File string

	// Err is the underlying error, when the failure originated in
	// the caller's Sink or Source implementation (e.g. an io.Reader
	// returning io.ErrUnexpectedEOF). Nil for purely framing errors.
	Err error
}

func (e *CodecError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("wirekit: %s at %s:%d: %v", e.Kind, e.File, e.Line, e.Err)
	}
	return fmt.Sprintf("wirekit: %s at %s:%d", e.Kind, e.File, e.Line)
}

func (e *CodecError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return sentinelFor(e.Kind)
}

func (e *CodecError) Is(target error) bool {
	return target == sentinelFor(e.Kind)
}
