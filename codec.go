// Copyright 2026 The Wirekit Authors
// SPDX-License-Identifier: Apache-2.0

package wirekit

import (
	"encoding/binary"
	"log/slog"
	"runtime"
)

// ErrorHandler receives every error a [Codec] detects, along with the
// library call site that detected it. line and file are advisory —
// useful when reporting a bug against wirekit itself.
type ErrorHandler func(kind ErrorKind, line int, file string)

// ProgressHandler is invoked once per successfully decoded record, so
// callers can observe decode progress without instrumenting every
// record type. typeName is the identity the record supplied to
// [ReadRecord] (see [Record]); payloadLength is the record's on-wire
// payload length in octets.
type ProgressHandler func(typeName string, payloadLength int)

// Codec is the façade through which records read and write themselves.
// A Codec holds the negotiated stream byte order and the caller's
// error/progress handlers. It has no I/O of its own — every operation
// takes an explicit [Sink] or [Source] — so one Codec can be reused
// across many streams over its lifetime.
//
// Codec is not safe for concurrent use: it holds mutable stream-order
// and last-error state that a single in-flight Read or Write may
// update. Callers needing concurrent encode/decode should construct one
// Codec per goroutine, or serialise access to a shared one.
type Codec struct {
	streamOrder ByteOrder
	lastErr     ErrorKind

	errorHandler    ErrorHandler
	progressHandler ProgressHandler

	logger *slog.Logger

	alwaysEmitEndianMarker bool
	requireEndianMarker    bool

	// recordBounds is a stack of absolute source positions marking
	// the end of each currently-decoding record's declared payload
	// (innermost last). The evolution engine's backward-compat path
	// consults the top of this stack before every field read: once
	// the source reaches that position, reads silently no-op instead
	// of consuming input or erroring. See record.go.
	recordBounds []int
}

// Option configures a [Codec] at construction time.
type Option func(*Codec)

// WithLogger attaches a structured logger. The evolution engine emits
// Debug-level records to it when it skips unknown trailing fields or
// leaves a field at its default because the record ran short — the two
// places recovery happens silently by design. Without a logger, these
// events are only visible through their effects (no error raised,
// field keeps its zero value).
func WithLogger(logger *slog.Logger) Option {
	return func(c *Codec) { c.logger = logger }
}

// WithAlwaysEmitEndianMarker makes [WriteRecord] prepend a [TagEndian]
// marker before the first record written to a given [Sink] (detected by
// Sink.Position() == 0 at the time of the call). Without this option, a
// Codec never emits the marker and readers default to big-endian
// network order.
func WithAlwaysEmitEndianMarker() Option {
	return func(c *Codec) { c.alwaysEmitEndianMarker = true }
}

// WithRequireEndianMarker makes [ReadRecord] treat a stream that
// doesn't open with a [TagEndian] marker as [ErrorKindInvalid] instead
// of silently defaulting to big-endian. Use this when a Codec's callers
// always write with [WithAlwaysEmitEndianMarker] and an absent marker
// signals a corrupted or foreign stream rather than an old writer.
func WithRequireEndianMarker() Option {
	return func(c *Codec) { c.requireEndianMarker = true }
}

// New constructs a [Codec] defaulting to big-endian stream order, no
// handlers, and no endian-marker requirement.
func New(opts ...Option) *Codec {
	c := &Codec{
		streamOrder: binary.BigEndian,
		lastErr:     ErrorKindNone,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetErrorHandler installs fn to be invoked synchronously, on the
// calling goroutine, whenever an operation fails. fn must not
// reentrantly call back into this Codec.
func (c *Codec) SetErrorHandler(fn ErrorHandler) { c.errorHandler = fn }

// SetProgressHandler installs fn to be invoked synchronously after
// every successfully decoded record.
func (c *Codec) SetProgressHandler(fn ProgressHandler) { c.progressHandler = fn }

// LastError returns the [ErrorKind] of the most recent failure, or
// [ErrorKindNone] if none has occurred (or [Codec] was just
// constructed).
func (c *Codec) LastError() ErrorKind { return c.lastErr }

// StreamOrder returns the byte order this Codec currently uses for
// multi-byte primitives: the negotiated order from the last decoded
// [TagEndian] marker, or the default (big-endian) if none has been
// seen.
func (c *Codec) StreamOrder() ByteOrder { return c.streamOrder }

// unhealthyMarker is satisfied by both [Sink] and [Source]; it is kept
// as one tiny interface so fail() can accept either without an `any`
// parameter.
type unhealthyMarker interface{ MarkUnhealthy() }

// fail records kind as the last error, invokes the error handler if
// set, and marks target unhealthy. It always returns a *CodecError so
// call sites can `return c.fail(...)` directly. skip is the number of
// additional stack frames above fail to attribute the error to (0
// means fail's immediate caller).
func (c *Codec) fail(target unhealthyMarker, kind ErrorKind, wrapped error, skip int) *CodecError {
	c.lastErr = kind
	_, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		file, line = "unknown", 0
	}
	if c.errorHandler != nil {
		c.errorHandler(kind, line, file)
	}
	if target != nil {
		target.MarkUnhealthy()
	}
	return &CodecError{Kind: kind, Line: line, File: file, Err: wrapped}
}

func (c *Codec) reportProgress(typeName string, payloadLength int) {
	if c.progressHandler != nil {
		c.progressHandler(typeName, payloadLength)
	}
}

func (c *Codec) debugf(msg string, args ...any) {
	if c.logger != nil {
		c.logger.Debug(msg, args...)
	}
}
