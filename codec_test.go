// Copyright 2026 The Wirekit Authors
// SPDX-License-Identifier: Apache-2.0

package wirekit

import (
	"encoding/binary"
	"testing"
)

func TestNewDefaults(t *testing.T) {
	c := New()
	if c.StreamOrder() != binary.BigEndian {
		t.Error("New() default stream order is not big-endian")
	}
	if c.LastError() != ErrorKindNone {
		t.Errorf("LastError() = %v, want ErrorKindNone", c.LastError())
	}
}

func TestErrorHandlerInvokedOnFailure(t *testing.T) {
	c := New()
	var gotKind ErrorKind
	var calls int
	c.SetErrorHandler(func(kind ErrorKind, line int, file string) {
		calls++
		gotKind = kind
	})

	source := NewByteSource([]byte{})
	var v uint8
	if err := ReadUint8(c, source, &v); err == nil {
		t.Fatal("ReadUint8 on empty source returned nil error")
	}
	if calls != 1 {
		t.Fatalf("error handler called %d times, want 1", calls)
	}
	if gotKind != ErrorKindEndOfStream {
		t.Errorf("gotKind = %v, want ErrorKindEndOfStream", gotKind)
	}
	if c.LastError() != ErrorKindEndOfStream {
		t.Errorf("LastError() = %v, want ErrorKindEndOfStream", c.LastError())
	}
}

func TestProgressHandlerInvokedOnceDecoded(t *testing.T) {
	c := New()
	sink := NewByteSink()
	if err := WriteRecord(c, sink, &testDate{Day: 1, Month: 2, Year: 2003}); err != nil {
		t.Fatalf("WriteRecord: %v", err)
	}

	var gotType string
	var gotLength int
	c.SetProgressHandler(func(typeName string, payloadLength int) {
		gotType = typeName
		gotLength = payloadLength
	})

	source := NewByteSource(sink.Bytes())
	var decoded testDate
	if err := ReadRecord(c, source, &decoded); err != nil {
		t.Fatalf("ReadRecord: %v", err)
	}
	if gotType != "Date" {
		t.Errorf("progress handler typeName = %q, want %q", gotType, "Date")
	}
	if gotLength != 9 {
		t.Errorf("progress handler payloadLength = %d, want 9", gotLength)
	}
}

func TestWithLoggerDoesNotPanicWithoutLogger(t *testing.T) {
	c := New()
	c.debugf("no logger installed, must not panic")
}
