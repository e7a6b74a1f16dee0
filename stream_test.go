// Copyright 2026 The Wirekit Authors
// SPDX-License-Identifier: Apache-2.0

package wirekit

import (
	"bytes"
	"testing"
)

func TestByteSinkWriteAndBytes(t *testing.T) {
	sink := NewByteSink()
	if !sink.Healthy() {
		t.Fatal("new ByteSink is not healthy")
	}
	n, err := sink.Write([]byte{1, 2, 3})
	if err != nil || n != 3 {
		t.Fatalf("Write = %d, %v, want 3, nil", n, err)
	}
	if sink.Position() != 3 {
		t.Errorf("Position() = %d, want 3", sink.Position())
	}
	if !bytes.Equal(sink.Bytes(), []byte{1, 2, 3}) {
		t.Errorf("Bytes() = %v, want [1 2 3]", sink.Bytes())
	}
}

func TestByteSinkMarkUnhealthyStopsWrites(t *testing.T) {
	sink := NewByteSink()
	sink.MarkUnhealthy()
	if sink.Healthy() {
		t.Fatal("MarkUnhealthy did not clear Healthy")
	}
	if _, err := sink.Write([]byte{1}); err == nil {
		t.Error("Write on unhealthy sink returned nil error")
	}
	if sink.Position() != 0 {
		t.Errorf("Position() = %d after failed write, want 0", sink.Position())
	}
}

func TestByteSourceReadPeekSkip(t *testing.T) {
	source := NewByteSource([]byte{0xAA, 0xBB, 0xCC, 0xDD})

	b, ok := source.PeekByte()
	if !ok || b != 0xAA {
		t.Fatalf("PeekByte() = %#x, %v, want 0xAA, true", b, ok)
	}
	if source.Position() != 0 {
		t.Error("PeekByte advanced position")
	}

	buf := make([]byte, 2)
	if _, err := source.Read(buf); err != nil {
		t.Fatalf("Read: %v", err)
	}
	if !bytes.Equal(buf, []byte{0xAA, 0xBB}) {
		t.Errorf("Read = %v, want [0xAA 0xBB]", buf)
	}

	if err := source.Skip(1); err != nil {
		t.Fatalf("Skip: %v", err)
	}
	if source.Remaining() != 1 {
		t.Errorf("Remaining() = %d, want 1", source.Remaining())
	}
}

func TestByteSourceReadPastEndFails(t *testing.T) {
	source := NewByteSource([]byte{1, 2})
	buf := make([]byte, 3)
	if _, err := source.Read(buf); err == nil {
		t.Fatal("Read past end of buffer returned nil error")
	}
	if source.Healthy() {
		t.Error("Source still healthy after short read")
	}
	if _, ok := source.PeekByte(); ok {
		t.Error("PeekByte on unhealthy source returned ok=true")
	}
}

func TestByteSourceSkipPastEndFails(t *testing.T) {
	source := NewByteSource([]byte{1, 2})
	if err := source.Skip(5); err == nil {
		t.Fatal("Skip past end returned nil error")
	}
	if source.Healthy() {
		t.Error("Source still healthy after short skip")
	}
}

func TestStreamSinkAndSourceRoundtrip(t *testing.T) {
	var buf bytes.Buffer
	sink := NewStreamSink(&buf)
	if _, err := sink.Write([]byte("hello")); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if sink.Position() != 5 {
		t.Errorf("Position() = %d, want 5", sink.Position())
	}

	source := NewStreamSource(bytes.NewReader(buf.Bytes()))
	peeked, ok := source.PeekByte()
	if !ok || peeked != 'h' {
		t.Fatalf("PeekByte() = %q, %v, want 'h', true", peeked, ok)
	}
	got := make([]byte, 5)
	if _, err := source.Read(got); err != nil {
		t.Fatalf("Read: %v", err)
	}
	if string(got) != "hello" {
		t.Errorf("Read = %q, want %q", got, "hello")
	}
}

func TestStreamSourceReadPastEndFails(t *testing.T) {
	source := NewStreamSource(bytes.NewReader([]byte{1, 2}))
	buf := make([]byte, 3)
	if _, err := source.Read(buf); err == nil {
		t.Fatal("Read past end returned nil error")
	}
	if source.Healthy() {
		t.Error("Source still healthy after short read")
	}
}

func TestStreamSinkPatchAtRequiresWriterAt(t *testing.T) {
	var buf bytes.Buffer
	sink := NewStreamSink(&buf)
	if err := sink.PatchAt(0, []byte{1}); err == nil {
		t.Error("PatchAt over a plain bytes.Buffer returned nil error, want errNotPatchable")
	}
}
