// Copyright 2026 The Wirekit Authors
// SPDX-License-Identifier: Apache-2.0

package wirekit

import (
	"testing"

	"github.com/wirekit-project/wirekit/internal/golden"
)

func writeInt32Elem(c *Codec, sink Sink, v int32) error { return WriteInt32(c, sink, v) }
func readInt32Elem(c *Codec, source Source) (int32, error) {
	var v int32
	err := ReadInt32(c, source, &v)
	return v, err
}

func lessInt32(a, b int32) bool { return a < b }

func TestVectorRoundtrip(t *testing.T) {
	c := New()
	sink := NewByteSink()
	items := []int32{10, 20, 30}
	if err := WriteVector(c, sink, items, writeInt32Elem); err != nil {
		t.Fatalf("WriteVector: %v", err)
	}

	d := New()
	source := NewByteSource(sink.Bytes())
	got, err := ReadVector(d, source, readInt32Elem)
	if err != nil {
		t.Fatalf("ReadVector: %v", err)
	}
	if len(got) != len(items) {
		t.Fatalf("len(got) = %d, want %d", len(got), len(items))
	}
	for i := range items {
		if got[i] != items[i] {
			t.Errorf("got[%d] = %d, want %d", i, got[i], items[i])
		}
	}
}

func TestListRoundtripUsesDistinctTag(t *testing.T) {
	c := New()
	sink := NewByteSink()
	if err := WriteList(c, sink, []int32{1, 2}, writeInt32Elem); err != nil {
		t.Fatalf("WriteList: %v", err)
	}
	if Tag(sink.Bytes()[0]) != TagList {
		t.Errorf("first tag = %s, want list", Tag(sink.Bytes()[0]))
	}

	d := New()
	// A vector reader must reject a list-tagged value.
	source := NewByteSource(sink.Bytes())
	if _, err := ReadVector(d, source, readInt32Elem); err == nil {
		t.Fatal("ReadVector accepted a TagList value")
	}

	got, err := ReadList(New(), NewByteSource(sink.Bytes()), readInt32Elem)
	if err != nil {
		t.Fatalf("ReadList: %v", err)
	}
	if len(got) != 2 || got[0] != 1 || got[1] != 2 {
		t.Errorf("ReadList = %v, want [1 2]", got)
	}
}

func TestVectorBoolRoundtrip(t *testing.T) {
	c := New()
	sink := NewByteSink()
	want := []bool{false, true, true, false, true}
	if err := WriteVectorBool(c, sink, want); err != nil {
		t.Fatalf("WriteVectorBool: %v", err)
	}

	d := New()
	source := NewByteSource(sink.Bytes())
	var got []bool
	if err := ReadVectorBool(d, source, &got); err != nil {
		t.Fatalf("ReadVectorBool: %v", err)
	}
	if len(got) != len(want) {
		t.Fatalf("len(got) = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("got[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestMapRoundtrip(t *testing.T) {
	c := New()
	sink := NewByteSink()
	m := map[int32]int32{3: 30, 1: 10, 2: 20}
	if err := WriteMap(c, sink, m, lessInt32, writeInt32Elem, writeInt32Elem); err != nil {
		t.Fatalf("WriteMap: %v", err)
	}

	d := New()
	source := NewByteSource(sink.Bytes())
	got, err := ReadMap(d, source, readInt32Elem, readInt32Elem)
	if err != nil {
		t.Fatalf("ReadMap: %v", err)
	}
	if len(got) != len(m) {
		t.Fatalf("len(got) = %d, want %d", len(got), len(m))
	}
	for k, v := range m {
		if got[k] != v {
			t.Errorf("got[%d] = %d, want %d", k, got[k], v)
		}
	}
}

// TestMapEncodingIsOrderIndependent exercises the deterministic-output
// property: two maps with the same content, built by inserting entries
// in different orders, must produce byte-identical encodings.
func TestMapEncodingIsOrderIndependent(t *testing.T) {
	first := map[int32]int32{}
	first[1] = 10
	first[2] = 20
	first[3] = 30

	second := map[int32]int32{}
	second[3] = 30
	second[1] = 10
	second[2] = 20

	c1, c2 := New(), New()
	sink1, sink2 := NewByteSink(), NewByteSink()
	if err := WriteMap(c1, sink1, first, lessInt32, writeInt32Elem, writeInt32Elem); err != nil {
		t.Fatalf("WriteMap(first): %v", err)
	}
	if err := WriteMap(c2, sink2, second, lessInt32, writeInt32Elem, writeInt32Elem); err != nil {
		t.Fatalf("WriteMap(second): %v", err)
	}

	if golden.HashFixture(sink1.Bytes()) != golden.HashFixture(sink2.Bytes()) {
		t.Error("maps with identical content but different insertion order encoded differently")
	}
}

func TestSetRoundtripDedupsAndOrders(t *testing.T) {
	c := New()
	sink := NewByteSink()
	if err := WriteSet(c, sink, []int32{5, 1, 5, 3, 1}, lessInt32, writeInt32Elem); err != nil {
		t.Fatalf("WriteSet: %v", err)
	}

	d := New()
	source := NewByteSource(sink.Bytes())
	got, err := ReadSet(d, source, readInt32Elem)
	if err != nil {
		t.Fatalf("ReadSet: %v", err)
	}
	want := []int32{1, 3, 5}
	if len(got) != len(want) {
		t.Fatalf("len(got) = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("got[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestVectorOfRecordsRoundtrip(t *testing.T) {
	writeDate := func(c *Codec, sink Sink, d testDate) error { return d.EncodeInto(c, sink) }
	readDate := func(c *Codec, source Source) (testDate, error) {
		var d testDate
		err := d.DecodeFrom(c, source)
		return d, err
	}

	c := New()
	sink := NewByteSink()
	items := []testDate{{1, 1, 2001}, {2, 2, 2002}}
	if err := WriteVector(c, sink, items, writeDate); err != nil {
		t.Fatalf("WriteVector: %v", err)
	}

	d := New()
	source := NewByteSource(sink.Bytes())
	got, err := ReadVector(d, source, readDate)
	if err != nil {
		t.Fatalf("ReadVector: %v", err)
	}
	if len(got) != 2 || got[0] != items[0] || got[1] != items[1] {
		t.Fatalf("got = %+v, want %+v", got, items)
	}
}
