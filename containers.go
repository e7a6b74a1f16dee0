// Copyright 2026 The Wirekit Authors
// SPDX-License-Identifier: Apache-2.0

package wirekit

// WriteElemFunc encodes a single container element.
type WriteElemFunc[T any] func(c *Codec, sink Sink, v T) error

// ReadElemFunc decodes a single container element.
type ReadElemFunc[T any] func(c *Codec, source Source) (T, error)

// LessFunc orders keys or set elements for the ascending-order wire
// encoding maps and sets require: two streams holding the same
// logical map or set must produce byte-identical output.
type LessFunc[T any] func(a, b T) bool

// WriteVector encodes items as a TagVector value: the tag, a 16-bit
// element count, then each element in order via writeElem.
func WriteVector[T any](c *Codec, sink Sink, items []T, writeElem WriteElemFunc[T]) error {
	return writeSequence(c, sink, TagVector, items, writeElem)
}

// ReadVector decodes a value written by [WriteVector].
func ReadVector[T any](c *Codec, source Source, readElem ReadElemFunc[T]) ([]T, error) {
	return readSequence(c, source, TagVector, readElem)
}

// WriteList encodes items as a TagList value, with the same framing as
// [WriteVector]. The distinct tag exists so a decoder that only
// understands one of the two container kinds still fails with
// TypeMismatch rather than silently misreading the other.
func WriteList[T any](c *Codec, sink Sink, items []T, writeElem WriteElemFunc[T]) error {
	return writeSequence(c, sink, TagList, items, writeElem)
}

// ReadList decodes a value written by [WriteList].
func ReadList[T any](c *Codec, source Source, readElem ReadElemFunc[T]) ([]T, error) {
	return readSequence(c, source, TagList, readElem)
}

func writeSequence[T any](c *Codec, sink Sink, tag Tag, items []T, writeElem WriteElemFunc[T]) error {
	if !sink.Healthy() {
		return c.fail(sink, ErrorKindStreamError, nil, 3)
	}
	if err := c.writeTagAndPayloadHeader(sink, tag, len(items)); err != nil {
		return err
	}
	for _, item := range items {
		if err := writeElem(c, sink, item); err != nil {
			return err
		}
	}
	return nil
}

func readSequence[T any](c *Codec, source Source, tag Tag, readElem ReadElemFunc[T]) ([]T, error) {
	if c.atFieldBoundary(source) {
		return nil, nil
	}
	if err := c.expectTag(source, tag); err != nil {
		return nil, err
	}
	count, err := c.readSize(source)
	if err != nil {
		return nil, err
	}
	items := make([]T, 0, count)
	for i := 0; i < count; i++ {
		v, err := readElem(c, source)
		if err != nil {
			return nil, err
		}
		items = append(items, v)
	}
	return items, nil
}

// WriteMap encodes m as a TagMap value: the tag, a 16-bit pair count,
// then each key/value pair with keys visited in ascending less order —
// map iteration order is otherwise unspecified, and a deterministic
// encoding is required so the same logical map always produces the
// same bytes.
func WriteMap[K comparable, V any](c *Codec, sink Sink, m map[K]V, less LessFunc[K], writeKey WriteElemFunc[K], writeVal WriteElemFunc[V]) error {
	if !sink.Healthy() {
		return c.fail(sink, ErrorKindStreamError, nil, 1)
	}
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sortKeys(keys, less)

	if err := c.writeTagAndPayloadHeader(sink, TagMap, len(keys)); err != nil {
		return err
	}
	for _, k := range keys {
		if err := writeKey(c, sink, k); err != nil {
			return err
		}
		if err := writeVal(c, sink, m[k]); err != nil {
			return err
		}
	}
	return nil
}

// ReadMap decodes a value written by [WriteMap].
func ReadMap[K comparable, V any](c *Codec, source Source, readKey ReadElemFunc[K], readVal ReadElemFunc[V]) (map[K]V, error) {
	if c.atFieldBoundary(source) {
		return nil, nil
	}
	if err := c.expectTag(source, TagMap); err != nil {
		return nil, err
	}
	count, err := c.readSize(source)
	if err != nil {
		return nil, err
	}
	m := make(map[K]V, count)
	for i := 0; i < count; i++ {
		k, err := readKey(c, source)
		if err != nil {
			return nil, err
		}
		v, err := readVal(c, source)
		if err != nil {
			return nil, err
		}
		m[k] = v
	}
	return m, nil
}

// WriteSet encodes items as a TagSet value: the tag, a 16-bit element
// count, then the elements in ascending less order, duplicates
// removed. Like [WriteMap], the ordering makes the encoding
// deterministic regardless of how the caller assembled items.
func WriteSet[T comparable](c *Codec, sink Sink, items []T, less LessFunc[T], writeElem WriteElemFunc[T]) error {
	if !sink.Healthy() {
		return c.fail(sink, ErrorKindStreamError, nil, 1)
	}
	seen := make(map[T]struct{}, len(items))
	unique := make([]T, 0, len(items))
	for _, item := range items {
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		unique = append(unique, item)
	}
	sortKeys(unique, less)

	if err := c.writeTagAndPayloadHeader(sink, TagSet, len(unique)); err != nil {
		return err
	}
	for _, item := range unique {
		if err := writeElem(c, sink, item); err != nil {
			return err
		}
	}
	return nil
}

// ReadSet decodes a value written by [WriteSet] into a slice, in the
// ascending order it was written. Callers that want set semantics
// convert it to a map[T]struct{} themselves; wirekit doesn't impose a
// set representation on the caller.
func ReadSet[T comparable](c *Codec, source Source, readElem ReadElemFunc[T]) ([]T, error) {
	return readSequence(c, source, TagSet, readElem)
}

// sortKeys is a tiny insertion sort, adequate for the field- and
// config-sized maps/sets this codec targets, and avoids pulling in
// sort.Slice's reflection-based comparator for a caller-supplied less.
func sortKeys[T any](keys []T, less LessFunc[T]) {
	for i := 1; i < len(keys); i++ {
		for j := i; j > 0 && less(keys[j], keys[j-1]); j-- {
			keys[j], keys[j-1] = keys[j-1], keys[j]
		}
	}
}

// WriteVectorBool encodes bits as the dedicated []bool vector shape:
// the tag, a 16-bit element count, then one octet per element (0x00 or
// 0x01) — still cheaper than the generic [WriteVector] path, which
// would additionally tag each element as a TagLiteral.
func WriteVectorBool(c *Codec, sink Sink, bits []bool) error {
	if !sink.Healthy() {
		return c.fail(sink, ErrorKindStreamError, nil, 1)
	}
	if err := c.writeTagAndPayloadHeader(sink, TagVector, len(bits)); err != nil {
		return err
	}
	payload := make([]byte, len(bits))
	for i, bit := range bits {
		if bit {
			payload[i] = 1
		}
	}
	if len(payload) == 0 {
		return nil
	}
	if _, err := sink.Write(payload); err != nil {
		return c.fail(sink, ErrorKindStreamError, err, 1)
	}
	return nil
}

// ReadVectorBool decodes a value written by [WriteVectorBool].
func ReadVectorBool(c *Codec, source Source, bits *[]bool) error {
	if c.atFieldBoundary(source) {
		return nil
	}
	if err := c.expectTag(source, TagVector); err != nil {
		return err
	}
	count, err := c.readSize(source)
	if err != nil {
		return err
	}
	payload := make([]byte, count)
	if count > 0 {
		if _, err := source.Read(payload); err != nil {
			return c.fail(source, ErrorKindEndOfStream, err, 1)
		}
	}
	out := make([]bool, count)
	for i, b := range payload {
		out[i] = b != 0
	}
	*bits = out
	return nil
}
