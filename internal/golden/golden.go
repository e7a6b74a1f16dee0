// Copyright 2026 The Wirekit Authors
// SPDX-License-Identifier: Apache-2.0

// Package golden content-addresses encoded test fixtures with a keyed
// BLAKE3 hash, so a test can assert "this record still encodes to the
// bytes it always has" by comparing a short hex digest instead of
// embedding or diffing a full byte dump.
package golden

import (
	"encoding/hex"
	"fmt"

	"github.com/zeebo/blake3"
)

// Hash is a 32-byte BLAKE3 digest of one encoded fixture.
type Hash [32]byte

// fixtureDomainKey separates golden-fixture hashes from any other use
// of BLAKE3 in this module, so the same wire bytes hashed for a
// different purpose never collides with a fixture digest.
var fixtureDomainKey = [32]byte{
	'w', 'i', 'r', 'e', 'k', 'i', 't', '.', 'g', 'o', 'l', 'd', 'e', 'n', '.',
	'f', 'i', 'x', 't', 'u', 'r', 'e', 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
}

// HashFixture computes the golden-fixture BLAKE3 keyed hash of encoded,
// a record's on-wire bytes.
func HashFixture(encoded []byte) Hash {
	hasher, err := blake3.NewKeyed(fixtureDomainKey[:])
	if err != nil {
		panic("golden: BLAKE3 keyed hash initialization failed: " + err.Error())
	}
	hasher.Write(encoded)
	var hash Hash
	copy(hash[:], hasher.Sum(nil))
	return hash
}

// Format returns the hex-encoded string representation of a hash, the
// form [Parse] and [Verify] accept.
func Format(hash Hash) string {
	return hex.EncodeToString(hash[:])
}

// Parse parses a 64-character hex string into a Hash.
func Parse(hexString string) (Hash, error) {
	var hash Hash
	decoded, err := hex.DecodeString(hexString)
	if err != nil {
		return hash, fmt.Errorf("golden: parsing fixture hash: %w", err)
	}
	if len(decoded) != 32 {
		return hash, fmt.Errorf("golden: fixture hash is %d bytes, want 32", len(decoded))
	}
	copy(hash[:], decoded)
	return hash, nil
}

// Verify reports whether encoded's fixture hash matches wantHex,
// returning an error describing the mismatch (including the actual
// hash, so a failing test's output doubles as the fixture-update
// instruction) when it doesn't.
func Verify(encoded []byte, wantHex string) error {
	want, err := Parse(wantHex)
	if err != nil {
		return err
	}
	got := HashFixture(encoded)
	if got != want {
		return fmt.Errorf("golden: fixture hash mismatch: want %s, got %s", Format(want), Format(got))
	}
	return nil
}
