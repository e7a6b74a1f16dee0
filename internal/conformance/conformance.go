// Copyright 2026 The Wirekit Authors
// SPDX-License-Identifier: Apache-2.0

// Package conformance loads the scenario manifest that drives wirekit's
// end-to-end tests: the same six scenarios (single primitive round-trip,
// cross-endian round-trip, forward-compat trailing-field skip,
// backward-compat trailing-field default, nested record composition,
// and container determinism) described in prose, expressed as data so
// new scenarios can be added without new Go source.
//
// Manifest loading follows the "single source of truth, no fallback
// search" discipline other wirekit ambient configuration uses: callers
// pass an explicit path, or set WIREKIT_CONFORMANCE_MANIFEST and call
// [LoadFromEnv]. There is no automatic discovery.
package conformance

import (
	"embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed testdata/scenarios.yaml
var embeddedManifest embed.FS

// Scenario describes one end-to-end conformance case.
type Scenario struct {
	// Name is the short identifier used in test names (e.g. "S1").
	Name string `yaml:"name"`

	// Description explains what the scenario exercises.
	Description string `yaml:"description"`

	// Endian is the stream byte order the scenario writes with:
	// "big", "little", or "" to use the Codec's default.
	Endian string `yaml:"endian,omitempty"`

	// ExpectSkippedTrailingFields is set for scenarios that exercise
	// the forward-compat path: the reader is older than the writer
	// and must skip this many unknown trailing octets.
	ExpectSkippedTrailingFields int `yaml:"expect_skipped_trailing_octets,omitempty"`

	// ExpectDefaultedFields lists the field names a backward-compat
	// scenario expects to be left at their zero value because the
	// decoded record was written by an older, shorter schema.
	ExpectDefaultedFields []string `yaml:"expect_defaulted_fields,omitempty"`
}

// Manifest is the top-level shape of a conformance manifest file.
type Manifest struct {
	Scenarios []Scenario `yaml:"scenarios"`
}

// Load reads and parses the manifest at path.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("conformance: reading manifest: %w", err)
	}
	return parse(data)
}

// LoadFromEnv reads the manifest named by WIREKIT_CONFORMANCE_MANIFEST.
// It returns an error if the variable is unset — matching the rest of
// wirekit's ambient configuration, there is no fallback path search.
func LoadFromEnv() (*Manifest, error) {
	path := os.Getenv("WIREKIT_CONFORMANCE_MANIFEST")
	if path == "" {
		return nil, fmt.Errorf("conformance: WIREKIT_CONFORMANCE_MANIFEST not set; " +
			"set it to a manifest path, or use LoadEmbedded for the built-in scenarios")
	}
	return Load(path)
}

// LoadEmbedded returns the manifest built into the wirekit module
// itself (testdata/scenarios.yaml), covering the six round-trip
// scenarios exercised by the top-level test suite. Tests use this by
// default so conformance coverage travels with the source tree without
// requiring any environment setup.
func LoadEmbedded() (*Manifest, error) {
	data, err := embeddedManifest.ReadFile("testdata/scenarios.yaml")
	if err != nil {
		return nil, fmt.Errorf("conformance: reading embedded manifest: %w", err)
	}
	return parse(data)
}

func parse(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("conformance: parsing manifest: %w", err)
	}
	return &m, nil
}

// ByName returns the scenario named name, or false if the manifest has
// none by that name.
func (m *Manifest) ByName(name string) (Scenario, bool) {
	for _, s := range m.Scenarios {
		if s.Name == name {
			return s, true
		}
	}
	return Scenario{}, false
}
