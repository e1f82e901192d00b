/*
Copyright 2026 The Roundcheck Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package audit compares the platform's fixed-precision float64
// formatting against a naive decimal-rounding reference and tallies the
// values on which the two disagree.
package audit

import (
	"fmt"
	"strconv"
	"strings"
)

// Candidate is one value under test: the decimal literal it was built
// from and the float64 that literal parses to.
type Candidate struct {
	Text  string
	Value float64
}

// Generator produces the finite, deterministic sequence of candidates
// for one depth: the literals 0.<prefix>4 and 0.<prefix>5 for every
// depth-digit prefix, in ascending order. The probe digit sits one
// position past the tested depth, placing every candidate next to a
// rounding boundary.
//
// In negative mode each candidate is the exact negation of the
// positive-mode candidate at the same index.
type Generator struct {
	depth    int
	negative bool
	prefixes uint64 // 10^depth
	index    uint64 // next candidate, in [0, 2*prefixes]
}

// NewGenerator returns a generator for the given depth and sign
// configuration. Depth must be in [0, 15] so the prefix count fits
// comfortably in a uint64.
func NewGenerator(depth int, negative bool) *Generator {
	if depth < 0 || depth > 15 {
		panic(fmt.Sprintf("audit: generator depth %d out of range", depth))
	}
	prefixes := uint64(1)
	for i := 0; i < depth; i++ {
		prefixes *= 10
	}
	return &Generator{depth: depth, negative: negative, prefixes: prefixes}
}

// Len returns the total number of candidates the sequence yields.
func (g *Generator) Len() uint64 {
	return 2 * g.prefixes
}

// Reset rewinds the sequence to its start.
func (g *Generator) Reset() {
	g.index = 0
}

// Next returns the next candidate, or ok == false once the sequence is
// exhausted.
func (g *Generator) Next() (c Candidate, ok bool) {
	if g.index >= 2*g.prefixes {
		return Candidate{}, false
	}
	prefix, probe := g.index/2, byte('4'+g.index%2)
	g.index++

	var sb strings.Builder
	if g.negative {
		sb.WriteByte('-')
	}
	sb.WriteString("0.")
	if g.depth > 0 {
		digits := strconv.FormatUint(prefix, 10)
		sb.WriteString(strings.Repeat("0", g.depth-len(digits)))
		sb.WriteString(digits)
	}
	sb.WriteByte(probe)

	text := sb.String()
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		// The literal is constructed above; failing to parse it is a
		// generator bug, not an input condition.
		panic(fmt.Sprintf("audit: generated unparseable candidate %q: %v", text, err))
	}
	return Candidate{Text: text, Value: v}, true
}
