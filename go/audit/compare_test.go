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

package audit

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roundcheck/roundcheck/go/decimal"
)

func TestCompare(t *testing.T) {
	testcases := []struct {
		name      string
		input     float64
		depth     int
		mode      decimal.RoundingMode
		match     bool
		reference string
		display   string
	}{
		{
			// The canonical policy divergence: an exact decimal tie
			// rounded up by the reference, to even by the formatter.
			name:      "tie half-up",
			input:     2.5,
			depth:     0,
			mode:      decimal.ToNearestAway,
			match:     false,
			reference: "3",
			display:   "2",
		},
		{
			name:      "tie half-even",
			input:     2.5,
			depth:     0,
			mode:      decimal.ToNearestEven,
			match:     true,
			reference: "2",
			display:   "2",
		},
		{
			name:      "below boundary",
			input:     0.4,
			depth:     0,
			mode:      decimal.ToNearestAway,
			match:     true,
			reference: "0",
			display:   "0",
		},
		{
			name:      "carry into new integer digit",
			input:     9.99996,
			depth:     4,
			mode:      decimal.ToNearestAway,
			match:     true,
			reference: "10.0000",
			display:   "10.0000",
		},
		{
			name:      "negative tie half-up",
			input:     -2.5,
			depth:     0,
			mode:      decimal.ToNearestAway,
			match:     false,
			reference: "-3",
			display:   "-2",
		},
	}
	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			verdict, err := Compare(tc.input, tc.depth, tc.mode)
			require.NoError(t, err)
			assert.Equal(t, tc.match, verdict.Match)
			assert.Equal(t, tc.reference, verdict.Reference)
			assert.Equal(t, tc.display, verdict.Display)
		})
	}
}

func TestCompareNonFinite(t *testing.T) {
	for _, input := range []float64{math.NaN(), math.Inf(1)} {
		_, err := Compare(input, 2, decimal.ToNearestAway)
		require.ErrorIs(t, err, decimal.ErrUnsupportedValue)
	}
}

func TestNormalize(t *testing.T) {
	testcases := []struct {
		input string
		depth int
		err   bool
	}{
		{input: "0", depth: 0},
		{input: "-0", depth: 0},
		{input: "10.0000", depth: 4},
		{input: "-0.5", depth: 1},
		{input: "0.500", depth: 3},
		{input: "00.5", depth: 1, err: true},
		{input: "0.5", depth: 2, err: true},
		{input: "0.50", depth: 1, err: true},
		{input: ".5", depth: 1, err: true},
		{input: "0.", depth: 0, err: true},
		{input: "1", depth: 1, err: true},
		{input: "-", depth: 0, err: true},
		{input: "1e-3", depth: 3, err: true},
		{input: "0.5x", depth: 2, err: true},
	}
	for _, tc := range testcases {
		got, err := normalize(tc.input, tc.depth)
		if tc.err {
			assert.ErrorIs(t, err, ErrNormalization, "normalize(%q, %d)", tc.input, tc.depth)
			continue
		}
		require.NoError(t, err, "normalize(%q, %d)", tc.input, tc.depth)
		assert.Equal(t, tc.input, got)
	}
}
