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

package decimal

import (
	"fmt"
	"strings"
)

// RoundingMode determines how an exact tie (first discarded digit is 5
// with nothing nonzero after it) is resolved when rounding an Expansion
// to a fixed number of fractional digits.
type RoundingMode uint8

const (
	// ToNearestAway rounds ties away from zero. This is the naive
	// "look at one digit" policy the auditor uses by default.
	ToNearestAway RoundingMode = iota

	// ToNearestEven rounds ties towards an even last kept digit
	// (banker's rounding).
	ToNearestEven
)

func (m RoundingMode) String() string {
	switch m {
	case ToNearestAway:
		return "half-up"
	case ToNearestEven:
		return "half-even"
	default:
		return fmt.Sprintf("RoundingMode(%d)", uint8(m))
	}
}

// Fixed rounds the expansion to exactly depth fractional digits and
// renders it as a plain decimal string: optional '-', integer digits,
// and for depth > 0 a '.' followed by depth digits.
//
// The rounding decision looks at the first discarded digit only, except
// on an exact tie where mode decides. Carries propagate leftward through
// the kept digits and may extend the integer part by one digit
// (9.9996 at depth 3 rounds to 10.000).
//
// The sign is preserved even when the rounded magnitude is zero, so
// -0.4 at depth 0 yields "-0", matching the formatter under audit.
func (e Expansion) Fixed(depth int, mode RoundingMode) string {
	if depth < 0 {
		panic(fmt.Sprintf("decimal: negative depth %d", depth))
	}

	frac := e.Frac
	var kept string
	roundUp := false
	if len(frac) <= depth {
		kept = frac + strings.Repeat("0", depth-len(frac))
	} else {
		kept = frac[:depth]
		first := frac[depth]
		// Frac carries no trailing zeros, so any digit past the first
		// discarded one means we are strictly above the halfway point.
		sticky := len(frac) > depth+1
		switch {
		case first > '5':
			roundUp = true
		case first < '5':
			roundUp = false
		case sticky:
			roundUp = true
		case mode == ToNearestAway:
			roundUp = true
		default:
			roundUp = lastDigit(e.Int, kept)%2 != 0
		}
	}

	intPart := e.Int
	if roundUp {
		intPart, kept = increment(intPart, kept)
	}

	var sb strings.Builder
	if e.Neg {
		sb.WriteByte('-')
	}
	sb.WriteString(intPart)
	if depth > 0 {
		sb.WriteByte('.')
		sb.WriteString(kept)
	}
	return sb.String()
}

// lastDigit returns the numeric value of the last kept digit: the final
// fractional digit, or the final integer digit when none are kept.
func lastDigit(intPart, kept string) byte {
	if kept != "" {
		return kept[len(kept)-1] - '0'
	}
	return intPart[len(intPart)-1] - '0'
}

// increment adds one unit in the last kept position, carrying leftward
// across the decimal point and extending the integer part if the carry
// overflows its most significant digit.
func increment(intPart, kept string) (string, string) {
	digits := []byte(intPart + kept)
	i := len(digits) - 1
	for ; i >= 0; i-- {
		if digits[i] != '9' {
			digits[i]++
			break
		}
		digits[i] = '0'
	}
	if i < 0 {
		digits = append([]byte{'1'}, digits...)
	}
	return string(digits[:len(digits)-len(kept)]), string(digits[len(digits)-len(kept):])
}
