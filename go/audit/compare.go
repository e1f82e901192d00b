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
	"errors"
	"fmt"

	"github.com/roundcheck/roundcheck/go/decimal"
)

// ErrNormalization is returned when a rounder produces a string that
// does not fit the canonical fixed-precision form. It indicates a bug
// in one of the rounders, never an input condition.
var ErrNormalization = errors.New("malformed fixed-precision string")

// Verdict is the outcome of comparing the two rounders on one
// (value, depth) pair. Reference and Display hold the canonical strings
// and are meaningful whether or not they match.
type Verdict struct {
	Match     bool
	Reference string
	Display   string
}

// Compare rounds v at the given depth with both the naive reference
// (under mode's tie policy) and the standard formatter, normalizes both
// results, and reports whether they agree. It has no side effects.
func Compare(v float64, depth int, mode decimal.RoundingMode) (Verdict, error) {
	e, err := decimal.FromFloat64(v)
	if err != nil {
		return Verdict{}, err
	}

	ref, err := normalize(e.Fixed(depth, mode), depth)
	if err != nil {
		return Verdict{}, fmt.Errorf("reference rounder for %v at depth %d: %w", v, depth, err)
	}
	disp, err := normalize(FormatFixed(v, depth), depth)
	if err != nil {
		return Verdict{}, fmt.Errorf("display rounder for %v at depth %d: %w", v, depth, err)
	}

	return Verdict{Match: ref == disp, Reference: ref, Display: disp}, nil
}

// normalize validates that s is in canonical fixed-precision form for
// the given depth: an optional leading '-', an integer part with no
// superfluous leading zero, and a '.' followed by exactly depth digits
// iff depth > 0. Both rounders already emit this form, so normalize is
// a checked identity; a failure means a rounder broke its contract.
func normalize(s string, depth int) (string, error) {
	rest := s
	if len(rest) > 0 && rest[0] == '-' {
		rest = rest[1:]
	}

	dot := -1
	for i := 0; i < len(rest); i++ {
		if rest[i] == '.' {
			dot = i
			break
		}
		if rest[i] < '0' || rest[i] > '9' {
			return "", fmt.Errorf("%w: %q", ErrNormalization, s)
		}
	}

	intPart := rest
	frac := ""
	if dot >= 0 {
		intPart, frac = rest[:dot], rest[dot+1:]
	}
	switch {
	case len(intPart) == 0:
		return "", fmt.Errorf("%w: %q has no integer part", ErrNormalization, s)
	case len(intPart) > 1 && intPart[0] == '0':
		return "", fmt.Errorf("%w: %q has a superfluous leading zero", ErrNormalization, s)
	case len(frac) != depth || (depth > 0) != (dot >= 0):
		return "", fmt.Errorf("%w: %q does not carry exactly %d fractional digits", ErrNormalization, s, depth)
	}
	for i := 0; i < len(frac); i++ {
		if frac[i] < '0' || frac[i] > '9' {
			return "", fmt.Errorf("%w: %q", ErrNormalization, s)
		}
	}
	return s, nil
}
