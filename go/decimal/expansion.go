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

// Package decimal converts binary floating-point values into their exact
// decimal expansion and rounds those expansions to a fixed number of
// fractional digits under an explicit tie-breaking policy.
//
// Every finite float64 is sign × mantissa × 2^exp for integers mantissa
// and exp, so its decimal expansion is finite and can be produced exactly
// with integer arithmetic: for exp < 0, mantissa/2^k == mantissa·5^k/10^k.
// No floating-point arithmetic is involved past the initial bit-level
// decomposition.
package decimal

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"strings"
	"sync"
)

// ErrUnsupportedValue is returned when a non-finite value (infinity or
// NaN) is handed to the expander. Such values have no decimal expansion.
var ErrUnsupportedValue = errors.New("unsupported non-finite value")

// Expansion is the exact decimal expansion of a finite float64: a sign,
// the integer digits, and the complete fractional digits. It is immutable
// once built.
type Expansion struct {
	// Neg records the sign bit, so a negative zero stays negative.
	Neg bool

	// Int holds the integer digits with no superfluous leading zero.
	// It is "0" for values below one.
	Int string

	// Frac holds the exact fractional digits with trailing zeros
	// trimmed. It is empty for integral values.
	Frac string
}

const (
	mantBits = 52
	expBits  = 11
	expBias  = 1023
)

// scratch pools the big.Int values used during expansion so that
// auditing millions of candidates does not allocate two fresh
// multi-word integers per value.
var scratch = sync.Pool{
	New: func() any {
		return new(big.Int)
	},
}

// pow5Tab caches small powers of five; the expander needs 5^k where k is
// the number of fractional bits, which stays small for the magnitude
// range the generator produces. Larger exponents (subnormals need up to
// 5^1074) fall back to big.Int.Exp.
var pow5Tab = func() []*big.Int {
	tab := make([]*big.Int, 128)
	tab[0] = big.NewInt(1)
	for i := 1; i < len(tab); i++ {
		tab[i] = new(big.Int).Mul(tab[i-1], big.NewInt(5))
	}
	return tab
}()

func pow5(k uint) *big.Int {
	if k < uint(len(pow5Tab)) {
		return pow5Tab[k]
	}
	return new(big.Int).Exp(big.NewInt(5), big.NewInt(int64(k)), nil)
}

// FromFloat64 returns the exact decimal expansion of f.
//
// It fails with ErrUnsupportedValue for infinities and NaN; any finite
// value, zero and subnormals included, expands successfully.
func FromFloat64(f float64) (Expansion, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Expansion{}, fmt.Errorf("%w: %v", ErrUnsupportedValue, f)
	}

	bits := math.Float64bits(f)
	neg := bits>>(mantBits+expBits) != 0
	rawExp := int(bits>>mantBits) & (1<<expBits - 1)
	mant := bits & (1<<mantBits - 1)

	var exp2 int
	if rawExp == 0 {
		// Subnormal (or zero): no implicit leading bit.
		exp2 = 1 - expBias - mantBits
	} else {
		mant |= 1 << mantBits
		exp2 = rawExp - expBias - mantBits
	}

	if mant == 0 {
		return Expansion{Neg: neg, Int: "0"}, nil
	}

	m := scratch.Get().(*big.Int)
	defer scratch.Put(m)
	m.SetUint64(mant)

	if exp2 >= 0 {
		m.Lsh(m, uint(exp2))
		return Expansion{Neg: neg, Int: m.String()}, nil
	}

	// mant / 2^k == mant·5^k / 10^k: the digits of mant·5^k, read with
	// k fractional positions, are the exact expansion.
	k := uint(-exp2)
	m.Mul(m, pow5(k))
	digits := m.String()

	if pad := int(k) - len(digits); pad > 0 {
		digits = strings.Repeat("0", pad) + digits
	}
	intPart := digits[:len(digits)-int(k)]
	frac := strings.TrimRight(digits[len(digits)-int(k):], "0")
	if intPart == "" {
		intPart = "0"
	}
	return Expansion{Neg: neg, Int: intPart, Frac: frac}, nil
}

// String renders the full expansion, mostly for diagnostics.
func (e Expansion) String() string {
	var sb strings.Builder
	if e.Neg {
		sb.WriteByte('-')
	}
	sb.WriteString(e.Int)
	if e.Frac != "" {
		sb.WriteByte('.')
		sb.WriteString(e.Frac)
	}
	return sb.String()
}
