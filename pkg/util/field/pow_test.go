// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package field

import (
	"math/big"
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/yugocabrio/go-soroban-ultrahonk/pkg/util/assert"
	"github.com/yugocabrio/go-soroban-ultrahonk/pkg/util/field/bn254"
)

const POW_BASE_MAX uint = 4096
const POW_BASE_INC uint = 8

func Test_Pow_00(t *testing.T) {
	PowCheck(t, 1, 1)
}
func Test_Pow_01(t *testing.T) {
	PowCheck(t, 2, 1)
}
func Test_Pow_02(t *testing.T) {
	PowCheck(t, 2, 2)
}
func Test_Pow_03(t *testing.T) {
	PowCheck(t, 2, 3)
}
func Test_Pow_04(t *testing.T) {
	PowCheck(t, 3, 5)
}

func Test_Pow_10(t *testing.T) {
	PowCheckLoop(t, 0)
}

func Test_Pow_11(t *testing.T) {
	PowCheckLoop(t, 1)
}

func Test_Pow_12(t *testing.T) {
	PowCheckLoop(t, 2)
}

func Test_Pow_13(t *testing.T) {
	PowCheckLoop(t, 3)
}

func Test_PowBig_SmallExponents(t *testing.T) {
	// PowBig must agree with Pow wherever the exponent fits a word.
	for base := uint64(1); base < 100; base++ {
		for exp := uint64(0); exp < 100; exp++ {
			var (
				x        = Uint64[bn254.Element](base)
				actual   = PowBig(x, new(big.Int).SetUint64(exp))
				expected = Pow(x, exp)
			)
			//
			assert.True(t, Equal(actual, expected), "PowBig(%d,%d)=%s (not %s)", base, exp, actual, expected)
		}
	}
}

func Test_PowBig_WideExponents(t *testing.T) {
	// Exponents beyond 64 bits must be used in full, never truncated to the
	// low word.  x^(p-1) = 1 by Fermat, and p-1 is a 254-bit exponent.
	var (
		x    = Uint64[bn254.Element](12345)
		pm1  = new(big.Int).Sub(x.Modulus(), big.NewInt(1))
		full = PowBig(x, pm1)
	)
	//
	assert.True(t, full.IsOne(), "x^(p-1) = %s", full)
	// Cross-check wide exponents against the gnark implementation.
	for _, shift := range []uint{63, 64, 100, 200} {
		var (
			exp      = new(big.Int).Lsh(big.NewInt(0xcafe), shift)
			actual   = PowBig(x, exp)
			expected = fr.NewElement(12345)
		)
		//
		expected.Exp(expected, exp)
		//
		assert.Equal(t, 0, actual.Element.Cmp(&expected), "exponent 0xcafe<<%d", shift)
	}
}

func Test_Pow_ZeroExponent(t *testing.T) {
	// x^0 = 1, including for x = 0.
	assert.True(t, Pow(Zero[bn254.Element](), 0).IsOne())
	assert.True(t, PowBig(Zero[bn254.Element](), big.NewInt(0)).IsOne())
}

func Test_TwoPowN(t *testing.T) {
	assert.True(t, TwoPowN[bn254.Element](0).IsOne())
	assert.True(t, Equal(TwoPowN[bn254.Element](10), Uint64[bn254.Element](1024)))
}

func PowCheckLoop(t *testing.T, first uint) {
	// Enable parallel testing
	t.Parallel()
	// Run through the loop
	for i := first; i < POW_BASE_MAX; i += POW_BASE_INC {
		for j := uint64(0); j < 64; j++ {
			PowCheck(t, i, j)
		}
	}
}

// Check pow computed correctly.  This is done by comparing against the
// existing gnark function.
func PowCheck(t *testing.T, base uint, pow uint64) {
	var (
		k        = new(big.Int).SetUint64(pow)
		actual   bn254.Element
		expected = fr.NewElement(uint64(base))
	)
	// Initialise actual value
	actual = actual.SetUint64(uint64(base))
	// Compute actual using our optimised method
	actual = Pow(actual, pow)
	// Compute expected using existing gnark function
	expected.Exp(expected, k)
	// Final sanity check
	if actual.Element.Cmp(&expected) != 0 {
		t.Errorf("Pow(%d,%d)=%s (not %s)", base, pow, actual.String(), expected.String())
	}
}
