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

// Package bigmod provides a naive math/big rendition of the BN254 scalar
// field, conforming to the field.Element interface.  It is far slower than
// the gnark-crypto engine and exists to cross-check it in tests; nothing on
// the verification path should use it.
package bigmod

import (
	"math/big"
)

// modulus is the order of the BN254 scalar field, a 254-bit prime.
var modulus, _ = new(big.Int).SetString(
	"21888242871839275222246405745257275088548364400416034343698204186575808495617", 10)

// Element represents a reduced residue modulo the BN254 scalar-field order.
// The zero value represents 0; the inner pointer is never mutated once set,
// so values behave immutably.
type Element struct {
	value *big.Int
}

// Add x + y
func (x Element) Add(y Element) Element {
	return reduce(new(big.Int).Add(x.big(), y.big()))
}

// Sub x - y
func (x Element) Sub(y Element) Element {
	return reduce(new(big.Int).Sub(x.big(), y.big()))
}

// Mul x * y
func (x Element) Mul(y Element) Element {
	return reduce(new(big.Int).Mul(x.big(), y.big()))
}

// Neg -x
func (x Element) Neg() Element {
	return reduce(new(big.Int).Neg(x.big()))
}

// Cmp returns 1 if x > y, 0 if x = y, and -1 if x < y.
func (x Element) Cmp(y Element) int {
	return x.big().Cmp(y.big())
}

// Inverse x⁻¹, or 0 if x = 0.
func (x Element) Inverse() Element {
	if x.IsZero() {
		return Element{}
	}
	//
	return Element{new(big.Int).ModInverse(x.big(), modulus)}
}

// IsZero implementation for the Element interface
func (x Element) IsZero() bool {
	return x.value == nil || x.value.Sign() == 0
}

// IsOne implementation for the Element interface
func (x Element) IsOne() bool {
	return x.value != nil && x.value.Cmp(big.NewInt(1)) == 0
}

// Modulus returns the order of the BN254 scalar field.
func (x Element) Modulus() *big.Int {
	return new(big.Int).Set(modulus)
}

// SetBytes implementation for Element.  The bytes are interpreted as a
// big-endian unsigned integer and reduced modulo the field order.
func (x Element) SetBytes(bytes []byte) Element {
	return reduce(new(big.Int).SetBytes(bytes))
}

// SetUint64 implementation for Element.
func (x Element) SetUint64(val uint64) Element {
	return reduce(new(big.Int).SetUint64(val))
}

// Bytes returns the canonical 32-byte big-endian encoding of the reduced
// residue, zero-padded on the left.
func (x Element) Bytes() []byte {
	var out [32]byte
	//
	return x.big().FillBytes(out[:])
}

func (x Element) String() string {
	return x.big().String()
}

// Text implementation for the Element interface
func (x Element) Text(base int) string {
	return x.big().Text(base)
}

// big returns the underlying integer, mapping the zero value to 0.
func (x Element) big() *big.Int {
	if x.value == nil {
		return new(big.Int)
	}
	//
	return x.value
}

// reduce normalises an arbitrary (possibly negative) integer into [0, p).
// The argument is owned by the caller and consumed here.
func reduce(v *big.Int) Element {
	return Element{v.Mod(v, modulus)}
}
