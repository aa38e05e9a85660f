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
	"fmt"
	"math/big"
)

// Bytes is the width, in bytes, of the canonical big-endian encoding of a
// field element.  All fields supported here have an order below 2²⁵⁶.
const Bytes = 32

// An Element of a prime-order field.  The interface abstracts the underlying
// modular-arithmetic engine, so that everything built on top (encoding,
// exponentiation, batch inversion) is independent of the concrete big-integer
// implementation and a reference engine can be substituted in tests.
//
// Every value satisfying this interface represents a fully reduced residue in
// [0, p), where p is the field order.  Operations return new values rather
// than mutating in place, so elements are freely shareable.
type Element[Operand any] interface {
	fmt.Stringer
	// Add x+y
	Add(y Operand) Operand
	// Sub x-y
	Sub(y Operand) Operand
	// Mul x*y
	Mul(y Operand) Operand
	// Neg -x
	Neg() Operand
	// Cmp returns 1 if x > y, 0 if x = y, and -1 if x < y.
	Cmp(y Operand) int
	// Check whether this value is zero (or not).
	IsZero() bool
	// Check whether this value is one (or not).
	IsOne() bool
	// Inverse x⁻¹, or 0 if x = 0.
	Inverse() Operand
	// Return the modulus for the field in question.
	Modulus() *big.Int
	// SetUint64 constructs the element representing a given uint64.
	SetUint64(val uint64) Operand
	// SetBytes constructs the element encoded by a given big-endian byte
	// string, reduced modulo the field order.  Values at or above the order
	// are legal and reduce silently.
	SetBytes(bytes []byte) Operand
	// Bytes returns the canonical 32-byte big-endian encoding of the reduced
	// residue, zero-padded on the left.
	Bytes() []byte
	// Text returns the numerical value of x in the given base.
	Text(base int) string
}

// Zero constructs a field element representing 0
func Zero[F Element[F]]() F {
	var element F
	//
	return element
}

// One constructs a field element representing 1
func One[F Element[F]]() F {
	var element F
	//
	return element.SetUint64(1)
}

// Uint64 construct a field element from a given uint64
func Uint64[F Element[F]](val uint64) F {
	var element F
	//
	return element.SetUint64(val)
}

// BigInt construct a field element from a given (non-negative) big.Int,
// reduced modulo the field order.
func BigInt[F Element[F]](val big.Int) F {
	var element F
	//
	if val.Sign() < 0 {
		panic("negative value encountered")
	}
	//
	return element.SetBytes(val.Bytes())
}

// FromBytes constructs a field element from exactly 32 bytes given in big
// endian order.  Encodings of values at or above the field order are reduced,
// not rejected.
func FromBytes[F Element[F]](bytes [Bytes]byte) F {
	var element F
	//
	return element.SetBytes(bytes[:])
}

// Equal determines whether two field elements represent the same residue.
func Equal[F Element[F]](x F, y F) bool {
	return x.Cmp(y) == 0
}

// Inverse computes the multiplicative inverse of x, signalling absence for
// the zero element (which has none).  This is the checked counterpart of
// Element.Inverse, for callers which must distinguish 0⁻¹ from 0.
func Inverse[F Element[F]](x F) (F, bool) {
	if x.IsZero() {
		var zero F
		//
		return zero, false
	}
	//
	return x.Inverse(), true
}
