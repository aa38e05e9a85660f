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
	"errors"
	"fmt"
)

// ErrNotInvertible signals an attempt to invert a sequence containing the
// zero element, which has no multiplicative inverse.  The batch fails as a
// whole; callers are not told which index was zero.
var ErrNotInvertible = errors.New("element is not invertible")

// BatchInvert computes the multiplicative inverses of vals into out, using
// one field inversion and 3(n-1) multiplications rather than one inversion
// per element (Montgomery's trick).  Inversion is by far the most expensive
// field operation, so this is the standard amortisation when a verifier needs
// an inverse per constraint or per wire.
//
// The two slices must have equal length and must not alias.  A length
// mismatch is a caller bug and panics; a zero element anywhere in vals is bad
// data and fails the whole batch with ErrNotInvertible, leaving out
// unspecified and producing no partial result.
func BatchInvert[F Element[F]](vals []F, out []F) error {
	n := len(vals)
	//
	if n != len(out) {
		panic(fmt.Sprintf("batch inversion length mismatch (%d vs %d)", n, len(out)))
	} else if n == 0 {
		return nil
	}
	// Build prefix products, out[i] = vals[0] * vals[1] * ... * vals[i].
	out[0] = vals[0]
	//
	for i := 1; i < n; i++ {
		out[i] = out[i-1].Mul(vals[i])
	}
	// The total product is zero iff at least one element is zero.
	if out[n-1].IsZero() {
		return ErrNotInvertible
	}
	// Invert the total product
	acc := out[n-1].Inverse()
	// Sweep backwards to recover individual inverses.  Entering step i, acc is
	// the inverse of the prefix product out[i], so multiplying by out[i-1]
	// cancels everything below index i.
	for i := n - 1; i >= 1; i-- {
		out[i] = acc.Mul(out[i-1])
		acc = acc.Mul(vals[i])
	}
	//
	out[0] = acc
	//
	return nil
}

// BatchInverse is the allocating form of BatchInvert, returning a fresh
// sequence with result[i] = vals[i]⁻¹.
func BatchInverse[F Element[F]](vals []F) ([]F, error) {
	out := make([]F, len(vals))
	//
	if err := BatchInvert(vals, out); err != nil {
		return nil, err
	}
	//
	return out, nil
}
