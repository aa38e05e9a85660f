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

import "math/big"

// Pow takes a given value to the power n.
func Pow[F Element[F]](val F, n uint64) F {
	if n == 0 {
		val = val.SetUint64(1)
	} else if n > 1 {
		m := n / 2
		// Check for odd case
		if n%2 == 1 {
			tmp := val
			val = Pow(val, m)
			val = val.Mul(val).Mul(tmp)
		} else {
			// Even case is easy
			val = Pow(val, m)
			val = val.Mul(val)
		}
	}
	//
	return val
}

// PowBig takes a given value to the power n, for a non-negative exponent of
// arbitrary width.  The exponent is an integer, not a field element; it is
// used in full, never truncated to a machine word, so the result is correct
// for exponents beyond 64 bits as well.
func PowBig[F Element[F]](val F, n *big.Int) F {
	if n.Sign() < 0 {
		panic("negative exponent encountered")
	}
	// Square-and-multiply over the exponent bits, most significant first.
	result := One[F]()
	//
	for i := n.BitLen() - 1; i >= 0; i-- {
		result = result.Mul(result)
		//
		if n.Bit(i) == 1 {
			result = result.Mul(val)
		}
	}
	//
	return result
}

// TwoPowN constructs a field element representing 2^n
func TwoPowN[F Element[F]](n uint) F {
	var two F
	//
	return Pow(two.SetUint64(2), uint64(n))
}
