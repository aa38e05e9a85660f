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
	"encoding/hex"
	"fmt"
	"strings"
)

// DecodeError signals that a string could not be decoded into a field
// element, either because it contained a non-hexadecimal character or because
// it encoded more than 32 bytes.  Malformed public input is an expected
// condition for a verifier, hence a recoverable error rather than a panic.
type DecodeError struct {
	// Input is the offending string, as given by the caller.
	Input string
	// Reason describes why decoding failed.
	Reason error
}

// Error implementation for the error interface.
func (e *DecodeError) Error() string {
	return fmt.Sprintf("invalid field element %q: %v", e.Input, e.Reason)
}

// Unwrap exposes the underlying cause for errors.Is / errors.As.
func (e *DecodeError) Unwrap() error {
	return e.Reason
}

// FromHex constructs a field element from a hex string, with or without a
// "0x" (or "0X") prefix.  An odd number of digits is normalised by an
// implicit leading zero digit, so "0xabc" and "0x0abc" decode identically.
// The decoded bytes are left-padded with zeros to the full 32-byte width and
// then interpreted as a big-endian integer modulo the field order.
func FromHex[F Element[F]](s string) (F, error) {
	var (
		element F
		padded  [Bytes]byte
		raw     = s
	)
	//
	if strings.HasPrefix(raw, "0x") || strings.HasPrefix(raw, "0X") {
		raw = raw[2:]
	}
	// Normalise to an even digit count before decoding, otherwise a leading
	// nibble would shift every subsequent byte.
	if len(raw)%2 == 1 {
		raw = "0" + raw
	}
	//
	bytes, err := hex.DecodeString(raw)
	if err != nil {
		return element, &DecodeError{Input: s, Reason: err}
	}
	//
	if len(bytes) > Bytes {
		return element, &DecodeError{
			Input:  s,
			Reason: fmt.Errorf("%d bytes exceeds %d byte width", len(bytes), Bytes),
		}
	}
	//
	copy(padded[Bytes-len(bytes):], bytes)
	//
	return FromBytes[F](padded), nil
}
