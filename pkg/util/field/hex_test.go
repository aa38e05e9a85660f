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
	"strings"
	"testing"

	"github.com/yugocabrio/go-soroban-ultrahonk/pkg/util/assert"
	"github.com/yugocabrio/go-soroban-ultrahonk/pkg/util/field/bn254"
)

func Test_Hex_Decode(t *testing.T) {
	cases := []struct {
		input string
		value uint64
	}{
		{"0x0", 0},
		{"0x1", 1},
		{"0x01", 1},
		{"0X01", 1},
		{"1", 1},
		{"0xa", 10},
		{"0xabc", 0xabc},
		{"0x0abc", 0xabc},
		{"0xAbC", 0xabc},
		{"ff", 255},
		{"0xdeadbeef", 0xdeadbeef},
		// an empty digit string encodes zero
		{"", 0},
		{"0x", 0},
		// full 32-byte width is representable
		{"0x" + strings.Repeat("00", 31) + "2a", 42},
	}
	//
	for _, c := range cases {
		x, err := FromHex[bn254.Element](c.input)
		//
		assert.NoError(t, err)
		assert.True(t, Equal(x, Uint64[bn254.Element](c.value)), "on input %q", c.input)
	}
}

func Test_Hex_OddLengthNormalisation(t *testing.T) {
	// "0xabc" must decode as "0x0abc", not misalign every byte below the
	// leading nibble.
	lhs, err1 := FromHex[bn254.Element]("0x123456789")
	rhs, err2 := FromHex[bn254.Element]("0x0123456789")
	//
	assert.NoError(t, err1)
	assert.NoError(t, err2)
	assert.True(t, Equal(lhs, rhs))
	assert.True(t, Equal(lhs, Uint64[bn254.Element](0x123456789)))
}

func Test_Hex_DecodeErrors(t *testing.T) {
	inputs := []string{
		"0xzz",
		"0xg",
		"hello",
		"0x12 34",
		// 33 bytes exceeds the 32-byte width
		"0x" + strings.Repeat("ff", 33),
	}
	//
	for _, input := range inputs {
		var decodeErr *DecodeError
		//
		_, err := FromHex[bn254.Element](input)
		//
		assert.True(t, err != nil, "expected decode failure on %q", input)
		assert.True(t, errors.As(err, &decodeErr), "on input %q", input)
		assert.Equal(t, input, decodeErr.Input)
	}
}

func Test_Hex_RoundTripWithBytes(t *testing.T) {
	x, err := FromHex[bn254.Element]("0x1234567890abcdef1234567890abcdef")
	//
	assert.NoError(t, err)
	//
	y := FromBytes[bn254.Element]([Bytes]byte(x.Bytes()))
	//
	assert.True(t, Equal(x, y))
}
