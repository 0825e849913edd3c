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
package word

import (
	"math/big"
	"math/bits"

	"lukechampine.com/uint128"
)

// U128 is an unsigned 128-bit word.
type U128 uint128.Uint128

// NewU128 constructs a 128-bit word from its upper and lower halves.
func NewU128(hi, lo uint64) U128 {
	return U128(uint128.New(lo, hi))
}

// Halves returns the upper and lower 64 bits of this word.
func (p U128) Halves() (hi, lo uint64) {
	return p.Hi, p.Lo
}

// BitWidth implementation for the Word interface.
func (p U128) BitWidth() uint {
	return 128
}

// IsZero implementation for the Word interface.
func (p U128) IsZero() bool {
	return uint128.Uint128(p).IsZero()
}

// Lsh implementation for the Word interface.
func (p U128) Lsh(n uint) U128 {
	if n >= 128 {
		return U128{}
	}
	//
	return U128(uint128.Uint128(p).Lsh(n))
}

// Rsh implementation for the Word interface.
func (p U128) Rsh(n uint) U128 {
	if n >= 128 {
		return U128{}
	}
	//
	return U128(uint128.Uint128(p).Rsh(n))
}

// Or64 implementation for the Word interface.
func (p U128) Or64(value uint64) U128 {
	return U128(uint128.Uint128(p).Or64(value))
}

// Low64 implementation for the Word interface.
func (p U128) Low64() uint64 {
	return p.Lo
}

// Neg implementation for the Word interface.
func (p U128) Neg() U128 {
	lo, carry := bits.Add64(^p.Lo, 1, 0)
	hi, _ := bits.Add64(^p.Hi, 0, carry)
	//
	return NewU128(hi, lo)
}

// Cmp64 implementation for the Word interface.
func (p U128) Cmp64(value uint64) int {
	return uint128.Uint128(p).Cmp64(value)
}

// Big implementation for the Word interface.
func (p U128) Big() *big.Int {
	return uint128.Uint128(p).Big()
}

func (p U128) String() string {
	return uint128.Uint128(p).String()
}
