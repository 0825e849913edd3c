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

	"github.com/holiman/uint256"
)

// U256 is an unsigned 256-bit word.
type U256 uint256.Int

// NewU256 constructs a 256-bit word from four 64-bit limbs, given most
// significant first.
func NewU256(l3, l2, l1, l0 uint64) U256 {
	return U256{l0, l1, l2, l3}
}

func (p *U256) raw() *uint256.Int {
	return (*uint256.Int)(p)
}

// BitWidth implementation for the Word interface.
func (p U256) BitWidth() uint {
	return 256
}

// IsZero implementation for the Word interface.
func (p U256) IsZero() bool {
	return p.raw().IsZero()
}

// Lsh implementation for the Word interface.
func (p U256) Lsh(n uint) U256 {
	var r U256
	//
	r.raw().Lsh(p.raw(), n)
	//
	return r
}

// Rsh implementation for the Word interface.
func (p U256) Rsh(n uint) U256 {
	var r U256
	//
	r.raw().Rsh(p.raw(), n)
	//
	return r
}

// Or64 implementation for the Word interface.
func (p U256) Or64(value uint64) U256 {
	var r U256
	//
	r.raw().Or(p.raw(), uint256.NewInt(value))
	//
	return r
}

// Low64 implementation for the Word interface.
func (p U256) Low64() uint64 {
	return p.raw().Uint64()
}

// Neg implementation for the Word interface.
func (p U256) Neg() U256 {
	var r U256
	//
	r.raw().Neg(p.raw())
	//
	return r
}

// Cmp64 implementation for the Word interface.
func (p U256) Cmp64(value uint64) int {
	return p.raw().Cmp(uint256.NewInt(value))
}

// Big implementation for the Word interface.
func (p U256) Big() *big.Int {
	return p.raw().ToBig()
}

func (p U256) String() string {
	return p.Big().String()
}
