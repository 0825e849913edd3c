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

// U512 is an unsigned 512-bit word, held as two 256-bit halves.
type U512 struct {
	hi uint256.Int
	lo uint256.Int
}

// NewU512 constructs a 512-bit word from its upper and lower halves.
func NewU512(hi, lo U256) U512 {
	return U512{uint256.Int(hi), uint256.Int(lo)}
}

// Halves returns the upper and lower 256 bits of this word.
func (p U512) Halves() (hi, lo U256) {
	return U256(p.hi), U256(p.lo)
}

// BitWidth implementation for the Word interface.
func (p U512) BitWidth() uint {
	return 512
}

// IsZero implementation for the Word interface.
func (p U512) IsZero() bool {
	return p.hi.IsZero() && p.lo.IsZero()
}

// Lsh implementation for the Word interface.
func (p U512) Lsh(n uint) U512 {
	var (
		r     U512
		carry uint256.Int
	)
	//
	switch {
	case n == 0:
		return p
	case n >= 512:
		return r
	case n >= 256:
		r.hi.Lsh(&p.lo, n-256)
	default:
		// bits moving from the lower into the upper half
		carry.Rsh(&p.lo, 256-n)
		r.hi.Lsh(&p.hi, n)
		r.hi.Or(&r.hi, &carry)
		r.lo.Lsh(&p.lo, n)
	}
	//
	return r
}

// Rsh implementation for the Word interface.
func (p U512) Rsh(n uint) U512 {
	var (
		r     U512
		carry uint256.Int
	)
	//
	switch {
	case n == 0:
		return p
	case n >= 512:
		return r
	case n >= 256:
		r.lo.Rsh(&p.hi, n-256)
	default:
		// bits moving from the upper into the lower half
		carry.Lsh(&p.hi, 256-n)
		r.lo.Rsh(&p.lo, n)
		r.lo.Or(&r.lo, &carry)
		r.hi.Rsh(&p.hi, n)
	}
	//
	return r
}

// Or64 implementation for the Word interface.
func (p U512) Or64(value uint64) U512 {
	var r = p
	//
	r.lo.Or(&p.lo, uint256.NewInt(value))
	//
	return r
}

// Low64 implementation for the Word interface.
func (p U512) Low64() uint64 {
	return p.lo.Uint64()
}

// Neg implementation for the Word interface.
func (p U512) Neg() U512 {
	var r U512
	//
	r.hi.Not(&p.hi)
	r.lo.Not(&p.lo)
	//
	if _, overflow := r.lo.AddOverflow(&r.lo, uint256.NewInt(1)); overflow {
		r.hi.AddUint64(&r.hi, 1)
	}
	//
	return r
}

// Cmp64 implementation for the Word interface.
func (p U512) Cmp64(value uint64) int {
	if !p.hi.IsZero() {
		return 1
	}
	//
	return p.lo.Cmp(uint256.NewInt(value))
}

// Big implementation for the Word interface.
func (p U512) Big() *big.Int {
	var val = p.hi.ToBig()
	//
	val.Lsh(val, 256)
	//
	return val.Or(val, p.lo.ToBig())
}

func (p U512) String() string {
	return p.Big().String()
}
