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
	"cmp"
	"math/big"
	"math/bits"
	"strconv"
)

// NativeUint captures the machine integer types which can back a word.
type NativeUint interface {
	~uint32 | ~uint64 | ~uint | ~uintptr
}

// Native is a word backed directly by one of Go's unsigned integer types.
type Native[N NativeUint] struct {
	val N
}

// U32 is an unsigned 32-bit word.
type U32 = Native[uint32]

// U64 is an unsigned 64-bit word.
type U64 = Native[uint64]

// Uint is an unsigned word matching the machine's native word size.
type Uint = Native[uint]

// Usize is an unsigned word matching the machine's pointer size, as used for
// sizes and offsets.
type Usize = Native[uintptr]

// Of constructs a word from a given machine integer.
func Of[N NativeUint](value N) Native[N] {
	return Native[N]{value}
}

// Value returns the machine integer held in this word.
func (p Native[N]) Value() N {
	return p.val
}

// BitWidth implementation for the Word interface.
func (p Native[N]) BitWidth() uint {
	return uint(bits.Len64(uint64(^N(0))))
}

// IsZero implementation for the Word interface.
func (p Native[N]) IsZero() bool {
	return p.val == 0
}

// Lsh implementation for the Word interface.
func (p Native[N]) Lsh(n uint) Native[N] {
	return Native[N]{p.val << n}
}

// Rsh implementation for the Word interface.
func (p Native[N]) Rsh(n uint) Native[N] {
	return Native[N]{p.val >> n}
}

// Or64 implementation for the Word interface.
func (p Native[N]) Or64(value uint64) Native[N] {
	return Native[N]{p.val | N(value)}
}

// Low64 implementation for the Word interface.
func (p Native[N]) Low64() uint64 {
	return uint64(p.val)
}

// Neg implementation for the Word interface.
func (p Native[N]) Neg() Native[N] {
	return Native[N]{^p.val + 1}
}

// Cmp64 implementation for the Word interface.
func (p Native[N]) Cmp64(value uint64) int {
	return cmp.Compare(uint64(p.val), value)
}

// Big implementation for the Word interface.
func (p Native[N]) Big() *big.Int {
	return new(big.Int).SetUint64(uint64(p.val))
}

func (p Native[N]) String() string {
	return strconv.FormatUint(uint64(p.val), 10)
}
