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
	"fmt"
	"math/big"
)

// Word abstracts an unsigned integer of some fixed bitwidth.  All operations
// are performed modulo 2^BitWidth(), and a Word is a pure value: operations
// always return a new word rather than modifying the receiver.
type Word[T any] interface {
	comparable
	fmt.Stringer
	// BitWidth returns the (fixed) number of bits in a word of this type.
	BitWidth() uint
	// IsZero checks whether this word is zero.
	IsZero() bool
	// Lsh shifts this word left by n bits, discarding any bits shifted beyond
	// the bitwidth.
	Lsh(n uint) T
	// Rsh shifts this word right by n bits.
	Rsh(n uint) T
	// Or64 sets the bits of a given uint64 value into this word.  For words
	// narrower than 64 bits, the value is truncated first.
	Or64(uint64) T
	// Low64 returns the least significant 64 bits of this word.
	Low64() uint64
	// Neg returns the two's complement of this word, i.e. 2^BitWidth() - x
	// modulo 2^BitWidth().
	Neg() T
	// Cmp64 compares this word against a uint64 value, returning -1, 0 or 1.
	Cmp64(uint64) int
	// Big returns this word as a freshly allocated (non-negative) big integer.
	Big() *big.Int
}
