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
)

// FromUint64 constructs a word of the given type from a uint64 value.  For
// words narrower than 64 bits, the value is truncated.
func FromUint64[T Word[T]](value uint64) T {
	var zero T
	//
	return zero.Or64(value)
}

// FromBig constructs a word of the given type from a big integer.  This
// returns false if the value is negative, or does not fit within the word.
func FromBig[T Word[T]](value *big.Int) (T, bool) {
	var word T
	//
	if value.Sign() < 0 || uint(value.BitLen()) > word.BitWidth() {
		return word, false
	}
	// Bytes are big endian, so most significant first.
	for _, b := range value.Bytes() {
		word = word.Lsh(8).Or64(uint64(b))
	}
	//
	return word, true
}

// Max returns the largest value representable in a word of the given type.
func Max[T Word[T]]() T {
	return FromUint64[T](1).Neg()
}
