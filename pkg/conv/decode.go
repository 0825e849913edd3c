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
package conv

import (
	"github.com/consensys/go-intconv/pkg/host"
	"github.com/consensys/go-intconv/pkg/util/word"
)

// Decode converts a host integer into a word of the given type.  Negative
// integers are folded into the word using two's complement, so that the
// result is the bit pattern the integer would have when reinterpreted as
// unsigned.  This fails with ErrBadArgument for values which are not integers,
// and with ErrOverflow for integers whose magnitude needs more bits than the
// word has.  The op names the conversion in any error returned.
func Decode[T word.Word[T]](op string, value host.Object) (T, error) {
	var x T
	//
	switch v := value.(type) {
	case *host.Long:
		if v != nil {
			return decodeLong[T](op, v)
		}
	case host.SmallInt:
		return decodeSmall[T](op, int64(v))
	}
	//
	return x, fail(op, ErrBadArgument)
}

// Accumulate digits most significant first.  After each step, the word is
// shifted back to check that no set bits were lost off the top, which catches
// both too many digits and a most significant digit which only partially fits.
func decodeLong[T word.Word[T]](op string, v *host.Long) (T, error) {
	var (
		x, prev T
		n       = v.DigitCount()
	)
	//
	for i := n - 1; i >= 0; i-- {
		prev = x
		x = x.Lsh(host.DigitShift).Or64(uint64(v.DigitAt(i)))
		//
		if x.Rsh(host.DigitShift) != prev {
			var zero T
			return zero, fail(op, ErrOverflow)
		}
	}
	//
	if v.IsNegative() {
		return x.Neg(), nil
	}
	//
	return x, nil
}

// Decode a compact value with the same contract as a Long: the magnitude must
// fit in the word, and negative values are folded in using two's complement.
func decodeSmall[T word.Word[T]](op string, value int64) (T, error) {
	var m = uint64(value)
	//
	if value < 0 {
		// negating math.MinInt64 wraps, giving a magnitude of 2^63
		m = uint64(-value)
	}
	//
	x := word.FromUint64[T](m)
	// truncation drops bits, so the word no longer matches the magnitude
	if x.Cmp64(m) != 0 {
		var zero T
		return zero, fail(op, ErrOverflow)
	}
	//
	if value < 0 {
		return x.Neg(), nil
	}
	//
	return x, nil
}
