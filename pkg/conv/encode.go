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

// Encode converts a word into a freshly allocated host integer, which is
// always non-negative.  Values in the host's small integer range are returned
// in its compact representation, since the host relies on small integers
// never being held as digit arrays.  Otherwise, the result is a Long in
// canonical form.  Errors arise only from the host's allocator, and are
// returned unchanged.
func Encode[T word.Word[T]](rt *host.Runtime, value T) (host.Object, error) {
	var ndigits int
	//
	if rt == nil {
		rt = host.Default
	}
	//
	if value.Cmp64(host.SmallMax) <= 0 {
		return rt.FromInt64(int64(value.Low64())), nil
	}
	// Determine minimal number of digits
	for t := value; !t.IsZero(); t = t.Rsh(host.DigitShift) {
		ndigits++
	}
	//
	long, err := build(rt, ndigits, func(digits []host.Digit) {
		for k := range digits {
			digits[k] = host.Digit(value.Low64() & host.DigitMask)
			value = value.Rsh(host.DigitShift)
		}
	})
	//
	if err != nil {
		return nil, err
	}
	//
	return long, nil
}

// Allocate a Long with n digits, fill its digits and finalise its digit count.
// The object under construction is only visible to the fill function, and is
// returned only once finalised.
func build(rt *host.Runtime, n int, fill func([]host.Digit)) (*host.Long, error) {
	long, err := rt.NewLong(n)
	//
	if err != nil {
		return nil, err
	}
	//
	fill(long.DigitBuffer()[:n])
	long.SetDigitCount(n)
	//
	return long, nil
}
