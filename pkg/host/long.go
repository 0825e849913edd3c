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
package host

import (
	"fmt"
	"math/big"
)

// Long is the host's variable-length integer.  It consists of a header, which
// records the sign and the number of digits in use, and a little-endian array
// of digits (i.e. digit 0 is least significant).  A Long in canonical form has
// a non-zero most significant digit, and zero is represented by the empty
// digit array.
type Long struct {
	hdr header
	// Allocated digit storage.  Only the first DigitCount() digits are in use.
	digits []Digit
}

// NewLongFromDigits constructs a Long from a sign and digits given least
// significant first.  Leading (most significant) zero digits are dropped so
// the result is canonical.  This panics if a digit has bits set above
// DigitShift.
func NewLongFromDigits(negative bool, digits ...Digit) *Long {
	var n = len(digits)
	//
	for n > 0 && digits[n-1] == 0 {
		n--
	}
	//
	p := &Long{digits: make([]Digit, n)}
	//
	for i := range n {
		if digits[i] > DigitMask {
			panic(fmt.Sprintf("digit %d out of range (%d)", i, digits[i]))
		}
		//
		p.digits[i] = digits[i]
	}
	//
	p.hdr.init(n, negative && n > 0)
	//
	return p
}

// NewLongFromBig constructs a (canonical) Long with the same value as a given
// big integer.
func NewLongFromBig(value *big.Int) *Long {
	var (
		m      big.Int
		mask   = big.NewInt(DigitMask)
		digits []Digit
	)
	//
	m.Abs(value)
	//
	for m.Sign() > 0 {
		var d big.Int
		//
		d.And(&m, mask)
		digits = append(digits, Digit(d.Uint64()))
		m.Rsh(&m, DigitShift)
	}
	//
	return NewLongFromDigits(value.Sign() < 0, digits...)
}

// DigitCount returns the number of digits in use.
func (p *Long) DigitCount() int {
	return p.hdr.DigitCount()
}

// IsNegative determines whether this integer is below zero.
func (p *Long) IsNegative() bool {
	return p.hdr.IsNegative()
}

// DigitAt returns the ith digit, where digit 0 is the least significant.
func (p *Long) DigitAt(i int) Digit {
	return p.digits[i]
}

// SetDigitCount finalises the number of digits in use.  This is only valid
// immediately after allocation, once the digit buffer has been filled.
func (p *Long) SetDigitCount(n int) {
	p.hdr.SetDigitCount(n)
}

// DigitBuffer returns the full allocated digit storage, for filling a freshly
// allocated integer.
func (p *Long) DigitBuffer() []Digit {
	return p.digits
}

// Header returns the (layout specific) header of this integer.
func (p *Long) Header() Header {
	return &p.hdr
}

// Digits returns a copy of the digits in use, least significant first.
func (p *Long) Digits() []Digit {
	return append([]Digit(nil), p.digits[:p.DigitCount()]...)
}

// Big returns the value of this integer as a freshly allocated big integer.
func (p *Long) Big() *big.Int {
	var val big.Int
	//
	for i := p.DigitCount() - 1; i >= 0; i-- {
		val.Lsh(&val, DigitShift)
		val.Or(&val, big.NewInt(int64(p.digits[i])))
	}
	//
	if p.IsNegative() {
		val.Neg(&val)
	}
	//
	return &val
}

// String implementation for the Object interface.
func (p *Long) String() string {
	return p.Big().String()
}

// Type implementation for the Object interface.
func (p *Long) Type() string { return "int" }

// Truth implementation for the Object interface.
func (p *Long) Truth() bool {
	return p.DigitCount() != 0
}
