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

// DigitMask selects the value bits of a single digit.
const DigitMask = 1<<DigitShift - 1

// Header provides a uniform view over the (layout specific) field(s) of a
// variable-length integer which record its sign and the number of digits in
// use.  Three physical layouts are known, and exactly one of them is compiled
// in as the active layout of Long (see Layout).
type Header interface {
	// DigitCount returns the number of digits in use.
	DigitCount() int
	// IsNegative determines whether the integer is below zero.
	IsNegative() bool
	// SetDigitCount updates the number of digits in use.  This is only valid
	// on a freshly allocated, non-negative integer.
	SetDigitCount(n int)
	// Raw returns the underlying header field as an unsigned bit pattern.
	Raw() uint64
}

var _ Header = &LegacyHeader{}
var _ Header = &SizedHeader{}
var _ Header = &TaggedHeader{}

// ============================================================================
// Legacy layout
// ============================================================================

// LegacyHeader is the oldest layout, where a single signed size field holds
// both the digit count (its magnitude) and the sign (its sign).  The field is
// written directly.
type LegacyHeader struct {
	size int
}

// DigitCount implementation for the Header interface.
func (p *LegacyHeader) DigitCount() int {
	if p.size < 0 {
		return -p.size
	}
	//
	return p.size
}

// IsNegative implementation for the Header interface.
func (p *LegacyHeader) IsNegative() bool {
	return p.size < 0
}

// SetDigitCount implementation for the Header interface.
func (p *LegacyHeader) SetDigitCount(n int) {
	p.size = n
}

// Raw implementation for the Header interface.
func (p *LegacyHeader) Raw() uint64 {
	return uint64(int64(p.size))
}

func (p *LegacyHeader) init(n int, negative bool) {
	if negative {
		p.size = -n
	} else {
		p.size = n
	}
}

// ============================================================================
// Sized layout
// ============================================================================

// SizedHeader is the intermediate layout.  It has the same signed size field
// as the legacy layout, but the field is only ever updated through its setter.
type SizedHeader struct {
	size int
}

// DigitCount implementation for the Header interface.
func (p *SizedHeader) DigitCount() int {
	if p.IsNegative() {
		return -p.size
	}
	//
	return p.size
}

// IsNegative implementation for the Header interface.
func (p *SizedHeader) IsNegative() bool {
	return p.size < 0
}

// SetDigitCount implementation for the Header interface.
func (p *SizedHeader) SetDigitCount(n int) {
	p.setSize(n)
}

// Raw implementation for the Header interface.
func (p *SizedHeader) Raw() uint64 {
	return uint64(int64(p.size))
}

func (p *SizedHeader) setSize(size int) {
	p.size = size
}

func (p *SizedHeader) init(n int, negative bool) {
	if negative {
		p.setSize(-n)
	} else {
		p.setSize(n)
	}
}

// ============================================================================
// Tagged layout
// ============================================================================

// Sign values held in the lowest two bits of a tagged header.
const (
	signPositive = 0
	signZero     = 1
	signNegative = 2
	signMask     = 3
)

// Number of low-order bits of the tag which do not hold the digit count.  Bit
// 2 is reserved by the host.
const tagShift = 3

// TaggedHeader is the newest layout, where sign and digit count are packed
// into a single unsigned tag.  The sign occupies the low two bits and the
// digit count the bits from tagShift upwards.
type TaggedHeader struct {
	tag uintptr
}

// DigitCount implementation for the Header interface.
func (p *TaggedHeader) DigitCount() int {
	return int(p.tag >> tagShift)
}

// IsNegative implementation for the Header interface.
func (p *TaggedHeader) IsNegative() bool {
	return p.tag&signMask == signNegative
}

// SetDigitCount implementation for the Header interface.  The sign bits are
// retained.
func (p *TaggedHeader) SetDigitCount(n int) {
	p.tag = uintptr(n)<<tagShift | p.tag&signMask
}

// Raw implementation for the Header interface.
func (p *TaggedHeader) Raw() uint64 {
	return uint64(p.tag)
}

func (p *TaggedHeader) init(n int, negative bool) {
	var sign uintptr
	//
	switch {
	case n == 0:
		sign = signZero
	case negative:
		sign = signNegative
	default:
		sign = signPositive
	}
	//
	p.tag = uintptr(n)<<tagShift | sign
}
