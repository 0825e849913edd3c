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
	"errors"
	"fmt"
	"math/big"
)

// MaxDigits is the largest number of digits a single Long may hold.
const MaxDigits = (1 << 31) / 4

// ErrNoMemory is returned when the allocator cannot satisfy a request.
var ErrNoMemory = errors.New("out of memory")

// ErrTooManyDigits is returned for requests exceeding MaxDigits.
var ErrTooManyDigits = errors.New("too many digits in integer")

// Allocator is responsible for allocating variable-length integers.
type Allocator interface {
	// NewLong allocates a non-negative integer with room for exactly n digits,
	// all zero, and a digit count of n.
	NewLong(n int) (*Long, error)
}

// HeapAllocator allocates integers on the Go heap.
type HeapAllocator struct{}

// NewLong implementation for the Allocator interface.
func (HeapAllocator) NewLong(n int) (*Long, error) {
	if n < 0 || n > MaxDigits {
		return nil, ErrTooManyDigits
	}
	//
	p := &Long{digits: make([]Digit, n)}
	p.hdr.init(n, false)
	//
	return p, nil
}

// LimitAllocator is a heap allocator which refuses requests above a given
// number of digits.
type LimitAllocator struct {
	MaxDigits int
}

// NewLong implementation for the Allocator interface.
func (p LimitAllocator) NewLong(n int) (*Long, error) {
	if n > p.MaxDigits {
		return nil, ErrNoMemory
	}
	//
	return HeapAllocator{}.NewLong(n)
}

// Runtime captures the services of the host runtime which the conversion
// routines rely upon.  A Runtime holds no mutable state, and may be shared
// freely between goroutines provided its allocator can.
type Runtime struct {
	alloc Allocator
}

// Default is a runtime using the heap allocator.
var Default = NewRuntime(nil)

// NewRuntime constructs a runtime over a given allocator.  A nil allocator
// defaults to the heap allocator.
func NewRuntime(alloc Allocator) *Runtime {
	if alloc == nil {
		alloc = HeapAllocator{}
	}
	//
	return &Runtime{alloc}
}

// NewLong allocates a fresh variable-length integer with n digits.
func (p *Runtime) NewLong(n int) (*Long, error) {
	return p.alloc.NewLong(n)
}

// FromInt64 returns the compact representation of a native long value.
func (p *Runtime) FromInt64(value int64) Object {
	return SmallInt(value)
}

// IsTrue evaluates the truthiness of a given object.  A nil object is false.
func (p *Runtime) IsTrue(obj Object) bool {
	if obj == nil {
		return false
	}
	//
	return obj.Truth()
}

// ParseInt parses an integer literal (any base prefix accepted by
// big.Int.SetString with base 0) into a host integer.  Values within the
// native long range are returned in compact form, whilst all others are
// returned as a Long.
func ParseInt(text string) (Object, error) {
	var val big.Int
	//
	if _, ok := val.SetString(text, 0); !ok {
		return nil, fmt.Errorf("invalid integer literal %q", text)
	}
	//
	if val.IsInt64() && val.Int64() >= SmallMin && val.Int64() <= SmallMax {
		return SmallInt(val.Int64()), nil
	}
	//
	return NewLongFromBig(&val), nil
}
