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
	"strconv"
)

// Object is any value of the host runtime.
type Object interface {
	// String returns a human-readable rendering of this value.
	String() string
	// Type returns the name of this value's type.
	Type() string
	// Truth returns the truth value of this object, as used by the host for
	// conditionals.
	Truth() bool
}

var (
	_ Object = SmallInt(0)
	_ Object = &Long{}
	_ Object = Bool(false)
	_ Object = None
	_ Object = String("")
	_ Object = Float(0)
)

// SmallInt is the compact form of an integer, holding a native signed long
// directly rather than an array of digits.
type SmallInt int64

// String implementation for the Object interface.
func (p SmallInt) String() string { return strconv.FormatInt(int64(p), 10) }

// Type implementation for the Object interface.
func (p SmallInt) Type() string { return "int" }

// Truth implementation for the Object interface.
func (p SmallInt) Truth() bool { return p != 0 }

// Bool is the host's boolean type.
type Bool bool

// String implementation for the Object interface.
func (p Bool) String() string {
	if p {
		return "True"
	}
	//
	return "False"
}

// Type implementation for the Object interface.
func (p Bool) Type() string { return "bool" }

// Truth implementation for the Object interface.
func (p Bool) Truth() bool { return bool(p) }

// NoneType is the type of None.
type NoneType struct{}

// None is the host's unit value.
var None = NoneType{}

// String implementation for the Object interface.
func (NoneType) String() string { return "None" }

// Type implementation for the Object interface.
func (NoneType) Type() string { return "NoneType" }

// Truth implementation for the Object interface.
func (NoneType) Truth() bool { return false }

// String is the host's string type.
type String string

// String implementation for the Object interface.
func (p String) String() string { return strconv.Quote(string(p)) }

// Type implementation for the Object interface.
func (p String) Type() string { return "str" }

// Truth implementation for the Object interface.
func (p String) Truth() bool { return len(p) > 0 }

// Float is the host's floating point type.
type Float float64

// String implementation for the Object interface.
func (p Float) String() string { return strconv.FormatFloat(float64(p), 'g', -1, 64) }

// Type implementation for the Object interface.
func (p Float) Type() string { return "float" }

// Truth implementation for the Object interface.
func (p Float) Truth() bool { return p != 0 }
