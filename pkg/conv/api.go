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

// ToBool converts any host value into a boolean using the host's own notion
// of truthiness.  This never fails.
func ToBool(rt *host.Runtime, value host.Object) bool {
	if rt == nil {
		rt = host.Default
	}
	//
	return rt.IsTrue(value)
}

// ToUint converts a host integer into a native unsigned word.
func ToUint(value host.Object) (uint, error) {
	w, err := Decode[word.Uint]("ToUint", value)
	return w.Value(), err
}

// ToUsize converts a host integer into a native unsigned size.
func ToUsize(value host.Object) (uintptr, error) {
	w, err := Decode[word.Usize]("ToUsize", value)
	return w.Value(), err
}

// ToUint32 converts a host integer into an unsigned 32-bit integer.
func ToUint32(value host.Object) (uint32, error) {
	w, err := Decode[word.U32]("ToUint32", value)
	return w.Value(), err
}

// ToUint64 converts a host integer into an unsigned 64-bit integer.
func ToUint64(value host.Object) (uint64, error) {
	w, err := Decode[word.U64]("ToUint64", value)
	return w.Value(), err
}

// ToUint128 converts a host integer into an unsigned 128-bit integer.
func ToUint128(value host.Object) (word.U128, error) {
	return Decode[word.U128]("ToUint128", value)
}

// ToUint256 converts a host integer into an unsigned 256-bit integer.
func ToUint256(value host.Object) (word.U256, error) {
	return Decode[word.U256]("ToUint256", value)
}

// ToUint512 converts a host integer into an unsigned 512-bit integer.
func ToUint512(value host.Object) (word.U512, error) {
	return Decode[word.U512]("ToUint512", value)
}

// FromUint converts a native unsigned word into a host integer.
func FromUint(rt *host.Runtime, value uint) (host.Object, error) {
	return Encode(rt, word.Of(value))
}

// FromUsize converts a native unsigned size into a host integer.
func FromUsize(rt *host.Runtime, value uintptr) (host.Object, error) {
	return Encode(rt, word.Of(value))
}

// FromUint32 converts an unsigned 32-bit integer into a host integer.
func FromUint32(rt *host.Runtime, value uint32) (host.Object, error) {
	return Encode(rt, word.Of(value))
}

// FromUint64 converts an unsigned 64-bit integer into a host integer.
func FromUint64(rt *host.Runtime, value uint64) (host.Object, error) {
	return Encode(rt, word.Of(value))
}

// FromUint128 converts an unsigned 128-bit integer into a host integer.
func FromUint128(rt *host.Runtime, value word.U128) (host.Object, error) {
	return Encode(rt, value)
}

// FromUint256 converts an unsigned 256-bit integer into a host integer.
func FromUint256(rt *host.Runtime, value word.U256) (host.Object, error) {
	return Encode(rt, value)
}

// FromUint512 converts an unsigned 512-bit integer into a host integer.
func FromUint512(rt *host.Runtime, value word.U512) (host.Object, error) {
	return Encode(rt, value)
}
