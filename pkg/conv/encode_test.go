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
	"math/big"
	"math/rand/v2"
	"testing"

	"github.com/consensys/go-intconv/pkg/host"
	"github.com/consensys/go-intconv/pkg/util/word"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Encode_RoundTrip_U32(t *testing.T) {
	checkRoundTrips[word.U32](t)
}

func Test_Encode_RoundTrip_U64(t *testing.T) {
	checkRoundTrips[word.U64](t)
}

func Test_Encode_RoundTrip_Uint(t *testing.T) {
	checkRoundTrips[word.Uint](t)
}

func Test_Encode_RoundTrip_Usize(t *testing.T) {
	checkRoundTrips[word.Usize](t)
}

func Test_Encode_RoundTrip_U128(t *testing.T) {
	checkRoundTrips[word.U128](t)
}

func Test_Encode_RoundTrip_U256(t *testing.T) {
	checkRoundTrips[word.U256](t)
}

func Test_Encode_RoundTrip_U512(t *testing.T) {
	checkRoundTrips[word.U512](t)
}

func Test_Encode_Compact_01(t *testing.T) {
	// Largest compact value
	obj, err := FromUint64(nil, host.SmallMax)
	require.NoError(t, err)
	assert.Equal(t, host.SmallInt(host.SmallMax), obj)
	// Smallest non-compact value
	obj, err = FromUint64(nil, host.SmallMax+1)
	require.NoError(t, err)
	require.IsType(t, &host.Long{}, obj)
	assert.Equal(t, new(big.Int).SetUint64(host.SmallMax+1).String(), obj.String())
	//
	x, err := ToUint64(obj)
	require.NoError(t, err)
	assert.Equal(t, uint64(host.SmallMax+1), x)
}

func Test_Encode_Compact_02(t *testing.T) {
	// 32-bit values are only compact when they fit the host's signed long.
	obj, err := FromUint32(nil, 0xFFFF_FFFF)
	require.NoError(t, err)
	//
	if host.SmallMax >= 0xFFFF_FFFF {
		assert.Equal(t, host.SmallInt(0xFFFF_FFFF), obj)
	} else {
		require.IsType(t, &host.Long{}, obj)
		assert.False(t, obj.(*host.Long).IsNegative())
	}
	//
	x, err := ToUint32(obj)
	require.NoError(t, err)
	assert.Equal(t, uint32(0xFFFF_FFFF), x)
}

func Test_Encode_Zero_01(t *testing.T) {
	obj, err := FromUint512(nil, word.U512{})
	require.NoError(t, err)
	assert.Equal(t, host.SmallInt(0), obj)
	assert.False(t, ToBool(nil, obj))
}

func Test_Encode_Digits_01(t *testing.T) {
	// 2^64 - 1 with 30-bit digits has two full digits and a top digit of 4 bits.
	obj, err := FromUint64(nil, ^uint64(0))
	require.NoError(t, err)
	//
	long := obj.(*host.Long)
	n := long.DigitCount()
	//
	assert.Equal(t, (64+host.DigitShift-1)/host.DigitShift, n)
	//
	for i := 0; i < n-1; i++ {
		assert.Equal(t, host.Digit(host.DigitMask), long.DigitAt(i))
	}
	//
	assert.Equal(t, host.Digit(1)<<(64-(n-1)*host.DigitShift)-1, long.DigitAt(n-1))
}

func Test_Encode_AllocFailure_01(t *testing.T) {
	var rt = host.NewRuntime(host.LimitAllocator{MaxDigits: 2})
	// Compact values never allocate
	_, err := FromUint128(rt, word.NewU128(0, 1))
	require.NoError(t, err)
	// Large values fail, with the allocator's error returned as is.
	obj, err := FromUint256(rt, word.Max[word.U256]())
	assert.Nil(t, obj)
	assert.Equal(t, host.ErrNoMemory, err)
}

func checkRoundTrips[T word.Word[T]](t *testing.T) {
	var (
		top   = word.Max[T]()
		small = word.FromUint64[T](host.SmallMax)
	)
	// boundaries
	for _, v := range []T{word.FromUint64[T](0), word.FromUint64[T](1), top, top.Rsh(1), small, small.Or64(1).Lsh(1)} {
		checkRoundTrip(t, v)
	}
	// single bits
	for i := uint(0); i < top.BitWidth(); i++ {
		checkRoundTrip(t, word.FromUint64[T](1).Lsh(i))
	}
	// random
	for i := 0; i < 1000; i++ {
		var v T
		//
		for j := uint(0); j < top.BitWidth(); j += 64 {
			v = v.Lsh(64).Or64(rand.Uint64())
		}
		//
		checkRoundTrip(t, v.Rsh(rand.UintN(top.BitWidth())))
	}
}

func checkRoundTrip[T word.Word[T]](t *testing.T, v T) {
	obj, err := Encode(nil, v)
	//
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	//
	switch o := obj.(type) {
	case host.SmallInt:
		if v.Cmp64(host.SmallMax) > 0 {
			t.Errorf("%s encoded in compact form", v)
		}
	case *host.Long:
		n := o.DigitCount()
		//
		if v.Cmp64(host.SmallMax) <= 0 {
			t.Errorf("%s not encoded in compact form", v)
		} else if o.IsNegative() {
			t.Errorf("%s encoded as negative", v)
		} else if n == 0 || o.DigitAt(n-1) == 0 {
			t.Errorf("%s encoded with non-canonical digits %v", v, o.Digits())
		}
	default:
		t.Fatalf("unexpected object %s", obj.Type())
	}
	//
	if w, err := Decode[T]("test", obj); err != nil {
		t.Errorf("unexpected error %v", err)
	} else if w != v {
		t.Errorf("expected %s, got %s", v, w)
	} else if obj.String() != v.String() {
		t.Errorf("expected %s, got %s", v, obj.String())
	}
}
