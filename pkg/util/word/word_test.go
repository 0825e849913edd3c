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
	"math/rand/v2"
	"testing"
)

func Test_Word_U32(t *testing.T) {
	checkWord[U32](t, 32)
}

func Test_Word_U64(t *testing.T) {
	checkWord[U64](t, 64)
}

func Test_Word_Uint(t *testing.T) {
	checkWord[Uint](t, Uint{}.BitWidth())
}

func Test_Word_Usize(t *testing.T) {
	checkWord[Usize](t, Usize{}.BitWidth())
}

func Test_Word_U128(t *testing.T) {
	checkWord[U128](t, 128)
}

func Test_Word_U256(t *testing.T) {
	checkWord[U256](t, 256)
}

func Test_Word_U512(t *testing.T) {
	checkWord[U512](t, 512)
}

func Test_Word_Halves(t *testing.T) {
	var (
		w128 = NewU128(0xAAAA, 0xBBBB)
		w256 = NewU256(4, 3, 2, 1)
		w512 = NewU512(NewU256(0, 0, 0, 1), NewU256(0, 0, 0, 2))
	)
	//
	if hi, lo := w128.Halves(); hi != 0xAAAA || lo != 0xBBBB {
		t.Errorf("unexpected halves %#x, %#x", hi, lo)
	}
	//
	if w256.Low64() != 1 || w256.Rsh(192).Low64() != 4 {
		t.Errorf("unexpected limbs for %s", w256)
	}
	//
	if hi, lo := w512.Halves(); hi.Low64() != 1 || lo.Low64() != 2 {
		t.Errorf("unexpected halves for %s", w512)
	}
}

func Test_Word_Native(t *testing.T) {
	var w = Of(uint32(0xFFFF_FFFF))
	//
	if w.Value() != 0xFFFF_FFFF || w.Lsh(1).Value() != 0xFFFF_FFFE {
		t.Errorf("unexpected native word %s", w)
	}
	//
	if Of(uint64(5)).Neg().Value() != 0xFFFF_FFFF_FFFF_FFFB {
		t.Errorf("unexpected negation")
	}
}

// Check word operations against big integer arithmetic modulo 2^n.
func checkWord[T Word[T]](t *testing.T, n uint) {
	var (
		modulus = new(big.Int).Lsh(big.NewInt(1), n)
		mask    = new(big.Int).Sub(modulus, big.NewInt(1))
	)
	//
	if w := Max[T](); w.Big().Cmp(mask) != 0 {
		t.Errorf("incorrect maximum %s for u%d", w, n)
	} else if w.BitWidth() != n {
		t.Errorf("incorrect bitwidth %d (expected %d)", w.BitWidth(), n)
	}
	//
	if _, ok := FromBig[T](modulus); ok {
		t.Errorf("2^%d should not fit in u%d", n, n)
	}
	//
	if _, ok := FromBig[T](big.NewInt(-1)); ok {
		t.Errorf("negative value should not fit in u%d", n)
	}
	//
	for i := 0; i < 1000; i++ {
		val := randomBig(n)
		w, ok := FromBig[T](val)
		//
		if !ok || w.Big().Cmp(val) != 0 {
			t.Fatalf("failed to construct u%d from %s", n, val)
		}
		//
		checkWordOps(t, w, val, mask)
	}
}

func checkWordOps[T Word[T]](t *testing.T, w T, val *big.Int, mask *big.Int) {
	var (
		shift    = rand.UintN(w.BitWidth() + 8)
		or       = rand.Uint64()
		expected big.Int
	)
	// Lsh
	expected.Lsh(val, shift)
	expected.And(&expected, mask)
	checkEquals(t, "<<", w.Lsh(shift), &expected)
	// Rsh
	expected.Rsh(val, shift)
	checkEquals(t, ">>", w.Rsh(shift), &expected)
	// Or64
	expected.SetUint64(or)
	expected.And(&expected, mask)
	expected.Or(&expected, val)
	checkEquals(t, "|", w.Or64(or), &expected)
	// Neg
	expected.Neg(val)
	expected.And(&expected, mask)
	checkEquals(t, "-", w.Neg(), &expected)
	// Low64
	expected.And(val, new(big.Int).SetUint64(^uint64(0)))
	//
	if w.Low64() != expected.Uint64() {
		t.Errorf("low64(%s) = %d (expected %s)", val, w.Low64(), &expected)
	}
	// Cmp64
	if c, e := w.Cmp64(or), val.Cmp(new(big.Int).SetUint64(or)); c != e {
		t.Errorf("cmp64(%s, %d) = %d (expected %d)", val, or, c, e)
	}
	// IsZero
	if w.IsZero() != (val.Sign() == 0) {
		t.Errorf("iszero(%s) = %t", val, w.IsZero())
	}
	// String
	if w.String() != val.String() {
		t.Errorf("string(%s) = %s", val, w.String())
	}
}

func checkEquals[T Word[T]](t *testing.T, op string, w T, expected *big.Int) {
	if w.Big().Cmp(expected) != 0 {
		t.Errorf("%s: expected %s, got %s", op, expected, w)
	}
}

// Generate a random value of at most n bits, where the bit length is chosen
// uniformly.
func randomBig(n uint) *big.Int {
	var (
		val  big.Int
		bits = rand.UintN(n + 1)
	)
	//
	for i := uint(0); i < bits; i += 64 {
		val.Lsh(&val, 64)
		val.Or(&val, new(big.Int).SetUint64(rand.Uint64()))
	}
	// Trim to bitwidth
	val.And(&val, new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), bits), big.NewInt(1)))
	//
	return &val
}
