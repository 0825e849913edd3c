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
package cmd

import (
	"math/big"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/consensys/go-intconv/pkg/host"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Check_01(t *testing.T) {
	var cfg = checkConfig{samples: 100, seed: 1}
	//
	for _, w := range widths {
		n, err := checkWidth(w, cfg)
		//
		if err != nil {
			t.Errorf("u%d: %v", w.Bits, err)
		} else if n < 3*cfg.samples {
			t.Errorf("u%d: only %d conversions checked", w.Bits, n)
		}
	}
}

func Test_Widths_01(t *testing.T) {
	assert.Len(t, lookupWidths([]string{"all"}), len(widths))
	//
	selected := lookupWidths([]string{"32", "512"})
	require.Len(t, selected, 2)
	assert.Equal(t, uint(32), selected[0].Bits)
	assert.Equal(t, uint(512), selected[1].Bits)
}

func Test_Widths_02(t *testing.T) {
	var w = lookupWidth("128")
	//
	_, err := w.Encode(host.Default, new(big.Int).Lsh(big.NewInt(1), 128))
	assert.EqualError(t, err, "340282366920938463463374607431768211456 does not fit in u128")
	//
	val, err := w.Decode(host.NewLongFromDigits(true, 1))
	require.NoError(t, err)
	assert.Equal(t, 128, val.BitLen())
}

func Test_Describe_01(t *testing.T) {
	assert.Equal(t, "compact 42", describe(host.SmallInt(42)))
	assert.Equal(t, "NoneType None", describe(host.None))
	//
	desc := describe(host.NewLongFromDigits(true, 1, 2))
	assert.True(t, strings.HasPrefix(desc, "long -"), desc)
	assert.Contains(t, desc, "sign=-, ndigits=2, digits=[0x1 0x2]")
	assert.Contains(t, desc, host.Layout+" layout")
}

func Test_RandomBig_01(t *testing.T) {
	var rng = rand.New(rand.NewPCG(1, 2))
	//
	for n := uint(0); n < 200; n++ {
		if v := randomBig(rng, n); uint(v.BitLen()) > n {
			t.Errorf("%s exceeds %d bits", v, n)
		}
	}
}
