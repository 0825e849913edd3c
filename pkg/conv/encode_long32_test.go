//go:build long32

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
	"testing"

	"github.com/consensys/go-intconv/pkg/host"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// With a 32-bit long, 2^32 + 1 takes the digit array path.
func Test_Encode_Long32_01(t *testing.T) {
	obj, err := FromUint64(nil, 0x1_0000_0001)
	require.NoError(t, err)
	checkEncodedDigits(t, obj, []host.Digit{1, 4}, []host.Digit{1, 0, 4})
	// and so does the largest 32-bit value
	obj, err = FromUint32(nil, 0xFFFF_FFFF)
	require.NoError(t, err)
	checkEncodedDigits(t, obj, []host.Digit{0x3FFF_FFFF, 3}, []host.Digit{0x7FFF, 0x7FFF, 3})
	//
	x, err := ToUint32(obj)
	require.NoError(t, err)
	assert.Equal(t, uint32(0xFFFF_FFFF), x)
}
