//go:build !long32

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

import "math"

// SmallMax is the largest value of the host's native signed long.  Values in
// the range SmallMin..SmallMax have a compact representation.
const SmallMax = math.MaxInt64

// SmallMin is the smallest value of the host's native signed long.
const SmallMin = math.MinInt64
