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
	"fmt"
	"math/big"
	"os"
	"strings"

	"github.com/consensys/go-intconv/pkg/conv"
	"github.com/consensys/go-intconv/pkg/host"
	"github.com/consensys/go-intconv/pkg/util/word"
)

// Width bundles the conversions for a given fixed width, so that commands can
// be parameterised by width.
type Width struct {
	// Name of the width, as given on the command line.
	Name string
	// Number of bits in a word of this width.
	Bits uint
	// Decode a host integer.
	Decode func(host.Object) (*big.Int, error)
	// Encode a non-negative big integer, failing if it does not fit.
	Encode func(*host.Runtime, *big.Int) (host.Object, error)
}

var widths = []Width{
	newWidth[word.Uint]("uint", "ToUint"),
	newWidth[word.Usize]("usize", "ToUsize"),
	newWidth[word.U32]("32", "ToUint32"),
	newWidth[word.U64]("64", "ToUint64"),
	newWidth[word.U128]("128", "ToUint128"),
	newWidth[word.U256]("256", "ToUint256"),
	newWidth[word.U512]("512", "ToUint512"),
}

func newWidth[T word.Word[T]](name string, op string) Width {
	var bits = word.Max[T]().BitWidth()
	//
	decode := func(obj host.Object) (*big.Int, error) {
		w, err := conv.Decode[T](op, obj)
		if err != nil {
			return nil, err
		}
		//
		return w.Big(), nil
	}
	//
	encode := func(rt *host.Runtime, val *big.Int) (host.Object, error) {
		w, ok := word.FromBig[T](val)
		if !ok {
			return nil, fmt.Errorf("%s does not fit in u%d", val, bits)
		}
		//
		return conv.Encode(rt, w)
	}
	//
	return Width{name, bits, decode, encode}
}

// Lookup widths by name, exiting if any is unknown.  The special name "all"
// selects every width.
func lookupWidths(names []string) []Width {
	var selected []Width
	//
	for _, name := range names {
		if name == "all" {
			return widths
		}
		//
		selected = append(selected, lookupWidth(name))
	}
	//
	return selected
}

func lookupWidth(name string) Width {
	var known []string
	//
	for _, w := range widths {
		if w.Name == name {
			return w
		}
		//
		known = append(known, w.Name)
	}
	//
	fmt.Printf("unknown width \"%s\" (expected one of %s)\n", name, strings.Join(known, ", "))
	os.Exit(2)
	// unreachable
	return Width{}
}

// Render a host integer object, showing its physical representation.
func describe(obj host.Object) string {
	switch o := obj.(type) {
	case host.SmallInt:
		return fmt.Sprintf("compact %s", o)
	case *host.Long:
		var (
			hdr    = o.Header()
			digits = make([]string, o.DigitCount())
			sign   = "+"
		)
		//
		if o.IsNegative() {
			sign = "-"
		}
		//
		for i := range digits {
			digits[i] = fmt.Sprintf("%#x", o.DigitAt(i))
		}
		//
		return fmt.Sprintf("long %s (%s layout, header=%#x, sign=%s, ndigits=%d, digits=[%s])", o, host.Layout,
			hdr.Raw(), sign, o.DigitCount(), strings.Join(digits, " "))
	default:
		return fmt.Sprintf("%s %s", obj.Type(), obj)
	}
}
