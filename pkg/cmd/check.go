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
	"errors"
	"fmt"
	"math/big"
	"math/rand/v2"
	"os"

	"github.com/consensys/go-intconv/pkg/conv"
	"github.com/consensys/go-intconv/pkg/host"
	"github.com/consensys/go-intconv/pkg/util"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags]",
	Short: "check conversions over random and boundary values.",
	Long: `Check that encoding followed by decoding gives back the original
	value, that negative values wrap around and that values one bit too wide
	are rejected.  Widths are checked in parallel.`,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			g       errgroup.Group
			cfg     checkConfig
			stats   = util.NewPerfStats()
			targets = lookupWidths(GetStringArray(cmd, "width"))
			counts  = make([]uint, len(targets))
		)
		//
		cfg.samples = GetUint(cmd, "samples")
		cfg.seed = uint64(GetUint(cmd, "seed"))
		g.SetLimit(max(1, int(GetUint(cmd, "workers"))))
		//
		for i, w := range targets {
			g.Go(func() error {
				n, err := checkWidth(w, cfg)
				counts[i] = n
				//
				return err
			})
		}
		//
		err := g.Wait()
		//
		var total uint
		for _, n := range counts {
			total += n
		}
		//
		stats.Log("Checking conversions", total)
		//
		if err != nil {
			fmt.Println(err)
			os.Exit(3)
		}
		//
		fmt.Printf("checked %d conversions over %d width(s)\n", total, len(targets))
	},
}

// checkConfig encapsulates the parameters of a conversion check.
type checkConfig struct {
	// Number of random values to check per width.
	samples uint
	// Seed for the random number generator.
	seed uint64
}

// Check a single width, returning the number of conversions performed.
func checkWidth(w Width, cfg checkConfig) (uint, error) {
	var (
		rng   = rand.New(rand.NewPCG(cfg.seed, uint64(w.Bits)))
		rt    = host.NewRuntime(nil)
		one   = big.NewInt(1)
		pow   = new(big.Int).Lsh(one, w.Bits)
		count uint
		vals  = []*big.Int{
			big.NewInt(0),
			big.NewInt(1),
			new(big.Int).Sub(pow, one),
		}
	)
	//
	if small := new(big.Int).SetUint64(host.SmallMax); small.Cmp(pow) < 0 {
		vals = append(vals, small, new(big.Int).Add(small, one))
	}
	//
	for range cfg.samples {
		vals = append(vals, randomBig(rng, rng.UintN(w.Bits+1)))
	}
	//
	for _, val := range vals {
		if err := checkValue(w, rt, val, pow); err != nil {
			return count, err
		}
		//
		count += 3
	}
	// One bit too wide
	if _, err := w.Decode(host.NewLongFromBig(pow)); !errors.Is(err, conv.ErrOverflow) {
		return count, fmt.Errorf("u%d: expected overflow for 2^%d (got %v)", w.Bits, w.Bits, err)
	}
	//
	log.Debugf("u%d: %d conversions checked", w.Bits, count+1)
	//
	return count + 1, nil
}

// Check the round trip for a given value, along with the wraparound of its
// negation.
func checkValue(w Width, rt *host.Runtime, val *big.Int, pow *big.Int) error {
	obj, err := w.Encode(rt, val)
	if err != nil {
		return err
	}
	//
	back, err := w.Decode(obj)
	if err != nil {
		return err
	} else if back.Cmp(val) != 0 {
		return fmt.Errorf("u%d: %s decoded as %s", w.Bits, val, back)
	}
	//
	neg := host.NewLongFromBig(new(big.Int).Neg(val))
	expected := new(big.Int).Sub(pow, val)
	expected.Mod(expected, pow)
	//
	if back, err = w.Decode(neg); err != nil {
		return err
	} else if back.Cmp(expected) != 0 {
		return fmt.Errorf("u%d: -%s decoded as %s (expected %s)", w.Bits, val, back, expected)
	}
	//
	return nil
}

// Generate a random value of at most n bits.
func randomBig(rng *rand.Rand, n uint) *big.Int {
	var val big.Int
	//
	for i := uint(0); i < n; i += 64 {
		val.Lsh(&val, 64)
		val.Or(&val, new(big.Int).SetUint64(rng.Uint64()))
	}
	//
	return val.Rsh(&val, (64-n%64)%64)
}

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().StringArrayP("width", "w", []string{"all"}, "width(s) to check: uint, usize, 32, 64, 128, 256, 512 or all")
	checkCmd.Flags().Uint("samples", 10000, "number of random values per width")
	checkCmd.Flags().Uint("seed", 0, "seed for random value generation")
	checkCmd.Flags().Uint("workers", 4, "number of widths checked in parallel")
}
