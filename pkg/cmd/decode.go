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
	"os"

	"github.com/consensys/go-intconv/pkg/host"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var decodeCmd = &cobra.Command{
	Use:   "decode [flags] integer",
	Short: "convert a host integer into fixed-width unsigned integers.",
	Long: `Convert a (possibly negative) host integer into one or more
	fixed-width unsigned integers.  Negative values are reported in two's
	complement form.`,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			obj    host.Object
			failed bool
		)
		//
		if len(args) != 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		if GetFlag(cmd, "compact") {
			obj = parseHostInt(args[0])
		} else {
			obj = host.NewLongFromBig(parseBig(args[0]))
		}
		//
		log.Debugf("decoding %s", describe(obj))
		//
		for _, w := range lookupWidths(GetStringArray(cmd, "width")) {
			val, err := w.Decode(obj)
			//
			if err != nil {
				fmt.Printf("u%d: %s\n", w.Bits, err)
				//
				failed = true
			} else {
				fmt.Printf("u%d: %s (%#x)\n", w.Bits, val, val)
			}
		}
		//
		if failed {
			os.Exit(3)
		}
	},
}

func init() {
	rootCmd.AddCommand(decodeCmd)
	decodeCmd.Flags().StringArrayP("width", "w", []string{"all"}, "target width(s): uint, usize, 32, 64, 128, 256, 512 or all")
	decodeCmd.Flags().Bool("compact", false, "use the compact representation where the host would")
}
