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
	"github.com/spf13/cobra"
)

var encodeCmd = &cobra.Command{
	Use:   "encode [flags] integer",
	Short: "convert a fixed-width unsigned integer into a host integer.",
	Long: `Convert a fixed-width unsigned integer into a freshly allocated
	host integer, and show the representation chosen.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		var (
			val   = parseBig(args[0])
			width = lookupWidth(GetString(cmd, "width"))
			rt    = host.NewRuntime(host.LimitAllocator{MaxDigits: int(GetUint(cmd, "max-digits"))})
		)
		//
		obj, err := width.Encode(rt, val)
		//
		if err != nil {
			fmt.Println(err)
			os.Exit(3)
		}
		//
		fmt.Println(describe(obj))
	},
}

func init() {
	rootCmd.AddCommand(encodeCmd)
	encodeCmd.Flags().StringP("width", "w", "64", "source width: uint, usize, 32, 64, 128, 256 or 512")
	encodeCmd.Flags().Uint("max-digits", host.MaxDigits, "limit the number of digits the host may allocate")
}
