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

var inspectCmd = &cobra.Command{
	Use:   "inspect [flags] integer...",
	Short: "show the host representation of one or more integers.",
	Long: `Show how one or more integers are represented by the host,
	including the raw header of the active layout and the digit
	array (least significant digit first).`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) < 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		compact := GetFlag(cmd, "compact")
		//
		for _, arg := range args {
			var obj host.Object = host.NewLongFromBig(parseBig(arg))
			//
			if compact {
				obj = parseHostInt(arg)
			}
			//
			fmt.Printf("%s: %s\n", arg, describe(obj))
		}
	},
}

// Parse an integer literal into the representation the host would choose for
// it, or exit.
func parseHostInt(text string) host.Object {
	obj, err := host.ParseInt(text)
	//
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	return obj
}

func init() {
	rootCmd.AddCommand(inspectCmd)
	inspectCmd.Flags().Bool("compact", false, "use the compact representation where the host would")
}
