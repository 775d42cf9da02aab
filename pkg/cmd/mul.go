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

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var mulCmd = &cobra.Command{
	Use:   "mul [flags] modulus a b",
	Short: "Multiply two residues through the Montgomery pipeline.",
	Long: `Multiply two residues modulo the given modulus, by converting both into
	Montgomery form, multiplying there, and converting back out.  Operands at
	or above the modulus are reduced first.`,
	Run: func(cmd *cobra.Command, args []string) {
		// Configure log level
		if GetFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
		//
		if len(args) != 3 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		ctx := resolveContext(args[0])
		a := parseOperand(args[1])
		b := parseOperand(args[2])
		//
		product := ctx.ConvertOut(ctx.Multiply(ctx.ConvertIn(a), ctx.ConvertIn(b)))
		//
		if GetFlag(cmd, "check") {
			// A 64-bit product of 32-bit operands cannot overflow, so the
			// direct remainder is available as an oracle.
			expected := uint32(uint64(a) * uint64(b) % uint64(ctx.Modulus()))
			if product != expected {
				log.Errorf("%d·%d mod %d: engine gave %d, expected %d",
					a, b, ctx.Modulus(), product, expected)
				os.Exit(1)
			}
			//
			log.Debugf("%d·%d mod %d agrees with the direct product", a, b, ctx.Modulus())
		}
		//
		fmt.Println(product)
	},
}

func init() {
	rootCmd.AddCommand(mulCmd)
	mulCmd.Flags().Bool("check", false, "cross-check the result against the direct product")
}
