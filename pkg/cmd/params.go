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

	"github.com/consensys/go-montgomery/pkg/montgomery"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var paramsCmd = &cobra.Command{
	Use:   "params [flags] modulus",
	Short: "Report the parameters derived for a given modulus.",
	Long: `Report the parameters derived for a given modulus: the radix R (the
	smallest power of two exceeding it), R⁻¹ mod n, −n⁻¹ mod R and R² mod n.
	The modulus is given as a number, or as the name of a well-known modulus.`,
	Run: func(cmd *cobra.Command, args []string) {
		// Configure log level
		if GetFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
		//
		if GetFlag(cmd, "known") {
			listKnownModuli()
			os.Exit(0)
		}
		//
		if len(args) != 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		printParams(resolveContext(args[0]).Params())
	},
}

func printParams(p montgomery.Params) {
	fmt.Printf("modulus:    %d\n", p.Modulus)
	fmt.Printf("bit length: %d\n", p.RBits)
	fmt.Printf("radix:      2^%d\n", p.RBits)
	fmt.Printf("mask:       %#x\n", p.RMask)
	fmt.Printf("rinv:       %d\n", p.RInv)
	fmt.Printf("ninv:       %d\n", p.NInv)
	fmt.Printf("rsquared:   %d\n", p.R2)
}

func listKnownModuli() {
	for _, m := range montgomery.KnownModuli {
		fmt.Printf("%-12s %11d (%d bits)\n", m.Name, m.Params.Modulus, m.Params.RBits)
	}
}

func init() {
	rootCmd.AddCommand(paramsCmd)
	paramsCmd.Flags().Bool("known", false, "list the well-known moduli and exit")
}
