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
	"math/rand/v2"
	"os"

	"github.com/consensys/go-montgomery/pkg/util"
	"github.com/consensys/go-montgomery/pkg/util/termio"
	"github.com/consensys/go-montgomery/pkg/verify"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var verifyCmd = &cobra.Command{
	Use:   "verify [flags]",
	Short: "Verify the engine against independent implementations.",
	Long: `Verify the engine by sweeping randomly drawn odd moduli of every bit
	length in range, comparing each Montgomery product against the direct
	64-bit remainder, and by cross-checking products against the gnark-crypto
	small field implementations.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 0 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		// Configure log level
		if GetFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
		//
		cfg := verify.Config{
			MinBits: GetUint(cmd, "min-bits"),
			MaxBits: GetUint(cmd, "max-bits"),
			Trials:  GetUint(cmd, "trials"),
			Seed:    GetUint64(cmd, "seed"),
		}
		//
		if err := cfg.Validate(); err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
		// Draw a fresh seed unless one was supplied to reproduce a failure.
		if cfg.Seed == 0 {
			cfg.Seed = rand.Uint64()
			log.Infof("drew seed %d", cfg.Seed)
		}
		//
		var errs []error
		//
		stats := util.NewPerfStats()
		//
		if GetFlag(cmd, "cross-check") {
			errs = append(errs, verify.CrossCheck(cfg.Trials, cfg.Seed)...)
		}
		//
		errs = append(errs, verify.Sweep(cfg)...)
		//
		stats.Log("Verification")
		//
		ansi := GetFlag(cmd, "ansi-escapes")
		//
		if len(errs) > 0 {
			// Report errors
			for _, e := range errs {
				log.Error(e)
			}
			//
			fmt.Printf("verification %s (%d mismatches, seed %d)\n",
				statusText("FAILED", termio.TERM_RED, ansi), len(errs), cfg.Seed)
			// Error signal
			os.Exit(1)
		}
		//
		fmt.Printf("verification %s (%d moduli per bit length %d..%d)\n",
			statusText("ok", termio.TERM_GREEN, ansi), cfg.Trials, cfg.MinBits, cfg.MaxBits)
	},
}

// statusText paints the verdict, provided escapes are allowed and stdout is
// actually a terminal.
func statusText(text string, colour uint, ansi bool) string {
	if !ansi || !termio.IsTerminal(os.Stdout) {
		return text
	}
	//
	return termio.BoldAnsiEscape().FgColour(colour).Paint(text)
}

func init() {
	rootCmd.AddCommand(verifyCmd)
	verifyCmd.Flags().Uint("trials", 1000, "number of random moduli per bit length")
	verifyCmd.Flags().Uint("min-bits", 2, "smallest modulus bit length to sweep")
	verifyCmd.Flags().Uint("max-bits", 31, "largest modulus bit length to sweep")
	verifyCmd.Flags().Uint64("seed", 0, "random seed (0 draws a fresh one)")
	verifyCmd.Flags().Bool("cross-check", true, "cross-check against gnark-crypto small fields")
	verifyCmd.Flags().Bool("ansi-escapes", true, "specify whether to allow ANSI escapes or not (e.g. for colour reports)")
}
