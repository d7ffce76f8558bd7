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
	"runtime"
	"time"

	"github.com/consensys/go-partfrac/pkg/factor"
	"github.com/consensys/go-partfrac/pkg/partfrac"
	"github.com/consensys/go-partfrac/pkg/poly"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var decomposeCmd = &cobra.Command{
	Use:   "decompose [flags] expression(s)",
	Short: "decompose rational functions into partial fractions.",
	Long: `Decompose one or more univariate rational functions into partial
	fractions.  Expressions are given either verbatim, such as
	"(x^2 + 1)/(x^3 - x)", or as files via "@filename".  Results are
	printed one per line, in argument order.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) < 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		// Configure log level
		if GetFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
		//
		var (
			check    = GetFlag(cmd, "check")
			samples  = GetUint(cmd, "field-check")
			jobs     = GetUint(cmd, "jobs")
			notation = getNotation(cmd)
			start    = time.Now()
		)
		//
		if jobs == 0 {
			jobs = uint(runtime.NumCPU())
		}
		// Parse all expressions up front, so syntax errors are reported
		// before any decomposition begins.
		inputs := make([]rationalInput, len(args))
		//
		for i, arg := range args {
			num, den, variable, err := poly.ParseRational(readInput(arg))
			if err != nil {
				printSyntaxError(err)
				os.Exit(2)
			}
			//
			inputs[i] = rationalInput{num, den, orDefaultVariable(variable)}
		}
		//
		results := make([]partfrac.Decomposition, len(inputs))
		oracle := factor.NewOracle()
		//
		var group errgroup.Group
		//
		group.SetLimit(int(jobs))
		//
		for i, input := range inputs {
			i, input := i, input
			//
			group.Go(func() error {
				d, err := partfrac.Decompose(input.num, input.den, oracle)
				if err != nil {
					return fmt.Errorf("%s: %w", args[i], err)
				}
				//
				if check {
					if err := partfrac.Verify(input.num, input.den, &d); err != nil {
						return fmt.Errorf("%s: %w", args[i], err)
					}
				}
				//
				if samples > 0 {
					if err := partfrac.VerifyField(input.num, input.den, &d, samples); err != nil {
						return fmt.Errorf("%s: %w", args[i], err)
					}
				}
				//
				results[i] = d
				//
				return nil
			})
		}
		//
		if err := group.Wait(); err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
		//
		log.Debugf("decomposed %d expression(s) in %s", len(inputs), time.Since(start))
		//
		for i, d := range results {
			fmt.Println(d.Format(inputs[i].variable, notation))
		}
	},
}

// A parsed rational function, along with the variable it was written in.
type rationalInput struct {
	num      poly.Polynomial
	den      poly.Polynomial
	variable string
}

func init() {
	rootCmd.AddCommand(decomposeCmd)
	decomposeCmd.Flags().Bool("check", false, "verify the decomposition by exact recombination")
	decomposeCmd.Flags().Uint("field-check", 0, "verify the decomposition at this many random field points")
	decomposeCmd.Flags().UintP("jobs", "j", 0, "number of expressions to decompose in parallel (0 = all cores)")
}
