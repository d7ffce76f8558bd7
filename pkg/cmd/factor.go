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

	"github.com/consensys/go-partfrac/pkg/factor"
	"github.com/consensys/go-partfrac/pkg/poly"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var factorCmd = &cobra.Command{
	Use:   "factor [flags] polynomial(s)",
	Short: "factor polynomials over the rationals.",
	Long: `Factor one or more univariate polynomials into rational roots and
	irreducible residuals, such as "x^3 - 5*x^2 - 8*x + 48" into
	"(x - 4)^2 * (x + 3)".  Factors the oracle cannot break apart are
	reported whole.`,
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
			squareFree = GetFlag(cmd, "square-free")
			notation   = getNotation(cmd)
			oracle     = factor.NewOracle()
		)
		//
		for _, arg := range args {
			p, variable, err := poly.ParsePolynomial(readInput(arg))
			if err != nil {
				printSyntaxError(err)
				os.Exit(2)
			}
			//
			var factorisation factor.Factorization
			//
			if squareFree {
				if p.IsZero() {
					fmt.Printf("%s: %s\n", arg, factor.ErrZeroPolynomial)
					os.Exit(2)
				}
				//
				monic, lead := p.Monic()
				//
				blocks, ferr := factor.SquareFree(monic)
				if ferr != nil {
					fmt.Printf("%s: %s\n", arg, ferr)
					os.Exit(2)
				}
				//
				factorisation = factor.Factorization{Factors: blocks}
				factorisation.Constant.Set(lead)
			} else {
				var ferr error
				//
				factorisation, ferr = oracle.Factorize(p)
				if ferr != nil {
					fmt.Printf("%s: %s\n", arg, ferr)
					os.Exit(2)
				}
			}
			//
			fmt.Println(factorisation.Format(orDefaultVariable(variable), notation))
		}
	},
}

func init() {
	rootCmd.AddCommand(factorCmd)
	factorCmd.Flags().Bool("square-free", false, "stop at the square-free decomposition")
}
