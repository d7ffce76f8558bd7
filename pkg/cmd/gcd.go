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

	"github.com/consensys/go-partfrac/pkg/poly"
	"github.com/spf13/cobra"
)

var gcdCmd = &cobra.Command{
	Use:   "gcd [flags] polynomial polynomial",
	Short: "compute the greatest common divisor of two polynomials.",
	Long: `Compute the (monic) greatest common divisor g of two polynomials u
	and v, along with Bezout coefficients a and b satisfying
	a*u + b*v = g.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 2 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		var (
			notation = getNotation(cmd)
			polys    [2]poly.Polynomial
			variable string
		)
		//
		for i, arg := range args {
			p, v, err := poly.ParsePolynomial(readInput(arg))
			if err != nil {
				printSyntaxError(err)
				os.Exit(2)
			}
			// Both polynomials must use the same variable.
			if v != "" && variable != "" && v != variable {
				fmt.Printf("mismatched variables %q and %q\n", variable, v)
				os.Exit(2)
			} else if v != "" {
				variable = v
			}
			//
			polys[i] = p
		}
		//
		g, a, b := poly.ExtGCD(polys[0], polys[1])
		variable = orDefaultVariable(variable)
		//
		fmt.Printf("gcd: %s\n", g.Format(variable, notation))
		fmt.Printf("a:   %s\n", a.Format(variable, notation))
		fmt.Printf("b:   %s\n", b.Format(variable, notation))
	},
}

func init() {
	rootCmd.AddCommand(gcdCmd)
}
