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
	"strings"

	"github.com/consensys/go-partfrac/pkg/poly"
	"github.com/consensys/go-partfrac/pkg/util/source"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// GetFlag gets an expected flag, or panic if an error arises.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetUint gets an expected unsigned integer flag, or panic if an error arises.
func GetUint(cmd *cobra.Command, flag string) uint {
	r, err := cmd.Flags().GetUint(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetString gets an expected string flag, or panic if an error arises.
func GetString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// Determine the notation to print polynomials in.  Unicode is the default on
// an interactive terminal, plain ASCII otherwise, and explicit flags override
// both.
func getNotation(cmd *cobra.Command) poly.Notation {
	switch {
	case GetFlag(cmd, "latex"):
		return poly.LaTeX
	case GetFlag(cmd, "ascii"):
		return poly.ASCII
	case term.IsTerminal(int(os.Stdout.Fd())):
		return poly.Unicode
	default:
		return poly.ASCII
	}
}

// Read a command-line input, where arguments prefixed with "@" name files and
// everything else is taken verbatim as an expression.
func readInput(arg string) *source.File {
	if name, ok := strings.CutPrefix(arg, "@"); ok {
		bytes, err := os.ReadFile(name)
		if err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
		//
		return source.NewSourceFile(name, bytes)
	}
	//
	return source.NewSourceFile("expr", []byte(arg))
}

// Print a syntax error with appropriate highlighting.
func printSyntaxError(err *source.SyntaxError) {
	var (
		line   = err.FirstEnclosingLine()
		span   = err.Span()
		indent = span.Start() - line.Start()
	)
	// Print error + line number
	fmt.Printf("%s:%d: %s\n", err.SourceFile().Filename(), line.Number(), err.Message())
	// Print line
	fmt.Println(line.String())
	// Print indent (todo: account for tabs)
	fmt.Print(strings.Repeat(" ", max(0, indent)))
	// Print highlight
	fmt.Println(strings.Repeat("^", max(1, span.Length())))
}

// Fall back to "x" when an expression never names its variable.
func orDefaultVariable(variable string) string {
	if variable == "" {
		return "x"
	}
	//
	return variable
}
