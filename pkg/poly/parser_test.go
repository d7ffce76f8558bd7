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
package poly

import (
	"testing"

	"github.com/consensys/go-partfrac/pkg/util/source"
)

func Test_Parser_Polynomials(t *testing.T) {
	// Input expression on the left, canonical rendering on the right.
	tests := [][2]string{
		{"0", "0"},
		{"42", "42"},
		{"x", "x"},
		{"-x", "-x"},
		{"x + 1", "x + 1"},
		{"1 + x", "x + 1"},
		{"x - x", "0"},
		{"2*x^2 + 3*x + 1", "2*x^2 + 3*x + 1"},
		// Implicit multiplication
		{"7x^2", "7*x^2"},
		{"2x", "2*x"},
		{"(x+1)(x+2)", "x^2 + 3*x + 2"},
		{"2(x + 3)", "2*x + 6"},
		// Precedence
		{"2 + 3 * x", "3*x + 2"},
		{"-x^2", "-x^2"},
		{"(2 + x)^2", "x^2 + 4*x + 4"},
		{"2x^3", "2*x^3"},
		// Rational and decimal literals
		{"1/2", "1/2"},
		{"1.5x", "(3/2)*x"},
		{"x/2", "(1/2)*x"},
		{"2/4*x", "(1/2)*x"},
		// Subtraction chains associate left
		{"x - 1 - 2", "x - 3"},
		// Doubled unary minus
		{"--x", "x"},
		// Powers of parenthesised expressions
		{"(x - 4)^2 (x + 3)", "x^3 - 5*x^2 - 8*x + 48"},
		// Alternative variables are fine, provided there is only one.
		{"y^2 - 1", "y^2 - 1"},
	}
	//
	for _, test := range tests {
		checkParsePoly(t, test[0], test[1])
	}
}

func Test_Parser_Rationals(t *testing.T) {
	// Input on the left, canonical "num / den" rendering on the right.
	tests := [][2]string{
		{"1/x", "1 / x"},
		{"(x^3 + 5x - 4) / (x^4 + 1)", "x^3 + 5*x - 4 / x^4 + 1"},
		{"3/(x(x+1)^2)", "3 / x^3 + 2*x^2 + x"},
		{"x^-1", "1 / x"},
		{"(x+1)^-2", "1 / x^2 + 2*x + 1"},
		// Sums place everything over a common denominator.
		{"1/(x+1) + 1", "x + 2 / x + 1"},
		// No cancellation is attempted.
		{"(x+1)/(x+1)", "x + 1 / x + 1"},
	}
	//
	for _, test := range tests {
		num, den, _, err := ParseString(test[0])
		if err != nil {
			t.Fatalf("parsing %q: %v", test[0], err)
		}
		//
		checkString(t, num.String()+" / "+den.String(), test[1])
	}
}

func Test_Parser_Variable(t *testing.T) {
	_, _, variable, err := ParseString("t^2 + t")
	if err != nil {
		t.Fatal(err)
	}
	//
	checkString(t, variable, "t")
	// Constant expressions have no variable.
	_, _, variable, err = ParseString("1 + 2")
	if err != nil {
		t.Fatal(err)
	}
	//
	checkString(t, variable, "")
}

func Test_Parser_Errors(t *testing.T) {
	// Input on the left, expected message on the right.
	tests := [][2]string{
		{"", "unexpected end of expression"},
		{"x +", "unexpected end of expression"},
		{"x + * 2", "unexpected token"},
		{"x )", "unexpected token"},
		{"((x)", "expected closing bracket"},
		{"x y", "unexpected second variable \"y\""},
		{"x ^ x", "expected integer exponent"},
		{"x ^ 1.5", "malformed exponent"},
		{"x ^ 99999", "exponent too large"},
		{"1/0", "division by zero"},
		{"1/(x - x)", "division by zero"},
		{"0^-1", "division by zero"},
		{"x + @", "unexpected character '@'"},
		{"1..2", "malformed number"},
	}
	//
	for _, test := range tests {
		_, _, _, err := ParseString(test[0])
		//
		if err == nil {
			t.Errorf("parsing %q: expected syntax error", test[0])
		} else if err.Message() != test[1] {
			t.Errorf("parsing %q: got %q, expected %q", test[0], err.Message(), test[1])
		}
	}
}

func Test_Parser_ErrorSpans(t *testing.T) {
	// The reported span must pinpoint the offending token.
	_, _, _, err := ParseString("x + @")
	if err == nil {
		t.Fatal("expected syntax error")
	}
	//
	if span := err.Span(); span.Start() != 4 || span.End() != 5 {
		t.Errorf("got span %d:%d, expected 4:5", span.Start(), span.End())
	}
	//
	_, _, _, err = ParseString("x y")
	if err == nil {
		t.Fatal("expected syntax error")
	}
	//
	if span := err.Span(); span.Start() != 2 || span.End() != 3 {
		t.Errorf("got span %d:%d, expected 2:3", span.Start(), span.End())
	}
}

func Test_Parser_Polynomial_Rejection(t *testing.T) {
	// ParsePolynomial rejects proper rational functions.
	_, _, _, err := ParseString("1/(x+1)")
	if err != nil {
		t.Fatal(err)
	}
	//
	if _, _, perr := parsePolyString("1/(x+1)"); perr == nil {
		t.Errorf("expected rejection of rational function")
	}
	// Constant denominators are folded away.
	p, _, perr := parsePolyString("(x + 1)/2")
	if perr != nil {
		t.Fatal(perr)
	}
	//
	checkString(t, p.String(), "(1/2)*x + 1/2")
}

// ============================================================================
// Helpers
// ============================================================================

func checkParsePoly(t *testing.T, input string, expected string) {
	t.Helper()
	//
	p, _, err := parsePolyString(input)
	if err != nil {
		t.Fatalf("parsing %q: %v", input, err)
	}
	//
	if p.String() != expected {
		t.Errorf("parsing %q: got %q, expected %q", input, p.String(), expected)
	}
}

func parsePolyString(input string) (Polynomial, string, error) {
	p, variable, err := ParsePolynomial(newTestFile(input))
	// Avoid returning a typed nil as a non-nil error.
	if err != nil {
		return p, variable, err
	}
	//
	return p, variable, nil
}

func newTestFile(input string) *source.File {
	return source.NewSourceFile("test", []byte(input))
}
