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
	"fmt"
	"math/big"
	"strings"
)

// Notation determines the textual rendering of polynomials and related
// values.
type Notation uint8

const (
	// ASCII renders polynomials using pure ASCII, such as "3*x^2 - 1/2".
	ASCII Notation = iota
	// Unicode renders polynomials using superscript exponents, such as
	// "3x² - 1/2".
	Unicode
	// LaTeX renders polynomials as LaTeX source, such as
	// "3x^{2} - \frac{1}{2}".
	LaTeX
)

// Format renders this polynomial with terms in descending order of exponent,
// using a given variable name and notation.
func (p Polynomial) Format(variable string, notation Notation) string {
	if len(p.coeffs) == 0 {
		return "0"
	}
	//
	var (
		builder strings.Builder
		abs     big.Rat
		first   = true
	)
	//
	for i := len(p.coeffs) - 1; i >= 0; i-- {
		c := &p.coeffs[i]
		if c.Sign() == 0 {
			continue
		}
		// Write the separating (or leading) sign.
		switch {
		case first && c.Sign() < 0:
			builder.WriteString("-")
		case !first && c.Sign() < 0:
			builder.WriteString(" - ")
		case !first:
			builder.WriteString(" + ")
		}
		//
		first = false
		abs.Abs(c)
		builder.WriteString(formatTerm(&abs, variable, uint(i), notation))
	}
	//
	return builder.String()
}

// Format a single (unsigned) term, such as "3*x^2" or "x" or "1/2".
func formatTerm(coeff *big.Rat, variable string, exponent uint, notation Notation) string {
	if exponent == 0 {
		return formatCoefficient(coeff, notation, false)
	}
	//
	var builder strings.Builder
	//
	if coeff.Cmp(ratOne) != 0 {
		builder.WriteString(formatCoefficient(coeff, notation, true))
		// Only ASCII notation separates coefficient and variable.
		if notation == ASCII {
			builder.WriteString("*")
		}
	}
	//
	builder.WriteString(formatPower(variable, exponent, notation))
	//
	return builder.String()
}

// Format a variable raised to a (non-zero) exponent, such as "x^2", "x²" or
// "x^{2}".
func formatPower(variable string, exponent uint, notation Notation) string {
	return variable + FormatExponent(exponent, notation)
}

// FormatExponent renders an exponent suffix in a given notation, such as
// "^2", "²" or "^{2}".  An exponent of one renders as the empty string.
func FormatExponent(exponent uint, notation Notation) string {
	if exponent == 1 {
		return ""
	}
	//
	switch notation {
	case Unicode:
		return superscript(exponent)
	case LaTeX:
		return fmt.Sprintf("^{%d}", exponent)
	default:
		return fmt.Sprintf("^%d", exponent)
	}
}

// Format an (unsigned) rational coefficient.  In ASCII and Unicode notation,
// non-integral coefficients attached to a variable are parenthesised to avoid
// ambiguity (e.g. "(3/5)*x" rather than "3/5*x").
func formatCoefficient(coeff *big.Rat, notation Notation, attached bool) string {
	if coeff.IsInt() {
		return coeff.Num().String()
	} else if notation == LaTeX {
		return fmt.Sprintf("\\frac{%s}{%s}", coeff.Num(), coeff.Denom())
	} else if attached {
		return fmt.Sprintf("(%s/%s)", coeff.Num(), coeff.Denom())
	}
	//
	return fmt.Sprintf("%s/%s", coeff.Num(), coeff.Denom())
}

// Render a given exponent using unicode superscript digits.
func superscript(exponent uint) string {
	var (
		digits  = []rune("⁰¹²³⁴⁵⁶⁷⁸⁹")
		builder strings.Builder
	)
	//
	for _, c := range fmt.Sprintf("%d", exponent) {
		builder.WriteRune(digits[c-'0'])
	}
	//
	return builder.String()
}
