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
package partfrac

import (
	"fmt"
	"strings"

	"github.com/consensys/go-partfrac/pkg/poly"
)

// Term represents one fraction of a partial fraction decomposition, namely
//
//	Numerator / Base^Power
//
// where the base is monic and non-constant, the power is at least one, and
// the numerator degree falls strictly below the base degree once a
// decomposition has been fully refined.
type Term struct {
	// Numerator of this term.
	Numerator poly.Polynomial
	// Base of the denominator, which is always monic and non-constant.
	Base poly.Polynomial
	// Power to which the base is raised, which is always at least one.
	Power uint
}

// Denominator returns the denominator of this term multiplied out, namely
// Base^Power.
func (t *Term) Denominator() poly.Polynomial {
	return t.Base.Pow(t.Power)
}

// Format renders this term with a given variable name and notation, such as
// "5/(x - 4)^2".
func (t *Term) Format(variable string, notation poly.Notation) string {
	num := t.Numerator.Format(variable, notation)
	//
	if notation == poly.LaTeX {
		return fmt.Sprintf("\\frac{%s}{%s}", num, t.formatDenominator(variable, notation))
	}
	// Parenthesise any numerator which binds less tightly than division.
	if !t.Numerator.IsConstant() || !t.Numerator.Coefficient(0).IsInt() {
		num = fmt.Sprintf("(%s)", num)
	}
	//
	return fmt.Sprintf("%s/%s", num, t.formatDenominator(variable, notation))
}

func (t *Term) String() string {
	return t.Format("x", poly.ASCII)
}

// Format the denominator of this term, parenthesising the base unless it is a
// bare variable (or, for LaTeX, unexponentiated).
func (t *Term) formatDenominator(variable string, notation poly.Notation) string {
	base := t.Base.Format(variable, notation)
	//
	bare := t.Base.Equal(poly.Identity())
	if notation == poly.LaTeX {
		bare = t.Power == 1
	}
	//
	if !bare {
		base = fmt.Sprintf("(%s)", base)
	}
	//
	return base + poly.FormatExponent(t.Power, notation)
}

// Decomposition represents a rational function broken into a polynomial
// quotient plus a sum of proper fraction terms.  This closed shape is the
// entire result space: there is no other form a decomposition can take.
type Decomposition struct {
	// Quotient holds the polynomial part, which is zero for proper inputs.
	Quotient poly.Polynomial
	// Terms holds the fractional parts, grouped by factor with powers
	// ascending within each group.
	Terms []Term
}

// Combine recombines this decomposition into a single rational function over
// a common denominator, reduced to lowest terms with a monic denominator.
func (d *Decomposition) Combine() (poly.Polynomial, poly.Polynomial) {
	num := d.Quotient
	den := poly.FromInt64s(1)
	//
	for _, t := range d.Terms {
		tden := t.Denominator()
		num = num.Mul(tden).Add(t.Numerator.Mul(den))
		den = den.Mul(tden)
	}
	// Reduce to lowest terms.
	g := poly.GCD(num, den)
	if !g.IsOne() {
		num = mustDiv(num, g)
		den = mustDiv(den, g)
	}
	//
	return num, den
}

// Format renders this decomposition with a given variable name and notation,
// fractional terms first and the quotient last, such as
//
//	3/(x - 4) + 5/(x - 4)^2 - (3/5)/(x + 3) + 1/5
func (d *Decomposition) Format(variable string, notation poly.Notation) string {
	var (
		builder strings.Builder
		first   = true
	)
	//
	for i := range d.Terms {
		t := d.Terms[i]
		// Pull a negative numerator's sign out in front of the term.
		if lead, ok := t.Numerator.LeadingCoefficient(); ok && lead.Sign() < 0 {
			t.Numerator = t.Numerator.Neg()
			builder.WriteString(separator(first, true))
		} else {
			builder.WriteString(separator(first, false))
		}
		//
		first = false
		builder.WriteString(t.Format(variable, notation))
	}
	//
	if !d.Quotient.IsZero() {
		quotient := d.Quotient
		//
		if lead, _ := quotient.LeadingCoefficient(); lead.Sign() < 0 {
			quotient = quotient.Neg()
			builder.WriteString(separator(first, true))
		} else {
			builder.WriteString(separator(first, false))
		}
		//
		first = false
		builder.WriteString(quotient.Format(variable, notation))
	}
	// An empty decomposition denotes zero.
	if first {
		return "0"
	}
	//
	return builder.String()
}

func (d *Decomposition) String() string {
	return d.Format("x", poly.ASCII)
}

// Determine the separator preceding the next element of a sum, given whether
// it is the first element and whether its sign was pulled out.
func separator(first bool, negative bool) string {
	switch {
	case first && negative:
		return "-"
	case first:
		return ""
	case negative:
		return " - "
	default:
		return " + "
	}
}

// Divide one polynomial by another which is known to divide it evenly.
func mustDiv(u, v poly.Polynomial) poly.Polynomial {
	q, err := poly.ExactDiv(u, v)
	// Unreachable for callers holding the divisibility invariant.
	if err != nil {
		panic(err)
	}
	//
	return q
}
