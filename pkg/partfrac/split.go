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
	"errors"
	"fmt"
	"math/big"

	"github.com/consensys/go-partfrac/pkg/factor"
	"github.com/consensys/go-partfrac/pkg/poly"
)

// ErrNotCoprime indicates an attempt to split a fraction across two
// denominator factors which share a non-constant common divisor.
var ErrNotCoprime = errors.New("denominator factors are not coprime")

// ErrImproper indicates a fraction whose numerator degree is not strictly
// below its denominator degree, where a proper fraction was required.
var ErrImproper = errors.New("fraction is not proper")

// SplitTwo breaks a proper fraction u/(v1*v2) with coprime denominator
// factors into two proper fractions
//
//	u/(v1*v2) = u1/v1 + u2/v2
//
// returning the numerators u1 and u2.  This fails with ErrNotCoprime if v1
// and v2 share a non-constant divisor, with ErrImproper if deg(u) is not
// strictly below deg(v1*v2), and with poly.ErrDivisionByZero if either
// factor is zero.
func SplitTwo(u, v1, v2 poly.Polynomial) (poly.Polynomial, poly.Polynomial, error) {
	var empty poly.Polynomial
	//
	if v1.IsZero() || v2.IsZero() {
		return empty, empty, poly.ErrDivisionByZero
	} else if u.Degree().Cmp(v1.Degree().Add(v2.Degree())) >= 0 {
		return empty, empty, fmt.Errorf("%w: deg(%s) >= deg(%s) + deg(%s)", ErrImproper, u, v1, v2)
	}
	//
	g, a, b := poly.ExtGCD(v1, v2)
	if !g.IsConstant() {
		return empty, empty, fmt.Errorf("%w: %s and %s share %s", ErrNotCoprime, v1, v2, g)
	}
	// Here g is monic, hence exactly one, and a*v1 + b*v2 = 1.  Multiplying
	// through by u/(v1*v2) gives u1 = b*u (mod v1) and u2 = a*u (mod v2).
	u1 := mustRem(b.Mul(u), v1)
	u2 := mustRem(a.Mul(u), v2)
	//
	return u1, u2, nil
}

// Split breaks a fraction u/f, whose denominator is given in factorised form,
// into one proper fraction per factor
//
//	u/f = u1/b1^m1 + ... + un/bn^mn + leftover
//
// returning the fractions as terms along with the polynomial leftover.  Zero
// numerators are dropped rather than kept as terms.  The leftover is non-zero
// only when the factorisation is purely constant, in which case the fraction
// itself is a polynomial.  This fails with ErrImproper if the numerator
// degree reaches the degree of the factorised denominator, and with
// ErrInvariant if the factorisation violates its own contract.
func Split(u poly.Polynomial, f factor.Factorization) ([]Term, poly.Polynomial, error) {
	var empty poly.Polynomial
	//
	if f.Constant.Sign() == 0 {
		return nil, empty, fmt.Errorf("%w: factorisation constant is zero", ErrInvariant)
	}
	// Fold the constant into the numerator.
	scale := new(big.Rat).Inv(&f.Constant)
	//
	return splitFactors(u.Scale(scale), f.Factors)
}

// Split a fraction across a list of pairwise coprime factors, peeling one
// factor off at a time.
func splitFactors(u poly.Polynomial, factors []factor.Factor) ([]Term, poly.Polynomial, error) {
	var empty poly.Polynomial
	//
	switch {
	case u.IsZero():
		return nil, empty, nil
	case len(factors) == 0:
		return nil, u, nil
	}
	//
	var (
		first = factors[0]
		v1    = first.Base.Pow(first.Multiplicity)
	)
	// Fold any constant factor into the numerator, as for the leading
	// constant.
	if first.Base.IsConstant() {
		if first.Base.IsZero() {
			return nil, empty, poly.ErrDivisionByZero
		}
		//
		lead, _ := v1.LeadingCoefficient()
		scale := new(big.Rat).Inv(lead)
		//
		return splitFactors(u.Scale(scale), factors[1:])
	}
	// Terminal case: a single factor simply becomes a term.
	if len(factors) == 1 {
		if u.Degree().Cmp(v1.Degree()) >= 0 {
			return nil, empty, fmt.Errorf("%w: deg(%s) >= deg(%s)", ErrImproper, u, v1)
		}
		//
		return []Term{{u, first.Base, first.Multiplicity}}, empty, nil
	}
	// Split the first factor from the product of the rest.
	v2 := poly.FromInt64s(1)
	for _, f := range factors[1:] {
		v2 = v2.Mul(f.Base.Pow(f.Multiplicity))
	}
	//
	u1, u2, err := SplitTwo(u, v1, v2)
	if err != nil {
		return nil, empty, err
	}
	//
	var terms []Term
	if !u1.IsZero() {
		terms = append(terms, Term{u1, first.Base, first.Multiplicity})
	}
	//
	rest, leftover, err := splitFactors(u2, factors[1:])
	if err != nil {
		return nil, empty, err
	}
	//
	return append(terms, rest...), leftover, nil
}

// Take the remainder of dividing one polynomial by another which is known to
// be non-zero.
func mustRem(u, v poly.Polynomial) poly.Polynomial {
	_, r, err := poly.QuoRem(u, v)
	// Unreachable for non-zero divisors.
	if err != nil {
		panic(err)
	}
	//
	return r
}
