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
package factor

import (
	"math/big"
	"sort"

	"github.com/consensys/go-partfrac/pkg/poly"
)

// RationalRoots returns every rational root of a non-zero polynomial, in
// ascending order and without duplicates.  Roots are found by the rational
// root theorem: after clearing denominators, every rational root p/q (in
// lowest terms) has p dividing the constant coefficient and q dividing the
// leading coefficient.
func RationalRoots(p poly.Polynomial) ([]*big.Rat, error) {
	if p.IsZero() {
		return nil, ErrZeroPolynomial
	} else if p.IsConstant() {
		return nil, nil
	}
	//
	var roots []*big.Rat
	//
	coeffs := clearDenominators(p)
	// Strip trailing zero coefficients, which together contribute a single
	// root at zero.
	offset := 0
	for coeffs[offset].Sign() == 0 {
		offset++
	}
	//
	if offset > 0 {
		roots = append(roots, new(big.Rat))
	}
	//
	coeffs = coeffs[offset:]
	// Check whether p was a pure monomial.
	if len(coeffs) == 1 {
		return roots, nil
	}
	//
	var (
		numerators   = Divisors(coeffs[0])
		denominators = Divisors(coeffs[len(coeffs)-1])
		// Candidates repeat once reduced to lowest terms, e.g. 2/2 and 1/1.
		seen = make(map[string]bool)
	)
	//
	for _, num := range numerators {
		for _, den := range denominators {
			candidate := new(big.Rat).SetFrac(num, den)
			//
			for _, sign := range []int{1, -1} {
				if sign < 0 {
					candidate = new(big.Rat).Neg(candidate)
				}
				//
				if seen[candidate.RatString()] {
					continue
				}
				//
				seen[candidate.RatString()] = true
				//
				if p.Eval(candidate).Sign() == 0 {
					roots = append(roots, candidate)
				}
			}
		}
	}
	//
	sort.Slice(roots, func(i, j int) bool {
		return roots[i].Cmp(roots[j]) < 0
	})
	//
	return roots, nil
}

// Scale a polynomial by the least common multiple of its coefficient
// denominators, returning the resulting integer coefficients in ascending
// order of exponent.
func clearDenominators(p poly.Polynomial) []*big.Int {
	var (
		degree = p.Degree().Uint()
		lcm    = big.NewInt(1)
		gcd    big.Int
	)
	//
	for i := uint(0); i <= degree; i++ {
		den := p.Coefficient(i).Denom()
		gcd.GCD(nil, nil, lcm, den)
		lcm.Div(lcm, &gcd)
		lcm.Mul(lcm, den)
	}
	//
	coeffs := make([]*big.Int, degree+1)
	//
	for i := uint(0); i <= degree; i++ {
		c := p.Coefficient(i)
		scale := new(big.Int).Div(lcm, c.Denom())
		coeffs[i] = scale.Mul(c.Num(), scale)
	}
	//
	return coeffs
}
