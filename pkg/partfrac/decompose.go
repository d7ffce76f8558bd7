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

// Package partfrac computes partial fraction decompositions of univariate
// rational functions with rational coefficients.  A fraction num/den is
// rewritten as a polynomial quotient plus proper fractions over the pairwise
// coprime factors of den, with every denominator power expanded so that each
// numerator degree falls strictly below its base degree:
//
//	num/den = q + sum of d/b^j with deg(d) < deg(b)
//
// All arithmetic is exact.  Factorisation of the denominator is delegated to
// a factor.Oracle, and irreducible factors the oracle cannot break apart
// simply remain whole in the result.
package partfrac

import (
	"errors"

	"github.com/consensys/go-partfrac/pkg/factor"
	"github.com/consensys/go-partfrac/pkg/poly"
)

// ErrInvariant indicates an internal inconsistency, such as a factorisation
// oracle violating its contract.  Its appearance always signals a bug.
var ErrInvariant = errors.New("internal invariant violated")

// Decompose computes the partial fraction decomposition of num/den using a
// given factorisation oracle for the denominator.  This fails with
// poly.ErrDivisionByZero if den is zero, and otherwise only if the oracle
// fails or an internal invariant breaks.  Oracle errors are surfaced
// unchanged.
func Decompose(num, den poly.Polynomial, oracle factor.Oracle) (Decomposition, error) {
	var d Decomposition
	//
	if den.IsZero() {
		return d, poly.ErrDivisionByZero
	}
	// Divide out the polynomial part, leaving a proper fraction.
	remainder := num
	//
	if num.Degree().Cmp(den.Degree()) >= 0 {
		d.Quotient, remainder = mustQuoRem(num, den)
	}
	//
	if remainder.IsZero() {
		return d, nil
	}
	//
	factorisation, err := oracle.Factorize(den)
	if err != nil {
		return Decomposition{}, err
	}
	//
	terms, leftover, err := Split(remainder, factorisation)
	if err != nil {
		return Decomposition{}, err
	}
	// A leftover arises only from a constant denominator.
	d.Quotient = d.Quotient.Add(leftover)
	// Expand repeated factors into ascending powers.
	for _, t := range terms {
		expanded, err := ExpandTerm(t)
		if err != nil {
			return Decomposition{}, err
		}
		//
		d.Terms = append(d.Terms, expanded...)
	}
	//
	return d, nil
}

// Divide one polynomial by another which is known to be non-zero.
func mustQuoRem(u, v poly.Polynomial) (poly.Polynomial, poly.Polynomial) {
	q, r, err := poly.QuoRem(u, v)
	// Unreachable for non-zero divisors.
	if err != nil {
		panic(err)
	}
	//
	return q, r
}
