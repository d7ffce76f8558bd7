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

	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
	"github.com/consensys/go-partfrac/pkg/poly"
)

// VerifyField probabilistically checks that a decomposition recombines to
// num/den by evaluating the cross-multiplied identity n*den == num*m at
// random points of the BLS12-377 scalar field.  A mismatching decomposition
// escapes detection at a given point only if the point is a root of the
// difference polynomial, which happens with probability at most deg/r for
// the 253-bit field order r.  At least one sample is always taken.
//
// This fails with poly.ErrDivisionByZero if den is zero, with ErrMismatch if
// a sampled point exposes the decomposition, and with an error if some
// coefficient has no field image (that is, its denominator is divisible by
// the field modulus).
func VerifyField(num, den poly.Polynomial, d *Decomposition, samples uint) error {
	if den.IsZero() {
		return poly.ErrDivisionByZero
	}
	//
	n, m := d.Combine()
	//
	lhs1, err := fieldCoefficients(n)
	if err != nil {
		return err
	}
	//
	lhs2, err := fieldCoefficients(den)
	if err != nil {
		return err
	}
	//
	rhs1, err := fieldCoefficients(num)
	if err != nil {
		return err
	}
	//
	rhs2, err := fieldCoefficients(m)
	if err != nil {
		return err
	}
	//
	if samples == 0 {
		samples = 1
	}
	//
	for i := uint(0); i < samples; i++ {
		var x fr.Element
		//
		if _, err := x.SetRandom(); err != nil {
			return err
		}
		//
		var (
			lhs = fieldEval(lhs1, &x)
			ld  = fieldEval(lhs2, &x)
			rhs = fieldEval(rhs1, &x)
			rd  = fieldEval(rhs2, &x)
		)
		//
		lhs.Mul(&lhs, &ld)
		rhs.Mul(&rhs, &rd)
		//
		if !lhs.Equal(&rhs) {
			return fmt.Errorf("%w: exposed at sampled point %s", ErrMismatch, x.String())
		}
	}
	//
	return nil
}

// Map the coefficients of a polynomial into the scalar field, in ascending
// exponent order.  Rational coefficients map to num * den^-1, which fails
// only when the denominator is divisible by the field modulus.
func fieldCoefficients(p poly.Polynomial) ([]fr.Element, error) {
	degree := p.Degree()
	//
	if !degree.IsFinite() {
		return nil, nil
	}
	//
	coeffs := make([]fr.Element, degree.Uint()+1)
	//
	for i := range coeffs {
		var (
			c   = p.Coefficient(uint(i))
			den fr.Element
		)
		//
		coeffs[i].SetBigInt(c.Num())
		den.SetBigInt(c.Denom())
		//
		if den.IsZero() {
			return nil, fmt.Errorf("coefficient %s has no image in the scalar field", c.RatString())
		}
		//
		den.Inverse(&den)
		coeffs[i].Mul(&coeffs[i], &den)
	}
	//
	return coeffs, nil
}

// Evaluate a polynomial given by its field coefficients at a field point,
// using Horner's rule.
func fieldEval(coeffs []fr.Element, x *fr.Element) fr.Element {
	var acc fr.Element
	//
	for i := len(coeffs) - 1; i >= 0; i-- {
		acc.Mul(&acc, x)
		acc.Add(&acc, &coeffs[i])
	}
	//
	return acc
}
