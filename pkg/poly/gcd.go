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
	"math/big"
)

// GCD returns the greatest common divisor of two polynomials, normalised to
// be monic.  The GCD of two zero polynomials is zero; in every other case the
// result is non-zero.  In particular, the GCD of two coprime polynomials is
// the constant polynomial one.
func GCD(u, v Polynomial) Polynomial {
	g, _, _ := ExtGCD(u, v)
	return g
}

// ExtGCD implements the extended Euclidean algorithm over rational
// polynomials.  It returns the monic greatest common divisor g of u and v,
// together with the Bézout coefficients a and b satisfying
//
//	a*u + b*v = g
//
// When both inputs are zero, all three results are zero.  Otherwise g is
// monic; hence, for coprime u and v, the identity reads a*u + b*v = 1.
func ExtGCD(u, v Polynomial) (g, a, b Polynomial) {
	// Remainder sequence, and the corresponding Bézout coefficient pairs:
	// the invariant a0*u + b0*v = r0 (and likewise for r1) is maintained by
	// every step.
	r0, r1 := u, v
	a0, a1 := FromInt64s(1), Polynomial{}
	b0, b1 := Polynomial{}, FromInt64s(1)
	//
	for !r1.IsZero() {
		q, r, err := QuoRem(r0, r1)
		// Division by a non-zero polynomial cannot fail.
		if err != nil {
			panic(err)
		}
		//
		r0, r1 = r1, r
		a0, a1 = a1, a0.Sub(q.Mul(a1))
		b0, b1 = b1, b0.Sub(q.Mul(b1))
	}
	//
	lc, ok := r0.LeadingCoefficient()
	if !ok {
		// Both inputs were zero.
		return Polynomial{}, Polynomial{}, Polynomial{}
	}
	// Normalise the result to be monic.
	lcInv := new(big.Rat).Inv(lc)
	//
	return r0.Scale(lcInv), a0.Scale(lcInv), b0.Scale(lcInv)
}
