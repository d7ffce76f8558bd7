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
	"errors"
	"fmt"
	"math/big"
)

// ErrDivisionByZero signals an attempt to divide by the zero polynomial, or
// to use it as an expansion base.
var ErrDivisionByZero = errors.New("polynomial division by zero")

// ErrInexactDivision signals a division which was expected to leave no
// remainder, but did.
var ErrInexactDivision = errors.New("inexact polynomial division")

// QuoRem divides one polynomial by another, returning the unique quotient and
// remainder such that u = q*v + r, where r is either zero or has degree
// strictly below that of v.  Dividing by the zero polynomial returns
// ErrDivisionByZero.
func QuoRem(u, v Polynomial) (Polynomial, Polynomial, error) {
	if v.IsZero() {
		return Polynomial{}, Polynomial{}, ErrDivisionByZero
	} else if u.Degree().Cmp(v.Degree()) < 0 {
		// Includes the case where u is zero.
		return Polynomial{}, u, nil
	}
	// Degree of the divisor.
	n := len(v.coeffs) - 1
	// Inverse of the divisor's leading coefficient.
	var lcInv big.Rat
	//
	lcInv.Inv(&v.coeffs[n])
	// Working copy of the dividend, reduced in place from the top down.
	rem := make([]big.Rat, len(u.coeffs))
	for i := range u.coeffs {
		rem[i].Set(&u.coeffs[i])
	}
	//
	var tmp big.Rat
	//
	quo := make([]big.Rat, len(u.coeffs)-n)
	// Eliminate the leading term of the remainder on each step, so its degree
	// strictly decreases until it falls below that of the divisor.
	for i := len(rem) - 1; i >= n; i-- {
		if rem[i].Sign() == 0 {
			continue
		}
		//
		quo[i-n].Mul(&rem[i], &lcInv)
		// Subtract quo[i-n] * v * x^(i-n) from the remainder.
		for j := 0; j <= n; j++ {
			tmp.Mul(&quo[i-n], &v.coeffs[j])
			rem[i-n+j].Sub(&rem[i-n+j], &tmp)
		}
	}
	//
	return Polynomial{trim(quo)}, Polynomial{trim(rem)}, nil
}

// ExactDiv divides one polynomial by another which is known to divide it
// evenly, returning ErrInexactDivision if a remainder is (unexpectedly) left
// over.
func ExactDiv(u, v Polynomial) (Polynomial, error) {
	q, r, err := QuoRem(u, v)
	//
	if err != nil {
		return Polynomial{}, err
	} else if !r.IsZero() {
		return Polynomial{}, fmt.Errorf("%w (remainder %s)", ErrInexactDivision, r.String())
	}
	//
	return q, nil
}
