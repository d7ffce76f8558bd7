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
)

// ErrConstantBase signals an attempt to expand a polynomial in terms of a
// constant base, for which no such expansion exists.
var ErrConstantBase = errors.New("cannot expand polynomial in a constant base")

// Expand computes the base-adic expansion of a polynomial u with respect to a
// non-constant base v.  That is, the unique digits d[0] .. d[n] such that
//
//	u = d[0] + d[1]*v + d[2]*v^2 + ... + d[n]*v^n
//
// where every digit has degree strictly below that of v.  This mirrors the
// radix expansion of an integer, with the base a polynomial rather than a
// number.  The zero polynomial expands to no digits at all; the final digit
// is otherwise non-zero.
func Expand(u, v Polynomial) ([]Polynomial, error) {
	if v.IsZero() {
		return nil, ErrDivisionByZero
	} else if v.IsConstant() {
		return nil, ErrConstantBase
	}
	//
	var digits []Polynomial
	// Each step divides off one digit, leaving a quotient of strictly smaller
	// degree.  Hence, at most deg(u)/deg(v) + 1 digits arise.
	for !u.IsZero() {
		q, r, err := QuoRem(u, v)
		// Division by a non-constant polynomial cannot fail.
		if err != nil {
			panic(err)
		}
		//
		digits = append(digits, r)
		u = q
	}
	//
	return digits, nil
}

// Recompose evaluates a base-adic expansion back into a single polynomial,
// inverting Expand.  Specifically, given digits d[0] .. d[n] and base v, it
// returns d[0] + d[1]*v + ... + d[n]*v^n.
func Recompose(digits []Polynomial, v Polynomial) Polynomial {
	var acc Polynomial
	// Horner's rule, outermost digit first.
	for i := len(digits) - 1; i >= 0; i-- {
		acc = acc.Mul(v).Add(digits[i])
	}
	//
	return acc
}
