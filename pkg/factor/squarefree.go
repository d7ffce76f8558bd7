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
	"errors"

	"github.com/consensys/go-partfrac/pkg/poly"
)

// ErrNotMonic signals that a monic polynomial was expected.
var ErrNotMonic = errors.New("expected a monic polynomial")

// SquareFree computes the square-free decomposition of a monic polynomial
// using Yun's algorithm.  The result is a set of factors whose bases are
// monic, square-free and pairwise coprime, with the input being the product
// of the bases raised to their multiplicities.  Multiplicities are strictly
// increasing across the result, and bases of absent multiplicities are simply
// left out.  For example, x*(x-1)^3 decomposes into x (multiplicity one) and
// x-1 (multiplicity three).
func SquareFree(p poly.Polynomial) ([]Factor, error) {
	if !p.IsMonic() {
		return nil, ErrNotMonic
	} else if p.IsOne() {
		return nil, nil
	}
	// Strip the repeated part of p, leaving b holding each distinct factor of
	// p exactly once, and d tracking the derivative structure.
	derivative := p.Derivative()
	repeated := poly.GCD(p, derivative)
	//
	b, err := poly.ExactDiv(p, repeated)
	if err != nil {
		return nil, err
	}
	//
	c, err := poly.ExactDiv(derivative, repeated)
	if err != nil {
		return nil, err
	}
	//
	d := c.Sub(b.Derivative())
	//
	var factors []Factor
	// The ith iteration extracts the product of all factors occurring in p
	// with multiplicity exactly i, which may well be trivial.  Since b holds
	// the factors of multiplicity at least i, the loop stops once b is empty.
	for i := uint(1); !b.IsConstant(); i++ {
		block := poly.GCD(b, d)
		//
		if !block.IsConstant() {
			factors = append(factors, Factor{block, i})
		}
		//
		if b, err = poly.ExactDiv(b, block); err != nil {
			return nil, err
		}
		//
		if c, err = poly.ExactDiv(d, block); err != nil {
			return nil, err
		}
		//
		d = c.Sub(b.Derivative())
	}
	//
	return factors, nil
}
