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

// Package factor breaks univariate rational polynomials into products of
// pairwise coprime factors.  Factorisation is exposed through an oracle
// interface, such that any factorisation routine can be plugged in.  The
// default oracle combines Yun's square-free decomposition with rational root
// extraction; factors it cannot break any further are reported as they stand,
// and treated as atomic by downstream consumers.
package factor

import (
	"errors"
	"fmt"
	"math/big"
	"sort"
	"strings"

	"github.com/consensys/go-partfrac/pkg/poly"
)

// ErrZeroPolynomial signals an attempt to factorise the zero polynomial,
// which has no factorisation.
var ErrZeroPolynomial = errors.New("cannot factorise the zero polynomial")

// Oracle captures any routine capable of factorising polynomials.  Oracles
// must be deterministic: factorising the same polynomial twice yields
// structurally identical results.
type Oracle interface {
	// Factorize breaks a given non-zero polynomial into a constant multiple
	// of monic, non-constant, pairwise coprime factors.  The factors need not
	// be irreducible; whatever the oracle cannot break apart is returned
	// whole.
	Factorize(p poly.Polynomial) (Factorization, error)
}

// Factor represents a single (monic, non-constant) polynomial raised to some
// power within a factorisation.
type Factor struct {
	// Base of this factor, which is always monic and non-constant.
	Base poly.Polynomial
	// Multiplicity with which the base occurs, which is always at least one.
	Multiplicity uint
}

// Factorization represents a polynomial broken into a product
//
//	c * b1^m1 * b2^m2 * ... * bn^mn
//
// where the bases bi are monic, non-constant and pairwise coprime, and c is a
// non-zero rational constant.  Factors are held in a canonical order
// (ascending degree, then ascending coefficients from the leading term down),
// so equal polynomials always factorise identically.
type Factorization struct {
	// Constant multiple of this factorisation.
	Constant big.Rat
	// Factors of this factorisation, in canonical order.
	Factors []Factor
}

// Product multiplies this factorisation back out into a single polynomial.
func (f *Factorization) Product() poly.Polynomial {
	result := poly.Constant(&f.Constant)
	//
	for _, factor := range f.Factors {
		result = result.Mul(factor.Base.Pow(factor.Multiplicity))
	}
	//
	return result
}

// Format renders this factorisation with a given variable name and notation,
// such as "5 * (x - 4)^2 * (x + 3)".
func (f *Factorization) Format(variable string, notation poly.Notation) string {
	var pieces []string
	// Drop a unit constant, unless it is all there is.
	if len(f.Factors) == 0 || f.Constant.Cmp(big.NewRat(1, 1)) != 0 {
		pieces = append(pieces, poly.Constant(&f.Constant).Format(variable, notation))
	}
	//
	for _, factor := range f.Factors {
		base := factor.Base.Format(variable, notation)
		suffix := poly.FormatExponent(factor.Multiplicity, notation)
		pieces = append(pieces, fmt.Sprintf("(%s)%s", base, suffix))
	}
	//
	if notation == poly.ASCII {
		return strings.Join(pieces, " * ")
	}
	// Unicode and LaTeX both juxtapose factors.
	return strings.Join(pieces, "")
}

func (f *Factorization) String() string {
	return f.Format("x", poly.ASCII)
}

// NewOracle constructs the default factorisation oracle, which factors out
// every rational root of its input.  Whatever remains after square-free
// decomposition and root extraction is reported as a single atomic factor,
// which for residuals of degree two or three implies genuine irreducibility
// over the rationals.
func NewOracle() Oracle {
	return &defaultOracle{}
}

type defaultOracle struct{}

// Factorize implements the Oracle interface.
func (o *defaultOracle) Factorize(p poly.Polynomial) (Factorization, error) {
	var result Factorization
	//
	if p.IsZero() {
		return Factorization{}, ErrZeroPolynomial
	}
	// Set aside the leading coefficient.
	monic, lead := p.Monic()
	result.Constant.Set(lead)
	//
	if monic.IsConstant() {
		return result, nil
	}
	// Break into square-free blocks.
	blocks, err := SquareFree(monic)
	if err != nil {
		return Factorization{}, err
	}
	// Split every rational root out of every block.
	for _, block := range blocks {
		bases, err := splitRationalRoots(block.Base)
		if err != nil {
			return Factorization{}, err
		}
		//
		for _, base := range bases {
			result.Factors = append(result.Factors, Factor{base, block.Multiplicity})
		}
	}
	//
	sortFactors(result.Factors)
	//
	return result, nil
}

// Split a monic, square-free, non-constant polynomial into one linear factor
// per rational root, plus at most one rootless residual.
func splitRationalRoots(p poly.Polynomial) ([]poly.Polynomial, error) {
	roots, err := RationalRoots(p)
	if err != nil {
		return nil, err
	}
	//
	var (
		one   = big.NewRat(1, 1)
		bases []poly.Polynomial
	)
	// Deflate one linear factor per root.  Roots are necessarily simple here,
	// as the input is square-free.
	for _, root := range roots {
		linear := poly.NewPolynomial(new(big.Rat).Neg(root), one)
		//
		if p, err = poly.ExactDiv(p, linear); err != nil {
			return nil, err
		}
		//
		bases = append(bases, linear)
	}
	// Anything left over is atomic.  Note that a residual of degree one is
	// impossible, since its root would have been found above.
	if !p.IsConstant() {
		bases = append(bases, p)
	}
	//
	return bases, nil
}

// Sort factors into the canonical order.
func sortFactors(factors []Factor) {
	sort.Slice(factors, func(i, j int) bool {
		return factors[i].Base.Cmp(factors[j].Base) < 0
	})
}
