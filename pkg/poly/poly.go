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

// Package poly implements exact arithmetic over univariate polynomials with
// rational coefficients, including long division, the extended Euclidean
// algorithm and base-adic expansion.
package poly

import (
	"math/big"
)

// Polynomial represents a univariate polynomial over the rationals using a
// dense representation.  Coefficients are held in ascending order of exponent,
// with trailing zero coefficients always trimmed.  Thus, the zero polynomial
// is represented by an empty coefficient array, and the zero value of this
// type is the zero polynomial.
//
// Polynomials have value semantics: every operation returns a fresh
// polynomial, and the coefficients of an existing polynomial are never
// mutated.  Hence, polynomials can be freely shared across goroutines.
type Polynomial struct {
	// coeffs[i] holds the coefficient of x^i.  The final element, when it
	// exists, is always non-zero.
	coeffs []big.Rat
}

// NewPolynomial constructs a polynomial from coefficients given in ascending
// order of exponent.  The coefficients are copied, and any trailing zeros are
// trimmed.
func NewPolynomial(coeffs ...*big.Rat) Polynomial {
	ncoeffs := make([]big.Rat, len(coeffs))
	//
	for i, c := range coeffs {
		ncoeffs[i].Set(c)
	}
	//
	return Polynomial{trim(ncoeffs)}
}

// FromInt64s constructs a polynomial from integer coefficients given in
// ascending order of exponent.
func FromInt64s(coeffs ...int64) Polynomial {
	ncoeffs := make([]big.Rat, len(coeffs))
	//
	for i, c := range coeffs {
		ncoeffs[i].SetInt64(c)
	}
	//
	return Polynomial{trim(ncoeffs)}
}

// Constant constructs the polynomial whose only term is the given constant.
func Constant(constant *big.Rat) Polynomial {
	return NewPolynomial(constant)
}

// NewMonomial constructs the polynomial coefficient * x^exponent.
func NewMonomial(coefficient *big.Rat, exponent uint) Polynomial {
	if coefficient.Sign() == 0 {
		return Polynomial{}
	}
	//
	coeffs := make([]big.Rat, exponent+1)
	coeffs[exponent].Set(coefficient)
	//
	return Polynomial{coeffs}
}

// Identity constructs the polynomial x.
func Identity() Polynomial {
	return FromInt64s(0, 1)
}

// Degree returns the degree of this polynomial, where the zero polynomial has
// NoDegree.
func (p Polynomial) Degree() Degree {
	if len(p.coeffs) == 0 {
		return NoDegree
	}
	//
	return NewDegree(uint(len(p.coeffs) - 1))
}

// Coefficient returns the coefficient of x^exponent, which is zero for any
// exponent above the degree.  The returned value is a fresh copy.
func (p Polynomial) Coefficient(exponent uint) *big.Rat {
	if exponent >= uint(len(p.coeffs)) {
		return new(big.Rat)
	}
	//
	return new(big.Rat).Set(&p.coeffs[exponent])
}

// LeadingCoefficient returns the coefficient of the highest power, or false
// for the zero polynomial (which has no leading coefficient).
func (p Polynomial) LeadingCoefficient() (*big.Rat, bool) {
	if len(p.coeffs) == 0 {
		return nil, false
	}
	//
	return new(big.Rat).Set(&p.coeffs[len(p.coeffs)-1]), true
}

// IsZero determines whether this is the zero polynomial.
func (p Polynomial) IsZero() bool {
	return len(p.coeffs) == 0
}

// IsConstant determines whether this polynomial is a constant (including
// zero).
func (p Polynomial) IsConstant() bool {
	return len(p.coeffs) <= 1
}

// IsOne determines whether this is the constant polynomial 1.
func (p Polynomial) IsOne() bool {
	return len(p.coeffs) == 1 && p.coeffs[0].Cmp(ratOne) == 0
}

// IsMonic determines whether the leading coefficient of this polynomial is
// one.  The zero polynomial is not monic.
func (p Polynomial) IsMonic() bool {
	n := len(p.coeffs)
	return n > 0 && p.coeffs[n-1].Cmp(ratOne) == 0
}

// Add returns the sum of this polynomial and another.
func (p Polynomial) Add(q Polynomial) Polynomial {
	coeffs := make([]big.Rat, max(len(p.coeffs), len(q.coeffs)))
	//
	for i := range coeffs {
		if i < len(p.coeffs) {
			coeffs[i].Set(&p.coeffs[i])
		}
		//
		if i < len(q.coeffs) {
			coeffs[i].Add(&coeffs[i], &q.coeffs[i])
		}
	}
	//
	return Polynomial{trim(coeffs)}
}

// Sub returns the difference of this polynomial and another.
func (p Polynomial) Sub(q Polynomial) Polynomial {
	return p.Add(q.Neg())
}

// Neg returns the negation of this polynomial.
func (p Polynomial) Neg() Polynomial {
	coeffs := make([]big.Rat, len(p.coeffs))
	//
	for i := range p.coeffs {
		coeffs[i].Neg(&p.coeffs[i])
	}
	// Negation cannot introduce trailing zeros.
	return Polynomial{coeffs}
}

// Mul returns the product of this polynomial and another.
func (p Polynomial) Mul(q Polynomial) Polynomial {
	if len(p.coeffs) == 0 || len(q.coeffs) == 0 {
		return Polynomial{}
	}
	//
	var tmp big.Rat
	//
	coeffs := make([]big.Rat, len(p.coeffs)+len(q.coeffs)-1)
	//
	for i := range p.coeffs {
		if p.coeffs[i].Sign() == 0 {
			continue
		}
		//
		for j := range q.coeffs {
			tmp.Mul(&p.coeffs[i], &q.coeffs[j])
			coeffs[i+j].Add(&coeffs[i+j], &tmp)
		}
	}
	// Over a field, the leading coefficient of a product of non-zero
	// polynomials is itself non-zero.
	return Polynomial{coeffs}
}

// Scale returns this polynomial multiplied through by a rational constant.
func (p Polynomial) Scale(constant *big.Rat) Polynomial {
	if constant.Sign() == 0 {
		return Polynomial{}
	}
	//
	coeffs := make([]big.Rat, len(p.coeffs))
	//
	for i := range p.coeffs {
		coeffs[i].Mul(&p.coeffs[i], constant)
	}
	//
	return Polynomial{coeffs}
}

// Pow returns this polynomial raised to a given power, using square and
// multiply.  Any polynomial raised to the zeroth power is one.
func (p Polynomial) Pow(n uint) Polynomial {
	result := FromInt64s(1)
	base := p
	//
	for n > 0 {
		if n&1 == 1 {
			result = result.Mul(base)
		}
		//
		n >>= 1
		if n > 0 {
			base = base.Mul(base)
		}
	}
	//
	return result
}

// Derivative returns the formal derivative of this polynomial.
func (p Polynomial) Derivative() Polynomial {
	if len(p.coeffs) <= 1 {
		return Polynomial{}
	}
	//
	var tmp big.Rat
	//
	coeffs := make([]big.Rat, len(p.coeffs)-1)
	//
	for i := 1; i < len(p.coeffs); i++ {
		tmp.SetInt64(int64(i))
		coeffs[i-1].Mul(&p.coeffs[i], &tmp)
	}
	// Over the rationals, the derivative of a non-constant polynomial has
	// degree exactly one less.
	return Polynomial{coeffs}
}

// Eval evaluates this polynomial at a given rational point, using Horner's
// rule.
func (p Polynomial) Eval(x *big.Rat) *big.Rat {
	acc := new(big.Rat)
	//
	for i := len(p.coeffs) - 1; i >= 0; i-- {
		acc.Mul(acc, x)
		acc.Add(acc, &p.coeffs[i])
	}
	//
	return acc
}

// Compose substitutes a given polynomial for the variable of this polynomial,
// returning the composition p(q(x)).
func (p Polynomial) Compose(q Polynomial) Polynomial {
	var acc Polynomial
	//
	for i := len(p.coeffs) - 1; i >= 0; i-- {
		acc = acc.Mul(q).Add(Constant(&p.coeffs[i]))
	}
	//
	return acc
}

// Monic returns this polynomial scaled by the inverse of its leading
// coefficient, along with that coefficient.  This will panic if applied to
// the zero polynomial.
func (p Polynomial) Monic() (Polynomial, *big.Rat) {
	lc, ok := p.LeadingCoefficient()
	if !ok {
		panic("zero polynomial cannot be made monic")
	}
	//
	return p.Scale(new(big.Rat).Inv(lc)), lc
}

// Equal determines whether this polynomial and another have identical
// coefficients.
func (p Polynomial) Equal(q Polynomial) bool {
	return p.Cmp(q) == 0
}

// Cmp provides a total ordering of polynomials: first by degree, then by
// comparing coefficients from the highest exponent downwards.
func (p Polynomial) Cmp(q Polynomial) int {
	if len(p.coeffs) != len(q.coeffs) {
		if len(p.coeffs) < len(q.coeffs) {
			return -1
		}
		//
		return 1
	}
	//
	for i := len(p.coeffs) - 1; i >= 0; i-- {
		if c := p.coeffs[i].Cmp(&q.coeffs[i]); c != 0 {
			return c
		}
	}
	//
	return 0
}

func (p Polynomial) String() string {
	return p.Format("x", ASCII)
}

// ratOne is used for monic checks, and must never be mutated.
var ratOne = big.NewRat(1, 1)

// Trim any trailing zero coefficients, such that the representation invariant
// is restored.
func trim(coeffs []big.Rat) []big.Rat {
	i := len(coeffs)
	//
	for i > 0 && coeffs[i-1].Sign() == 0 {
		i--
	}
	//
	return coeffs[:i]
}
