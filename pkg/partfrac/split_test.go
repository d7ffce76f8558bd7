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
	"math/big"
	"testing"

	"github.com/consensys/go-partfrac/pkg/factor"
	"github.com/consensys/go-partfrac/pkg/poly"
)

func Test_SplitTwo_01(t *testing.T) {
	var (
		u  = poly.FromInt64s(3)
		v1 = poly.FromInt64s(0, 1)
		v2 = poly.FromInt64s(1, 1).Pow(2)
	)
	// 3/(x*(x+1)^2) = 3/x + (-3x-6)/(x+1)^2
	checkSplitTwo(t, u, v1, v2, poly.FromInt64s(3), poly.FromInt64s(-6, -3))
}

func Test_SplitTwo_02(t *testing.T) {
	var (
		u  = poly.FromInt64s(-153, 34, 12)
		v1 = poly.FromInt64s(-4, 1).Pow(2)
		v2 = poly.FromInt64s(3, 1)
	)
	//
	checkSplitTwo(t, u, v1, v2, poly.FromInt64s(-35, 15), poly.FromInt64s(-3))
}

func Test_SplitTwo_03(t *testing.T) {
	var (
		u  = poly.FromInt64s(-9, -10)
		v1 = poly.FromInt64s(1, 1)
		v2 = poly.FromInt64s(2, 1)
	)
	//
	checkSplitTwo(t, u, v1, v2, poly.FromInt64s(1), poly.FromInt64s(-11))
}

func Test_SplitTwo_ZeroNumerator(t *testing.T) {
	var zero poly.Polynomial
	//
	checkSplitTwo(t, zero, poly.FromInt64s(1, 1), poly.FromInt64s(2, 1), zero, zero)
}

func Test_SplitTwo_Identity(t *testing.T) {
	var (
		numerators = []poly.Polynomial{
			poly.FromInt64s(1),
			poly.FromInt64s(0, 7),
			poly.FromInt64s(-3, 2, 1),
			poly.FromInt64s(5, 0, 0, 2),
		}
		v1 = poly.FromInt64s(-4, 1).Pow(2)
		v2 = poly.FromInt64s(1, 0, 1).Mul(poly.FromInt64s(3, 1))
	)
	// deg(v1*v2) = 5, so all numerators above are proper.
	for _, u := range numerators {
		u1, u2, err := SplitTwo(u, v1, v2)
		if err != nil {
			t.Fatalf("splitting %s: %s", u, err)
		}
		//
		checkIdentity(t, u, u1, u2, v1, v2)
	}
}

func Test_SplitTwo_NotCoprime(t *testing.T) {
	var (
		v1 = poly.FromInt64s(0, 1).Mul(poly.FromInt64s(1, 1))
		v2 = poly.FromInt64s(1, 1).Mul(poly.FromInt64s(2, 1))
	)
	//
	_, _, err := SplitTwo(poly.FromInt64s(1), v1, v2)
	//
	if !errors.Is(err, ErrNotCoprime) {
		t.Fatalf("expected ErrNotCoprime, got %v", err)
	}
}

func Test_SplitTwo_Improper(t *testing.T) {
	var (
		v1 = poly.FromInt64s(0, 1)
		v2 = poly.FromInt64s(1, 1)
	)
	// deg(u) == deg(v1*v2) is already improper
	_, _, err := SplitTwo(poly.FromInt64s(0, 0, 1), v1, v2)
	//
	if !errors.Is(err, ErrImproper) {
		t.Fatalf("expected ErrImproper, got %v", err)
	}
}

func Test_SplitTwo_ZeroFactor(t *testing.T) {
	var zero poly.Polynomial
	//
	_, _, err := SplitTwo(poly.FromInt64s(1), zero, poly.FromInt64s(1, 1))
	//
	if !errors.Is(err, poly.ErrDivisionByZero) {
		t.Fatalf("expected ErrDivisionByZero, got %v", err)
	}
}

func Test_Split_01(t *testing.T) {
	var (
		u = poly.FromInt64s(-153, 34, 12)
		f = factor.Factorization{
			Constant: *big.NewRat(5, 1),
			Factors: []factor.Factor{
				{Base: poly.FromInt64s(-4, 1), Multiplicity: 2},
				{Base: poly.FromInt64s(3, 1), Multiplicity: 1},
			},
		}
	)
	//
	terms, leftover, err := Split(u, f)
	if err != nil {
		t.Fatal(err)
	} else if !leftover.IsZero() {
		t.Fatalf("unexpected leftover %s", leftover)
	}
	//
	checkTerms(t, terms, []Term{
		{poly.FromInt64s(-7, 3), poly.FromInt64s(-4, 1), 2},
		{poly.NewPolynomial(big.NewRat(-3, 5)), poly.FromInt64s(3, 1), 1},
	})
}

func Test_Split_ConstantOnly(t *testing.T) {
	var (
		u = poly.FromInt64s(1, 3)
		f = factor.Factorization{Constant: *big.NewRat(2, 1)}
	)
	//
	terms, leftover, err := Split(u, f)
	if err != nil {
		t.Fatal(err)
	} else if len(terms) != 0 {
		t.Fatalf("unexpected terms %v", terms)
	}
	//
	checkPoly(t, "leftover", leftover, poly.NewPolynomial(big.NewRat(1, 2), big.NewRat(3, 2)))
}

func Test_Split_ConstantFactor(t *testing.T) {
	var (
		u = poly.FromInt64s(1)
		f = factor.Factorization{
			Constant: *big.NewRat(1, 1),
			Factors: []factor.Factor{
				{Base: poly.FromInt64s(2), Multiplicity: 2},
				{Base: poly.FromInt64s(1, 1), Multiplicity: 1},
			},
		}
	)
	// The constant factor 2^2 folds into the numerator.
	terms, leftover, err := Split(u, f)
	if err != nil {
		t.Fatal(err)
	} else if !leftover.IsZero() {
		t.Fatalf("unexpected leftover %s", leftover)
	}
	//
	checkTerms(t, terms, []Term{
		{poly.NewPolynomial(big.NewRat(1, 4)), poly.FromInt64s(1, 1), 1},
	})
}

func Test_Split_ZeroNumerator(t *testing.T) {
	var (
		zero poly.Polynomial
		f    = factor.Factorization{
			Constant: *big.NewRat(1, 1),
			Factors:  []factor.Factor{{Base: poly.FromInt64s(1, 1), Multiplicity: 1}},
		}
	)
	//
	terms, leftover, err := Split(zero, f)
	if err != nil {
		t.Fatal(err)
	} else if len(terms) != 0 || !leftover.IsZero() {
		t.Fatalf("expected empty split, got %v + %s", terms, leftover)
	}
}

func Test_Split_Improper(t *testing.T) {
	f := factor.Factorization{
		Constant: *big.NewRat(1, 1),
		Factors:  []factor.Factor{{Base: poly.FromInt64s(1, 1), Multiplicity: 1}},
	}
	//
	_, _, err := Split(poly.FromInt64s(0, 0, 1), f)
	//
	if !errors.Is(err, ErrImproper) {
		t.Fatalf("expected ErrImproper, got %v", err)
	}
}

func Test_Split_ZeroConstant(t *testing.T) {
	f := factor.Factorization{
		Factors: []factor.Factor{{Base: poly.FromInt64s(1, 1), Multiplicity: 1}},
	}
	//
	_, _, err := Split(poly.FromInt64s(1), f)
	//
	if !errors.Is(err, ErrInvariant) {
		t.Fatalf("expected ErrInvariant, got %v", err)
	}
}

// ===================================================================
// Test Helpers
// ===================================================================

func checkSplitTwo(t *testing.T, u, v1, v2, want1, want2 poly.Polynomial) {
	t.Helper()
	//
	u1, u2, err := SplitTwo(u, v1, v2)
	//
	if err != nil {
		t.Fatal(err)
	}
	//
	checkPoly(t, "u1", u1, want1)
	checkPoly(t, "u2", u2, want2)
	checkIdentity(t, u, u1, u2, v1, v2)
}

// Check the defining identity u == u1*v2 + u2*v1, along with the degree
// bounds making both halves proper.
func checkIdentity(t *testing.T, u, u1, u2, v1, v2 poly.Polynomial) {
	t.Helper()
	//
	sum := u1.Mul(v2).Add(u2.Mul(v1))
	//
	if !sum.Equal(u) {
		t.Fatalf("identity broken: %s != %s", sum, u)
	}
	//
	if u1.Degree().Cmp(v1.Degree()) >= 0 {
		t.Fatalf("u1 = %s not proper over %s", u1, v1)
	}
	//
	if u2.Degree().Cmp(v2.Degree()) >= 0 {
		t.Fatalf("u2 = %s not proper over %s", u2, v2)
	}
}

func checkPoly(t *testing.T, name string, got, want poly.Polynomial) {
	t.Helper()
	//
	if !got.Equal(want) {
		t.Fatalf("%s: got %s, expected %s", name, got, want)
	}
}

func checkTerms(t *testing.T, got, want []Term) {
	t.Helper()
	//
	if len(got) != len(want) {
		t.Fatalf("got %d terms, expected %d", len(got), len(want))
	}
	//
	for i := range got {
		checkPoly(t, "numerator", got[i].Numerator, want[i].Numerator)
		checkPoly(t, "base", got[i].Base, want[i].Base)
		//
		if got[i].Power != want[i].Power {
			t.Fatalf("power: got %d, expected %d", got[i].Power, want[i].Power)
		}
	}
}
