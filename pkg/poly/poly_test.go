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
	"testing"
)

func Test_Poly_Zero(t *testing.T) {
	var zero Polynomial
	//
	if !zero.IsZero() || !zero.IsConstant() {
		t.Errorf("zero value is not the zero polynomial")
	}
	//
	if zero.Degree().Cmp(NoDegree) != 0 {
		t.Errorf("zero polynomial has degree %s", zero.Degree())
	}
	//
	if zero.String() != "0" {
		t.Errorf("zero polynomial printed as %s", zero.String())
	}
	// Trailing zeros must be trimmed on construction.
	if !FromInt64s(0, 0, 0).IsZero() {
		t.Errorf("trailing zeros not trimmed")
	}
}

func Test_Poly_Degree(t *testing.T) {
	checkDegree(t, FromInt64s(5), 0)
	checkDegree(t, FromInt64s(0, 1), 1)
	checkDegree(t, FromInt64s(1, 0, 0, 2), 3)
	checkDegree(t, FromInt64s(1, 2, 0, 0), 1)
	//
	if NoDegree.IsFinite() {
		t.Errorf("NoDegree is finite")
	}
	//
	if NoDegree.String() != "-∞" {
		t.Errorf("NoDegree printed as %s", NoDegree.String())
	}
	//
	if NoDegree.Add(NewDegree(3)).IsFinite() {
		t.Errorf("NoDegree + 3 is finite")
	}
	//
	if NewDegree(2).Add(NewDegree(3)).Cmp(NewDegree(5)) != 0 {
		t.Errorf("2 + 3 != 5")
	}
	//
	if NoDegree.Cmp(NewDegree(0)) >= 0 {
		t.Errorf("NoDegree not below degree 0")
	}
	//
	if NoDegree.Max(NewDegree(0)).Cmp(NewDegree(0)) != 0 {
		t.Errorf("max(NoDegree, 0) != 0")
	}
}

func Test_Poly_Arithmetic(t *testing.T) {
	u := FromInt64s(1, 2, 3)  // 3x^2 + 2x + 1
	v := FromInt64s(-1, 0, 5) // 5x^2 - 1
	//
	checkEqual(t, u.Add(v), FromInt64s(0, 2, 8))
	checkEqual(t, u.Sub(v), FromInt64s(2, 2, -2))
	checkEqual(t, u.Neg(), FromInt64s(-1, -2, -3))
	checkEqual(t, u.Mul(v), FromInt64s(-1, -2, 2, 10, 15))
	// Cancellation of leading terms
	checkEqual(t, u.Sub(FromInt64s(0, 0, 3)), FromInt64s(1, 2))
	// Absorbing zero
	checkEqual(t, u.Mul(Polynomial{}), Polynomial{})
	checkEqual(t, u.Add(Polynomial{}), u)
}

func Test_Poly_Scale(t *testing.T) {
	u := FromInt64s(1, -2, 4)
	//
	checkEqual(t, u.Scale(big.NewRat(1, 2)), NewPolynomial(big.NewRat(1, 2), big.NewRat(-1, 1), big.NewRat(2, 1)))
	checkEqual(t, u.Scale(big.NewRat(0, 1)), Polynomial{})
	checkEqual(t, u.Scale(big.NewRat(-1, 1)), u.Neg())
}

func Test_Poly_Pow(t *testing.T) {
	x1 := FromInt64s(1, 1) // x + 1
	//
	checkEqual(t, x1.Pow(0), FromInt64s(1))
	checkEqual(t, x1.Pow(1), x1)
	checkEqual(t, x1.Pow(2), FromInt64s(1, 2, 1))
	checkEqual(t, x1.Pow(5), FromInt64s(1, 5, 10, 10, 5, 1))
	// Zero polynomial
	checkEqual(t, Polynomial{}.Pow(0), FromInt64s(1))
	checkEqual(t, Polynomial{}.Pow(3), Polynomial{})
}

func Test_Poly_Derivative(t *testing.T) {
	// d/dx (x^3 - 2x^2 + 7) = 3x^2 - 4x
	checkEqual(t, FromInt64s(7, 0, -2, 1).Derivative(), FromInt64s(0, -4, 3))
	// Constants vanish
	checkEqual(t, FromInt64s(42).Derivative(), Polynomial{})
	checkEqual(t, Polynomial{}.Derivative(), Polynomial{})
}

func Test_Poly_Eval(t *testing.T) {
	// p(x) = x^2 - 3x + 2 has roots 1 and 2.
	p := FromInt64s(2, -3, 1)
	//
	checkRat(t, p.Eval(big.NewRat(1, 1)), big.NewRat(0, 1))
	checkRat(t, p.Eval(big.NewRat(2, 1)), big.NewRat(0, 1))
	checkRat(t, p.Eval(big.NewRat(0, 1)), big.NewRat(2, 1))
	checkRat(t, p.Eval(big.NewRat(1, 2)), big.NewRat(3, 4))
}

func Test_Poly_Compose(t *testing.T) {
	// p(x) = x^2 + 1 composed with q(x) = x - 1 gives x^2 - 2x + 2.
	p := FromInt64s(1, 0, 1)
	q := FromInt64s(-1, 1)
	//
	checkEqual(t, p.Compose(q), FromInt64s(2, -2, 1))
	// Composition with a constant evaluates the polynomial.
	checkEqual(t, p.Compose(FromInt64s(3)), FromInt64s(10))
}

func Test_Poly_Monic(t *testing.T) {
	u := FromInt64s(10, -5, 5) // 5x^2 - 5x + 10
	//
	monic, lead := u.Monic()
	//
	if !monic.IsMonic() {
		t.Errorf("monic form is not monic: %s", monic)
	}
	//
	checkEqual(t, monic, FromInt64s(2, -1, 1))
	checkRat(t, lead, big.NewRat(5, 1))
	// Already monic
	monic, _ = FromInt64s(1, 1).Monic()
	checkEqual(t, monic, FromInt64s(1, 1))
	//
	if FromInt64s(0, 2).IsMonic() || (Polynomial{}).IsMonic() {
		t.Errorf("non-monic polynomial reported as monic")
	}
}

func Test_Poly_Cmp(t *testing.T) {
	// Lower degree comes first
	checkCmp(t, FromInt64s(100), FromInt64s(0, 1), -1)
	// Same degree compares leading coefficients first
	checkCmp(t, FromInt64s(9, 1), FromInt64s(0, 2), -1)
	// Then lower coefficients
	checkCmp(t, FromInt64s(-4, 1), FromInt64s(3, 1), -1)
	checkCmp(t, FromInt64s(3, 1), FromInt64s(3, 1), 0)
	// Zero below everything
	checkCmp(t, Polynomial{}, FromInt64s(-1000), -1)
}

func Test_Poly_Coefficient(t *testing.T) {
	u := FromInt64s(1, 0, 3)
	//
	checkRat(t, u.Coefficient(0), big.NewRat(1, 1))
	checkRat(t, u.Coefficient(1), big.NewRat(0, 1))
	checkRat(t, u.Coefficient(2), big.NewRat(3, 1))
	// Beyond the degree
	checkRat(t, u.Coefficient(10), big.NewRat(0, 1))
	// Leading coefficient of zero does not exist
	if _, ok := (Polynomial{}).LeadingCoefficient(); ok {
		t.Errorf("zero polynomial has a leading coefficient")
	}
}

func Test_Poly_Format(t *testing.T) {
	p := NewPolynomial(big.NewRat(-3, 5), big.NewRat(0, 1), big.NewRat(1, 1), big.NewRat(-2, 1))
	// -2x^3 + x^2 - 3/5
	checkString(t, p.Format("x", ASCII), "-2*x^3 + x^2 - 3/5")
	checkString(t, p.Format("x", Unicode), "-2x³ + x² - 3/5")
	checkString(t, p.Format("x", LaTeX), "-2x^{3} + x^{2} - \\frac{3}{5}")
	// Attached rational coefficients are parenthesised.
	q := NewPolynomial(big.NewRat(0, 1), big.NewRat(3, 5))
	checkString(t, q.Format("x", ASCII), "(3/5)*x")
	checkString(t, q.Format("x", Unicode), "(3/5)x")
	checkString(t, q.Format("x", LaTeX), "\\frac{3}{5}x")
	// Alternative variable names follow through.
	checkString(t, FromInt64s(1, 1).Format("y", ASCII), "y + 1")
	// Unit coefficients are elided.
	checkString(t, FromInt64s(0, -1, 0, 1).Format("x", ASCII), "x^3 - x")
	checkString(t, FromInt64s(2).Format("x", ASCII), "2")
}

// ============================================================================
// Helpers
// ============================================================================

func checkDegree(t *testing.T, p Polynomial, expected uint) {
	t.Helper()
	//
	if !p.Degree().IsFinite() || p.Degree().Uint() != expected {
		t.Errorf("polynomial %s has degree %s, expected %d", p, p.Degree(), expected)
	}
}

func checkEqual(t *testing.T, actual Polynomial, expected Polynomial) {
	t.Helper()
	//
	if !actual.Equal(expected) {
		t.Errorf("got %s, expected %s", actual, expected)
	}
}

func checkRat(t *testing.T, actual *big.Rat, expected *big.Rat) {
	t.Helper()
	//
	if actual.Cmp(expected) != 0 {
		t.Errorf("got %s, expected %s", actual, expected)
	}
}

func checkCmp(t *testing.T, lhs Polynomial, rhs Polynomial, expected int) {
	t.Helper()
	//
	if lhs.Cmp(rhs) != expected {
		t.Errorf("Cmp(%s, %s) = %d, expected %d", lhs, rhs, lhs.Cmp(rhs), expected)
	}
	// Anti-symmetry
	if rhs.Cmp(lhs) != -expected {
		t.Errorf("Cmp(%s, %s) = %d, expected %d", rhs, lhs, rhs.Cmp(lhs), -expected)
	}
}

func checkString(t *testing.T, actual string, expected string) {
	t.Helper()
	//
	if actual != expected {
		t.Errorf("got %q, expected %q", actual, expected)
	}
}
