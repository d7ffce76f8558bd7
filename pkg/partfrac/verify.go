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
	"fmt"

	"github.com/consensys/go-partfrac/pkg/poly"
)

// ErrMismatch indicates a decomposition which does not recombine to the
// rational function it was checked against.
var ErrMismatch = errors.New("decomposition does not match")

// Verify checks exactly that a decomposition recombines to num/den, using
// cross multiplication to avoid dividing:
//
//	n/m == num/den  <==>  n*den == num*m
//
// This fails with poly.ErrDivisionByZero if den is zero, and with ErrMismatch
// if the identity does not hold.
func Verify(num, den poly.Polynomial, d *Decomposition) error {
	if den.IsZero() {
		return poly.ErrDivisionByZero
	}
	//
	n, m := d.Combine()
	//
	if !n.Mul(den).Equal(num.Mul(m)) {
		return fmt.Errorf("%w: (%s)/(%s) versus (%s)/(%s)", ErrMismatch, n, m, num, den)
	}
	//
	return nil
}
