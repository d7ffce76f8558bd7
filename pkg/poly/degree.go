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

import "fmt"

const knownDegree = 0
const negativeInfinity = 1

// NoDegree represents the degree of the zero polynomial, which compares below
// every natural degree.  With this convention, deg(p*q) = deg(p) + deg(q)
// holds without exception.
var NoDegree = Degree{0, negativeInfinity}

// Degree represents the degree of a polynomial, which is either a natural
// number or negative infinity (for the zero polynomial).
type Degree struct {
	// value of this degree, or zero when this is negative infinity.
	val uint
	// sign indicates whether this is a natural degree or negative infinity.
	sign uint8
}

// NewDegree constructs a natural (i.e. finite) degree.
func NewDegree(val uint) Degree {
	return Degree{val, knownDegree}
}

// Add two (potentially infinite) degrees together, as arises when multiplying
// two polynomials.  Negative infinity absorbs every other degree.
func (p Degree) Add(other Degree) Degree {
	if p.sign == knownDegree && other.sign == knownDegree {
		return Degree{p.val + other.val, knownDegree}
	}
	//
	return NoDegree
}

// Cmp performs a comparison of two (potentially infinite) degrees, where
// negative infinity compares below everything except itself.
func (p Degree) Cmp(other Degree) int {
	switch {
	case p.sign == negativeInfinity && other.sign == negativeInfinity:
		return 0
	case p.sign == negativeInfinity:
		return -1
	case other.sign == negativeInfinity:
		return 1
	case p.val < other.val:
		return -1
	case p.val > other.val:
		return 1
	default:
		return 0
	}
}

// IsFinite returns true if this represents a natural degree, rather than the
// degree of the zero polynomial.
func (p Degree) IsFinite() bool {
	return p.sign == knownDegree
}

// Max determines the greatest of two degrees, as bounds the degree of a sum
// of two polynomials.
func (p Degree) Max(other Degree) Degree {
	if p.Cmp(other) >= 0 {
		return p
	}
	//
	return other
}

// Uint converts a potentially infinite degree into a natural number.  This
// will panic if this degree is negative infinity.
func (p Degree) Uint() uint {
	if p.sign != knownDegree {
		panic("cannot cast negative infinity into a natural degree")
	}
	//
	return p.val
}

func (p Degree) String() string {
	if p.sign == negativeInfinity {
		return "-∞"
	}
	//
	return fmt.Sprintf("%d", p.val)
}
