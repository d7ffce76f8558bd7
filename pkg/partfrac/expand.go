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
	"fmt"

	"github.com/consensys/go-partfrac/pkg/poly"
)

// ExpandTerm refines a term u/v^k into a sum of terms d1/v^j1 + ... + dn/v^jn
// whose numerators all have degree strictly below the base degree, by
// expanding the numerator in base v:
//
//	u = dm*v^m + ... + d1*v + d0  ==>  u/v^k = dm/v^(k-m) + ... + d0/v^k
//
// Terms whose power is already one are returned unchanged, zero digits are
// dropped, and the resulting terms are ordered by ascending power.  This
// fails with ErrInvariant if the term is not proper, since then the expansion
// would need non-positive powers.
func ExpandTerm(t Term) ([]Term, error) {
	if t.Power <= 1 || t.Numerator.IsZero() {
		return []Term{t}, nil
	}
	//
	digits, err := poly.Expand(t.Numerator, t.Base)
	if err != nil {
		return nil, err
	}
	// A proper term has m < k, meaning at most k digits.
	if len(digits) > int(t.Power) {
		return nil, fmt.Errorf("%w: term %s is not proper", ErrInvariant, t.String())
	}
	//
	var terms []Term
	//
	for i := len(digits) - 1; i >= 0; i-- {
		if digits[i].IsZero() {
			continue
		}
		//
		terms = append(terms, Term{digits[i], t.Base, t.Power - uint(i)})
	}
	//
	return terms, nil
}
