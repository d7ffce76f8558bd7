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
	"math/big"
	"sort"
)

// Largest candidate used during trial division.  Beyond this bound,
// factorisation falls back on Pollard's rho algorithm.
const trialBound = 1 << 14

// Divisors returns every positive divisor of a non-zero integer, in ascending
// order.  For example, the divisors of -12 are 1, 2, 3, 4, 6 and 12.
func Divisors(n *big.Int) []*big.Int {
	abs := new(big.Int).Abs(n)
	//
	if abs.Sign() == 0 {
		panic("divisors of zero")
	}
	//
	var (
		divisors = []*big.Int{big.NewInt(1)}
		primes   = primeFactors(abs)
	)
	// Group repeated primes together.
	sort.Slice(primes, func(i, j int) bool {
		return primes[i].Cmp(primes[j]) < 0
	})
	// For each prime power p^e, multiply every divisor found so far by each
	// of p, p^2, ..., p^e.
	for i := 0; i < len(primes); {
		j := i
		for j < len(primes) && primes[j].Cmp(primes[i]) == 0 {
			j++
		}
		//
		count := len(divisors)
		power := big.NewInt(1)
		//
		for ; i < j; i++ {
			power = new(big.Int).Mul(power, primes[i])
			//
			for k := 0; k < count; k++ {
				divisors = append(divisors, new(big.Int).Mul(divisors[k], power))
			}
		}
	}
	//
	sort.Slice(divisors, func(i, j int) bool {
		return divisors[i].Cmp(divisors[j]) < 0
	})
	//
	return divisors
}

// primeFactors returns the prime factorisation of a positive integer, with
// repetition and in no particular order.
func primeFactors(n *big.Int) []*big.Int {
	var (
		factors []*big.Int
		rem     = new(big.Int).Set(n)
		tmp     big.Int
	)
	//
	for c := int64(2); c <= trialBound; {
		candidate := big.NewInt(c)
		// Remove every occurrence of this candidate.
		for tmp.Mod(rem, candidate).Sign() == 0 {
			factors = append(factors, big.NewInt(c))
			rem.Div(rem, candidate)
		}
		// Once the candidate squared exceeds the remainder, the remainder is
		// one or prime.
		if tmp.Mul(candidate, candidate).Cmp(rem) > 0 {
			if rem.Cmp(big.NewInt(1)) != 0 {
				factors = append(factors, rem)
			}
			//
			return factors
		}
		//
		if c == 2 {
			c = 3
		} else {
			c += 2
		}
	}
	// No small factors remain, so split whatever is left recursively.
	return append(factors, rhoFactors(rem)...)
}

// Recursively split a number carrying no small prime factors into primes.
func rhoFactors(n *big.Int) []*big.Int {
	if n.ProbablyPrime(20) {
		return []*big.Int{n}
	}
	//
	d := pollardRho(n)
	rest := new(big.Int).Div(n, d)
	//
	return append(rhoFactors(d), rhoFactors(rest)...)
}

// pollardRho finds a non-trivial factor of an odd composite number, using
// Floyd cycle detection over the sequence x -> x^2 + c (mod n).  Whenever a
// cycle collapses without exposing a factor, the offset c is bumped and the
// walk restarted.
func pollardRho(n *big.Int) *big.Int {
	one := big.NewInt(1)
	//
	for c := int64(1); ; c++ {
		var (
			x      = big.NewInt(2)
			y      = big.NewInt(2)
			d      = big.NewInt(1)
			offset = big.NewInt(c)
			diff   big.Int
		)
		//
		step := func(v *big.Int) *big.Int {
			next := new(big.Int).Mul(v, v)
			next.Add(next, offset)
			//
			return next.Mod(next, n)
		}
		//
		for d.Cmp(one) == 0 {
			x = step(x)
			y = step(step(y))
			diff.Sub(x, y)
			diff.Abs(&diff)
			d.GCD(nil, nil, &diff, n)
		}
		//
		if d.Cmp(n) != 0 {
			return d
		}
	}
}
