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
package montgomery

import "fmt"

// ReciprocalMod computes R⁻¹ mod n for the radix R = 2^rBits, using a
// simplification of the extended Euclidean algorithm.  The result lies in
// [1, n).  When n is even, R and n share a factor of two and
// ErrNoReciprocal is returned; for odd n the inverse always exists.
func ReciprocalMod(n uint32, rBits uint) (uint32, error) {
	return reciprocal(uint32(1)<<rBits, n)
}

// reciprocal computes v⁻¹ mod n.  Rather than tracking the full Bezout
// coefficient pair for both operands, only the coefficient attached to v is
// carried through the Euclidean recurrence, which is all that is needed for
// a one-sided inverse.  Fails with ErrNoReciprocal when gcd(v, n) ≠ 1.
func reciprocal(v, n uint32) (uint32, error) {
	var (
		x, y = n, v % n
		a, b = int64(0), int64(1)
	)
	//
	for y != 0 {
		a, b = b, a-int64(x/y)*b
		x, y = y, x%y
	}
	// The surviving remainder is gcd(v, n); anything other than 1 means no
	// inverse exists.
	if x != 1 {
		return 0, fmt.Errorf("%w: gcd(%d, %d) = %d", ErrNoReciprocal, v, n, x)
	}
	// Normalise the coefficient into [0, n).  A true modulo is required
	// here: the native remainder leaves negative coefficients negative.
	a %= int64(n)
	if a < 0 {
		a += int64(n)
	}
	//
	return uint32(a), nil
}

// HenselLift computes the unique x in [0, 2^rBits) satisfying
// n·x ≡ −1 (mod 2^rBits), by lifting the solution bit by bit à la Hensel.
// This is the 2-adic counterpart of ReciprocalMod: writing R = 2^rBits and
// h for the result, the two are tied by the exact integer identity
// n·h + 1 = R·(R⁻¹ mod n).  rBits must be at least 1; when n is even no
// solution exists and ErrNoReciprocal is returned.
func HenselLift(n uint32, rBits uint) (uint32, error) {
	if n%2 == 0 {
		return 0, fmt.Errorf("%w: gcd(%d, 2^%d) > 1", ErrNoReciprocal, n, rBits)
	}
	// x = 1 solves n·x + 1 ≡ 0 (mod 2) for any odd n.
	var (
		prev = uint64(1)
		step = uint64(2)
		mask = uint64(3)
	)
	// Lift from 2^(k-1) to 2^k.  The previous solution is already correct
	// modulo 2^(k-1), so at most two candidates need checking.
	for k := uint(2); k <= rBits; k++ {
		var a uint64
		//
		for t := uint64(0); ; t++ {
			a = prev + step*t
			if (uint64(n)*a+1)&mask == 0 {
				break
			}
		}
		//
		mask = mask*2 + 1
		step *= 2
		prev = a
	}
	//
	return uint32(prev), nil
}
