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

import (
	"cmp"
	"math"
	"math/bits"
)

// Element is a residue in Montgomery form: the value stored for some integer
// x in [0, n) is x·R mod n, relative to the Context that produced it.  It is
// defined as an array to prevent mistaken use of arithmetic operators, or
// naive mixing with plain residues.  The zero Element represents 0 under
// every context.
type Element [1]uint32

// Context holds the parameters derived from an odd modulus below 2³¹, and
// carries out all arithmetic on Montgomery-form residues.  A Context is
// immutable once constructed and may be shared freely across goroutines.
type Context struct {
	// The modulus n.
	n uint32
	// Exponent of the radix: R = 2^rBits, the smallest power of two
	// exceeding n.
	rBits uint
	// R − 1, for masking in place of reduction modulo R.
	rMask uint32
	// R⁻¹ mod n.
	rInv uint32
	// −n⁻¹ mod R; equivalently the exact quotient (R·rInv − 1) / n.
	nInv uint32
	// R² mod n, used to convert plain residues in without division.
	r2 uint32
}

// BitLength returns the number of bits needed to represent v: the smallest k
// for which v < 2^k.  BitLength(0) is 0.
func BitLength(v uint32) uint {
	return uint(bits.Len32(v))
}

// New derives the Montgomery parameters for the given modulus.  The modulus
// must be odd and lie in [3, 2³¹−1]; anything else is rejected with a
// ModulusError identifying the offending condition.
func New(modulus uint32) (*Context, error) {
	if modulus < 3 {
		return nil, &ModulusError{modulus, ErrModulusTooSmall}
	}

	if modulus%2 == 0 {
		return nil, &ModulusError{modulus, ErrModulusEven}
	}

	if modulus > math.MaxInt32 {
		return nil, &ModulusError{modulus, ErrModulusTooLarge}
	}
	// Given the bounds above, rBits ≤ 31 and so R, R² and products of
	// residues all fit comfortably in 64 bits.
	rBits := BitLength(modulus)
	r := uint64(1) << rBits
	//
	rInv, err := ReciprocalMod(modulus, rBits)
	// Unreachable for an odd modulus, but reported rather than assumed.
	if err != nil {
		return nil, err
	}
	// R·rInv − 1 is an exact multiple of the modulus, so this division has
	// no remainder.
	nInv := uint32((r*uint64(rInv) - 1) / uint64(modulus))
	//
	return &Context{
		n:     modulus,
		rBits: rBits,
		rMask: uint32(r - 1),
		rInv:  rInv,
		nInv:  nInv,
		r2:    uint32(r * r % uint64(modulus)),
	}, nil
}

// Modulus returns the modulus this context was built for.
func (c *Context) Modulus() uint32 {
	return c.n
}

// redc reduces x in [0, R·n) to x·R⁻¹ mod n.  This is the Montgomery
// reduction at the heart of every operation: the multiple of n which clears
// the low rBits bits of x is found with a masked multiply, after which
// division by R collapses to a shift.
func (c *Context) redc(x uint64) uint32 {
	s := ((x & uint64(c.rMask)) * uint64(c.nInv)) & uint64(c.rMask)
	// x + s·n is divisible by R, and below 2·R·n.
	t := x + s*uint64(c.n)
	u := uint32(t >> c.rBits)
	// At most one correction needed.
	if u >= c.n {
		u -= c.n
	}
	//
	return u
}

// ConvertIn maps a plain residue into Montgomery form, as REDC(x·R² mod n).
// Arguments at or above the modulus are first reduced.
func (c *Context) ConvertIn(x uint32) Element {
	if x >= c.n {
		x %= c.n
	}
	//
	return Element{c.redc(uint64(x) * uint64(c.r2))}
}

// ConvertOut maps a Montgomery-form value back to the plain residue it
// represents, in [0, n).
func (c *Context) ConvertOut(x Element) uint32 {
	return c.redc(uint64(x[0]))
}

// Multiply returns the product of two Montgomery-form values, itself in
// Montgomery form.  One multiply, one masked multiply, an add, a shift and a
// conditional subtraction; no division anywhere.
func (c *Context) Multiply(a, b Element) Element {
	return Element{c.redc(uint64(a[0]) * uint64(b[0]))}
}

// Add returns a + b.
func (c *Context) Add(a, b Element) Element {
	// Montgomery form is linear, so addition acts directly on the
	// representations.  The sum is below 2n < 2³², hence a single
	// correction suffices.
	val := a[0] + b[0]
	if val >= c.n {
		val -= c.n
	}
	//
	return Element{val}
}

// Sub returns a − b.
func (c *Context) Sub(a, b Element) Element {
	const negMask uint32 = 1 << 31

	// Residues stay below 2³¹, so a borrow is visible in the top bit.
	val := a[0] - b[0]
	if val&negMask != 0 {
		val += c.n
	}
	//
	return Element{val}
}

// Double returns 2a.
func (c *Context) Double(a Element) Element {
	return c.Add(a, a)
}

// Half returns the value whose double is a.  For an odd residue the modulus
// is added first, which makes the sum even without leaving the class mod n.
func (c *Context) Half(a Element) Element {
	val := a[0]
	if val&1 == 0 {
		return Element{val >> 1}
	}
	//
	return Element{(val + c.n) >> 1}
}

// One returns the Montgomery form of 1, i.e. R mod n.  It is the neutral
// element of Multiply.
func (c *Context) One() Element {
	return c.ConvertIn(1)
}

// Exp raises a to the e-th power by square and multiply, staying in the
// Montgomery domain throughout.  Exp(a, 0) is One().
func (c *Context) Exp(a Element, e uint64) Element {
	result := c.One()
	//
	for {
		if e&1 == 1 {
			result = c.Multiply(result, a)
		}
		// div 2
		e >>= 1
		//
		if e == 0 {
			break
		}
		//
		a = c.Multiply(a, a)
	}

	return result
}

// Inverse returns a⁻¹, or ErrNoReciprocal when the plain value of a shares a
// factor with the modulus.  Moduli are merely odd rather than prime, so
// noninvertible residues exist; zero is never invertible.
func (c *Context) Inverse(a Element) (Element, error) {
	inv, err := reciprocal(c.ConvertOut(a), c.n)
	if err != nil {
		return Element{}, err
	}
	//
	return c.ConvertIn(inv), nil
}

// Cmp compares the plain values of a and b, returning −1, 0 or 1.
func (c *Context) Cmp(a, b Element) int {
	return cmp.Compare(c.ConvertOut(a), c.ConvertOut(b))
}
