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

// Params is a read-only snapshot of the constants a Context derives from its
// modulus.  Two contexts over the same modulus agree on every field, which
// makes the struct directly comparable in tests and lookup tables.
type Params struct {
	// The modulus n.
	Modulus uint32
	// Bit length of the modulus; the radix is R = 2^RBits.
	RBits uint
	// R − 1.
	RMask uint32
	// R⁻¹ mod n.
	RInv uint32
	// −n⁻¹ mod R.
	NInv uint32
	// R² mod n.
	R2 uint32
}

// Params returns the parameters derived for this context.
func (c *Context) Params() Params {
	return Params{
		Modulus: c.n,
		RBits:   c.rBits,
		RMask:   c.rMask,
		RInv:    c.rInv,
		NInv:    c.nInv,
		R2:      c.r2,
	}
}

// KnownModulus pairs a conventional name with the parameters of a modulus in
// widespread use.
type KnownModulus struct {
	Name   string
	Params Params
}

// LookupModulus resolves the name of a well-known modulus against the
// generated table.
func LookupModulus(name string) (KnownModulus, bool) {
	for _, m := range KnownModuli {
		if m.Name == name {
			return m, true
		}
	}
	// Unknown
	return KnownModulus{}, false
}
