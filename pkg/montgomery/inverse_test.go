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
	"math"
	"math/big"
	"math/rand/v2"
	"testing"

	"github.com/consensys/go-montgomery/pkg/util/assert"
	"github.com/stretchr/testify/require"
)

func TestReciprocalMod(t *testing.T) {
	var i, m big.Int

	for bits := uint(2); bits <= 31; bits++ {
		for range 500 {
			n := randomOddModulus(bits)

			rInv, err := ReciprocalMod(n, bits)
			require.NoError(t, err)

			m.SetUint64(uint64(n))
			i.SetUint64(1).
				Lsh(&i, bits).
				ModInverse(&i, &m)

			assert.Equal(t, i.Uint64(), uint64(rInv), "reciprocal of 2^%d mod %d", bits, n)
		}
	}
	// Powers of two share a factor with any even modulus.
	for _, n := range []uint32{4, 100, 65536} {
		_, err := ReciprocalMod(n, BitLength(n))
		require.ErrorIs(t, err, ErrNoReciprocal)
	}
}

func TestReciprocal_Gcd(t *testing.T) {
	var i, v, m big.Int

	for range 10000 {
		n := 2 + rand.Uint32N(1<<31-2)
		x := rand.Uint32()

		m.SetUint64(uint64(n))
		v.SetUint64(uint64(x))

		actual, err := reciprocal(x, n)

		if i.GCD(nil, nil, &v, &m).Uint64() != 1 {
			require.ErrorIs(t, err, ErrNoReciprocal)
			continue
		}

		require.NoError(t, err)

		i.ModInverse(&v, &m)

		assert.Equal(t, i.Uint64(), uint64(actual), "reciprocal of %d mod %d", x, n)
	}
}

func TestHenselLift(t *testing.T) {
	// q·x ≡ −1 mod 2^r, for any odd q and any width.
	for bits := uint(1); bits <= 31; bits++ {
		for range 500 {
			n := rand.Uint32() | 1

			h, err := HenselLift(n, bits)
			require.NoError(t, err)

			mask := uint64(1)<<bits - 1

			assert.Equal(t, uint64(0), (uint64(n)*uint64(h)+1)&mask, "lift of %d to 2^%d", n, bits)
		}
	}
	// At the natural width the lift reproduces both derived parameters:
	// the lifted root is nInv, and (n·h + 1) / R is R⁻¹ mod n.
	for bits := uint(2); bits <= 31; bits++ {
		for range 500 {
			n := randomOddModulus(bits)
			ctx, err := New(n)
			require.NoError(t, err)

			h, err := HenselLift(n, bits)
			require.NoError(t, err)

			assert.Equal(t, ctx.nInv, h, "lift of %d", n)
			assert.Equal(t, uint64(ctx.rInv), (uint64(n)*uint64(h)+1)>>bits, "lift quotient of %d", n)
		}
	}
	// No odd x can clear the low bit of q·x + 1 for even q.
	for _, n := range []uint32{2, 100, 1 << 20} {
		_, err := HenselLift(n, 8)
		require.ErrorIs(t, err, ErrNoReciprocal)
	}
}

func TestBitLength(t *testing.T) {
	cases := map[uint32]uint{
		0:              0,
		1:              1,
		2:              2,
		3:              2,
		4:              3,
		255:            8,
		256:            9,
		1<<31 - 1:      31,
		1 << 31:        32,
		math.MaxUint32: 32,
	}

	for v, expected := range cases {
		assert.Equal(t, expected, BitLength(v), "bit length of %d", v)
	}
}
