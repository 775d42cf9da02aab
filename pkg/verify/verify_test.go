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
package verify

import (
	"math/rand/v2"
	"testing"

	"github.com/consensys/go-montgomery/pkg/montgomery"
	"github.com/consensys/go-montgomery/pkg/util/assert"
	"github.com/stretchr/testify/require"
)

func TestSweep(t *testing.T) {
	cfg := Config{MinBits: 2, MaxBits: 31, Trials: 100, Seed: 0xC0FFEE}

	assert.Equal(t, 0, len(Sweep(cfg)), "sweep mismatches")
}

func TestSweep_BadConfig(t *testing.T) {
	for _, cfg := range []Config{
		{MinBits: 1, MaxBits: 31, Trials: 10, Seed: 1},
		{MinBits: 2, MaxBits: 32, Trials: 10, Seed: 1},
		{MinBits: 5, MaxBits: 4, Trials: 10, Seed: 1},
	} {
		require.Error(t, cfg.Validate())
		require.Len(t, Sweep(cfg), 1)
	}
}

func TestCrossCheck(t *testing.T) {
	assert.Equal(t, 0, len(CrossCheck(500, 42)), "cross-check mismatches")
}

func TestRandomOddModulus(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 7))

	for bits := uint(2); bits <= 31; bits++ {
		for range 500 {
			n := randomOddModulus(rng, bits)

			assert.Equal(t, uint32(1), n&1, "parity of %d", n)
			assert.Equal(t, bits, montgomery.BitLength(n), "bit length of %d", n)
		}
	}
}
