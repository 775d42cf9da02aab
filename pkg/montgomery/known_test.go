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
	"testing"

	"github.com/consensys/go-montgomery/pkg/util/assert"
	"github.com/stretchr/testify/require"
)

func TestKnownModuli(t *testing.T) {
	// Every generated entry must match what the engine derives at runtime.
	for _, known := range KnownModuli {
		ctx, err := New(known.Params.Modulus)
		require.NoError(t, err)

		assert.Equal(t, known.Params, ctx.Params(), "known modulus %s", known.Name)
	}
}

func TestKnownModuli_Mersenne31(t *testing.T) {
	// R = 2³¹ ≡ 1 mod 2³¹−1, which collapses every derived parameter.
	known, ok := LookupModulus("mersenne31")
	require.True(t, ok)

	assert.Equal(t, uint32(1), known.Params.RInv, "rinv")
	assert.Equal(t, uint32(1), known.Params.NInv, "ninv")
	assert.Equal(t, uint32(1), known.Params.R2, "rsquared")
}

func TestLookupModulus(t *testing.T) {
	for _, known := range KnownModuli {
		found, ok := LookupModulus(known.Name)

		require.True(t, ok)
		assert.Equal(t, known, found, "lookup of %s", known.Name)
	}
	//
	_, ok := LookupModulus("gf257")
	require.False(t, ok)
}
