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
	"fmt"
	"math/rand/v2"

	"github.com/consensys/go-montgomery/pkg/montgomery"
	log "github.com/sirupsen/logrus"
)

// Config bounds a randomized sweep over the space of valid moduli.
type Config struct {
	// Smallest modulus bit length exercised.
	MinBits uint
	// Largest modulus bit length exercised.
	MaxBits uint
	// Number of random moduli drawn per bit length.
	Trials uint
	// Seed for the random source, kept so failures can be reproduced.
	Seed uint64
}

// Validate checks the sweep bounds.  Moduli of fewer than two bits do not
// exist, and those of more than 31 bits are not constructible.
func (c Config) Validate() error {
	if c.MinBits < 2 || c.MinBits > c.MaxBits || c.MaxBits > 31 {
		return fmt.Errorf("bit range [%d, %d] not within [2, 31]", c.MinBits, c.MaxBits)
	}
	// Done
	return nil
}

// Sweep draws cfg.Trials random odd moduli of every bit length in range and,
// for each, compares one engine product against the direct 64-bit remainder.
// It returns one error per disagreement, so an empty result means every
// modulus checked out.
func Sweep(cfg Config) []error {
	var errs []error
	//
	if err := cfg.Validate(); err != nil {
		return []error{err}
	}
	//
	rng := rand.New(rand.NewPCG(cfg.Seed, cfg.Seed))
	//
	for bits := cfg.MinBits; bits <= cfg.MaxBits; bits++ {
		for i := uint(0); i < cfg.Trials; i++ {
			if err := checkProduct(rng, randomOddModulus(rng, bits)); err != nil {
				errs = append(errs, err)
			}
		}
		//
		log.Debugf("swept %d moduli of bit length %d", cfg.Trials, bits)
	}
	//
	return errs
}

// checkProduct pushes one random product through the full convert-multiply-
// convert pipeline for the given modulus and compares it against the direct
// remainder, which never overflows in 64 bits.
func checkProduct(rng *rand.Rand, n uint32) error {
	ctx, err := montgomery.New(n)
	if err != nil {
		return err
	}
	//
	a := rng.Uint32N(n)
	b := rng.Uint32N(n)
	//
	actual := ctx.ConvertOut(ctx.Multiply(ctx.ConvertIn(a), ctx.ConvertIn(b)))
	expected := uint32(uint64(a) * uint64(b) % uint64(n))
	//
	if actual != expected {
		return fmt.Errorf("modulus %d: %d·%d gave %d, expected %d", n, a, b, actual, expected)
	}
	// Done
	return nil
}

// randomOddModulus draws an odd modulus of exactly the given bit length.
// Setting the low bit never changes the bit length, so the result stays in
// [2^(bits−1), 2^bits).
func randomOddModulus(rng *rand.Rand, bits uint) uint32 {
	lo := uint32(1) << (bits - 1)
	hi := uint32(1)<<bits - 1
	//
	return (lo + rng.Uint32N(hi-lo+1)) | 1
}
