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

	"github.com/consensys/gnark-crypto/field/babybear"
	"github.com/consensys/gnark-crypto/field/koalabear"
	"github.com/consensys/go-montgomery/pkg/montgomery"
	log "github.com/sirupsen/logrus"
)

// smallElement captures the slice of the gnark-crypto element API needed to
// drive a field implementation as an independent oracle.
type smallElement[E any] interface {
	*E
	SetUint64(uint64) *E
	Mul(*E, *E) *E
	Uint64() uint64
}

// CrossCheck compares engine products against the specialized koalabear and
// babybear implementations from gnark-crypto, across random operand pairs.
// The two sides share no code and derive their parameters differently.
func CrossCheck(trials uint, seed uint64) []error {
	var errs []error
	//
	rng := rand.New(rand.NewPCG(seed, seed))
	//
	errs = append(errs, crossCheckField[koalabear.Element](rng, "koalabear", trials)...)
	errs = append(errs, crossCheckField[babybear.Element](rng, "babybear", trials)...)
	//
	return errs
}

func crossCheckField[E any, PE smallElement[E]](rng *rand.Rand, name string, trials uint) []error {
	var errs []error
	// Resolve the prime from the generated table rather than restating it.
	known, ok := montgomery.LookupModulus(name)
	if !ok {
		return []error{fmt.Errorf("%s: not in the table of known moduli", name)}
	}
	//
	ctx, err := montgomery.New(known.Params.Modulus)
	if err != nil {
		return []error{err}
	}
	//
	n := ctx.Modulus()
	//
	for i := uint(0); i < trials; i++ {
		a := rng.Uint32N(n)
		b := rng.Uint32N(n)
		//
		var x, y E
		//
		PE(&x).SetUint64(uint64(a))
		PE(&y).SetUint64(uint64(b))
		PE(&x).Mul(&x, &y)
		//
		theirs := uint32(PE(&x).Uint64())
		ours := ctx.ConvertOut(ctx.Multiply(ctx.ConvertIn(a), ctx.ConvertIn(b)))
		//
		if ours != theirs {
			errs = append(errs, fmt.Errorf("%s: %d·%d gave %d, gnark-crypto gives %d", name, a, b, ours, theirs))
		}
	}
	//
	log.Debugf("cross-checked %d products over %s", trials, name)
	//
	return errs
}
