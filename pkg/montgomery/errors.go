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
	"errors"
	"fmt"
)

// ErrModulusTooSmall indicates a modulus below the smallest legal value (3).
var ErrModulusTooSmall = errors.New("modulus must be at least 3")

// ErrModulusEven indicates an even modulus, for which no Montgomery form
// exists with a power-of-two radix.
var ErrModulusEven = errors.New("modulus must be odd")

// ErrModulusTooLarge indicates a modulus above 2³¹−1, for which intermediate
// products would no longer fit in 64 bits.
var ErrModulusTooLarge = errors.New("modulus must be less than 2^31")

// ErrNoReciprocal indicates that a requested modular inverse does not exist
// because the operands are not coprime.
var ErrNoReciprocal = errors.New("reciprocal does not exist")

// ModulusError is a structured error reporting a modulus rejected during
// context construction, retaining the offending value.
type ModulusError struct {
	// The rejected modulus.
	modulus uint32
	// One of ErrModulusTooSmall, ErrModulusEven or ErrModulusTooLarge.
	reason error
}

// Modulus returns the rejected modulus value.
func (p *ModulusError) Modulus() uint32 {
	return p.modulus
}

// Unwrap returns the underlying sentinel, making the error kind matchable
// with errors.Is.
func (p *ModulusError) Unwrap() error {
	return p.reason
}

// Error implements the error interface.
func (p *ModulusError) Error() string {
	return fmt.Sprintf("modulus %d: %s", p.modulus, p.reason)
}
