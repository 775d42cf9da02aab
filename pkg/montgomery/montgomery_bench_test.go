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

import "testing"

var benchSink uint32

func makeBenchmarkContext(b *testing.B) *Context {
	ctx, err := New(1<<31 - 1) // Mersenne31
	if err != nil {
		b.Fatal(err)
	}

	return ctx
}

func BenchmarkMultiply(b *testing.B) {
	b.StopTimer()

	ctx := makeBenchmarkContext(b)
	x := ctx.ConvertIn(123456789)
	y := ctx.ConvertIn(987654321)

	b.StartTimer()

	for i := 0; i < b.N; i++ {
		x = ctx.Multiply(x, y)
	}

	benchSink = x[0]
}

func BenchmarkConvertIn(b *testing.B) {
	b.StopTimer()

	ctx := makeBenchmarkContext(b)

	b.StartTimer()

	for i := 0; i < b.N; i++ {
		benchSink = ctx.ConvertIn(uint32(i))[0]
	}
}

func BenchmarkRoundTrip(b *testing.B) {
	b.StopTimer()

	ctx := makeBenchmarkContext(b)

	b.StartTimer()

	for i := 0; i < b.N; i++ {
		benchSink = ctx.ConvertOut(ctx.Multiply(ctx.ConvertIn(123456789), ctx.ConvertIn(987654321)))
	}
}

func BenchmarkNew(b *testing.B) {
	for i := 0; i < b.N; i++ {
		ctx, err := New(1<<31 - 1)
		if err != nil {
			b.Fatal(err)
		}

		benchSink = ctx.r2
	}
}

// BenchmarkDirectMod is the baseline the reduction competes against: a plain
// 64-bit multiply and hardware remainder.
func BenchmarkDirectMod(b *testing.B) {
	const n = uint64(1<<31 - 1)

	x := uint64(123456789)

	for i := 0; i < b.N; i++ {
		x = x * 987654321 % n
	}

	benchSink = uint32(x)
}
