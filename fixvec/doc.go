// Copyright 2025 go-fixvec Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package fixvec provides fixed-length numeric vectors whose length is part
// of the type.
//
// A Vector[T, A] holds exactly N elements of T in an inline array A = [N]T.
// It never allocates, never resizes, and copies by value. Declaring aliases
// keeps call sites short:
//
//	type Vec4 = fixvec.Vector[int, [4]int]
//
//	v := fixvec.Fill[int, [4]int](7)   // [7 7 7 7]
//	w := v.MulScalar(2).Add(v)         // [21 21 21 21]
//	v.Set(0, 1)
//	fmt.Println(v.Sum(), w.Max())      // 22 21
//
// # Operations
//
// Construction:
//   - New, or the zero value: every element is the zero value of T
//   - Fill: every element is the same scalar
//   - Clone, FromArray: element-wise copies
//
// Element access: At, Set, Ptr, Assign, Len, Array.
//
// Vector-scalar: AddScalar, SubScalar, MulScalar, DivScalar.
//
// Vector-vector: Add, Sub, Mul, Div, Equal, NotEqual.
//
// Aggregates: Sum, Average, Max, Min.
//
// Element-wise operations visit indices in ascending order, return a new
// vector, and never modify their operands.
//
// # Contract Violations
//
// Out-of-range indices and aggregates on zero-length vectors are programmer
// errors. They panic with an error wrapping ErrIndexOutOfRange or ErrEmpty.
// Storage types that are not [N]T panic with ErrShape on first use.
//
// Index and shape checks can be compiled out with the fixvec_unchecked build
// tag; the empty-aggregate check is always on.
//
// # Concurrency
//
// A Vector has no internal synchronization. Concurrent reads are safe;
// concurrent writes to one vector need external locking.
//
// For decimal elements see the contrib/decvec package.
package fixvec
