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

// Package iter provides the element-wise traversals every vector operator
// is built from.
//
// All traversals visit indices 0..len(a)-1 exactly once, in ascending order,
// and visit nothing when a is empty. The callback receives pointers into the
// slices so it can read or write the elements in place. The extra operands
// must be at least as long as a.
package iter

// Each calls f on every element of a.
func Each[T any](a []T, f func(x *T)) {
	for i := range a {
		f(&a[i])
	}
}

// Each2 calls f on corresponding elements of a and b.
func Each2[T any](a, b []T, f func(x, y *T)) {
	b = b[:len(a)]
	for i := range a {
		f(&a[i], &b[i])
	}
}

// Each3 calls f on corresponding elements of a, b and c.
// It is used to write a binary operator's result into a (the output)
// without touching b or c.
func Each3[T any](a, b, c []T, f func(x, y, z *T)) {
	b = b[:len(a)]
	c = c[:len(a)]
	for i := range a {
		f(&a[i], &b[i], &c[i])
	}
}
