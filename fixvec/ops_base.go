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

package fixvec

import "github.com/ajroetker/go-fixvec/internal/iter"

// Every operator below returns a new vector and leaves its operands
// untouched. Division follows Go's rules for T: integer division by zero
// panics, floating-point division by zero yields ±Inf or NaN.

// AddScalar returns v with s added to each element.
func (v Vector[T, A]) AddScalar(s T) Vector[T, A] {
	return mapScalar(v, s, func(x, s T) T { return x + s })
}

// SubScalar returns v with s subtracted from each element.
func (v Vector[T, A]) SubScalar(s T) Vector[T, A] {
	return mapScalar(v, s, func(x, s T) T { return x - s })
}

// MulScalar returns v with each element multiplied by s.
func (v Vector[T, A]) MulScalar(s T) Vector[T, A] {
	return mapScalar(v, s, func(x, s T) T { return x * s })
}

// DivScalar returns v with each element divided by s.
func (v Vector[T, A]) DivScalar(s T) Vector[T, A] {
	return mapScalar(v, s, func(x, s T) T { return x / s })
}

// Add performs element-wise addition.
func (v Vector[T, A]) Add(o Vector[T, A]) Vector[T, A] {
	return zip(v, o, func(x, y T) T { return x + y })
}

// Sub performs element-wise subtraction.
func (v Vector[T, A]) Sub(o Vector[T, A]) Vector[T, A] {
	return zip(v, o, func(x, y T) T { return x - y })
}

// Mul performs element-wise multiplication.
func (v Vector[T, A]) Mul(o Vector[T, A]) Vector[T, A] {
	return zip(v, o, func(x, y T) T { return x * y })
}

// Div performs element-wise division.
func (v Vector[T, A]) Div(o Vector[T, A]) Vector[T, A] {
	return zip(v, o, func(x, y T) T { return x / y })
}

// Equal reports whether every element of v equals the element of o at the
// same index under ==. There is no tolerance, and a NaN element makes the
// vectors unequal.
func (v Vector[T, A]) Equal(o Vector[T, A]) bool {
	eq := true
	iter.Each2(v.slice(), o.slice(), func(x, y *T) {
		if *x != *y {
			eq = false
		}
	})
	return eq
}

// NotEqual is the negation of Equal.
func (v Vector[T, A]) NotEqual(o Vector[T, A]) bool {
	return !v.Equal(o)
}

func mapScalar[T Number, A comparable](v Vector[T, A], s T, op func(x, s T) T) Vector[T, A] {
	var out Vector[T, A]
	iter.Each2(out.slice(), v.slice(), func(z, x *T) { *z = op(*x, s) })
	return out
}

func zip[T Number, A comparable](a, b Vector[T, A], op func(x, y T) T) Vector[T, A] {
	var out Vector[T, A]
	iter.Each3(out.slice(), a.slice(), b.slice(), func(z, x, y *T) { *z = op(*x, *y) })
	return out
}
