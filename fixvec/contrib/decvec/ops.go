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

package decvec

import (
	"github.com/shopspring/decimal"

	"github.com/ajroetker/go-fixvec/internal/iter"
	"github.com/ajroetker/go-fixvec/internal/shape"
)

// AddScalar returns v with s added to each element.
func (v Vector[A]) AddScalar(s decimal.Decimal) Vector[A] {
	return mapScalar(v, s, decimal.Decimal.Add)
}

// SubScalar returns v with s subtracted from each element.
func (v Vector[A]) SubScalar(s decimal.Decimal) Vector[A] {
	return mapScalar(v, s, decimal.Decimal.Sub)
}

// MulScalar returns v with each element multiplied by s.
func (v Vector[A]) MulScalar(s decimal.Decimal) Vector[A] {
	return mapScalar(v, s, decimal.Decimal.Mul)
}

// DivScalar returns v with each element divided by s.
func (v Vector[A]) DivScalar(s decimal.Decimal) Vector[A] {
	return mapScalar(v, s, decimal.Decimal.Div)
}

// Add performs element-wise addition.
func (v Vector[A]) Add(o Vector[A]) Vector[A] {
	return zip(v, o, decimal.Decimal.Add)
}

// Sub performs element-wise subtraction.
func (v Vector[A]) Sub(o Vector[A]) Vector[A] {
	return zip(v, o, decimal.Decimal.Sub)
}

// Mul performs element-wise multiplication.
func (v Vector[A]) Mul(o Vector[A]) Vector[A] {
	return zip(v, o, decimal.Decimal.Mul)
}

// Div performs element-wise division.
func (v Vector[A]) Div(o Vector[A]) Vector[A] {
	return zip(v, o, decimal.Decimal.Div)
}

// Equal reports whether the vectors are numerically equal element by
// element, so 1.0 equals 1.00.
func (v Vector[A]) Equal(o Vector[A]) bool {
	eq := true
	iter.Each2(v.slice(), o.slice(), func(x, y *decimal.Decimal) {
		if !x.Equal(*y) {
			eq = false
		}
	})
	return eq
}

// NotEqual is the negation of Equal.
func (v Vector[A]) NotEqual(o Vector[A]) bool {
	return !v.Equal(o)
}

// Sum adds the elements in index order, starting from zero.
// Panics if N is zero.
func (v Vector[A]) Sum() decimal.Decimal {
	s := v.slice()
	shape.CheckNonEmpty(len(s), "Sum")
	sum := decimal.Zero
	iter.Each(s, func(x *decimal.Decimal) { sum = sum.Add(*x) })
	return sum
}

// Average returns Sum() / N, rounded as decimal.Decimal.Div rounds.
// Panics if N is zero.
func (v Vector[A]) Average() decimal.Decimal {
	s := v.slice()
	shape.CheckNonEmpty(len(s), "Average")
	return v.Sum().Div(decimal.NewFromInt(int64(len(s))))
}

// Max returns the largest element; ties keep the first occurrence.
// Panics if N is zero.
func (v Vector[A]) Max() decimal.Decimal {
	s := v.slice()
	shape.CheckNonEmpty(len(s), "Max")
	m := s[0]
	iter.Each(s[1:], func(x *decimal.Decimal) {
		if x.GreaterThan(m) {
			m = *x
		}
	})
	return m
}

// Min returns the smallest element; ties keep the first occurrence.
// Panics if N is zero.
func (v Vector[A]) Min() decimal.Decimal {
	s := v.slice()
	shape.CheckNonEmpty(len(s), "Min")
	m := s[0]
	iter.Each(s[1:], func(x *decimal.Decimal) {
		if x.LessThan(m) {
			m = *x
		}
	})
	return m
}

func mapScalar[A any](v Vector[A], s decimal.Decimal, op func(x, s decimal.Decimal) decimal.Decimal) Vector[A] {
	var out Vector[A]
	iter.Each2(out.slice(), v.slice(), func(z, x *decimal.Decimal) { *z = op(*x, s) })
	return out
}

func zip[A any](a, b Vector[A], op func(x, y decimal.Decimal) decimal.Decimal) Vector[A] {
	var out Vector[A]
	iter.Each3(out.slice(), a.slice(), b.slice(), func(z, x, y *decimal.Decimal) { *z = op(*x, *y) })
	return out
}
