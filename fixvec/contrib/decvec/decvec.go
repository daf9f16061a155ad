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

// Package decvec provides fixed-length vectors of decimal.Decimal elements
// with the same surface as fixvec.Vector.
//
// Decimal arithmetic is exact for addition, subtraction and multiplication.
// Division rounds to decimal.DivisionPrecision digits and panics on a zero
// divisor, as decimal.Decimal.Div does.
//
//	type Prices = decvec.Vector[[3]decimal.Decimal]
//
//	p := decvec.Fill[[3]decimal.Decimal](decimal.RequireFromString("9.99"))
//	total := p.Sum() // 29.97
//
// Contract violations panic with the errors exported by package fixvec
// (ErrIndexOutOfRange, ErrEmpty, ErrShape).
package decvec

import (
	"github.com/shopspring/decimal"

	"github.com/ajroetker/go-fixvec/internal/iter"
	"github.com/ajroetker/go-fixvec/internal/shape"
)

// Vector is a fixed-length vector of N decimals stored inline in A, which
// must be [N]decimal.Decimal. The zero value holds N zeros.
type Vector[A any] struct {
	elems A
}

// New returns a vector of zeros.
func New[A any]() Vector[A] {
	shape.Len[decimal.Decimal, A]()
	return Vector[A]{}
}

// Fill returns a vector with every element set to v.
func Fill[A any](v decimal.Decimal) Vector[A] {
	var out Vector[A]
	iter.Each(out.slice(), func(x *decimal.Decimal) { *x = v })
	return out
}

// FromArray returns a vector holding a copy of a.
func FromArray[A any](a A) Vector[A] {
	shape.Len[decimal.Decimal, A]()
	return Vector[A]{elems: a}
}

// Clone returns an element-wise copy of src.
func Clone[A any](src Vector[A]) Vector[A] {
	var out Vector[A]
	iter.Each2(out.slice(), src.slice(), func(x, y *decimal.Decimal) { *x = *y })
	return out
}

// Len returns N.
func (v Vector[A]) Len() int {
	return shape.Len[decimal.Decimal, A]()
}

// Array returns a copy of the elements as an array.
func (v Vector[A]) Array() A {
	return v.elems
}

// At returns the element at index i.
func (v Vector[A]) At(i int) decimal.Decimal {
	s := v.slice()
	shape.CheckIndex(i, len(s))
	return s[i]
}

// Set stores x at index i.
func (v *Vector[A]) Set(i int, x decimal.Decimal) {
	s := v.slice()
	shape.CheckIndex(i, len(s))
	s[i] = x
}

// Ptr returns a pointer to the element at index i.
func (v *Vector[A]) Ptr(i int) *decimal.Decimal {
	s := v.slice()
	shape.CheckIndex(i, len(s))
	return &s[i]
}

// Assign replaces the elements of v with those of src.
func (v *Vector[A]) Assign(src Vector[A]) {
	iter.Each2(v.slice(), src.slice(), func(x, y *decimal.Decimal) { *x = *y })
}

func (v *Vector[A]) slice() []decimal.Decimal {
	return shape.Elems[decimal.Decimal](&v.elems)
}
