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

import (
	"github.com/ajroetker/go-fixvec/internal/iter"
	"github.com/ajroetker/go-fixvec/internal/shape"
)

// Vector is a fixed-length vector of N elements of type T, stored inline in
// the array type A, which must be [N]T:
//
//	type Vec3 = fixvec.Vector[float64, [3]float64]
//
// The length is part of the type, so operations between vectors of
// different lengths do not compile.
//
// The zero value is a vector whose elements are all the zero value of T.
// Vectors are values: assigning or passing one copies all N elements, and
// the copy shares nothing with the original.
type Vector[T Number, A comparable] struct {
	elems A
}

// New returns a vector with every element set to the zero value of T.
// It is equivalent to the zero value Vector[T, A]{}.
func New[T Number, A comparable]() Vector[T, A] {
	shape.Len[T, A]()
	return Vector[T, A]{}
}

// Fill returns a vector with every element set to v.
func Fill[T Number, A comparable](v T) Vector[T, A] {
	var out Vector[T, A]
	iter.Each(out.slice(), func(x *T) { *x = v })
	return out
}

// FromArray returns a vector holding a copy of a.
//
//	v := fixvec.FromArray[int]([3]int{1, 2, 3})
func FromArray[T Number, A comparable](a A) Vector[T, A] {
	shape.Len[T, A]()
	return Vector[T, A]{elems: a}
}

// Clone returns an element-wise copy of src.
func Clone[T Number, A comparable](src Vector[T, A]) Vector[T, A] {
	var out Vector[T, A]
	iter.Each2(out.slice(), src.slice(), func(x, y *T) { *x = *y })
	return out
}

// Len returns N.
func (v Vector[T, A]) Len() int {
	return shape.Len[T, A]()
}

// Array returns a copy of the elements as an array.
func (v Vector[T, A]) Array() A {
	return v.elems
}

// At returns the element at index i.
//
// In checked builds At panics with ErrIndexOutOfRange unless 0 <= i < N.
// With the fixvec_unchecked build tag an out-of-range index is undefined
// behavior as far as this package is concerned.
func (v Vector[T, A]) At(i int) T {
	s := v.slice()
	shape.CheckIndex(i, len(s))
	return s[i]
}

// Set stores x at index i. Index checking is as for At.
func (v *Vector[T, A]) Set(i int, x T) {
	s := v.slice()
	shape.CheckIndex(i, len(s))
	s[i] = x
}

// Ptr returns a pointer to the element at index i, valid for as long as v
// is. Index checking is as for At.
func (v *Vector[T, A]) Ptr(i int) *T {
	s := v.slice()
	shape.CheckIndex(i, len(s))
	return &s[i]
}

// Assign replaces the elements of v with those of src, index for index.
// v.Assign(*v) leaves v unchanged.
func (v *Vector[T, A]) Assign(src Vector[T, A]) {
	iter.Each2(v.slice(), src.slice(), func(x, y *T) { *x = *y })
}

// slice views the elements of v as a []T.
func (v *Vector[T, A]) slice() []T {
	return shape.Elems[T](&v.elems)
}
