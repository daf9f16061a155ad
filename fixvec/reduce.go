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

// Sum adds the elements in index order, starting from zero.
// Panics with ErrEmpty if N is zero.
func (v Vector[T, A]) Sum() T {
	s := v.slice()
	shape.CheckNonEmpty(len(s), "Sum")
	var sum T
	iter.Each(s, func(x *T) { sum += *x })
	return sum
}

// Average returns Sum() / N. The sum is accumulated in T as Sum does, and
// integer vectors truncate toward zero. Panics with ErrEmpty if N is zero.
func (v Vector[T, A]) Average() T {
	s := v.slice()
	shape.CheckNonEmpty(len(s), "Average")
	return divLen(v.Sum(), len(s))
}

// divLen returns sum / n. When n does not fit in T (a uint8 vector of 256
// elements, say) the division is done in the widest type of T's kind.
func divLen[T Number](sum T, n int) T {
	if int(T(n)) == n {
		return sum / T(n)
	}
	var zero, one T = 0, 1
	switch {
	case one/2 != zero:
		return T(float64(sum) / float64(n))
	case zero-one < zero:
		return T(int64(sum) / int64(n))
	default:
		return T(uint64(sum) / uint64(n))
	}
}

// Max returns the largest element. The scan starts from element 0 and only
// replaces the current maximum with a strictly greater element, so ties keep
// the first occurrence and a NaN at index 0 is returned unchanged.
// Panics with ErrEmpty if N is zero.
func (v Vector[T, A]) Max() T {
	s := v.slice()
	shape.CheckNonEmpty(len(s), "Max")
	m := s[0]
	iter.Each(s[1:], func(x *T) {
		if *x > m {
			m = *x
		}
	})
	return m
}

// Min returns the smallest element, scanning like Max.
// Panics with ErrEmpty if N is zero.
func (v Vector[T, A]) Min() T {
	s := v.slice()
	shape.CheckNonEmpty(len(s), "Min")
	m := s[0]
	iter.Each(s[1:], func(x *T) {
		if *x < m {
			m = *x
		}
	})
	return m
}
