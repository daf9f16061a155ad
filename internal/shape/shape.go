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

// Package shape resolves the length of array-typed vector storage and holds
// the contract assertions shared by the vector packages.
//
// Vector storage is a Go array type A = [N]T used as a type parameter, so the
// length is part of the type. Go cannot index an arbitrary array type
// parameter, so Elems views the array as a []T of length N over the same
// memory.
package shape

import (
	"errors"
	"fmt"
	"reflect"
	"unsafe"
)

// MaxLen is the largest supported vector length.
const MaxLen = 16384

var (
	// ErrIndexOutOfRange is the panic cause for an index outside [0, N).
	ErrIndexOutOfRange = errors.New("fixvec: index out of range")

	// ErrEmpty is the panic cause for an aggregate on a zero-length vector.
	ErrEmpty = errors.New("fixvec: aggregate of zero-length vector")

	// ErrShape is the panic cause for storage that is not an array of the
	// element type, or is longer than MaxLen.
	ErrShape = errors.New("fixvec: invalid vector storage")
)

// Len returns the number of T elements in A.
//
// In checked builds Len panics with ErrShape unless A is [N]T with
// N <= MaxLen. In unchecked builds it trusts the caller and derives N from
// the type sizes.
func Len[T, A any]() int {
	if Checked {
		return validate[T, A]()
	}
	var a A
	var t T
	return int(unsafe.Sizeof(a) / unsafe.Sizeof(t))
}

func validate[T, A any]() int {
	at := reflect.TypeFor[A]()
	et := reflect.TypeFor[T]()
	if at.Kind() != reflect.Array || at.Elem() != et {
		panic(fmt.Errorf("%w: %v is not an array of %v", ErrShape, at, et))
	}
	if at.Len() > MaxLen {
		panic(fmt.Errorf("%w: length %d exceeds %d", ErrShape, at.Len(), MaxLen))
	}
	return at.Len()
}

// Elems returns a slice aliasing the elements of *a.
// The slice is only valid while *a is.
func Elems[T, A any](a *A) []T {
	n := Len[T, A]()
	if n == 0 {
		return nil
	}
	return unsafe.Slice((*T)(unsafe.Pointer(a)), n)
}

// CheckIndex panics with ErrIndexOutOfRange if i is outside [0, n).
// It is a no-op in unchecked builds.
func CheckIndex(i, n int) {
	if Checked && uint(i) >= uint(n) {
		panic(fmt.Errorf("%w: index %d, length %d", ErrIndexOutOfRange, i, n))
	}
}

// CheckNonEmpty panics with ErrEmpty if n is zero. op names the aggregate in
// the panic message. Unlike CheckIndex it is active in every build.
func CheckNonEmpty(n int, op string) {
	if n == 0 {
		panic(fmt.Errorf("%w: %s", ErrEmpty, op))
	}
}
