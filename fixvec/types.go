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

import "github.com/ajroetker/go-fixvec/internal/shape"

// MaxLen is the largest vector length a Vector may have.
const MaxLen = shape.MaxLen

// Floats is the constraint for floating-point element types.
type Floats interface {
	~float32 | ~float64
}

// SignedInts is the constraint for signed integer element types.
type SignedInts interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// UnsignedInts is the constraint for unsigned integer element types.
type UnsignedInts interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Integers is the constraint for all integer element types.
type Integers interface {
	SignedInts | UnsignedInts
}

// Number is the constraint for Vector elements: every type with the
// arithmetic operators and a total order under < for non-NaN values.
type Number interface {
	Integers | Floats
}
