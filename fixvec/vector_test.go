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
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-fixvec/internal/shape"
)

type (
	vec3i = Vector[int, [3]int]
	vec4i = Vector[int, [4]int]
	vec3f = Vector[float64, [3]float64]
	vec0i = Vector[int, [0]int]
)

// recoverError runs f and returns the error it panicked with, or nil.
func recoverError(t *testing.T, f func()) (err error) {
	t.Helper()
	defer func() {
		if r := recover(); r != nil {
			var ok bool
			err, ok = r.(error)
			require.True(t, ok, "panic value %v is not an error", r)
		}
	}()
	f()
	return nil
}

func TestNewIsZero(t *testing.T) {
	v := New[float64, [5]float64]()
	if v.Len() != 5 {
		t.Fatalf("Len() = %d, want 5", v.Len())
	}
	for i := range v.Len() {
		if v.At(i) != 0 {
			t.Errorf("At(%d) = %v, want 0", i, v.At(i))
		}
	}

	var zero vec3i
	assert.True(t, zero.Equal(New[int, [3]int]()))
}

func TestFill(t *testing.T) {
	v := Fill[int, [4]int](7)
	for i := range 4 {
		if v.At(i) != 7 {
			t.Errorf("At(%d) = %d, want 7", i, v.At(i))
		}
	}

	// Slots are independent.
	v.Set(1, 3)
	assert.Equal(t, [4]int{7, 3, 7, 7}, v.Array())
}

func TestFromArray(t *testing.T) {
	a := [3]float64{1.5, -2, 4}
	v := FromArray[float64](a)
	assert.Equal(t, a, v.Array())

	a[0] = 100
	assert.Equal(t, 1.5, v.At(0), "vector must not alias the source array")
}

func TestCloneIsIndependent(t *testing.T) {
	a := FromArray[int]([3]int{1, 2, 3})
	b := Clone(a)
	require.True(t, b.Equal(a))

	a.Set(0, 42)
	if b.At(0) != 1 {
		t.Errorf("clone At(0) = %d after mutating source, want 1", b.At(0))
	}

	// Plain assignment copies as well.
	c := a
	a.Set(1, -1)
	assert.Equal(t, 2, c.At(1))
}

func TestSetAndPtr(t *testing.T) {
	var v vec3i
	v.Set(0, 1)
	v.Set(1, 2)
	*v.Ptr(2) = 3
	assert.Equal(t, [3]int{1, 2, 3}, v.Array())

	p := v.Ptr(1)
	*p += 10
	assert.Equal(t, 12, v.At(1))
}

func TestAssign(t *testing.T) {
	a := FromArray[int]([4]int{1, 2, 3, 4})
	var b vec4i
	b.Assign(a)
	assert.Equal(t, a.Array(), b.Array())

	a.Set(3, 0)
	assert.Equal(t, 4, b.At(3), "Assign must copy, not alias")
}

func TestSelfAssign(t *testing.T) {
	a := FromArray[float64]([3]float64{0.25, -1, 8})
	want := a.Array()
	a.Assign(a)
	assert.Equal(t, want, a.Array())
}

func TestZeroLength(t *testing.T) {
	var v vec0i
	assert.Equal(t, 0, v.Len())
	assert.Equal(t, [0]int{}, v.Array())

	// Element-wise operations are no-ops.
	assert.True(t, v.Add(v).Equal(v))
	assert.True(t, v.MulScalar(3).Equal(v))
	assert.False(t, v.NotEqual(Fill[int, [0]int](9)))
	v.Assign(Clone(v))
}

func TestIndexOutOfRange(t *testing.T) {
	if !shape.Checked {
		t.Skip("index checks are compiled out")
	}
	v := Fill[int, [3]int](1)
	tests := []struct {
		name string
		f    func()
	}{
		{"At(N)", func() { v.At(3) }},
		{"At(-1)", func() { v.At(-1) }},
		{"Set(N+5)", func() { v.Set(8, 0) }},
		{"Ptr(N)", func() { v.Ptr(3) }},
		{"zero length", func() { New[int, [0]int]().At(0) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := recoverError(t, tt.f)
			if !errors.Is(err, ErrIndexOutOfRange) {
				t.Errorf("panic = %v, want %v", err, ErrIndexOutOfRange)
			}
		})
	}
	assert.Equal(t, [3]int{1, 1, 1}, v.Array())
}

func TestInvalidShape(t *testing.T) {
	if !shape.Checked {
		t.Skip("shape checks are compiled out")
	}
	err := recoverError(t, func() { Fill[float32, [2]float64](1) })
	assert.True(t, errors.Is(err, ErrShape), "panic = %v", err)

	err = recoverError(t, func() { New[int, int]() })
	assert.True(t, errors.Is(err, ErrShape), "panic = %v", err)
}
