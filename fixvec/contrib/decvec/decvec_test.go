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
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-fixvec/fixvec"
	"github.com/ajroetker/go-fixvec/internal/shape"
)

type vec3 = Vector[[3]decimal.Decimal]

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func fromStrings(a, b, c string) vec3 {
	return FromArray([3]decimal.Decimal{d(a), d(b), d(c)})
}

// assertElems checks v element by element with numeric equality.
func assertElems(t *testing.T, v vec3, want ...string) {
	t.Helper()
	require.Equal(t, len(want), v.Len())
	for i, w := range want {
		if !v.At(i).Equal(d(w)) {
			t.Errorf("At(%d) = %s, want %s", i, v.At(i), w)
		}
	}
}

func recoverError(f func()) (err error) {
	defer func() {
		err, _ = recover().(error)
	}()
	f()
	return nil
}

func TestConstruction(t *testing.T) {
	var zero vec3
	assertElems(t, zero, "0", "0", "0")
	assert.True(t, New[[3]decimal.Decimal]().Equal(zero))

	f := Fill[[3]decimal.Decimal](d("1.25"))
	assertElems(t, f, "1.25", "1.25", "1.25")
	f.Set(0, d("2"))
	assertElems(t, f, "2", "1.25", "1.25")

	c := Clone(f)
	f.Set(1, d("-7"))
	assertElems(t, c, "2", "1.25", "1.25")
}

func TestAssign(t *testing.T) {
	a := fromStrings("1", "2", "3")
	var b vec3
	b.Assign(a)
	*a.Ptr(0) = d("10")
	assertElems(t, b, "1", "2", "3")

	b.Assign(b)
	assertElems(t, b, "1", "2", "3")
}

func TestScalarOps(t *testing.T) {
	v := fromStrings("0.1", "0.2", "-3")
	assertElems(t, v.AddScalar(d("0.2")), "0.3", "0.4", "-2.8")
	assertElems(t, v.SubScalar(d("0.1")), "0", "0.1", "-3.1")
	assertElems(t, v.MulScalar(d("10")), "1", "2", "-30")
	assertElems(t, v.DivScalar(d("4")), "0.025", "0.05", "-0.75")
	assertElems(t, v, "0.1", "0.2", "-3")
}

func TestVectorOps(t *testing.T) {
	a := fromStrings("1.5", "2", "9")
	b := fromStrings("0.5", "-4", "3")
	assertElems(t, a.Add(b), "2", "-2", "12")
	assertElems(t, a.Sub(b), "1", "6", "6")
	assertElems(t, a.Mul(b), "0.75", "-8", "27")
	assertElems(t, a.Div(b), "3", "-0.5", "3")
	assertElems(t, a, "1.5", "2", "9")
	assertElems(t, b, "0.5", "-4", "3")
}

func TestDivByZeroPanics(t *testing.T) {
	v := fromStrings("1", "2", "3")
	assert.Panics(t, func() { v.DivScalar(decimal.Zero) })
}

func TestEqual(t *testing.T) {
	a := fromStrings("1.0", "2", "3")
	b := fromStrings("1.00", "2", "3")
	c := fromStrings("1", "2", "3.000001")

	assert.True(t, a.Equal(a))
	assert.True(t, a.Equal(b))
	assert.True(t, b.Equal(a))
	assert.False(t, a.Equal(c))
	assert.True(t, a.NotEqual(c))
	assert.False(t, a.NotEqual(b))
}

func TestAggregates(t *testing.T) {
	p := Fill[[3]decimal.Decimal](d("9.99"))
	assert.True(t, p.Sum().Equal(d("29.97")), "Sum() = %s", p.Sum())
	assert.True(t, p.Average().Equal(d("9.99")), "Average() = %s", p.Average())

	v := fromStrings("-1.5", "7", "7.0")
	assert.True(t, v.Sum().Equal(d("12.5")))
	assert.True(t, v.Max().Equal(d("7")))
	assert.True(t, v.Min().Equal(d("-1.5")))
	assert.Equal(t, int32(0), v.Max().Exponent(), "ties keep the first maximum")
}

func TestAggregatesEmpty(t *testing.T) {
	var v Vector[[0]decimal.Decimal]
	for name, f := range map[string]func(){
		"Sum":     func() { v.Sum() },
		"Average": func() { v.Average() },
		"Max":     func() { v.Max() },
		"Min":     func() { v.Min() },
	} {
		err := recoverError(f)
		if !errors.Is(err, fixvec.ErrEmpty) {
			t.Errorf("%s panic = %v, want %v", name, err, fixvec.ErrEmpty)
		}
	}
}

func TestIndexOutOfRange(t *testing.T) {
	if !shape.Checked {
		t.Skip("index checks are compiled out")
	}
	v := fromStrings("1", "2", "3")
	err := recoverError(func() { v.At(3) })
	assert.True(t, errors.Is(err, fixvec.ErrIndexOutOfRange), "panic = %v", err)

	err = recoverError(func() { New[[2]float64]() })
	assert.True(t, errors.Is(err, fixvec.ErrShape), "panic = %v", err)
}
