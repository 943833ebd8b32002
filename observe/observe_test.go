// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package observe

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValueSetNotifies(t *testing.T) {
	v := &Value[string]{}
	got := []string{}
	v.OnChange(func(val string) {
		got = append(got, val)
	})
	v.Set("a")
	v.Set("b")
	assert.Equal(t, []string{"a", "b"}, got)
	assert.Equal(t, "b", v.Get())
}

func TestValueNoDedupe(t *testing.T) {
	v := &Value[bool]{}
	n := 0
	v.OnChange(func(bool) { n++ })
	v.Set(true)
	v.Set(true)
	assert.Equal(t, 2, n)
}

func TestValueListenerOrder(t *testing.T) {
	v := &Value[int]{}
	order := []int{}
	v.OnChange(func(int) { order = append(order, 1) })
	v.OnChange(func(int) { order = append(order, 2) })
	v.Set(5)
	assert.Equal(t, []int{1, 2}, order)
}

func TestValueReadInListener(t *testing.T) {
	v := &Value[int]{}
	var seen int
	v.OnChange(func(int) { seen = v.Get() })
	v.Set(42)
	assert.Equal(t, 42, seen)
}
