// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package observe provides a minimal observable property,
// re-expressing a host environment's reactive attribute system
// as an explicit subscription interface: a view that cares about
// a property registers a single callback against its change event.
package observe

// Value is a host-owned observable property holding a value of type T.
// Views read it and subscribe to it; only the host assigns it.
// The zero Value is ready to use.
type Value[T any] struct {

	// current is the current property value.
	current T

	// listeners are the change listener functions,
	// called in registration order on every Set.
	listeners []func(val T)
}

// Get returns the current property value.
func (vl *Value[T]) Get() T {
	return vl.current
}

// Set assigns a new value and notifies every registered listener,
// in registration order. Reassignment to an equal value still
// notifies: deduplication, if wanted, is the host's job.
func (vl *Value[T]) Set(val T) {
	vl.current = val
	for _, fn := range vl.listeners {
		fn(val)
	}
}

// OnChange registers a function to be called whenever the
// property is assigned. Listeners cannot be removed; the
// property is expected to live as long as its subscribers.
func (vl *Value[T]) OnChange(fn func(val T)) {
	vl.listeners = append(vl.listeners, fn)
}
