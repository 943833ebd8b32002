// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sceneview binds a remote scene property to a local
// rendering surface. A [Binding] owns one surface inside a display
// container; whenever the host reassigns the scene property (a
// base64-encoded zip scene archive, or absent), the binding either
// replaces or extends the displayed actors with the archive's
// contents and redraws.
package sceneview

import (
	"fmt"
	"sync"

	"cogentcore.org/sceneview/base/errors"
	"cogentcore.org/sceneview/observe"
	"cogentcore.org/sceneview/scene"
	"cogentcore.org/sceneview/scenearchive"
)

// Binding synchronizes a scene property into a rendering surface.
// Life cycle: construct with [NewBinding], [Binding.Attach] exactly
// once when the container's layout is known, any number of
// [Binding.SceneChanged] notifications, then [Binding.Teardown].
//
// All notifications are expected to arrive from a single logical
// thread of control (the host's change-notification queue). Archive
// loading itself is asynchronous: the redraw for a load fires only
// once the loader has finished, and loads are not cancelled, so a
// stale load can complete (and redraw) after a newer one.
type Binding struct {

	// Append, when set at the moment a new scene value arrives,
	// adds the loaded actors to the displayed set instead of
	// replacing it. It is read at load time only; changing it
	// does not itself trigger an update.
	Append bool

	// driver creates the rendering surface at attach time.
	driver scene.Driver

	// surface is the binding's exclusively owned rendering surface,
	// nil until attached and after teardown.
	surface scene.Surface

	// run funnels load-completion work. The default runs it
	// directly on the loader goroutine; hosts with an event loop
	// inject their own runner via [Binding.SetRunner] to serialize
	// completions with the rest of the UI.
	run func(fn func())

	// onError receives per-update failures.
	onError func(err error)

	// mu guards the displayed set across load completions.
	mu sync.Mutex

	// loads tracks in-flight archive loads for teardown draining.
	loads sync.WaitGroup
}

// NewBinding returns a new binding using the given driver to
// allocate its rendering surface. Errors are logged by default;
// use [Binding.SetOnError] to route them elsewhere.
func NewBinding(dr scene.Driver) *Binding {
	return &Binding{
		driver:  dr,
		run:     func(fn func()) { fn() },
		onError: func(err error) { errors.Log(err) },
	}
}

// SetOnError sets the function receiving per-update failures
// (bad encoding, corrupt archive, missing manifest). Failures are
// reported, never thrown past the update boundary.
func (bd *Binding) SetOnError(fn func(err error)) {
	bd.onError = fn
}

// SetRunner sets the function used to run load-completion work,
// typically the host UI loop's run-on-main.
func (bd *Binding) SetRunner(fn func(fn func())) {
	bd.run = fn
}

// Surface returns the binding's rendering surface,
// or nil if not attached.
func (bd *Binding) Surface() scene.Surface {
	return bd.surface
}

// Attach allocates a full-viewport rendering surface and mounts it
// in the given container. Zero width or height fall back, each
// independently, to the container's layout size and then to
// [FallbackSize]. Attach must be called exactly once per binding,
// at the point the container's layout becomes known; a second call
// is an attachment error.
func (bd *Binding) Attach(ct *Container, width, height int) error {
	if bd.surface != nil {
		return fmt.Errorf("sceneview: binding is already attached")
	}
	sf, err := bd.driver.NewSurface(ct.EffectiveSize(width, height))
	if err != nil {
		return fmt.Errorf("sceneview: allocating surface: %w", err)
	}
	bd.surface = sf
	ct.Surfaces = append(ct.Surfaces, sf)
	return nil
}

// Bind subscribes the binding to the scene property's change event,
// and mirrors the append property into [Binding.Append]. This is
// the only reactive wiring a binding needs.
func (bd *Binding) Bind(sceneProp *observe.Value[string], appendProp *observe.Value[bool]) {
	if appendProp != nil {
		bd.Append = appendProp.Get()
		appendProp.OnChange(func(on bool) {
			bd.Append = on
		})
	}
	sceneProp.OnChange(bd.SceneChanged)
}

// SceneChanged is the sole reactive entry point, invoked on every
// reassignment of the scene property. Unless [Binding.Append] is
// set, it first removes every displayed actor; an absent (empty)
// value then just redraws the now-empty surface, while a present
// value is decoded and loaded asynchronously, with the redraw fired
// on load completion. A failed decode or load reports through the
// error function and leaves the displayed set as it was after the
// clear-or-not step.
func (bd *Binding) SceneChanged(newValue string) {
	if bd.surface == nil {
		bd.onError(errors.New("sceneview: scene changed on unattached binding"))
		return
	}
	if !bd.Append {
		bd.clearActors()
	}
	if newValue == "" {
		bd.surface.Render()
		return
	}
	data, err := scenearchive.Decode(newValue)
	if err != nil {
		bd.onError(err)
		return
	}
	bd.loads.Add(1)
	go func() {
		defer bd.loads.Done()
		res, err := scenearchive.Load(data)
		bd.run(func() {
			if err != nil {
				bd.onError(err)
				return
			}
			bd.applyResult(res)
		})
	}()
}

// clearActors removes every displayed actor from the renderer.
func (bd *Binding) clearActors() {
	bd.mu.Lock()
	defer bd.mu.Unlock()
	rd := bd.surface.Renderer()
	for _, ac := range rd.Actors() {
		rd.RemoveActor(ac)
	}
}

// applyResult registers a completed load with the renderer and
// requests the completion redraw. The loader returns complete
// results only, so the displayed set moves atomically from the
// caller's perspective. A completion arriving after teardown
// (possible when a host runner queues completions) is reported
// and dropped: the surface is gone.
func (bd *Binding) applyResult(res *scenearchive.Result) {
	bd.mu.Lock()
	sf := bd.surface
	if sf == nil {
		bd.mu.Unlock()
		bd.onError(errors.New("sceneview: scene load completed after teardown"))
		return
	}
	rd := sf.Renderer()
	for _, ac := range res.Actors {
		rd.AddActor(ac)
	}
	if res.Camera != nil {
		rd.Camera = *res.Camera
	}
	if res.Background != nil {
		rd.Background = *res.Background
	}
	bd.mu.Unlock()
	sf.Render()
}

// WaitLoads blocks until every in-flight archive load has
// completed. Completion redraws may still be queued on an
// injected runner when it returns.
func (bd *Binding) WaitLoads() {
	bd.loads.Wait()
}

// Teardown drains in-flight loads and releases the rendering
// surface. The binding is terminal afterward: further scene
// changes, and load completions still queued on an injected
// runner, report an error instead of touching the surface.
func (bd *Binding) Teardown() {
	if bd.surface == nil {
		return
	}
	bd.loads.Wait()
	bd.mu.Lock()
	sf := bd.surface
	bd.surface = nil
	bd.mu.Unlock()
	sf.Release()
}
