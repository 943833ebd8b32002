// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import "image"

// Surface is a rendering surface: the render window and renderer
// pair exclusively owned by one view binding. Render requests are
// cheap and idempotent, so a redundant redraw is never an error.
type Surface interface {

	// Renderer returns the renderer owning the displayed actors.
	Renderer() *Renderer

	// Render requests a redraw of the render window.
	Render()

	// Size returns the current surface size in layout units.
	Size() image.Point

	// Release frees the surface and its resources.
	// The surface is unusable afterward.
	Release()
}

// Driver creates rendering surfaces. It is injected into a view
// binding at construction, so rendering backends can be substituted
// (including with test doubles) without touching the binding.
type Driver interface {

	// NewSurface allocates a full-viewport rendering surface
	// of the given size.
	NewSurface(size image.Point) (Surface, error)
}
