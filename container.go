// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sceneview

import (
	"image"

	"cogentcore.org/sceneview/scene"
)

// FallbackSize is the per-dimension size used when neither the
// caller nor the container's layout has assigned one.
const FallbackSize = 300

// Container is a rectangular display region a binding mounts its
// rendering surface into. Width and Height are in the host's layout
// units; 0 means the host has not assigned that dimension yet.
type Container struct {

	// Width is the layout width, or 0 if unset.
	Width int

	// Height is the layout height, or 0 if unset.
	Height int

	// Surfaces are the mounted rendering surfaces, in mount order.
	// Several bindings may share one container; each binding mounts
	// exactly one surface.
	Surfaces []scene.Surface
}

// EffectiveSize resolves the size a surface mounted now should get:
// the given dimensions where non-zero, else the container's layout
// dimensions where assigned, else [FallbackSize]. Width and height
// fall back independently.
func (ct *Container) EffectiveSize(width, height int) image.Point {
	w := firstNonZero(width, ct.Width, FallbackSize)
	h := firstNonZero(height, ct.Height, FallbackSize)
	return image.Point{X: w, Y: h}
}

func firstNonZero(vals ...int) int {
	for _, v := range vals {
		if v != 0 {
			return v
		}
	}
	return 0
}
