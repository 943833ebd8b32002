// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"image"
	"sync/atomic"
)

// SoftwareDriver is a [Driver] producing in-memory surfaces with
// no display output. It backs headless hosts and tests: surfaces
// count render requests instead of drawing.
type SoftwareDriver struct{}

// NewSoftwareDriver returns a new software driver.
func NewSoftwareDriver() *SoftwareDriver {
	return &SoftwareDriver{}
}

func (dr *SoftwareDriver) NewSurface(size image.Point) (Surface, error) {
	return &SoftwareSurface{renderer: NewRenderer(), size: size}, nil
}

// SoftwareSurface is the in-memory [Surface] made by [SoftwareDriver].
type SoftwareSurface struct {
	renderer *Renderer
	size     image.Point
	renders  atomic.Int64
	released atomic.Bool
}

func (sf *SoftwareSurface) Renderer() *Renderer {
	return sf.renderer
}

func (sf *SoftwareSurface) Render() {
	if sf.released.Load() {
		return
	}
	sf.renders.Add(1)
}

func (sf *SoftwareSurface) Size() image.Point {
	return sf.size
}

func (sf *SoftwareSurface) Release() {
	sf.released.Store(true)
}

// Renders returns the number of render requests the surface
// has received, for tests and instrumentation.
func (sf *SoftwareSurface) Renders() int64 {
	return sf.renders.Load()
}

// Released returns whether the surface has been released.
func (sf *SoftwareSurface) Released() bool {
	return sf.released.Load()
}
