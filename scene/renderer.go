// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scene provides the displayed-object model for a scene
// surface: actors with meshes, materials and poses, the renderer
// that owns them, and the rendering surface and driver interfaces
// that a view binds to.
package scene

import "image/color"

// Renderer owns the ordered set of actors currently displayed
// on a [Surface], along with the background color and camera.
// It is not safe for concurrent use; callers serialize access.
type Renderer struct {

	// Background is the background color of the viewport.
	Background color.RGBA

	// Camera determines the view onto the scene.
	Camera Camera

	// actors is the ordered displayed-object set.
	actors []*Actor
}

// NewRenderer returns a new renderer with default camera
// and a black background.
func NewRenderer() *Renderer {
	rd := &Renderer{}
	rd.Camera.Defaults()
	rd.Background = color.RGBA{0, 0, 0, 255}
	return rd
}

// AddActor adds the given actor to the displayed set.
func (rd *Renderer) AddActor(ac *Actor) {
	rd.actors = append(rd.actors, ac)
}

// RemoveActor removes the actor with the given ID from the
// displayed set, returning whether it was present.
func (rd *Renderer) RemoveActor(ac *Actor) bool {
	for i, ex := range rd.actors {
		if ex.ID == ac.ID {
			rd.actors = append(rd.actors[:i], rd.actors[i+1:]...)
			return true
		}
	}
	return false
}

// Actors returns a copy of the current displayed set,
// in display order. The copy is safe to iterate while
// removing actors from the renderer.
func (rd *Renderer) Actors() []*Actor {
	acs := make([]*Actor, len(rd.actors))
	copy(acs, rd.actors)
	return acs
}

// NumActors returns the number of displayed actors.
func (rd *Renderer) NumActors() int {
	return len(rd.actors)
}

// BBox returns the bounding box of all displayed actor meshes,
// ignoring poses. Empty if there are no displayed points.
func (rd *Renderer) BBox() Box3 {
	bb := EmptyBox3()
	for _, ac := range rd.actors {
		if ac.Mesh == nil || ac.Mesh.BBox.IsEmpty() {
			continue
		}
		bb = bb.ExpandByPoint(ac.Mesh.BBox.Min)
		bb = bb.ExpandByPoint(ac.Mesh.BBox.Max)
	}
	return bb
}
