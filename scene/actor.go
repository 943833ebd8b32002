// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import "github.com/google/uuid"

// Pose is the spatial transform of an actor: position, scale,
// origin of rotation, and rotation.
type Pose struct {

	// Pos is the position of the actor in world coordinates.
	Pos Vector3

	// Scale is the per-axis scale factor.
	Scale Vector3

	// Origin is the point, in local coordinates, that rotation
	// and scaling are applied about.
	Origin Vector3

	// Quat is the rotation.
	Quat Quat
}

// Defaults sets default pose parameters: unit scale, identity rotation.
func (ps *Pose) Defaults() {
	ps.Scale = V3(1, 1, 1)
	ps.Quat = QuatIdentity()
}

// Actor is a single drawable entity managed by a [Renderer].
// It has its own unique spatial transform and material properties,
// and points to a mesh defining its shape. Actors are identified
// by ID rather than name: append mode can legitimately load two
// actors with the same name from successive archives.
type Actor struct {

	// ID uniquely identifies this actor within a renderer.
	ID uuid.UUID

	// Name is the actor name from the scene manifest.
	// Not necessarily unique.
	Name string

	// Mesh is the geometry displayed by this actor.
	Mesh *Mesh

	// Material contains the display properties of the surface.
	Material Material

	// Pose is the spatial transform.
	Pose Pose

	// Visible is whether the actor is drawn.
	Visible bool
}

// NewActor returns a new actor with the given name,
// a fresh ID, and default material and pose.
func NewActor(name string) *Actor {
	ac := &Actor{ID: uuid.New(), Name: name, Visible: true}
	ac.Material.Defaults()
	ac.Pose.Defaults()
	return ac
}
