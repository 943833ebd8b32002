// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

// Camera defines the view onto the scene: where the camera sits,
// what it looks at, which way is up, and the vertical field of view.
type Camera struct {

	// Position is the position of the camera in world coordinates.
	Position Vector3

	// FocalPoint is the point the camera looks at.
	FocalPoint Vector3

	// ViewUp is the up direction of the camera.
	ViewUp Vector3

	// ViewAngle is the vertical field of view in degrees.
	ViewAngle float32
}

// Defaults sets default camera parameters: at (0,0,10)
// looking at the origin with +Y up and a 30 degree field of view.
func (cm *Camera) Defaults() {
	cm.Position = V3(0, 0, 10)
	cm.FocalPoint = Vector3{}
	cm.ViewUp = V3(0, 1, 0)
	cm.ViewAngle = 30
}

// ViewVector returns the normalized direction from the camera
// position to the focal point.
func (cm *Camera) ViewVector() Vector3 {
	return cm.FocalPoint.Sub(cm.Position).Normal()
}
