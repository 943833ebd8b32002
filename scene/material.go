// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import "image/color"

// Representations are the ways a surface can be drawn,
// ordered by increasing completeness, matching the VTK
// representation codes consumed from scene archives.
type Representations int32

const (
	// AsPoints draws only the mesh points.
	AsPoints Representations = iota

	// AsWireframe draws only the cell edges.
	AsWireframe

	// AsSurface draws filled cell surfaces.
	AsSurface
)

func (rp Representations) String() string {
	switch rp {
	case AsPoints:
		return "Points"
	case AsWireframe:
		return "Wireframe"
	default:
		return "Surface"
	}
}

// Material describes the display properties of an actor's surface:
// base color and opacity, point and line sizing, representation,
// and an optional texture. Main color is used for the whole surface;
// the alpha component is derived from Opacity.
type Material struct {

	// Color is the main color of the surface.
	Color color.RGBA

	// Opacity is the overall surface opacity in [0,1].
	Opacity float32

	// PointSize is the point diameter used with [AsPoints], in pixels.
	PointSize float32

	// LineWidth is the line width used with [AsWireframe]
	// and for edges, in pixels.
	LineWidth float32

	// Representation selects how the surface is drawn.
	Representation Representations

	// EdgeVisibility draws cell edges on top of [AsSurface].
	EdgeVisibility bool

	// Texture is the optional surface texture; requires the
	// mesh to carry texture coordinates.
	Texture *Texture
}

// Defaults sets default material parameters.
func (mt *Material) Defaults() {
	mt.Color = color.RGBA{255, 255, 255, 255}
	mt.Opacity = 1
	mt.PointSize = 1
	mt.LineWidth = 1
	mt.Representation = AsSurface
}
