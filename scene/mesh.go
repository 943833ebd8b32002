// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import "fmt"

// Mesh holds the polygonal geometry displayed by an [Actor]:
// flat float32 component arrays for point attributes, and
// VTK-style cell connectivity arrays (each cell is a count
// followed by that many point indexes). Only the connectivity
// classes actually present are non-nil.
type Mesh struct {

	// Points are the point coordinates, 3 components per point.
	Points []float32

	// Normals are optional per-point normals, 3 components per point.
	// If present, must cover the same number of points as Points.
	Normals []float32

	// TexCoords are optional per-point texture coordinates,
	// 2 components per point.
	TexCoords []float32

	// Verts is the vertex cell connectivity.
	Verts []uint32

	// Lines is the line cell connectivity.
	Lines []uint32

	// Polys is the polygon cell connectivity.
	Polys []uint32

	// BBox is the bounding box of Points,
	// computed by [Mesh.UpdateBBox].
	BBox Box3
}

// NumPoints returns the number of points in the mesh.
func (ms *Mesh) NumPoints() int {
	return len(ms.Points) / 3
}

// Point returns the i-th point as a [Vector3].
func (ms *Mesh) Point(i int) Vector3 {
	return V3(ms.Points[3*i], ms.Points[3*i+1], ms.Points[3*i+2])
}

// UpdateBBox recomputes BBox from the current Points.
func (ms *Mesh) UpdateBBox() {
	bb := EmptyBox3()
	np := ms.NumPoints()
	for i := 0; i < np; i++ {
		bb = bb.ExpandByPoint(ms.Point(i))
	}
	ms.BBox = bb
}

// Validate checks the structural consistency of the mesh:
// component array lengths and connectivity index ranges.
func (ms *Mesh) Validate() error {
	if len(ms.Points)%3 != 0 {
		return fmt.Errorf("scene.Mesh: points length %d is not a multiple of 3", len(ms.Points))
	}
	np := ms.NumPoints()
	if ms.Normals != nil && len(ms.Normals) != 3*np {
		return fmt.Errorf("scene.Mesh: %d normal components for %d points", len(ms.Normals), np)
	}
	if ms.TexCoords != nil && len(ms.TexCoords) != 2*np {
		return fmt.Errorf("scene.Mesh: %d texture coordinate components for %d points", len(ms.TexCoords), np)
	}
	for _, cells := range [][]uint32{ms.Verts, ms.Lines, ms.Polys} {
		if err := validateCells(cells, np); err != nil {
			return err
		}
	}
	return nil
}

// validateCells walks a count-prefixed connectivity array,
// checking that every referenced point index exists.
func validateCells(cells []uint32, np int) error {
	for i := 0; i < len(cells); {
		n := int(cells[i])
		i++
		if i+n > len(cells) {
			return fmt.Errorf("scene.Mesh: truncated cell of size %d at offset %d", n, i-1)
		}
		for j := 0; j < n; j++ {
			if int(cells[i+j]) >= np {
				return fmt.Errorf("scene.Mesh: cell index %d out of range for %d points", cells[i+j], np)
			}
		}
		i += n
	}
	return nil
}

// NumCells returns the number of cells in a count-prefixed
// connectivity array. Malformed trailing data counts as one cell.
func NumCells(cells []uint32) int {
	n := 0
	for i := 0; i < len(cells); {
		i += int(cells[i]) + 1
		n++
	}
	return n
}
