// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package archivetest builds small in-memory scene archives
// for tests and demos.
package archivetest

import (
	"archive/zip"
	"bytes"
	"encoding/binary"
	"encoding/json"
	"math"
	"path"

	"cogentcore.org/sceneview/base/errors"
	"cogentcore.org/sceneview/scenearchive"
)

// Builder accumulates scene entries and produces archive bytes.
type Builder struct {

	// Root is an optional top-level directory to nest the whole
	// archive under, as some exporters do.
	Root string

	manifest scenearchive.Manifest
	files    map[string][]byte
}

// New returns a new empty archive builder.
func New() *Builder {
	return &Builder{files: make(map[string][]byte)}
}

// AddTriangle adds one actor entry whose dataset is a single
// triangle offset along X, so successive actors are distinguishable.
func (bd *Builder) AddTriangle(name string, offset float32) *Builder {
	points := []float32{
		offset, 0, 0,
		offset + 1, 0, 0,
		offset, 1, 0,
	}
	polys := []uint32{3, 0, 1, 2}
	dir := name
	bd.files[path.Join(dir, "data", "points")] = floatBytes(points)
	bd.files[path.Join(dir, "data", "polys")] = cellBytes(polys)
	index := map[string]any{
		"vtkClass": "vtkPolyData",
		"points": map[string]any{
			"vtkClass":           "vtkPoints",
			"dataType":           "Float32Array",
			"numberOfComponents": 3,
			"size":               len(points),
			"ref":                map[string]any{"encode": "LittleEndian", "basepath": "data", "id": "points"},
		},
		"polys": map[string]any{
			"vtkClass": "vtkCellArray",
			"dataType": "Uint32Array",
			"size":     len(polys),
			"ref":      map[string]any{"encode": "LittleEndian", "basepath": "data", "id": "polys"},
		},
	}
	bd.files[path.Join(dir, scenearchive.ManifestName)] = errors.Log1(json.Marshal(index))
	rep := 2
	bd.manifest.Scene = append(bd.manifest.Scene, scenearchive.SceneEntry{
		Name:     name,
		Type:     "httpDataSetReader",
		DataSet:  scenearchive.DataSetRef{URL: dir},
		Property: &scenearchive.PropertySpec{Representation: &rep},
	})
	return bd
}

// SetCamera sets the manifest camera.
func (bd *Builder) SetCamera(cam scenearchive.CameraSpec) *Builder {
	bd.manifest.Camera = &cam
	return bd
}

// SetBackground sets the manifest background color.
func (bd *Builder) SetBackground(r, g, b float32) *Builder {
	bd.manifest.Background = &[3]float32{r, g, b}
	return bd
}

// Bytes produces the zip archive bytes.
func (bd *Builder) Bytes() []byte {
	buf := &bytes.Buffer{}
	zw := zip.NewWriter(buf)
	write := func(name string, data []byte) {
		w := errors.Log1(zw.Create(path.Join(bd.Root, name)))
		errors.Log1(w.Write(data))
	}
	write(scenearchive.ManifestName, errors.Log1(json.Marshal(&bd.manifest)))
	for name, data := range bd.files {
		write(name, data)
	}
	errors.Must(zw.Close())
	return buf.Bytes()
}

// Encoded produces the archive in the textual (base64) encoding
// carried by the scene property.
func (bd *Builder) Encoded() string {
	return scenearchive.Encode(bd.Bytes())
}

// Scene is a convenience returning the encoded form of an archive
// with one triangle actor per given name.
func Scene(names ...string) string {
	bd := New()
	for i, nm := range names {
		bd.AddTriangle(nm, float32(2*i))
	}
	return bd.Encoded()
}

func floatBytes(vals []float32) []byte {
	data := make([]byte, 4*len(vals))
	for i, v := range vals {
		binary.LittleEndian.PutUint32(data[4*i:], math.Float32bits(v))
	}
	return data
}

func cellBytes(vals []uint32) []byte {
	data := make([]byte, 4*len(vals))
	for i, v := range vals {
		binary.LittleEndian.PutUint32(data[4*i:], v)
	}
	return data
}
