// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scenearchive

import (
	"encoding/json"
	"fmt"
)

// Manifest is the parsed scene manifest (index.json) at the root
// of an archive, describing the scene graph: global view state plus
// one entry per actor. The format is consumed, not defined, here;
// fields follow the interchange format's JSON keys.
type Manifest struct {
	Version          float32      `json:"version"`
	Background       *[3]float32  `json:"background"`
	Camera           *CameraSpec  `json:"camera"`
	CenterOfRotation *[3]float32  `json:"centerOfRotation"`
	Scene            []SceneEntry `json:"scene"`
}

// CameraSpec is the manifest's camera description.
type CameraSpec struct {
	Position   [3]float32 `json:"position"`
	FocalPoint [3]float32 `json:"focalPoint"`
	ViewUp     [3]float32 `json:"viewUp"`
	ViewAngle  float32    `json:"viewAngle"`
}

// SceneEntry describes one actor: where its dataset lives in the
// archive, its transform, and its display properties.
type SceneEntry struct {
	Name          string        `json:"name"`
	Type          string        `json:"type"`
	DataSet       DataSetRef    `json:"httpDataSetReader"`
	Actor         *ActorSpec    `json:"actor"`
	ActorRotation *[4]float32   `json:"actorRotation"`
	Property      *PropertySpec `json:"property"`

	// Texture is the archive path of an optional texture image.
	Texture string `json:"texture"`
}

// DataSetRef points at a dataset directory inside the archive.
type DataSetRef struct {
	URL string `json:"url"`
}

// ActorSpec is the manifest's actor transform.
type ActorSpec struct {
	Origin   *[3]float32 `json:"origin"`
	Scale    *[3]float32 `json:"scale"`
	Position *[3]float32 `json:"position"`
}

// PropertySpec is the manifest's actor display properties.
// Pointer fields distinguish absent from zero.
type PropertySpec struct {
	Representation *int        `json:"representation"`
	Color          *[3]float32 `json:"color"`
	Opacity        *float32    `json:"opacity"`
	PointSize      *float32    `json:"pointSize"`
	LineWidth      *float32    `json:"lineWidth"`
	EdgeVisibility bool        `json:"edgeVisibility"`
	Visibility     *bool       `json:"visibility"`
}

// Manifest reads and parses the scene manifest of the archive.
func (ar *Archive) Manifest() (*Manifest, error) {
	data, err := ar.ReadAll(ManifestName)
	if err != nil {
		return nil, err
	}
	man := &Manifest{}
	if err := json.Unmarshal(data, man); err != nil {
		return nil, fmt.Errorf("scenearchive: parsing %s: %w", ManifestName, err)
	}
	return man, nil
}
