// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scenearchive

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"path"

	_ "image/jpeg" // texture formats
	_ "image/png"

	"cogentcore.org/sceneview/scene"
)

// Result is a fully loaded scene archive: the actors it describes
// plus any global view state the manifest carried. Nothing in a
// Result is registered with a renderer; that is the caller's move,
// so a failed load can never half-populate a displayed set.
type Result struct {

	// Actors are the loaded actors, in manifest order.
	Actors []*scene.Actor

	// Camera is the manifest camera, or nil if absent.
	Camera *scene.Camera

	// Background is the manifest background color,
	// or nil if absent.
	Background *color.RGBA
}

// Load opens raw archive bytes and loads the complete scene they
// describe. Any failure fails the whole load: Load never returns
// a partial Result.
func Load(data []byte) (*Result, error) {
	ar, err := Open(data)
	if err != nil {
		return nil, err
	}
	man, err := ar.Manifest()
	if err != nil {
		return nil, err
	}
	res := &Result{}
	if man.Camera != nil {
		cm := &scene.Camera{}
		cm.Defaults()
		cm.Position = v3(man.Camera.Position)
		cm.FocalPoint = v3(man.Camera.FocalPoint)
		cm.ViewUp = v3(man.Camera.ViewUp)
		if man.Camera.ViewAngle != 0 {
			cm.ViewAngle = man.Camera.ViewAngle
		}
		res.Camera = cm
	}
	if man.Background != nil {
		bg := rgb(*man.Background)
		res.Background = &bg
	}
	for _, ent := range man.Scene {
		ac, err := loadEntry(ar, &ent)
		if err != nil {
			return nil, fmt.Errorf("scenearchive: loading entry %q: %w", ent.Name, err)
		}
		res.Actors = append(res.Actors, ac)
	}
	return res, nil
}

// loadEntry builds one actor from its manifest entry: dataset
// geometry, transform, display properties, and optional texture.
func loadEntry(ar *Archive, ent *SceneEntry) (*scene.Actor, error) {
	if ent.DataSet.URL == "" {
		return nil, fmt.Errorf("entry has no dataset url")
	}
	ms, err := loadMesh(ar, ent.DataSet.URL)
	if err != nil {
		return nil, err
	}
	ac := scene.NewActor(ent.Name)
	ac.Mesh = ms
	applyActorSpec(ac, ent)
	if ent.Property != nil {
		applyPropertySpec(ac, ent.Property)
	}
	if ent.Texture != "" {
		img, err := loadImage(ar, ent.Texture)
		if err != nil {
			return nil, err
		}
		ac.Material.Texture = scene.NewTexture(path.Base(ent.Texture), img)
	}
	return ac, nil
}

// loadMesh reads the dataset directory into a validated mesh.
func loadMesh(ar *Archive, dir string) (*scene.Mesh, error) {
	ds, err := parseDataSet(ar, dir)
	if err != nil {
		return nil, err
	}
	if ds.Points == nil {
		return nil, fmt.Errorf("dataset %q has no points", dir)
	}
	ms := &scene.Mesh{}
	if ms.Points, err = ds.Points.floats(ar, dir); err != nil {
		return nil, err
	}
	if ds.Verts != nil {
		if ms.Verts, err = ds.Verts.cells(ar, dir); err != nil {
			return nil, err
		}
	}
	if ds.Lines != nil {
		if ms.Lines, err = ds.Lines.cells(ar, dir); err != nil {
			return nil, err
		}
	}
	if ds.Polys != nil {
		if ms.Polys, err = ds.Polys.cells(ar, dir); err != nil {
			return nil, err
		}
	}
	if ds.PointData != nil {
		for _, arr := range ds.PointData.Arrays {
			if arr.Data == nil {
				continue
			}
			switch arr.Data.Name {
			case "Normals":
				if ms.Normals, err = arr.Data.floats(ar, dir); err != nil {
					return nil, err
				}
			case "TCoords", "TextureCoordinates":
				if ms.TexCoords, err = arr.Data.floats(ar, dir); err != nil {
					return nil, err
				}
			}
		}
	}
	if err := ms.Validate(); err != nil {
		return nil, err
	}
	ms.UpdateBBox()
	return ms, nil
}

// applyActorSpec applies the manifest transform to the actor pose.
func applyActorSpec(ac *scene.Actor, ent *SceneEntry) {
	if ent.Actor != nil {
		if ent.Actor.Position != nil {
			ac.Pose.Pos = v3(*ent.Actor.Position)
		}
		if ent.Actor.Scale != nil {
			ac.Pose.Scale = v3(*ent.Actor.Scale)
		}
		if ent.Actor.Origin != nil {
			ac.Pose.Origin = v3(*ent.Actor.Origin)
		}
	}
	if ent.ActorRotation != nil {
		r := *ent.ActorRotation
		ac.Pose.Quat = scene.Quat{X: r[0], Y: r[1], Z: r[2], W: r[3]}
	}
}

// applyPropertySpec applies the manifest display properties
// to the actor material and visibility.
func applyPropertySpec(ac *scene.Actor, pr *PropertySpec) {
	if pr.Representation != nil {
		ac.Material.Representation = scene.Representations(*pr.Representation)
	}
	if pr.Color != nil {
		c := rgb(*pr.Color)
		c.A = ac.Material.Color.A
		ac.Material.Color = c
	}
	if pr.Opacity != nil {
		ac.Material.Opacity = *pr.Opacity
		ac.Material.Color.A = uint8(clamp01(*pr.Opacity) * 255)
	}
	if pr.PointSize != nil {
		ac.Material.PointSize = *pr.PointSize
	}
	if pr.LineWidth != nil {
		ac.Material.LineWidth = *pr.LineWidth
	}
	ac.Material.EdgeVisibility = pr.EdgeVisibility
	if pr.Visibility != nil {
		ac.Visible = *pr.Visibility
	}
}

// loadImage decodes an image entry from the archive.
func loadImage(ar *Archive, name string) (image.Image, error) {
	data, err := ar.ReadAll(name)
	if err != nil {
		return nil, err
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decoding texture %q: %w", name, err)
	}
	return img, nil
}

func v3(v [3]float32) scene.Vector3 {
	return scene.V3(v[0], v[1], v[2])
}

func rgb(v [3]float32) color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(v[0]) * 255),
		G: uint8(clamp01(v[1]) * 255),
		B: uint8(clamp01(v[2]) * 255),
		A: 255,
	}
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
