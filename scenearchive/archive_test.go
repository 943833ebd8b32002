// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scenearchive_test

import (
	"archive/zip"
	"bytes"
	"encoding/base64"
	"io"
	"testing"

	"cogentcore.org/sceneview/scene"
	. "cogentcore.org/sceneview/scenearchive"
	"cogentcore.org/sceneview/scenearchive/archivetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeRoundTrip(t *testing.T) {
	raw := archivetest.New().AddTriangle("tri", 0).Bytes()
	data, err := Decode(Encode(raw))
	require.NoError(t, err)
	assert.Equal(t, raw, data)
}

func TestDecodeBadBase64(t *testing.T) {
	_, err := Decode("not base64 at all!!!")
	assert.Error(t, err)
}

func TestDecodeNotZip(t *testing.T) {
	_, err := Decode(base64.StdEncoding.EncodeToString([]byte("plain text payload")))
	assert.Error(t, err)
}

func TestOpenNoManifest(t *testing.T) {
	buf := &bytes.Buffer{}
	zw := zip.NewWriter(buf)
	w, err := zw.Create("something.txt")
	require.NoError(t, err)
	_, err = w.Write([]byte("hi"))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	_, err = Open(buf.Bytes())
	assert.Error(t, err)
}

func TestLoadActors(t *testing.T) {
	data := archivetest.New().
		AddTriangle("left", 0).
		AddTriangle("right", 2).
		Bytes()
	res, err := Load(data)
	require.NoError(t, err)
	require.Len(t, res.Actors, 2)

	left := res.Actors[0]
	assert.Equal(t, "left", left.Name)
	assert.Equal(t, scene.AsSurface, left.Material.Representation)
	require.NotNil(t, left.Mesh)
	assert.Equal(t, 3, left.Mesh.NumPoints())
	assert.Equal(t, []uint32{3, 0, 1, 2}, left.Mesh.Polys)
	assert.Equal(t, scene.V3(0, 0, 0), left.Mesh.BBox.Min)
	assert.Equal(t, scene.V3(1, 1, 0), left.Mesh.BBox.Max)

	right := res.Actors[1]
	assert.Equal(t, "right", right.Name)
	assert.Equal(t, scene.V3(2, 0, 0), right.Mesh.BBox.Min)

	assert.NotEqual(t, left.ID, right.ID)
}

func TestLoadCameraAndBackground(t *testing.T) {
	data := archivetest.New().
		AddTriangle("tri", 0).
		SetCamera(CameraSpec{
			Position:   [3]float32{0, 0, 5},
			FocalPoint: [3]float32{0, 0, 0},
			ViewUp:     [3]float32{0, 1, 0},
			ViewAngle:  45,
		}).
		SetBackground(0, 0.5, 1).
		Bytes()
	res, err := Load(data)
	require.NoError(t, err)
	require.NotNil(t, res.Camera)
	assert.Equal(t, scene.V3(0, 0, 5), res.Camera.Position)
	assert.Equal(t, float32(45), res.Camera.ViewAngle)
	require.NotNil(t, res.Background)
	assert.Equal(t, uint8(127), res.Background.G)
	assert.Equal(t, uint8(255), res.Background.B)
}

func TestLoadNestedRoot(t *testing.T) {
	bd := archivetest.New().AddTriangle("tri", 0)
	bd.Root = "export"
	res, err := Load(bd.Bytes())
	require.NoError(t, err)
	require.Len(t, res.Actors, 1)
	assert.Equal(t, "tri", res.Actors[0].Name)
}

func TestLoadMissingDataSet(t *testing.T) {
	// manifest references a dataset directory that is not there
	bd := archivetest.New().AddTriangle("tri", 0)
	data := bd.Bytes()

	// rebuild the zip without the dataset files
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	buf := &bytes.Buffer{}
	zw := zip.NewWriter(buf)
	for _, f := range zr.File {
		if f.Name != ManifestName {
			continue
		}
		rc, err := f.Open()
		require.NoError(t, err)
		w, err := zw.Create(f.Name)
		require.NoError(t, err)
		_, err = io.Copy(w, rc)
		require.NoError(t, err)
		rc.Close()
	}
	require.NoError(t, zw.Close())

	_, err = Load(buf.Bytes())
	assert.Error(t, err)
}
