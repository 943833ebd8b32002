// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scenearchive

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"math"
	"path"
)

// dataSetIndex is the parsed index.json inside a dataset directory,
// describing a polygonal dataset as references to binary array files.
type dataSetIndex struct {
	VTKClass  string     `json:"vtkClass"`
	Points    *arrayRef  `json:"points"`
	Verts     *arrayRef  `json:"verts"`
	Lines     *arrayRef  `json:"lines"`
	Polys     *arrayRef  `json:"polys"`
	PointData *fieldData `json:"pointData"`
}

// fieldData holds named per-point attribute arrays.
type fieldData struct {
	Arrays []struct {
		Data *namedArrayRef `json:"data"`
	} `json:"arrays"`
}

// arrayRef describes one binary array entry: element type, length,
// and where its bytes live relative to the dataset directory.
type arrayRef struct {
	VTKClass           string   `json:"vtkClass"`
	DataType           string   `json:"dataType"`
	NumberOfComponents int      `json:"numberOfComponents"`
	Size               int      `json:"size"`
	Ref                arrayLoc `json:"ref"`
}

// namedArrayRef is an [arrayRef] carrying the attribute name.
type namedArrayRef struct {
	arrayRef
	Name string `json:"name"`
}

// arrayLoc locates an array's bytes inside the archive.
type arrayLoc struct {
	ID       string `json:"id"`
	Basepath string `json:"basepath"`
	Encode   string `json:"encode"`
}

// parseDataSet reads the dataset index at the given dataset
// directory (root-relative) in the archive.
func parseDataSet(ar *Archive, dir string) (*dataSetIndex, error) {
	data, err := ar.ReadAll(path.Join(dir, ManifestName))
	if err != nil {
		return nil, err
	}
	ds := &dataSetIndex{}
	if err := json.Unmarshal(data, ds); err != nil {
		return nil, fmt.Errorf("scenearchive: parsing dataset index in %q: %w", dir, err)
	}
	return ds, nil
}

// readBytes reads the raw bytes of the array, checking the
// length against the declared element count.
func (aref *arrayRef) readBytes(ar *Archive, dir string, width int) ([]byte, error) {
	if aref.Ref.Encode != "" && aref.Ref.Encode != "LittleEndian" {
		return nil, fmt.Errorf("scenearchive: unsupported array encoding %q", aref.Ref.Encode)
	}
	name := path.Join(dir, aref.Ref.Basepath, aref.Ref.ID)
	data, err := ar.ReadAll(name)
	if err != nil {
		return nil, err
	}
	if len(data) != aref.Size*width {
		return nil, fmt.Errorf("scenearchive: array %q has %d bytes for %d elements of width %d",
			name, len(data), aref.Size, width)
	}
	return data, nil
}

// floats reads the array as float32 elements, converting from
// float64 if that is how the archive stores them.
func (aref *arrayRef) floats(ar *Archive, dir string) ([]float32, error) {
	switch aref.DataType {
	case "Float32Array":
		data, err := aref.readBytes(ar, dir, 4)
		if err != nil {
			return nil, err
		}
		out := make([]float32, aref.Size)
		for i := range out {
			out[i] = math.Float32frombits(binary.LittleEndian.Uint32(data[4*i:]))
		}
		return out, nil
	case "Float64Array":
		data, err := aref.readBytes(ar, dir, 8)
		if err != nil {
			return nil, err
		}
		out := make([]float32, aref.Size)
		for i := range out {
			out[i] = float32(math.Float64frombits(binary.LittleEndian.Uint64(data[8*i:])))
		}
		return out, nil
	default:
		return nil, fmt.Errorf("scenearchive: unsupported float array type %q", aref.DataType)
	}
}

// cells reads the array as uint32 connectivity elements.
func (aref *arrayRef) cells(ar *Archive, dir string) ([]uint32, error) {
	switch aref.DataType {
	case "Uint32Array", "Int32Array":
		data, err := aref.readBytes(ar, dir, 4)
		if err != nil {
			return nil, err
		}
		out := make([]uint32, aref.Size)
		for i := range out {
			out[i] = binary.LittleEndian.Uint32(data[4*i:])
		}
		return out, nil
	case "Uint16Array":
		data, err := aref.readBytes(ar, dir, 2)
		if err != nil {
			return nil, err
		}
		out := make([]uint32, aref.Size)
		for i := range out {
			out[i] = uint32(binary.LittleEndian.Uint16(data[2*i:]))
		}
		return out, nil
	default:
		return nil, fmt.Errorf("scenearchive: unsupported cell array type %q", aref.DataType)
	}
}
