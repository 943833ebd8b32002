// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scenearchive reads compressed scene archives: zip
// containers holding an index.json scene manifest plus the dataset
// and asset entries it references, in the interchange format of the
// embedded visualization library. Archives are read entirely
// in memory; nothing touches persistent storage.
package scenearchive

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"path"
	"strings"
)

// ManifestName is the well-known name of the scene manifest entry
// at the root of an archive.
const ManifestName = "index.json"

// Archive is a read-only, in-memory scene archive.
type Archive struct {

	// root is the directory prefix under which the manifest lives:
	// empty for archives with a top-level manifest, or a single
	// top-level directory name, as exporters commonly nest.
	root string

	// entries maps root-relative entry names to zip files.
	entries map[string]*zip.File
}

// Open opens the given bytes as a scene archive, locating the
// scene manifest at the root or under a single top-level directory.
func Open(data []byte) (*Archive, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("scenearchive: opening zip: %w", err)
	}
	root := ""
	found := false
	for _, f := range zr.File {
		if f.Name == ManifestName {
			root, found = "", true
			break
		}
		if dir, base := path.Split(f.Name); base == ManifestName && strings.Count(dir, "/") == 1 {
			root, found = dir, true
		}
	}
	if !found {
		return nil, fmt.Errorf("scenearchive: no %s manifest in archive", ManifestName)
	}
	ar := &Archive{root: root, entries: make(map[string]*zip.File, len(zr.File))}
	for _, f := range zr.File {
		if name, ok := strings.CutPrefix(f.Name, root); ok {
			ar.entries[name] = f
		}
	}
	return ar, nil
}

// Has returns whether the archive contains the given
// root-relative entry.
func (ar *Archive) Has(name string) bool {
	_, ok := ar.entries[name]
	return ok
}

// ReadAll reads the full contents of the given root-relative entry.
func (ar *Archive) ReadAll(name string) ([]byte, error) {
	f, ok := ar.entries[name]
	if !ok {
		return nil, fmt.Errorf("scenearchive: no entry %q in archive", name)
	}
	rc, err := f.Open()
	if err != nil {
		return nil, fmt.Errorf("scenearchive: opening entry %q: %w", name, err)
	}
	defer rc.Close()
	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("scenearchive: reading entry %q: %w", name, err)
	}
	return data, nil
}
