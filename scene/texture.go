// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"image"

	"github.com/anthonynsimon/bild/transform"
)

// Texture is an image applied to an actor's surface.
// Images are normalized to power-of-two dimensions on assignment
// for portability across rendering backends.
type Texture struct {

	// Name is the name of the texture, from the archive entry
	// it was loaded from.
	Name string

	// Image is the texture image, always power-of-two sized.
	Image image.Image
}

// NewTexture returns a new texture with the given name and image,
// resampling the image to power-of-two dimensions if necessary.
func NewTexture(name string, img image.Image) *Texture {
	tx := &Texture{Name: name}
	tx.SetImage(img)
	return tx
}

// SetImage sets the texture image, resampling to the next
// power-of-two size in each dimension if not already there.
func (tx *Texture) SetImage(img image.Image) {
	sz := img.Bounds().Size()
	w, h := nextPow2(sz.X), nextPow2(sz.Y)
	if w != sz.X || h != sz.Y {
		img = transform.Resize(img, w, h, transform.Linear)
	}
	tx.Image = img
}

// nextPow2 returns the smallest power of two >= n, minimum 1.
func nextPow2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
