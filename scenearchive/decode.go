// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scenearchive

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/h2non/filetype"
)

// Decode decodes the textual (base64) encoding of a scene archive
// into raw bytes, verifying that the result is a zip container.
// The host transports archives in this encoding; Decode is the
// first step of every scene load.
func Decode(text string) ([]byte, error) {
	data, err := base64.StdEncoding.DecodeString(strings.TrimSpace(text))
	if err != nil {
		return nil, fmt.Errorf("scenearchive: decoding base64: %w", err)
	}
	if !filetype.Is(data, "zip") {
		return nil, fmt.Errorf("scenearchive: payload is not a zip archive")
	}
	return data, nil
}

// Encode is the inverse of [Decode]: it encodes raw archive bytes
// into the textual form carried by the scene property.
func Encode(data []byte) string {
	return base64.StdEncoding.EncodeToString(data)
}
