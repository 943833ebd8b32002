// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package comms carries scene property updates from a host process
// to viewer bindings over WebSockets. The host publishes patches;
// each connected viewer applies them to its local observable
// properties, which in turn notify any bound scene views.
package comms

import (
	"encoding/json"
	"fmt"

	"cogentcore.org/sceneview/observe"
)

// Property names carried by patches.
const (
	// PropScene is the scene property: the textual encoding of a
	// compressed scene archive, or empty for absent.
	PropScene = "scene"

	// PropAppend is the append flag property.
	PropAppend = "append"
)

// Patch is one property update on the wire.
type Patch struct {

	// Prop is the property name, one of the Prop constants.
	Prop string `json:"prop"`

	// Value is the JSON-encoded property value.
	Value json.RawMessage `json:"value"`
}

// NewPatch makes a patch for the given property and value.
func NewPatch(prop string, value any) (Patch, error) {
	data, err := json.Marshal(value)
	if err != nil {
		return Patch{}, fmt.Errorf("comms: encoding %s patch: %w", prop, err)
	}
	return Patch{Prop: prop, Value: data}, nil
}

// Apply applies a patch to the given local properties, triggering
// their change notifications. Unknown properties are an error, not
// silently dropped, so protocol drift surfaces immediately.
func Apply(pt Patch, sceneProp *observe.Value[string], appendProp *observe.Value[bool]) error {
	switch pt.Prop {
	case PropScene:
		var v string
		if err := json.Unmarshal(pt.Value, &v); err != nil {
			return fmt.Errorf("comms: decoding scene patch: %w", err)
		}
		sceneProp.Set(v)
	case PropAppend:
		var v bool
		if err := json.Unmarshal(pt.Value, &v); err != nil {
			return fmt.Errorf("comms: decoding append patch: %w", err)
		}
		appendProp.Set(v)
	default:
		return fmt.Errorf("comms: unknown property %q", pt.Prop)
	}
	return nil
}
