// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package comms

import (
	"encoding/json"
	"net/http"
	"sync"

	"cogentcore.org/sceneview/base/errors"
	"github.com/gorilla/websocket"
)

// Server is the host-side property server: an [http.Handler] that
// upgrades connections to WebSockets and fans out published patches
// to every live viewer. A viewer connecting late receives the most
// recent patch for each property first, so it can render the
// current scene without waiting for the next update.
type Server struct {
	upgrader websocket.Upgrader

	// mu guards conns and last.
	mu    sync.Mutex
	conns map[*websocket.Conn]struct{}

	// wmu serializes fan-out writes across Publish calls:
	// a websocket connection supports only one concurrent writer.
	wmu sync.Mutex

	// last is the most recent encoded patch per property.
	last map[string][]byte
}

// NewServer returns a new property server.
func NewServer() *Server {
	return &Server{
		conns: make(map[*websocket.Conn]struct{}),
		last:  make(map[string][]byte),
	}
}

func (sv *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := sv.upgrader.Upgrade(w, r, nil)
	if errors.Log(err) != nil {
		return
	}
	defer conn.Close()

	// replay before registering: registration would allow Publish
	// to write concurrently with the replay on the same connection
	sv.mu.Lock()
	replay := make([][]byte, 0, len(sv.last))
	for _, msg := range sv.last {
		replay = append(replay, msg)
	}
	sv.mu.Unlock()
	for _, msg := range replay {
		if errors.Log(conn.WriteMessage(websocket.TextMessage, msg)) != nil {
			return
		}
	}
	sv.mu.Lock()
	sv.conns[conn] = struct{}{}
	sv.mu.Unlock()

	// viewers never send property values back; read only to
	// notice the close
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
	sv.mu.Lock()
	delete(sv.conns, conn)
	sv.mu.Unlock()
}

// Publish encodes a patch for the given property and value and
// sends it to every connected viewer, retaining it for replay to
// viewers that connect later.
func (sv *Server) Publish(prop string, value any) error {
	pt, err := NewPatch(prop, value)
	if err != nil {
		return err
	}
	msg, err := json.Marshal(pt)
	if err != nil {
		return err
	}
	// wmu is held from the state update through the fan-out, so
	// concurrent publishes neither interleave writes on one
	// connection nor reorder last relative to the wire
	sv.wmu.Lock()
	defer sv.wmu.Unlock()
	sv.mu.Lock()
	sv.last[prop] = msg
	conns := make([]*websocket.Conn, 0, len(sv.conns))
	for conn := range sv.conns {
		conns = append(conns, conn)
	}
	sv.mu.Unlock()
	for _, conn := range conns {
		errors.Log(conn.WriteMessage(websocket.TextMessage, msg))
	}
	return nil
}

// Close closes every live connection.
func (sv *Server) Close() {
	sv.mu.Lock()
	defer sv.mu.Unlock()
	for conn := range sv.conns {
		conn.Close()
	}
	sv.conns = make(map[*websocket.Conn]struct{})
}
