// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package comms

import (
	"encoding/json"
	"sync"

	"cogentcore.org/sceneview/base/errors"
	"github.com/gorilla/websocket"
)

// Client represents a viewer-side WebSocket connection to a
// property server. You can use [Connect] to create a new Client.
type Client struct {

	// conn is the underlying WebSocket connection.
	conn *websocket.Conn

	// done is a channel that is closed when the connection is closed.
	done chan struct{}

	// doneOnce guards done: both [Client.Close] and the
	// [Client.OnPatch] read loop can end the connection.
	doneOnce sync.Once
}

// Connect connects to a property server and returns a [Client].
func Connect(url string) (*Client, error) {
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		return nil, err
	}
	return &Client{conn: conn, done: make(chan struct{})}, nil
}

// OnPatch sets a callback function to be called when a property
// patch is received. This function can only be called once.
func (cl *Client) OnPatch(fn func(pt Patch)) {
	go func() {
		for {
			_, msg, err := cl.conn.ReadMessage()
			if err != nil {
				cl.markDone()
				return
			}
			pt := Patch{}
			if errors.Log(json.Unmarshal(msg, &pt)) != nil {
				continue
			}
			fn(pt)
		}
	}()
}

// Close cleanly closes the WebSocket connection and marks the
// client done, so [Client.OnClose] fires even when no
// [Client.OnPatch] read loop is running.
func (cl *Client) Close() error {
	err := cl.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	cl.markDone()
	return err
}

// OnClose sets a callback function to be called when the connection
// is closed, by [Client.Close] or by the server going away (the
// latter is noticed by the [Client.OnPatch] read loop).
// This function can only be called once.
func (cl *Client) OnClose(fn func()) {
	go func() {
		<-cl.done
		fn()
	}()
}

// markDone closes the done channel exactly once.
func (cl *Client) markDone() {
	cl.doneOnce.Do(func() { close(cl.done) })
}
