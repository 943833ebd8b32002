// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package comms_test

import (
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	. "cogentcore.org/sceneview/comms"
	"cogentcore.org/sceneview/observe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// patchSink collects applied patches behind a lock and signals
// arrival, since client callbacks run on a reader goroutine.
type patchSink struct {
	mu         sync.Mutex
	sceneProp  observe.Value[string]
	appendProp observe.Value[bool]
}

func newPatchSink() *patchSink {
	return &patchSink{}
}

func (ps *patchSink) apply(t *testing.T) func(Patch) {
	return func(pt Patch) {
		ps.mu.Lock()
		defer ps.mu.Unlock()
		require.NoError(t, Apply(pt, &ps.sceneProp, &ps.appendProp))
	}
}

// waitFor polls until the condition holds, failing after a timeout.
func waitFor(t *testing.T, what string, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatalf("timed out waiting for %s", what)
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func (ps *patchSink) scene() string {
	ps.mu.Lock()
	defer ps.mu.Unlock()
	return ps.sceneProp.Get()
}

func (ps *patchSink) append() bool {
	ps.mu.Lock()
	defer ps.mu.Unlock()
	return ps.appendProp.Get()
}

func wsURL(ts *httptest.Server) string {
	return "ws" + strings.TrimPrefix(ts.URL, "http")
}

func TestPublishReachesClient(t *testing.T) {
	sv := NewServer()
	ts := httptest.NewServer(sv)
	defer ts.Close()
	defer sv.Close()

	cl, err := Connect(wsURL(ts))
	require.NoError(t, err)
	defer cl.Close()

	sink := newPatchSink()
	cl.OnPatch(sink.apply(t))

	// the server has no record of the connection until its replay
	// is done; publish until the patch lands
	waitFor(t, "scene patch", func() bool {
		require.NoError(t, sv.Publish(PropScene, "payload"))
		return sink.scene() == "payload"
	})

	require.NoError(t, sv.Publish(PropAppend, true))
	waitFor(t, "append patch", sink.append)
	assert.True(t, sink.append())
}

func TestReplayToLateClient(t *testing.T) {
	sv := NewServer()
	ts := httptest.NewServer(sv)
	defer ts.Close()
	defer sv.Close()

	require.NoError(t, sv.Publish(PropScene, "current"))
	require.NoError(t, sv.Publish(PropAppend, true))

	cl, err := Connect(wsURL(ts))
	require.NoError(t, err)
	defer cl.Close()

	sink := newPatchSink()
	cl.OnPatch(sink.apply(t))
	waitFor(t, "replayed scene patch", func() bool { return sink.scene() == "current" })
	waitFor(t, "replayed append patch", sink.append)
}

func TestConcurrentPublish(t *testing.T) {
	sv := NewServer()
	ts := httptest.NewServer(sv)
	defer ts.Close()
	defer sv.Close()

	cl, err := Connect(wsURL(ts))
	require.NoError(t, err)
	defer cl.Close()

	sink := newPatchSink()
	cl.OnPatch(sink.apply(t))
	waitFor(t, "client registration", func() bool {
		require.NoError(t, sv.Publish(PropScene, "warmup"))
		return sink.scene() == "warmup"
	})

	// publishers on several goroutines share each connection's
	// single writer
	var wg sync.WaitGroup
	for n := 0; n < 4; n++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 25; i++ {
				require.NoError(t, sv.Publish(PropScene, "flood"))
			}
		}()
	}
	wg.Wait()
	waitFor(t, "flood patch", func() bool { return sink.scene() == "flood" })
}

func TestOnCloseWithoutPatchLoop(t *testing.T) {
	sv := NewServer()
	ts := httptest.NewServer(sv)
	defer ts.Close()
	defer sv.Close()

	cl, err := Connect(wsURL(ts))
	require.NoError(t, err)

	closed := make(chan struct{})
	cl.OnClose(func() { close(closed) })
	require.NoError(t, cl.Close())
	select {
	case <-closed:
	case <-time.After(5 * time.Second):
		t.Fatal("OnClose never fired without a patch loop")
	}
}

func TestApplyUnknownProp(t *testing.T) {
	pt, err := NewPatch("zoom", 3)
	require.NoError(t, err)
	sceneProp := &observe.Value[string]{}
	appendProp := &observe.Value[bool]{}
	assert.Error(t, Apply(pt, sceneProp, appendProp))
}

func TestApplyBadValue(t *testing.T) {
	pt, err := NewPatch(PropScene, 42)
	require.NoError(t, err)
	sceneProp := &observe.Value[string]{}
	appendProp := &observe.Value[bool]{}
	assert.Error(t, Apply(pt, sceneProp, appendProp))
	assert.Equal(t, "", sceneProp.Get())
}
