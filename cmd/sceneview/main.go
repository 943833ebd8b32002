// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command sceneview is a headless scene host: it watches a scene
// archive file, publishes it to connected viewers over WebSockets,
// and mirrors it into a local software-rendered binding.
package main

import (
	"flag"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"cogentcore.org/sceneview"
	"cogentcore.org/sceneview/base/errors"
	"cogentcore.org/sceneview/comms"
	"cogentcore.org/sceneview/config"
	"cogentcore.org/sceneview/observe"
	"cogentcore.org/sceneview/scene"
	"cogentcore.org/sceneview/scenearchive"
	"github.com/fsnotify/fsnotify"
)

func main() {
	cfgFile := flag.String("config", "", "TOML config file")
	listen := flag.String("listen", "", "listen address (overrides config)")
	sceneFile := flag.String("scene", "", "scene archive file to watch (overrides config)")
	flag.Parse()

	cfg := &config.Config{}
	cfg.Defaults()
	if *cfgFile != "" {
		c, err := config.Open(*cfgFile)
		if err != nil {
			slog.Error("loading config", "err", err)
			os.Exit(1)
		}
		cfg = c
	}
	if *listen != "" {
		cfg.Listen = *listen
	}
	if *sceneFile != "" {
		cfg.Scene = *sceneFile
	}
	if cfg.Scene == "" {
		slog.Error("no scene archive file given; use -scene or the config file")
		os.Exit(1)
	}

	sceneProp := &observe.Value[string]{}
	appendProp := &observe.Value[bool]{}

	bd := sceneview.NewBinding(scene.NewSoftwareDriver())
	bd.SetOnError(func(err error) {
		slog.Error("scene update failed", "err", err)
	})
	ct := &sceneview.Container{Width: cfg.Width, Height: cfg.Height}
	if err := bd.Attach(ct, 0, 0); err != nil {
		slog.Error("attaching binding", "err", err)
		os.Exit(1)
	}
	defer bd.Teardown()
	appendProp.Set(cfg.Append)
	bd.Bind(sceneProp, appendProp)
	sceneProp.OnChange(func(string) {
		bd.WaitLoads()
		slog.Info("scene updated", "actors", bd.Surface().Renderer().NumActors())
	})

	server := comms.NewServer()
	sceneProp.OnChange(func(val string) {
		errors.Log(server.Publish(comms.PropScene, val))
	})
	appendProp.OnChange(func(on bool) {
		errors.Log(server.Publish(comms.PropAppend, on))
	})

	publish := func() {
		data, err := os.ReadFile(cfg.Scene)
		if err != nil {
			slog.Error("reading scene archive", "err", err)
			return
		}
		sceneProp.Set(scenearchive.Encode(data))
	}
	publish()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		slog.Error("starting watcher", "err", err)
		os.Exit(1)
	}
	defer watcher.Close()
	// watch the directory: editors often replace the file,
	// which drops a watch on the file itself
	if err := watcher.Add(filepath.Dir(cfg.Scene)); err != nil {
		slog.Error("watching scene directory", "err", err)
		os.Exit(1)
	}
	go func() {
		for {
			select {
			case ev, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != filepath.Clean(cfg.Scene) {
					continue
				}
				if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) {
					slog.Info("scene archive changed", "file", ev.Name)
					publish()
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				slog.Error("watcher error", "err", err)
			}
		}
	}()

	http.Handle("/ws", server)
	slog.Info("serving scene updates", "addr", cfg.Listen, "scene", cfg.Scene)
	if err := http.ListenAndServe(cfg.Listen, nil); err != nil {
		slog.Error("serving", "err", err)
		os.Exit(1)
	}
}
