// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"context"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/mitchellh/go-homedir"
)

// Watcher reloads a settings file whenever it changes.
type Watcher struct {
	filename string
	watcher  *fsnotify.Watcher
}

// NewWatcher returns a new [Watcher] for the given settings file.
// The directory of the file is watched, so that editors that replace
// the file instead of writing to it are also seen.
func NewWatcher(filename string) (*Watcher, error) {
	filename, err := homedir.Expand(filename)
	if err != nil {
		return nil, err
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(filepath.Dir(filename)); err != nil {
		w.Close()
		return nil, err
	}
	return &Watcher{filename: filepath.Clean(filename), watcher: w}, nil
}

// Run calls fun with the reloaded settings after each change to the
// file, until the context is done. Files that fail to load are logged
// and skipped. Run closes the watcher when it returns.
func (w *Watcher) Run(ctx context.Context, fun func(s *Settings)) error {
	defer w.watcher.Close()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != w.filename || event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			s, err := Open(w.filename)
			if err != nil {
				slog.Error("config reload failed", "file", w.filename, "err", err)
				continue
			}
			slog.Info("config reloaded", "file", w.filename)
			fun(s)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			slog.Error("config watcher", "file", w.filename, "err", err)
		}
	}
}

// Watch watches the given settings file, calling fun with the reloaded
// settings after each change, until the context is done.
func Watch(ctx context.Context, filename string, fun func(s *Settings)) error {
	w, err := NewWatcher(filename)
	if err != nil {
		return err
	}
	return w.Run(ctx, fun)
}
