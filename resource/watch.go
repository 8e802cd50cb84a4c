// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package resource

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"

	"github.com/gogpu/breakout"
)

// LevelExt is the file extension of level grids.
const LevelExt = ".lvl"

// WatchLevels reports level files in dir that are written or created by
// sending their paths on changed. It blocks until ctx is done or the watcher
// fails to start, and never closes changed.
//
// Sends block, so the receiver should drain changed between frames.
func WatchLevels(ctx context.Context, dir string, changed chan<- string) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("resource: create watcher: %w", err)
	}
	defer func() { _ = w.Close() }()

	if err := w.Add(dir); err != nil {
		return fmt.Errorf("resource: watch %s: %w", dir, err)
	}
	breakout.Logger().Info("watching levels", "dir", dir)

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !isLevelChange(event) {
				continue
			}
			select {
			case changed <- filepath.Clean(event.Name):
			case <-ctx.Done():
				return nil
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			breakout.Logger().Warn("level watcher error", "err", err)
		}
	}
}

func isLevelChange(e fsnotify.Event) bool {
	if !strings.EqualFold(filepath.Ext(e.Name), LevelExt) {
		return false
	}
	return e.Op&fsnotify.Write == fsnotify.Write || e.Op&fsnotify.Create == fsnotify.Create
}
