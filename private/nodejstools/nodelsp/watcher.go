// Copyright 2024-2026 Lomheny, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// This file owns candidate-cache invalidation: a filesystem watcher over the
// dependency surface of open files.

package nodelsp

import (
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// watcher invalidates the module-candidate cache when a watched file's
// dependency surface changes: a package.json or index.js appears or goes
// away, a node_modules entry changes, or a sibling source file is added or
// removed.
type watcher struct {
	lsp       *lsp
	fsWatcher *fsnotify.Watcher
}

func newWatcher(lsp *lsp) (*watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	w := &watcher{
		lsp:       lsp,
		fsWatcher: fsWatcher,
	}
	go w.run()
	return w, nil
}

// WatchFileContext registers watches for an open file: its own folder and
// every ancestor node_modules directory. Watch failures are not fatal; the
// cache simply stays warm longer.
func (w *watcher) WatchFileContext(filePath string) {
	dir := filepath.Dir(filePath)
	if err := w.fsWatcher.Add(dir); err != nil {
		w.lsp.logger.Debug("watch failed", zap.String("dir", dir), zap.Error(err))
	}
	for ; ; dir = filepath.Dir(dir) {
		modulesDir := filepath.Join(dir, "node_modules")
		if err := w.fsWatcher.Add(modulesDir); err == nil {
			w.lsp.logger.Debug("watching", zap.String("dir", modulesDir))
		}
		if filepath.Dir(dir) == dir {
			return
		}
	}
}

func (w *watcher) run() {
	for {
		select {
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			if w.affectsCandidates(event) {
				w.lsp.logger.Debug("invalidating candidate cache", zap.String("path", event.Name))
				w.lsp.catalog.InvalidateAll()
			}
		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			w.lsp.logger.Debug("watch error", zap.Error(err))
		}
	}
}

func (w *watcher) affectsCandidates(event fsnotify.Event) bool {
	if event.Op&(fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
		return false
	}
	base := filepath.Base(event.Name)
	return strings.EqualFold(base, "package.json") ||
		strings.EqualFold(base, "index.js") ||
		strings.EqualFold(base, "node_modules") ||
		strings.EqualFold(filepath.Ext(base), ".js")
}

// Close stops the watcher.
func (w *watcher) Close() error {
	return w.fsWatcher.Close()
}
